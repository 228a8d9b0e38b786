package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"club-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("finite value", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(4590), Exp: -2, Valid: true})

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("45.90").Equal(got))
	})

	t.Run("round trip", func(t *testing.T) {
		d := decimal.RequireFromString("-24.15")

		got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))

		require.NoError(t, err)
		assert.True(t, d.Equal(got))
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, n := range []pgtype.Numeric{
			{},
			{NaN: true, Valid: true},
			{Int: big.NewInt(1), InfinityModifier: pgtype.Infinity, Valid: true},
		} {
			_, err := pgconv.DecimalFromNumeric(n)
			assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
		}
	})
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.Equal(t, "x", *pgconv.StringPtrFromPgtype(pgconv.StringToPgtype("x")))
	assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)

	now := time.Date(2022, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.Equal(t, now, *pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(now)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
