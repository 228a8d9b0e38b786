package uow

import (
	"errors"
	"testing"
	"time"

	"club-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "lock event"), expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base

		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	assert.Zero(t, cryptoRandInt63n(-5))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
