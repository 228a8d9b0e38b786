package money_test

import (
	"testing"

	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "comma fraction", input: "27,00", expected: "27"},
		{name: "thousands separator", input: "1.234,56", expected: "1234.56"},
		{name: "multiple thousands groups", input: "10.000.000,00", expected: "10000000"},
		{name: "negative amount", input: "-24,15", expected: "-24.15"},
		{name: "explicit plus sign", input: "+5,5", expected: "5.5"},
		{name: "no fraction", input: "45", expected: "45"},
		{name: "trailing glyph", input: "33,50 €", expected: "33.5"},
		{name: "non-breaking space before glyph", input: "33,50\u00a0€", expected: "33.5"},
		{name: "surrounding whitespace", input: "  12,30  ", expected: "12.3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{"", "abc", "12,3,4", "1.23,00", "27.00", "€", "1 234,00", "--1,00"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := money.Parse(in)
			require.Error(t, err)
			assert.True(t, errs.IsFormatError(err))
			assert.ErrorIs(t, err, errs.ErrMalformedInput)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "27,00", money.Format(decimal.NewFromInt(27)))
	assert.Equal(t, "-24,15", money.Format(decimal.RequireFromString("-24.15")))
	assert.Equal(t, "1234,56", money.Format(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "0,10", money.Format(decimal.RequireFromString("0.1")))
	assert.Equal(t, "45,90 €", money.FormatEuro(decimal.RequireFromString("45.9")))
}

func TestFormat_RoundsToTwoDigits(t *testing.T) {
	assert.Equal(t, "27,01", money.Format(decimal.RequireFromString("27.005")))
	assert.True(t, money.Equal(decimal.RequireFromString("27.001"), decimal.NewFromInt(27)))
	assert.False(t, money.Equal(decimal.RequireFromString("33.5"), decimal.NewFromInt(27)))
}

func TestRoundTrip(t *testing.T) {
	for cents := int64(-250_000); cents <= 250_000; cents += 773 {
		x := decimal.New(cents, -2)
		for _, text := range []string{money.Format(x), money.FormatEuro(x)} {
			got, err := money.Parse(text)
			require.NoError(t, err, text)
			require.True(t, x.Equal(got), "round trip of %s gave %s", x, got)
		}
	}
}
