// Package money converts between euro amounts and their German textual form
// ("1.234,56", "-24,15 €").
package money

import (
	"regexp"
	"strings"

	"club-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	Glyph = "€"

	nbsp = "\u00a0"
)

// plain digits or dot-grouped thousands, optional comma fraction
var amountPattern = regexp.MustCompile(`^[+-]?(\d+|\d{1,3}(\.\d{3})+)(,\d+)?$`)

func Parse(text string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(text, nbsp, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, Glyph))

	if !amountPattern.MatchString(s) {
		return decimal.Zero, errs.NewFormatError("invalid amount", text, nil)
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.NewFormatError("invalid amount", text, err)
	}
	return d, nil
}

// Format renders d with exactly two fractional digits and a comma separator.
func Format(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func FormatEuro(d decimal.Decimal) string {
	return Format(d) + " " + Glyph
}

// Equal compares two amounts by their canonical two-digit rendering.
func Equal(a, b decimal.Decimal) bool {
	return Format(a) == Format(b)
}
