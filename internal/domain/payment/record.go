package payment

import (
	"regexp"
	"strings"
	"time"

	"club-booking/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Record is one normalized row of a bank statement.
type Record struct {
	Date       time.Time
	Payee      string
	Account    string
	Purpose    string
	Amount     decimal.Decimal
	References []string
}

var referencePattern = regexp.MustCompile(`\d{2}-\d{4}`)

// ExtractReferences returns the booking references found in a transfer
// purpose, de-duplicated and in order of first appearance.
func ExtractReferences(purpose string) []string {
	matches := referencePattern.FindAllString(purpose, -1)
	refs := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		refs = append(refs, m)
	}
	return refs
}

func NewRecord(date time.Time, payee, account, purpose string, amount decimal.Decimal) Record {
	return Record{
		Date:       date,
		Payee:      payee,
		Account:    account,
		Purpose:    purpose,
		Amount:     amount,
		References: ExtractReferences(purpose),
	}
}

// Describe renders the record for the unmatched payments list.
func (r Record) Describe() string {
	return strings.Join([]string{r.Payee, r.Account, r.Purpose, money.FormatEuro(r.Amount)}, " / ")
}

type OutstandingBooking struct {
	BookingID  int32
	Name       string
	Amount     decimal.Decimal
	PaymentID  string
	CanceledAt *time.Time
	Enrolled   bool
	PaidAt     *time.Time
}
