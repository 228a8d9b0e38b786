package booking

import (
	"fmt"
	"regexp"
)

// PaymentID is the reference a payer puts into the transfer purpose, e.g. "22-1423".
type PaymentID string

// Sequence numbers cycle within this range so ids keep four digits.
const (
	PaymentSequenceMin int64 = 1000
	PaymentSequenceMax int64 = 9999
)

var paymentIDPattern = regexp.MustCompile(`^\d{2}-\d{4}$`)

func NewPaymentID(year int, seq int64) PaymentID {
	return PaymentID(fmt.Sprintf("%02d-%04d", year%100, seq))
}

func (p PaymentID) Valid() bool {
	return paymentIDPattern.MatchString(string(p))
}

func (p PaymentID) String() string {
	return string(p)
}
