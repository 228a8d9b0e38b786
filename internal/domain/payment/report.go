package payment

import (
	"fmt"
)

type Group struct {
	Title string
	Items []string
}

type Report struct {
	Paid      Group
	Problems  Group
	Unmatched Group
}

// Groups returns the groups in display order.
func (r Report) Groups() []Group {
	return []Group{r.Paid, r.Problems, r.Unmatched}
}

// Reconciliation is the reconciler's full result.
type Reconciliation struct {
	Report Report
	// Payers maps a payment reference to the account it was paid from.
	Payers map[string]string
	// Paid holds the cleanly matched bookings, ordered by payment reference.
	Paid []OutstandingBooking
}

func bookingNoun(n int) string {
	if n == 1 {
		return "Buchung"
	}
	return "Buchungen"
}

func paidTitle(n int) string {
	return fmt.Sprintf("%d bezahlte %s", n, bookingNoun(n))
}

func problemsTitle(n int) string {
	return fmt.Sprintf("%d %s mit Problemen", n, bookingNoun(n))
}

func unmatchedTitle(n int) string {
	return fmt.Sprintf("%d nicht erkannte %s", n, bookingNoun(n))
}
