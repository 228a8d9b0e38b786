package payment

import (
	"fmt"
	"sort"
	"strings"

	"club-booking/internal/pkg/money"
)

const (
	ProblemDoublePayment = "Doppelt bezahlt: Buchung war schon als bezahlt markiert"
	ProblemCanceled      = "Storniert: Buchung wurde bereits storniert"
	ProblemWaitingList   = "Warteliste: Buchung ist nicht angemeldet"
)

func amountProblem(expected, transferred string) string {
	return fmt.Sprintf("Betrag falsch: erwartet %s != überwiesen %s", expected, transferred)
}

// Reconcile matches statement records against outstanding bookings keyed by
// payment reference. Matched bookings are removed from outstanding, so each
// booking can be claimed once.
//
// A record carrying several references ends the run once at least one
// single-reference record has been looked up; later records are ignored.
func Reconcile(records []Record, outstanding map[string]OutstandingBooking) Reconciliation {
	var (
		paid      []OutstandingBooking
		attempted bool
	)
	unmatched := []string{}
	problems := map[string][]string{}
	payers := map[string]string{}

	for _, rec := range records {
		if len(rec.References) != 1 {
			unmatched = append(unmatched, rec.Describe())
			if len(rec.References) > 1 && attempted {
				break
			}
			continue
		}

		attempted = true
		ref := rec.References[0]
		b, ok := outstanding[ref]
		if !ok {
			unmatched = append(unmatched, rec.Describe())
			continue
		}
		delete(outstanding, ref)

		if found := check(b, rec); len(found) > 0 {
			problems[ref] = append(problems[ref], found...)
			continue
		}
		paid = append(paid, b)
		payers[ref] = rec.Account
	}

	sort.Slice(paid, func(i, j int) bool { return paid[i].PaymentID < paid[j].PaymentID })

	paidRefs := make([]string, len(paid))
	for i, b := range paid {
		paidRefs[i] = b.PaymentID
	}

	problemRefs := make([]string, 0, len(problems))
	for ref := range problems {
		problemRefs = append(problemRefs, ref)
	}
	sort.Strings(problemRefs)
	problemItems := make([]string, len(problemRefs))
	for i, ref := range problemRefs {
		problemItems[i] = strings.Join(append([]string{ref}, problems[ref]...), " / ")
	}

	return Reconciliation{
		Report: Report{
			Paid:      Group{Title: paidTitle(len(paidRefs)), Items: paidRefs},
			Problems:  Group{Title: problemsTitle(len(problemItems)), Items: problemItems},
			Unmatched: Group{Title: unmatchedTitle(len(unmatched)), Items: unmatched},
		},
		Payers: payers,
		Paid:   paid,
	}
}

func check(b OutstandingBooking, rec Record) []string {
	var found []string
	if b.PaidAt != nil {
		found = append(found, ProblemDoublePayment)
	}
	if b.Enrolled && b.CanceledAt != nil {
		found = append(found, ProblemCanceled)
	}
	if !b.Enrolled {
		found = append(found, ProblemWaitingList)
	}
	if !money.Equal(b.Amount, rec.Amount) {
		found = append(found, amountProblem(money.FormatEuro(b.Amount), money.FormatEuro(rec.Amount)))
	}
	return found
}
