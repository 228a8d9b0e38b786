package payment_test

import (
	"testing"
	"time"

	"club-booking/internal/domain/payment"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const testGmbHPurpose = "Überweisung Rechnung Nr. 20219862 Kunde 106155 TAN: Auftrag nicht TAN-pflichtig, da Kleinbetragszahlung IBAN: DE92500105174132432988 BIC: GENODES1VBH"

var statementDay = time.Date(2022, 3, 9, 0, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(payee, account, purpose, value string) payment.Record {
	return payment.NewRecord(statementDay, payee, account, purpose, amount(value))
}

func outstanding(ref, cost string, mutate ...func(*payment.OutstandingBooking)) payment.OutstandingBooking {
	b := payment.OutstandingBooking{
		BookingID: 1,
		Name:      "Test-Kurs",
		Amount:    amount(cost),
		PaymentID: ref,
		Enrolled:  true,
	}
	for _, m := range mutate {
		m(&b)
	}
	return b
}

func paidAlready(b *payment.OutstandingBooking) {
	t := statementDay.Add(-24 * time.Hour)
	b.PaidAt = &t
}

func canceled(b *payment.OutstandingBooking) {
	t := statementDay.Add(-48 * time.Hour)
	b.CanceledAt = &t
}

func waiting(b *payment.OutstandingBooking) {
	b.Enrolled = false
}

func keyed(bookings ...payment.OutstandingBooking) map[string]payment.OutstandingBooking {
	m := make(map[string]payment.OutstandingBooking, len(bookings))
	for _, b := range bookings {
		m[b.PaymentID] = b
	}
	return m
}

var reportOpts = cmp.Options{cmpopts.EquateEmpty()}

func TestReconcile_StatementWithMixedResults(t *testing.T) {
	records := []payment.Record{
		record("Test GmbH", "DE92500105174132432988", testGmbHPurpose, "-24.15"),
		record("Max Mustermann", "DE62500105176261449571", "22-1423", "27.00"),
		record("Erika Mustermann", "DE91500105176171781279", "Erika 22-1425 Mustermann", "33.50"),
		record("Lieschen Müller", "DE21500105179625862911", "Lieschen Müller 22-1456", "27.00"),
		record("Otto Normalverbraucher", "DE21500105179625862911", "Otto Normalverbraucher, Test-Kurs,22-1467", "45.90"),
	}
	open := keyed(
		outstanding("22-1423", "27"),
		outstanding("22-1425", "27"),
		outstanding("22-1456", "27", paidAlready),
		outstanding("22-1467", "45.90"),
	)

	got := payment.Reconcile(records, open)

	want := payment.Report{
		Paid: payment.Group{
			Title: "2 bezahlte Buchungen",
			Items: []string{"22-1423", "22-1467"},
		},
		Problems: payment.Group{
			Title: "2 Buchungen mit Problemen",
			Items: []string{
				"22-1425 / Betrag falsch: erwartet 27,00 € != überwiesen 33,50 €",
				"22-1456 / Doppelt bezahlt: Buchung war schon als bezahlt markiert",
			},
		},
		Unmatched: payment.Group{
			Title: "1 nicht erkannte Buchung",
			Items: []string{"Test GmbH / DE92500105174132432988 / " + testGmbHPurpose + " / -24,15 €"},
		},
	}
	if diff := cmp.Diff(want, got.Report, reportOpts); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[string]string{
		"22-1423": "DE62500105176261449571",
		"22-1467": "DE21500105179625862911",
	}, got.Payers)
	assert.Len(t, got.Paid, 2)
	assert.Empty(t, open, "every matched booking is removed from the outstanding set")
}

func TestReconcile_SinglePaidBooking(t *testing.T) {
	records := []payment.Record{record("Max Mustermann", "DE62500105176261449571", "Kurs 22-1423", "27.00")}

	got := payment.Reconcile(records, keyed(outstanding("22-1423", "27.00")))

	assert.Equal(t, "1 bezahlte Buchung", got.Report.Paid.Title)
	assert.Equal(t, []string{"22-1423"}, got.Report.Paid.Items)
	assert.Equal(t, "DE62500105176261449571", got.Payers["22-1423"])
	assert.Equal(t, "0 Buchungen mit Problemen", got.Report.Problems.Title)
	assert.Equal(t, "0 nicht erkannte Buchungen", got.Report.Unmatched.Title)
}

func TestReconcile_Problems(t *testing.T) {
	testCases := []struct {
		name     string
		booking  payment.OutstandingBooking
		value    string
		expected string
	}{
		{
			name:     "amount mismatch",
			booking:  outstanding("22-1425", "27"),
			value:    "33.50",
			expected: "22-1425 / Betrag falsch: erwartet 27,00 € != überwiesen 33,50 €",
		},
		{
			name:     "paid while canceled",
			booking:  outstanding("22-1425", "27", canceled),
			value:    "27",
			expected: "22-1425 / Storniert: Buchung wurde bereits storniert",
		},
		{
			name:     "paid while on waiting list",
			booking:  outstanding("22-1425", "27", waiting),
			value:    "27",
			expected: "22-1425 / Warteliste: Buchung ist nicht angemeldet",
		},
		{
			name:    "problems accumulate in fixed order",
			booking: outstanding("22-1425", "27", paidAlready, canceled),
			value:   "20",
			expected: "22-1425 / Doppelt bezahlt: Buchung war schon als bezahlt markiert" +
				" / Storniert: Buchung wurde bereits storniert" +
				" / Betrag falsch: erwartet 27,00 € != überwiesen 20,00 €",
		},
		{
			name:     "debit with matching reference is an amount mismatch",
			booking:  outstanding("22-1425", "27"),
			value:    "-27",
			expected: "22-1425 / Betrag falsch: erwartet 27,00 € != überwiesen -27,00 €",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := []payment.Record{record("Erika Mustermann", "DE91500105176171781279", "22-1425", tc.value)}

			got := payment.Reconcile(records, keyed(tc.booking))

			assert.Equal(t, []string{tc.expected}, got.Report.Problems.Items)
			assert.Equal(t, "1 Buchung mit Problemen", got.Report.Problems.Title)
			assert.Empty(t, got.Report.Paid.Items)
			assert.Empty(t, got.Payers)
		})
	}
}

func TestReconcile_AmountComparedAfterRounding(t *testing.T) {
	records := []payment.Record{record("Max Mustermann", "DE62500105176261449571", "22-1423", "27.001")}

	got := payment.Reconcile(records, keyed(outstanding("22-1423", "27")))

	assert.Equal(t, []string{"22-1423"}, got.Report.Paid.Items)
}

func TestReconcile_Unmatched(t *testing.T) {
	records := []payment.Record{
		record("Max Mustermann", "DE62500105176261449571", "Mitgliedsbeitrag", "60.00"),
		record("Erika Mustermann", "DE91500105176171781279", "Kurs 22-9999", "27.00"),
		record("Otto Normalverbraucher", "DE21500105179625862911", "22-1423", "27.00"),
		record("Otto Normalverbraucher", "DE21500105179625862911", "nochmal 22-1423", "27.00"),
	}

	got := payment.Reconcile(records, keyed(outstanding("22-1423", "27")))

	assert.Equal(t, []string{"22-1423"}, got.Report.Paid.Items)
	assert.Equal(t, "3 nicht erkannte Buchungen", got.Report.Unmatched.Title)
	assert.Equal(t, []string{
		"Max Mustermann / DE62500105176261449571 / Mitgliedsbeitrag / 60,00 €",
		"Erika Mustermann / DE91500105176171781279 / Kurs 22-9999 / 27,00 €",
		"Otto Normalverbraucher / DE21500105179625862911 / nochmal 22-1423 / 27,00 €",
	}, got.Report.Unmatched.Items)
}

func TestReconcile_MultipleReferences(t *testing.T) {
	t.Run("before any lookup the record is skipped", func(t *testing.T) {
		records := []payment.Record{
			record("Familie Mustermann", "DE62500105176261449571", "22-1423 und 22-1424", "54.00"),
			record("Erika Mustermann", "DE91500105176171781279", "22-1425", "27.00"),
		}

		got := payment.Reconcile(records, keyed(outstanding("22-1425", "27")))

		assert.Equal(t, []string{"22-1425"}, got.Report.Paid.Items)
		assert.Equal(t, []string{"Familie Mustermann / DE62500105176261449571 / 22-1423 und 22-1424 / 54,00 €"}, got.Report.Unmatched.Items)
	})

	t.Run("after a lookup processing stops", func(t *testing.T) {
		records := []payment.Record{
			record("Erika Mustermann", "DE91500105176171781279", "22-1425", "27.00"),
			record("Familie Mustermann", "DE62500105176261449571", "22-1423 und 22-1424", "54.00"),
			record("Max Mustermann", "DE62500105176261449571", "22-1426", "27.00"),
		}
		open := keyed(outstanding("22-1425", "27"), outstanding("22-1426", "27"))

		got := payment.Reconcile(records, open)

		assert.Equal(t, []string{"22-1425"}, got.Report.Paid.Items)
		assert.Equal(t, "1 nicht erkannte Buchung", got.Report.Unmatched.Title)
		assert.Contains(t, open, "22-1426", "records after the stop are never looked up")
	})

	t.Run("repeated reference counts once", func(t *testing.T) {
		records := []payment.Record{record("Erika Mustermann", "DE91500105176171781279", "22-1425 / 22-1425", "27.00")}

		got := payment.Reconcile(records, keyed(outstanding("22-1425", "27")))

		assert.Equal(t, []string{"22-1425"}, got.Report.Paid.Items)
	})
}

func TestExtractReferences(t *testing.T) {
	assert.Equal(t, []string{"22-1423"}, payment.ExtractReferences("22-1423"))
	assert.Equal(t, []string{"22-1467"}, payment.ExtractReferences("Otto Normalverbraucher, Test-Kurs,22-1467"))
	assert.Equal(t, []string{"22-1423", "23-0001"}, payment.ExtractReferences("22-1423 23-0001 22-1423"))
	assert.Empty(t, payment.ExtractReferences(testGmbHPurpose))
}

func TestReport_Groups(t *testing.T) {
	got := payment.Reconcile(nil, map[string]payment.OutstandingBooking{})

	groups := got.Report.Groups()
	assert.Len(t, groups, 3)
	assert.Equal(t, "0 bezahlte Buchungen", groups[0].Title)
	assert.Equal(t, "0 Buchungen mit Problemen", groups[1].Title)
	assert.Equal(t, "0 nicht erkannte Buchungen", groups[2].Title)
}
