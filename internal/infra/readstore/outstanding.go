package readstore

import (
	"context"

	"club-booking/internal/domain/payment"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/pkg/pgconv"
)

type OutstandingBookingQueries interface {
	ListOutstandingBookings(ctx context.Context, db query.DBTX, paymentIDs []string) ([]query.ListOutstandingBookingsRow, error)
}

// OutstandingBookingReadStore runs on the handle it is given, so a caller can
// read within its own snapshot.
type OutstandingBookingReadStore struct {
	queries OutstandingBookingQueries
}

func NewOutstandingBookingReadStore(queries OutstandingBookingQueries) *OutstandingBookingReadStore {
	return &OutstandingBookingReadStore{queries: queries}
}

func (r *OutstandingBookingReadStore) FindByPaymentIDs(ctx context.Context, db query.DBTX, paymentIDs []string) (map[string]payment.OutstandingBooking, error) {
	result := make(map[string]payment.OutstandingBooking, len(paymentIDs))
	if len(paymentIDs) == 0 {
		return result, nil
	}

	rows, err := r.queries.ListOutstandingBookings(ctx, db, paymentIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outstanding bookings", err)
	}

	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking amount for "+row.PaymentID, err, infra.KindDBFailure)
		}
		result[row.PaymentID] = payment.OutstandingBooking{
			BookingID:  row.ID,
			Name:       row.Name,
			Amount:     amount,
			PaymentID:  row.PaymentID,
			CanceledAt: pgconv.TimePtrFromPgtype(row.Canceled),
			Enrolled:   row.Enrolled,
			PaidAt:     pgconv.TimePtrFromPgtype(row.Payed),
		}
	}
	return result, nil
}
