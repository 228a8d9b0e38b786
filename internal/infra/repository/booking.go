package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/infra/repository/converter"
	"club-booking/internal/pkg/pgconv"
)

// BookingSubscriberConstraint guards one booking per subscriber and event.
const BookingSubscriberConstraint = "event_bookings_event_subscriber_key"

// BookingPaymentIDConstraint trips once the payment_id sequence wraps around
// onto references that are still stored.
const BookingPaymentIDConstraint = "event_bookings_payment_id_key"

type BookingWriteQueries interface {
	NextPaymentSequence(ctx context.Context, db query.DBTX) (int64, error)
	InsertBooking(ctx context.Context, db query.DBTX, arg query.InsertBookingParams) (query.EventBooking, error)
	BookingExists(ctx context.Context, db query.DBTX, arg query.BookingExistsParams) (bool, error)
	GetBooking(ctx context.Context, db query.DBTX, id int32) (query.EventBooking, error)
	LockBooking(ctx context.Context, db query.DBTX, id int32) (query.EventBooking, error)
	LockFirstWaitingBooking(ctx context.Context, db query.DBTX, eventID int32) (query.EventBooking, error)
	CancelBooking(ctx context.Context, db query.DBTX, arg query.CancelBookingParams) (int64, error)
	EnrollBooking(ctx context.Context, db query.DBTX, id int32) (int64, error)
	MarkBookingPaid(ctx context.Context, db query.DBTX, arg query.MarkBookingPaidParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// NextPaymentID draws the next sequence value and prefixes it with the
// two-digit year.
func (r *BookingRepository) NextPaymentID(ctx context.Context, tx query.DBTX, year int) (booking.PaymentID, error) {
	seq, err := r.queries.NextPaymentSequence(ctx, tx)
	if err != nil {
		return "", infra.WrapRepoErr("failed to draw payment id", err)
	}
	return booking.NewPaymentID(year, seq), nil
}

func (r *BookingRepository) Create(ctx context.Context, tx query.DBTX, b *booking.Booking) (int32, error) {
	row, err := r.queries.InsertBooking(ctx, tx, converter.BookingToInsertParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) ExistsForSubscriber(ctx context.Context, tx query.DBTX, eventID event.ID, subscriberID int32) (bool, error) {
	exists, err := r.queries.BookingExists(ctx, tx, query.BookingExistsParams{
		EventID:      int32(eventID),
		SubscriberID: subscriberID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking", err)
	}
	return exists, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx query.DBTX, id int32) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx query.DBTX, id int32) (*booking.Booking, error) {
	row, err := r.queries.LockBooking(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) LockFirstWaiting(ctx context.Context, tx query.DBTX, eventID event.ID) (*booking.Booking, error) {
	row, err := r.queries.LockFirstWaitingBooking(ctx, tx, int32(eventID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock waiting list booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Cancel(ctx context.Context, tx query.DBTX, id int32, at time.Time) error {
	affected, err := r.queries.CancelBooking(ctx, tx, query.CancelBookingParams{
		ID:       id,
		Canceled: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("active booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Enroll(ctx context.Context, tx query.DBTX, id int32) error {
	affected, err := r.queries.EnrollBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to enroll booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("waiting list booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, tx query.DBTX, id int32, payerIBAN string, at time.Time) error {
	affected, err := r.queries.MarkBookingPaid(ctx, tx, query.MarkBookingPaidParams{
		ID:        id,
		Payed:     pgconv.TimeToPgtype(at),
		PayerIban: pgconv.StringToPgtype(payerIBAN),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking paid", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
