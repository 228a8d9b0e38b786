package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, event_id, subscriber_id, enrolled, pre_booking, comment,
       payment_id, payed, payer_iban, canceled, created`

func scanEventBooking(row pgx.Row) (EventBooking, error) {
	var b EventBooking
	err := row.Scan(
		&b.ID,
		&b.EventID,
		&b.SubscriberID,
		&b.Enrolled,
		&b.PreBooking,
		&b.Comment,
		&b.PaymentID,
		&b.Payed,
		&b.PayerIban,
		&b.Canceled,
		&b.Created,
	)
	return b, err
}

const nextPaymentSequence = `SELECT nextval('payment_id')`

func (q *Queries) NextPaymentSequence(ctx context.Context, db DBTX) (int64, error) {
	var seq int64
	err := db.QueryRow(ctx, nextPaymentSequence).Scan(&seq)
	return seq, err
}

const insertBooking = `INSERT INTO event_bookings (
    event_id, subscriber_id, enrolled, pre_booking, comment, payment_id, created
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
)
RETURNING ` + bookingColumns

type InsertBookingParams struct {
	EventID      int32
	SubscriberID int32
	Enrolled     bool
	PreBooking   bool
	Comment      pgtype.Text
	PaymentID    string
	Created      pgtype.Timestamptz
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (EventBooking, error) {
	row := db.QueryRow(ctx, insertBooking,
		arg.EventID,
		arg.SubscriberID,
		arg.Enrolled,
		arg.PreBooking,
		arg.Comment,
		arg.PaymentID,
		arg.Created,
	)
	return scanEventBooking(row)
}

const bookingExists = `SELECT EXISTS (
    SELECT 1 FROM event_bookings WHERE event_id = $1 AND subscriber_id = $2
)`

type BookingExistsParams struct {
	EventID      int32
	SubscriberID int32
}

func (q *Queries) BookingExists(ctx context.Context, db DBTX, arg BookingExistsParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, bookingExists, arg.EventID, arg.SubscriberID).Scan(&exists)
	return exists, err
}

const getBooking = `SELECT ` + bookingColumns + `
FROM event_bookings
WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id int32) (EventBooking, error) {
	return scanEventBooking(db.QueryRow(ctx, getBooking, id))
}

const lockBooking = getBooking + `
FOR UPDATE`

func (q *Queries) LockBooking(ctx context.Context, db DBTX, id int32) (EventBooking, error) {
	return scanEventBooking(db.QueryRow(ctx, lockBooking, id))
}

const lockFirstWaitingBooking = `SELECT ` + bookingColumns + `
FROM event_bookings
WHERE event_id = $1 AND enrolled = false AND canceled IS NULL
ORDER BY created, id
LIMIT 1
FOR UPDATE`

// LockFirstWaitingBooking returns the oldest active waiting-list booking of
// an event, or pgx.ErrNoRows when the waiting list is empty.
func (q *Queries) LockFirstWaitingBooking(ctx context.Context, db DBTX, eventID int32) (EventBooking, error) {
	return scanEventBooking(db.QueryRow(ctx, lockFirstWaitingBooking, eventID))
}

const cancelBooking = `UPDATE event_bookings
SET canceled = $2
WHERE id = $1 AND canceled IS NULL`

type CancelBookingParams struct {
	ID       int32
	Canceled pgtype.Timestamptz
}

func (q *Queries) CancelBooking(ctx context.Context, db DBTX, arg CancelBookingParams) (int64, error) {
	tag, err := db.Exec(ctx, cancelBooking, arg.ID, arg.Canceled)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const enrollBooking = `UPDATE event_bookings
SET enrolled = true
WHERE id = $1 AND enrolled = false`

func (q *Queries) EnrollBooking(ctx context.Context, db DBTX, id int32) (int64, error) {
	tag, err := db.Exec(ctx, enrollBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markBookingPaid = `UPDATE event_bookings
SET payed = $2, payer_iban = $3
WHERE id = $1`

type MarkBookingPaidParams struct {
	ID        int32
	Payed     pgtype.Timestamptz
	PayerIban pgtype.Text
}

func (q *Queries) MarkBookingPaid(ctx context.Context, db DBTX, arg MarkBookingPaidParams) (int64, error) {
	tag, err := db.Exec(ctx, markBookingPaid, arg.ID, arg.Payed, arg.PayerIban)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listOutstandingBookings = `SELECT b.id,
       e.name || ' / ' || s.first_name || ' ' || s.last_name AS name,
       CASE WHEN s.member THEN e.cost_member ELSE e.cost_non_member END AS amount,
       b.payment_id,
       b.canceled,
       b.enrolled,
       b.payed
FROM event_bookings b
JOIN events e ON e.id = b.event_id
JOIN event_subscribers s ON s.id = b.subscriber_id
WHERE b.payment_id = ANY($1::text[])
ORDER BY b.payment_id`

type ListOutstandingBookingsRow struct {
	ID        int32
	Name      string
	Amount    pgtype.Numeric
	PaymentID string
	Canceled  pgtype.Timestamptz
	Enrolled  bool
	Payed     pgtype.Timestamptz
}

func (q *Queries) ListOutstandingBookings(ctx context.Context, db DBTX, paymentIDs []string) ([]ListOutstandingBookingsRow, error) {
	rows, err := db.Query(ctx, listOutstandingBookings, paymentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ListOutstandingBookingsRow{}
	for rows.Next() {
		var i ListOutstandingBookingsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Amount,
			&i.PaymentID,
			&i.Canceled,
			&i.Enrolled,
			&i.Payed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
