package booking

import (
	"time"

	"club-booking/internal/domain/event"
)

type Request struct {
	EventID event.ID
	Contact Contact
	Member  bool
	Comment *string
	Updates bool
}

type Booking struct {
	ID           int32
	EventID      event.ID
	SubscriberID int32
	Enrolled     bool
	PreBooking   bool
	Comment      *string
	PaymentID    PaymentID
	CreatedAt    time.Time
	CanceledAt   *time.Time
}

// New builds the booking that echoes a ledger decision. Only enrolled and
// waiting list decisions produce a booking.
func New(eventID event.ID, subscriberID int32, decision event.Decision, preBooking bool, comment *string, paymentID PaymentID, now time.Time) *Booking {
	return &Booking{
		EventID:      eventID,
		SubscriberID: subscriberID,
		Enrolled:     decision == event.DecisionEnrolled,
		PreBooking:   preBooking,
		Comment:      comment,
		PaymentID:    paymentID,
		CreatedAt:    now,
	}
}

func (b *Booking) IsCanceled() bool {
	return b.CanceledAt != nil
}
