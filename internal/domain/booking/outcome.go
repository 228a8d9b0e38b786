package booking

import "club-booking/internal/domain/event"

// Outcome is the result of a booking attempt. Exactly one of the types below
// implements it.
type Outcome interface {
	outcome()
	Kind() OutcomeKind
}

type OutcomeKind string

const (
	KindConfirmed     OutcomeKind = "confirmed"
	KindWaitingListed OutcomeKind = "waiting_listed"
	KindBookedOut     OutcomeKind = "booked_out"
	KindNotBookable   OutcomeKind = "not_bookable"
	KindDuplicate     OutcomeKind = "duplicate_booking"
)

type Confirmed struct {
	Booking    *Booking
	Event      *event.Event
	Subscriber *Subscriber
}

type WaitingListed struct {
	Booking    *Booking
	Event      *event.Event
	Subscriber *Subscriber
}

type BookedOut struct {
	Event *event.Event
}

type NotBookableReason string

const (
	ReasonLifecycle        NotBookableReason = "lifecycle"
	ReasonPreBookingClosed NotBookableReason = "pre_booking_closed"
)

type NotBookable struct {
	Reason NotBookableReason
}

type DuplicateBooking struct {
	PreBooking bool
}

func (Confirmed) outcome()        {}
func (WaitingListed) outcome()    {}
func (BookedOut) outcome()        {}
func (NotBookable) outcome()      {}
func (DuplicateBooking) outcome() {}

func (Confirmed) Kind() OutcomeKind        { return KindConfirmed }
func (WaitingListed) Kind() OutcomeKind    { return KindWaitingListed }
func (BookedOut) Kind() OutcomeKind        { return KindBookedOut }
func (NotBookable) Kind() OutcomeKind      { return KindNotBookable }
func (DuplicateBooking) Kind() OutcomeKind { return KindDuplicate }

// Accepted reports whether the outcome persisted a booking.
func Accepted(o Outcome) bool {
	switch o.(type) {
	case Confirmed, WaitingListed:
		return true
	default:
		return false
	}
}

// EventOf returns the event snapshot carried by the outcome, if any.
func EventOf(o Outcome) *event.Event {
	switch v := o.(type) {
	case Confirmed:
		return v.Event
	case WaitingListed:
		return v.Event
	case BookedOut:
		return v.Event
	default:
		return nil
	}
}
