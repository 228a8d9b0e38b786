package builder

import (
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
	reqdto "club-booking/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	EventID   int32
	FirstName string
	LastName  string
	Street    string
	City      string
	Email     string
	Phone     string
	Member    bool
	Updates   bool
	Comment   string
	PaymentID booking.PaymentID
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		EventID:   7,
		FirstName: "Erika",
		LastName:  "Mustermann",
		Street:    "Hauptstr. 1",
		City:      "Berlin",
		Email:     "erika@example.org",
		Phone:     "030 1234567",
		Comment:   "Vegetarisch",
		PaymentID: "22-1000",
		CreatedAt: time.Date(2022, 11, 3, 18, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookEventRequest {
	phone := b.Phone
	comment := b.Comment
	return reqdto.BookEventRequest{
		EventID:   b.EventID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Street:    b.Street,
		City:      b.City,
		Email:     b.Email,
		Phone:     &phone,
		Member:    b.Member,
		Updates:   b.Updates,
		Comments:  &comment,
	}
}

func (b *BookingBuilder) BuildContact() booking.Contact {
	phone := b.Phone
	return booking.Contact{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Street:    b.Street,
		City:      b.City,
		Email:     b.Email,
		Phone:     &phone,
	}
}

// BuildDomain returns an active booking with the given id.
func (b *BookingBuilder) BuildDomain(id int32, enrolled bool) *booking.Booking {
	comment := b.Comment
	return &booking.Booking{
		ID:           id,
		EventID:      event.ID(b.EventID),
		SubscriberID: 11,
		Enrolled:     enrolled,
		Comment:      &comment,
		PaymentID:    b.PaymentID,
		CreatedAt:    b.CreatedAt,
	}
}

type EventBuilder struct {
	ID             int32
	Name           string
	Type           string
	Status         event.LifecycleStatus
	MaxSubscribers int32
	MaxWaitingList int32
	Subscribers    int32
	WaitingList    int32
	CostMember     string
	CostNonMember  string
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:             7,
		Name:           "Skikurs Anfänger",
		Type:           "Events",
		Status:         event.StatusPublished,
		MaxSubscribers: 10,
		MaxWaitingList: 5,
		CostMember:     "27",
		CostNonMember:  "33.50",
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

func (e *EventBuilder) BuildDomain() *event.Event {
	return &event.Event{
		ID:             event.ID(e.ID),
		Name:           e.Name,
		Type:           e.Type,
		Status:         e.Status,
		MaxSubscribers: e.MaxSubscribers,
		MaxWaitingList: e.MaxWaitingList,
		Subscribers:    e.Subscribers,
		WaitingList:    e.WaitingList,
		CostMember:     decimal.RequireFromString(e.CostMember),
		CostNonMember:  decimal.RequireFromString(e.CostNonMember),
	}
}

func (e *EventBuilder) BuildCounter() event.Counter {
	return e.BuildDomain().Counter()
}
