package request

import (
	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
)

type BookEventRequest struct {
	EventID   int32   `json:"event_id" binding:"required,min=1"`
	FirstName string  `json:"first_name" binding:"required,max=100"`
	LastName  string  `json:"last_name" binding:"required,max=100"`
	Street    string  `json:"street" binding:"required,max=200"`
	City      string  `json:"city" binding:"required,max=200"`
	Email     string  `json:"email" binding:"required,email,max=254"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Member    bool    `json:"member"`
	Updates   bool    `json:"updates"`
	Comments  *string `json:"comments" binding:"omitempty,max=2000"`
}

func (r *BookEventRequest) ToDomain() (booking.Request, error) {
	contact, err := booking.NewContact(r.FirstName, r.LastName, r.Street, r.City, r.Email, r.Phone)
	if err != nil {
		return booking.Request{}, err
	}

	var comment *string
	if r.Comments != nil && *r.Comments != "" {
		comment = r.Comments
	}

	return booking.Request{
		EventID: event.ID(r.EventID),
		Contact: contact,
		Member:  r.Member,
		Comment: comment,
		Updates: r.Updates,
	}, nil
}

type PreBookEventRequest struct {
	Token string `json:"token" binding:"required,alphanum,max=64"`
}

type IssuePreBookingLinkRequest struct {
	EventID      int32 `json:"event_id" binding:"required,min=1"`
	SubscriberID int32 `json:"subscriber_id" binding:"required,min=1"`
}
