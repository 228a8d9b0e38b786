package response

import (
	"club-booking/internal/domain/event"
	"club-booking/internal/usecase/commands"
)

type EventCounterResponse struct {
	ID             int32 `json:"id"`
	MaxSubscribers int32 `json:"max_subscribers"`
	MaxWaitingList int32 `json:"max_waiting_list"`
	Subscribers    int32 `json:"subscribers"`
	WaitingList    int32 `json:"waiting_list"`
}

func FromCounter(c event.Counter) EventCounterResponse {
	return EventCounterResponse{
		ID:             int32(c.ID),
		MaxSubscribers: c.MaxSubscribers,
		MaxWaitingList: c.MaxWaitingList,
		Subscribers:    c.Subscribers,
		WaitingList:    c.WaitingList,
	}
}

func FromCounters(cs []event.Counter) []EventCounterResponse {
	out := make([]EventCounterResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCounter(c))
	}
	return out
}

// BookingResponse is returned by the public booking endpoints, also on failure.
type BookingResponse struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Counters []EventCounterResponse `json:"counters"`
}

func BookingSuccess(message string, counters []event.Counter) *BookingResponse {
	return &BookingResponse{
		Success:  true,
		Message:  message,
		Counters: FromCounters(counters),
	}
}

func BookingFailure(message string) *BookingResponse {
	return &BookingResponse{
		Success:  false,
		Message:  message,
		Counters: []EventCounterResponse{},
	}
}

type CancelBookingResponse struct {
	BookingID         int32                `json:"booking_id"`
	PromotedBookingID *int32               `json:"promoted_booking_id,omitempty"`
	Counter           EventCounterResponse `json:"counter"`
}

func FromCancelResult(r *commands.CancelResult) *CancelBookingResponse {
	resp := &CancelBookingResponse{
		BookingID: r.Canceled.ID,
		Counter:   FromCounter(r.Counter),
	}
	if r.Promoted != nil {
		id := r.Promoted.ID
		resp.PromotedBookingID = &id
	}
	return resp
}

type PreBookingLinkResponse struct {
	Token string `json:"token"`
}
