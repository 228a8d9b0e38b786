package converter

import (
	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) query.InsertBookingParams {
	return query.InsertBookingParams{
		EventID:      int32(b.EventID),
		SubscriberID: b.SubscriberID,
		Enrolled:     b.Enrolled,
		PreBooking:   b.PreBooking,
		Comment:      pgconv.StringPtrToPgtype(b.Comment),
		PaymentID:    b.PaymentID.String(),
		Created:      pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func BookingFromRow(row query.EventBooking) *booking.Booking {
	return &booking.Booking{
		ID:           row.ID,
		EventID:      event.ID(row.EventID),
		SubscriberID: row.SubscriberID,
		Enrolled:     row.Enrolled,
		PreBooking:   row.PreBooking,
		Comment:      pgconv.StringPtrFromPgtype(row.Comment),
		PaymentID:    booking.PaymentID(row.PaymentID),
		CreatedAt:    pgconv.TimeFromPgtype(row.Created),
		CanceledAt:   pgconv.TimePtrFromPgtype(row.Canceled),
	}
}

func ContactToParams(c booking.Contact, member bool) query.SubscriberContactParams {
	return query.SubscriberContactParams{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Street:    c.Street,
		City:      c.City,
		Email:     c.Email,
		Phone:     pgconv.StringPtrToPgtype(c.Phone),
		Member:    member,
	}
}

func SubscriberFromRow(row query.EventSubscriber) *booking.Subscriber {
	return &booking.Subscriber{
		ID: row.ID,
		Contact: booking.Contact{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Street:    row.Street,
			City:      row.City,
			Email:     row.Email,
			Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		},
		Member: row.Member,
	}
}
