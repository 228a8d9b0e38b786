package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
	"club-booking/internal/infra/db/query"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly runs fn on one read-only snapshot. It is never retried.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Events() EventRepository
	Bookings() BookingRepository
	Subscribers() SubscriberRepository
	Subscriptions() SubscriptionRepository
	Notifications() NotificationRepository
	DB() query.DBTX
}

type EventRepository interface {
	// LockByID holds the event row lock until the transaction ends.
	LockByID(ctx context.Context, tx query.DBTX, id event.ID) (*event.Event, error)
	UpdateCounters(ctx context.Context, tx query.DBTX, e *event.Event) error
}

type BookingRepository interface {
	NextPaymentID(ctx context.Context, tx query.DBTX, year int) (booking.PaymentID, error)
	Create(ctx context.Context, tx query.DBTX, b *booking.Booking) (int32, error)
	ExistsForSubscriber(ctx context.Context, tx query.DBTX, eventID event.ID, subscriberID int32) (bool, error)
	FindByID(ctx context.Context, tx query.DBTX, id int32) (*booking.Booking, error)
	LockByID(ctx context.Context, tx query.DBTX, id int32) (*booking.Booking, error)
	// LockFirstWaiting returns nil when no active waiting-list booking exists.
	LockFirstWaiting(ctx context.Context, tx query.DBTX, eventID event.ID) (*booking.Booking, error)
	Cancel(ctx context.Context, tx query.DBTX, id int32, at time.Time) error
	Enroll(ctx context.Context, tx query.DBTX, id int32) error
	MarkPaid(ctx context.Context, tx query.DBTX, id int32, payerIBAN string, at time.Time) error
}

type SubscriberRepository interface {
	// FindByContact returns nil when no equivalent subscriber exists.
	FindByContact(ctx context.Context, tx query.DBTX, contact booking.Contact, member bool) (*booking.Subscriber, error)
	Create(ctx context.Context, tx query.DBTX, contact booking.Contact, member bool) (*booking.Subscriber, error)
	FindByID(ctx context.Context, tx query.DBTX, id int32) (*booking.Subscriber, error)
}

type SubscriptionRepository interface {
	Subscribe(ctx context.Context, tx query.DBTX, email, newsType string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
