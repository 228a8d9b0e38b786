package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Event struct {
	ID              int32
	Name            string
	EventType       string
	LifecycleStatus string
	MaxSubscribers  int32
	MaxWaitingList  int32
	Subscribers     int32
	WaitingList     int32
	CostMember      pgtype.Numeric
	CostNonMember   pgtype.Numeric
}

type EventSubscriber struct {
	ID        int32
	FirstName string
	LastName  string
	Street    string
	City      string
	Email     string
	Phone     pgtype.Text
	Member    bool
}

type EventBooking struct {
	ID           int32
	EventID      int32
	SubscriberID int32
	Enrolled     bool
	PreBooking   bool
	Comment      pgtype.Text
	PaymentID    string
	Payed        pgtype.Timestamptz
	PayerIban    pgtype.Text
	Canceled     pgtype.Timestamptz
	Created      pgtype.Timestamptz
}

type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}
