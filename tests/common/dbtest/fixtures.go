package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type EventFixture struct {
	Name           string
	Type           string
	Status         string
	MaxSubscribers int32
	MaxWaitingList int32
	Subscribers    int32
	WaitingList    int32
	CostMember     string
	CostNonMember  string
}

func DefaultEvent() EventFixture {
	return EventFixture{
		Name:           "Skikurs Anfänger",
		Type:           "Events",
		Status:         "Published",
		MaxSubscribers: 10,
		MaxWaitingList: 5,
		CostMember:     "27.00",
		CostNonMember:  "33.50",
	}
}

func CreateTestEvent(t *testing.T, db DBLike, e EventFixture) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(), `
		INSERT INTO events (name, event_type, lifecycle_status, max_subscribers, max_waiting_list,
		                    subscribers, waiting_list, cost_member, cost_non_member)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric)
		RETURNING id`,
		e.Name, e.Type, e.Status, e.MaxSubscribers, e.MaxWaitingList,
		e.Subscribers, e.WaitingList, e.CostMember, e.CostNonMember,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestSubscriber(t *testing.T, db DBLike, firstName, lastName, email string, member bool) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(), `
		INSERT INTO event_subscribers (first_name, last_name, street, city, email, member)
		VALUES ($1, $2, 'Hauptstr. 1', 'Berlin', $3, $4)
		RETURNING id`,
		firstName, lastName, email, member,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

type BookingFixture struct {
	EventID      int32
	SubscriberID int32
	Enrolled     bool
	PaymentID    string
	Created      time.Time
	Canceled     *time.Time
	Paid         *time.Time
}

func CreateTestBooking(t *testing.T, db DBLike, b BookingFixture) int32 {
	t.Helper()

	created := b.Created
	if created.IsZero() {
		created = time.Now()
	}

	var id int32
	err := db.QueryRow(context.Background(), `
		INSERT INTO event_bookings (event_id, subscriber_id, enrolled, payment_id, created, canceled, payed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		b.EventID, b.SubscriberID, b.Enrolled, b.PaymentID, created, b.Canceled, b.Paid,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// EventCounters returns the stored subscribers and waiting list counters.
func EventCounters(t *testing.T, db DBLike, eventID int32) (subscribers, waitingList int32) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT subscribers, waiting_list FROM events WHERE id = $1", eventID,
	).Scan(&subscribers, &waitingList)
	require.NoError(t, err)
	return subscribers, waitingList
}

// ActiveBookings counts the uncanceled bookings of an event by enrollment.
func ActiveBookings(t *testing.T, db DBLike, eventID int32) (enrolled, waiting int32) {
	t.Helper()

	err := db.QueryRow(context.Background(), `
		SELECT count(*) FILTER (WHERE enrolled), count(*) FILTER (WHERE NOT enrolled)
		FROM event_bookings
		WHERE event_id = $1 AND canceled IS NULL`, eventID,
	).Scan(&enrolled, &waiting)
	require.NoError(t, err)
	return enrolled, waiting
}

type BookingState struct {
	Enrolled  bool
	Canceled  bool
	Paid      bool
	PayerIBAN *string
}

func LoadBookingState(t *testing.T, db DBLike, bookingID int32) BookingState {
	t.Helper()

	var s BookingState
	err := db.QueryRow(context.Background(), `
		SELECT enrolled, canceled IS NOT NULL, payed IS NOT NULL, payer_iban
		FROM event_bookings WHERE id = $1`, bookingID,
	).Scan(&s.Enrolled, &s.Canceled, &s.Paid, &s.PayerIBAN)
	require.NoError(t, err)
	return s
}

func CountJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1", kind,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, "ALTER SEQUENCE payment_id RESTART")
	return err
}
