package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const subscriberColumns = `id, first_name, last_name, street, city, email, phone, member`

func scanEventSubscriber(row pgx.Row) (EventSubscriber, error) {
	var s EventSubscriber
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Street,
		&s.City,
		&s.Email,
		&s.Phone,
		&s.Member,
	)
	return s, err
}

const findSubscriberByContact = `SELECT ` + subscriberColumns + `
FROM event_subscribers
WHERE first_name = $1
  AND last_name = $2
  AND street = $3
  AND city = $4
  AND email = $5
  AND phone IS NOT DISTINCT FROM $6
  AND member = $7
ORDER BY id
LIMIT 1`

type SubscriberContactParams struct {
	FirstName string
	LastName  string
	Street    string
	City      string
	Email     string
	Phone     pgtype.Text
	Member    bool
}

func (q *Queries) FindSubscriberByContact(ctx context.Context, db DBTX, arg SubscriberContactParams) (EventSubscriber, error) {
	row := db.QueryRow(ctx, findSubscriberByContact,
		arg.FirstName,
		arg.LastName,
		arg.Street,
		arg.City,
		arg.Email,
		arg.Phone,
		arg.Member,
	)
	return scanEventSubscriber(row)
}

const insertSubscriber = `INSERT INTO event_subscribers (
    first_name, last_name, street, city, email, phone, member
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
)
RETURNING id`

func (q *Queries) InsertSubscriber(ctx context.Context, db DBTX, arg SubscriberContactParams) (int32, error) {
	var id int32
	err := db.QueryRow(ctx, insertSubscriber,
		arg.FirstName,
		arg.LastName,
		arg.Street,
		arg.City,
		arg.Email,
		arg.Phone,
		arg.Member,
	).Scan(&id)
	return id, err
}

const getSubscriber = `SELECT ` + subscriberColumns + `
FROM event_subscribers
WHERE id = $1`

func (q *Queries) GetSubscriber(ctx context.Context, db DBTX, id int32) (EventSubscriber, error) {
	return scanEventSubscriber(db.QueryRow(ctx, getSubscriber, id))
}
