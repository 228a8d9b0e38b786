package query

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, name, event_type, lifecycle_status,
       max_subscribers, max_waiting_list, subscribers, waiting_list,
       cost_member, cost_non_member`

func scanEvent(row pgx.Row) (Event, error) {
	var e Event
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.EventType,
		&e.LifecycleStatus,
		&e.MaxSubscribers,
		&e.MaxWaitingList,
		&e.Subscribers,
		&e.WaitingList,
		&e.CostMember,
		&e.CostNonMember,
	)
	return e, err
}

const lockEvent = `SELECT ` + eventColumns + `
FROM events
WHERE id = $1
FOR UPDATE`

// LockEvent reads the event row and holds its lock until the transaction ends.
func (q *Queries) LockEvent(ctx context.Context, db DBTX, id int32) (Event, error) {
	return scanEvent(db.QueryRow(ctx, lockEvent, id))
}

const getEvent = `SELECT ` + eventColumns + `
FROM events
WHERE id = $1`

func (q *Queries) GetEvent(ctx context.Context, db DBTX, id int32) (Event, error) {
	return scanEvent(db.QueryRow(ctx, getEvent, id))
}

const updateEventCounters = `UPDATE events
SET subscribers = $2, waiting_list = $3
WHERE id = $1`

type UpdateEventCountersParams struct {
	ID          int32
	Subscribers int32
	WaitingList int32
}

func (q *Queries) UpdateEventCounters(ctx context.Context, db DBTX, arg UpdateEventCountersParams) (int64, error) {
	tag, err := db.Exec(ctx, updateEventCounters, arg.ID, arg.Subscribers, arg.WaitingList)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listEventCountersByStatus = `SELECT id, max_subscribers, max_waiting_list, subscribers, waiting_list
FROM events
WHERE lifecycle_status = $1
ORDER BY id`

type ListEventCountersByStatusRow struct {
	ID             int32
	MaxSubscribers int32
	MaxWaitingList int32
	Subscribers    int32
	WaitingList    int32
}

func (q *Queries) ListEventCountersByStatus(ctx context.Context, db DBTX, status string) ([]ListEventCountersByStatusRow, error) {
	rows, err := db.Query(ctx, listEventCountersByStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ListEventCountersByStatusRow{}
	for rows.Next() {
		var i ListEventCountersByStatusRow
		if err := rows.Scan(
			&i.ID,
			&i.MaxSubscribers,
			&i.MaxWaitingList,
			&i.Subscribers,
			&i.WaitingList,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
