package readstore

import (
	"context"

	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
)

type EventCounterQueries interface {
	ListEventCountersByStatus(ctx context.Context, db query.DBTX, status string) ([]query.ListEventCountersByStatusRow, error)
}

type EventReadStore struct {
	queries EventCounterQueries
	db      query.DBTX
}

func NewEventReadStore(queries EventCounterQueries, db query.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) CountersByStatus(ctx context.Context, status event.LifecycleStatus) ([]event.Counter, error) {
	rows, err := r.queries.ListEventCountersByStatus(ctx, r.db, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event counters", err)
	}

	counters := make([]event.Counter, 0, len(rows))
	for _, row := range rows {
		counters = append(counters, event.Counter{
			ID:             event.ID(row.ID),
			MaxSubscribers: row.MaxSubscribers,
			MaxWaitingList: row.MaxWaitingList,
			Subscribers:    row.Subscribers,
			WaitingList:    row.WaitingList,
		})
	}
	return counters, nil
}
