package queries

//go:generate mockgen -source=event.go -destination=../../../tests/mock/queries/event.go -package=queriesmock

import (
	"context"

	"club-booking/internal/domain/event"
)

type EventReadStore interface {
	CountersByStatus(ctx context.Context, status event.LifecycleStatus) ([]event.Counter, error)
}

type EventQueries interface {
	// CountersByStatus lists the booking counters of all events in the
	// named lifecycle status.
	CountersByStatus(ctx context.Context, status string) ([]event.Counter, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) CountersByStatus(ctx context.Context, status string) ([]event.Counter, error) {
	st, err := event.ParseLifecycleStatus(status)
	if err != nil {
		return nil, err
	}
	return q.store.CountersByStatus(ctx, st)
}
