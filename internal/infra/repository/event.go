package repository

//go:generate mockgen -source=event.go -destination=../../../tests/mock/repository/event.go -package=repositorymock

import (
	"context"

	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/infra/repository/converter"
)

type EventWriteQueries interface {
	LockEvent(ctx context.Context, db query.DBTX, id int32) (query.Event, error)
	UpdateEventCounters(ctx context.Context, db query.DBTX, arg query.UpdateEventCountersParams) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{queries: queries}
}

func (r *EventRepository) LockByID(ctx context.Context, tx query.DBTX, id event.ID) (*event.Event, error) {
	row, err := r.queries.LockEvent(ctx, tx, int32(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}
	e, err := converter.EventFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event", err, infra.KindDBFailure)
	}
	return e, nil
}

func (r *EventRepository) UpdateCounters(ctx context.Context, tx query.DBTX, e *event.Event) error {
	affected, err := r.queries.UpdateEventCounters(ctx, tx, converter.EventToCounterParams(e))
	if err != nil {
		return infra.WrapRepoErr("failed to update event counters", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}
