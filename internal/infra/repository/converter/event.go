package converter

import (
	"club-booking/internal/domain/event"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/pgconv"
)

func EventFromRow(row query.Event) (*event.Event, error) {
	status, err := event.ParseLifecycleStatus(row.LifecycleStatus)
	if err != nil {
		return nil, err
	}
	costMember, err := pgconv.DecimalFromNumeric(row.CostMember)
	if err != nil {
		return nil, errs.Wrapf(err, "event %d: cost_member", row.ID)
	}
	costNonMember, err := pgconv.DecimalFromNumeric(row.CostNonMember)
	if err != nil {
		return nil, errs.Wrapf(err, "event %d: cost_non_member", row.ID)
	}

	return &event.Event{
		ID:             event.ID(row.ID),
		Name:           row.Name,
		Type:           row.EventType,
		Status:         status,
		MaxSubscribers: row.MaxSubscribers,
		MaxWaitingList: row.MaxWaitingList,
		Subscribers:    row.Subscribers,
		WaitingList:    row.WaitingList,
		CostMember:     costMember,
		CostNonMember:  costNonMember,
	}, nil
}

func EventToCounterParams(e *event.Event) query.UpdateEventCountersParams {
	return query.UpdateEventCountersParams{
		ID:          int32(e.ID),
		Subscribers: e.Subscribers,
		WaitingList: e.WaitingList,
	}
}
