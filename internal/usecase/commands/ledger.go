package commands

import (
	"context"

	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"
)

type AllocationStatus int

const (
	// AllocationGranted means a seat or waiting list spot was taken; the
	// Decision tells which.
	AllocationGranted AllocationStatus = iota
	AllocationBookedOut
	AllocationNotBookable
	AllocationDuplicate
)

type Allocation struct {
	Status   AllocationStatus
	Decision event.Decision
	Event    *event.Event
}

// DuplicateProbe runs under the event row lock before any counter changes.
// Returning true aborts the allocation as a duplicate.
type DuplicateProbe func(ctx context.Context, tx shared.Tx, e *event.Event) (bool, error)

// Ledger performs the locked read-check-increment on event counters. It must
// be called inside UnitOfWork.Within; the row lock is held until commit.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Allocate admits events whose lifecycle status is open for bookings.
func (l *Ledger) Allocate(ctx context.Context, tx shared.Tx, eventID event.ID, probe DuplicateProbe) (*Allocation, error) {
	return l.allocate(ctx, tx, eventID, event.LifecycleStatus.IsBookable, probe)
}

// AllocatePreBooking only admits events still in the early booking phase.
func (l *Ledger) AllocatePreBooking(ctx context.Context, tx shared.Tx, eventID event.ID, probe DuplicateProbe) (*Allocation, error) {
	return l.allocate(ctx, tx, eventID, event.LifecycleStatus.AcceptsPreBooking, probe)
}

func (l *Ledger) allocate(ctx context.Context, tx shared.Tx, eventID event.ID, admits func(event.LifecycleStatus) bool, probe DuplicateProbe) (*Allocation, error) {
	e, err := tx.Events().LockByID(ctx, tx.DB(), eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, err
	}

	if !admits(e.Status) {
		return &Allocation{Status: AllocationNotBookable, Event: e}, nil
	}

	if probe != nil {
		duplicate, err := probe(ctx, tx, e)
		if err != nil {
			return nil, err
		}
		if duplicate {
			return &Allocation{Status: AllocationDuplicate, Event: e}, nil
		}
	}

	decision := e.Allocate()
	if decision == event.DecisionBookedOut {
		return &Allocation{Status: AllocationBookedOut, Decision: decision, Event: e}, nil
	}

	if err := tx.Events().UpdateCounters(ctx, tx.DB(), e); err != nil {
		return nil, err
	}
	return &Allocation{Status: AllocationGranted, Decision: decision, Event: e}, nil
}
