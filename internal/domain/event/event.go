package event

import (
	"club-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type ID int32

// Unlimited as a limit means the pool is never exhausted.
const Unlimited int32 = -1

type Decision int

const (
	DecisionBookedOut Decision = iota
	DecisionEnrolled
	DecisionWaitingList
)

func (d Decision) String() string {
	switch d {
	case DecisionEnrolled:
		return "enrolled"
	case DecisionWaitingList:
		return "waiting_list"
	default:
		return "booked_out"
	}
}

type Event struct {
	ID             ID
	Name           string
	Type           string
	Status         LifecycleStatus
	MaxSubscribers int32
	MaxWaitingList int32
	Subscribers    int32
	WaitingList    int32
	CostMember     decimal.Decimal
	CostNonMember  decimal.Decimal
}

type Counter struct {
	ID             ID
	MaxSubscribers int32
	MaxWaitingList int32
	Subscribers    int32
	WaitingList    int32
}

func (e *Event) Counter() Counter {
	return Counter{
		ID:             e.ID,
		MaxSubscribers: e.MaxSubscribers,
		MaxWaitingList: e.MaxWaitingList,
		Subscribers:    e.Subscribers,
		WaitingList:    e.WaitingList,
	}
}

func hasRoom(limit, count int32) bool {
	return limit == Unlimited || count < limit
}

func (e *Event) HasSeat() bool {
	return hasRoom(e.MaxSubscribers, e.Subscribers)
}

func (e *Event) HasWaitingSpot() bool {
	return hasRoom(e.MaxWaitingList, e.WaitingList)
}

// Allocate decides the outcome of one booking attempt and bumps the matching
// counter. The caller must hold the event exclusively while doing so.
func (e *Event) Allocate() Decision {
	switch {
	case e.HasSeat():
		e.Subscribers++
		return DecisionEnrolled
	case e.HasWaitingSpot():
		e.WaitingList++
		return DecisionWaitingList
	default:
		return DecisionBookedOut
	}
}

// Release frees the slot held by a canceled booking. When a waiting list
// entry is promoted the seat is handed over and only the waiting list shrinks.
func (e *Event) Release(wasEnrolled, promoted bool) error {
	switch {
	case wasEnrolled && promoted:
		if e.WaitingList <= 0 {
			return errs.Wrapf(errs.ErrCounterUnderflow, "event %d waiting list", e.ID)
		}
		e.WaitingList--
	case wasEnrolled:
		if e.Subscribers <= 0 {
			return errs.Wrapf(errs.ErrCounterUnderflow, "event %d subscribers", e.ID)
		}
		e.Subscribers--
	default:
		if e.WaitingList <= 0 {
			return errs.Wrapf(errs.ErrCounterUnderflow, "event %d waiting list", e.ID)
		}
		e.WaitingList--
	}
	return nil
}

func (e *Event) Cost(member bool) decimal.Decimal {
	if member {
		return e.CostMember
	}
	return e.CostNonMember
}
