package event

import (
	"club-booking/internal/pkg/errs"
)

type LifecycleStatus string

const (
	StatusDraft     LifecycleStatus = "Draft"
	StatusReview    LifecycleStatus = "Review"
	StatusPublished LifecycleStatus = "Published"
	StatusRunning   LifecycleStatus = "Running"
	StatusFinished  LifecycleStatus = "Finished"
	StatusClosed    LifecycleStatus = "Closed"
	StatusArchived  LifecycleStatus = "Archived"
)

func ParseLifecycleStatus(s string) (LifecycleStatus, error) {
	switch st := LifecycleStatus(s); st {
	case StatusDraft, StatusReview, StatusPublished, StatusRunning, StatusFinished, StatusClosed, StatusArchived:
		return st, nil
	default:
		return "", errs.Mark(errs.Newf("unknown lifecycle status %q", s), errs.ErrDomainValidation)
	}
}

// IsBookable reports whether events in this status accept bookings.
func (s LifecycleStatus) IsBookable() bool {
	switch s {
	case StatusReview, StatusPublished, StatusRunning:
		return true
	default:
		return false
	}
}

// AcceptsPreBooking is true only during the early booking phase.
func (s LifecycleStatus) AcceptsPreBooking() bool {
	return s == StatusReview
}

func (s LifecycleStatus) String() string {
	return string(s)
}
