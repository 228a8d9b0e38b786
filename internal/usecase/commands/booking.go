package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/infra/repository"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/money"
	"club-booking/internal/usecase/shared"
)

// Notification job kinds written to the outbox.
const (
	JobBookingConfirmed   = "booking.confirmed"
	JobBookingWaitingList = "booking.waiting_list"
	JobBookingCanceled    = "booking.canceled"
	JobBookingPromoted    = "booking.promoted"

	notificationTopic = "email"
)

const (
	OperationBook    = "book"
	OperationPreBook = "prebook"
)

type CancelResult struct {
	Canceled *booking.Booking
	// Promoted is the waiting list booking that took over the seat, if any.
	Promoted *booking.Booking
	Counter  event.Counter
}

type BookingCommands interface {
	Book(ctx context.Context, req booking.Request) (booking.Outcome, error)
	PreBook(ctx context.Context, token string) (booking.Outcome, error)
	Cancel(ctx context.Context, bookingID int32) (*CancelResult, error)
	IssuePreBookingToken(ctx context.Context, eventID event.ID, subscriberID int32) (string, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	ledger   *Ledger
	codec    shared.TokenCodec
	clock    clock.Clock
	recorder shared.OutcomeRecorder
}

func NewBookingUseCase(uow shared.UnitOfWork, ledger *Ledger, codec shared.TokenCodec, clk clock.Clock, recorder shared.OutcomeRecorder) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		ledger:   ledger,
		codec:    codec,
		clock:    clk,
		recorder: recorder,
	}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, req booking.Request) (booking.Outcome, error) {
	var outcome booking.Outcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var subscriber *booking.Subscriber
		probe := func(ctx context.Context, tx shared.Tx, e *event.Event) (bool, error) {
			s, err := tx.Subscribers().FindByContact(ctx, tx.DB(), req.Contact, req.Member)
			if err != nil || s == nil {
				return false, err
			}
			subscriber = s
			return tx.Bookings().ExistsForSubscriber(ctx, tx.DB(), e.ID, s.ID)
		}

		alloc, err := uc.ledger.Allocate(ctx, tx, req.EventID, probe)
		if err != nil {
			return err
		}
		if o := rejected(alloc, booking.ReasonLifecycle, false); o != nil {
			outcome = o
			return nil
		}

		if subscriber == nil {
			subscriber, err = tx.Subscribers().Create(ctx, tx.DB(), req.Contact, req.Member)
			if err != nil {
				return err
			}
		}

		o, err := uc.persist(ctx, tx, alloc, subscriber, false, req.Comment)
		if err != nil {
			return err
		}

		if req.Updates {
			if err := tx.Subscriptions().Subscribe(ctx, tx.DB(), req.Contact.Email, alloc.Event.Type); err != nil {
				return err
			}
		}
		outcome = o
		return nil
	})

	return uc.finish(OperationBook, req.EventID, outcome, err)
}

func (uc *bookingUseCaseImpl) PreBook(ctx context.Context, token string) (booking.Outcome, error) {
	eventID, subscriberID, err := uc.decodeToken(token)
	if err != nil {
		slog.Warn("pre-booking link rejected", "error", err.Error())
		return nil, err
	}

	var outcome booking.Outcome
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		subscriber, err := tx.Subscribers().FindByID(ctx, tx.DB(), subscriberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrInvalidPreBookingToken)
			}
			return err
		}

		probe := func(ctx context.Context, tx shared.Tx, e *event.Event) (bool, error) {
			return tx.Bookings().ExistsForSubscriber(ctx, tx.DB(), e.ID, subscriber.ID)
		}

		alloc, err := uc.ledger.AllocatePreBooking(ctx, tx, eventID, probe)
		if err != nil {
			return err
		}
		if o := rejected(alloc, booking.ReasonPreBookingClosed, true); o != nil {
			outcome = o
			return nil
		}

		outcome, err = uc.persist(ctx, tx, alloc, subscriber, true, nil)
		return err
	})

	return uc.finish(OperationPreBook, eventID, outcome, err)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID int32) (*CancelResult, error) {
	var result *CancelResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return err
		}

		// event before booking, the same lock order as the booking path
		e, err := tx.Events().LockByID(ctx, tx.DB(), b.EventID)
		if err != nil {
			return err
		}
		b, err = tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if b.IsCanceled() {
			return errs.Wrapf(errs.ErrBookingAlreadyCanceled, "booking %d", bookingID)
		}

		now := uc.clock.Now()
		if err := tx.Bookings().Cancel(ctx, tx.DB(), b.ID, now); err != nil {
			return err
		}
		b.CanceledAt = &now

		var promoted *booking.Booking
		if b.Enrolled {
			promoted, err = tx.Bookings().LockFirstWaiting(ctx, tx.DB(), e.ID)
			if err != nil {
				return err
			}
			if promoted != nil {
				if err := tx.Bookings().Enroll(ctx, tx.DB(), promoted.ID); err != nil {
					return err
				}
				promoted.Enrolled = true
			}
		}

		if err := e.Release(b.Enrolled, promoted != nil); err != nil {
			return err
		}
		if err := tx.Events().UpdateCounters(ctx, tx.DB(), e); err != nil {
			return err
		}

		if err := uc.notify(ctx, tx, JobBookingCanceled, b, e); err != nil {
			return err
		}
		if promoted != nil {
			if err := uc.notify(ctx, tx, JobBookingPromoted, promoted, e); err != nil {
				return err
			}
		}

		result = &CancelResult{Canceled: b, Promoted: promoted, Counter: e.Counter()}
		return nil
	})
	if err != nil {
		slog.Error("cancel failed", "booking_id", bookingID, "error", err.Error())
		return nil, err
	}

	attrs := []any{"booking_id", bookingID, "event_id", result.Counter.ID}
	if result.Promoted != nil {
		attrs = append(attrs, "promoted_booking_id", result.Promoted.ID)
	}
	slog.Info("booking canceled", attrs...)
	return result, nil
}

func (uc *bookingUseCaseImpl) IssuePreBookingToken(ctx context.Context, eventID event.ID, subscriberID int32) (string, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Subscribers().FindByID(ctx, tx.DB(), subscriberID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrSubscriberNotFound)
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return uc.codec.Encode(int64(eventID), int64(subscriberID))
}

func (uc *bookingUseCaseImpl) decodeToken(token string) (event.ID, int32, error) {
	ids, err := uc.codec.Decode(token)
	if err != nil {
		return 0, 0, err
	}
	if len(ids) != 2 {
		return 0, 0, errs.Wrapf(errs.ErrInvalidPreBookingToken, "expected 2 ids, got %d", len(ids))
	}
	for _, id := range ids {
		if id <= 0 || id > math.MaxInt32 {
			return 0, 0, errs.Wrapf(errs.ErrInvalidPreBookingToken, "id %d out of range", id)
		}
	}
	return event.ID(ids[0]), int32(ids[1]), nil
}

// persist stores the booking that echoes a granted allocation and queues the
// matching notification.
func (uc *bookingUseCaseImpl) persist(ctx context.Context, tx shared.Tx, alloc *Allocation, subscriber *booking.Subscriber, preBooking bool, comment *string) (booking.Outcome, error) {
	now := uc.clock.Now()
	paymentID, err := tx.Bookings().NextPaymentID(ctx, tx.DB(), now.Year())
	if err != nil {
		return nil, err
	}

	b := booking.New(alloc.Event.ID, subscriber.ID, alloc.Decision, preBooking, comment, paymentID, now)
	if b.ID, err = tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		return nil, err
	}

	payload := notificationPayload(b, alloc.Event, subscriber)

	if b.Enrolled {
		if err := uc.enqueue(ctx, tx, JobBookingConfirmed, payload); err != nil {
			return nil, err
		}
		return booking.Confirmed{Booking: b, Event: alloc.Event, Subscriber: subscriber}, nil
	}
	if err := uc.enqueue(ctx, tx, JobBookingWaitingList, payload); err != nil {
		return nil, err
	}
	return booking.WaitingListed{Booking: b, Event: alloc.Event, Subscriber: subscriber}, nil
}

// notify queues a job about b, addressed to the subscriber who holds it.
func (uc *bookingUseCaseImpl) notify(ctx context.Context, tx shared.Tx, kind string, b *booking.Booking, e *event.Event) error {
	s, err := tx.Subscribers().FindByID(ctx, tx.DB(), b.SubscriberID)
	if err != nil {
		return err
	}
	return uc.enqueue(ctx, tx, kind, notificationPayload(b, e, s))
}

func (uc *bookingUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, notificationTopic, body, uc.clock.Now())
}

// finish maps late duplicate detection, records metrics and logs the outcome.
func (uc *bookingUseCaseImpl) finish(operation string, eventID event.ID, outcome booking.Outcome, err error) (booking.Outcome, error) {
	if err != nil {
		switch {
		case isDuplicateBooking(err):
			outcome = booking.DuplicateBooking{PreBooking: operation == OperationPreBook}
		case isPaymentIDCollision(err):
			err = errs.Mark(err, errs.ErrPaymentIDsExhausted)
			slog.Error("payment id range exhausted, no booking can be stored until the sequence is reset",
				"operation", operation, "event_id", eventID, "error", err.Error())
			return nil, err
		default:
			slog.Error(operation+" failed", "event_id", eventID, "error", err.Error())
			return nil, err
		}
	}

	uc.recorder.RecordOutcome(operation, outcome.Kind())

	attrs := []any{"operation", operation, "event_id", eventID, "outcome", string(outcome.Kind())}
	switch o := outcome.(type) {
	case booking.Confirmed:
		slog.Info("booking confirmed", append(attrs, "booking_id", o.Booking.ID, "payment_id", o.Booking.PaymentID.String())...)
	case booking.WaitingListed:
		slog.Info("booking placed on waiting list", append(attrs, "booking_id", o.Booking.ID, "payment_id", o.Booking.PaymentID.String())...)
	default:
		slog.Warn("booking rejected", attrs...)
	}
	return outcome, nil
}

// rejected returns the outcome for allocations that did not take a slot.
func rejected(alloc *Allocation, closed booking.NotBookableReason, preBooking bool) booking.Outcome {
	switch alloc.Status {
	case AllocationNotBookable:
		return booking.NotBookable{Reason: closed}
	case AllocationDuplicate:
		return booking.DuplicateBooking{PreBooking: preBooking}
	case AllocationBookedOut:
		return booking.BookedOut{Event: alloc.Event}
	default:
		return nil
	}
}

func isDuplicateBooking(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.Constraint(err) == repository.BookingSubscriberConstraint
}

func isPaymentIDCollision(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.Constraint(err) == repository.BookingPaymentIDConstraint
}

func notificationPayload(b *booking.Booking, e *event.Event, s *booking.Subscriber) map[string]any {
	return map[string]any{
		"booking_id":  b.ID,
		"event_id":    e.ID,
		"event_name":  e.Name,
		"payment_id":  b.PaymentID.String(),
		"enrolled":    b.Enrolled,
		"pre_booking": b.PreBooking,
		"email":       s.Contact.Email,
		"name":        s.Contact.FullName(),
		"amount":      money.FormatEuro(e.Cost(s.Member)),
	}
}
