package commands_test

import (
	"context"
	"testing"
	"time"

	"club-booking/internal/domain/event"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/shared"
	sharedmock "club-booking/tests/mock/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// stubDB is only ever passed through to repository mocks. The name keeps
// handles apart under gomock's deep equality.
type stubDB struct {
	query.DBTX
	name string
}

var now = time.Date(2022, 11, 3, 18, 30, 0, 0, time.UTC)

type fixture struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	events        *sharedmock.MockEventRepository
	bookings      *sharedmock.MockBookingRepository
	subscribers   *sharedmock.MockSubscriberRepository
	subscriptions *sharedmock.MockSubscriptionRepository
	notifications *sharedmock.MockNotificationRepository
	db            query.DBTX
	snapshot      query.DBTX
	clock         *clock.MockClock

	codec           *sharedmock.MockTokenCodec
	outcomes        *sharedmock.MockOutcomeRecorder
	parser          *sharedmock.MockStatementParser
	outstanding     *sharedmock.MockOutstandingBookingReadStore
	reconciliations *sharedmock.MockReconciliationRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		events:        sharedmock.NewMockEventRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		subscribers:   sharedmock.NewMockSubscriberRepository(ctrl),
		subscriptions: sharedmock.NewMockSubscriptionRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		db:            &stubDB{name: "tx"},
		snapshot:      &stubDB{name: "snapshot"},
		clock:         clock.NewMockClock(now),

		codec:           sharedmock.NewMockTokenCodec(ctrl),
		outcomes:        sharedmock.NewMockOutcomeRecorder(ctrl),
		parser:          sharedmock.NewMockStatementParser(ctrl),
		outstanding:     sharedmock.NewMockOutstandingBookingReadStore(ctrl),
		reconciliations: sharedmock.NewMockReconciliationRecorder(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, query.DBTX) error) error {
			return fn(ctx, f.snapshot)
		}).AnyTimes()
	f.tx.EXPECT().Events().Return(f.events).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Subscribers().Return(f.subscribers).AnyTimes()
	f.tx.EXPECT().Subscriptions().Return(f.subscriptions).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().DB().Return(f.db).AnyTimes()

	return f
}

func (f *fixture) bookingUseCase() commands.BookingCommands {
	return commands.NewBookingUseCase(f.uow, commands.NewLedger(), f.codec, f.clock, f.outcomes)
}

func (f *fixture) paymentUseCase() commands.PaymentCommands {
	return commands.NewPaymentUseCase(f.uow, f.parser, f.outstanding, f.clock, f.reconciliations)
}

// openEvent returns a published event with the given capacity and usage.
func openEvent(maxSubscribers, maxWaiting, subscribers, waiting int32) *event.Event {
	return &event.Event{
		ID:             7,
		Name:           "Skikurs",
		Type:           "Events",
		Status:         event.StatusPublished,
		MaxSubscribers: maxSubscribers,
		MaxWaitingList: maxWaiting,
		Subscribers:    subscribers,
		WaitingList:    waiting,
		CostMember:     decimal.RequireFromString("27"),
		CostNonMember:  decimal.RequireFromString("33.5"),
	}
}

// counters matches an event by its persisted counter values.
func counters(subscribers, waiting int32) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(*event.Event)
		return ok && e.Subscribers == subscribers && e.WaitingList == waiting
	})
}
