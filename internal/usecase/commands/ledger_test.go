package commands_test

import (
	"context"
	"errors"
	"testing"

	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedger_Allocate(t *testing.T) {
	ctx := context.Background()

	noDuplicate := func(context.Context, shared.Tx, *event.Event) (bool, error) { return false, nil }
	duplicate := func(context.Context, shared.Tx, *event.Event) (bool, error) { return true, nil }

	testCases := []struct {
		name         string
		event        *event.Event
		probe        commands.DuplicateProbe
		wantUpdate   gomock.Matcher
		wantStatus   commands.AllocationStatus
		wantDecision event.Decision
	}{
		{
			name:         "seat free: enrolled",
			event:        openEvent(2, 1, 1, 0),
			probe:        noDuplicate,
			wantUpdate:   counters(2, 0),
			wantStatus:   commands.AllocationGranted,
			wantDecision: event.DecisionEnrolled,
		},
		{
			name:         "seats full: waiting list",
			event:        openEvent(2, 1, 2, 0),
			probe:        noDuplicate,
			wantUpdate:   counters(2, 1),
			wantStatus:   commands.AllocationGranted,
			wantDecision: event.DecisionWaitingList,
		},
		{
			name:         "unlimited seats",
			event:        openEvent(event.Unlimited, 0, 500, 0),
			wantUpdate:   counters(501, 0),
			wantStatus:   commands.AllocationGranted,
			wantDecision: event.DecisionEnrolled,
		},
		{
			name:         "everything taken: booked out without write",
			event:        openEvent(2, 1, 2, 1),
			probe:        noDuplicate,
			wantStatus:   commands.AllocationBookedOut,
			wantDecision: event.DecisionBookedOut,
		},
		{
			name:       "duplicate: counters untouched",
			event:      openEvent(2, 1, 0, 0),
			probe:      duplicate,
			wantStatus: commands.AllocationDuplicate,
		},
		{
			name: "closed event: rejected before duplicate check",
			event: func() *event.Event {
				e := openEvent(2, 1, 0, 0)
				e.Status = event.StatusClosed
				return e
			}(),
			probe:      duplicate,
			wantStatus: commands.AllocationNotBookable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.events.EXPECT().LockByID(ctx, f.db, event.ID(7)).Return(tc.event, nil)
			if tc.wantUpdate != nil {
				f.events.EXPECT().UpdateCounters(ctx, f.db, tc.wantUpdate).Return(nil)
			}

			alloc, err := commands.NewLedger().Allocate(ctx, f.tx, 7, tc.probe)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, alloc.Status)
			assert.Equal(t, tc.wantDecision, alloc.Decision)
			assert.Same(t, tc.event, alloc.Event)
		})
	}
}

func TestLedger_AllocatePreBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("review phase admits", func(t *testing.T) {
		f := newFixture(t)
		e := openEvent(5, 0, 0, 0)
		e.Status = event.StatusReview
		f.events.EXPECT().LockByID(ctx, f.db, event.ID(7)).Return(e, nil)
		f.events.EXPECT().UpdateCounters(ctx, f.db, counters(1, 0)).Return(nil)

		alloc, err := commands.NewLedger().AllocatePreBooking(ctx, f.tx, 7, nil)

		require.NoError(t, err)
		assert.Equal(t, commands.AllocationGranted, alloc.Status)
	})

	t.Run("published event is closed for pre-booking", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().LockByID(ctx, f.db, event.ID(7)).Return(openEvent(5, 0, 0, 0), nil)

		alloc, err := commands.NewLedger().AllocatePreBooking(ctx, f.tx, 7, nil)

		require.NoError(t, err)
		assert.Equal(t, commands.AllocationNotBookable, alloc.Status)
	})
}

func TestLedger_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing event", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().LockByID(ctx, f.db, event.ID(7)).
			Return(nil, infra.WrapRepoErr("failed to lock event", pgx.ErrNoRows))

		_, err := commands.NewLedger().Allocate(ctx, f.tx, 7, nil)

		assert.True(t, errs.Is(err, errs.ErrEventNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("probe failure aborts before counters change", func(t *testing.T) {
		f := newFixture(t)
		probeErr := errors.New("probe failed")
		f.events.EXPECT().LockByID(ctx, f.db, event.ID(7)).Return(openEvent(2, 0, 0, 0), nil)

		_, err := commands.NewLedger().Allocate(ctx, f.tx, 7, func(context.Context, shared.Tx, *event.Event) (bool, error) {
			return false, probeErr
		})

		assert.ErrorIs(t, err, probeErr)
	})

	t.Run("counter write failure", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().LockByID(ctx, f.db, event.ID(7)).Return(openEvent(2, 0, 0, 0), nil)
		f.events.EXPECT().UpdateCounters(ctx, f.db, gomock.Any()).Return(infra.WrapRepoErr("failed", errors.New("io")))

		_, err := commands.NewLedger().Allocate(ctx, f.tx, 7, nil)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
