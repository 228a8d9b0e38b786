package repository_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"club-booking/internal/domain/event"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/infra/repository"
	repositorymock "club-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func numeric(units int64, exp int32) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(units), Exp: exp, Valid: true}
}

func eventRow() query.Event {
	return query.Event{
		ID:              7,
		Name:            "Skikurs",
		EventType:       "Events",
		LifecycleStatus: "Published",
		MaxSubscribers:  12,
		MaxWaitingList:  4,
		Subscribers:     11,
		WaitingList:     0,
		CostMember:      numeric(2700, -2),
		CostNonMember:   numeric(3350, -2),
	}
}

func TestEventRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockEventWriteQueries, query.DBTX)
		want       *event.Event
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row converted to domain event",
			setupMock: func(m *repositorymock.MockEventWriteQueries, db query.DBTX) {
				m.EXPECT().LockEvent(ctx, db, int32(7)).Return(eventRow(), nil)
			},
			want: &event.Event{
				ID:             7,
				Name:           "Skikurs",
				Type:           "Events",
				Status:         event.StatusPublished,
				MaxSubscribers: 12,
				MaxWaitingList: 4,
				Subscribers:    11,
				CostMember:     decimal.RequireFromString("27.00"),
				CostNonMember:  decimal.RequireFromString("33.50"),
			},
		},
		{
			name: "error: event missing",
			setupMock: func(m *repositorymock.MockEventWriteQueries, db query.DBTX) {
				m.EXPECT().LockEvent(ctx, db, int32(7)).Return(query.Event{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: unknown lifecycle status in row",
			setupMock: func(m *repositorymock.MockEventWriteQueries, db query.DBTX) {
				row := eventRow()
				row.LifecycleStatus = "Gone"
				m.EXPECT().LockEvent(ctx, db, int32(7)).Return(row, nil)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: cost is null",
			setupMock: func(m *repositorymock.MockEventWriteQueries, db query.DBTX) {
				row := eventRow()
				row.CostNonMember = pgtype.Numeric{}
				m.EXPECT().LockEvent(ctx, db, int32(7)).Return(row, nil)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: lock fails",
			setupMock: func(m *repositorymock.MockEventWriteQueries, db query.DBTX) {
				m.EXPECT().LockEvent(ctx, db, int32(7)).Return(query.Event{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			got, err := repository.NewEventRepository(mockQueries).LockByID(ctx, mockDB, 7)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.CostMember.Equal(got.CostMember))
			assert.True(t, tc.want.CostNonMember.Equal(got.CostNonMember))
			got.CostMember, got.CostNonMember = tc.want.CostMember, tc.want.CostNonMember
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEventRepository_UpdateCounters(t *testing.T) {
	ctx := context.Background()
	e := &event.Event{ID: 7, Subscribers: 12, WaitingList: 1}
	params := query.UpdateEventCountersParams{ID: 7, Subscribers: 12, WaitingList: 1}

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", affected: 1},
		{name: "error: no row updated", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: check constraint rejects counters", queryErr: pgCheckViolation(), expectKind: infra.KindCheckViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpdateEventCounters(ctx, mockDB, params).Return(tc.affected, tc.queryErr)

			err := repository.NewEventRepository(mockQueries).UpdateCounters(ctx, mockDB, e)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
