package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/infra/repository"
	repositorymock "club-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgUniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint", ConstraintName: constraint}
}

func pgCheckViolation() error {
	return &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}
}

var bookedAt = time.Date(2022, 11, 3, 18, 30, 0, 0, time.UTC)

func bookingRow() query.EventBooking {
	return query.EventBooking{
		ID:           41,
		EventID:      7,
		SubscriberID: 9,
		Enrolled:     true,
		Comment:      pgtype.Text{String: "vegetarisch", Valid: true},
		PaymentID:    "22-1423",
		Created:      pgtype.Timestamptz{Time: bookedAt, Valid: true},
	}
}

func newBookingRepo(t *testing.T) (*repository.BookingRepository, *repositorymock.MockBookingWriteQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := repositorymock.NewMockBookingWriteQueries(ctrl)
	return repository.NewBookingRepository(m), m, &mockDBTX{}
}

func TestBookingRepository_NextPaymentID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: year prefixed sequence", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().NextPaymentSequence(ctx, db).Return(int64(1423), nil)

		id, err := repo.NextPaymentID(ctx, db, 2022)

		require.NoError(t, err)
		assert.Equal(t, booking.PaymentID("22-1423"), id)
	})

	t.Run("error: sequence unavailable", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().NextPaymentSequence(ctx, db).Return(int64(0), errors.New("boom"))

		_, err := repo.NextPaymentID(ctx, db, 2022)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	comment := "vegetarisch"
	b := &booking.Booking{
		EventID:      7,
		SubscriberID: 9,
		Enrolled:     true,
		Comment:      &comment,
		PaymentID:    "22-1423",
		CreatedAt:    bookedAt,
	}
	params := query.InsertBookingParams{
		EventID:      7,
		SubscriberID: 9,
		Enrolled:     true,
		Comment:      pgtype.Text{String: "vegetarisch", Valid: true},
		PaymentID:    "22-1423",
		Created:      pgtype.Timestamptz{Time: bookedAt, Valid: true},
	}

	testCases := []struct {
		name           string
		queryErr       error
		expectKind     infra.RepositoryErrorKind
		wantConstraint string
	}{
		{name: "success: booking inserted"},
		{
			name:           "error: subscriber already booked",
			queryErr:       pgUniqueViolation(repository.BookingSubscriberConstraint),
			expectKind:     infra.KindDuplicateKey,
			wantConstraint: repository.BookingSubscriberConstraint,
		},
		{
			name:       "error: event vanished",
			queryErr:   &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, m, db := newBookingRepo(t)
			row := bookingRow()
			if tc.queryErr != nil {
				row = query.EventBooking{}
			}
			m.EXPECT().InsertBooking(ctx, db, params).Return(row, tc.queryErr)

			id, err := repo.Create(ctx, db, b)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, tc.wantConstraint, infra.Constraint(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(41), id)
		})
	}
}

func TestBookingRepository_Reads(t *testing.T) {
	ctx := context.Background()
	comment := "vegetarisch"
	want := &booking.Booking{
		ID:           41,
		EventID:      7,
		SubscriberID: 9,
		Enrolled:     true,
		Comment:      &comment,
		PaymentID:    "22-1423",
		CreatedAt:    bookedAt,
	}

	t.Run("FindByID maps row", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().GetBooking(ctx, db, int32(41)).Return(bookingRow(), nil)

		got, err := repo.FindByID(ctx, db, 41)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("LockByID keeps cancellation time", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		row := bookingRow()
		canceled := bookedAt.Add(time.Hour)
		row.Canceled = pgtype.Timestamptz{Time: canceled, Valid: true}
		m.EXPECT().LockBooking(ctx, db, int32(41)).Return(row, nil)

		got, err := repo.LockByID(ctx, db, 41)

		require.NoError(t, err)
		require.NotNil(t, got.CanceledAt)
		assert.True(t, got.IsCanceled())
		assert.Equal(t, canceled, *got.CanceledAt)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().GetBooking(ctx, db, int32(41)).Return(query.EventBooking{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, db, 41)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("ExistsForSubscriber", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().BookingExists(ctx, db, query.BookingExistsParams{EventID: 7, SubscriberID: 9}).Return(true, nil)

		exists, err := repo.ExistsForSubscriber(ctx, db, 7, 9)

		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestBookingRepository_LockFirstWaiting(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the oldest waiting booking", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		row := bookingRow()
		row.Enrolled = false
		m.EXPECT().LockFirstWaitingBooking(ctx, db, int32(7)).Return(row, nil)

		got, err := repo.LockFirstWaiting(ctx, db, 7)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.Enrolled)
	})

	t.Run("empty waiting list is not an error", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().LockFirstWaitingBooking(ctx, db, int32(7)).Return(query.EventBooking{}, pgx.ErrNoRows)

		got, err := repo.LockFirstWaiting(ctx, db, 7)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("lock failure", func(t *testing.T) {
		repo, m, db := newBookingRepo(t)
		m.EXPECT().LockFirstWaitingBooking(ctx, db, int32(7)).Return(query.EventBooking{}, &pgconn.PgError{Code: "40P01"})

		_, err := repo.LockFirstWaiting(ctx, db, 7)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_Updates(t *testing.T) {
	ctx := context.Background()
	at := bookedAt.Add(24 * time.Hour)

	testCases := []struct {
		name       string
		setup      func(*repositorymock.MockBookingWriteQueries, query.DBTX)
		run        func(*repository.BookingRepository, query.DBTX) error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "Cancel: success",
			setup: func(m *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				m.EXPECT().CancelBooking(ctx, db, query.CancelBookingParams{ID: 41, Canceled: pgtype.Timestamptz{Time: at, Valid: true}}).Return(int64(1), nil)
			},
			run: func(r *repository.BookingRepository, db query.DBTX) error { return r.Cancel(ctx, db, 41, at) },
		},
		{
			name: "Cancel: already canceled row not matched",
			setup: func(m *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				m.EXPECT().CancelBooking(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			run:        func(r *repository.BookingRepository, db query.DBTX) error { return r.Cancel(ctx, db, 41, at) },
			expectKind: infra.KindNotFound,
		},
		{
			name: "Enroll: success",
			setup: func(m *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				m.EXPECT().EnrollBooking(ctx, db, int32(42)).Return(int64(1), nil)
			},
			run: func(r *repository.BookingRepository, db query.DBTX) error { return r.Enroll(ctx, db, 42) },
		},
		{
			name: "Enroll: no waiting booking",
			setup: func(m *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				m.EXPECT().EnrollBooking(ctx, db, int32(42)).Return(int64(0), nil)
			},
			run:        func(r *repository.BookingRepository, db query.DBTX) error { return r.Enroll(ctx, db, 42) },
			expectKind: infra.KindNotFound,
		},
		{
			name: "MarkPaid: stores payer account",
			setup: func(m *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				m.EXPECT().MarkBookingPaid(ctx, db, query.MarkBookingPaidParams{
					ID:        41,
					Payed:     pgtype.Timestamptz{Time: at, Valid: true},
					PayerIban: pgtype.Text{String: "DE02120300000000202051", Valid: true},
				}).Return(int64(1), nil)
			},
			run: func(r *repository.BookingRepository, db query.DBTX) error {
				return r.MarkPaid(ctx, db, 41, "DE02120300000000202051", at)
			},
		},
		{
			name: "MarkPaid: database failure",
			setup: func(m *repositorymock.MockBookingWriteQueries, db query.DBTX) {
				m.EXPECT().MarkBookingPaid(ctx, db, gomock.Any()).Return(int64(0), errors.New("timeout"))
			},
			run: func(r *repository.BookingRepository, db query.DBTX) error {
				return r.MarkPaid(ctx, db, 41, "DE02120300000000202051", at)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, m, db := newBookingRepo(t)
			tc.setup(m, db)

			err := tc.run(repo, db)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
