package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/payment"
	"club-booking/internal/infra/db/query"
)

type OutstandingBookingReadStore interface {
	// FindByPaymentIDs returns the bookings keyed by payment id; unknown ids
	// are absent from the map.
	FindByPaymentIDs(ctx context.Context, db query.DBTX, paymentIDs []string) (map[string]payment.OutstandingBooking, error)
}

type StatementParser interface {
	Parse(ctx context.Context, text string, since *time.Time) ([]payment.Record, error)
}

// TokenCodec turns id tuples into opaque link tokens and back.
type TokenCodec interface {
	Encode(ids ...int64) (string, error)
	Decode(token string) ([]int64, error)
}

type OutcomeRecorder interface {
	RecordOutcome(operation string, kind booking.OutcomeKind)
}

type ReconciliationRecorder interface {
	RecordReconciliation(paid, problems, unmatched int)
}
