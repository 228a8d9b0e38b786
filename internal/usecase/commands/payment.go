package commands

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"club-booking/internal/domain/payment"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/usecase/shared"
)

type PaymentCommands interface {
	// VerifyPayments reconciles a bank statement against outstanding
	// bookings and marks the clean matches paid.
	VerifyPayments(ctx context.Context, statement string, since *time.Time) (*payment.Reconciliation, error)
}

type paymentUseCaseImpl struct {
	uow         shared.UnitOfWork
	parser      shared.StatementParser
	outstanding shared.OutstandingBookingReadStore
	clock       clock.Clock
	recorder    shared.ReconciliationRecorder
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	parser shared.StatementParser,
	outstanding shared.OutstandingBookingReadStore,
	clk clock.Clock,
	recorder shared.ReconciliationRecorder,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:         uow,
		parser:      parser,
		outstanding: outstanding,
		clock:       clk,
		recorder:    recorder,
	}
}

func (uc *paymentUseCaseImpl) VerifyPayments(ctx context.Context, statement string, since *time.Time) (*payment.Reconciliation, error) {
	records, err := uc.parser.Parse(ctx, statement, since)
	if err != nil {
		slog.Warn("statement rejected", "error", err.Error())
		return nil, err
	}

	refs := singleReferences(records)
	var bookings map[string]payment.OutstandingBooking
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		bookings, err = uc.outstanding.FindByPaymentIDs(ctx, db, refs)
		return err
	})
	if err != nil {
		slog.Error("failed to load outstanding bookings", "error", err.Error())
		return nil, err
	}

	result := payment.Reconcile(records, bookings)

	if len(result.Paid) > 0 {
		now := uc.clock.Now()
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			for _, b := range result.Paid {
				if err := tx.Bookings().MarkPaid(ctx, tx.DB(), b.BookingID, result.Payers[b.PaymentID], now); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			slog.Error("failed to mark bookings paid", "count", len(result.Paid), "error", err.Error())
			return nil, err
		}
	}

	uc.recorder.RecordReconciliation(len(result.Report.Paid.Items), len(result.Report.Problems.Items), len(result.Report.Unmatched.Items))
	slog.Info("payments verified",
		"records", len(records),
		"paid", len(result.Report.Paid.Items),
		"problems", len(result.Report.Problems.Items),
		"unmatched", len(result.Report.Unmatched.Items))

	return &result, nil
}

// singleReferences collects the distinct references of records eligible for
// matching.
func singleReferences(records []payment.Record) []string {
	seen := make(map[string]struct{}, len(records))
	refs := make([]string, 0, len(records))
	for _, r := range records {
		if len(r.References) != 1 {
			continue
		}
		ref := r.References[0]
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}
