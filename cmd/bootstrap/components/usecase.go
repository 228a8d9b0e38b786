package components

import (
	"club-booking/internal/infra/metrics"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/usecase"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
	"club-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewLedger,
	func(r *metrics.Recorder) shared.OutcomeRecorder { return r },
	func(r *metrics.Recorder) shared.ReconciliationRecorder { return r },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
