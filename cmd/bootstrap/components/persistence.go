package components

import (
	"club-booking/internal/infra/db/query"
	"club-booking/internal/infra/readstore"
	"club-booking/internal/infra/uow"
	"club-booking/internal/usecase/queries"
	"club-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Event counters
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.EventCounterQueries)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		// Outstanding bookings
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.OutstandingBookingQueries)),
		),
		fx.Annotate(
			readstore.NewOutstandingBookingReadStore,
			fx.As(new(shared.OutstandingBookingReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
