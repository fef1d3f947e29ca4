package components

import (
	"recipe-scheduler/internal/infra/dispatch"
	"recipe-scheduler/internal/infra/readstore"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/infra/uow"
	"recipe-scheduler/internal/usecase/queries"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleViewQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work, so only it and the
// dispatcher that writes through it are provided here.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			dispatch.NewOutboxDispatcher,
			fx.As(new(shared.ReminderDispatcher)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
