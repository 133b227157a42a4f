package components

import (
	"log/slog"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra/readstore"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/infra/store"
	"referral-pricing/internal/infra/uow"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/config"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/internal/usecase/queries"
	"referral-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// PriceChange
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PriceChangeReadQueries)),
		),
		fx.Annotate(
			readstore.NewPriceChangeReadStore,
			fx.As(new(queries.PriceChangeReadStore)),
		),
		// History
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HistoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
		// Outcome
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OutcomeReadQueries)),
		),
		fx.Annotate(
			readstore.NewOutcomeReadStore,
			fx.As(new(queries.OutcomeReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			NewScheduleStore,
			fx.As(new(commands.ScheduleStore)),
		),
	),
)

func NewScheduleStore(u shared.UnitOfWork, clk clock.Clock, policy pricechange.RetryPolicy, cfg config.Config, logger *slog.Logger) *store.PostgresScheduleStore {
	return store.NewPostgresScheduleStore(u, clk, policy, store.Options{
		Timeout:          cfg.Scheduler.StoreTimeout,
		HistoryRetention: cfg.Scheduler.HistoryRetentionPerSubs,
	}, logger.With("component", "schedule_store"))
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
