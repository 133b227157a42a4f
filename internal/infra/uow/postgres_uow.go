package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra/readstore"
	"referral-pricing/internal/infra/repository"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	txMaxRetries = 3
	txRetryBase  = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt owns its pgx.Tx so nothing is deferred across retries.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.runOnce(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = txRetryBase
	policy.MaxElapsedTime = 0
	bo := backoff.WithContext(backoff.WithMaxRetries(policy, txMaxRetries), ctx)

	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, bo, notify)
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries",
			"attempts", attempt,
			"error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "attempt_error", err.Error(), "error", rollbackErr.Error())
		}
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	priceChangeRepo  shared.PriceChangeRepository
	historyRepo      shared.HistoryRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) PriceChanges() shared.PriceChangeRepository {
	if t.priceChangeRepo == nil {
		t.priceChangeRepo = repository.NewPriceChangeRepository(t.uow.q, t.dbtx)
	}
	return t.priceChangeRepo
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository(t.uow.q, t.dbtx)
	}
	return t.historyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	priceChangeStore *readstore.PriceChangeReadStore
}

func (r *commandReads) store() *readstore.PriceChangeReadStore {
	if r.priceChangeStore == nil {
		r.priceChangeStore = readstore.NewPriceChangeReadStore(r.uow.q, r.dbtx)
	}
	return r.priceChangeStore
}

func (r *commandReads) PendingBySubscription(ctx context.Context, subscriptionID string) (*pricechange.ScheduledPriceChange, error) {
	return r.store().FindPendingBySubscription(ctx, r.dbtx, subscriptionID)
}

func (r *commandReads) PriceChangeByID(ctx context.Context, id uuid.UUID) (*pricechange.ScheduledPriceChange, error) {
	return r.store().FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) RetryCandidates(ctx context.Context, now time.Time, limit int32) ([]*pricechange.ScheduledPriceChange, error) {
	return r.store().FindRetryCandidates(ctx, r.dbtx, now, limit)
}
