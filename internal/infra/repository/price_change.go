package repository

import (
	"context"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra"
	"referral-pricing/internal/infra/repository/converter"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PriceChangeWriteQueries interface {
	CreateScheduledPriceChange(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduledPriceChangeParams) error
	ClaimPriceChange(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPriceChangeParams) (int64, error)
	ReleasePriceChangeClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleasePriceChangeClaimParams) (int64, error)
	MarkPriceChangeApplied(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPriceChangeAppliedParams) (int64, error)
	MarkPriceChangeFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPriceChangeFailedParams) (int64, error)
	MarkPriceChangeCancelled(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPriceChangeCancelledParams) (int64, error)
}

type PriceChangeRepository struct {
	queries PriceChangeWriteQueries
	db      sqlc.DBTX
}

func NewPriceChangeRepository(queries PriceChangeWriteQueries, db sqlc.DBTX) *PriceChangeRepository {
	return &PriceChangeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PriceChangeRepository) Create(ctx context.Context, tx sqlc.DBTX, entry *pricechange.ScheduledPriceChange) error {
	params, err := converter.PriceChangeToCreateParams(entry)
	if err != nil {
		return infra.WrapRepoErr("failed to encode scheduled price change", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateScheduledPriceChange(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create scheduled price change", err)
	}
	return nil
}

func (r *PriceChangeRepository) Claim(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32, leaseUntil, now time.Time) (bool, error) {
	n, err := r.queries.ClaimPriceChange(ctx, tx, sqlc.ClaimPriceChangeParams{
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		ID:         id,
		Version:    version,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim scheduled price change", err)
	}
	return n == 1, nil
}

func (r *PriceChangeRepository) Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32) (bool, error) {
	n, err := r.queries.ReleasePriceChangeClaim(ctx, tx, sqlc.ReleasePriceChangeClaimParams{
		ID:      id,
		Version: version,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release scheduled price change claim", err)
	}
	return n == 1, nil
}

func (r *PriceChangeRepository) MarkApplied(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32, appliedAt time.Time) (bool, error) {
	n, err := r.queries.MarkPriceChangeApplied(ctx, tx, sqlc.MarkPriceChangeAppliedParams{
		AppliedAt: pgconv.TimeToPgtype(appliedAt),
		ID:        id,
		Version:   version,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark price change applied", err)
	}
	return n == 1, nil
}

func (r *PriceChangeRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32, next pricechange.FailureTransition, at time.Time) (bool, error) {
	meta, err := pgconv.MapToJSON(next.Metadata)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode failure metadata", err, infra.KindDBFailure)
	}
	n, err := r.queries.MarkPriceChangeFailed(ctx, tx, sqlc.MarkPriceChangeFailedParams{
		Status:     next.Status.String(),
		RetryCount: int32(next.RetryCount), // #nosec G115 -- bounded by max attempts
		Metadata:   meta,
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		Version:    version,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark price change failed", err)
	}
	return n == 1, nil
}

func (r *PriceChangeRepository) MarkCancelled(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, metadata map[string]any, at time.Time) (bool, error) {
	meta, err := pgconv.MapToJSON(metadata)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode cancellation metadata", err, infra.KindDBFailure)
	}
	n, err := r.queries.MarkPriceChangeCancelled(ctx, tx, sqlc.MarkPriceChangeCancelledParams{
		Metadata:  meta,
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark price change cancelled", err)
	}
	return n == 1, nil
}
