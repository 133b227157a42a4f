package repository

import (
	"context"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra"
	"referral-pricing/internal/infra/repository/converter"
	sqlc "referral-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HistoryWriteQueries interface {
	CreatePriceChangeHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePriceChangeHistoryParams) error
	PrunePriceChangeHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.PrunePriceChangeHistoryParams) (int64, error)
	MarkHistoryUserNotified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkHistoryUserNotifiedParams) (int64, error)
}

type HistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *HistoryRepository {
	return &HistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, rec pricechange.HistoryRecord) error {
	params, err := converter.HistoryToCreateParams(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to encode price change history", err, infra.KindDBFailure)
	}
	if err := r.queries.CreatePriceChangeHistory(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append price change history", err)
	}
	return nil
}

// Prune keeps the newest `keep` rows for the subscription.
func (r *HistoryRepository) Prune(ctx context.Context, tx sqlc.DBTX, subscriptionID string, keep int32) (int64, error) {
	n, err := r.queries.PrunePriceChangeHistory(ctx, tx, sqlc.PrunePriceChangeHistoryParams{
		ReferrerSubscriptionID: subscriptionID,
		Keep:                   keep,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune price change history", err)
	}
	return n, nil
}

func (r *HistoryRepository) MarkNotified(ctx context.Context, tx sqlc.DBTX, scheduleID uuid.UUID, status pricechange.ExecutionStatus) (int64, error) {
	n, err := r.queries.MarkHistoryUserNotified(ctx, tx, sqlc.MarkHistoryUserNotifiedParams{
		ScheduleID:      scheduleID.String(),
		ExecutionStatus: status.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark history notified", err)
	}
	return n, nil
}
