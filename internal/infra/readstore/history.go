package readstore

import (
	"context"
	"time"

	"referral-pricing/internal/infra"
	"referral-pricing/internal/infra/repository/converter"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/pgconv"
	"referral-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryReadQueries interface {
	GetPriceChangeHistoryFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPriceChangeHistoryFirstPageParams) ([]sqlc.PriceChangeHistory, error)
	GetPriceChangeHistoryKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPriceChangeHistoryKeysetParams) ([]sqlc.PriceChangeHistory, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) FindBySubscriptionFirstPage(ctx context.Context, subscriptionID string, limit int32) ([]*queries.HistoryView, error) {
	rows, err := r.queries.GetPriceChangeHistoryFirstPage(ctx, r.db, sqlc.GetPriceChangeHistoryFirstPageParams{
		ReferrerSubscriptionID: subscriptionID,
		Limit:                  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price change history first page", err)
	}
	return toHistoryViews(rows)
}

func (r *HistoryReadStore) FindBySubscriptionKeyset(ctx context.Context, subscriptionID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryView, error) {
	rows, err := r.queries.GetPriceChangeHistoryKeyset(ctx, r.db, sqlc.GetPriceChangeHistoryKeysetParams{
		ReferrerSubscriptionID: subscriptionID,
		LastCreatedAt:          pgconv.TimeToPgtype(lastCreatedAt),
		LastID:                 lastID,
		RowLimit:               limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price change history with keyset", err)
	}
	return toHistoryViews(rows)
}

func toHistoryViews(rows []sqlc.PriceChangeHistory) ([]*queries.HistoryView, error) {
	result := make([]*queries.HistoryView, 0, len(rows))
	for _, row := range rows {
		before, err := converter.MoneyFromNumeric("price_before", row.PriceBefore)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode history row", err, infra.KindDBFailure)
		}
		after, err := converter.MoneyFromNumeric("price_after", row.PriceAfter)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode history row", err, infra.KindDBFailure)
		}
		reduction, err := converter.MoneyFromNumeric("reduction_amount", row.ReductionAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode history row", err, infra.KindDBFailure)
		}
		details, err := pgconv.MapFromJSON(row.ExecutionDetails)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode history details", err, infra.KindDBFailure)
		}
		result = append(result, &queries.HistoryView{
			ID:                     row.ID,
			ReferrerSubscriptionID: row.ReferrerSubscriptionID,
			ReferredOrderID:        row.ReferredOrderID,
			Action:                 row.Action,
			PriceBefore:            before,
			PriceAfter:             after,
			ReductionAmount:        reduction,
			ExecutionStatus:        row.ExecutionStatus,
			ExecutionDetails:       details,
			UserNotified:           row.UserNotified,
			CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return result, nil
}
