package readstore

import (
	"context"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra"
	"referral-pricing/internal/infra/repository/converter"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/pgconv"
	"referral-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceChangeReadQueries interface {
	GetPendingPriceChangeBySubscription(ctx context.Context, db sqlc.DBTX, referrerSubscriptionID string) (sqlc.ScheduledPriceChanges, error)
	GetPriceChangeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ScheduledPriceChanges, error)
	ListRetryCandidatePriceChanges(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRetryCandidatePriceChangesParams) ([]sqlc.ScheduledPriceChanges, error)
	ListPriceChangesBySubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPriceChangesBySubscriptionParams) ([]sqlc.ScheduledPriceChanges, error)
	ListPriceChangesBySubscriptionAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPriceChangesBySubscriptionAndStatusParams) ([]sqlc.ScheduledPriceChanges, error)
	GetPriceChangeStats(ctx context.Context, db sqlc.DBTX) (sqlc.GetPriceChangeStatsRow, error)
}

type PriceChangeReadStore struct {
	queries PriceChangeReadQueries
	db      sqlc.DBTX
}

func NewPriceChangeReadStore(queries PriceChangeReadQueries, db sqlc.DBTX) *PriceChangeReadStore {
	return &PriceChangeReadStore{
		queries: queries,
		db:      db,
	}
}

// FindPendingBySubscription returns the entity for write-side use.
func (r *PriceChangeReadStore) FindPendingBySubscription(ctx context.Context, db sqlc.DBTX, subscriptionID string) (*pricechange.ScheduledPriceChange, error) {
	row, err := r.queries.GetPendingPriceChangeBySubscription(ctx, db, subscriptionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending price change not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pending price change", err)
	}
	entry, err := converter.PriceChangeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode pending price change", err, infra.KindDBFailure)
	}
	return entry, nil
}

func (r *PriceChangeReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*pricechange.ScheduledPriceChange, error) {
	row, err := r.queries.GetPriceChangeByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price change not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get price change by id", err)
	}
	entry, err := converter.PriceChangeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price change", err, infra.KindDBFailure)
	}
	return entry, nil
}

// FindRetryCandidates returns unclaimed pending rows with at least one failure; backoff is filtered by the caller.
func (r *PriceChangeReadStore) FindRetryCandidates(ctx context.Context, db sqlc.DBTX, now time.Time, limit int32) ([]*pricechange.ScheduledPriceChange, error) {
	rows, err := r.queries.ListRetryCandidatePriceChanges(ctx, db, sqlc.ListRetryCandidatePriceChangesParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list retry candidates", err)
	}
	entries, err := converter.PriceChangesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode retry candidates", err, infra.KindDBFailure)
	}
	return entries, nil
}

func (r *PriceChangeReadStore) ListBySubscription(ctx context.Context, subscriptionID string, status *pricechange.Status, limit int32) ([]*queries.PriceChangeView, error) {
	var (
		rows []sqlc.ScheduledPriceChanges
		err  error
	)
	if status == nil {
		rows, err = r.queries.ListPriceChangesBySubscription(ctx, r.db, sqlc.ListPriceChangesBySubscriptionParams{
			ReferrerSubscriptionID: subscriptionID,
			Limit:                  limit,
		})
	} else {
		rows, err = r.queries.ListPriceChangesBySubscriptionAndStatus(ctx, r.db, sqlc.ListPriceChangesBySubscriptionAndStatusParams{
			ReferrerSubscriptionID: subscriptionID,
			Status:                 status.String(),
			Limit:                  limit,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list price changes by subscription", err)
	}

	result := make([]*queries.PriceChangeView, 0, len(rows))
	for _, row := range rows {
		view, err := toPriceChangeView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode price change view", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *PriceChangeReadStore) GetStats(ctx context.Context) (*queries.StatsView, error) {
	row, err := r.queries.GetPriceChangeStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price change stats", err)
	}
	savings, err := converter.MoneyFromNumeric("cumulative_savings", row.CumulativeSavings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cumulative savings", err, infra.KindDBFailure)
	}
	return &queries.StatsView{
		TotalScheduled:    row.TotalScheduled,
		TotalPending:      row.TotalPending,
		TotalApplied:      row.TotalApplied,
		TotalFailed:       row.TotalFailed,
		TotalCancelled:    row.TotalCancelled,
		CumulativeSavings: savings,
		SuccessRate:       queries.SuccessRate(row.TotalApplied, row.TotalFailed),
	}, nil
}

func toPriceChangeView(row sqlc.ScheduledPriceChanges) (*queries.PriceChangeView, error) {
	entry, err := converter.PriceChangeFromRow(row)
	if err != nil {
		return nil, err
	}
	return &queries.PriceChangeView{
		ID:                     entry.ID(),
		ReferrerSubscriptionID: entry.ReferrerSubscriptionID(),
		ReferredOrderID:        entry.ReferredOrderID(),
		Action:                 entry.Action().String(),
		OriginalPrice:          entry.OriginalPrice(),
		NewPrice:               entry.NewPrice(),
		ReductionAmount:        entry.ReductionAmount(),
		ReductionPercentage:    entry.ReductionPercentage(),
		ReferredContribution:   entry.ReferredContribution(),
		ScheduledDate:          entry.ScheduledDate(),
		Status:                 entry.Status().String(),
		RetryCount:             row.RetryCount,
		Metadata:               entry.Metadata(),
		AppliedDate:            entry.AppliedDate(),
		CreatedAt:              entry.CreatedAt(),
		UpdatedAt:              entry.UpdatedAt(),
	}, nil
}
