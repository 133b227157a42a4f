package readstore

import (
	"context"
	"encoding/json"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/pgconv"
	"referral-pricing/internal/usecase/queries"
	"referral-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutcomeReadQueries interface {
	GetOutcomeJobsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOutcomeJobsFirstPageParams) ([]sqlc.NotificationJobs, error)
	GetOutcomeJobsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOutcomeJobsKeysetParams) ([]sqlc.NotificationJobs, error)
}

// OutcomeReadStore serves the terminal-outcome feed straight from the outbox table.
type OutcomeReadStore struct {
	queries OutcomeReadQueries
	db      sqlc.DBTX
}

func NewOutcomeReadStore(queries OutcomeReadQueries, db sqlc.DBTX) *OutcomeReadStore {
	return &OutcomeReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *OutcomeReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.OutcomeView, error) {
	rows, err := s.queries.GetOutcomeJobsFirstPage(ctx, s.db, sqlc.GetOutcomeJobsFirstPageParams{
		Kind:  shared.NotificationKindOutcome,
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get outcome feed", err)
	}
	return toOutcomeViews(rows)
}

func (s *OutcomeReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OutcomeView, error) {
	rows, err := s.queries.GetOutcomeJobsKeyset(ctx, s.db, sqlc.GetOutcomeJobsKeysetParams{
		Kind:          shared.NotificationKindOutcome,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get outcome feed with keyset", err)
	}
	return toOutcomeViews(rows)
}

func toOutcomeViews(rows []sqlc.NotificationJobs) ([]*queries.OutcomeView, error) {
	result := make([]*queries.OutcomeView, 0, len(rows))
	for _, row := range rows {
		var outcome pricechange.Outcome
		if err := json.Unmarshal(row.Payload, &outcome); err != nil {
			return nil, infra.WrapRepoErr("failed to decode outcome payload", err, infra.KindDBFailure)
		}
		result = append(result, &queries.OutcomeView{
			JobID:          row.ID,
			Outcome:        outcome,
			DeliveryStatus: row.Status,
			Attempts:       row.Attempts,
			LastError:      pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return result, nil
}
