package shared

import (
	"context"
	"time"

	"referral-pricing/internal/domain/pricechange"
	sqlc "referral-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: pending-entry lookups outside of a transaction
	Reads() CommandReads
}

type Tx interface {
	PriceChanges() PriceChangeRepository
	History() HistoryRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PendingBySubscription(ctx context.Context, subscriptionID string) (*pricechange.ScheduledPriceChange, error)
	PriceChangeByID(ctx context.Context, id uuid.UUID) (*pricechange.ScheduledPriceChange, error)
	RetryCandidates(ctx context.Context, now time.Time, limit int32) ([]*pricechange.ScheduledPriceChange, error)
}

// Conditional writes report whether a row matched; false means a concurrent writer got there first.
type PriceChangeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, entry *pricechange.ScheduledPriceChange) error
	Claim(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32, leaseUntil, now time.Time) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32) (bool, error)
	MarkApplied(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32, appliedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, version int32, next pricechange.FailureTransition, at time.Time) (bool, error)
	MarkCancelled(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, metadata map[string]any, at time.Time) (bool, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, rec pricechange.HistoryRecord) error
	Prune(ctx context.Context, tx sqlc.DBTX, subscriptionID string, keep int32) (int64, error)
	MarkNotified(ctx context.Context, tx sqlc.DBTX, scheduleID uuid.UUID, status pricechange.ExecutionStatus) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimQueued(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt, now time.Time) error
}

// NotificationJob is the write-side view of one queued outbox row.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

const (
	NotificationKindOutcome = "price_change.outcome"

	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)
