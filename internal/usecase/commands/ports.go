package commands

import (
	"context"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/domain/subscription"

	"github.com/google/uuid"
)

// ScheduleStore persists scheduled price changes and their audit trail.
// Transition methods never fail on a lost race: they report Won=false instead.
type ScheduleStore interface {
	CreatePending(ctx context.Context, entry *pricechange.ScheduledPriceChange) (uuid.UUID, error)
	GetPending(ctx context.Context, subscriptionID string) (*pricechange.ScheduledPriceChange, error)
	GetByID(ctx context.Context, id uuid.UUID) (*pricechange.ScheduledPriceChange, error)
	Claim(ctx context.Context, entry *pricechange.ScheduledPriceChange, leaseUntil time.Time) (*pricechange.ScheduledPriceChange, bool, error)
	Release(ctx context.Context, entry *pricechange.ScheduledPriceChange) error
	MarkApplied(ctx context.Context, entry *pricechange.ScheduledPriceChange, appliedAt time.Time, recovered bool) (TransitionResult, error)
	MarkFailed(ctx context.Context, req FailureRequest) (TransitionResult, error)
	MarkCancelled(ctx context.Context, entry *pricechange.ScheduledPriceChange, reason string) (TransitionResult, error)
	ListRetryCandidates(ctx context.Context, now time.Time) ([]*pricechange.ScheduledPriceChange, error)
	AppendHistory(ctx context.Context, rec pricechange.HistoryRecord) error
}

// BillingGateway is the billing system's subscription read/write surface.
type BillingGateway interface {
	GetSubscription(ctx context.Context, subscriptionID string) (subscription.Snapshot, error)
	SetSubscriptionPrice(ctx context.Context, subscriptionID string, newPrice money.Money, note string) error
}

// Alerter routes storage failures to an operator.
type Alerter interface {
	StorageFailure(ctx context.Context, op string, err error, attrs map[string]string)
}

type Metrics interface {
	ScheduleCreated()
	ScheduleConflict()
	ReferralRejected(reason string)
	Applied(recovered bool)
	Failed(kind pricechange.FailureKind, terminal bool)
	Cancelled()
	ConcurrentNoop(op string)
	StorageError(op string)
	SweepCompleted(summary SweepSummary, elapsed time.Duration)
}

type TransitionResult struct {
	Won        bool
	Status     pricechange.Status
	RetryCount int
}

type FailureRequest struct {
	Entry     *pricechange.ScheduledPriceChange
	Message   string
	Kind      pricechange.FailureKind
	Permanent bool
	// LivePrice is the billing price observed during the attempt, when one was read.
	LivePrice *money.Money
}
