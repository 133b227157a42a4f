package queries

import (
	"context"
	"strings"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceChangeView represents read-optimized schedule entry data
type PriceChangeView struct {
	ID                     uuid.UUID
	ReferrerSubscriptionID string
	ReferredOrderID        string
	Action                 string
	OriginalPrice          money.Money
	NewPrice               money.Money
	ReductionAmount        money.Money
	ReductionPercentage    decimal.Decimal
	ReferredContribution   money.Money
	ScheduledDate          time.Time
	Status                 string
	RetryCount             int32
	Metadata               map[string]any
	AppliedDate            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type HistoryView struct {
	ID                     uuid.UUID
	ReferrerSubscriptionID string
	ReferredOrderID        string
	Action                 string
	PriceBefore            money.Money
	PriceAfter             money.Money
	ReductionAmount        money.Money
	ExecutionStatus        string
	ExecutionDetails       map[string]any
	UserNotified           bool
	CreatedAt              time.Time
}

type StatsView struct {
	TotalScheduled    int64
	TotalPending      int64
	TotalApplied      int64
	TotalFailed       int64
	TotalCancelled    int64
	CumulativeSavings money.Money
	// SuccessRate is applied / (applied + failed) in percent; pending and cancelled entries are not resolved outcomes.
	SuccessRate decimal.Decimal
}

type OutcomeView struct {
	JobID          uuid.UUID
	Outcome        pricechange.Outcome
	DeliveryStatus string
	Attempts       int32
	LastError      *string
	CreatedAt      time.Time
}

type PriceChangeReadStore interface {
	ListBySubscription(ctx context.Context, subscriptionID string, status *pricechange.Status, limit int32) ([]*PriceChangeView, error)
	GetStats(ctx context.Context) (*StatsView, error)
}

type HistoryReadStore interface {
	FindBySubscriptionFirstPage(ctx context.Context, subscriptionID string, limit int32) ([]*HistoryView, error)
	FindBySubscriptionKeyset(ctx context.Context, subscriptionID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*HistoryView, error)
}

type OutcomeReadStore interface {
	FindFirstPage(ctx context.Context, limit int32) ([]*OutcomeView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OutcomeView, error)
}

type PriceChangeQueries interface {
	ListBySubscription(ctx context.Context, subscriptionID, status string, limit int) ([]*PriceChangeView, error)
	ListHistory(ctx context.Context, subscriptionID string, cursor *Cursor, limit int) ([]*HistoryView, *Cursor, error)
	GetStats(ctx context.Context) (*StatsView, error)
	ListOutcomes(ctx context.Context, cursor *Cursor, limit int) ([]*OutcomeView, *Cursor, error)
}

type priceChangeQueriesImpl struct {
	entries  PriceChangeReadStore
	history  HistoryReadStore
	outcomes OutcomeReadStore
}

func NewPriceChangeQueries(entries PriceChangeReadStore, history HistoryReadStore, outcomes OutcomeReadStore) PriceChangeQueries {
	return &priceChangeQueriesImpl{entries: entries, history: history, outcomes: outcomes}
}

func (q *priceChangeQueriesImpl) ListBySubscription(ctx context.Context, subscriptionID, status string, limit int) ([]*PriceChangeView, error) {
	var filter *pricechange.Status
	if s := strings.TrimSpace(status); s != "" {
		st := pricechange.Status(strings.ToLower(s))
		if !st.IsValid() {
			return nil, errs.ErrInvalidStatusFilter
		}
		filter = &st
	}
	return q.entries.ListBySubscription(ctx, subscriptionID, filter, int32(ValidateLimit(limit))) // #nosec G115 -- capped at MaxListLimit
}

func (q *priceChangeQueriesImpl) ListHistory(ctx context.Context, subscriptionID string, cursor *Cursor, limit int) ([]*HistoryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- capped at MaxListLimit

	var (
		items []*HistoryView
		err   error
	)
	if cursor == nil || cursor.After == "" {
		items, err = q.history.FindBySubscriptionFirstPage(ctx, subscriptionID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrInvalidCursor)
		}
		items, err = q.history.FindBySubscriptionKeyset(ctx, subscriptionID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

func (q *priceChangeQueriesImpl) GetStats(ctx context.Context) (*StatsView, error) {
	return q.entries.GetStats(ctx)
}

func (q *priceChangeQueriesImpl) ListOutcomes(ctx context.Context, cursor *Cursor, limit int) ([]*OutcomeView, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- capped at MaxListLimit

	var (
		items []*OutcomeView
		err   error
	)
	if cursor == nil || cursor.After == "" {
		items, err = q.outcomes.FindFirstPage(ctx, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrInvalidCursor)
		}
		items, err = q.outcomes.FindKeyset(ctx, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.JobID)}
	}
	return items, next, nil
}

// SuccessRate returns applied / (applied + failed) * 100 rounded to 2 places.
func SuccessRate(applied, failed int64) decimal.Decimal {
	resolved := applied + failed
	if resolved == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(applied).Div(decimal.NewFromInt(resolved)).Mul(decimal.NewFromInt(100)).Round(2)
}
