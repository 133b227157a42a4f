package pricechange

import (
	"maps"
	"time"

	"referral-pricing/internal/domain/money"

	"github.com/google/uuid"
)

// HistoryRecord is one immutable audit row per scheduling outcome.
type HistoryRecord struct {
	ID                     uuid.UUID
	ReferrerSubscriptionID string
	ReferredOrderID        string
	Action                 Action
	PriceBefore            money.Money
	PriceAfter             money.Money
	ReductionAmount        money.Money
	ExecutionStatus        ExecutionStatus
	ExecutionDetails       map[string]any
	UserNotified           bool
	CreatedAt              time.Time
}

func newHistory(entry *ScheduledPriceChange, status ExecutionStatus, details map[string]any, now time.Time) HistoryRecord {
	d := map[string]any{
		"schedule_id": entry.ID().String(),
	}
	maps.Copy(d, details)
	return HistoryRecord{
		ID:                     uuid.New(),
		ReferrerSubscriptionID: entry.ReferrerSubscriptionID(),
		ReferredOrderID:        entry.ReferredOrderID(),
		Action:                 entry.Action(),
		PriceBefore:            entry.OriginalPrice(),
		PriceAfter:             entry.NewPrice(),
		ReductionAmount:        entry.ReductionAmount(),
		ExecutionStatus:        status,
		ExecutionDetails:       d,
		CreatedAt:              now,
	}
}

func NewSuccessHistory(entry *ScheduledPriceChange, appliedAt time.Time, recovered bool) HistoryRecord {
	details := map[string]any{
		MetaAppliedAt:  appliedAt.UTC().Format(time.RFC3339Nano),
		MetaRetryCount: entry.RetryCount(),
	}
	if recovered {
		details[MetaRecovered] = true
	}
	return newHistory(entry, ExecutionSuccess, details, appliedAt)
}

// NewFailureHistory records the retry count the row will carry after the failure.
// price_after stays at the live price since nothing was mutated.
func NewFailureHistory(entry *ScheduledPriceChange, message string, kind FailureKind, next FailureTransition, livePrice *money.Money, now time.Time) HistoryRecord {
	details := map[string]any{
		"error":         message,
		MetaFailureKind: string(kind),
		MetaRetryCount:  next.RetryCount,
		"terminal":      next.Status == StatusFailed,
	}
	rec := newHistory(entry, ExecutionFailed, details, now)
	rec.PriceAfter = entry.OriginalPrice()
	if livePrice != nil {
		rec.ExecutionDetails[MetaLivePrice] = livePrice.String()
		rec.PriceBefore = *livePrice
		rec.PriceAfter = *livePrice
	}
	return rec
}

func NewCancelledHistory(entry *ScheduledPriceChange, reason string, now time.Time) HistoryRecord {
	rec := newHistory(entry, ExecutionCancelled, map[string]any{
		MetaCancellationReason: reason,
		MetaRetryCount:         entry.RetryCount(),
	}, now)
	rec.PriceAfter = entry.OriginalPrice()
	return rec
}

// Outcome is the notification payload for a terminal transition.
type Outcome struct {
	ScheduleID             uuid.UUID   `json:"schedule_id"`
	ReferrerSubscriptionID string      `json:"referrer_subscription_id"`
	ReferredOrderID        string      `json:"referred_order_id"`
	CustomerID             string      `json:"customer_id"`
	Status                 Status      `json:"status"`
	OriginalPrice          money.Money `json:"original_price"`
	NewPrice               money.Money `json:"new_price"`
	ReductionAmount        money.Money `json:"reduction_amount"`
	Reason                 string      `json:"reason,omitempty"`
	OccurredAt             time.Time   `json:"occurred_at"`
}

func NewOutcome(entry *ScheduledPriceChange, status Status, reason string, at time.Time) Outcome {
	return Outcome{
		ScheduleID:             entry.ID(),
		ReferrerSubscriptionID: entry.ReferrerSubscriptionID(),
		ReferredOrderID:        entry.ReferredOrderID(),
		CustomerID:             entry.ReferrerCustomerID(),
		Status:                 status,
		OriginalPrice:          entry.OriginalPrice(),
		NewPrice:               entry.NewPrice(),
		ReductionAmount:        entry.ReductionAmount(),
		Reason:                 reason,
		OccurredAt:             at,
	}
}
