package response

import (
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PriceChangeResponse struct {
	ID                     uuid.UUID       `json:"id"`
	ReferrerSubscriptionID string          `json:"referrer_subscription_id"`
	ReferredOrderID        string          `json:"referred_order_id"`
	Action                 string          `json:"action"`
	OriginalPrice          money.Money     `json:"original_price" swaggertype:"string"`
	NewPrice               money.Money     `json:"new_price" swaggertype:"string"`
	ReductionAmount        money.Money     `json:"reduction_amount" swaggertype:"string"`
	ReductionPercentage    decimal.Decimal `json:"reduction_percentage" swaggertype:"string"`
	ReferredContribution   money.Money     `json:"referred_contribution" swaggertype:"string"`
	ScheduledDate          time.Time       `json:"scheduled_date"`
	Status                 string          `json:"status"`
	RetryCount             int32           `json:"retry_count"`
	Metadata               map[string]any  `json:"metadata,omitempty"`
	AppliedDate            *time.Time      `json:"applied_date,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func FromPriceChangeViews(items []*queries.PriceChangeView) ([]*PriceChangeResponse, error) {
	res := make([]*PriceChangeResponse, 0, len(items))
	if err := copier.Copy(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type HistoryResponse struct {
	ID                     uuid.UUID      `json:"id"`
	ReferrerSubscriptionID string         `json:"referrer_subscription_id"`
	ReferredOrderID        string         `json:"referred_order_id"`
	Action                 string         `json:"action"`
	PriceBefore            money.Money    `json:"price_before" swaggertype:"string"`
	PriceAfter             money.Money    `json:"price_after" swaggertype:"string"`
	ReductionAmount        money.Money    `json:"reduction_amount" swaggertype:"string"`
	ExecutionStatus        string         `json:"execution_status"`
	ExecutionDetails       map[string]any `json:"execution_details,omitempty"`
	UserNotified           bool           `json:"user_notified"`
	CreatedAt              time.Time      `json:"created_at"`
}

func FromHistoryViews(items []*queries.HistoryView) ([]*HistoryResponse, error) {
	res := make([]*HistoryResponse, 0, len(items))
	if err := copier.Copy(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type StatsResponse struct {
	TotalScheduled    int64           `json:"total_scheduled"`
	TotalPending      int64           `json:"total_pending"`
	TotalApplied      int64           `json:"total_applied"`
	TotalFailed       int64           `json:"total_failed"`
	TotalCancelled    int64           `json:"total_cancelled"`
	CumulativeSavings money.Money     `json:"cumulative_savings" swaggertype:"string"`
	SuccessRate       decimal.Decimal `json:"success_rate" swaggertype:"string"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		TotalScheduled:    v.TotalScheduled,
		TotalPending:      v.TotalPending,
		TotalApplied:      v.TotalApplied,
		TotalFailed:       v.TotalFailed,
		TotalCancelled:    v.TotalCancelled,
		CumulativeSavings: v.CumulativeSavings,
		SuccessRate:       v.SuccessRate,
	}
}

type OutcomeResponse struct {
	JobID          uuid.UUID           `json:"job_id"`
	Outcome        pricechange.Outcome `json:"outcome"`
	DeliveryStatus string              `json:"delivery_status"`
	Attempts       int32               `json:"attempts"`
	LastError      *string             `json:"last_error,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func FromOutcomeViews(items []*queries.OutcomeView) []*OutcomeResponse {
	res := make([]*OutcomeResponse, len(items))
	for i, it := range items {
		res[i] = &OutcomeResponse{
			JobID:          it.JobID,
			Outcome:        it.Outcome,
			DeliveryStatus: it.DeliveryStatus,
			Attempts:       it.Attempts,
			LastError:      it.LastError,
			CreatedAt:      it.CreatedAt,
		}
	}
	return res
}

type QualifyResponse struct {
	Outcome    string     `json:"outcome"`
	ScheduleID *uuid.UUID `json:"schedule_id,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

type ApplyResponse struct {
	Outcome    string     `json:"outcome"`
	ScheduleID *uuid.UUID `json:"schedule_id,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func NewQualifyResponse(outcome, reason string, id uuid.UUID) *QualifyResponse {
	return &QualifyResponse{Outcome: outcome, ScheduleID: optionalID(id), Reason: reason}
}

func NewApplyResponse(outcome, reason string, id uuid.UUID) *ApplyResponse {
	return &ApplyResponse{Outcome: outcome, ScheduleID: optionalID(id), Reason: reason}
}
