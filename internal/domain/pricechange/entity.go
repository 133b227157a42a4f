package pricechange

import (
	"errors"
	"maps"
	"strings"
	"time"

	"referral-pricing/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingSubscription = errors.New("referrer subscription id is required")
	ErrMissingOrder        = errors.New("referred order id is required")
	ErrNegativeAmount      = errors.New("price change amounts must be non-negative")
	ErrMissingScheduleDate = errors.New("scheduled date is required")
	ErrNotPending          = errors.New("scheduled price change is not pending")
)

// FailureKind classifies why an apply attempt did not go through.
type FailureKind string

const (
	FailureDrift       FailureKind = "price_drift"
	FailureNotBillable FailureKind = "not_billable"
	FailureTerminated  FailureKind = "subscription_terminated"
	FailureBilling     FailureKind = "billing_error"
	FailureTimeout     FailureKind = "timeout"
	FailureNotFound    FailureKind = "subscription_not_found"
)

type ScheduledPriceChange struct {
	id                     uuid.UUID
	referrerSubscriptionID string
	referredOrderID        string
	action                 Action
	originalPrice          money.Money
	newPrice               money.Money
	reductionAmount        money.Money
	reductionPercentage    decimal.Decimal
	referredContribution   money.Money
	scheduledDate          time.Time
	status                 Status
	retryCount             int
	metadata               map[string]any
	createdAt              time.Time
	updatedAt              time.Time
	appliedDate            *time.Time
	version                int32
	claimedUntil           *time.Time
}

// NewScheduledPriceChange builds a pending entry from a finished calculation.
func NewScheduledPriceChange(
	subscriptionID, orderID string,
	calc Calculation,
	scheduledDate time.Time,
	metadata map[string]any,
	now time.Time,
) (*ScheduledPriceChange, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrMissingSubscription
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingOrder
	}
	if scheduledDate.IsZero() {
		return nil, ErrMissingScheduleDate
	}
	if calc.OriginalPrice.IsNegative() || calc.NewPrice.IsNegative() || calc.ReductionAmount.IsNegative() ||
		calc.ReductionPercentage.IsNegative() || calc.ReferredContribution.IsNegative() {
		return nil, ErrNegativeAmount
	}

	meta := make(map[string]any, len(metadata)+1)
	maps.Copy(meta, metadata)
	if len(calc.Metadata) > 0 {
		meta[MetaCalculation] = maps.Clone(calc.Metadata)
	}

	return &ScheduledPriceChange{
		id:                     uuid.New(),
		referrerSubscriptionID: strings.TrimSpace(subscriptionID),
		referredOrderID:        strings.TrimSpace(orderID),
		action:                 ActionApplyReduction,
		originalPrice:          calc.OriginalPrice,
		newPrice:               calc.NewPrice,
		reductionAmount:        calc.ReductionAmount,
		reductionPercentage:    calc.ReductionPercentage,
		referredContribution:   calc.ReferredContribution,
		scheduledDate:          scheduledDate,
		status:                 StatusPending,
		metadata:               meta,
		createdAt:              now,
		updatedAt:              now,
		version:                1,
	}, nil
}

type ReconstructParams struct {
	ID                     uuid.UUID
	ReferrerSubscriptionID string
	ReferredOrderID        string
	Action                 Action
	OriginalPrice          money.Money
	NewPrice               money.Money
	ReductionAmount        money.Money
	ReductionPercentage    decimal.Decimal
	ReferredContribution   money.Money
	ScheduledDate          time.Time
	Status                 Status
	RetryCount             int
	Metadata               map[string]any
	CreatedAt              time.Time
	UpdatedAt              time.Time
	AppliedDate            *time.Time
	Version                int32
	ClaimedUntil           *time.Time
}

func ReconstructScheduledPriceChange(p ReconstructParams) *ScheduledPriceChange {
	meta := p.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return &ScheduledPriceChange{
		id:                     p.ID,
		referrerSubscriptionID: p.ReferrerSubscriptionID,
		referredOrderID:        p.ReferredOrderID,
		action:                 p.Action,
		originalPrice:          p.OriginalPrice,
		newPrice:               p.NewPrice,
		reductionAmount:        p.ReductionAmount,
		reductionPercentage:    p.ReductionPercentage,
		referredContribution:   p.ReferredContribution,
		scheduledDate:          p.ScheduledDate,
		status:                 p.Status,
		retryCount:             p.RetryCount,
		metadata:               meta,
		createdAt:              p.CreatedAt,
		updatedAt:              p.UpdatedAt,
		appliedDate:            p.AppliedDate,
		version:                p.Version,
		claimedUntil:           p.ClaimedUntil,
	}
}

func (s *ScheduledPriceChange) ID() uuid.UUID                        { return s.id }
func (s *ScheduledPriceChange) ReferrerSubscriptionID() string       { return s.referrerSubscriptionID }
func (s *ScheduledPriceChange) ReferredOrderID() string              { return s.referredOrderID }
func (s *ScheduledPriceChange) Action() Action                       { return s.action }
func (s *ScheduledPriceChange) OriginalPrice() money.Money           { return s.originalPrice }
func (s *ScheduledPriceChange) NewPrice() money.Money                { return s.newPrice }
func (s *ScheduledPriceChange) ReductionAmount() money.Money         { return s.reductionAmount }
func (s *ScheduledPriceChange) ReductionPercentage() decimal.Decimal { return s.reductionPercentage }
func (s *ScheduledPriceChange) ReferredContribution() money.Money    { return s.referredContribution }
func (s *ScheduledPriceChange) ScheduledDate() time.Time             { return s.scheduledDate }
func (s *ScheduledPriceChange) Status() Status                       { return s.status }
func (s *ScheduledPriceChange) RetryCount() int                      { return s.retryCount }
func (s *ScheduledPriceChange) CreatedAt() time.Time                 { return s.createdAt }
func (s *ScheduledPriceChange) UpdatedAt() time.Time                 { return s.updatedAt }
func (s *ScheduledPriceChange) AppliedDate() *time.Time              { return s.appliedDate }
func (s *ScheduledPriceChange) Version() int32                       { return s.version }
func (s *ScheduledPriceChange) ClaimedUntil() *time.Time             { return s.claimedUntil }

// Metadata returns a copy; the entity's own map is never handed out.
func (s *ScheduledPriceChange) Metadata() map[string]any {
	return maps.Clone(s.metadata)
}

func (s *ScheduledPriceChange) IsPending() bool {
	return s.status == StatusPending
}

func (s *ScheduledPriceChange) IsClaimedAt(now time.Time) bool {
	return s.claimedUntil != nil && s.claimedUntil.After(now)
}

// ReferrerCustomerID is captured at scheduling time so outcome notifications need no billing lookup.
func (s *ScheduledPriceChange) ReferrerCustomerID() string {
	v, _ := s.metadata[MetaReferrerCustomerID].(string)
	return v
}

// WithClaim returns the entry as it looks after a successful claim.
// updated_at is untouched by a claim so the retry window keeps counting from the last failure.
func (s *ScheduledPriceChange) WithClaim(leaseUntil time.Time) *ScheduledPriceChange {
	cp := *s
	cp.claimedUntil = &leaseUntil
	cp.version = s.version + 1
	return &cp
}

// FailureTransition is the row state that follows a failed apply attempt.
type FailureTransition struct {
	RetryCount int
	Status     Status
	Metadata   map[string]any
}

// NextFailure computes the state after a failure; terminal when permanent or the retry budget is spent.
func (s *ScheduledPriceChange) NextFailure(message string, kind FailureKind, permanent bool, maxAttempts int, at time.Time) (FailureTransition, error) {
	if !s.IsPending() {
		return FailureTransition{}, ErrNotPending
	}
	retryCount := s.retryCount + 1
	status := StatusPending
	if permanent || retryCount >= maxAttempts {
		status = StatusFailed
	}
	meta := maps.Clone(s.metadata)
	if meta == nil {
		meta = map[string]any{}
	}
	meta[MetaLastError] = message
	meta[MetaLastErrorAt] = at.UTC().Format(time.RFC3339Nano)
	meta[MetaFailureKind] = string(kind)
	return FailureTransition{RetryCount: retryCount, Status: status, Metadata: meta}, nil
}

// CancellationMetadata returns the metadata written with a pending -> cancelled transition.
func (s *ScheduledPriceChange) CancellationMetadata(reason string) map[string]any {
	meta := maps.Clone(s.metadata)
	if meta == nil {
		meta = map[string]any{}
	}
	meta[MetaCancellationReason] = reason
	return meta
}
