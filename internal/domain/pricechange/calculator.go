package pricechange

import (
	"errors"

	"referral-pricing/internal/domain/money"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("calculator input must be non-negative")

// Calculation is the full result of one reduction computation.
type Calculation struct {
	OriginalPrice        money.Money
	NewPrice             money.Money
	ReductionAmount      money.Money
	ReductionPercentage  decimal.Decimal
	ReferredContribution money.Money
	Metadata             map[string]any
}

// ReductionRule maps a referred order's contribution to the raw (unrounded, uncapped) reduction.
type ReductionRule interface {
	Name() string
	RawReduction(contribution money.Money) money.Money
	Describe() map[string]any
}

type ReductionCalculator interface {
	Calculate(currentPrice, referredContribution money.Money) (Calculation, error)
}

type DefaultReductionCalculator struct {
	Rule ReductionRule
}

func NewDefaultReductionCalculator(rule ReductionRule) *DefaultReductionCalculator {
	return &DefaultReductionCalculator{Rule: rule}
}

// Calculate rounds each input amount exactly once, then caps, so repeated calls on the same inputs cannot drift.
func (c *DefaultReductionCalculator) Calculate(currentPrice, referredContribution money.Money) (Calculation, error) {
	if currentPrice.IsNegative() || referredContribution.IsNegative() {
		return Calculation{}, ErrInvalidInput
	}

	raw := c.Rule.RawReduction(referredContribution)
	if raw.IsNegative() {
		raw = money.Zero()
	}
	capped := raw.GreaterThan(currentPrice)

	// newPrice is derived from the rounded figures so that
	// NewPrice + ReductionAmount == OriginalPrice holds exactly.
	original := currentPrice.Round()
	reduction := raw.Round().Min(original)
	newPrice := original.Sub(reduction).Max(money.Zero())
	percentage := reduction.PercentOf(original).Round(money.Scale)

	meta := map[string]any{
		"rule":          c.Rule.Name(),
		"raw_reduction": raw.Decimal().String(),
		"capped":        capped,
	}
	for k, v := range c.Rule.Describe() {
		meta[k] = v
	}

	return Calculation{
		OriginalPrice:        original,
		NewPrice:             newPrice,
		ReductionAmount:      reduction,
		ReductionPercentage:  percentage,
		ReferredContribution: referredContribution.Round(),
		Metadata:             meta,
	}, nil
}

// PercentOfContributionRule reduces by a fixed fraction of the referred contribution.
type PercentOfContributionRule struct {
	Rate decimal.Decimal
}

func NewPercentOfContributionRule(rate decimal.Decimal) (*PercentOfContributionRule, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidInput
	}
	return &PercentOfContributionRule{Rate: rate}, nil
}

func (r *PercentOfContributionRule) Name() string { return "percent_of_contribution" }

func (r *PercentOfContributionRule) RawReduction(contribution money.Money) money.Money {
	return contribution.Mul(r.Rate)
}

func (r *PercentOfContributionRule) Describe() map[string]any {
	return map[string]any{"rate": r.Rate.String()}
}

type FixedAmountRule struct {
	Amount money.Money
}

func NewFixedAmountRule(amount money.Money) (*FixedAmountRule, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidInput
	}
	return &FixedAmountRule{Amount: amount}, nil
}

func (r *FixedAmountRule) Name() string { return "fixed_amount" }

func (r *FixedAmountRule) RawReduction(_ money.Money) money.Money {
	return r.Amount
}

func (r *FixedAmountRule) Describe() map[string]any {
	return map[string]any{"amount": r.Amount.String()}
}
