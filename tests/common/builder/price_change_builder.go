//go:build unit || e2e

package builder

import (
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/infra/repository/converter"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/pgconv"
	"referral-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PriceChangeBuilder struct {
	ID                     uuid.UUID
	ReferrerSubscriptionID string
	ReferredOrderID        string
	ReferrerCustomerID     string
	OriginalPrice          money.Money
	NewPrice               money.Money
	ReferredContribution   money.Money
	ScheduledDate          time.Time
	Status                 pricechange.Status
	RetryCount             int
	Version                int32
	ClaimedUntil           *time.Time
	AppliedDate            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewPriceChangeBuilder defaults to 100.00 -> 90.00, a 20% reduction of a 50.00 referred order.
func NewPriceChangeBuilder() *PriceChangeBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &PriceChangeBuilder{
		ID:                     uuid.New(),
		ReferrerSubscriptionID: "sub_referrer",
		ReferredOrderID:        "order_1",
		ReferrerCustomerID:     "cus_referrer",
		OriginalPrice:          money.MustParse("100.00"),
		NewPrice:               money.MustParse("90.00"),
		ReferredContribution:   money.MustParse("50.00"),
		ScheduledDate:          now.AddDate(0, 0, 14),
		Status:                 pricechange.StatusPending,
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func (b *PriceChangeBuilder) With(mutate func(*PriceChangeBuilder)) *PriceChangeBuilder {
	mutate(b)
	return b
}

func (b *PriceChangeBuilder) reduction() money.Money {
	return b.OriginalPrice.Sub(b.NewPrice)
}

func (b *PriceChangeBuilder) percentage() decimal.Decimal {
	return b.reduction().PercentOf(b.OriginalPrice).Round(money.Scale)
}

func (b *PriceChangeBuilder) metadata() map[string]any {
	return map[string]any{
		pricechange.MetaReferrerCustomerID: b.ReferrerCustomerID,
		pricechange.MetaReferredCustomerID: "cus_referred",
	}
}

// Build methods
func (b *PriceChangeBuilder) BuildDomain() *pricechange.ScheduledPriceChange {
	return pricechange.ReconstructScheduledPriceChange(pricechange.ReconstructParams{
		ID:                     b.ID,
		ReferrerSubscriptionID: b.ReferrerSubscriptionID,
		ReferredOrderID:        b.ReferredOrderID,
		Action:                 pricechange.ActionApplyReduction,
		OriginalPrice:          b.OriginalPrice,
		NewPrice:               b.NewPrice,
		ReductionAmount:        b.reduction(),
		ReductionPercentage:    b.percentage(),
		ReferredContribution:   b.ReferredContribution,
		ScheduledDate:          b.ScheduledDate,
		Status:                 b.Status,
		RetryCount:             b.RetryCount,
		Metadata:               b.metadata(),
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
		AppliedDate:            b.AppliedDate,
		Version:                b.Version,
		ClaimedUntil:           b.ClaimedUntil,
	})
}

func (b *PriceChangeBuilder) BuildInfra() sqlc.ScheduledPriceChanges {
	meta, _ := pgconv.MapToJSON(b.metadata())
	return sqlc.ScheduledPriceChanges{
		ID:                     b.ID,
		ReferrerSubscriptionID: b.ReferrerSubscriptionID,
		ReferredOrderID:        b.ReferredOrderID,
		Action:                 pricechange.ActionApplyReduction.String(),
		OriginalPrice:          converter.MoneyToNumeric(b.OriginalPrice),
		NewPrice:               converter.MoneyToNumeric(b.NewPrice),
		ReductionAmount:        converter.MoneyToNumeric(b.reduction()),
		ReductionPercentage:    pgconv.DecimalToNumeric(b.percentage()),
		ReferredContribution:   converter.MoneyToNumeric(b.ReferredContribution),
		ScheduledDate:          pgconv.TimeToPgtype(b.ScheduledDate),
		Status:                 b.Status.String(),
		RetryCount:             int32(b.RetryCount), // #nosec G115 -- test data
		Metadata:               meta,
		AppliedDate:            pgconv.TimePtrToPgtype(b.AppliedDate),
		Version:                b.Version,
		ClaimedUntil:           pgconv.TimePtrToPgtype(b.ClaimedUntil),
		CreatedAt:              pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:              pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *PriceChangeBuilder) BuildView() *queries.PriceChangeView {
	return &queries.PriceChangeView{
		ID:                     b.ID,
		ReferrerSubscriptionID: b.ReferrerSubscriptionID,
		ReferredOrderID:        b.ReferredOrderID,
		Action:                 pricechange.ActionApplyReduction.String(),
		OriginalPrice:          b.OriginalPrice,
		NewPrice:               b.NewPrice,
		ReductionAmount:        b.reduction(),
		ReductionPercentage:    b.percentage(),
		ReferredContribution:   b.ReferredContribution,
		ScheduledDate:          b.ScheduledDate,
		Status:                 b.Status.String(),
		RetryCount:             int32(b.RetryCount), // #nosec G115 -- test data
		Metadata:               b.metadata(),
		AppliedDate:            b.AppliedDate,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

// BuildSnapshot returns the billing view of the referrer subscription at the given live price.
func (b *PriceChangeBuilder) BuildSnapshot(status subscription.Status, livePrice money.Money) subscription.Snapshot {
	return subscription.Snapshot{
		ID:              b.ReferrerSubscriptionID,
		Status:          status,
		Price:           livePrice,
		Currency:        "usd",
		NextPaymentDate: b.ScheduledDate,
		CustomerID:      b.ReferrerCustomerID,
	}
}
