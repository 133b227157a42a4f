//go:build unit || e2e

package builder

import (
	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/referral"
)

type ReferralBuilder struct {
	ReferrerSubscriptionID string
	ReferredOrderID        string
	ReferredCustomerID     string
	ReferrerPrice          string
	ReferredContribution   string
	BillableProductIDs     []string
}

func NewReferralBuilder() *ReferralBuilder {
	return &ReferralBuilder{
		ReferrerSubscriptionID: "sub_referrer",
		ReferredOrderID:        "order_1",
		ReferredCustomerID:     "cus_referred",
		ReferrerPrice:          "100.00",
		ReferredContribution:   "50.00",
		BillableProductIDs:     []string{"prod_box"},
	}
}

func (b *ReferralBuilder) With(mutate func(*ReferralBuilder)) *ReferralBuilder {
	mutate(b)
	return b
}

func (b *ReferralBuilder) BuildDomain() referral.Context {
	return referral.Context{
		ReferrerSubscriptionID: b.ReferrerSubscriptionID,
		ReferredOrderID:        b.ReferredOrderID,
		ReferredCustomerID:     b.ReferredCustomerID,
		ReferrerPrice:          money.MustParse(b.ReferrerPrice),
		ReferredContribution:   money.MustParse(b.ReferredContribution),
		BillableProductIDs:     b.BillableProductIDs,
	}
}

// BuildRequest returns the JSON body accepted by POST /api/referrals/qualified.
func (b *ReferralBuilder) BuildRequest() map[string]any {
	products := make([]any, len(b.BillableProductIDs))
	for i, p := range b.BillableProductIDs {
		products[i] = p
	}
	return map[string]any{
		"referrer_subscription_id": b.ReferrerSubscriptionID,
		"referred_order_id":        b.ReferredOrderID,
		"referred_customer_id":     b.ReferredCustomerID,
		"referrer_price":           b.ReferrerPrice,
		"referred_contribution":    b.ReferredContribution,
		"billable_product_ids":     products,
	}
}
