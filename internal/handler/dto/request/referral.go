package request

import (
	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/referral"
)

// QualifiedReferralRequest carries amounts as decimal strings, e.g. "49.90".
type QualifiedReferralRequest struct {
	ReferrerSubscriptionID string      `json:"referrer_subscription_id" binding:"required"`
	ReferredOrderID        string      `json:"referred_order_id" binding:"required"`
	ReferredCustomerID     string      `json:"referred_customer_id" binding:"required"`
	ReferrerPrice          money.Money `json:"referrer_price" swaggertype:"string"`
	ReferredContribution   money.Money `json:"referred_contribution" swaggertype:"string"`
	BillableProductIDs     []string    `json:"billable_product_ids" binding:"required,min=1"`
}

func (r *QualifiedReferralRequest) ToDomain() referral.Context {
	return referral.Context{
		ReferrerSubscriptionID: r.ReferrerSubscriptionID,
		ReferredOrderID:        r.ReferredOrderID,
		ReferredCustomerID:     r.ReferredCustomerID,
		ReferrerPrice:          r.ReferrerPrice,
		ReferredContribution:   r.ReferredContribution,
		BillableProductIDs:     r.BillableProductIDs,
	}
}
