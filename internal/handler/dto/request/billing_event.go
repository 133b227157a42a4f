package request

import (
	"referral-pricing/internal/domain/subscription"
)

type BillingEventRequest struct {
	Type           string `json:"type" binding:"required,oneof=payment_due payment_completed subscription_terminated"`
	SubscriptionID string `json:"subscription_id" binding:"required"`
	Reason         string `json:"reason" binding:"omitempty,max=500"`
}

func (r *BillingEventRequest) ToDomain() subscription.Event {
	return subscription.Event{
		Kind:           subscription.EventKind(r.Type),
		SubscriptionID: r.SubscriptionID,
		Reason:         r.Reason,
	}
}
