package billing

import (
	"encoding/json"
	"strings"

	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	eventInvoiceUpcoming     = "invoice.upcoming"
	eventInvoicePaid         = "invoice.paid"
	eventSubscriptionDeleted = "customer.subscription.deleted"
	terminationReasonDefault = "subscription deleted in billing"
)

// ParseWebhook verifies the Stripe signature and reduces the event to a subscription.Event.
// The second return is false for verified events the scheduler does not react to.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (subscription.Event, bool, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return subscription.Event{}, false, errs.Mark(errs.Wrap(err, "construct stripe event"), errs.ErrWebhookSignature)
	}

	switch string(event.Type) {
	case eventInvoiceUpcoming, eventInvoicePaid:
		subID, err := invoiceSubscriptionID(event.Data.Raw)
		if err != nil {
			return subscription.Event{}, false, err
		}
		if subID == "" {
			// One-off invoices carry no subscription.
			return subscription.Event{}, false, nil
		}
		kind := subscription.EventPaymentDue
		if string(event.Type) == eventInvoicePaid {
			kind = subscription.EventPaymentCompleted
		}
		return subscription.Event{Kind: kind, SubscriptionID: subID}, true, nil

	case eventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return subscription.Event{}, false, errs.Mark(errs.Wrap(err, "parse subscription deleted event"), errs.ErrInvalidBillingEvent)
		}
		if sub.ID == "" {
			return subscription.Event{}, false, errs.Mark(errs.New("subscription deleted event without id"), errs.ErrInvalidBillingEvent)
		}
		return subscription.Event{
			Kind:           subscription.EventTerminated,
			SubscriptionID: sub.ID,
			Reason:         terminationReason(sub),
		}, true, nil
	}
	return subscription.Event{}, false, nil
}

// invoiceRef covers both the legacy top-level subscription field and the parent details introduced in newer API versions.
type invoiceRef struct {
	Subscription json.RawMessage `json:"subscription"`
	Parent       *struct {
		SubscriptionDetails *struct {
			Subscription json.RawMessage `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
}

func invoiceSubscriptionID(raw json.RawMessage) (string, error) {
	var inv invoiceRef
	if err := json.Unmarshal(raw, &inv); err != nil {
		return "", errs.Mark(errs.Wrap(err, "parse invoice event"), errs.ErrInvalidBillingEvent)
	}
	if id := expandableID(inv.Subscription); id != "" {
		return id, nil
	}
	if inv.Parent != nil && inv.Parent.SubscriptionDetails != nil {
		return expandableID(inv.Parent.SubscriptionDetails.Subscription), nil
	}
	return "", nil
}

// expandableID accepts either "sub_123" or an expanded {"id": "sub_123", ...} object.
func expandableID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return strings.TrimSpace(id)
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.ID)
	}
	return ""
}

func terminationReason(sub stripe.Subscription) string {
	if sub.CancellationDetails != nil && sub.CancellationDetails.Reason != "" {
		return string(sub.CancellationDetails.Reason)
	}
	return terminationReasonDefault
}
