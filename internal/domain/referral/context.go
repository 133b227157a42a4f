package referral

import (
	"errors"
	"strings"

	"referral-pricing/internal/domain/money"
)

var (
	ErrMissingReferrerSubscription = errors.New("referrer subscription id is required")
	ErrMissingReferredOrder        = errors.New("referred order id is required")
	ErrMissingReferredCustomer     = errors.New("referred customer id is required")
	ErrNegativeAmount              = errors.New("referral amounts cannot be negative")
	ErrSelfReferral                = errors.New("referrer and referred customer are the same")
	ErrNoBillableItems             = errors.New("referred order contains no billable item")
)

// Context is handed over by the order front-end once the referral code has been accepted.
type Context struct {
	ReferrerSubscriptionID string
	ReferredOrderID        string
	ReferredCustomerID     string
	ReferrerPrice          money.Money
	ReferredContribution   money.Money
	BillableProductIDs     []string
}

// Validate checks what can be known without calling billing.
func (c Context) Validate() error {
	if strings.TrimSpace(c.ReferrerSubscriptionID) == "" {
		return ErrMissingReferrerSubscription
	}
	if strings.TrimSpace(c.ReferredOrderID) == "" {
		return ErrMissingReferredOrder
	}
	if strings.TrimSpace(c.ReferredCustomerID) == "" {
		return ErrMissingReferredCustomer
	}
	if c.ReferrerPrice.IsNegative() || c.ReferredContribution.IsNegative() {
		return ErrNegativeAmount
	}
	if len(c.billableProducts()) == 0 {
		return ErrNoBillableItems
	}
	return nil
}

// ValidateReferrer rejects self-referral once the referrer's customer id is known.
func (c Context) ValidateReferrer(referrerCustomerID string) error {
	if strings.EqualFold(strings.TrimSpace(referrerCustomerID), strings.TrimSpace(c.ReferredCustomerID)) {
		return ErrSelfReferral
	}
	return nil
}

func (c Context) billableProducts() []string {
	out := make([]string, 0, len(c.BillableProductIDs))
	for _, id := range c.BillableProductIDs {
		if s := strings.TrimSpace(id); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ContributingProductIDs returns the non-blank product ids recorded in schedule metadata.
func (c Context) ContributingProductIDs() []string {
	return c.billableProducts()
}
