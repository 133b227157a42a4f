package billing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/pkg/config"
	"referral-pricing/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/price"
	stripesub "github.com/stripe/stripe-go/v82/subscription"
	"github.com/stripe/stripe-go/v82/subscriptionitem"
)

const (
	metaLastReferralNote = "referral_price_note"
	metaLastReferralAt   = "referral_price_changed_at"
	metaScheduleSource   = "referral_price_source"
)

// StripeGateway reads and rewrites subscription prices through the Stripe API.
// A price change creates a new recurring price on the same product and swaps the
// subscription's first item to it without proration.
type StripeGateway struct {
	webhookSecret string
	logger        *slog.Logger
}

func NewStripeGateway(cfg config.StripeConfig, logger *slog.Logger) *StripeGateway {
	stripe.Key = cfg.APIKey
	return &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
}

func (g *StripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (subscription.Snapshot, error) {
	sub, err := g.fetch(ctx, subscriptionID)
	if err != nil {
		return subscription.Snapshot{}, err
	}
	item, err := firstItem(sub)
	if err != nil {
		return subscription.Snapshot{}, err
	}

	snap := subscription.Snapshot{
		ID:       sub.ID,
		Status:   subscription.NewStatus(string(sub.Status)),
		Price:    money.FromMinorUnits(item.Price.UnitAmount),
		Currency: string(item.Price.Currency),
	}
	if item.CurrentPeriodEnd > 0 {
		snap.NextPaymentDate = time.Unix(item.CurrentPeriodEnd, 0).UTC()
	}
	if sub.Customer != nil {
		snap.CustomerID = sub.Customer.ID
	}
	return snap, nil
}

func (g *StripeGateway) SetSubscriptionPrice(ctx context.Context, subscriptionID string, newPrice money.Money, note string) error {
	sub, err := g.fetch(ctx, subscriptionID)
	if err != nil {
		return err
	}
	item, err := firstItem(sub)
	if err != nil {
		return err
	}
	current := item.Price
	if current.Product == nil || current.Recurring == nil {
		return errs.Newf("subscription %s item %s has no recurring product price", subscriptionID, item.ID)
	}

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(string(current.Currency)),
		UnitAmount: stripe.Int64(newPrice.MinorUnits()),
		Product:    stripe.String(current.Product.ID),
		Recurring: &stripe.PriceRecurringParams{
			Interval:      stripe.String(string(current.Recurring.Interval)),
			IntervalCount: stripe.Int64(current.Recurring.IntervalCount),
		},
	}
	priceParams.Context = ctx
	priceParams.AddMetadata(metaScheduleSource, "referral")
	replacement, err := price.New(priceParams)
	if err != nil {
		return wrapStripeErr(err, "create replacement price")
	}

	itemParams := &stripe.SubscriptionItemParams{
		Price:             stripe.String(replacement.ID),
		ProrationBehavior: stripe.String("none"),
	}
	itemParams.Context = ctx
	if _, err := subscriptionitem.Update(item.ID, itemParams); err != nil {
		return wrapStripeErr(err, "swap subscription item price")
	}

	subParams := &stripe.SubscriptionParams{}
	subParams.Context = ctx
	subParams.AddMetadata(metaLastReferralNote, note)
	subParams.AddMetadata(metaLastReferralAt, time.Now().UTC().Format(time.RFC3339))
	if _, err := stripesub.Update(subscriptionID, subParams); err != nil {
		// The price is already live; a missing audit note is not worth a retry.
		g.logger.WarnContext(ctx, "failed to write referral audit note to subscription",
			"subscription_id", subscriptionID,
			"error", err)
	}

	g.logger.InfoContext(ctx, "stripe subscription price replaced",
		"subscription_id", subscriptionID,
		"item_id", item.ID,
		"old_price_id", current.ID,
		"new_price_id", replacement.ID,
		"unit_amount", newPrice.MinorUnits())
	return nil
}

func (g *StripeGateway) fetch(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, errs.Mark(errs.New("empty subscription id"), errs.ErrSubscriptionNotFound)
	}
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	sub, err := stripesub.Get(subscriptionID, params)
	if err != nil {
		return nil, wrapStripeErr(err, "get subscription")
	}
	return sub, nil
}

func firstItem(sub *stripe.Subscription) (*stripe.SubscriptionItem, error) {
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return nil, errs.Newf("subscription %s has no priced item", sub.ID)
	}
	return sub.Items.Data[0], nil
}

// wrapStripeErr keeps context deadlines visible to callers and maps 404 to ErrSubscriptionNotFound.
func wrapStripeErr(err error, op string) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		if serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing {
			return errs.Mark(errs.Wrap(err, op), errs.ErrSubscriptionNotFound)
		}
	}
	return errs.Wrapf(err, "stripe: %s", op)
}
