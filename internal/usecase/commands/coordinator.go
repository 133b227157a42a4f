package commands

import (
	"context"
	"log/slog"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/domain/referral"
	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

type QualifyOutcome string

const (
	QualifyScheduled    QualifyOutcome = "scheduled"
	QualifyRejected     QualifyOutcome = "rejected"
	QualifyConflict     QualifyOutcome = "conflict"
	QualifyUnavailable  QualifyOutcome = "billing_unavailable"
	QualifyStorageError QualifyOutcome = "storage_error"
)

// QualifyResult reports what happened to a qualified referral. Conflict carries the id of the entry already in flight.
type QualifyResult struct {
	Outcome    QualifyOutcome
	ScheduleID uuid.UUID
	Reason     string
	Err        error
}

type ReferralPricingCoordinator interface {
	OnReferralOrderQualified(ctx context.Context, rc referral.Context) QualifyResult
	OnSubscriptionTerminated(ctx context.Context, subscriptionID, reason string) ApplyResult
}

type coordinatorImpl struct {
	scheduler  PriceChangeScheduler
	store      ScheduleStore
	billing    BillingGateway
	calculator pricechange.ReductionCalculator
	metrics    Metrics
	clock      clock.Clock
	opts       SchedulerOptions
	logger     *slog.Logger
}

func NewReferralPricingCoordinator(
	scheduler PriceChangeScheduler,
	store ScheduleStore,
	billing BillingGateway,
	calculator pricechange.ReductionCalculator,
	metrics Metrics,
	clk clock.Clock,
	opts SchedulerOptions,
	logger *slog.Logger,
) ReferralPricingCoordinator {
	return &coordinatorImpl{
		scheduler:  scheduler,
		store:      store,
		billing:    billing,
		calculator: calculator,
		metrics:    metrics,
		clock:      clk,
		opts:       opts,
		logger:     logger,
	}
}

func (c *coordinatorImpl) OnReferralOrderQualified(ctx context.Context, rc referral.Context) QualifyResult {
	if err := rc.Validate(); err != nil {
		return c.reject(ctx, rc, errs.Mark(err, errs.ErrInvalidReferral))
	}

	snap, err := c.getSubscription(ctx, rc.ReferrerSubscriptionID)
	if err != nil {
		if errs.Is(err, errs.ErrSubscriptionNotFound) {
			return c.reject(ctx, rc, err)
		}
		c.logger.WarnContext(ctx, "billing unavailable while qualifying referral",
			"subscription_id", rc.ReferrerSubscriptionID,
			"order_id", rc.ReferredOrderID,
			"error", err)
		return QualifyResult{Outcome: QualifyUnavailable, Reason: err.Error(), Err: errs.Mark(err, errs.ErrBillingUnavailable)}
	}

	if err := rc.ValidateReferrer(snap.CustomerID); err != nil {
		return c.reject(ctx, rc, errs.Mark(err, errs.ErrSelfReferral))
	}
	if !snap.Status.IsBillable() {
		return c.reject(ctx, rc, errs.Wrapf(errs.ErrReferrerNotActive, "status %s", snap.Status))
	}

	// The live billing price is authoritative; a stale context price would only drift at apply time.
	currentPrice := snap.Price
	if !rc.ReferrerPrice.IsZero() && !rc.ReferrerPrice.WithinTolerance(currentPrice, c.opts.PriceTolerance) {
		c.logger.WarnContext(ctx, "referral context price differs from billing",
			"subscription_id", rc.ReferrerSubscriptionID,
			"context_price", rc.ReferrerPrice.String(),
			"billing_price", currentPrice.String())
	}

	calc, err := c.calculator.Calculate(currentPrice, rc.ReferredContribution)
	if err != nil {
		return c.reject(ctx, rc, errs.Mark(err, errs.ErrInvalidReferral))
	}

	now := c.clock.Now()
	scheduledDate := snap.NextPaymentDate
	if scheduledDate.IsZero() {
		scheduledDate = now
	}
	entry, err := pricechange.NewScheduledPriceChange(
		rc.ReferrerSubscriptionID,
		rc.ReferredOrderID,
		calc,
		scheduledDate,
		map[string]any{
			pricechange.MetaContributingProducts: rc.ContributingProductIDs(),
			pricechange.MetaReferredCustomerID:   rc.ReferredCustomerID,
			pricechange.MetaReferrerCustomerID:   snap.CustomerID,
		},
		now,
	)
	if err != nil {
		return c.reject(ctx, rc, errs.Mark(err, errs.ErrInvalidReferral))
	}

	id, err := c.scheduler.Schedule(ctx, entry)
	if err != nil {
		if errs.Is(err, errs.ErrAlreadyScheduled) {
			return c.conflict(ctx, rc, err)
		}
		return QualifyResult{Outcome: QualifyStorageError, Err: err}
	}
	return QualifyResult{Outcome: QualifyScheduled, ScheduleID: id}
}

func (c *coordinatorImpl) OnSubscriptionTerminated(ctx context.Context, subscriptionID, reason string) ApplyResult {
	if reason == "" {
		reason = "subscription terminated"
	}
	return c.scheduler.CancelForSubscription(ctx, subscriptionID, reason)
}

func (c *coordinatorImpl) reject(ctx context.Context, rc referral.Context, err error) QualifyResult {
	reason := rejectReason(err)
	c.metrics.ReferralRejected(reason)
	c.logger.InfoContext(ctx, "referral rejected",
		"subscription_id", rc.ReferrerSubscriptionID,
		"order_id", rc.ReferredOrderID,
		"reason", reason,
		"error", err)
	return QualifyResult{Outcome: QualifyRejected, Reason: err.Error(), Err: err}
}

func (c *coordinatorImpl) conflict(ctx context.Context, rc referral.Context, err error) QualifyResult {
	res := QualifyResult{Outcome: QualifyConflict, Reason: "price change already pending", Err: err}
	existing, lerr := c.store.GetPending(ctx, rc.ReferrerSubscriptionID)
	if lerr == nil {
		res.ScheduleID = existing.ID()
	}
	c.logger.InfoContext(ctx, "referral conflicts with pending price change",
		"subscription_id", rc.ReferrerSubscriptionID,
		"order_id", rc.ReferredOrderID,
		"existing_schedule_id", res.ScheduleID)
	return res
}

func (c *coordinatorImpl) getSubscription(ctx context.Context, id string) (subscription.Snapshot, error) {
	if c.opts.BillingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.BillingTimeout)
		defer cancel()
	}
	return c.billing.GetSubscription(ctx, id)
}

// rejectReason is a low-cardinality label for metrics.
func rejectReason(err error) string {
	switch {
	case errs.Is(err, referral.ErrSelfReferral), errs.Is(err, errs.ErrSelfReferral):
		return "self_referral"
	case errs.Is(err, referral.ErrNoBillableItems):
		return "no_billable_items"
	case errs.Is(err, errs.ErrSubscriptionNotFound):
		return "subscription_not_found"
	case errs.Is(err, errs.ErrReferrerNotActive):
		return "referrer_not_active"
	case errs.Is(err, pricechange.ErrInvalidInput), errs.Is(err, referral.ErrNegativeAmount):
		return "invalid_amount"
	default:
		return "invalid_context"
	}
}
