package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Outcome string

const (
	OutcomeApplied        Outcome = "applied"
	OutcomeRecovered      Outcome = "recovered"
	OutcomeRetryScheduled Outcome = "retry_scheduled"
	OutcomeFailed         Outcome = "failed"
	OutcomeCancelled      Outcome = "cancelled"
	OutcomeNoop           Outcome = "noop"
	OutcomeStorageError   Outcome = "storage_error"
)

// ApplyResult is what event handlers see; storage failures are reported here, never returned raw.
type ApplyResult struct {
	Outcome    Outcome
	ScheduleID uuid.UUID
	Reason     string
	Err        error
}

func (r ApplyResult) Succeeded() bool {
	return r.Outcome == OutcomeApplied || r.Outcome == OutcomeRecovered
}

type SweepSummary struct {
	Candidates    int `json:"candidates"`
	Applied       int `json:"applied"`
	Retrying      int `json:"retrying"`
	Failed        int `json:"failed"`
	Noop          int `json:"noop"`
	StorageErrors int `json:"storage_errors"`
}

func (s *SweepSummary) add(r ApplyResult) {
	switch r.Outcome {
	case OutcomeApplied, OutcomeRecovered:
		s.Applied++
	case OutcomeRetryScheduled:
		s.Retrying++
	case OutcomeFailed:
		s.Failed++
	case OutcomeStorageError:
		s.StorageErrors++
	default:
		s.Noop++
	}
}

type SchedulerOptions struct {
	PriceTolerance   money.Money
	DriftIsPermanent bool
	BillingTimeout   time.Duration
	StoreTimeout     time.Duration
	SweepConcurrency int
}

// leaseDuration covers every bounded call made while the claim is held:
// two billing round trips plus the status re-check and the closing transition.
func (o SchedulerOptions) leaseDuration() time.Duration {
	return 2*o.BillingTimeout + 2*o.StoreTimeout
}

type PriceChangeScheduler interface {
	Schedule(ctx context.Context, entry *pricechange.ScheduledPriceChange) (uuid.UUID, error)
	OnBillingEvent(ctx context.Context, subscriptionID string, kind subscription.EventKind, reason string) ApplyResult
	ApplyEntry(ctx context.Context, entry *pricechange.ScheduledPriceChange) ApplyResult
	RunRetrySweep(ctx context.Context) (SweepSummary, error)
	CancelForSubscription(ctx context.Context, subscriptionID, reason string) ApplyResult
}

type schedulerImpl struct {
	store    ScheduleStore
	billing  BillingGateway
	alerter  Alerter
	metrics  Metrics
	clock    clock.Clock
	opts     SchedulerOptions
	logger   *slog.Logger
	sweeping atomic.Bool
}

func NewPriceChangeScheduler(
	store ScheduleStore,
	billing BillingGateway,
	alerter Alerter,
	metrics Metrics,
	clk clock.Clock,
	opts SchedulerOptions,
	logger *slog.Logger,
) PriceChangeScheduler {
	if opts.SweepConcurrency <= 0 {
		opts.SweepConcurrency = 1
	}
	return &schedulerImpl{
		store:   store,
		billing: billing,
		alerter: alerter,
		metrics: metrics,
		clock:   clk,
		opts:    opts,
		logger:  logger,
	}
}

func (s *schedulerImpl) Schedule(ctx context.Context, entry *pricechange.ScheduledPriceChange) (uuid.UUID, error) {
	id, err := s.store.CreatePending(ctx, entry)
	if err != nil {
		if errs.Is(err, errs.ErrAlreadyScheduled) {
			s.metrics.ScheduleConflict()
			return uuid.Nil, err
		}
		s.storageFailure(ctx, "create_pending", err, entry)
		return uuid.Nil, err
	}
	s.metrics.ScheduleCreated()
	s.logger.InfoContext(ctx, "price change scheduled",
		"schedule_id", id,
		"subscription_id", entry.ReferrerSubscriptionID(),
		"original_price", entry.OriginalPrice().String(),
		"new_price", entry.NewPrice().String(),
		"scheduled_date", entry.ScheduledDate())
	return id, nil
}

// OnBillingEvent handles payment_due and payment_completed alike; termination routes to cancellation.
func (s *schedulerImpl) OnBillingEvent(ctx context.Context, subscriptionID string, kind subscription.EventKind, reason string) ApplyResult {
	if kind == subscription.EventTerminated {
		if reason == "" {
			reason = "subscription terminated"
		}
		return s.CancelForSubscription(ctx, subscriptionID, reason)
	}
	if !kind.IsBillingMoment() {
		return ApplyResult{Outcome: OutcomeNoop, Reason: fmt.Sprintf("unsupported event %q", kind)}
	}

	entry, err := s.store.GetPending(ctx, subscriptionID)
	if err != nil {
		if errs.Is(err, errs.ErrScheduleNotFound) {
			return ApplyResult{Outcome: OutcomeNoop, Reason: "no pending price change"}
		}
		s.storageFailure(ctx, "get_pending", err, nil, "subscription_id", subscriptionID)
		return ApplyResult{Outcome: OutcomeStorageError, Err: err}
	}
	return s.ApplyEntry(ctx, entry)
}

func (s *schedulerImpl) ApplyEntry(ctx context.Context, entry *pricechange.ScheduledPriceChange) ApplyResult {
	if !entry.IsPending() {
		return ApplyResult{Outcome: OutcomeNoop, ScheduleID: entry.ID(), Reason: "entry is " + entry.Status().String()}
	}

	leaseUntil := s.clock.Now().Add(s.opts.leaseDuration())
	claimed, won, err := s.store.Claim(ctx, entry, leaseUntil)
	if err != nil {
		s.storageFailure(ctx, "claim", err, entry)
		return ApplyResult{Outcome: OutcomeStorageError, ScheduleID: entry.ID(), Err: err}
	}
	if !won {
		s.metrics.ConcurrentNoop("claim")
		return ApplyResult{Outcome: OutcomeNoop, ScheduleID: entry.ID(), Reason: "handled concurrently"}
	}

	snap, err := s.getSubscription(ctx, claimed.ReferrerSubscriptionID())
	if err != nil {
		kind, permanent := classifyBillingErr(err)
		return s.fail(ctx, FailureRequest{
			Entry:     claimed,
			Message:   "get subscription: " + err.Error(),
			Kind:      kind,
			Permanent: permanent,
		})
	}

	live := snap.Price
	tol := s.opts.PriceTolerance
	switch {
	case live.WithinTolerance(claimed.NewPrice(), tol) && !live.WithinTolerance(claimed.OriginalPrice(), tol):
		return s.applied(ctx, claimed, true)
	case !live.WithinTolerance(claimed.OriginalPrice(), tol):
		return s.fail(ctx, FailureRequest{
			Entry:     claimed,
			Message:   fmt.Sprintf("price drift: live %s, expected %s", live, claimed.OriginalPrice()),
			Kind:      pricechange.FailureDrift,
			Permanent: s.opts.DriftIsPermanent,
			LivePrice: &live,
		})
	case snap.Status.IsTerminated():
		return s.fail(ctx, FailureRequest{
			Entry:     claimed,
			Message:   "subscription terminated: " + snap.Status.String(),
			Kind:      pricechange.FailureTerminated,
			Permanent: true,
			LivePrice: &live,
		})
	case !snap.Status.IsBillable():
		return s.fail(ctx, FailureRequest{
			Entry:     claimed,
			Message:   "subscription not billable: " + snap.Status.String(),
			Kind:      pricechange.FailureNotBillable,
			LivePrice: &live,
		})
	}

	// Cancellation does not honour the claim, so re-read status before the billing write.
	current, err := s.store.GetByID(ctx, claimed.ID())
	if err != nil {
		s.storageFailure(ctx, "recheck_status", err, claimed)
		s.release(ctx, claimed)
		return ApplyResult{Outcome: OutcomeStorageError, ScheduleID: claimed.ID(), Err: err}
	}
	if !current.IsPending() {
		s.metrics.ConcurrentNoop("recheck_status")
		return ApplyResult{Outcome: OutcomeNoop, ScheduleID: claimed.ID(), Reason: "entry is " + current.Status().String()}
	}

	if err := s.setPrice(ctx, claimed); err != nil {
		kind, permanent := classifyBillingErr(err)
		return s.fail(ctx, FailureRequest{
			Entry:     claimed,
			Message:   "set subscription price: " + err.Error(),
			Kind:      kind,
			Permanent: permanent,
			LivePrice: &live,
		})
	}
	return s.applied(ctx, claimed, false)
}

func (s *schedulerImpl) applied(ctx context.Context, entry *pricechange.ScheduledPriceChange, recovered bool) ApplyResult {
	res, err := s.store.MarkApplied(ctx, entry, s.clock.Now(), recovered)
	if err != nil {
		// Billing already carries the new price; the next attempt recovers it.
		s.storageFailure(ctx, "mark_applied", err, entry)
		return ApplyResult{Outcome: OutcomeStorageError, ScheduleID: entry.ID(), Err: err}
	}
	if !res.Won {
		s.metrics.ConcurrentNoop("mark_applied")
		s.logger.WarnContext(ctx, "apply lost to a concurrent transition",
			"schedule_id", entry.ID(),
			"subscription_id", entry.ReferrerSubscriptionID())
		return ApplyResult{Outcome: OutcomeNoop, ScheduleID: entry.ID(), Reason: "handled concurrently"}
	}

	s.metrics.Applied(recovered)
	s.logger.InfoContext(ctx, "price change applied",
		"schedule_id", entry.ID(),
		"subscription_id", entry.ReferrerSubscriptionID(),
		"new_price", entry.NewPrice().String(),
		"recovered", recovered)
	if recovered {
		return ApplyResult{Outcome: OutcomeRecovered, ScheduleID: entry.ID()}
	}
	return ApplyResult{Outcome: OutcomeApplied, ScheduleID: entry.ID()}
}

func (s *schedulerImpl) fail(ctx context.Context, req FailureRequest) ApplyResult {
	entry := req.Entry
	res, err := s.store.MarkFailed(ctx, req)
	if err != nil {
		s.storageFailure(ctx, "mark_failed", err, entry)
		s.release(ctx, entry)
		return ApplyResult{Outcome: OutcomeStorageError, ScheduleID: entry.ID(), Reason: req.Message, Err: err}
	}
	if !res.Won {
		s.metrics.ConcurrentNoop("mark_failed")
		return ApplyResult{Outcome: OutcomeNoop, ScheduleID: entry.ID(), Reason: "handled concurrently"}
	}

	terminal := res.Status.IsTerminal()
	s.metrics.Failed(req.Kind, terminal)
	s.logger.WarnContext(ctx, "price change attempt failed",
		"schedule_id", entry.ID(),
		"subscription_id", entry.ReferrerSubscriptionID(),
		"failure_kind", req.Kind,
		"retry_count", res.RetryCount,
		"terminal", terminal,
		"error", req.Message)
	if terminal {
		return ApplyResult{Outcome: OutcomeFailed, ScheduleID: entry.ID(), Reason: req.Message}
	}
	return ApplyResult{Outcome: OutcomeRetryScheduled, ScheduleID: entry.ID(), Reason: req.Message}
}

func (s *schedulerImpl) release(ctx context.Context, entry *pricechange.ScheduledPriceChange) {
	if err := s.store.Release(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "failed to release price change claim",
			"schedule_id", entry.ID(),
			"error", err)
	}
}

// RunRetrySweep re-applies every due candidate with bounded parallelism.
// Per-entry failures are folded into the summary; only a failed listing is returned as an error.
func (s *schedulerImpl) RunRetrySweep(ctx context.Context) (SweepSummary, error) {
	if !s.sweeping.CompareAndSwap(false, true) {
		return SweepSummary{}, errs.ErrRetrySweepAlreadyBusy
	}
	defer s.sweeping.Store(false)

	start := s.clock.Now()
	candidates, err := s.store.ListRetryCandidates(ctx, start)
	if err != nil {
		s.storageFailure(ctx, "list_retry_candidates", err, nil)
		return SweepSummary{}, err
	}

	summary := SweepSummary{Candidates: len(candidates)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.SweepConcurrency)
	for _, entry := range candidates {
		g.Go(func() error {
			res := s.ApplyEntry(gctx, entry)
			mu.Lock()
			summary.add(res)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	elapsed := s.clock.Now().Sub(start)
	s.metrics.SweepCompleted(summary, elapsed)
	s.logger.InfoContext(ctx, "retry sweep completed",
		"candidates", summary.Candidates,
		"applied", summary.Applied,
		"retrying", summary.Retrying,
		"failed", summary.Failed,
		"noop", summary.Noop,
		"storage_errors", summary.StorageErrors,
		"elapsed", elapsed)
	return summary, nil
}

func (s *schedulerImpl) CancelForSubscription(ctx context.Context, subscriptionID, reason string) ApplyResult {
	entry, err := s.store.GetPending(ctx, subscriptionID)
	if err != nil {
		if errs.Is(err, errs.ErrScheduleNotFound) {
			return ApplyResult{Outcome: OutcomeNoop, Reason: "no pending price change"}
		}
		s.storageFailure(ctx, "get_pending", err, nil, "subscription_id", subscriptionID)
		return ApplyResult{Outcome: OutcomeStorageError, Err: err}
	}

	res, err := s.store.MarkCancelled(ctx, entry, reason)
	if err != nil {
		s.storageFailure(ctx, "mark_cancelled", err, entry)
		return ApplyResult{Outcome: OutcomeStorageError, ScheduleID: entry.ID(), Err: err}
	}
	if !res.Won {
		s.metrics.ConcurrentNoop("mark_cancelled")
		return ApplyResult{Outcome: OutcomeNoop, ScheduleID: entry.ID(), Reason: "handled concurrently"}
	}

	s.metrics.Cancelled()
	s.logger.InfoContext(ctx, "price change cancelled",
		"schedule_id", entry.ID(),
		"subscription_id", subscriptionID,
		"reason", reason)
	return ApplyResult{Outcome: OutcomeCancelled, ScheduleID: entry.ID(), Reason: reason}
}

func (s *schedulerImpl) getSubscription(ctx context.Context, subscriptionID string) (subscription.Snapshot, error) {
	ctx, cancel := s.billingContext(ctx)
	defer cancel()
	return s.billing.GetSubscription(ctx, subscriptionID)
}

func (s *schedulerImpl) setPrice(ctx context.Context, entry *pricechange.ScheduledPriceChange) error {
	ctx, cancel := s.billingContext(ctx)
	defer cancel()
	note := fmt.Sprintf("referral reduction %s -> %s (order %s, schedule %s)",
		entry.OriginalPrice(), entry.NewPrice(), entry.ReferredOrderID(), entry.ID())
	return s.billing.SetSubscriptionPrice(ctx, entry.ReferrerSubscriptionID(), entry.NewPrice(), note)
}

func (s *schedulerImpl) billingContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.BillingTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.BillingTimeout)
}

func (s *schedulerImpl) storageFailure(ctx context.Context, op string, err error, entry *pricechange.ScheduledPriceChange, kv ...string) {
	s.metrics.StorageError(op)
	attrs := make(map[string]string, len(kv)/2+2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs[kv[i]] = kv[i+1]
	}
	if entry != nil {
		attrs["schedule_id"] = entry.ID().String()
		attrs["subscription_id"] = entry.ReferrerSubscriptionID()
	}
	s.alerter.StorageFailure(ctx, op, err, attrs)
}

// classifyBillingErr maps a billing failure to its kind; only a vanished subscription is permanent.
func classifyBillingErr(err error) (pricechange.FailureKind, bool) {
	switch {
	case errs.Is(err, errs.ErrSubscriptionNotFound):
		return pricechange.FailureNotFound, true
	case errs.Is(err, context.DeadlineExceeded):
		return pricechange.FailureTimeout, false
	default:
		return pricechange.FailureBilling, false
	}
}
