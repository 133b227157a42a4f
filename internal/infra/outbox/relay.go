package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, payload []byte) error
}

type RelayMetrics interface {
	OutcomeRelayed(sent bool)
}

type RelayOptions struct {
	SubjectPrefix string
	BatchSize     int32
}

type RelayResult struct {
	Claimed int
	Sent    int
	Failed  int
}

// Relay drains queued outcome jobs to the publisher and flags the matching history row as notified.
type Relay struct {
	uow     shared.UnitOfWork
	pub     Publisher
	clock   clock.Clock
	metrics RelayMetrics
	opts    RelayOptions
	retry   pricechange.RetryPolicy
	logger  *slog.Logger
}

func NewRelay(uow shared.UnitOfWork, pub Publisher, clk clock.Clock, metrics RelayMetrics, opts RelayOptions, logger *slog.Logger) *Relay {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Relay{
		uow:     uow,
		pub:     pub,
		clock:   clk,
		metrics: metrics,
		opts:    opts,
		retry: pricechange.RetryPolicy{
			MaxAttempts: 8,
			Initial:     30 * time.Second,
			Multiplier:  2,
			Max:         time.Hour,
		},
		logger: logger,
	}
}

// RunOnce claims one batch under SKIP LOCKED, so concurrent relays never publish the same job.
func (r *Relay) RunOnce(ctx context.Context) (RelayResult, error) {
	var res RelayResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = RelayResult{}
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimQueued(ctx, tx.DB(), now, r.opts.BatchSize)
		if err != nil {
			return err
		}
		res.Claimed = len(jobs)

		for _, job := range jobs {
			if perr := r.publish(ctx, job); perr != nil {
				res.Failed++
				if err := r.reschedule(ctx, tx, job, perr, now); err != nil {
					return err
				}
				continue
			}
			res.Sent++
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, shared.NotificationStatusSent, nil, now, now); err != nil {
				return err
			}
			if err := r.markNotified(ctx, tx, job); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, errs.Wrap(err, "relay outcome jobs")
	}

	for range res.Sent {
		r.metrics.OutcomeRelayed(true)
	}
	for range res.Failed {
		r.metrics.OutcomeRelayed(false)
	}
	if res.Claimed > 0 {
		r.logger.InfoContext(ctx, "outcome relay batch done",
			"claimed", res.Claimed,
			"sent", res.Sent,
			"failed", res.Failed)
	}
	return res, nil
}

func (r *Relay) publish(ctx context.Context, job shared.NotificationJob) error {
	if job.Kind != shared.NotificationKindOutcome {
		return errs.Newf("unsupported job kind %q", job.Kind)
	}
	return r.pub.Publish(ctx, r.opts.SubjectPrefix+"."+job.Topic, job.Payload)
}

func (r *Relay) reschedule(ctx context.Context, tx shared.Tx, job shared.NotificationJob, cause error, now time.Time) error {
	msg := cause.Error()
	attempts := int(job.Attempts) + 1
	status := shared.NotificationStatusQueued
	if r.retry.Exhausted(attempts) {
		status = shared.NotificationStatusFailed
	}
	r.logger.WarnContext(ctx, "outcome publish failed",
		"job_id", job.ID,
		"attempts", attempts,
		"status", status,
		"error", cause)
	return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, &msg, now.Add(r.retry.Delay(attempts)), now)
}

func (r *Relay) markNotified(ctx context.Context, tx shared.Tx, job shared.NotificationJob) error {
	var outcome pricechange.Outcome
	if err := json.Unmarshal(job.Payload, &outcome); err != nil {
		r.logger.WarnContext(ctx, "undecodable outcome payload", "job_id", job.ID, "error", err)
		return nil
	}
	status, ok := executionStatusFor(outcome.Status)
	if !ok {
		return nil
	}
	_, err := tx.History().MarkNotified(ctx, tx.DB(), outcome.ScheduleID, status)
	return err
}

func executionStatusFor(s pricechange.Status) (pricechange.ExecutionStatus, bool) {
	switch s {
	case pricechange.StatusApplied:
		return pricechange.ExecutionSuccess, true
	case pricechange.StatusFailed:
		return pricechange.ExecutionFailed, true
	case pricechange.StatusCancelled:
		return pricechange.ExecutionCancelled, true
	default:
		return "", false
	}
}
