//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/tests/common/builder"
	commandsmock "referral-pricing/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var schedulerNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

type schedulerDeps struct {
	store   *commandsmock.MockScheduleStore
	billing *commandsmock.MockBillingGateway
	alerter *commandsmock.MockAlerter
	metrics *commandsmock.MockMetrics
	clock   *clock.MockClock
}

func defaultSchedulerOptions() commands.SchedulerOptions {
	return commands.SchedulerOptions{
		PriceTolerance:   money.MustParse("0.01"),
		DriftIsPermanent: true,
		BillingTimeout:   5 * time.Second,
		SweepConcurrency: 2,
	}
}

func newScheduler(t *testing.T, opts commands.SchedulerOptions) (commands.PriceChangeScheduler, *schedulerDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &schedulerDeps{
		store:   commandsmock.NewMockScheduleStore(ctrl),
		billing: commandsmock.NewMockBillingGateway(ctrl),
		alerter: commandsmock.NewMockAlerter(ctrl),
		metrics: commandsmock.NewMockMetrics(ctrl),
		clock:   clock.NewMockClock(schedulerNow),
	}
	s := commands.NewPriceChangeScheduler(d.store, d.billing, d.alerter, d.metrics, d.clock, opts, slog.New(slog.DiscardHandler))
	return s, d
}

// expectClaim makes the claim succeed and returns the claimed copy the scheduler continues with.
func (d *schedulerDeps) expectClaim(entry *pricechange.ScheduledPriceChange) *pricechange.ScheduledPriceChange {
	lease := schedulerNow.Add(10 * time.Second)
	claimed := entry.WithClaim(lease)
	d.store.EXPECT().Claim(gomock.Any(), entry, lease).Return(claimed, true, nil)
	return claimed
}

// expectStillPending answers the status re-check made just before the billing write.
func (d *schedulerDeps) expectStillPending(claimed *pricechange.ScheduledPriceChange) {
	d.store.EXPECT().GetByID(gomock.Any(), claimed.ID()).Return(claimed, nil)
}

// =============================================================================
// Schedule
// =============================================================================

func TestScheduler_Schedule(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	testCases := []struct {
		name        string
		setupMocks  func(d *schedulerDeps, entry *pricechange.ScheduledPriceChange)
		expectedErr error
	}{
		{
			name: "success: pending entry created",
			setupMocks: func(d *schedulerDeps, entry *pricechange.ScheduledPriceChange) {
				d.store.EXPECT().CreatePending(ctx, entry).Return(entry.ID(), nil)
				d.metrics.EXPECT().ScheduleCreated()
			},
		},
		{
			name: "conflict: another change already pending",
			setupMocks: func(d *schedulerDeps, entry *pricechange.ScheduledPriceChange) {
				d.store.EXPECT().CreatePending(ctx, entry).Return(uuid.Nil, errs.Mark(errors.New("duplicate"), errs.ErrAlreadyScheduled))
				d.metrics.EXPECT().ScheduleConflict()
			},
			expectedErr: errs.ErrAlreadyScheduled,
		},
		{
			name: "storage error: alerted and returned",
			setupMocks: func(d *schedulerDeps, entry *pricechange.ScheduledPriceChange) {
				d.store.EXPECT().CreatePending(ctx, entry).Return(uuid.Nil, dbErr)
				d.metrics.EXPECT().StorageError("create_pending")
				d.alerter.EXPECT().StorageFailure(ctx, "create_pending", dbErr, map[string]string{
					"schedule_id":     entry.ID().String(),
					"subscription_id": entry.ReferrerSubscriptionID(),
				})
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, d := newScheduler(t, defaultSchedulerOptions())
			entry := builder.NewPriceChangeBuilder().BuildDomain()
			tc.setupMocks(d, entry)

			id, err := s.Schedule(ctx, entry)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entry.ID(), id)
		})
	}
}

// =============================================================================
// ApplyEntry
// =============================================================================

func TestScheduler_ApplyEntry_AppliesAtBillingMoment(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())
	b := builder.NewPriceChangeBuilder()
	entry := b.BuildDomain()

	claimed := d.expectClaim(entry)
	d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
		Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
	d.expectStillPending(claimed)
	d.billing.EXPECT().SetSubscriptionPrice(gomock.Any(), "sub_referrer", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, newPrice money.Money, note string) error {
			assert.Equal(t, "90.00", newPrice.String())
			assert.Contains(t, note, "100.00 -> 90.00")
			assert.Contains(t, note, entry.ID().String())
			return nil
		})
	d.store.EXPECT().MarkApplied(gomock.Any(), claimed, schedulerNow, false).
		Return(commands.TransitionResult{Won: true, Status: pricechange.StatusApplied}, nil)
	d.metrics.EXPECT().Applied(false)

	res := s.ApplyEntry(ctx, entry)

	assert.Equal(t, commands.OutcomeApplied, res.Outcome)
	assert.Equal(t, entry.ID(), res.ScheduleID)
	assert.True(t, res.Succeeded())
}

func TestScheduler_ApplyEntry_RecoversAlreadyAppliedPrice(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())
	b := builder.NewPriceChangeBuilder()
	entry := b.BuildDomain()

	// Billing already carries the new price from an attempt whose bookkeeping failed.
	claimed := d.expectClaim(entry)
	d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
		Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("90.00")), nil)
	d.store.EXPECT().MarkApplied(gomock.Any(), claimed, schedulerNow, true).
		Return(commands.TransitionResult{Won: true, Status: pricechange.StatusApplied}, nil)
	d.metrics.EXPECT().Applied(true)

	res := s.ApplyEntry(ctx, entry)

	assert.Equal(t, commands.OutcomeRecovered, res.Outcome)
	assert.True(t, res.Succeeded())
}

func TestScheduler_ApplyEntry_FailureDecisions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		opts          func(o *commands.SchedulerOptions)
		status        subscription.Status
		livePrice     string
		getErr        error
		setErr        error
		expectSet     bool
		wantKind      pricechange.FailureKind
		wantPermanent bool
		transition    commands.TransitionResult
		wantOutcome   commands.Outcome
	}{
		{
			name:          "drift: live price moved away from original, permanent by default",
			status:        subscription.StatusActive,
			livePrice:     "120.00",
			wantKind:      pricechange.FailureDrift,
			wantPermanent: true,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusFailed},
			wantOutcome:   commands.OutcomeFailed,
		},
		{
			name:          "drift: retried when configured as transient",
			opts:          func(o *commands.SchedulerOptions) { o.DriftIsPermanent = false },
			status:        subscription.StatusActive,
			livePrice:     "120.00",
			wantKind:      pricechange.FailureDrift,
			wantPermanent: false,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusPending, RetryCount: 1},
			wantOutcome:   commands.OutcomeRetryScheduled,
		},
		{
			name:          "terminated subscription is permanent",
			status:        subscription.StatusCanceled,
			livePrice:     "100.00",
			wantKind:      pricechange.FailureTerminated,
			wantPermanent: true,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusFailed},
			wantOutcome:   commands.OutcomeFailed,
		},
		{
			name:          "past due subscription is retried",
			status:        subscription.StatusPastDue,
			livePrice:     "100.00",
			wantKind:      pricechange.FailureNotBillable,
			wantPermanent: false,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusPending, RetryCount: 1},
			wantOutcome:   commands.OutcomeRetryScheduled,
		},
		{
			name:          "subscription vanished from billing is permanent",
			getErr:        errs.Mark(errors.New("404"), errs.ErrSubscriptionNotFound),
			wantKind:      pricechange.FailureNotFound,
			wantPermanent: true,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusFailed},
			wantOutcome:   commands.OutcomeFailed,
		},
		{
			name:          "billing read timeout is retried",
			getErr:        context.DeadlineExceeded,
			wantKind:      pricechange.FailureTimeout,
			wantPermanent: false,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusPending, RetryCount: 1},
			wantOutcome:   commands.OutcomeRetryScheduled,
		},
		{
			name:          "billing write error is retried",
			status:        subscription.StatusActive,
			livePrice:     "100.00",
			expectSet:     true,
			setErr:        errors.New("stripe: 500"),
			wantKind:      pricechange.FailureBilling,
			wantPermanent: false,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusPending, RetryCount: 2},
			wantOutcome:   commands.OutcomeRetryScheduled,
		},
		{
			name:          "last allowed attempt fails terminally",
			status:        subscription.StatusActive,
			livePrice:     "100.00",
			expectSet:     true,
			setErr:        errors.New("stripe: 503"),
			wantKind:      pricechange.FailureBilling,
			wantPermanent: false,
			transition:    commands.TransitionResult{Won: true, Status: pricechange.StatusFailed, RetryCount: 3},
			wantOutcome:   commands.OutcomeFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaultSchedulerOptions()
			if tc.opts != nil {
				tc.opts(&opts)
			}
			s, d := newScheduler(t, opts)
			b := builder.NewPriceChangeBuilder()
			entry := b.BuildDomain()

			claimed := d.expectClaim(entry)
			if tc.getErr != nil {
				d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").Return(subscription.Snapshot{}, tc.getErr)
			} else {
				d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
					Return(b.BuildSnapshot(tc.status, money.MustParse(tc.livePrice)), nil)
			}
			if tc.expectSet {
				d.expectStillPending(claimed)
				d.billing.EXPECT().SetSubscriptionPrice(gomock.Any(), "sub_referrer", gomock.Any(), gomock.Any()).Return(tc.setErr)
			}
			d.store.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req commands.FailureRequest) (commands.TransitionResult, error) {
					assert.Same(t, claimed, req.Entry)
					assert.Equal(t, tc.wantKind, req.Kind)
					assert.Equal(t, tc.wantPermanent, req.Permanent)
					assert.NotEmpty(t, req.Message)
					if tc.getErr == nil {
						require.NotNil(t, req.LivePrice)
						assert.Equal(t, tc.livePrice, req.LivePrice.String())
					}
					return tc.transition, nil
				})
			d.metrics.EXPECT().Failed(tc.wantKind, tc.transition.Status.IsTerminal())

			res := s.ApplyEntry(ctx, entry)

			assert.Equal(t, tc.wantOutcome, res.Outcome)
			assert.Equal(t, entry.ID(), res.ScheduleID)
			assert.NotEmpty(t, res.Reason)
			assert.False(t, res.Succeeded())
		})
	}
}

func TestScheduler_ApplyEntry_ConcurrencyAndStorage(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	t.Run("claim lost to a concurrent worker is a noop", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		entry := builder.NewPriceChangeBuilder().BuildDomain()
		d.store.EXPECT().Claim(gomock.Any(), entry, gomock.Any()).Return(nil, false, nil)
		d.metrics.EXPECT().ConcurrentNoop("claim")

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
		assert.NoError(t, res.Err)
	})

	t.Run("claim storage error is alerted", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		entry := builder.NewPriceChangeBuilder().BuildDomain()
		d.store.EXPECT().Claim(gomock.Any(), entry, gomock.Any()).Return(nil, false, dbErr)
		d.metrics.EXPECT().StorageError("claim")
		d.alerter.EXPECT().StorageFailure(gomock.Any(), "claim", dbErr, gomock.Any())

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeStorageError, res.Outcome)
		assert.ErrorIs(t, res.Err, dbErr)
	})

	t.Run("mark applied lost to a concurrent cancel is a noop", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		b := builder.NewPriceChangeBuilder()
		entry := b.BuildDomain()
		claimed := d.expectClaim(entry)
		d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
			Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
		d.expectStillPending(claimed)
		d.billing.EXPECT().SetSubscriptionPrice(gomock.Any(), "sub_referrer", gomock.Any(), gomock.Any()).Return(nil)
		d.store.EXPECT().MarkApplied(gomock.Any(), claimed, schedulerNow, false).Return(commands.TransitionResult{Won: false}, nil)
		d.metrics.EXPECT().ConcurrentNoop("mark_applied")

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
	})

	t.Run("mark applied storage error leaves recovery to the next attempt", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		b := builder.NewPriceChangeBuilder()
		entry := b.BuildDomain()
		claimed := d.expectClaim(entry)
		d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
			Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
		d.expectStillPending(claimed)
		d.billing.EXPECT().SetSubscriptionPrice(gomock.Any(), "sub_referrer", gomock.Any(), gomock.Any()).Return(nil)
		d.store.EXPECT().MarkApplied(gomock.Any(), claimed, schedulerNow, false).Return(commands.TransitionResult{}, dbErr)
		d.metrics.EXPECT().StorageError("mark_applied")
		d.alerter.EXPECT().StorageFailure(gomock.Any(), "mark_applied", dbErr, gomock.Any())

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeStorageError, res.Outcome)
	})

	t.Run("mark failed storage error releases the claim", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		entry := builder.NewPriceChangeBuilder().BuildDomain()
		claimed := d.expectClaim(entry)
		d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").Return(subscription.Snapshot{}, errors.New("stripe down"))
		d.store.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).Return(commands.TransitionResult{}, dbErr)
		d.metrics.EXPECT().StorageError("mark_failed")
		d.alerter.EXPECT().StorageFailure(gomock.Any(), "mark_failed", dbErr, gomock.Any())
		d.store.EXPECT().Release(gomock.Any(), claimed).Return(nil)

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeStorageError, res.Outcome)
	})

	t.Run("cancellation committed mid-apply skips the billing write", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		b := builder.NewPriceChangeBuilder()
		entry := b.BuildDomain()
		claimed := d.expectClaim(entry)
		d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
			Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
		cancelled := b.With(func(pb *builder.PriceChangeBuilder) { pb.Status = pricechange.StatusCancelled }).BuildDomain()
		d.store.EXPECT().GetByID(gomock.Any(), claimed.ID()).Return(cancelled, nil)
		d.metrics.EXPECT().ConcurrentNoop("recheck_status")

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
		assert.Contains(t, res.Reason, "cancelled")
	})

	t.Run("status re-check storage error releases the claim", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		b := builder.NewPriceChangeBuilder()
		entry := b.BuildDomain()
		claimed := d.expectClaim(entry)
		d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
			Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
		d.store.EXPECT().GetByID(gomock.Any(), claimed.ID()).Return(nil, dbErr)
		d.metrics.EXPECT().StorageError("recheck_status")
		d.alerter.EXPECT().StorageFailure(gomock.Any(), "recheck_status", dbErr, gomock.Any())
		d.store.EXPECT().Release(gomock.Any(), claimed).Return(nil)

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeStorageError, res.Outcome)
		assert.ErrorIs(t, res.Err, dbErr)
	})

	t.Run("lease outlives billing and store timeouts", func(t *testing.T) {
		opts := defaultSchedulerOptions()
		opts.StoreTimeout = 2 * time.Second
		s, d := newScheduler(t, opts)
		entry := builder.NewPriceChangeBuilder().BuildDomain()
		d.store.EXPECT().Claim(gomock.Any(), entry, schedulerNow.Add(14*time.Second)).Return(nil, false, nil)
		d.metrics.EXPECT().ConcurrentNoop("claim")

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
	})

	t.Run("non-pending entry is left untouched", func(t *testing.T) {
		s, _ := newScheduler(t, defaultSchedulerOptions())
		entry := builder.NewPriceChangeBuilder().With(func(b *builder.PriceChangeBuilder) {
			b.Status = pricechange.StatusCancelled
		}).BuildDomain()

		res := s.ApplyEntry(ctx, entry)

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
		assert.Contains(t, res.Reason, "cancelled")
	})
}

// =============================================================================
// OnBillingEvent / CancelForSubscription
// =============================================================================

func TestScheduler_OnBillingEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("payment completed without pending entry is a noop", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		d.store.EXPECT().GetPending(ctx, "sub_referrer").Return(nil, errs.ErrScheduleNotFound)

		res := s.OnBillingEvent(ctx, "sub_referrer", subscription.EventPaymentCompleted, "")

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
		assert.NoError(t, res.Err)
	})

	t.Run("payment due applies the pending entry", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		b := builder.NewPriceChangeBuilder()
		entry := b.BuildDomain()
		d.store.EXPECT().GetPending(ctx, "sub_referrer").Return(entry, nil)
		claimed := d.expectClaim(entry)
		d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_referrer").
			Return(b.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
		d.expectStillPending(claimed)
		d.billing.EXPECT().SetSubscriptionPrice(gomock.Any(), "sub_referrer", gomock.Any(), gomock.Any()).Return(nil)
		d.store.EXPECT().MarkApplied(gomock.Any(), claimed, schedulerNow, false).
			Return(commands.TransitionResult{Won: true, Status: pricechange.StatusApplied}, nil)
		d.metrics.EXPECT().Applied(false)

		res := s.OnBillingEvent(ctx, "sub_referrer", subscription.EventPaymentDue, "")

		assert.Equal(t, commands.OutcomeApplied, res.Outcome)
	})

	t.Run("termination cancels the pending entry", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		entry := builder.NewPriceChangeBuilder().BuildDomain()
		d.store.EXPECT().GetPending(ctx, "sub_referrer").Return(entry, nil)
		d.store.EXPECT().MarkCancelled(ctx, entry, "customer left").
			Return(commands.TransitionResult{Won: true, Status: pricechange.StatusCancelled}, nil)
		d.metrics.EXPECT().Cancelled()

		res := s.OnBillingEvent(ctx, "sub_referrer", subscription.EventTerminated, "customer left")

		assert.Equal(t, commands.OutcomeCancelled, res.Outcome)
		assert.Equal(t, "customer left", res.Reason)
	})

	t.Run("unknown event kind is ignored", func(t *testing.T) {
		s, _ := newScheduler(t, defaultSchedulerOptions())

		res := s.OnBillingEvent(ctx, "sub_referrer", subscription.EventKind("refund_issued"), "")

		assert.Equal(t, commands.OutcomeNoop, res.Outcome)
	})

	t.Run("pending lookup storage error is alerted", func(t *testing.T) {
		s, d := newScheduler(t, defaultSchedulerOptions())
		dbErr := errors.New("pool exhausted")
		d.store.EXPECT().GetPending(ctx, "sub_referrer").Return(nil, dbErr)
		d.metrics.EXPECT().StorageError("get_pending")
		d.alerter.EXPECT().StorageFailure(ctx, "get_pending", dbErr, map[string]string{"subscription_id": "sub_referrer"})

		res := s.OnBillingEvent(ctx, "sub_referrer", subscription.EventPaymentDue, "")

		assert.Equal(t, commands.OutcomeStorageError, res.Outcome)
		assert.ErrorIs(t, res.Err, dbErr)
	})
}

func TestScheduler_CancelForSubscription_LosesToCommittedApply(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())
	entry := builder.NewPriceChangeBuilder().BuildDomain()
	d.store.EXPECT().GetPending(ctx, "sub_referrer").Return(entry, nil)
	d.store.EXPECT().MarkCancelled(ctx, entry, "subscription terminated").Return(commands.TransitionResult{Won: false}, nil)
	d.metrics.EXPECT().ConcurrentNoop("mark_cancelled")

	res := s.CancelForSubscription(ctx, "sub_referrer", "subscription terminated")

	assert.Equal(t, commands.OutcomeNoop, res.Outcome)
	assert.Equal(t, entry.ID(), res.ScheduleID)
}

// =============================================================================
// RunRetrySweep
// =============================================================================

func TestScheduler_RunRetrySweep(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())

	okBuilder := builder.NewPriceChangeBuilder().With(func(b *builder.PriceChangeBuilder) {
		b.ReferrerSubscriptionID = "sub_ok"
		b.RetryCount = 1
	})
	driftBuilder := builder.NewPriceChangeBuilder().With(func(b *builder.PriceChangeBuilder) {
		b.ReferrerSubscriptionID = "sub_drift"
		b.RetryCount = 2
	})
	ok, drift := okBuilder.BuildDomain(), driftBuilder.BuildDomain()

	d.store.EXPECT().ListRetryCandidates(gomock.Any(), schedulerNow).Return([]*pricechange.ScheduledPriceChange{ok, drift}, nil)

	okClaimed := d.expectClaim(ok)
	d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_ok").
		Return(okBuilder.BuildSnapshot(subscription.StatusActive, money.MustParse("100.00")), nil)
	d.expectStillPending(okClaimed)
	d.billing.EXPECT().SetSubscriptionPrice(gomock.Any(), "sub_ok", gomock.Any(), gomock.Any()).Return(nil)
	d.store.EXPECT().MarkApplied(gomock.Any(), okClaimed, schedulerNow, false).
		Return(commands.TransitionResult{Won: true, Status: pricechange.StatusApplied}, nil)
	d.metrics.EXPECT().Applied(false)

	d.expectClaim(drift)
	d.billing.EXPECT().GetSubscription(gomock.Any(), "sub_drift").
		Return(driftBuilder.BuildSnapshot(subscription.StatusActive, money.MustParse("80.00")), nil)
	d.store.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).
		Return(commands.TransitionResult{Won: true, Status: pricechange.StatusFailed, RetryCount: 2}, nil)
	d.metrics.EXPECT().Failed(pricechange.FailureDrift, true)

	d.metrics.EXPECT().SweepCompleted(commands.SweepSummary{Candidates: 2, Applied: 1, Failed: 1}, gomock.Any())

	summary, err := s.RunRetrySweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, commands.SweepSummary{Candidates: 2, Applied: 1, Failed: 1}, summary)
}

func TestScheduler_RunRetrySweep_ElapsedFollowsClock(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())

	d.store.EXPECT().ListRetryCandidates(gomock.Any(), schedulerNow).
		DoAndReturn(func(context.Context, time.Time) ([]*pricechange.ScheduledPriceChange, error) {
			d.clock.Add(3 * time.Second)
			return nil, nil
		})
	d.metrics.EXPECT().SweepCompleted(commands.SweepSummary{}, 3*time.Second)

	_, err := s.RunRetrySweep(ctx)

	require.NoError(t, err)
}

func TestScheduler_RunRetrySweep_RejectsOverlappingRun(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())

	entered := make(chan struct{})
	release := make(chan struct{})
	d.store.EXPECT().ListRetryCandidates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]*pricechange.ScheduledPriceChange, error) {
			close(entered)
			<-release
			return nil, nil
		})
	d.metrics.EXPECT().SweepCompleted(commands.SweepSummary{}, gomock.Any())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.RunRetrySweep(ctx)
		assert.NoError(t, err)
	}()

	<-entered
	_, err := s.RunRetrySweep(ctx)
	assert.ErrorIs(t, err, errs.ErrRetrySweepAlreadyBusy)

	close(release)
	wg.Wait()
}

func TestScheduler_RunRetrySweep_ListingFailure(t *testing.T) {
	ctx := context.Background()
	s, d := newScheduler(t, defaultSchedulerOptions())
	dbErr := errors.New("statement timeout")

	d.store.EXPECT().ListRetryCandidates(gomock.Any(), schedulerNow).Return(nil, dbErr)
	d.metrics.EXPECT().StorageError("list_retry_candidates")
	d.alerter.EXPECT().StorageFailure(gomock.Any(), "list_retry_candidates", dbErr, map[string]string{})

	_, err := s.RunRetrySweep(ctx)

	assert.ErrorIs(t, err, dbErr)
}
