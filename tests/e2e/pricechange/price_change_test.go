//go:build e2e

package pricechange_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/tests/common/builder"
	"referral-pricing/tests/common/dbtest"
	"referral-pricing/tests/common/httptest"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	qualifiedURL     = "/api/referrals/qualified"
	billingEventsURL = "/api/billing/events"
	priceChangesURL  = "/api/subscriptions/%s/price-changes"
	historyURL       = "/api/subscriptions/%s/price-change-history"
	statsURL         = "/api/price-changes/stats"
	retrySweepURL    = "/api/admin/retry-sweep"

	referrerSub      = "sub_referrer"
	referrerCustomer = "cus_referrer"
)

type PriceChangeSuite struct {
	e2e.SharedSuite
}

func (s *PriceChangeSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPriceChangeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PriceChangeSuite))
}

func (s *PriceChangeSuite) qualify(orderID string) (int, resdto.QualifyResponse) {
	body := builder.NewReferralBuilder().With(func(b *builder.ReferralBuilder) {
		b.ReferredOrderID = orderID
	}).BuildRequest()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, qualifiedURL, body, "")
	var res resdto.QualifyResponse
	_ = httptest.DecodeResponseBody(s.T(), w.Body, &res)
	return w.Code, res
}

func (s *PriceChangeSuite) billingEvent(kind, reason string) resdto.ApplyResponse {
	body := map[string]any{"type": kind, "subscription_id": referrerSub}
	if reason != "" {
		body["reason"] = reason
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, billingEventsURL, body, "")
	var res resdto.ApplyResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *PriceChangeSuite) retrySweep() commands.SweepSummary {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, retrySweepURL, nil, "")
	var summary commands.SweepSummary
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &summary)
	return summary
}

// =============================================================================
// TestQualifiedReferral - scheduling through the HTTP surface
// =============================================================================

func (s *PriceChangeSuite) TestQualifiedReferral() {
	s.Run("Normal case: reduction is scheduled for the next payment date", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")

		code, res := s.qualify("order_1")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "scheduled", res.Outcome)
		require.NotNil(t, res.ScheduleID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(priceChangesURL, referrerSub), nil, "")
		var list struct {
			Items []resdto.PriceChangeResponse `json:"items"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Items, 1)

		got := list.Items[0]
		want := resdto.PriceChangeResponse{
			ID:                     *res.ScheduleID,
			ReferrerSubscriptionID: referrerSub,
			ReferredOrderID:        "order_1",
			Action:                 "apply_reduction",
			Status:                 "pending",
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(resdto.PriceChangeResponse{},
				"OriginalPrice", "NewPrice", "ReductionAmount", "ReductionPercentage", "ReferredContribution",
				"ScheduledDate", "Metadata", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(want, *got, opts); diff != "" {
			t.Errorf("price change mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "100.00", got.OriginalPrice.String())
		require.Equal(t, "90.00", got.NewPrice.String())
		require.Equal(t, "10.00", got.ReductionAmount.String())
		require.Equal(t, "10", got.ReductionPercentage.String())
	})

	s.Run("Conflict: second referral while a change is pending", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")

		code, first := s.qualify("order_1")
		require.Equal(t, http.StatusCreated, code)

		code, second := s.qualify("order_2")
		require.Equal(t, http.StatusConflict, code)
		require.Equal(t, "conflict", second.Outcome)
		require.Equal(t, first.ScheduleID, second.ScheduleID)
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "pending"))
	})

	s.Run("Concurrent: exactly one of many simultaneous referrals is scheduled", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")

		const n = 8
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				body := builder.NewReferralBuilder().With(func(b *builder.ReferralBuilder) {
					b.ReferredOrderID = fmt.Sprintf("order_%d", i)
				}).BuildRequest()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, qualifiedURL, body, "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status %d", c)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "pending"))
	})

	s.Run("Rejected: referrer is not active", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		snap, err := s.Billing.GetSubscription(context.Background(), referrerSub)
		require.NoError(t, err)
		snap.Status = "paused"
		s.Billing.Put(snap)

		code, res := s.qualify("order_1")
		require.Equal(t, http.StatusUnprocessableEntity, code)
		require.Equal(t, "rejected", res.Outcome)
		require.Equal(t, 0, dbtest.CountPriceChanges(t, s.DB, referrerSub, "pending"))
	})
}

// =============================================================================
// TestPendingUniqueness - enforced by the partial unique index
// =============================================================================

func (s *PriceChangeSuite) TestPendingUniqueness() {
	s.Run("Database rejects a second pending row for the same subscription", func() {
		t := s.T()
		dbtest.CreatePendingPriceChange(t, s.DB, referrerSub, "order_1", time.Now())

		_, err := s.DB.Exec(context.Background(), `
			INSERT INTO scheduled_price_changes (
			    id, referrer_subscription_id, referred_order_id, original_price, new_price,
			    reduction_amount, reduction_percentage, referred_contribution, scheduled_date
			) VALUES (gen_random_uuid(), $1, 'order_2', 100, 90, 10, 10, 50, now())`, referrerSub)

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr), "expected a postgres error, got %v", err)
		require.Equal(t, "23505", pgErr.Code)
	})

	s.Run("A new referral is accepted once the previous change is resolved", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")

		code, _ := s.qualify("order_1")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "applied", s.billingEvent("payment_due", "").Outcome)

		s.Billing.PutActive(referrerSub, referrerCustomer, "90.00")
		code, _ = s.qualify("order_2")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "pending"))
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "applied"))
	})
}

// =============================================================================
// TestBillingEvents - apply, recover and cancel
// =============================================================================

func (s *PriceChangeSuite) TestBillingEvents() {
	s.Run("Normal case: payment due applies the new price", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		_, scheduled := s.qualify("order_1")

		res := s.billingEvent("payment_due", "")

		require.Equal(t, "applied", res.Outcome)
		require.Equal(t, scheduled.ScheduleID, res.ScheduleID)
		require.Equal(t, "90.00", s.Billing.Price(referrerSub).String())
		require.Equal(t, 1, s.Billing.SetPriceCalls(referrerSub))
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "applied"))
		require.Equal(t, 1, dbtest.CountHistory(t, s.DB, referrerSub, "success"))
	})

	s.Run("Recovery: price already changed at the provider", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		code, _ := s.qualify("order_1")
		require.Equal(t, http.StatusCreated, code)

		// an earlier attempt reached billing but never recorded the outcome
		s.Billing.PutActive(referrerSub, referrerCustomer, "90.00")

		res := s.billingEvent("payment_due", "")

		require.Equal(t, "recovered", res.Outcome)
		require.Equal(t, 0, s.Billing.SetPriceCalls(referrerSub))
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "applied"))
	})

	s.Run("Idempotent: repeated payment event after apply is a no-op", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		s.qualify("order_1")

		require.Equal(t, "applied", s.billingEvent("payment_due", "").Outcome)
		require.Equal(t, "noop", s.billingEvent("payment_completed", "").Outcome)
		require.Equal(t, 1, s.Billing.SetPriceCalls(referrerSub))
	})

	s.Run("Concurrent: simultaneous billing events apply the change once", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		code, scheduled := s.qualify("order_1")
		require.Equal(t, http.StatusCreated, code)

		const n = 6
		outcomes := make([]string, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				kind := "payment_due"
				if i%2 == 1 {
					kind = "payment_completed"
				}
				body := map[string]any{"type": kind, "subscription_id": referrerSub}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, billingEventsURL, body, "")
				var res resdto.ApplyResponse
				if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
					outcomes[i] = fmt.Sprintf("status %d", w.Code)
					return
				}
				outcomes[i] = res.Outcome
			}(i)
		}
		wg.Wait()

		applied := 0
		for _, o := range outcomes {
			switch o {
			case "applied":
				applied++
			case "noop":
			default:
				t.Errorf("unexpected outcome %q", o)
			}
		}
		require.Equal(t, 1, applied)
		require.Equal(t, 1, s.Billing.SetPriceCalls(referrerSub))
		require.Equal(t, "90.00", s.Billing.Price(referrerSub).String())
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "applied"))
		require.Equal(t, 1, dbtest.CountHistory(t, s.DB, referrerSub, "success"))
		require.NotNil(t, scheduled.ScheduleID)
	})

	s.Run("Drift: live price moved away from the original", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		s.qualify("order_1")
		s.Billing.PutActive(referrerSub, referrerCustomer, "120.00")

		res := s.billingEvent("payment_due", "")

		require.Equal(t, "failed", res.Outcome)
		require.Equal(t, 0, s.Billing.SetPriceCalls(referrerSub))
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "failed"))
		require.Equal(t, 1, dbtest.CountHistory(t, s.DB, referrerSub, "failed"))
	})

	s.Run("Termination: pending change is cancelled", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		s.qualify("order_1")

		res := s.billingEvent("subscription_terminated", "customer churned")

		require.Equal(t, "cancelled", res.Outcome)
		require.Equal(t, "100.00", s.Billing.Price(referrerSub).String())
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "cancelled"))
		require.Equal(t, 1, dbtest.CountHistory(t, s.DB, referrerSub, "cancelled"))
	})

	s.Run("Termination: later billing events leave the price alone", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		s.qualify("order_1")
		require.Equal(t, "cancelled", s.billingEvent("subscription_terminated", "customer churned").Outcome)

		res := s.billingEvent("payment_due", "")

		require.Equal(t, "noop", res.Outcome)
		require.Equal(t, "100.00", s.Billing.Price(referrerSub).String())
		require.Equal(t, 0, s.Billing.SetPriceAttempts(referrerSub))
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "cancelled"))
		require.Equal(t, 0, dbtest.CountHistory(t, s.DB, referrerSub, "success"))
	})
}

// =============================================================================
// TestRetrySweep - transient billing failures and the retry budget
// =============================================================================

func (s *PriceChangeSuite) TestRetrySweep() {
	s.Run("Three transient failures exhaust the budget and drop the entry from retries", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		code, _ := s.qualify("order_1")
		require.Equal(t, http.StatusCreated, code)
		s.Billing.FailSetPrice(referrerSub, 3, errors.New("stripe: 503 service unavailable"))

		require.Equal(t, "retry_scheduled", s.billingEvent("payment_due", "").Outcome)
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "pending"))

		// still inside the backoff window
		require.Equal(t, commands.SweepSummary{}, s.retrySweep())

		dbtest.BackdatePriceChanges(t, s.DB, referrerSub, 48*time.Hour)
		require.Equal(t, commands.SweepSummary{Candidates: 1, Retrying: 1}, s.retrySweep())

		dbtest.BackdatePriceChanges(t, s.DB, referrerSub, 48*time.Hour)
		require.Equal(t, commands.SweepSummary{Candidates: 1, Failed: 1}, s.retrySweep())

		require.Equal(t, 3, s.Billing.SetPriceAttempts(referrerSub))
		require.Equal(t, 0, s.Billing.SetPriceCalls(referrerSub))
		require.Equal(t, "100.00", s.Billing.Price(referrerSub).String())
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "failed"))
		require.Equal(t, 3, dbtest.CountHistory(t, s.DB, referrerSub, "failed"))

		dbtest.BackdatePriceChanges(t, s.DB, referrerSub, 48*time.Hour)
		require.Equal(t, commands.SweepSummary{}, s.retrySweep())
		require.Equal(t, 3, s.Billing.SetPriceAttempts(referrerSub))
	})

	s.Run("A recovered provider lets the sweep apply the change", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		s.qualify("order_1")
		s.Billing.FailSetPrice(referrerSub, 1, errors.New("stripe: 500"))

		require.Equal(t, "retry_scheduled", s.billingEvent("payment_due", "").Outcome)
		dbtest.BackdatePriceChanges(t, s.DB, referrerSub, 48*time.Hour)

		require.Equal(t, commands.SweepSummary{Candidates: 1, Applied: 1}, s.retrySweep())
		require.Equal(t, "90.00", s.Billing.Price(referrerSub).String())
		require.Equal(t, 1, dbtest.CountPriceChanges(t, s.DB, referrerSub, "applied"))
	})
}

// =============================================================================
// TestReadSide - history feed and statistics
// =============================================================================

func (s *PriceChangeSuite) TestReadSide() {
	s.Run("History and stats reflect resolved changes", func() {
		t := s.T()
		s.Billing.PutActive(referrerSub, referrerCustomer, "100.00")
		s.qualify("order_1")
		s.billingEvent("payment_due", "")

		s.Billing.PutActive(referrerSub, referrerCustomer, "90.00")
		s.qualify("order_2")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, referrerSub), nil, "")
		var history struct {
			Items []resdto.HistoryResponse `json:"items"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history.Items, 1)
		require.Equal(t, "success", history.Items[0].ExecutionStatus)
		require.Equal(t, "order_1", history.Items[0].ReferredOrderID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, "")
		var stats resdto.StatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, int64(2), stats.TotalScheduled)
		require.Equal(t, int64(1), stats.TotalPending)
		require.Equal(t, int64(1), stats.TotalApplied)
		require.Equal(t, "100", stats.SuccessRate.String())
		require.Equal(t, "10.00", stats.CumulativeSavings.String())
	})

	s.Run("Invalid status filter is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(priceChangesURL, referrerSub)+"?status=done", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})
}
