//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/handler/api"
	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/tests/common/httptest"
	apimock "referral-pricing/tests/mock/api"
	commandsmock "referral-pricing/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	billingEventsURL = "/api/billing/events"
	stripeWebhookURL = "/webhooks/stripe"
)

type BillingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockScheduler *commandsmock.MockPriceChangeScheduler
	mockParser    *apimock.MockWebhookParser
	handler       *api.BillingHandler
}

func (s *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScheduler = commandsmock.NewMockPriceChangeScheduler(s.mockCtrl)
	s.mockParser = apimock.NewMockWebhookParser(s.mockCtrl)
	s.handler = api.NewBillingHandler(s.mockScheduler, s.mockParser)

	s.router.POST(billingEventsURL, s.handler.Event)
	s.router.POST(stripeWebhookURL, s.handler.StripeWebhook)
}

func (s *BillingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func (s *BillingHandlerTestSuite) postWebhook(payload, signature string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, stripeWebhookURL, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := nethttptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Event Tests
// =============================================================================

func (s *BillingHandlerTestSuite) TestEvent() {
	scheduleID := uuid.New()

	testCases := []struct {
		name     string
		body     map[string]any
		setup    func()
		expected resdto.ApplyResponse
	}{
		{
			name: "success: payment due applies pending change",
			body: map[string]any{"type": "payment_due", "subscription_id": "sub_referrer"},
			setup: func() {
				s.mockScheduler.EXPECT().OnBillingEvent(gomock.Any(), "sub_referrer", subscription.EventPaymentDue, "").
					Return(commands.ApplyResult{Outcome: commands.OutcomeApplied, ScheduleID: scheduleID})
			},
			expected: resdto.ApplyResponse{Outcome: "applied", ScheduleID: &scheduleID},
		},
		{
			name: "success: termination forwards reason",
			body: map[string]any{"type": "subscription_terminated", "subscription_id": "sub_referrer", "reason": "customer churned"},
			setup: func() {
				s.mockScheduler.EXPECT().OnBillingEvent(gomock.Any(), "sub_referrer", subscription.EventTerminated, "customer churned").
					Return(commands.ApplyResult{Outcome: commands.OutcomeCancelled, ScheduleID: scheduleID})
			},
			expected: resdto.ApplyResponse{Outcome: "cancelled", ScheduleID: &scheduleID},
		},
		{
			name: "acknowledged: nothing pending",
			body: map[string]any{"type": "payment_completed", "subscription_id": "sub_referrer"},
			setup: func() {
				s.mockScheduler.EXPECT().OnBillingEvent(gomock.Any(), "sub_referrer", subscription.EventPaymentCompleted, "").
					Return(commands.ApplyResult{Outcome: commands.OutcomeNoop, Reason: "no pending price change"})
			},
			expected: resdto.ApplyResponse{Outcome: "noop", Reason: "no pending price change"},
		},
		{
			name: "acknowledged: storage failure stays internal",
			body: map[string]any{"type": "payment_due", "subscription_id": "sub_referrer"},
			setup: func() {
				s.mockScheduler.EXPECT().OnBillingEvent(gomock.Any(), "sub_referrer", subscription.EventPaymentDue, "").
					Return(commands.ApplyResult{Outcome: commands.OutcomeStorageError, Err: errors.New("database connection error")})
			},
			expected: resdto.ApplyResponse{Outcome: "storage_error"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, billingEventsURL, tc.body, "")

			var body resdto.ApplyResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
			s.Equal(tc.expected, body)
		})
	}
}

func (s *BillingHandlerTestSuite) TestEvent_Validation() {
	testCases := []struct {
		name string
		body map[string]any
	}{
		{name: "unknown event type", body: map[string]any{"type": "invoice_created", "subscription_id": "sub_referrer"}},
		{name: "missing subscription", body: map[string]any{"type": "payment_due"}},
		{name: "reason too long", body: map[string]any{"type": "subscription_terminated", "subscription_id": "sub_referrer", "reason": strings.Repeat("x", 501)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, billingEventsURL, tc.body, "")

			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}
}

// =============================================================================
// StripeWebhook Tests
// =============================================================================

func (s *BillingHandlerTestSuite) TestStripeWebhook() {
	const payload = `{"id":"evt_1","type":"invoice.upcoming"}`

	s.Run("success: relevant event dispatched", func() {
		scheduleID := uuid.New()
		s.mockParser.EXPECT().ParseWebhook([]byte(payload), "t=1,v1=sig").
			Return(subscription.Event{Kind: subscription.EventPaymentDue, SubscriptionID: "sub_referrer"}, true, nil)
		s.mockScheduler.EXPECT().OnBillingEvent(gomock.Any(), "sub_referrer", subscription.EventPaymentDue, "").
			Return(commands.ApplyResult{Outcome: commands.OutcomeApplied, ScheduleID: scheduleID})

		w := s.postWebhook(payload, "t=1,v1=sig")

		var body resdto.ApplyResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(resdto.ApplyResponse{Outcome: "applied", ScheduleID: &scheduleID}, body)
	})

	s.Run("acknowledged: irrelevant event ignored", func() {
		s.mockParser.EXPECT().ParseWebhook(gomock.Any(), "t=1,v1=sig").Return(subscription.Event{}, false, nil)

		w := s.postWebhook(payload, "t=1,v1=sig")

		var body resdto.ApplyResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(resdto.ApplyResponse{Outcome: "noop", Reason: "event ignored"}, body)
	})

	s.Run("error: bad signature", func() {
		s.mockParser.EXPECT().ParseWebhook(gomock.Any(), "").
			Return(subscription.Event{}, false, errs.Mark(errors.New("no signatures found"), errs.ErrWebhookSignature))

		w := s.postWebhook(payload, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: malformed event", func() {
		s.mockParser.EXPECT().ParseWebhook(gomock.Any(), "t=1,v1=sig").
			Return(subscription.Event{}, false, errs.Mark(errors.New("missing subscription"), errs.ErrInvalidBillingEvent))

		w := s.postWebhook(payload, "t=1,v1=sig")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid billing event")
	})

	s.Run("error: payload too large", func() {
		w := s.postWebhook(strings.Repeat("a", 65<<10), "t=1,v1=sig")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unreadable payload")
	})
}
