//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"referral-pricing/internal/domain/referral"
	"referral-pricing/internal/handler/api"
	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/tests/common/builder"
	"referral-pricing/tests/common/httptest"
	"referral-pricing/tests/common/testutil"
	commandsmock "referral-pricing/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const qualifiedURL = "/api/referrals/qualified"

type ReferralHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCoordinator *commandsmock.MockReferralPricingCoordinator
	handler         *api.ReferralHandler
}

func (s *ReferralHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoordinator = commandsmock.NewMockReferralPricingCoordinator(s.mockCtrl)
	s.handler = api.NewReferralHandler(s.mockCoordinator)

	s.router.POST(qualifiedURL, s.handler.Qualified)
}

func (s *ReferralHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReferralHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReferralHandlerTestSuite))
}

// =============================================================================
// Qualified Tests
// =============================================================================

func (s *ReferralHandlerTestSuite) TestQualified() {
	scheduleID := uuid.New()

	testCases := []struct {
		name           string
		result         commands.QualifyResult
		expectedStatus int
		expectedBody   resdto.QualifyResponse
	}{
		{
			name:           "success: reduction scheduled",
			result:         commands.QualifyResult{Outcome: commands.QualifyScheduled, ScheduleID: scheduleID},
			expectedStatus: http.StatusCreated,
			expectedBody:   resdto.QualifyResponse{Outcome: "scheduled", ScheduleID: &scheduleID},
		},
		{
			name: "conflict: price change already pending",
			result: commands.QualifyResult{
				Outcome:    commands.QualifyConflict,
				Reason:     "price change already pending",
				ScheduleID: scheduleID,
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   resdto.QualifyResponse{Outcome: "conflict", Reason: "price change already pending", ScheduleID: &scheduleID},
		},
		{
			name:           "rejected: referrer not active",
			result:         commands.QualifyResult{Outcome: commands.QualifyRejected, Reason: "referrer subscription is not active"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   resdto.QualifyResponse{Outcome: "rejected", Reason: "referrer subscription is not active"},
		},
		{
			name:           "unavailable: billing provider down",
			result:         commands.QualifyResult{Outcome: commands.QualifyUnavailable, Reason: "context deadline exceeded"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   resdto.QualifyResponse{Outcome: "billing_unavailable", Reason: "context deadline exceeded"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCoordinator.EXPECT().OnReferralOrderQualified(gomock.Any(), gomock.Any()).Return(tc.result)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, qualifiedURL, builder.NewReferralBuilder().BuildRequest(), "")

			s.Require().Equal(tc.expectedStatus, w.Code, w.Body.String())
			var body resdto.QualifyResponse
			_ = httptest.DecodeResponseBody(s.T(), w.Body, &body)
			s.Equal(tc.expectedBody, body)
		})
	}
}

func (s *ReferralHandlerTestSuite) TestQualified_ResponseBodyOnRejection() {
	s.mockCoordinator.EXPECT().OnReferralOrderQualified(gomock.Any(), gomock.Any()).
		Return(commands.QualifyResult{Outcome: commands.QualifyRejected, Reason: "no billable items"})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, qualifiedURL, builder.NewReferralBuilder().BuildRequest(), "")

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.JSONEq(`{"outcome":"rejected","reason":"no billable items"}`, w.Body.String())
}

func (s *ReferralHandlerTestSuite) TestQualified_PassesDecodedContext() {
	b := builder.NewReferralBuilder()
	s.mockCoordinator.EXPECT().OnReferralOrderQualified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc referral.Context) commands.QualifyResult {
			want := b.BuildDomain()
			s.Equal(want.ReferrerSubscriptionID, rc.ReferrerSubscriptionID)
			s.Equal(want.ReferredOrderID, rc.ReferredOrderID)
			s.Equal(want.ReferredCustomerID, rc.ReferredCustomerID)
			s.True(want.ReferrerPrice.Equal(rc.ReferrerPrice))
			s.True(want.ReferredContribution.Equal(rc.ReferredContribution))
			s.Equal(want.BillableProductIDs, rc.BillableProductIDs)
			return commands.QualifyResult{Outcome: commands.QualifyScheduled, ScheduleID: uuid.New()}
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, qualifiedURL, b.BuildRequest(), "")

	s.Equal(http.StatusCreated, w.Code)
}

func (s *ReferralHandlerTestSuite) TestQualified_StorageError() {
	s.mockCoordinator.EXPECT().OnReferralOrderQualified(gomock.Any(), gomock.Any()).
		Return(commands.QualifyResult{Outcome: commands.QualifyStorageError, Err: errors.New("database connection error")})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, qualifiedURL, builder.NewReferralBuilder().BuildRequest(), "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to schedule price change")
}

func (s *ReferralHandlerTestSuite) TestQualified_Validation() {
	reqBody := builder.NewReferralBuilder().BuildRequest()

	testCases := []struct {
		name string
		body map[string]any
	}{
		{name: "missing referrer subscription", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("referrer_subscription_id", nil))},
		{name: "missing referred order", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("referred_order_id", nil))},
		{name: "missing referred customer", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("referred_customer_id", nil))},
		{name: "empty billable products", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("billable_product_ids", []string{}))},
		{name: "malformed price", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("referrer_price", "ten euros"))},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, qualifiedURL, tc.body, "")

			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}
}
