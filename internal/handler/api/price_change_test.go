//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/handler/api"
	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/queries"
	"referral-pricing/tests/common/builder"
	"referral-pricing/tests/common/httptest"
	queriesmock "referral-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PriceChangeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPriceChangeQueries
	handler     *api.PriceChangeHandler
}

func (s *PriceChangeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPriceChangeQueries(s.mockCtrl)
	s.handler = api.NewPriceChangeHandler(s.mockQueries)

	s.router.GET("/subscriptions/:id/price-changes", s.handler.ListBySubscription)
	s.router.GET("/subscriptions/:id/price-change-history", s.handler.History)
	s.router.GET("/price-changes/stats", s.handler.Stats)
	s.router.GET("/price-changes/outcomes", s.handler.Outcomes)
}

func (s *PriceChangeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceChangeHandlerSuite(t *testing.T) {
	suite.Run(t, new(PriceChangeHandlerTestSuite))
}

// =============================================================================
// ListBySubscription Tests
// =============================================================================

func (s *PriceChangeHandlerTestSuite) TestListBySubscription() {
	s.Run("success: items rendered", func() {
		view := builder.NewPriceChangeBuilder().BuildView()
		s.mockQueries.EXPECT().ListBySubscription(gomock.Any(), "sub_referrer", "pending", 20).
			Return([]*queries.PriceChangeView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-changes?status=pending", nil, "")

		var body struct {
			Items []resdto.PriceChangeResponse `json:"items"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.ID, body.Items[0].ID)
		s.Equal("pending", body.Items[0].Status)
		s.True(view.NewPrice.Equal(body.Items[0].NewPrice))
	})

	s.Run("limit is clamped", func() {
		s.mockQueries.EXPECT().ListBySubscription(gomock.Any(), "sub_referrer", "", queries.MaxListLimit).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-changes?limit=5000", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("error: invalid status filter", func() {
		s.mockQueries.EXPECT().ListBySubscription(gomock.Any(), "sub_referrer", "done", 20).
			Return(nil, errs.Mark(errors.New(`unknown status "done"`), errs.ErrInvalidStatusFilter))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-changes?status=done", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: read store failure", func() {
		s.mockQueries.EXPECT().ListBySubscription(gomock.Any(), "sub_referrer", "", 20).Return(nil, errors.New("database connection error"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-changes", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to list price changes")
	})
}

// =============================================================================
// History Tests
// =============================================================================

func (s *PriceChangeHandlerTestSuite) TestHistory() {
	at := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	s.Run("success: next cursor exposed", func() {
		item := &queries.HistoryView{
			ID:                     uuid.New(),
			ReferrerSubscriptionID: "sub_referrer",
			ReferredOrderID:        "order_1",
			Action:                 "apply_reduction",
			PriceBefore:            money.MustParse("100.00"),
			PriceAfter:             money.MustParse("90.00"),
			ReductionAmount:        money.MustParse("10.00"),
			ExecutionStatus:        "success",
			CreatedAt:              at,
		}
		next := &queries.Cursor{After: queries.EncodeAfterCursor(at, item.ID)}
		s.mockQueries.EXPECT().ListHistory(gomock.Any(), "sub_referrer", (*queries.Cursor)(nil), 1).
			Return([]*queries.HistoryView{item}, next, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-change-history?limit=1", nil, "")

		var body struct {
			Items      []resdto.HistoryResponse `json:"items"`
			NextCursor string                   `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("success", body.Items[0].ExecutionStatus)
		s.Equal("90.00", body.Items[0].PriceAfter.String())
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("cursor is forwarded", func() {
		s.mockQueries.EXPECT().ListHistory(gomock.Any(), "sub_referrer", &queries.Cursor{After: "abc"}, 20).Return(nil, nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-change-history?after=abc", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.NotContains(w.Body.String(), "next_cursor")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().ListHistory(gomock.Any(), "sub_referrer", gomock.Any(), 20).
			Return(nil, nil, errs.Mark(errors.New("bad base64"), errs.ErrInvalidCursor))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/sub_referrer/price-change-history?after=%25%25", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cursor")
	})
}

// =============================================================================
// Outcomes Tests
// =============================================================================

func (s *PriceChangeHandlerTestSuite) TestOutcomes() {
	at := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	lastErr := "nats: timeout"
	view := &queries.OutcomeView{
		JobID: uuid.New(),
		Outcome: pricechange.Outcome{
			ScheduleID:             uuid.New(),
			ReferrerSubscriptionID: "sub_referrer",
			Status:                 pricechange.StatusApplied,
			OriginalPrice:          money.MustParse("100.00"),
			NewPrice:               money.MustParse("90.00"),
			ReductionAmount:        money.MustParse("10.00"),
			OccurredAt:             at,
		},
		DeliveryStatus: "queued",
		Attempts:       1,
		LastError:      &lastErr,
		CreatedAt:      at,
	}
	s.mockQueries.EXPECT().ListOutcomes(gomock.Any(), (*queries.Cursor)(nil), 20).Return([]*queries.OutcomeView{view}, nil, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/price-changes/outcomes", nil, "")

	var body struct {
		Items []resdto.OutcomeResponse `json:"items"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Require().Len(body.Items, 1)
	got := body.Items[0]
	s.Equal(view.JobID, got.JobID)
	s.Equal(view.Outcome.ScheduleID, got.Outcome.ScheduleID)
	s.Equal(pricechange.StatusApplied, got.Outcome.Status)
	s.Equal("queued", got.DeliveryStatus)
	s.Equal(&lastErr, got.LastError)
}

// =============================================================================
// Stats Tests
// =============================================================================

func (s *PriceChangeHandlerTestSuite) TestStats() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetStats(gomock.Any()).Return(&queries.StatsView{
			TotalScheduled:    10,
			TotalPending:      4,
			TotalApplied:      3,
			TotalFailed:       1,
			TotalCancelled:    2,
			CumulativeSavings: money.MustParse("42.50"),
			SuccessRate:       decimal.RequireFromString("75"),
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/price-changes/stats", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		want := map[string]any{
			"total_scheduled":    float64(10),
			"total_pending":      float64(4),
			"total_applied":      float64(3),
			"total_failed":       float64(1),
			"total_cancelled":    float64(2),
			"cumulative_savings": "42.50",
			"success_rate":       "75",
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("stats mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error", func() {
		s.mockQueries.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("database connection error"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/price-changes/stats", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to load statistics")
	})
}
