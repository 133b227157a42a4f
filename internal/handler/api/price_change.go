package api

import (
	"net/http"
	"strconv"

	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/internal/handler/httperr"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 20

type PriceChangeHandler struct {
	q queries.PriceChangeQueries
}

func NewPriceChangeHandler(q queries.PriceChangeQueries) *PriceChangeHandler {
	return &PriceChangeHandler{q: q}
}

// @Summary List price changes of a subscription
// @Tags price-changes
// @Produce json
// @Param id path string true "Referrer subscription ID"
// @Param status query string false "pending, applied, failed or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httperr.Response
// @Router /api/subscriptions/{id}/price-changes [get]
func (h *PriceChangeHandler) ListBySubscription(c *gin.Context) {
	items, err := h.q.ListBySubscription(c.Request.Context(), c.Param("id"), c.Query("status"), queryLimit(c))
	if err != nil {
		if errs.Is(err, errs.ErrInvalidStatusFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list price changes", nil)
		return
	}
	res, err := resdto.FromPriceChangeViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render price changes", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": res})
}

// @Summary Price change history of a subscription
// @Tags price-changes
// @Produce json
// @Param id path string true "Referrer subscription ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httperr.Response
// @Router /api/subscriptions/{id}/price-change-history [get]
func (h *PriceChangeHandler) History(c *gin.Context) {
	items, next, err := h.q.ListHistory(c.Request.Context(), c.Param("id"), queryCursor(c), queryLimit(c))
	if err != nil {
		abortListError(c, err, "Failed to list history")
		return
	}
	res, err := resdto.FromHistoryViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render history", nil)
		return
	}
	resp := gin.H{"items": res}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Price change statistics
// @Tags price-changes
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /api/price-changes/stats [get]
func (h *PriceChangeHandler) Stats(c *gin.Context) {
	stats, err := h.q.GetStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load statistics", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

// @Summary Terminal outcome feed
// @Tags price-changes
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httperr.Response
// @Router /api/price-changes/outcomes [get]
func (h *PriceChangeHandler) Outcomes(c *gin.Context) {
	items, next, err := h.q.ListOutcomes(c.Request.Context(), queryCursor(c), queryLimit(c))
	if err != nil {
		abortListError(c, err, "Failed to list outcomes")
		return
	}
	resp := gin.H{"items": resdto.FromOutcomeViews(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

func queryLimit(c *gin.Context) int {
	limit := defaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	return limit
}

func queryCursor(c *gin.Context) *queries.Cursor {
	if after := c.Query("after"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}

func abortListError(c *gin.Context, err error, msg string) {
	if errs.Is(err, errs.ErrInvalidCursor) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}
