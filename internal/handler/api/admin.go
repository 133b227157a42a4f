package api

import (
	"net/http"

	"referral-pricing/internal/handler/httperr"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	scheduler commands.PriceChangeScheduler
}

func NewAdminHandler(scheduler commands.PriceChangeScheduler) *AdminHandler {
	return &AdminHandler{scheduler: scheduler}
}

// @Summary Run the retry sweep now
// @Tags admin
// @Produce json
// @Success 200 {object} commands.SweepSummary
// @Failure 409 {object} httperr.Response
// @Router /api/admin/retry-sweep [post]
func (h *AdminHandler) RetrySweep(c *gin.Context) {
	summary, err := h.scheduler.RunRetrySweep(c.Request.Context())
	if err != nil {
		if errs.Is(err, errs.ErrRetrySweepAlreadyBusy) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Retry sweep already running", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Retry sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, summary)
}
