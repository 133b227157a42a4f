package api

import (
	"net/http"

	reqdto "referral-pricing/internal/handler/dto/request"
	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/internal/handler/httperr"
	"referral-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	coordinator commands.ReferralPricingCoordinator
}

func NewReferralHandler(coordinator commands.ReferralPricingCoordinator) *ReferralHandler {
	return &ReferralHandler{coordinator: coordinator}
}

// @Summary Hand over a qualified referral
// @Description Schedules a price reduction on the referrer's subscription for its next payment date
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body reqdto.QualifiedReferralRequest true "Qualified referral"
// @Success 201 {object} resdto.QualifyResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} resdto.QualifyResponse
// @Failure 422 {object} resdto.QualifyResponse
// @Failure 503 {object} resdto.QualifyResponse
// @Router /api/referrals/qualified [post]
func (h *ReferralHandler) Qualified(c *gin.Context) {
	var req reqdto.QualifiedReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.coordinator.OnReferralOrderQualified(c.Request.Context(), req.ToDomain())
	resp := resdto.NewQualifyResponse(string(result.Outcome), result.Reason, result.ScheduleID)

	switch result.Outcome {
	case commands.QualifyScheduled:
		c.JSON(http.StatusCreated, resp)
	case commands.QualifyConflict:
		c.JSON(http.StatusConflict, resp)
	case commands.QualifyRejected:
		c.JSON(http.StatusUnprocessableEntity, resp)
	case commands.QualifyUnavailable:
		c.JSON(http.StatusServiceUnavailable, resp)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, resultErr(result.Err), "Failed to schedule price change", nil)
	}
}
