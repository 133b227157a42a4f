package api

import (
	"errors"
	"net/http"

	"referral-pricing/internal/domain/subscription"
	reqdto "referral-pricing/internal/handler/dto/request"
	resdto "referral-pricing/internal/handler/dto/response"
	"referral-pricing/internal/handler/httperr"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBytes       = 64 << 10
)

// WebhookParser verifies a provider payload and reduces it to a subscription event.
// relevant is false for verified events nothing reacts to.
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (ev subscription.Event, relevant bool, err error)
}

type BillingHandler struct {
	scheduler commands.PriceChangeScheduler
	parser    WebhookParser
}

func NewBillingHandler(scheduler commands.PriceChangeScheduler, parser WebhookParser) *BillingHandler {
	return &BillingHandler{scheduler: scheduler, parser: parser}
}

// @Summary Receive a billing event
// @Description Applies or cancels the pending price change of the subscription. Always acknowledged once parsed.
// @Tags billing
// @Accept json
// @Produce json
// @Param request body reqdto.BillingEventRequest true "Billing event"
// @Success 200 {object} resdto.ApplyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/billing/events [post]
func (h *BillingHandler) Event(c *gin.Context) {
	var req reqdto.BillingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.dispatch(c, req.ToDomain())
}

// @Summary Receive a Stripe webhook
// @Description invoice.upcoming, invoice.paid and customer.subscription.deleted drive the scheduler; other events are acknowledged and ignored.
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} resdto.ApplyResponse
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable payload", nil)
		return
	}

	ev, relevant, err := h.parser.ParseWebhook(payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		msg := "Invalid billing event"
		if errs.Is(err, errs.ErrWebhookSignature) {
			msg = "Invalid signature"
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return
	}
	if !relevant {
		c.JSON(http.StatusOK, resdto.NewApplyResponse(string(commands.OutcomeNoop), "event ignored", uuid.Nil))
		return
	}
	h.dispatch(c, ev)
}

func (h *BillingHandler) dispatch(c *gin.Context, ev subscription.Event) {
	result := h.scheduler.OnBillingEvent(c.Request.Context(), ev.SubscriptionID, ev.Kind, ev.Reason)
	if result.Err != nil {
		// Acknowledged regardless; retry state stays internal.
		_ = c.Error(result.Err)
	}
	c.JSON(http.StatusOK, resdto.NewApplyResponse(string(result.Outcome), result.Reason, result.ScheduleID))
}

func resultErr(err error) error {
	if err == nil {
		return errors.New("unexpected outcome")
	}
	return err
}
