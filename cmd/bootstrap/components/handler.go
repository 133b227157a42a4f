package components

import (
	"referral-pricing/internal/handler"
	"referral-pricing/internal/handler/api"
	"referral-pricing/internal/infra/billing"
	"referral-pricing/internal/infra/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReferralHandler,
		func(g *billing.StripeGateway) api.WebhookParser { return g },
		api.NewBillingHandler,
		api.NewPriceChangeHandler,
		api.NewAdminHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	referral *api.ReferralHandler,
	billingHandler *api.BillingHandler,
	priceChange *api.PriceChangeHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Referral:    referral,
		Billing:     billingHandler,
		PriceChange: priceChange,
		Admin:       admin,
		Metrics:     metrics.Handler(),
	}
}
