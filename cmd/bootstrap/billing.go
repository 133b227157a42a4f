package bootstrap

import (
	"log/slog"

	"referral-pricing/internal/infra/billing"
	"referral-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		NewStripeGateway,
	),
)

func NewStripeGateway(cfg config.Config, logger *slog.Logger) *billing.StripeGateway {
	return billing.NewStripeGateway(cfg.Stripe, logger.With("component", "stripe"))
}
