package bootstrap

import (
	"context"
	"log/slog"

	"referral-pricing/internal/infra/alert"
	"referral-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

// Version is overridden at build time with -ldflags "-X referral-pricing/cmd/bootstrap.Version=...".
var Version = "dev"

var AlertModule = fx.Module("alert",
	fx.Provide(
		NewAlerter,
	),
)

func NewAlerter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*alert.Alerter, error) {
	enabled, err := alert.Init(cfg.Alert, Version)
	if err != nil {
		return nil, err
	}
	if !enabled {
		logger.Info("sentry disabled, storage alerts go to the error log only")
	}

	a := alert.NewAlerter(logger, enabled)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			a.Flush()
			return nil
		},
	})
	return a, nil
}
