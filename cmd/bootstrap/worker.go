package bootstrap

import (
	"context"
	"log/slog"

	"referral-pricing/internal/infra/metrics"
	"referral-pricing/internal/infra/outbox"
	"referral-pricing/internal/infra/worker"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/config"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxRelay,
		NewWorker,
	),
	fx.Invoke(func(*worker.Worker) {}),
)

// NewOutboxRelay returns a nil relay when NATS is not configured; outcomes then stay in the outbox table.
func NewOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, m *metrics.SchedulerMetrics, logger *slog.Logger) (worker.OutboxRelay, error) {
	if cfg.Outbox.NATSURL == "" {
		logger.Info("NATS_URL not set, outcome relay disabled")
		return nil, nil
	}
	pub, err := outbox.ConnectNATS(cfg.Outbox.NATSURL, logger.With("component", "nats"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return outbox.NewRelay(uow, pub, clk, m, outbox.RelayOptions{
		SubjectPrefix: cfg.Outbox.SubjectPrefix,
		BatchSize:     cfg.Outbox.BatchSize,
	}, logger.With("component", "outbox")), nil
}

func NewWorker(lc fx.Lifecycle, cfg config.Config, scheduler commands.PriceChangeScheduler, relay worker.OutboxRelay, logger *slog.Logger) (*worker.Worker, error) {
	w, err := worker.NewWorker(scheduler, relay, worker.Options{
		SweepSchedule: cfg.Scheduler.RetrySweepSchedule,
		RelaySchedule: cfg.Outbox.RelaySchedule,
		JobTimeout:    cfg.Scheduler.BillingTimeout * 30,
	}, logger.With("component", "worker"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: w.Stop,
	})
	return w, nil
}
