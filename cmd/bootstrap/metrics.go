package bootstrap

import (
	"referral-pricing/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewSchedulerMetrics,
	),
)

func NewSchedulerMetrics() *metrics.SchedulerMetrics {
	return metrics.NewSchedulerMetrics(prometheus.DefaultRegisterer)
}
