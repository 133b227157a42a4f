package metrics

import (
	"net/http"
	"strconv"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "referral_pricing"

// SchedulerMetrics implements commands.Metrics with Prometheus collectors.
type SchedulerMetrics struct {
	scheduled     prometheus.Counter
	conflicts     prometheus.Counter
	rejected      *prometheus.CounterVec
	applied       *prometheus.CounterVec
	failed        *prometheus.CounterVec
	cancelled     prometheus.Counter
	noops         *prometheus.CounterVec
	storageErrors *prometheus.CounterVec
	sweeps        *prometheus.CounterVec
	sweepDuration prometheus.Histogram
	outbox        *prometheus.CounterVec
}

func NewSchedulerMetrics(reg prometheus.Registerer) *SchedulerMetrics {
	f := promauto.With(reg)
	return &SchedulerMetrics{
		scheduled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_changes_scheduled_total",
			Help:      "Pending price changes created.",
		}),
		conflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_conflicts_total",
			Help:      "Referrals refused because a price change was already pending.",
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "referrals_rejected_total",
			Help:      "Referrals rejected during validation, by reason.",
		}, []string{"reason"}),
		applied: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_changes_applied_total",
			Help:      "Price changes applied, split by recovered.",
		}, []string{"recovered"}),
		failed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_change_failures_total",
			Help:      "Failed apply attempts by failure kind and terminality.",
		}, []string{"kind", "terminal"}),
		cancelled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_changes_cancelled_total",
			Help:      "Pending price changes cancelled.",
		}),
		noops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "concurrent_noops_total",
			Help:      "Transitions skipped because a concurrent invocation handled the entry.",
		}, []string{"operation"}),
		storageErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_errors_total",
			Help:      "Storage failures by operation.",
		}, []string{"operation"}),
		sweeps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retry_sweep_entries_total",
			Help:      "Entries processed by the retry sweep, by result.",
		}, []string{"result"}),
		sweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "retry_sweep_duration_seconds",
			Help:      "Retry sweep wall time.",
			Buckets:   prometheus.DefBuckets,
		}),
		outbox: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcome_relay_jobs_total",
			Help:      "Outcome jobs handled by the relay, by result.",
		}, []string{"result"}),
	}
}

func (m *SchedulerMetrics) ScheduleCreated()  { m.scheduled.Inc() }
func (m *SchedulerMetrics) ScheduleConflict() { m.conflicts.Inc() }
func (m *SchedulerMetrics) Cancelled()        { m.cancelled.Inc() }

func (m *SchedulerMetrics) ReferralRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *SchedulerMetrics) Applied(recovered bool) {
	m.applied.WithLabelValues(strconv.FormatBool(recovered)).Inc()
}

func (m *SchedulerMetrics) Failed(kind pricechange.FailureKind, terminal bool) {
	m.failed.WithLabelValues(string(kind), strconv.FormatBool(terminal)).Inc()
}

func (m *SchedulerMetrics) ConcurrentNoop(op string) {
	m.noops.WithLabelValues(op).Inc()
}

func (m *SchedulerMetrics) StorageError(op string) {
	m.storageErrors.WithLabelValues(op).Inc()
}

func (m *SchedulerMetrics) SweepCompleted(summary commands.SweepSummary, elapsed time.Duration) {
	m.sweeps.WithLabelValues("applied").Add(float64(summary.Applied))
	m.sweeps.WithLabelValues("retrying").Add(float64(summary.Retrying))
	m.sweeps.WithLabelValues("failed").Add(float64(summary.Failed))
	m.sweeps.WithLabelValues("noop").Add(float64(summary.Noop))
	m.sweeps.WithLabelValues("storage_error").Add(float64(summary.StorageErrors))
	m.sweepDuration.Observe(elapsed.Seconds())
}

func (m *SchedulerMetrics) OutcomeRelayed(sent bool) {
	if sent {
		m.outbox.WithLabelValues("sent").Inc()
		return
	}
	m.outbox.WithLabelValues("failed").Inc()
}

// Handler exposes the default gatherer for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

var _ commands.Metrics = (*SchedulerMetrics)(nil)
