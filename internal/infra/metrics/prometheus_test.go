//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra/metrics"
	"referral-pricing/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSchedulerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewSchedulerMetrics(reg)

	m.ScheduleCreated()
	m.ScheduleCreated()
	m.ScheduleConflict()
	m.ReferralRejected("self_referral")
	m.Applied(false)
	m.Applied(true)
	m.Failed(pricechange.FailureDrift, true)
	m.Failed(pricechange.FailureTimeout, false)
	m.Failed(pricechange.FailureTimeout, false)
	m.Cancelled()
	m.ConcurrentNoop("claim")
	m.StorageError("mark_applied")
	m.SweepCompleted(commands.SweepSummary{Candidates: 3, Applied: 2, Retrying: 1}, 150*time.Millisecond)
	m.OutcomeRelayed(true)

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Positive(t, count)

	assert.Equal(t, 2, int(gatherValue(t, reg, "referral_pricing_price_changes_scheduled_total", nil)))
	assert.Equal(t, 2, int(gatherValue(t, reg, "referral_pricing_price_change_failures_total", map[string]string{"kind": "timeout", "terminal": "false"})))
	assert.Equal(t, 1, int(gatherValue(t, reg, "referral_pricing_price_change_failures_total", map[string]string{"kind": "price_drift", "terminal": "true"})))
	assert.Equal(t, 1, int(gatherValue(t, reg, "referral_pricing_price_changes_applied_total", map[string]string{"recovered": "true"})))
	assert.Equal(t, 2, int(gatherValue(t, reg, "referral_pricing_retry_sweep_entries_total", map[string]string{"result": "applied"})))
}

func gatherValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
	metricLoop:
		for _, metric := range fam.GetMetric() {
			got := map[string]string{}
			for _, lp := range metric.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metricLoop
				}
			}
			if c := metric.GetCounter(); c != nil {
				return c.GetValue()
			}
		}
	}
	return 0
}
