//go:build unit

package worker_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"referral-pricing/internal/infra/outbox"
	"referral-pricing/internal/infra/worker"
	"referral-pricing/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct{ runs atomic.Int32 }

func (s *countingSweeper) RunRetrySweep(ctx context.Context) (commands.SweepSummary, error) {
	s.runs.Add(1)
	return commands.SweepSummary{}, nil
}

type countingRelay struct{ runs atomic.Int32 }

func (r *countingRelay) RunOnce(ctx context.Context) (outbox.RelayResult, error) {
	r.runs.Add(1)
	return outbox.RelayResult{}, nil
}

func TestWorker_RunsJobs(t *testing.T) {
	sweeper := &countingSweeper{}
	relay := &countingRelay{}
	w, err := worker.NewWorker(sweeper, relay, worker.Options{
		SweepSchedule: "@every 1s",
		RelaySchedule: "@every 1s",
		JobTimeout:    time.Second,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	w.Start()
	require.Eventually(t, func() bool {
		return sweeper.runs.Load() > 0 && relay.runs.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, w.Stop(ctx))
	assert.NoError(t, w.Stop(ctx))
}

func TestWorker_InvalidSchedule(t *testing.T) {
	_, err := worker.NewWorker(&countingSweeper{}, nil, worker.Options{SweepSchedule: "not a schedule"}, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestWorker_RelayOptional(t *testing.T) {
	_, err := worker.NewWorker(&countingSweeper{}, nil, worker.Options{
		SweepSchedule: "@every 5m",
		RelaySchedule: "not checked when relay is nil",
	}, slog.New(slog.DiscardHandler))
	assert.NoError(t, err)
}
