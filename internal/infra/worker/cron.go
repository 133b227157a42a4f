package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"referral-pricing/internal/infra/outbox"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

type Sweeper interface {
	RunRetrySweep(ctx context.Context) (commands.SweepSummary, error)
}

type OutboxRelay interface {
	RunOnce(ctx context.Context) (outbox.RelayResult, error)
}

type Options struct {
	SweepSchedule string
	RelaySchedule string
	// JobTimeout bounds a single run of either job.
	JobTimeout time.Duration
}

// Worker drives the retry sweep and the outcome relay from cron entries.
// Overlapping runs of the same job are skipped rather than queued.
type Worker struct {
	cron    *cron.Cron
	sweeper Sweeper
	relay   OutboxRelay
	opts    Options
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewWorker registers the jobs; relay may be nil when no publisher is configured.
func NewWorker(sweeper Sweeper, relay OutboxRelay, opts Options, logger *slog.Logger) (*Worker, error) {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		cron:    cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)), cron.WithLogger(cl)),
		sweeper: sweeper,
		relay:   relay,
		opts:    opts,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}

	if _, err := w.cron.AddFunc(opts.SweepSchedule, w.runSweep); err != nil {
		cancel()
		return nil, errs.Wrapf(err, "invalid retry sweep schedule %q", opts.SweepSchedule)
	}
	if relay != nil {
		if _, err := w.cron.AddFunc(opts.RelaySchedule, w.runRelay); err != nil {
			cancel()
			return nil, errs.Wrapf(err, "invalid outbox relay schedule %q", opts.RelaySchedule)
		}
	}
	return w, nil
}

func (w *Worker) Start() {
	w.cron.Start()
	w.logger.Info("worker started",
		"sweep_schedule", w.opts.SweepSchedule,
		"relay_enabled", w.relay != nil)
}

// Stop cancels in-flight jobs and waits for them to return or ctx to expire.
func (w *Worker) Stop(ctx context.Context) error {
	var err error
	w.once.Do(func() {
		w.cancel()
		done := w.cron.Stop()
		select {
		case <-done.Done():
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

func (w *Worker) jobContext() (context.Context, context.CancelFunc) {
	if w.opts.JobTimeout <= 0 {
		return context.WithCancel(w.ctx)
	}
	return context.WithTimeout(w.ctx, w.opts.JobTimeout)
}

func (w *Worker) runSweep() {
	ctx, cancel := w.jobContext()
	defer cancel()
	if _, err := w.sweeper.RunRetrySweep(ctx); err != nil {
		if errs.Is(err, errs.ErrRetrySweepAlreadyBusy) {
			w.logger.Info("retry sweep skipped, previous run still active")
			return
		}
		w.logger.Error("retry sweep failed", "error", err)
	}
}

func (w *Worker) runRelay() {
	ctx, cancel := w.jobContext()
	defer cancel()
	if _, err := w.relay.RunOnce(ctx); err != nil {
		w.logger.Error("outcome relay failed", "error", err)
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
