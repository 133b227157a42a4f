package alert

import (
	"context"
	"log/slog"
	"time"

	"referral-pricing/internal/pkg/config"
	"referral-pricing/internal/pkg/errs"

	"github.com/getsentry/sentry-go"
)

const (
	flushTimeout  = 2 * time.Second
	maxStackLines = 12
)

// Alerter logs storage failures and, when a DSN is configured, reports them to Sentry.
type Alerter struct {
	logger  *slog.Logger
	enabled bool
}

// Init configures the Sentry SDK. An empty DSN disables reporting without error.
func Init(cfg config.AlertConfig, release string) (bool, error) {
	if cfg.SentryDSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		Release:          release,
		AttachStacktrace: true,
		Tags: map[string]string{
			"service": "referral-pricing",
		},
	})
	if err != nil {
		return false, errs.Wrap(err, "sentry init")
	}
	return true, nil
}

func NewAlerter(logger *slog.Logger, enabled bool) *Alerter {
	return &Alerter{logger: logger, enabled: enabled}
}

func (a *Alerter) StorageFailure(ctx context.Context, op string, err error, attrs map[string]string) {
	args := make([]any, 0, len(attrs)*2+6)
	args = append(args, "operation", op, "error", err, "stack", errs.ExtractStackLines(err, maxStackLines))
	for k, v := range attrs {
		args = append(args, k, v)
	}
	a.logger.ErrorContext(ctx, "price change storage failure", args...)

	if !a.enabled || err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("operation", op)
		for k, v := range attrs {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}

// Flush waits for buffered events; call on shutdown.
func (a *Alerter) Flush() {
	if a.enabled {
		sentry.Flush(flushTimeout)
	}
}
