package pricechange

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how often and how soon a failed entry is re-attempted.
type RetryPolicy struct {
	MaxAttempts int
	Initial     time.Duration
	Multiplier  float64
	Max         time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Initial:     15 * time.Minute,
		Multiplier:  4,
		Max:         24 * time.Hour,
	}
}

// Delay is the wait after the retryCount-th failure. Jitter is disabled so the
// window is reproducible from updated_at alone.
func (p RetryPolicy) Delay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.Initial
	b.Multiplier = p.Multiplier
	b.MaxInterval = p.Max
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	var d time.Duration
	for range retryCount {
		d = b.NextBackOff()
	}
	return d
}

func (p RetryPolicy) IsDue(retryCount int, updatedAt, now time.Time) bool {
	return !now.Before(updatedAt.Add(p.Delay(retryCount)))
}

func (p RetryPolicy) Exhausted(retryCount int) bool {
	return retryCount >= p.MaxAttempts
}
