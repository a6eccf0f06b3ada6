package agent

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryConfig controls how often a failed model call is repeated. The wait
// before retry n is BaseDelay doubled n times, plus up to Jitter of extra
// random delay.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	Jitter     time.Duration
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries: 2,
	BaseDelay:  time.Second,
	Jitter:     200 * time.Millisecond,
}

// WithRetry calls fn until it succeeds, returns a non-retryable *Error, or
// runs out of attempts. A cancelled ctx ends the wait between attempts.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		var modelErr *Error
		if errors.As(err, &modelErr) && !modelErr.Retryable {
			return zero, err
		}
		if attempt >= cfg.MaxRetries {
			return zero, err
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.backoff(attempt)):
		}
	}
}

func (c RetryConfig) backoff(attempt int) time.Duration {
	d := c.BaseDelay << attempt
	if c.Jitter > 0 {
		d += time.Duration(rand.Int63n(int64(c.Jitter)))
	}
	return d
}
