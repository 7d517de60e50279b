package services

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy wraps a single-attempt call with bounded retries. MaxRetries
// counts additional attempts after the first, so MaxRetries 2 means three
// attempts total.
//
// Only upstream transport/HTTP failures are retried by default. A malformed
// model reply on an otherwise-successful call is treated as fatal unless
// RetryOnParseFailure is set.
type RetryPolicy struct {
	MaxRetries          int
	Backoff             func(attempt int) time.Duration
	RetryOnParseFailure bool
}

// ExponentialBackoff waits 2^attempt seconds before attempt+1.
func ExponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

func (p RetryPolicy) retryable(err error) bool {
	switch CategoryOf(err) {
	case ErrUpstream:
		return true
	case ErrMalformedModelOutput:
		return p.RetryOnParseFailure
	default:
		return false
	}
}

// Do runs fn, retrying retryable failures with backoff until the attempt
// budget runs out. The last error is propagated unchanged so its category
// survives for status mapping.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := p.Backoff
	if backoff == nil {
		backoff = ExponentialBackoff
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxRetries+1; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !p.retryable(lastErr) || attempt > p.MaxRetries {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		case <-time.After(backoff(attempt)):
		}
	}
	return lastErr
}
