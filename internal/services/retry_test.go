package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noBackoff(int) time.Duration { return 0 }

func upstreamErr() error {
	return NewPipelineError(ErrUpstream, "AI service unavailable or returned invalid data.", errors.New("http 500"))
}

func parseErr() error {
	return NewPipelineError(ErrMalformedModelOutput, "AI service unavailable or returned invalid data.", errors.New("bad json"))
}

func TestExponentialBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, ExponentialBackoff(1))
	assert.Equal(t, 4*time.Second, ExponentialBackoff(2))
	assert.Equal(t, 8*time.Second, ExponentialBackoff(3))
}

func TestRetryPolicyDo(t *testing.T) {
	t.Run("succeeds on third attempt within budget", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 2, Backoff: noBackoff}

		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return upstreamErr()
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("propagates last error when all attempts fail", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 2, Backoff: noBackoff}

		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return upstreamErr()
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, ErrUpstream, CategoryOf(err))
	})

	t.Run("parse failures are not retried by default", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 2, Backoff: noBackoff}

		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return parseErr()
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, ErrMalformedModelOutput, CategoryOf(err))
	})

	t.Run("parse failures retried when opted in", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 2, Backoff: noBackoff, RetryOnParseFailure: true}

		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 2 {
				return parseErr()
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("non-retryable categories fail fast", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 5, Backoff: noBackoff}

		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return NewPipelineError(ErrTooShort, "too short", nil)
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero retries means a single attempt", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 0, Backoff: noBackoff}

		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return upstreamErr()
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops the retry loop", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 3, Backoff: func(int) time.Duration { return time.Hour }}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Do(ctx, func(context.Context) error {
			return upstreamErr()
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
