package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider is a decorator that retries rate-limited requests with a
// linearly increasing wait. All other errors surface immediately: a failed
// generation must propagate so the caller never caches a fabricated result.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry reports whether an error is worth another attempt.
// Only rate limits qualify; upstream and context errors never do.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rl *ErrRateLimit
	return errors.As(err, &rl)
}

// backoff computes the wait duration for the given attempt.
// The wait grows linearly: InitialWait, 2*InitialWait, 3*InitialWait, ...
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// Respect the provider's Retry-After when it gave one.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := r.config.InitialWait * time.Duration(attempt+1)
	if r.config.MaxWait > 0 && wait > r.config.MaxWait {
		wait = r.config.MaxWait
	}
	return wait
}
