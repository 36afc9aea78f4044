package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUpstream indicates any other provider failure: network, authentication,
// quota, or a server-side error. Never retried.
type ErrUpstream struct {
	Err error
}

func (e *ErrUpstream) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation provider error: %v", e.Err)
	}
	return "generation provider error"
}

func (e *ErrUpstream) Unwrap() error { return e.Err }
