package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
	}
}

func TestRetrySucceedsAfterRateLimit(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Text: "ok"},
	)
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("unexpected response %q", resp.Text)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	rl := &ErrRateLimit{Err: errors.New("429")}
	mock := NewMockProvider(
		MockResponse{Err: rl},
		MockResponse{Err: rl},
		MockResponse{Err: rl},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Complete(context.Background(), Request{})
	var got *ErrRateLimit
	if !errors.As(err, &got) {
		t.Fatalf("expected ErrRateLimit after exhaustion, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetryDoesNotRetryUpstreamErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUpstream{Err: errors.New("500")}},
		MockResponse{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Complete(context.Background(), Request{})
	var upstream *ErrUpstream
	if !errors.As(err, &upstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("upstream error was retried, calls=%d", mock.CallCount())
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Minute, Err: errors.New("429")}},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Complete(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", mock.CallCount())
	}
}

func TestBackoffGrowsLinearlyAndCaps(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		InitialWait: 10 * time.Second,
		MaxWait:     25 * time.Second,
	}}
	plain := errors.New("any")

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 10 * time.Second},
		{1, 20 * time.Second},
		{2, 25 * time.Second}, // capped
	}
	for _, tc := range cases {
		if got := r.backoff(tc.attempt, plain); got != tc.want {
			t.Errorf("backoff(%d) = %v, want %v", tc.attempt, got, tc.want)
		}
	}
}

func TestBackoffPrefersRetryAfter(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 10 * time.Second}}
	err := &ErrRateLimit{RetryAfter: 3 * time.Second}
	if got := r.backoff(0, err); got != 3*time.Second {
		t.Errorf("backoff = %v, want Retry-After of 3s", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected missing API key to fail validation")
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected unknown provider to fail validation")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}
}
