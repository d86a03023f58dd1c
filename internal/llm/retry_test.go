package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	mock := NewMockProvider().Reply("ok")
	p := WithRetry(mock, retryConfig())

	text, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Fatalf("unexpected text: %s", text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	mock := NewMockProvider().
		Fail(&ErrProviderUnavailable{Err: errors.New("down")}).
		Reply("ok")
	p := WithRetry(mock, retryConfig())

	text, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Fatalf("unexpected text: %s", text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	mock := NewMockProvider().Fail(down).Fail(down).Fail(down)
	p := WithRetry(mock, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{User: "hi"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetrySkipsInvalidResponse(t *testing.T) {
	mock := NewMockProvider().
		Fail(&ErrInvalidResponse{Err: errors.New("empty completion")}).
		Reply("would succeed")
	p := WithRetry(mock, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{User: "hi"})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetrySkipsContextCanceled(t *testing.T) {
	mock := NewMockProvider().Fail(context.Canceled)
	p := WithRetry(mock, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider().
		Fail(&ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}).
		Reply("ok")
	p := WithRetry(mock, retryConfig())

	start := time.Now()
	text, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Fatalf("unexpected text: %s", text)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Fatalf("expected to wait at least RetryAfter, waited %v", elapsed)
	}
}
