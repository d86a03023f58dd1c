package explain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/llm"
	"github.com/ayumu/zukan/internal/quiz"
)

func testInput(correct bool) Input {
	answer := "転送"
	if !correct {
		answer = "暗号化"
	}
	return Input{
		Term: catalog.Term{
			ID:          "http",
			Name:        "HTTP",
			Category:    "ネットワーク",
			Subcategory: "プロトコル",
		},
		Question: catalog.Question{
			Question:      "HTTPの主な役割は？",
			Options:       []string{"転送", "暗号化", "圧縮"},
			CorrectAnswer: "転送",
		},
		Result: quiz.Result{
			UserAnswer:    answer,
			CorrectAnswer: "転送",
			IsCorrect:     correct,
		},
	}
}

func dnsInput() Input {
	return Input{
		Term: catalog.Term{
			ID:          "dns",
			Name:        "DNS",
			Category:    "ネットワーク",
			Subcategory: "プロトコル",
		},
		Question: catalog.Question{
			Question:      "DNSの主な役割は？",
			Options:       []string{"名前解決", "暗号化", "転送"},
			CorrectAnswer: "名前解決",
		},
		Result: quiz.Result{
			UserAnswer:    "名前解決",
			CorrectAnswer: "名前解決",
			IsCorrect:     true,
		},
	}
}

// gateProvider blocks each completion until the test sends on release,
// so tests can control when each request finishes.
type gateProvider struct {
	release chan struct{}
}

func newGateProvider() *gateProvider {
	return &gateProvider{release: make(chan struct{})}
}

func (p *gateProvider) Complete(ctx context.Context, prompt llm.Prompt) (string, error) {
	select {
	case <-p.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if strings.Contains(prompt.User, "HTTP") {
		return "HTTPの説明", nil
	}
	return "DNSの説明", nil
}

func (p *gateProvider) ModelID() string { return "gate" }

func waitForOutcome(t *testing.T, s *Service) Outcome {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := s.Consume(); ok {
			return out
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for explanation")
	return Outcome{}
}

func TestRequestDeliversExplanation(t *testing.T) {
	mock := llm.NewMockProvider().Reply("HTTPはデータ転送のためのプロトコルです。")
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput(true))
	out := waitForOutcome(t, s)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Explanation.TermID != "http" {
		t.Fatalf("unexpected term id: %q", out.Explanation.TermID)
	}
	if out.Explanation.Text != "HTTPはデータ転送のためのプロトコルです。" {
		t.Fatalf("unexpected text: %q", out.Explanation.Text)
	}
}

func TestConsumeClearsPendingSlot(t *testing.T) {
	mock := llm.NewMockProvider().Reply("説明")
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput(true))
	waitForOutcome(t, s)

	if _, ok := s.Consume(); ok {
		t.Fatal("expected pending slot to be cleared after consume")
	}
}

func waitUntilReady(t *testing.T, s *Service) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		ready := s.ready
		s.mu.Unlock()
		if ready {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for result to land")
}

func TestRequestDiscardsUnconsumedResult(t *testing.T) {
	p := newGateProvider()
	s := NewService(p, DefaultConfig())

	s.Request(context.Background(), testInput(true))
	p.release <- struct{}{}
	waitUntilReady(t, s)

	// The first explanation was never consumed. Asking about the next
	// question must not hand it out.
	s.Request(context.Background(), dnsInput())
	if out, ok := s.Consume(); ok {
		t.Fatalf("stale explanation delivered: %+v", out)
	}

	p.release <- struct{}{}
	out := waitForOutcome(t, s)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Explanation.TermID != "dns" {
		t.Fatalf("expected explanation for dns, got %q", out.Explanation.TermID)
	}
	if out.Explanation.Text != "DNSの説明" {
		t.Fatalf("unexpected text: %q", out.Explanation.Text)
	}
}

func TestSupersededRequestOutcomeDropped(t *testing.T) {
	p := newGateProvider()
	s := NewService(p, DefaultConfig())

	s.Request(context.Background(), testInput(true))
	s.Request(context.Background(), dnsInput())

	p.release <- struct{}{}
	p.release <- struct{}{}

	out := waitForOutcome(t, s)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Explanation.TermID != "dns" {
		t.Fatalf("expected the newest request to win, got %q", out.Explanation.TermID)
	}

	// The older request must never surface, even after it finishes.
	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		if out, ok := s.Consume(); ok {
			t.Fatalf("superseded outcome delivered: %+v", out)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider() // empty script returns ErrProviderUnavailable
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput(true))
	out := waitForOutcome(t, s)

	if out.Err == nil {
		t.Fatal("expected error from provider")
	}
	if out.Explanation != nil {
		t.Fatal("expected nil explanation on error")
	}
}

func TestEmptyCompletionIsError(t *testing.T) {
	mock := llm.NewMockProvider().Reply("   \n")
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput(true))
	out := waitForOutcome(t, s)

	if out.Err == nil {
		t.Fatal("expected error for blank completion")
	}
}

func TestPromptMentionsWrongAnswer(t *testing.T) {
	mock := llm.NewMockProvider().Reply("説明")
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput(false))
	waitForOutcome(t, s)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Prompts[0].User
	if !strings.Contains(msg, "不正解") {
		t.Fatalf("prompt should flag the wrong answer, got: %q", msg)
	}
	if !strings.Contains(msg, "暗号化") {
		t.Fatalf("prompt should include the learner's answer, got: %q", msg)
	}
}
