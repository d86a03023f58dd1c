// Package explain turns quiz answers into short model-written
// explanations. Generation runs asynchronously so the UI never blocks on
// the network.
package explain

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/llm"
	"github.com/ayumu/zukan/internal/quiz"
)

// Config controls generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns generation defaults tuned for two-sentence
// explanations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.3,
		Timeout:     20 * time.Second,
	}
}

// Input identifies the answered question to explain.
type Input struct {
	Term     catalog.Term
	Question catalog.Question
	Result   quiz.Result
}

// Explanation is a generated explanation for one answered question.
type Explanation struct {
	TermID   string
	Question string
	Text     string
}

// Service generates explanations asynchronously. At most one request is
// in flight; newer requests replace pending results.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	gen     int
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service. Provider may not be nil;
// callers without a configured provider should not construct a Service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async generation for an answered question. Any earlier
// result still sitting in the pending slot is discarded, and an earlier
// request still in flight will have its outcome dropped on arrival.
func (s *Service) Request(ctx context.Context, input Input) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending = nil
	s.err = nil
	s.ready = false
	s.mu.Unlock()

	go func() {
		if s.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
			defer cancel()
		}

		exp, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer request superseded this one.
			return
		}
		s.pending = exp
		s.err = err
		s.ready = true
	}()
}

// Outcome is the result of one generation request. Exactly one of
// Explanation and Err is set.
type Outcome struct {
	Explanation *Explanation
	Err         error
}

// Consume returns the pending outcome if one is ready. Returns false
// while generation is still in flight. After consumption the pending
// slot is cleared.
func (s *Service) Consume() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Outcome{}, false
	}
	out := Outcome{Explanation: s.pending, Err: s.err}
	s.pending = nil
	s.err = nil
	s.ready = false
	return out, true
}

const systemPrompt = `あなたはIT用語の図鑑アプリの解説者です。クイズに答えた学習者向けに、正解の理由を日本語で簡潔に説明してください。2〜3文、専門用語には短い補足を添えてください。前置きや挨拶は不要です。`

func (s *Service) generate(ctx context.Context, input Input) (*Explanation, error) {
	text, err := s.provider.Complete(ctx, llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(input),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &llm.ErrInvalidResponse{Err: fmt.Errorf("empty explanation")}
	}

	return &Explanation{
		TermID:   input.Term.ID,
		Question: input.Question.Question,
		Text:     text,
	}, nil
}

func buildUserMessage(input Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "用語: %s (%s / %s)\n", input.Term.Name, input.Term.Category, input.Term.Subcategory)
	fmt.Fprintf(&b, "問題: %s\n", input.Question.Question)
	fmt.Fprintf(&b, "選択肢: %s\n", strings.Join(input.Question.Options, " / "))
	fmt.Fprintf(&b, "正解: %s\n", input.Question.CorrectAnswer)
	fmt.Fprintf(&b, "学習者の回答: %s", input.Result.UserAnswer)
	if input.Result.IsCorrect {
		b.WriteString("（正解）\n")
		b.WriteString("なぜこれが正解なのかを説明してください。")
	} else {
		b.WriteString("（不正解）\n")
		b.WriteString("なぜ学習者の回答が誤りで、正解が正しいのかを説明してください。")
	}
	return b.String()
}
