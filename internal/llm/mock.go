package llm

import (
	"context"
	"sync"
)

type stubResult struct {
	text string
	err  error
}

// MockProvider returns scripted completions in FIFO order and records
// every prompt it sees. An exhausted script yields
// ErrProviderUnavailable.
type MockProvider struct {
	mu      sync.Mutex
	script  []stubResult
	Prompts []Prompt
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Reply queues a successful completion.
func (m *MockProvider) Reply(text string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, stubResult{text: text})
	return m
}

// Fail queues an error.
func (m *MockProvider) Fail(err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, stubResult{err: err})
	return m
}

func (m *MockProvider) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.script) == 0 {
		return "", &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]
	return next.text, next.err
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Complete calls made so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
