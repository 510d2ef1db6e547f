package llm

import (
	"context"
	"errors"
	"sync"

	"craftify/internal/domain"
)

// MockResponse is a canned reply for MockGenerator.
type MockResponse struct {
	Text string
	Err  error
}

// MockGenerator returns canned responses in FIFO order and records every
// prompt it receives.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []domain.Prompt
}

func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

// Complete fails with UPSTREAM_UNAVAILABLE once the queue is empty.
func (m *MockGenerator) Complete(_ context.Context, p domain.Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, p)

	if len(m.responses) == 0 {
		return "", domain.NewUpstreamError("mock", errors.New("no canned responses left"))
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

func (m *MockGenerator) ModelID() string {
	return "mock"
}

func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
