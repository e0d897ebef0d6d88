package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ZaguanLabs/hantl"
)

// MockProvider is a mock inference backend for testing. Delay simulates a
// slow, non-preemptible model call: it does not observe context
// cancellation, matching the executor's abandonment contract.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	Delay        time.Duration     // Sleep before answering
	Err          error             // Returned instead of a translation when set

	mu         sync.Mutex
	callCount  int
	lastMsgs   []hantl.Message
	lastConfig hantl.GenerationConfig
}

// NewMockProvider creates a mock with default Korean-English translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"안녕하세요":     "Hello",
			"감사합니다":     "Thank you",
			"Hello":     "안녕하세요",
			"Thank you": "감사합니다",
			"좋은 아침입니다": "Good morning",
		},
	}
}

// Infer returns canned translations, bracketing unknown input.
func (m *MockProvider) Infer(ctx context.Context, msgs []hantl.Message, cfg hantl.GenerationConfig) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastMsgs = msgs
	m.lastConfig = cfg
	delay := m.Delay
	err := m.Err
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return "", err
	}

	user := lastUserContent(msgs)
	if translation, ok := m.Translations[user]; ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s]", user), nil
}

// Calls returns how many times Infer was invoked.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastConfig returns the config of the most recent call.
func (m *MockProvider) LastConfig() hantl.GenerationConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastConfig
}

// LastMessages returns the messages of the most recent call.
func (m *MockProvider) LastMessages() []hantl.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMsgs
}

// Reset clears the recorded calls.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastMsgs = nil
	m.lastConfig = hantl.GenerationConfig{}
}

func lastUserContent(msgs []hantl.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == hantl.RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}

// Verify MockProvider implements InferenceProvider
var _ InferenceProvider = (*MockProvider)(nil)
