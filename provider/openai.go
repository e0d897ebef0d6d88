package provider

import (
	"context"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/hantl"
)

// OpenAIProvider implements InferenceProvider against any OpenAI-compatible
// chat completion endpoint, including a locally hosted model server via
// BaseURL.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Sampling temperature (default: 0.7)
	BaseURL     string  // Custom base URL for local/compatible servers
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Infer runs one chat completion. The deadline in cfg is enforced by the
// Executor, not here; Infer only maps the token budget and decoding mode.
func (p *OpenAIProvider) Infer(ctx context.Context, msgs []hantl.Message, cfg hantl.GenerationConfig) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, p.buildRequest(msgs, cfg))
	if err != nil {
		return "", &hantl.InferenceError{
			Message:   "chat completion failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &hantl.InferenceError{
			Message:   "empty response from backend",
			Retryable: true,
		}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) buildRequest(msgs []hantl.Message, cfg hantl.GenerationConfig) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    toChatMessages(msgs),
		MaxTokens:   cfg.MaxOutputTokens,
		Temperature: p.temperature,
	}

	if cfg.Deterministic {
		// go-openai omits a zero temperature from the request body, so use
		// the smallest value that still marshals.
		req.Temperature = math.SmallestNonzeroFloat32
	}

	return req
}

func toChatMessages(msgs []hantl.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		role := openai.ChatMessageRoleUser
		if m.Role == hantl.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out[i] = openai.ChatCompletionMessage{Role: role, Content: m.Content}
	}
	return out
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements InferenceProvider
var _ InferenceProvider = (*OpenAIProvider)(nil)
