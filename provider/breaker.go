package provider

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ZaguanLabs/hantl"
)

// BreakerProvider wraps an inference backend with a circuit breaker so a
// failing backend is given time to recover instead of being hammered by
// every request. An open circuit surfaces as a non-retryable
// InferenceError.
type BreakerProvider struct {
	inner InferenceProvider
	cb    *gobreaker.CircuitBreaker
}

// BreakerConfig configures the circuit breaker.
type BreakerConfig struct {
	Name        string        // Breaker name (default: "inference")
	MaxFailures uint32        // Consecutive failures before the circuit opens (default: 5)
	OpenTimeout time.Duration // How long the circuit stays open (default: 30s)
}

// NewBreakerProvider wraps inner with a circuit breaker.
func NewBreakerProvider(inner InferenceProvider, cfg BreakerConfig) *BreakerProvider {
	name := cfg.Name
	if name == "" {
		name = "inference"
	}

	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	openTimeout := cfg.OpenTimeout
	if openTimeout == 0 {
		openTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})

	return &BreakerProvider{inner: inner, cb: cb}
}

// Infer implements InferenceProvider through the breaker.
func (p *BreakerProvider) Infer(ctx context.Context, msgs []hantl.Message, cfg hantl.GenerationConfig) (string, error) {
	result, err := p.cb.Execute(func() (interface{}, error) {
		return p.inner.Infer(ctx, msgs, cfg)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &hantl.InferenceError{
				Message: "inference backend unavailable",
				Cause:   err,
			}
		}
		return "", err
	}

	text, _ := result.(string)
	return text, nil
}

// Verify BreakerProvider implements InferenceProvider
var _ InferenceProvider = (*BreakerProvider)(nil)
