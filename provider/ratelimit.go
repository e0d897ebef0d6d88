package provider

import (
	"context"
	"sync"
	"time"

	"github.com/ZaguanLabs/hantl"
)

// RateLimitedProvider throttles inference calls with a token bucket so a
// shared or self-hosted backend is not flooded by rapid resubmissions.
type RateLimitedProvider struct {
	inner InferenceProvider

	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// RateLimitConfig configures the rate limiter.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute (default: 60)
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// NewRateLimitedProvider wraps inner with a token bucket rate limiter.
func NewRateLimitedProvider(inner InferenceProvider, cfg RateLimitConfig) *RateLimitedProvider {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimitedProvider{
		inner:      inner,
		tokens:     burst, // Start with full bucket
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Infer waits for a token, then delegates to the wrapped provider. The wait
// observes ctx so an abandoned caller does not hold a queue slot.
func (p *RateLimitedProvider) Infer(ctx context.Context, msgs []hantl.Message, cfg hantl.GenerationConfig) (string, error) {
	if err := p.wait(ctx); err != nil {
		return "", err
	}
	return p.inner.Infer(ctx, msgs, cfg)
}

func (p *RateLimitedProvider) wait(ctx context.Context) error {
	for {
		if p.tryAcquire() {
			return nil
		}

		p.mu.Lock()
		interval := time.Duration(float64(time.Second) / p.refillRate)
		p.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (p *RateLimitedProvider) tryAcquire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(p.lastRefill).Seconds()
	p.tokens += elapsed * p.refillRate
	if p.tokens > p.maxTokens {
		p.tokens = p.maxTokens
	}
	p.lastRefill = now

	if p.tokens >= 1 {
		p.tokens--
		return true
	}
	return false
}

// Verify RateLimitedProvider implements InferenceProvider
var _ InferenceProvider = (*RateLimitedProvider)(nil)
