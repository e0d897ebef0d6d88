package hantl

import "time"

// Default generation budgets. Full-text requests start generous and degrade
// once on timeout; word lookups start from a small fixed budget and never
// escalate.
const (
	defaultTextTokens   = 256
	defaultTextDeadline = 30 * time.Second

	wordTokens   = 32
	wordDeadline = 5 * time.Second

	wordContextTokens   = 48
	wordContextDeadline = 10 * time.Second
)

// DefaultTextConfig returns the initial configuration for a full-text
// translation attempt: sampling decode with a generous token budget.
func DefaultTextConfig() GenerationConfig {
	return GenerationConfig{
		MaxOutputTokens: defaultTextTokens,
		Deterministic:   false,
		Deadline:        defaultTextDeadline,
	}
}

// WordConfig returns the fixed budget for a bare word lookup: short
// deadline, small token budget, deterministic decoding.
func WordConfig() GenerationConfig {
	return GenerationConfig{
		MaxOutputTokens: wordTokens,
		Deterministic:   true,
		Deadline:        wordDeadline,
	}
}

// WordContextConfig returns the budget for a word-in-context explanation,
// slightly larger than the bare lookup but still non-escalating.
func WordContextConfig() GenerationConfig {
	return GenerationConfig{
		MaxOutputTokens: wordContextTokens,
		Deterministic:   true,
		Deadline:        wordContextDeadline,
	}
}

// Degrade returns the cheaper configuration used for the single retry after
// a timeout: half the token budget, deterministic decoding, half the
// deadline. It only ever shrinks budgets and flips Deterministic on, never
// the reverse.
func Degrade(cfg GenerationConfig) GenerationConfig {
	return GenerationConfig{
		MaxOutputTokens: cfg.MaxOutputTokens / 2,
		Deterministic:   true,
		Deadline:        cfg.Deadline / 2,
	}
}
