package hantl

import (
	"fmt"
	"time"
)

// Language is a supported translation language.
type Language string

const (
	// Korean is the Korean language code.
	Korean Language = "ko"
	// English is the English language code.
	English Language = "en"
)

// Valid reports whether the language is one of the supported codes.
func (l Language) Valid() bool {
	return l == Korean || l == English
}

// Name returns the English name of the language.
func (l Language) Name() string {
	switch l {
	case Korean:
		return "Korean"
	case English:
		return "English"
	}
	return string(l)
}

// RequestKind distinguishes full-text translation from single-word lookup.
type RequestKind string

const (
	// KindFullText translates a block of free text.
	KindFullText RequestKind = "full_text"
	// KindWord translates a single word, optionally explained in context.
	KindWord RequestKind = "word"
)

// Role identifies the author of a prompt message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one turn of a role-tagged prompt.
type Message struct {
	Role    Role
	Content string
}

// GenerationConfig bounds a single inference attempt.
type GenerationConfig struct {
	MaxOutputTokens int           // Upper bound on generated tokens
	Deterministic   bool          // Greedy decoding instead of sampling
	Deadline        time.Duration // Wall-clock bound enforced by the Executor
}

// TranslationRequest is a single user-initiated translation. It is consumed
// by the Orchestrator and never persisted.
type TranslationRequest struct {
	Text    string      // Raw text or word to translate
	Source  Language    // Source language
	Target  Language    // Target language
	Kind    RequestKind // Full text or word lookup
	Context string      // Surrounding sentence for word lookups (caller-supplied)
}

// Validate checks the request shape. Empty text is not a validation error;
// Submit ignores it silently.
func (r TranslationRequest) Validate() error {
	if !r.Source.Valid() || !r.Target.Valid() {
		return &ValidationError{Message: fmt.Sprintf("unsupported language pair %s -> %s", r.Source, r.Target)}
	}
	if r.Source == r.Target {
		return &ValidationError{Message: "source and target language must differ"}
	}
	return nil
}

// Result is the successful outcome of a request.
type Result struct {
	ID         string             // ULID assigned at submission
	Kind       RequestKind        // Kind of the originating request
	Request    TranslationRequest // The request this result answers
	Text       string             // Translated text
	Contextual string             // Word-in-context explanation (word requests only)
	FromCache  bool               // True when served from the cache store
	Attempts   int                // Inference attempts made (0 on cache hit)
}
