package hantl

import (
	"context"
	"time"
)

// PreferenceKey names a persisted user preference. Known keys form a closed
// set so callers get typed access instead of an open string-to-JSON map.
type PreferenceKey string

const (
	// PrefSourceLang is the default source language.
	PrefSourceLang PreferenceKey = "source_lang"
	// PrefTargetLang is the default target language.
	PrefTargetLang PreferenceKey = "target_lang"
)

// Store is the interface for persistent translation and preference storage.
// Translations are keyed by (source text, source language, target language)
// with upsert semantics. Reads fail open: a storage fault reports a miss so
// a broken cache forces recomputation instead of blocking translation.
// Writes fail loud with a StorageError.
type Store interface {
	// GetTranslation returns the cached translation for the exact key, or
	// false on miss. It never returns an error; faults are misses.
	GetTranslation(ctx context.Context, source string, from, to Language) (string, bool)

	// PutTranslation upserts a translation. The write is durable before
	// PutTranslation returns.
	PutTranslation(ctx context.Context, source string, from, to Language, translated string) error

	// GetPreference unmarshals the stored JSON value for key into out and
	// reports whether a value was found. On miss or fault, out is left
	// untouched so the caller keeps its default.
	GetPreference(ctx context.Context, key PreferenceKey, out any) bool

	// PutPreference upserts a JSON-serializable preference value.
	PutPreference(ctx context.Context, key PreferenceKey, value any) error

	// Clear deletes translation entries. A zero olderThan deletes all of
	// them; otherwise only entries whose age, measured from the persisted
	// creation timestamp at call time, exceeds olderThan are deleted.
	// Preferences are never cleared.
	Clear(ctx context.Context, olderThan time.Duration) error
}
