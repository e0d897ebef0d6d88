package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ZaguanLabs/hantl"
)

type memoryEntry struct {
	text    string
	created time.Time
}

// MemoryStore is a thread-safe in-process store. It satisfies the full
// Store contract but nothing survives a restart; use it for tests or when
// the user disables the persistent cache.
type MemoryStore struct {
	mu           sync.RWMutex
	translations map[string]memoryEntry
	preferences  map[hantl.PreferenceKey]json.RawMessage

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		translations: make(map[string]memoryEntry),
		preferences:  make(map[hantl.PreferenceKey]json.RawMessage),
		now:          time.Now,
	}
}

// GetTranslation returns the cached translation for the exact key.
func (s *MemoryStore) GetTranslation(_ context.Context, source string, from, to hantl.Language) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.translations[Key(source, from, to)]
	if !ok {
		return "", false
	}
	return entry.text, true
}

// PutTranslation upserts a translation, replacing any prior entry for the
// same key along with its creation timestamp.
func (s *MemoryStore) PutTranslation(_ context.Context, source string, from, to hantl.Language, translated string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.translations[Key(source, from, to)] = memoryEntry{
		text:    translated,
		created: s.now(),
	}
	return nil
}

// GetPreference unmarshals the stored value for key into out.
func (s *MemoryStore) GetPreference(_ context.Context, key hantl.PreferenceKey, out any) bool {
	s.mu.RLock()
	raw, ok := s.preferences[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

// PutPreference upserts a preference value.
func (s *MemoryStore) PutPreference(_ context.Context, key hantl.PreferenceKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &hantl.StorageError{Op: "put preference", Cause: err}
	}

	s.mu.Lock()
	s.preferences[key] = raw
	s.mu.Unlock()
	return nil
}

// Clear deletes translation entries, all of them or only those older than
// olderThan. Preferences are untouched.
func (s *MemoryStore) Clear(_ context.Context, olderThan time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if olderThan <= 0 {
		s.translations = make(map[string]memoryEntry)
		return nil
	}

	cutoff := s.now().Add(-olderThan)
	for key, entry := range s.translations {
		if entry.created.Before(cutoff) {
			delete(s.translations, key)
		}
	}
	return nil
}

// Len returns the number of cached translations.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.translations)
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
