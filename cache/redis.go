package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/hantl"
)

// RedisStore is a Redis-backed store for deployments where several
// front-ends share one translation cache. Translation entries are JSON
// values carrying their creation timestamp so Clear can age them the same
// way the SQLite store does.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string

	now func() time.Time
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "hantl:")
}

// redisEntry is the stored JSON shape of one translation.
type redisEntry struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRedisStore creates a Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "hantl:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (s *RedisStore) translationKey(source string, from, to hantl.Language) string {
	return s.keyPrefix + "tr:" + Key(source, from, to)
}

func (s *RedisStore) preferenceKey(key hantl.PreferenceKey) string {
	return s.keyPrefix + "pref:" + string(key)
}

// GetTranslation returns the cached translation or reports a miss. Faults
// are misses.
func (s *RedisStore) GetTranslation(ctx context.Context, source string, from, to hantl.Language) (string, bool) {
	raw, err := s.client.Get(ctx, s.translationKey(source, from, to)).Result()
	if err != nil {
		return "", false
	}

	var entry redisEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return "", false
	}
	return entry.Text, true
}

// PutTranslation upserts a translation entry with a fresh timestamp.
func (s *RedisStore) PutTranslation(ctx context.Context, source string, from, to hantl.Language, translated string) error {
	raw, err := json.Marshal(redisEntry{Text: translated, CreatedAt: s.now().UTC()})
	if err != nil {
		return &hantl.StorageError{Op: "put translation", Cause: err}
	}

	if err := s.client.Set(ctx, s.translationKey(source, from, to), string(raw), 0).Err(); err != nil {
		return &hantl.StorageError{Op: "put translation", Cause: err}
	}
	return nil
}

// GetPreference unmarshals the stored JSON value for key into out.
func (s *RedisStore) GetPreference(ctx context.Context, key hantl.PreferenceKey, out any) bool {
	raw, err := s.client.Get(ctx, s.preferenceKey(key)).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// PutPreference upserts a preference value.
func (s *RedisStore) PutPreference(ctx context.Context, key hantl.PreferenceKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &hantl.StorageError{Op: "put preference", Cause: err}
	}

	if err := s.client.Set(ctx, s.preferenceKey(key), string(raw), 0).Err(); err != nil {
		return &hantl.StorageError{Op: "put preference", Cause: err}
	}
	return nil
}

// Clear scans the translation key space and deletes entries, all of them or
// only those older than olderThan. Preference keys are untouched.
func (s *RedisStore) Clear(ctx context.Context, olderThan time.Duration) error {
	var cutoff time.Time
	if olderThan > 0 {
		cutoff = s.now().UTC().Add(-olderThan)
	}

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"tr:*", 100).Result()
		if err != nil {
			return &hantl.StorageError{Op: "clear translations", Cause: err}
		}

		for _, key := range keys {
			if olderThan > 0 {
				raw, err := s.client.Get(ctx, key).Result()
				if err != nil {
					continue
				}
				var entry redisEntry
				if err := json.Unmarshal([]byte(raw), &entry); err == nil && !entry.CreatedAt.Before(cutoff) {
					continue
				}
			}
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return &hantl.StorageError{Op: "clear translations", Cause: err}
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Verify RedisStore implements Store
var _ Store = (*RedisStore)(nil)
