package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ZaguanLabs/hantl"
)

// SQLiteStore is the durable store: two tables, translations keyed by
// (source_text, source_lang, target_lang) and preferences keyed by name,
// each row carrying its creation timestamp. Every write commits before the
// call returns.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translations (
		source_text     TEXT NOT NULL,
		source_lang     TEXT NOT NULL,
		target_lang     TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		PRIMARY KEY (source_text, source_lang, target_lang)
	);

	CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// GetTranslation looks up the exact composite key. Any storage fault is a
// miss: a broken cache never blocks translation, it only forces
// recomputation.
func (s *SQLiteStore) GetTranslation(ctx context.Context, source string, from, to hantl.Language) (string, bool) {
	var translated string
	err := s.db.QueryRowContext(ctx,
		`SELECT translated_text FROM translations
		 WHERE source_text = ? AND source_lang = ? AND target_lang = ?`,
		source, string(from), string(to)).Scan(&translated)
	if err != nil {
		return "", false
	}
	return translated, true
}

// PutTranslation upserts a translation; the replaced row gets a fresh
// creation timestamp.
func (s *SQLiteStore) PutTranslation(ctx context.Context, source string, from, to hantl.Language, translated string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translations (source_text, source_lang, target_lang, translated_text, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source_text, source_lang, target_lang)
		 DO UPDATE SET translated_text = excluded.translated_text, created_at = excluded.created_at`,
		source, string(from), string(to), translated, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return &hantl.StorageError{Op: "put translation", Cause: err}
	}
	return nil
}

// GetPreference unmarshals the stored JSON value for key into out. Misses
// and faults both leave out untouched and report false.
func (s *SQLiteStore) GetPreference(ctx context.Context, key hantl.PreferenceKey, out any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, string(key)).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// PutPreference upserts a JSON-serialized preference value.
func (s *SQLiteStore) PutPreference(ctx context.Context, key hantl.PreferenceKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &hantl.StorageError{Op: "put preference", Cause: err}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		string(key), string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return &hantl.StorageError{Op: "put preference", Cause: err}
	}
	return nil
}

// Clear deletes translation entries. Age is evaluated against the persisted
// creation timestamp at call time.
func (s *SQLiteStore) Clear(ctx context.Context, olderThan time.Duration) error {
	var err error
	if olderThan <= 0 {
		_, err = s.db.ExecContext(ctx, `DELETE FROM translations`)
	} else {
		days := olderThan.Hours() / 24
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM translations WHERE julianday('now') - julianday(created_at) > ?`, days)
	}
	if err != nil {
		return &hantl.StorageError{Op: "clear translations", Cause: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Verify SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
