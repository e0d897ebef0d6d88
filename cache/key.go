package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ZaguanLabs/hantl"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// Key builds the composite translation key for keyed backends: content hash
// plus source and target language. SQLite keys on the raw composite columns
// instead.
func Key(source string, from, to hantl.Language) string {
	return HashText(source) + ":" + string(from) + ":" + string(to)
}
