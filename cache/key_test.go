package cache

import (
	"strings"
	"testing"

	"github.com/ZaguanLabs/hantl"
)

func TestHashText_Deterministic(t *testing.T) {
	h1 := HashText("안녕하세요")
	h2 := HashText("안녕하세요")

	if h1 != h2 {
		t.Error("Same text should produce the same hash")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64-char hex hash, got %d chars", len(h1))
	}
}

func TestHashText_TrimsWhitespace(t *testing.T) {
	if HashText("  hello  ") != HashText("hello") {
		t.Error("Surrounding whitespace should not change the hash")
	}
}

func TestHashText_DifferentTexts(t *testing.T) {
	if HashText("hello") == HashText("world") {
		t.Error("Different texts should produce different hashes")
	}
}

func TestKey_ComponentsDistinct(t *testing.T) {
	koEn := Key("안녕하세요", hantl.Korean, hantl.English)
	enKo := Key("안녕하세요", hantl.English, hantl.Korean)

	if koEn == enKo {
		t.Error("Direction must be part of the key")
	}
	if !strings.HasSuffix(koEn, ":ko:en") {
		t.Errorf("Expected language suffix, got %q", koEn)
	}
}
