package hantl

import (
	"strings"
	"testing"
)

func TestTextPrompt_NamesDirection(t *testing.T) {
	req := TranslationRequest{Text: "좋은 아침", Source: Korean, Target: English, Kind: KindFullText}
	msgs := TextPrompt(req)

	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != RoleSystem || msgs[1].Role != RoleUser {
		t.Error("Expected system message followed by user message")
	}
	if !strings.Contains(msgs[0].Content, "Korean to English") {
		t.Errorf("System message should name the direction, got: %s", msgs[0].Content)
	}
	if msgs[1].Content != "좋은 아침" {
		t.Errorf("User turn should carry the raw text, got: %s", msgs[1].Content)
	}
}

func TestTextPrompt_HonorificNote(t *testing.T) {
	polite := TranslationRequest{Text: "안녕하세요", Source: Korean, Target: English}
	plain := TranslationRequest{Text: "밥", Source: Korean, Target: English}

	if !strings.Contains(TextPrompt(polite)[0].Content, "honorific") {
		t.Error("Expected honorific note for polite Korean text")
	}
	if strings.Contains(TextPrompt(plain)[0].Content, "honorific") {
		t.Error("Unexpected honorific note for plain text")
	}

	// English source text never gets the Korean register scan.
	english := TranslationRequest{Text: "hello 하세요", Source: English, Target: Korean}
	if strings.Contains(TextPrompt(english)[0].Content, "honorific") {
		t.Error("Unexpected honorific note for English source text")
	}
}

func TestWordPrompt(t *testing.T) {
	req := TranslationRequest{Text: "사랑", Source: Korean, Target: English, Kind: KindWord}
	msgs := WordPrompt(req)

	if !strings.Contains(msgs[0].Content, "word-for-word") {
		t.Errorf("Expected direct-translation instruction, got: %s", msgs[0].Content)
	}
	if msgs[1].Content != "사랑" {
		t.Errorf("User turn should be the bare word, got: %s", msgs[1].Content)
	}
}

func TestWordContextPrompt(t *testing.T) {
	req := TranslationRequest{
		Text:    "배",
		Source:  Korean,
		Target:  English,
		Kind:    KindWord,
		Context: "배를 타고 강을 건넜다",
	}
	msgs := WordContextPrompt(req)

	if !strings.Contains(msgs[0].Content, "context") {
		t.Errorf("Expected contextual instruction, got: %s", msgs[0].Content)
	}
	if !strings.Contains(msgs[1].Content, "Word: 배") {
		t.Errorf("User turn should carry the word, got: %s", msgs[1].Content)
	}
	if !strings.Contains(msgs[1].Content, "Context: 배를 타고") {
		t.Errorf("User turn should carry the context, got: %s", msgs[1].Content)
	}
}

func TestCleanOutput(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		source string
		want   string
	}{
		{"plain", "Hello", "안녕하세요", "Hello"},
		{"echoed source", "안녕하세요 Hello", "안녕하세요", "Hello"},
		{"assistant marker", "[|assistant|] Hello", "안녕하세요", "Hello"},
		{"label", "Translation: Hello", "안녕하세요", "Hello"},
		{"trailing system fragment", "Hello You are a professional Korean to English translator.", "안녕하세요", "Hello"},
		{"whitespace", "  Hello  \n", "안녕하세요", "Hello"},
		{"everything", "안녕하세요 [|assistant|] Translation: Hello", "안녕하세요", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanOutput(tt.raw, tt.source)
			if got != tt.want {
				t.Errorf("CleanOutput(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanWordOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		// An explanation that mentions the word it explains must survive
		// intact.
		{"word mentioned", "It means boat here; 배 can also mean pear or stomach.", "It means boat here; 배 can also mean pear or stomach."},
		{"assistant marker", "[|assistant|] love", "love"},
		{"label", "Translation: love", "love"},
		{"trailing system fragment", "love You are a professional Korean to English translator.", "love"},
		{"whitespace", "  love \n", "love"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanWordOutput(tt.raw)
			if got != tt.want {
				t.Errorf("CleanWordOutput(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
