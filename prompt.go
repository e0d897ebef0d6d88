package hantl

import (
	"fmt"
	"strings"

	"github.com/ZaguanLabs/hantl/processor"
)

// TextPrompt builds the role-tagged instruction pair for a full-text
// translation: a system message naming the direction and a user turn
// carrying the raw text. Korean source text that carries honorific markers
// gets an extra register instruction.
func TextPrompt(req TranslationRequest) []Message {
	sys := fmt.Sprintf(
		"You are a professional %s to %s translator. "+
			"Translate the following %s text to natural, fluent %s. "+
			"Maintain the original meaning and nuance. "+
			"Respond with only the translation, nothing else.",
		req.Source.Name(), req.Target.Name(), req.Source.Name(), req.Target.Name())

	if req.Source == Korean {
		if m := processor.DetectCulturalMarkers(req.Text); m.HasHonorifics() {
			sys += " The text uses honorific forms; preserve the level of politeness in the translation."
		}
	}

	return []Message{
		{Role: RoleSystem, Content: sys},
		{Role: RoleUser, Content: req.Text},
	}
}

// WordPrompt builds the prompt pair for a direct word-for-word translation.
func WordPrompt(req TranslationRequest) []Message {
	sys := fmt.Sprintf(
		"You are a professional %s to %s translator. "+
			"Provide a direct word-for-word translation. "+
			"Respond with only the translation, nothing else.",
		req.Source.Name(), req.Target.Name())

	return []Message{
		{Role: RoleSystem, Content: sys},
		{Role: RoleUser, Content: req.Text},
	}
}

// WordContextPrompt builds the second, separate prompt pair asking for the
// word's meaning in its surrounding context.
func WordContextPrompt(req TranslationRequest) []Message {
	sys := fmt.Sprintf(
		"You are a professional %s to %s translator. "+
			"Explain how this word is used in the given context and provide its contextual meaning in %s.",
		req.Source.Name(), req.Target.Name(), req.Target.Name())

	return []Message{
		{Role: RoleSystem, Content: sys},
		{Role: RoleUser, Content: fmt.Sprintf("Word: %s\nContext: %s", req.Text, req.Context)},
	}
}

// Role markers and labels some backends echo around their answer.
var echoedMarkers = []string{
	"[|assistant|]",
	"Assistant:",
	"Translation:",
}

// CleanOutput strips prompt fragments an inference backend may have echoed
// into a full-text translation: the source text itself, assistant role
// markers, leading labels, and trailing system-instruction fragments. This
// is a plain text trim, not a semantic step.
func CleanOutput(raw, sourceText string) string {
	out := raw

	// Drop everything up to and including an echoed copy of the input.
	if sourceText != "" {
		if i := strings.LastIndex(out, sourceText); i >= 0 {
			out = out[i+len(sourceText):]
		}
	}

	return stripMarkers(out)
}

// CleanWordOutput strips role markers and labels from a word translation or
// contextual explanation. The word itself is never cut: unlike a full-text
// echo, an explanation legitimately mentions the word it explains.
func CleanWordOutput(raw string) string {
	return stripMarkers(raw)
}

func stripMarkers(out string) string {
	for _, marker := range echoedMarkers {
		if i := strings.LastIndex(out, marker); i >= 0 {
			out = out[i+len(marker):]
		}
	}

	// Cut any trailing system-prompt fragment.
	if i := strings.Index(out, "You are a professional"); i >= 0 {
		out = out[:i]
	}

	return strings.TrimSpace(out)
}
