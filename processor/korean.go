package processor

import "strings"

// Honorific particles and polite endings that signal an elevated register.
var honorificMarkers = []string{"님", "씨", "께서", "하세요", "입니다"}

// Formal (hasipsio-che) sentence endings.
var formalEndings = []string{"습니다", "습니까", "십시오"}

// CulturalMarkers lists register signals detected in Korean text.
type CulturalMarkers struct {
	Honorifics   []string // Honorific particles present in the text
	FormalSpeech []string // Formal sentence endings present in the text
}

// HasHonorifics reports whether any honorific marker was found.
func (m CulturalMarkers) HasHonorifics() bool {
	return len(m.Honorifics) > 0
}

// DetectCulturalMarkers scans Korean text for honorific and formal-speech
// markers by simple substring matching. It is a heuristic, not a
// morphological analysis.
func DetectCulturalMarkers(text string) CulturalMarkers {
	var m CulturalMarkers
	for _, marker := range honorificMarkers {
		if strings.Contains(text, marker) {
			m.Honorifics = append(m.Honorifics, marker)
		}
	}
	for _, ending := range formalEndings {
		if strings.Contains(text, ending) {
			m.FormalSpeech = append(m.FormalSpeech, ending)
		}
	}
	return m
}
