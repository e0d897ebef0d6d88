package processor

import "testing"

func TestDetectCulturalMarkers_Honorifics(t *testing.T) {
	m := DetectCulturalMarkers("김 선생님께서 말씀하셨습니다")

	if !m.HasHonorifics() {
		t.Error("Expected honorifics in text addressing a teacher")
	}

	found := make(map[string]bool)
	for _, h := range m.Honorifics {
		found[h] = true
	}
	if !found["님"] || !found["께서"] {
		t.Errorf("Expected 님 and 께서 among honorifics, got %v", m.Honorifics)
	}
}

func TestDetectCulturalMarkers_FormalEndings(t *testing.T) {
	m := DetectCulturalMarkers("감사합니다. 안녕히 가십시오.")

	if len(m.FormalSpeech) == 0 {
		t.Fatal("Expected formal endings")
	}

	found := make(map[string]bool)
	for _, f := range m.FormalSpeech {
		found[f] = true
	}
	if !found["십시오"] {
		t.Errorf("Expected 십시오 among formal endings, got %v", m.FormalSpeech)
	}
}

func TestDetectCulturalMarkers_CasualText(t *testing.T) {
	m := DetectCulturalMarkers("밥 먹었어?")

	if m.HasHonorifics() {
		t.Errorf("Casual speech should carry no honorifics, got %v", m.Honorifics)
	}
	if len(m.FormalSpeech) != 0 {
		t.Errorf("Casual speech should carry no formal endings, got %v", m.FormalSpeech)
	}
}

func TestDetectCulturalMarkers_EnglishText(t *testing.T) {
	m := DetectCulturalMarkers("Hello, how are you?")

	if m.HasHonorifics() || len(m.FormalSpeech) != 0 {
		t.Error("English text should produce no markers")
	}
}
