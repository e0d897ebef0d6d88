package processor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var tagPattern = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// Normalize cleans pasted text: CRLF line endings become LF, zero-width
// characters common in web copy are dropped, and surrounding whitespace is
// trimmed. Interior whitespace is preserved so cache keys stay stable for
// multi-line input.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\ufeff':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// LooksLikeMarkup reports whether the text appears to contain HTML tags.
func LooksLikeMarkup(s string) bool {
	return tagPattern.MatchString(s)
}

// StripMarkup extracts the plain text from input that looks like HTML, as
// happens when a user pastes from a web page. Non-markup input and
// unparseable input are returned unchanged.
func StripMarkup(s string) string {
	if !LooksLikeMarkup(s) {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	text := doc.Text()
	if strings.TrimSpace(text) == "" {
		return s
	}
	return text
}

// Clean is the default preprocessing applied to request text: markup
// stripping followed by normalization.
func Clean(s string) string {
	return Normalize(StripMarkup(s))
}
