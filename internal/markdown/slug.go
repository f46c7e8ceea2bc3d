package markdown

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// EmptySlug is used for headings whose text slugifies to nothing.
const EmptySlug = "section"

// Slugify turns heading text into an anchor token. It keeps letters, digits,
// marks, underscores, whitespace and hyphens, trims, lowercases, then
// collapses each run of whitespace and hyphens into a single hyphen.
//
// The result depends only on the input text. Two headings with the same text
// get the same anchor; no suffix is added to tell them apart.
func Slugify(text string) string {
	text = norm.NFC.String(text)

	var kept strings.Builder
	kept.Grow(len(text))
	for _, r := range text {
		if isWordRune(r) || unicode.IsSpace(r) || r == '-' {
			kept.WriteRune(r)
		}
	}

	trimmed := strings.ToLower(strings.TrimSpace(kept.String()))

	var b strings.Builder
	b.Grow(len(trimmed))
	inRun := false
	for _, r := range trimmed {
		if r == '-' || unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte('-')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return EmptySlug
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
