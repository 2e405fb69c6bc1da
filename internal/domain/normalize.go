package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTerm prepares a search term read from a work list or dictionary:
//   - applies Unicode NFC so precomposed and decomposed kana compare equal
//   - trims leading/trailing whitespace, including the ideographic space
//   - compresses runs of whitespace into a single ASCII space
//
// Case is preserved; terms are Japanese and latin terms are rare.
func NormalizeTerm(text string) string {
	text = strings.TrimFunc(text, unicode.IsSpace)
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsKana reports whether s is non-empty and consists only of hiragana,
// katakana and the prolonged sound mark.
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.In(r, unicode.Hiragana, unicode.Katakana) && r != 'ー' {
			return false
		}
	}
	return true
}
