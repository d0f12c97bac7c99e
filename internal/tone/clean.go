package tone

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// saraAmReplacer folds sara am typed as nikhahit followed by sara aa into
// the single ำ code point.
var saraAmReplacer = strings.NewReplacer(string([]rune{nikhahit, saraAa}), string(saraAm))

// Clean normalises word and keeps only Thai code points and whitespace,
// trimmed at both ends.
func Clean(word string) string {
	normalized := saraAmReplacer.Replace(norm.NFC.String(word))

	var builder strings.Builder

	builder.Grow(len(normalized))

	for _, r := range normalized {
		if (r >= firstThai && r <= lastThai) || unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}

	return strings.TrimSpace(builder.String())
}

// ContainsThai reports whether text has at least one Thai code point.
func ContainsThai(text string) bool {
	for _, r := range text {
		if r >= firstThai && r <= lastThai {
			return true
		}
	}

	return false
}
