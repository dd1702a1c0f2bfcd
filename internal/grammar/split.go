package grammar

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Separator delimits descriptor segments.
const Separator = "-"

// Split splits a descriptor into segments. Empty segments keep their
// position; an empty descriptor is one empty segment.
func Split(descriptor string) []string {
	return strings.Split(descriptor, Separator)
}

// SplitLetters returns the lower-cased letters of a segment.
// Input is NFC-normalized first so composed and decomposed forms agree.
func SplitLetters(segment string) []rune {
	lower := cases.Lower(language.Und).String(norm.NFC.String(segment))
	return []rune(lower)
}
