package grammar

import "slices"

// Resolution is the result of classifying a segment.
//
// This is a sealed interface with two variants: Switches and Literal.
//
//	switch r := grammar.Resolve(seg).(type) {
//	case grammar.Switches:
//	    // r.Tokens
//	case grammar.Literal:
//	    // r.Text
//	}
type Resolution interface {
	resolution() // Marker method - seals interface to this package
}

// Switches is a segment whose every letter is a switch.
type Switches struct {
	Tokens []Token
}

func (Switches) resolution() {}

// Literal is a segment that is not a switch group. Text is the segment
// exactly as given, case preserved.
type Literal struct {
	Text string
}

func (Literal) resolution() {}

// Resolve classifies a segment as a switch group or a literal name.
//
// The segment is lower-cased and every letter is checked against the
// declared letter set before translation. One unknown letter makes the
// whole segment a Literal. An empty segment is a Literal too.
func Resolve(segment string) Resolution {
	letters := SplitLetters(segment)
	if len(letters) == 0 {
		return Literal{Text: segment}
	}

	declared := Letters()
	for _, l := range letters {
		if !slices.Contains(declared, l) {
			return Literal{Text: segment}
		}
	}

	return Switches{Tokens: translate(letters)}
}

// translate maps validated letters to tokens, keeping order and duplicates.
func translate(letters []rune) []Token {
	tokens := make([]Token, 0, len(letters))
	for _, l := range letters {
		if tok, ok := Lookup(l); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
