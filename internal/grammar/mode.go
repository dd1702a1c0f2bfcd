package grammar

import "strings"

// modePriority is checked top-down; the first present token wins.
var modePriority = []Token{AndFilter, OrFilter, OrderBy}

// ResolveMode returns the governing mode token of a switch group.
// Returns false when the group holds no mode token.
func ResolveMode(tokens []Token) (Token, bool) {
	for _, mode := range modePriority {
		for _, tok := range tokens {
			if tok == mode {
				return mode, true
			}
		}
	}
	return TokenInvalid, false
}

// Action is the ordered set of non-mode tokens of a switch group.
type Action []Token

// String concatenates token names, e.g. [Count Distinct] -> "countdistinct".
func (a Action) String() string {
	var b strings.Builder
	for _, tok := range a {
		b.WriteString(tok.String())
	}
	return b.String()
}

// Has reports whether the action contains tok.
func (a Action) Has(tok Token) bool {
	for _, t := range a {
		if t == tok {
			return true
		}
	}
	return false
}

// Is reports whether the action is exactly the given token sequence.
func (a Action) Is(tokens ...Token) bool {
	if len(a) != len(tokens) {
		return false
	}
	for i := range a {
		if a[i] != tokens[i] {
			return false
		}
	}
	return true
}

// ResolveAction strips every mode token and returns what remains.
// Returns false when nothing remains.
func ResolveAction(tokens []Token) (Action, bool) {
	var action Action
	for _, tok := range tokens {
		if tok.IsMode() {
			continue
		}
		action = append(action, tok)
	}
	if len(action) == 0 {
		return nil, false
	}
	return action, true
}
