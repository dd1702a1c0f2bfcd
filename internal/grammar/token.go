package grammar

import "fmt"

// Token is a semantic switch token.
type Token int

const (
	TokenInvalid Token = iota
	AndFilter
	OrFilter
	OrderBy
	Count
	Distinct
	Sum
	ExactMatch
	Like
	NotNull
	Boolean
	DateTime
	Join
	Property
	SimpleArray
)

var tokenNames = map[Token]string{
	AndFilter:   "andFilter",
	OrFilter:    "orFilter",
	OrderBy:     "orderBy",
	Count:       "count",
	Distinct:    "distinct",
	Sum:         "sum",
	ExactMatch:  "exactMatch",
	Like:        "like",
	NotNull:     "notNull",
	Boolean:     "boolean",
	DateTime:    "dateTime",
	Join:        "join",
	Property:    "property",
	SimpleArray: "simpleArray",
}

func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// IsMode reports whether t governs the mode of a switch group.
func (t Token) IsMode() bool {
	return t == AndFilter || t == OrFilter || t == OrderBy
}

// ParseToken returns the token with the given name.
func ParseToken(name string) (Token, error) {
	for tok, n := range tokenNames {
		if n == name {
			return tok, nil
		}
	}
	return TokenInvalid, fmt.Errorf("unknown token %q", name)
}

// vocabulary is the fixed letter table. Order matches Letters().
var vocabulary = []struct {
	letter rune
	token  Token
}{
	{'a', AndFilter},
	{'b', Boolean},
	{'c', Count},
	{'d', DateTime},
	{'e', ExactMatch},
	{'j', Join},
	{'l', Like},
	{'n', NotNull},
	{'o', OrFilter},
	{'p', Property},
	{'r', OrderBy},
	{'s', SimpleArray},
	{'t', Distinct},
	{'u', Sum},
}

var byLetter = func() map[rune]Token {
	m := make(map[rune]Token, len(vocabulary))
	for _, entry := range vocabulary {
		m[entry.letter] = entry.token
	}
	return m
}()

// Lookup returns the token for a switch letter.
// Only lowercase letters are switches; callers lower-case first.
func Lookup(letter rune) (Token, bool) {
	tok, ok := byLetter[letter]
	return tok, ok
}

// Letters returns the declared switch letters in table order.
func Letters() []rune {
	letters := make([]rune, len(vocabulary))
	for i, entry := range vocabulary {
		letters[i] = entry.letter
	}
	return letters
}

// LetterOf returns the switch letter for a token.
func LetterOf(t Token) (rune, bool) {
	for _, entry := range vocabulary {
		if entry.token == t {
			return entry.letter, true
		}
	}
	return 0, false
}
