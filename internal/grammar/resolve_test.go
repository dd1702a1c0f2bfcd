package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"title", []string{"title"}},
		{"", []string{""}},
		{"-title", []string{"", "title"}},
		{"ae-title", []string{"ae", "title"}},
		{"r-Post-createdAt", []string{"r", "Post", "createdAt"}},
		{"a--b", []string{"a", "", "b"}},
		{"a-b-c-d", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestSplitLetters(t *testing.T) {
	assert.Equal(t, []rune{'a', 'e'}, SplitLetters("AE"))
	assert.Equal(t, []rune{'r'}, SplitLetters("r"))
	assert.Empty(t, SplitLetters(""))

	// Decomposed E + U+0301 composes to a single rune.
	assert.Equal(t, []rune{'é'}, SplitLetters("É"))
}

func TestResolve_EveryLetterIsOneToken(t *testing.T) {
	for _, l := range Letters() {
		want, _ := Lookup(l)
		got := Resolve(string(l))

		sw, ok := got.(Switches)
		require.True(t, ok, "letter %q should resolve as switches", l)
		assert.Equal(t, []Token{want}, sw.Tokens)
	}
}

func TestResolve_UnknownSingleLetterIsLiteral(t *testing.T) {
	for _, l := range "fghikmqvwxyz" {
		got := Resolve(string(l))
		lit, ok := got.(Literal)
		require.True(t, ok, "letter %q should resolve as literal", l)
		assert.Equal(t, string(l), lit.Text)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    Resolution
	}{
		{"and exact", "ae", Switches{Tokens: []Token{AndFilter, ExactMatch}}},
		{"uppercase lowered", "AE", Switches{Tokens: []Token{AndFilter, ExactMatch}}},
		{"duplicates kept", "cc", Switches{Tokens: []Token{Count, Count}}},
		{"order kept", "tca", Switches{Tokens: []Token{Distinct, Count, AndFilter}}},
		{"entity name collides", "Post", Switches{Tokens: []Token{Property, OrFilter, SimpleArray, Distinct}}},
		{"entity name", "Comment", Literal{Text: "Comment"}},
		{"one bad letter", "aex", Literal{Text: "aex"}},
		{"digit", "a1", Literal{Text: "a1"}},
		{"empty", "", Literal{Text: ""}},
		{"underscore", "created_at", Literal{Text: "created_at"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.segment))
		})
	}
}

func TestResolve_LiteralKeepsCase(t *testing.T) {
	lit, ok := Resolve("BlogPost").(Literal)
	require.True(t, ok)
	assert.Equal(t, "BlogPost", lit.Text)
}
