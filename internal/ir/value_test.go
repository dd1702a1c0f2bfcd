package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedKeys_UTF16Order(t *testing.T) {
	obj := IRObject{
		"b":          IRInt(1),
		"a":          IRInt(2),
		"\U0001F600": IRInt(3), // surrogate pair D83D DE00
		"\uFFFD":     IRInt(4),
	}

	// UTF-16 puts the surrogate pair (0xD83D) before U+FFFD; UTF-8 would not.
	assert.Equal(t, []string{"a", "b", "\U0001F600", "\uFFFD"}, obj.SortedKeys())
}

func TestToParam(t *testing.T) {
	tests := []struct {
		name string
		in   IRValue
		want any
	}{
		{"string", IRString("x"), "x"},
		{"int", IRInt(7), int64(7)},
		{"bool", IRBool(true), true},
		{"null", IRNull{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToParam(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ToParam(IRArray{IRInt(1)})
	assert.Error(t, err)
	_, err = ToParam(IRObject{})
	assert.Error(t, err)
}

func TestFromGo(t *testing.T) {
	v, err := FromGo(map[string]any{"a": []any{"x", 1, true}})
	require.NoError(t, err)
	assert.Equal(t, IRObject{"a": IRArray{IRString("x"), IRInt(1), IRBool(true)}}, v)

	_, err = FromGo(1.5)
	assert.ErrorContains(t, err, "floats are forbidden")

	_, err = FromGo(map[string]any{"a": nil})
	assert.ErrorContains(t, err, "null is forbidden")

	_, err = FromGo(struct{}{})
	assert.ErrorContains(t, err, "unsupported type")
}
