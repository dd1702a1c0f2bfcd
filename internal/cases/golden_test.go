package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Posts(t *testing.T) {
	s, err := LoadSuite("testdata/suites/posts.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, s)
	require.NoError(t, err)
	assert.True(t, result.OK())
}

func TestSnapshot_Deterministic(t *testing.T) {
	s, err := LoadSuite("testdata/suites/posts.yaml")
	require.NoError(t, err)

	first, err := Snapshot(s, Run(s))
	require.NoError(t, err)
	second, err := Snapshot(s, Run(s))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSnapshot_ErrorCase(t *testing.T) {
	s := &Suite{
		Name:   "errors",
		Origin: "Post",
		Cases:  []Case{{Name: "four", Descriptor: "a-b-c-d"}},
	}

	got, err := Snapshot(s, Run(s))
	require.NoError(t, err)

	assert.Equal(t,
		`{"cases":[{"descriptor":"a-b-c-d","error":"SEGMENT_COUNT","name":"four"}],"origin":"Post","suite":"errors"}`,
		string(got))
}
