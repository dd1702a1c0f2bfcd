package cases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSuite_YAML(t *testing.T) {
	s, err := LoadSuite("testdata/suites/posts.yaml")
	require.NoError(t, err)

	assert.Equal(t, "posts", s.Name)
	assert.Equal(t, "Post", s.Origin)
	assert.False(t, s.Lenient)
	require.Len(t, s.Cases, 13)

	first := s.Cases[0]
	assert.Equal(t, "bare property", first.Name)
	assert.Equal(t, "title", first.Descriptor)
	require.NotNil(t, first.Expect.Join)
	assert.False(t, *first.Expect.Join)
	require.NotNil(t, first.Expect.Action)
	assert.Equal(t, "", *first.Expect.Action)

	last := s.Cases[len(s.Cases)-1]
	assert.Equal(t, "SEGMENT_COUNT", last.Expect.Error)
	assert.Nil(t, last.Expect.Entity)
}

func TestLoadSuite_CUE(t *testing.T) {
	s, err := LoadSuite("testdata/suites/namespaced.cue")
	require.NoError(t, err)

	assert.Equal(t, "namespaced", s.Name)
	assert.Equal(t, `App\Entity\Post`, s.Origin)
	assert.True(t, s.Lenient)
	assert.Equal(t, "identity", s.TableNaming)
	require.Len(t, s.Cases, 3)

	require.NotNil(t, s.Cases[0].Expect.Table)
	assert.Equal(t, `App\Entity\Post`, *s.Cases[0].Expect.Table)
	assert.Equal(t, "search", s.Cases[2].Expect.Mode)
}

func TestLoadSuite_RejectsUnknownFields(t *testing.T) {
	path := writeSuite(t, "typo.yaml", `
name: typo
origin: Post
cases:
  - name: one
    descriptor: title
    expect:
      propery: title
`)

	_, err := LoadSuite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadSuite_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported extension",
			file:    "suite.json",
			content: `{}`,
			wantErr: "unsupported suite format",
		},
		{
			name:    "missing name",
			file:    "suite.yaml",
			content: "origin: Post\ncases:\n  - name: a\n    descriptor: b\n",
			wantErr: "name is required",
		},
		{
			name:    "missing origin",
			file:    "suite.yaml",
			content: "name: s\ncases:\n  - name: a\n    descriptor: b\n",
			wantErr: "origin is required",
		},
		{
			name:    "no cases",
			file:    "suite.yaml",
			content: "name: s\norigin: Post\n",
			wantErr: "cases list is required",
		},
		{
			name:    "unnamed case",
			file:    "suite.yaml",
			content: "name: s\norigin: Post\ncases:\n  - descriptor: b\n",
			wantErr: "cases[0]: name is required",
		},
		{
			name:    "bad mode",
			file:    "suite.yaml",
			content: "name: s\norigin: Post\ncases:\n  - name: a\n    descriptor: b\n    expect:\n      mode: sort\n",
			wantErr: `unknown mode "sort"`,
		},
		{
			name:    "bad operator",
			file:    "suite.yaml",
			content: "name: s\norigin: Post\ncases:\n  - name: a\n    descriptor: b\n    expect:\n      operator: xor\n",
			wantErr: `unknown operator "xor"`,
		},
		{
			name:    "bad table naming",
			file:    "suite.yaml",
			content: "name: s\norigin: Post\ntable_naming: snake\ncases:\n  - name: a\n    descriptor: b\n",
			wantErr: `unknown table_naming "snake"`,
		},
		{
			name:    "cue not concrete",
			file:    "suite.cue",
			content: "name: string\norigin: \"Post\"\ncases: []\n",
			wantErr: "not concrete",
		},
		{
			name:    "cue syntax error",
			file:    "suite.cue",
			content: "name: \"s\"\norigin: {\n",
			wantErr: "failed to compile CUE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSuite(t, tt.file, tt.content)

			_, err := LoadSuite(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")
}
