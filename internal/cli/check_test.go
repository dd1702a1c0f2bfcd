package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postsSuite      = filepath.Join("..", "cases", "testdata", "suites", "posts.yaml")
	namespacedSuite = filepath.Join("..", "cases", "testdata", "suites", "namespaced.cue")
)

const failingSuite = `name: failing
origin: Post
cases:
  - name: right
    descriptor: ae-title
    expect:
      action: exactMatch
  - name: wrong
    descriptor: ae-title
    expect:
      property: body
`

func writeSuiteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheck_AllPass(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{postsSuite, namespacedSuite})

	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "posts (")
	assert.Contains(t, out, "namespaced (")
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "✗")
	assert.Contains(t, out, "✓ All 16 case(s) passed")
}

func TestCheck_Failure(t *testing.T) {
	path := writeSuiteFile(t, "failing.yaml", failingSuite)

	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E302")

	out := buf.String()
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "property: want body, got title")
	assert.Contains(t, out, "✗ 1 of 2 case(s) failed")
}

func TestCheck_JSON(t *testing.T) {
	path := writeSuiteFile(t, "failing.yaml", failingSuite)

	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{postsSuite, path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	result := resp.Data
	assert.Equal(t, 15, result.Total)
	assert.Equal(t, 14, result.Passed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Suites, 2)

	failing := result.Suites[1]
	assert.Equal(t, "failing", failing.Name)
	assert.Equal(t, path, failing.Path)
	require.Len(t, failing.Cases, 2)
	assert.True(t, failing.Cases[0].Pass)
	assert.False(t, failing.Cases[1].Pass)
	assert.Equal(t, []string{"property: want body, got title"}, failing.Cases[1].Mismatches)
}

func TestCheck_CommandErrors(t *testing.T) {
	invalid := writeSuiteFile(t, "invalid.yaml", "name: x\ncases: []\n")

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.yaml"), "E005"},
		{"invalid suite", invalid, "E301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewCheckCommand(&RootOptions{Format: "text"})
			cmd.SetOut(buf)
			cmd.SetArgs([]string{tt.path})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, buf.String(), "Error ["+tt.wantCode+"]")
		})
	}
}

func TestCheck_ConfigDoesNotOverrideSuite(t *testing.T) {
	// The namespaced suite pins identity naming; a short-naming config
	// must not change its results.
	path := writeConfig(t, "descriptor:\n  table_naming: short\n")

	_, _, err := execute(t, "--config", path, "check", namespacedSuite)
	require.NoError(t, err)
}
