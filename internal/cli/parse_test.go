package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSON(t *testing.T, stdout string) map[string]any {
	t.Helper()

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Equal(t, "ok", resp.Status, stdout)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is an object")
	return data
}

func TestParse_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewParseCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"Post", "ae-Comment-author"})

	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Comment")
	assert.Contains(t, out, "author")
	assert.Contains(t, out, "exactMatch")
	assert.Contains(t, out, "andFilter")
	assert.Contains(t, out, "true")
}

func TestParse_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewParseCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"Post", "rc-Comment-id"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"origin":         "Post",
		"table":          "Post",
		"entity":         "Comment",
		"property":       "id",
		"mode":           "orderBy",
		"operator":       "andFilter",
		"join":           true,
		"action":         "count",
		"raw_parameters": "rc-Comment-id",
	}, parseJSON(t, buf.String()))
}

func TestParse_SegmentCountError(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"text", "Error [E101]: SEGMENT_COUNT"},
		{"json", `"code":"E101"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewParseCommand(&RootOptions{Format: tt.format})
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"Post", "a-b-c-d"})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.True(t, IsReported(err))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestParse_EmptyOrigin(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewParseCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"", "title"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Error [E102]")
}

func TestParse_LenientFromConfig(t *testing.T) {
	path := writeConfig(t, "descriptor:\n  lenient_segments: true\n")

	stdout, _, err := execute(t, "--config", path, "--format", "json", "parse", "Post", "a-b-c-d")
	require.NoError(t, err)

	data := parseJSON(t, stdout)
	assert.Equal(t, "a-b-c-d", data["raw_parameters"])
	assert.Equal(t, false, data["join"])
}

func TestParse_TableNamingFromEnv(t *testing.T) {
	origin := `App\Entity\Post`

	stdout, _, err := execute(t, "--format", "json", "parse", origin, "title")
	require.NoError(t, err)
	data := parseJSON(t, stdout)
	assert.Equal(t, "Post", data["table"])
	assert.Equal(t, true, data["join"], "short naming: the entity differs from its table")

	t.Setenv("DESCQ_DESCRIPTOR_TABLE_NAMING", "identity")

	stdout, _, err = execute(t, "--format", "json", "parse", origin, "title")
	require.NoError(t, err)
	data = parseJSON(t, stdout)
	assert.Equal(t, origin, data["table"])
	assert.Equal(t, false, data["join"])
}

func TestParse_DescriptorAfterDoubleDash(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "parse", "Post", "--", "-title")
	require.NoError(t, err)

	data := parseJSON(t, stdout)
	assert.Equal(t, "title", data["property"])
	assert.Equal(t, "Post", data["entity"])
}

func TestParse_RequiresTwoArgs(t *testing.T) {
	_, _, err := execute(t, "parse", "Post")
	require.Error(t, err)
	assert.False(t, IsReported(err))
}
