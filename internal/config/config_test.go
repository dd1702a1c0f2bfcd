package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/descq/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "descq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"default", func(*config.Config) {}, nil},
		{"zero value", func(c *config.Config) { *c = config.Config{} }, nil},
		{"json format", func(c *config.Config) { c.Format = config.FormatJSON }, nil},
		{"identity naming", func(c *config.Config) { c.Descriptor.TableNaming = config.TableNamingIdentity }, nil},
		{"bad format", func(c *config.Config) { c.Format = "xml" }, config.ErrInvalidFormat},
		{"bad naming", func(c *config.Config) { c.Descriptor.TableNaming = "snake" }, config.ErrInvalidTableNaming},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_NoFile_UsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
format: json
verbose: true
descriptor:
  lenient_segments: true
  table_naming: identity
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Descriptor.LenientSegments)
	assert.Equal(t, config.TableNamingIdentity, cfg.Descriptor.TableNaming)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "verbose: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.Equal(t, config.DefaultTableNaming, cfg.Descriptor.TableNaming)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DESCQ_FORMAT", "json")
	t.Setenv("DESCQ_DESCRIPTOR_TABLE_NAMING", "identity")

	path := writeConfig(t, "format: text\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.TableNamingIdentity, cfg.Descriptor.TableNaming)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "format: xml\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "format: [unclosed\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
