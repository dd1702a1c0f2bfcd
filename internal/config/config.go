// Package config loads descq settings from defaults, environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Table naming strategies for the origin table.
const (
	TableNamingShort    = "short"
	TableNamingIdentity = "identity"
)

// Default values.
const (
	DefaultFormat          = FormatText
	DefaultVerbose         = false
	DefaultLenientSegments = false
	DefaultTableNaming     = TableNamingShort
)

// Sentinel errors for Validate.
var (
	ErrInvalidFormat      = errors.New("invalid format")
	ErrInvalidTableNaming = errors.New("invalid descriptor.table_naming")
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Format     string           `mapstructure:"format"`
	Verbose    bool             `mapstructure:"verbose"`
	Descriptor DescriptorConfig `mapstructure:"descriptor"`
}

// DescriptorConfig holds parsing options applied to every descriptor.
type DescriptorConfig struct {
	LenientSegments bool   `mapstructure:"lenient_segments"`
	TableNaming     string `mapstructure:"table_naming"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Format:  DefaultFormat,
		Verbose: DefaultVerbose,
		Descriptor: DescriptorConfig{
			LenientSegments: DefaultLenientSegments,
			TableNaming:     DefaultTableNaming,
		},
	}
}

// Validate checks enumerated values. Empty strings are accepted and mean
// the default.
func (c Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidFormat, c.Format, FormatText, FormatJSON)
	}

	switch c.Descriptor.TableNaming {
	case "", TableNamingShort, TableNamingIdentity:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)",
			ErrInvalidTableNaming, c.Descriptor.TableNaming, TableNamingShort, TableNamingIdentity)
	}

	return nil
}
