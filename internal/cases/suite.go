package cases

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/descq/internal/descriptor"
)

// Suite is a named list of descriptor cases resolved against one origin.
type Suite struct {
	// Name identifies the suite and its golden file.
	Name string `yaml:"name" json:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Origin is the entity every descriptor is resolved against.
	Origin string `yaml:"origin" json:"origin"`

	// Lenient makes out-of-range segment counts a no-op instead of an error.
	Lenient bool `yaml:"lenient,omitempty" json:"lenient,omitempty"`

	// TableNaming selects the origin table namer: "short" (default) or
	// "identity".
	TableNaming string `yaml:"table_naming,omitempty" json:"table_naming,omitempty"`

	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is one descriptor and what it should resolve to.
type Case struct {
	Name       string `yaml:"name" json:"name"`
	Descriptor string `yaml:"descriptor" json:"descriptor"`
	Expect     Expect `yaml:"expect" json:"expect"`
}

// Expect lists expected directive fields. Nil pointers and empty strings
// are not checked.
type Expect struct {
	Entity   *string `yaml:"entity,omitempty" json:"entity,omitempty"`
	Table    *string `yaml:"table,omitempty" json:"table,omitempty"`
	Property *string `yaml:"property,omitempty" json:"property,omitempty"`
	Mode     string  `yaml:"mode,omitempty" json:"mode,omitempty"`
	Operator string  `yaml:"operator,omitempty" json:"operator,omitempty"`
	Join     *bool   `yaml:"join,omitempty" json:"join,omitempty"`

	// Action is the concatenated action name, "" for no action.
	Action *string `yaml:"action,omitempty" json:"action,omitempty"`

	// Error is the expected error code, e.g. SEGMENT_COUNT.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// LoadSuite reads a suite from a .yaml, .yml or .cue file.
// Unknown YAML fields are rejected.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite *Suite
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		suite, err = parseYAML(data)
	case ".cue":
		suite, err = parseCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported suite format %q (want .yaml, .yml or .cue)", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateSuite(suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return suite, nil
}

func parseYAML(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &suite, nil
}

func parseCUE(data []byte, path string) (*Suite, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE suite is not concrete: %w", err)
	}

	var suite Suite
	if err := v.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return &suite, nil
}

// ValidateSuite checks required fields and enumerated expectation values.
func ValidateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Origin == "" {
		return fmt.Errorf("origin is required")
	}
	if _, ok := descriptor.NamerByName(s.TableNaming); !ok {
		return fmt.Errorf("unknown table_naming %q", s.TableNaming)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if c.Expect.Mode != "" {
			if _, err := descriptor.ParseMode(c.Expect.Mode); err != nil {
				return fmt.Errorf("cases[%d].expect: %w", i, err)
			}
		}
		if c.Expect.Operator != "" {
			if _, err := descriptor.ParseOperator(c.Expect.Operator); err != nil {
				return fmt.Errorf("cases[%d].expect: %w", i, err)
			}
		}
	}

	return nil
}

// Options returns the descriptor options the suite asks for. An empty
// TableNaming adds no namer, leaving the caller's choice in place.
func (s *Suite) Options() []descriptor.Option {
	var opts []descriptor.Option
	if s.TableNaming != "" {
		if namer, ok := descriptor.NamerByName(s.TableNaming); ok {
			opts = append(opts, descriptor.WithTableNamer(namer))
		}
	}
	if s.Lenient {
		opts = append(opts, descriptor.WithLenientSegments())
	}
	return opts
}
