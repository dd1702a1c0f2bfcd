package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/descq/internal/config"
	"github.com/roach88/descq/internal/descriptor"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config and Logger are set by the root command before any subcommand
	// runs. Subcommands built directly (as in tests) fall back to defaults.
	Config *config.Config
	Logger *slog.Logger

	// TraceIDs generates response trace IDs. Defaults to UUIDv7Generator.
	TraceIDs TraceIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command for the descq CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descq",
		Short: "descq - switch descriptor queries",
		Long: `Resolve dash-delimited switch descriptors into query directives.

A descriptor is up to three segments: [switches-][entity-]property.
Switches are single letters, e.g. "ae-title" is an exact match and
"rc-Comment-id" orders by the number of joined comments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default .descq.yaml in CWD or $HOME)")

	// Add subcommands
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewSQLCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// resolve loads the config, lets explicit flags win over it and installs
// the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		formatter := newFormatter(o, cmd)
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load config", err)
	}
	o.Config = cfg

	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		o.Format = cfg.Format
	}
	if !cmd.Flags().Changed("verbose") {
		o.Verbose = o.Verbose || cfg.Verbose
	}

	// Validate format flag
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}

	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	return nil
}

// logger returns the resolved logger, or one that discards everything.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// traceID returns a fresh response trace ID.
func (o *RootOptions) traceID() string {
	if o.TraceIDs != nil {
		return o.TraceIDs.Generate()
	}
	return UUIDv7Generator{}.Generate()
}

// settings returns the resolved config, or the defaults.
func (o *RootOptions) settings() config.Config {
	if o.Config != nil {
		return *o.Config
	}
	return config.Default()
}

// tableNamer returns the configured origin table namer.
func (o *RootOptions) tableNamer() descriptor.TableNamer {
	namer, ok := descriptor.NamerByName(o.settings().Descriptor.TableNaming)
	if !ok {
		return descriptor.ShortName
	}
	return namer
}

// descriptorOptions returns the parse options implied by the config.
func (o *RootOptions) descriptorOptions() []descriptor.Option {
	opts := []descriptor.Option{
		descriptor.WithTableNamer(o.tableNamer()),
		descriptor.WithLogger(o.logger()),
	}
	if o.settings().Descriptor.LenientSegments {
		opts = append(opts, descriptor.WithLenientSegments())
	}
	return opts
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
