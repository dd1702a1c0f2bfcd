package cli

import (
	"errors"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roach88/descq/internal/descriptor"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <origin> <descriptor>",
		Short: "Resolve a descriptor into a directive",
		Long: `Resolve one descriptor against an origin entity and print the directive.

Descriptors starting with "-" must follow "--".

Examples:
  descq parse Post ae-title
  descq parse 'App\Entity\Post' rc-Comment-id --format json
  descq parse Post -- -title`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runParse(opts *RootOptions, origin, raw string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.logger().With("trace_id", formatter.TraceID)

	d, err := descriptor.Parse(origin, raw, append(opts.descriptorOptions(), descriptor.WithLogger(logger))...)
	if err != nil {
		return failParse(formatter, raw, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(d)
	}

	formatter.Table(
		table.Row{"Field", "Value"},
		directiveRows(d),
		nil,
	)
	return nil
}

// directiveRows lists a directive's fields for text output.
func directiveRows(d descriptor.Directive) []table.Row {
	return []table.Row{
		{"origin", d.Origin()},
		{"table", d.Table()},
		{"entity", d.Entity()},
		{"property", d.Property()},
		{"mode", d.Mode()},
		{"operator", d.Operator()},
		{"join", strconv.FormatBool(d.Join())},
		{"action", d.Action().String()},
		{"raw", d.RawParameters()},
	}
}

// failParse maps a descriptor error to its response code.
func failParse(formatter *OutputFormatter, raw string, err error) error {
	var se *descriptor.SegmentCountError
	switch {
	case errors.As(err, &se):
		return formatter.fail(ExitCommandError, ErrCodeSegmentCount, err.Error(),
			map[string]any{"descriptor": raw, "segments": se.Segments})
	case errors.Is(err, descriptor.ErrEmptyEntity):
		return formatter.fail(ExitCommandError, ErrCodeEmptyEntity, err.Error(), nil)
	default:
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
}
