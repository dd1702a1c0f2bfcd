package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/descq/internal/descriptor"
	"github.com/roach88/descq/internal/plan"
	"github.com/roach88/descq/internal/queryir"
	"github.com/roach88/descq/internal/querysql"
)

// SQLResult is the payload of the sql command.
type SQLResult struct {
	SQL      string   `json:"sql"`
	Params   []any    `json:"params"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r SQLResult) String() string {
	var b strings.Builder
	b.WriteString(r.SQL)
	if len(r.Params) > 0 {
		fmt.Fprintf(&b, "\nparams: %v", r.Params)
	}
	return b.String()
}

// NewSQLCommand creates the sql command.
func NewSQLCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql <origin> <descriptor[=value]>...",
		Short: "Translate descriptors into parameterized SQL",
		Long: `Resolve each descriptor=value pair against the origin, plan one query
and print it as parameterized SQLite SQL. Nothing is executed.

Table names follow the configured table naming; columns and join keys
use entity and property names as given (<origin>.<entity>_id = <entity>.id).
Dialect warnings are printed with --verbose.

Examples:
  descq sql Post title=go
  descq sql Post ae-title=Go o-Comment-author=ann
  descq sql Post rc-Comment-id=desc --format json`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runSQL(opts *RootOptions, origin string, pairs []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.logger().With("trace_id", formatter.TraceID)
	parseOpts := append(opts.descriptorOptions(), descriptor.WithLogger(logger))

	criteria := make([]plan.Criterion, 0, len(pairs))
	for _, pair := range pairs {
		raw, value := splitCriterion(pair)
		d, err := descriptor.Parse(origin, raw, parseOpts...)
		if err != nil {
			return failParse(formatter, raw, err)
		}
		criteria = append(criteria, plan.Criterion{Directive: d, Value: value})
	}

	planner := plan.NewPlanner(plan.TableNames{Namer: opts.tableNamer()}, logger)
	q, err := planner.Plan(origin, criteria)
	if err != nil {
		var details any
		var ce *plan.CriterionError
		if errors.As(err, &ce) {
			details = map[string]any{"index": ce.Index, "descriptor": ce.Descriptor}
		}
		return formatter.fail(ExitCommandError, ErrCodePlan, err.Error(), details)
	}

	validation := queryir.Validate(q)
	for _, w := range validation.Warnings {
		formatter.VerboseLog("warning: %s", w)
	}

	sql, params, err := querysql.NewSQLCompiler().Compile(q)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeCompile, err.Error(), nil)
	}
	logger.Debug("query compiled", "sql", sql, "params", len(params))

	if params == nil {
		params = []any{}
	}
	return formatter.Success(SQLResult{
		SQL:      sql,
		Params:   params,
		Warnings: validation.Warnings,
	})
}

// splitCriterion splits "descriptor=value" at the first "=". A missing
// "=" means an empty value.
func splitCriterion(pair string) (raw, value string) {
	raw, value, _ = strings.Cut(pair, "=")
	return raw, value
}
