package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roach88/descq/internal/cases"
)

// CaseResult holds the result of a single case.
type CaseResult struct {
	Name       string   `json:"name"`
	Descriptor string   `json:"descriptor"`
	Pass       bool     `json:"pass"`
	Mismatches []string `json:"mismatches,omitempty"`
}

// SuiteResult holds the results of one suite.
type SuiteResult struct {
	Name   string       `json:"name"`
	Path   string       `json:"path"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <suite>...",
		Short: "Run descriptor case suites",
		Long: `Run descriptor case suites written in YAML or CUE.

Each case resolves a descriptor against the suite's origin and compares
the directive with the expected fields.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (missing or invalid suite file)

Examples:
  descq check testdata/suites/posts.yaml
  descq check suites/*.cue --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.logger().With("trace_id", formatter.TraceID)

	suites := make([]*cases.Suite, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("suite file not found: %s", path), nil)
		}
		suite, err := cases.LoadSuite(path)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeSuiteInvalid, err.Error(), map[string]any{"path": path})
		}
		suites = append(suites, suite)
	}

	result := CheckResult{Suites: make([]SuiteResult, 0, len(suites))}
	for i, suite := range suites {
		logger.Debug("running suite", "suite", suite.Name, "cases", len(suite.Cases))

		run := cases.Run(suite, opts.descriptorOptions()...)
		sr := SuiteResult{Name: suite.Name, Path: paths[i], Cases: make([]CaseResult, 0, len(run.Outcomes))}
		for _, o := range run.Outcomes {
			sr.Cases = append(sr.Cases, CaseResult{
				Name:       o.Case,
				Descriptor: o.Descriptor,
				Pass:       o.Passed(),
				Mismatches: o.Mismatches,
			})
			if o.Passed() {
				sr.Passed++
			} else {
				sr.Failed++
			}
		}

		result.Suites = append(result.Suites, sr)
		result.Passed += sr.Passed
		result.Failed += sr.Failed
		result.Total += len(sr.Cases)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		outputCheckText(formatter, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d of %d case(s) failed", ErrCodeCasesFailed, result.Failed, result.Total))
	}
	return nil
}

func outputCheckText(formatter *OutputFormatter, result CheckResult) {
	for _, sr := range result.Suites {
		fmt.Fprintf(formatter.Writer, "%s (%s)\n", sr.Name, sr.Path)

		rows := make([]table.Row, 0, len(sr.Cases))
		for _, c := range sr.Cases {
			status := "PASS"
			if !c.Pass {
				status = "FAIL"
			}
			rows = append(rows, table.Row{status, c.Name, c.Descriptor, strings.Join(c.Mismatches, "; ")})
		}
		formatter.Table(
			table.Row{"Result", "Case", "Descriptor", "Details"},
			rows,
			table.Row{"", fmt.Sprintf("%d passed, %d failed", sr.Passed, sr.Failed)},
		)
	}

	if result.Failed == 0 {
		fmt.Fprintf(formatter.Writer, "✓ All %d case(s) passed\n", result.Total)
		return
	}
	fmt.Fprintf(formatter.Writer, "✗ %d of %d case(s) failed\n", result.Failed, result.Total)
}
