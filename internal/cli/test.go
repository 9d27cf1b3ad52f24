package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/jscompat/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // case name filter (glob pattern)
}

// TestResult holds the overall test result.
type TestResult struct {
	Cases  []*harness.Result `json:"cases"`
	Passed int               `json:"passed"`
	Failed int               `json:"failed"`
	Total  int               `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <cases-dir>",
		Short: "Run conformance cases",
		Long: `Run every YAML case in a directory through the pipeline and compare
the output with the case's expect field.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, malformed cases, etc.)

Examples:
  jscompat test ./cases
  jscompat test ./cases --filter "dont_touch_*"
  jscompat test ./cases --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by name (glob pattern)")

	return cmd
}

func runTests(opts *TestOptions, dir string, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

	if _, err := os.Stat(dir); err != nil {
		return out.Fail(ExitCommandError, CodeIO, fmt.Errorf("cases directory not found: %s", dir))
	}

	cases, err := harness.LoadDir(dir)
	if err != nil {
		return out.Fail(ExitCommandError, CodeIO, err)
	}

	cases, err = filterCases(cases, opts.Filter)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInternal, err)
	}

	results, err := harness.RunAll(cmd.Context(), cases)
	if err != nil {
		return out.Fail(ExitCommandError, CodeConfig, err)
	}

	summary := TestResult{Cases: results, Total: len(results)}
	for _, r := range results {
		if r.Pass {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: summary}
		if summary.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    CodeTestFailed,
				Message: fmt.Sprintf("%d case(s) failed", summary.Failed),
			}
		}
		if err := out.encode(resp); err != nil {
			return err
		}
	} else {
		printTestText(cmd.OutOrStdout(), summary)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", summary.Failed))
	}
	return nil
}

func filterCases(cases []*harness.Case, pattern string) ([]*harness.Case, error) {
	if pattern == "" {
		return cases, nil
	}
	var kept []*harness.Case
	for _, c := range cases {
		matched, err := filepath.Match(pattern, c.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
		if matched {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

func printTestText(w io.Writer, summary TestResult) {
	for _, r := range summary.Cases {
		if r.Pass {
			fmt.Fprintf(w, "✓ %s\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", r.Name)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", summary.Passed, summary.Failed, summary.Total)
	if summary.Failed == 0 {
		fmt.Fprintln(w, "✓ All cases passed")
	}
}
