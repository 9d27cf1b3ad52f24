package harness

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/roach88/jscompat/internal/config"
	"github.com/roach88/jscompat/internal/pipeline"
)

// Result is the outcome of running one case.
type Result struct {
	Name     string   `json:"name"`
	Pass     bool     `json:"pass"`
	Output   string   `json:"output"`
	Rewrites int      `json:"rewrites"`
	Errors   []string `json:"errors,omitempty"`
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Run transforms c.Input under the default configuration (with c.Helpers
// applied) and compares the output with c.Expect.
//
// Returns an error only when the pipeline cannot be built. Transform
// failures and mismatches are reported in the Result.
func Run(ctx context.Context, c *Case) (*Result, error) {
	cfg := config.Default()
	cfg.Workers = 1
	if c.Helpers != "" {
		cfg.Helpers.Mode = c.Helpers
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", c.Name, err)
	}

	result := &Result{Name: c.Name, Pass: true}
	res, err := p.Transform(ctx, c.Name+".js", []byte(c.Input))
	if err != nil {
		result.AddError(err.Error())
		return result, nil
	}
	result.Output = res.Output
	result.Rewrites = res.Rewrites

	if res.Output != c.Expect {
		result.AddError("output mismatch:\n" + diff(c.Expect, res.Output))
	}
	return result, nil
}

// RunAll runs every case in order.
func RunAll(ctx context.Context, cases []*Case) ([]*Result, error) {
	results := make([]*Result, 0, len(cases))
	for _, c := range cases {
		r, err := Run(ctx, c)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func diff(expect, actual string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expect),
		B:        difflib.SplitLines(actual),
		FromFile: "expect",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("expect:\n%s\nactual:\n%s", expect, actual)
	}
	return text
}
