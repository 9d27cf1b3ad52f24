package harness

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs c and compares its output against
// testdata/golden/{c.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, c *Case) *Result {
	t.Helper()

	result, err := Run(context.Background(), c)
	if err != nil {
		t.Fatalf("run case %s: %v", c.Name, err)
	}
	if len(result.Errors) > 0 && result.Output == "" {
		t.Fatalf("case %s: %v", c.Name, result.Errors)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, c.Name, []byte(result.Output))
	return result
}
