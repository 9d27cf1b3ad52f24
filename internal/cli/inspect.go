package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/jscompat/internal/ast"
	"github.com/roach88/jscompat/internal/canonical"
	"github.com/roach88/jscompat/internal/parser"
)

// InspectResult is the payload of the inspect command.
type InspectResult struct {
	Path    string         `json:"path"`
	Hash    string         `json:"hash"`
	Typeofs int            `json:"typeofs"`
	Tree    map[string]any `json:"tree"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the parsed tree of a source file",
		Long: `Parse a file and print its tree, its content hash, and the number
of typeof expressions it contains.

Examples:
  jscompat inspect src/app.js
  jscompat inspect --format json src/app.js`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts)

	src, err := os.ReadFile(path)
	if err != nil {
		return out.Fail(ExitCommandError, CodeIO, err)
	}

	m, err := parser.Parse(cmd.Context(), path, src)
	if err != nil {
		return out.Fail(ExitFailure, errorCode(err), err)
	}

	tree := ast.Encode(m)
	hash, err := canonical.HashValue(canonical.DomainModule, tree)
	if err != nil {
		return out.Fail(ExitFailure, CodeInternal, err)
	}

	result := InspectResult{
		Path:    path,
		Hash:    hash,
		Typeofs: countTypeofs(m),
		Tree:    tree,
	}
	return out.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "File: %s\n", result.Path)
		fmt.Fprintf(w, "Hash: %s\n", result.Hash)
		fmt.Fprintf(w, "Typeof expressions: %d\n", result.Typeofs)
		data, err := json.MarshalIndent(result.Tree, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Tree: %v\n", err)
			return
		}
		fmt.Fprintf(w, "Tree:\n%s\n", data)
	})
}

func countTypeofs(m *ast.Module) int {
	n := 0
	ast.Inspect(m, func(node ast.Node) bool {
		if u, ok := node.(*ast.Unary); ok && u.Op == ast.OpTypeof {
			n++
		}
		return true
	})
	return n
}
