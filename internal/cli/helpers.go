package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/jscompat/internal/helpers"
)

// HelperSource is the payload of `helpers <category>`.
type HelperSource struct {
	helpers.Helper
	Definition string `json:"definition"`
}

// NewHelpersCommand creates the helpers command.
func NewHelpersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helpers [category]",
		Short: "List runtime helpers or print one helper's source",
		Long: `Without arguments, list every runtime helper the passes can request.
With a category, print that helper's JavaScript definition.

Examples:
  jscompat helpers
  jscompat helpers typeof`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(cmd, rootOpts)
			if len(args) == 0 {
				return listHelpers(out)
			}
			return showHelper(out, args[0])
		},
	}
	return cmd
}

func listHelpers(out *OutputFormatter) error {
	all := helpers.All()
	return out.Success(all, func(w io.Writer) {
		for _, h := range all {
			fmt.Fprintf(w, "%-10s %-10s %s\n", h.Category, h.Name, h.Summary)
		}
	})
}

func showHelper(out *OutputFormatter, category string) error {
	h, ok := helpers.Lookup(category)
	if !ok {
		return out.Fail(ExitCommandError, CodeInternal,
			fmt.Errorf("unknown helper category %q", category))
	}
	src, err := h.Source()
	if err != nil {
		return out.Fail(ExitFailure, CodeInternal, err)
	}
	return out.Success(HelperSource{Helper: h, Definition: src}, func(w io.Writer) {
		io.WriteString(w, src)
	})
}
