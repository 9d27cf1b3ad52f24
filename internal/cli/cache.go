package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/jscompat/internal/cache"
)

// NewCacheCommand creates the cache command.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache <db>",
		Short: "Show transform cache statistics",
		Long: `Print the number of cached transforms, recorded runs and cache hits.

Example:
  jscompat cache .jscompat.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheStats(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCacheStats(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts)

	// Open would create a missing database.
	if _, err := os.Stat(path); err != nil {
		return out.Fail(ExitCommandError, CodeIO, fmt.Errorf("cache not found: %s", path))
	}

	st, err := cache.Open(path)
	if err != nil {
		return out.Fail(ExitCommandError, CodeIO, err)
	}
	defer st.Close()

	stats, err := st.Stats(cmd.Context())
	if err != nil {
		return out.Fail(ExitFailure, CodeIO, err)
	}

	return out.Success(stats, func(w io.Writer) {
		fmt.Fprintf(w, "Entries: %d\n", stats.Entries)
		fmt.Fprintf(w, "Runs:    %d\n", stats.Runs)
		fmt.Fprintf(w, "Hits:    %d\n", stats.Hits)
	})
}
