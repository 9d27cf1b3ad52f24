package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/jscompat/internal/cache"
	"github.com/roach88/jscompat/internal/config"
	"github.com/roach88/jscompat/internal/helpers"
	"github.com/roach88/jscompat/internal/pipeline"
)

// TransformOptions holds flags for the transform command.
type TransformOptions struct {
	*RootOptions
	Config  string
	OutDir  string
	Cache   string
	Helpers string

	// RunIDs overrides the run id generator (for testing).
	// If nil, the pipeline's UUIDv7 generator is used.
	RunIDs pipeline.RunIDGenerator
}

// NewTransformCommand creates the transform command.
func NewTransformCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransformOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "transform <files...>",
		Short: "Rewrite JavaScript sources",
		Long: `Run the configured compatibility passes over each file.

Without --out-dir the transformed source is written to stdout. With
--out-dir each file is written under that directory, keeping relative
paths, and a summary is printed instead.

Examples:
  jscompat transform src/app.js
  jscompat transform --out-dir dist src/*.js
  jscompat transform --config jscompat.cue --cache .jscompat.db src/*.js
  jscompat transform --helpers import --format json src/app.js`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to CUE config file")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "directory to write transformed files to")
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "path to SQLite transform cache (overrides config)")
	cmd.Flags().StringVar(&opts.Helpers, "helpers", "", "helper mode: inline|import (overrides config)")

	return cmd
}

func runTransform(opts *TransformOptions, paths []string, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

	cfg, err := loadConfig(opts)
	if err != nil {
		return out.Fail(ExitCommandError, CodeConfig, err)
	}

	pipeOpts := []pipeline.Option{pipeline.WithLogger(slog.Default())}
	if opts.RunIDs != nil {
		pipeOpts = append(pipeOpts, pipeline.WithRunIDGenerator(opts.RunIDs))
	}
	if cfg.Cache != "" {
		st, err := cache.Open(cfg.Cache)
		if err != nil {
			return out.Fail(ExitCommandError, CodeIO, err)
		}
		defer st.Close()
		pipeOpts = append(pipeOpts, pipeline.WithCache(st))
		out.VerboseLog("Using cache %s", cfg.Cache)
	}

	p, err := pipeline.New(cfg, pipeOpts...)
	if err != nil {
		return out.Fail(ExitCommandError, CodeConfig, err)
	}

	batch, err := p.TransformFiles(cmd.Context(), paths)
	if err != nil {
		code := errorCode(err)
		if code == CodeInternal && errors.Is(err, fs.ErrNotExist) {
			return out.Fail(ExitCommandError, CodeIO, err)
		}
		return out.Fail(ExitFailure, code, err)
	}

	if opts.OutDir != "" {
		dests, err := outputPaths(opts.OutDir, batch.Results)
		if err != nil {
			return out.Fail(ExitCommandError, CodeIO, err)
		}
		for i, r := range batch.Results {
			dest := dests[i]
			if err := writeOutput(dest, r.Output); err != nil {
				return out.Fail(ExitCommandError, CodeIO, err)
			}
			out.VerboseLog("Wrote %s", dest)
		}
	}

	if opts.Format == "json" {
		return out.encode(CLIResponse{Status: "ok", Data: batch.Results, RunID: batch.RunID})
	}

	w := cmd.OutOrStdout()
	if opts.OutDir == "" {
		for _, r := range batch.Results {
			if len(batch.Results) > 1 {
				fmt.Fprintf(w, "// %s\n", r.Path)
			}
			io.WriteString(w, r.Output)
		}
		return nil
	}

	for _, r := range batch.Results {
		status := "unchanged"
		if r.Changed {
			status = fmt.Sprintf("%d rewrite(s)", r.Rewrites)
		}
		if r.Cached {
			status += ", cached"
		}
		fmt.Fprintf(w, "%s: %s\n", r.Path, status)
	}
	fmt.Fprintf(w, "Transformed %d file(s), %d changed\n", len(batch.Results), batch.Changed())
	if batch.RunID != "" {
		fmt.Fprintf(w, "Run: %s\n", batch.RunID)
	}
	return nil
}

// loadConfig reads --config (or the defaults) and applies flag overrides.
func loadConfig(opts *TransformOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		cfg, err = config.Load(opts.Config)
		if err != nil {
			return config.Config{}, err
		}
	}

	switch helpers.Mode(opts.Helpers) {
	case "":
	case helpers.ModeInline, helpers.ModeImport:
		cfg.Helpers.Mode = helpers.Mode(opts.Helpers)
	default:
		return config.Config{}, &config.ConfigError{
			Field:   "helpers.mode",
			Message: fmt.Sprintf("must be %q or %q, got %q", helpers.ModeInline, helpers.ModeImport, opts.Helpers),
		}
	}
	if opts.Cache != "" {
		cfg.Cache = opts.Cache
	}
	return cfg, nil
}

// outputPath maps a source path into dir. Relative paths keep their
// directory structure; anything else is flattened to its base name.
func outputPath(dir, path string) string {
	if filepath.IsLocal(path) {
		return filepath.Join(dir, path)
	}
	return filepath.Join(dir, filepath.Base(path))
}

// outputPaths maps every result into dir before anything is written, so
// two inputs that flatten to the same file fail the run instead of
// overwriting each other.
func outputPaths(dir string, results []pipeline.Result) ([]string, error) {
	dests := make([]string, len(results))
	seen := make(map[string]string, len(results))
	for i, r := range results {
		dest := outputPath(dir, r.Path)
		if prev, ok := seen[dest]; ok && prev != r.Path {
			return nil, fmt.Errorf("%s and %s both write to %s", prev, r.Path, dest)
		}
		seen[dest] = r.Path
		dests[i] = dest
	}
	return dests, nil
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
