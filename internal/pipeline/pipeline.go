// Package pipeline drives a source file through parsing, the configured
// compatibility passes, helper injection and code generation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/jscompat/internal/ast"
	"github.com/roach88/jscompat/internal/cache"
	"github.com/roach88/jscompat/internal/canonical"
	"github.com/roach88/jscompat/internal/codegen"
	"github.com/roach88/jscompat/internal/compat"
	"github.com/roach88/jscompat/internal/config"
	"github.com/roach88/jscompat/internal/helpers"
	"github.com/roach88/jscompat/internal/parser"
)

// Result is the outcome of transforming one file.
type Result struct {
	Path     string   `json:"path"`
	Output   string   `json:"output"`
	Helpers  []string `json:"helpers"` // helper categories injected, sorted
	Rewrites int      `json:"rewrites"`
	Changed  bool     `json:"changed"`
	Cached   bool     `json:"cached"`
	Key      string   `json:"key"`
}

// Pipeline transforms sources under one configuration.
//
// Thread-safety: Transform and TransformFiles are safe for concurrent use.
type Pipeline struct {
	cfg           config.Config
	configHash    string
	toolchainHash string
	cache      *cache.Store
	logger     *slog.Logger
	runIDs     RunIDGenerator
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCache enables result caching and run recording.
func WithCache(s *cache.Store) Option {
	return func(p *Pipeline) { p.cache = s }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithRunIDGenerator replaces the UUIDv7 run id generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(p *Pipeline) { p.runIDs = g }
}

// New validates cfg and returns a pipeline for it.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	for _, name := range cfg.Passes {
		if !slices.Contains(compat.Names(), name) {
			return nil, fmt.Errorf("unknown pass %q: must be one of %v", name, compat.Names())
		}
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	hash, err := cfg.Hash()
	if err != nil {
		return nil, fmt.Errorf("config hash: %w", err)
	}
	toolchain, err := ToolchainHash()
	if err != nil {
		return nil, fmt.Errorf("toolchain hash: %w", err)
	}

	p := &Pipeline{
		cfg:           cfg,
		configHash:    hash,
		toolchainHash: toolchain,
		logger:        slog.Default(),
		runIDs:        UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() config.Config {
	return p.cfg
}

// Transform runs src (the contents of path) through the pipeline. path is
// used for error positions and in the result only.
func (p *Pipeline) Transform(ctx context.Context, path string, src []byte) (Result, error) {
	sourceHash := canonical.Hash(canonical.DomainSource, src)
	key, err := cache.Key(sourceHash, p.configHash, p.toolchainHash)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	if p.cache != nil {
		entry, ok, err := p.cache.Get(ctx, key)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", path, err)
		}
		if ok {
			p.logger.Debug("cache hit", "path", path, "key", key)
			return Result{
				Path:     path,
				Output:   entry.Output,
				Helpers:  entry.Helpers,
				Rewrites: entry.Rewrites,
				Changed:  entry.Changed,
				Cached:   true,
				Key:      key,
			}, nil
		}
	}

	res, err := p.transform(ctx, path, src)
	if err != nil {
		return Result{}, err
	}
	res.Key = key

	if p.cache != nil {
		err := p.cache.Put(ctx, cache.Entry{
			Key:        key,
			SourceHash: sourceHash,
			ConfigHash: p.configHash,
			Output:     res.Output,
			Helpers:    res.Helpers,
			Rewrites:   res.Rewrites,
			Changed:    res.Changed,
		})
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	p.logger.Debug("transformed", "path", path, "rewrites", res.Rewrites, "changed", res.Changed)
	return res, nil
}

func (p *Pipeline) transform(ctx context.Context, path string, src []byte) (Result, error) {
	m, err := parser.Parse(ctx, path, src)
	if err != nil {
		return Result{}, err
	}

	before, err := moduleHash(m)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	set := helpers.NewSetFor(m)
	for _, name := range p.cfg.Passes {
		pass, err := compat.New(name, set)
		if err != nil {
			return Result{}, err
		}
		m = pass.FoldModule(m)
	}

	// Built after every pass so helper bodies are never rewritten.
	prelude, err := helpers.Prelude(ctx, set, helpers.Options{
		Mode:   p.cfg.Helpers.Mode,
		Source: p.cfg.Helpers.Source,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	out := helpers.Insert(m, prelude)

	after, err := moduleHash(out)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	res := Result{
		Path:     path,
		Helpers:  set.Used(),
		Rewrites: set.Count(),
		Changed:  before != after,
	}
	if res.Changed {
		res.Output = p.render(ctx, path, src, m, out, prelude)
	} else {
		res.Output = string(src)
	}
	return res, nil
}

// render prefers patching src, which keeps comments and formatting, and
// reprints the whole module only when the patched text does not reparse
// to the transformed tree.
func (p *Pipeline) render(ctx context.Context, path string, src []byte, m, out *ast.Module, prelude []ast.Stmt) string {
	printed := codegen.Print(out)

	patched, ok := codegen.Patch(src, m, prelude, helpers.DirectiveCount(m))
	if !ok {
		p.logger.Debug("patch failed, reprinting", "path", path)
		return printed
	}
	reparsed, err := parser.Parse(ctx, path, []byte(patched))
	if err != nil || codegen.Print(reparsed) != printed {
		p.logger.Debug("patched output diverges, reprinting", "path", path, "error", err)
		return printed
	}
	return patched
}

// ToolchainHash identifies everything besides source and configuration
// that determines output: the pass revision and the embedded helper
// sources.
func ToolchainHash() (string, error) {
	helperHash, err := helpers.Fingerprint()
	if err != nil {
		return "", err
	}
	return canonical.HashValue(canonical.DomainToolchain, map[string]any{
		"compat_revision": compat.Revision,
		"helpers":         helperHash,
	})
}

func moduleHash(m *ast.Module) (string, error) {
	return canonical.HashValue(canonical.DomainModule, ast.Encode(m))
}
