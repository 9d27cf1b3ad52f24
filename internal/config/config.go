// Package config loads pipeline configuration from CUE files.
//
// A user file is unified with the embedded #Config schema, so defaults,
// enumerations and ranges are enforced by CUE and reported with source
// positions.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/jscompat/internal/canonical"
	"github.com/roach88/jscompat/internal/helpers"
)

//go:embed schema.cue
var schemaSrc string

// Config is the decoded pipeline configuration.
type Config struct {
	Passes  []string      `json:"passes"`
	Helpers HelperOptions `json:"helpers"`
	Workers int           `json:"workers"`
	Cache   string        `json:"cache,omitempty"`
}

// HelperOptions controls helper injection.
type HelperOptions struct {
	Mode   helpers.Mode `json:"mode"`
	Source string       `json:"source"`
}

// ConfigError is a configuration problem with an optional CUE position.
type ConfigError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *ConfigError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns the configuration implied by an empty file.
func Default() Config {
	cfg, err := Parse("default.cue", nil)
	if err != nil {
		// The embedded schema is fixed at build time.
		panic(fmt.Sprintf("config: default configuration: %v", err))
	}
	return cfg
}

// Load reads and validates the CUE file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return Parse(path, data)
}

// Parse validates data (CUE source) against the schema. filename is used
// for error positions.
func Parse(filename string, data []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, formatCUEError(err)
	}

	user := ctx.CompileBytes(data, cue.Filename(filename))
	if err := user.Err(); err != nil {
		return Config{}, formatCUEError(err)
	}

	v := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, formatCUEError(err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, formatCUEError(err)
	}
	return cfg, nil
}

// Hash identifies the output-affecting parts of the configuration. Workers
// and the cache path do not change output and are excluded.
func (c Config) Hash() (string, error) {
	passes := make([]any, len(c.Passes))
	for i, p := range c.Passes {
		passes[i] = p
	}
	return canonical.HashValue(canonical.DomainConfig, map[string]any{
		"passes": passes,
		"helpers": map[string]any{
			"mode":   string(c.Helpers.Mode),
			"source": c.Helpers.Source,
		},
	})
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	field := "config"
	if path := first.Path(); len(path) > 0 {
		field = strings.Join(path, ".")
	}
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &ConfigError{Field: field, Message: first.Error(), Pos: positions[0]}
	}
	return &ConfigError{Field: field, Message: first.Error()}
}
