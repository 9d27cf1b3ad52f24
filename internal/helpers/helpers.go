// Package helpers is the helper injection subsystem: it hands out references
// to shared runtime helpers while passes run, then materializes each helper
// used by a module exactly once.
package helpers

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/roach88/jscompat/internal/ast"
	"github.com/roach88/jscompat/internal/canonical"
	"github.com/roach88/jscompat/internal/parser"
)

//go:embed js/*.js
var sources embed.FS

// Helper describes one runtime helper.
type Helper struct {
	Category string `json:"category"` // what passes request, e.g. "typeof"
	Name     string `json:"name"`     // binding emitted at call sites, e.g. "_typeof"
	Summary  string `json:"summary"`
}

var catalog = map[string]Helper{
	"typeof": {
		Category: "typeof",
		Name:     "_typeof",
		Summary:  `typeof that reports "symbol" for polyfilled Symbols`,
	},
}

// Lookup returns the helper registered for category.
func Lookup(category string) (Helper, bool) {
	h, ok := catalog[category]
	return h, ok
}

// All returns every known helper sorted by category.
func All() []Helper {
	out := make([]Helper, 0, len(catalog))
	for _, h := range catalog {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Source returns the JavaScript definition of the helper.
func (h Helper) Source() (string, error) {
	data, err := sources.ReadFile("js/" + h.Category + ".js")
	if err != nil {
		return "", fmt.Errorf("helper %s: %w", h.Category, err)
	}
	return string(data), nil
}

// definitions caches parsed helper bodies. Trees are immutable, so one
// parse serves every module.
var definitions sync.Map // category -> []ast.Stmt

// Definition returns the parsed statements defining the helper.
func (h Helper) Definition(ctx context.Context) ([]ast.Stmt, error) {
	if cached, ok := definitions.Load(h.Category); ok {
		return cached.([]ast.Stmt), nil
	}
	src, err := h.Source()
	if err != nil {
		return nil, err
	}
	m, err := parser.Parse(ctx, "helpers/"+h.Category+".js", []byte(src))
	if err != nil {
		return nil, fmt.Errorf("helper %s: %w", h.Category, err)
	}
	actual, _ := definitions.LoadOrStore(h.Category, m.Body)
	return actual.([]ast.Stmt), nil
}

// Fingerprint hashes the catalog together with every helper's source, so
// cached output produced with different helper code is never reused.
func Fingerprint() (string, error) {
	all := All()
	entries := make([]any, 0, len(all))
	for _, h := range all {
		src, err := h.Source()
		if err != nil {
			return "", err
		}
		entries = append(entries, map[string]any{
			"category": h.Category,
			"name":     h.Name,
			"source":   src,
		})
	}
	return canonical.HashValue(canonical.DomainToolchain, entries)
}
