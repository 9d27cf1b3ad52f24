package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/jscompat/internal/ast"
)

// Mode selects how used helpers are materialized.
type Mode string

const (
	// ModeInline inserts the helper definitions into the module.
	ModeInline Mode = "inline"
	// ModeImport inserts default imports from an external helper package.
	ModeImport Mode = "import"
)

// DefaultSource is the helper package imported from in ModeImport.
const DefaultSource = "@jscompat/helpers"

// Options controls Inject.
type Options struct {
	Mode   Mode
	Source string // import prefix for ModeImport; DefaultSource if empty
}

// Inject returns m with every helper recorded in set inserted once, in
// category order, after the module's directive prologue. m is returned
// unchanged when set is empty.
func Inject(ctx context.Context, m *ast.Module, set *Set, opts Options) (*ast.Module, error) {
	prelude, err := Prelude(ctx, set, opts)
	if err != nil {
		return nil, err
	}
	return Insert(m, prelude), nil
}

// Insert returns m with prelude placed after its directive prologue, or m
// itself when prelude is empty.
func Insert(m *ast.Module, prelude []ast.Stmt) *ast.Module {
	if len(prelude) == 0 {
		return m
	}
	at := DirectiveCount(m)
	body := make([]ast.Stmt, 0, len(prelude)+len(m.Body))
	body = append(body, m.Body[:at]...)
	body = append(body, prelude...)
	body = append(body, m.Body[at:]...)
	return &ast.Module{Span: m.Span, Body: body}
}

// Prelude returns the statements that define (ModeInline) or import
// (ModeImport) every helper recorded in set, bound to the names set chose.
func Prelude(ctx context.Context, set *Set, opts Options) ([]ast.Stmt, error) {
	var prelude []ast.Stmt
	for _, category := range set.Used() {
		h, ok := Lookup(category)
		if !ok {
			return nil, fmt.Errorf("inject: unknown helper category %q", category)
		}
		name := set.Name(category)

		switch opts.Mode {
		case ModeImport:
			source := opts.Source
			if source == "" {
				source = DefaultSource
			}
			prelude = append(prelude, &ast.Import{
				Default: name,
				Source:  strings.TrimSuffix(source, "/") + "/" + h.Name,
			})
		case ModeInline, "":
			def, err := h.Definition(ctx)
			if err != nil {
				return nil, fmt.Errorf("inject: %w", err)
			}
			for _, s := range def {
				prelude = append(prelude, rename(s, h.Name, name))
			}
		default:
			return nil, fmt.Errorf("inject: unknown helper mode %q", opts.Mode)
		}
	}
	return prelude, nil
}

// rename returns s with the declared function from..to. Definitions are
// shared across modules, so the declaration is copied.
func rename(s ast.Stmt, from, to string) ast.Stmt {
	decl, ok := s.(*ast.FnDecl)
	if !ok || from == to || decl.Fn.Name != from {
		return s
	}
	fn := *decl.Fn
	fn.Name = to
	return &ast.FnDecl{Span: decl.Span, Fn: &fn}
}

// DirectiveCount returns the number of leading directive statements of m,
// such as "use strict". A parenthesized string is an expression, not a
// directive.
func DirectiveCount(m *ast.Module) int {
	n := 0
	for _, s := range m.Body {
		es, ok := s.(*ast.ExprStmt)
		if !ok {
			break
		}
		if str, ok := es.Expr.(*ast.Str); !ok || str.Raw == "" {
			break
		}
		n++
	}
	return n
}
