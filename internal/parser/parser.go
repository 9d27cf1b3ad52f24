// Package parser lowers JavaScript source to the ast tree using tree-sitter.
//
// The parser is the front end of the pipeline only; it performs no
// transformation. Each Parse call creates its own tree-sitter parser, so
// Parse is safe for concurrent use.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/roach88/jscompat/internal/ast"
)

// Parse parses src as a JavaScript script or module. file is used in error
// messages only.
func Parse(ctx context.Context, file string, src []byte) (*ast.Module, error) {
	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(javascript.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstSyntaxError(file, root)
	}

	c := &converter{file: file, src: src}
	body, err := c.stmts(root)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Span: span(root), Body: body}, nil
}

// firstSyntaxError locates the first ERROR or MISSING node in pre-order.
func firstSyntaxError(file string, root *sitter.Node) error {
	var bad *sitter.Node
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if bad != nil || n == nil {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			bad = n
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	if bad == nil {
		return &SyntaxError{File: file, Pos: Position{Line: 1, Column: 1}, Message: "invalid source"}
	}
	msg := "unexpected input"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %q", bad.Type())
	}
	return &SyntaxError{File: file, Pos: position(bad), Message: msg}
}

func span(n *sitter.Node) ast.Span {
	return ast.Span{Lo: n.StartByte(), Hi: n.EndByte()}
}

func position(n *sitter.Node) Position {
	p := n.StartPoint()
	return Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
