// Package codegen prints ast trees back to JavaScript source.
//
// Output is deterministic: two-space indentation, one statement per line,
// every statement terminated, and original string and number literals
// reproduced from their raw source text. Parentheses are inserted only where
// precedence requires them, plus wherever the source had a Paren node.
package codegen

import (
	"strings"

	"github.com/roach88/jscompat/internal/ast"
)

// Print renders a module, one top-level statement per line.
func Print(m *ast.Module) string {
	p := &printer{}
	for _, s := range m.Body {
		p.stmt(s)
	}
	return p.b.String()
}

// PrintExpr renders a single expression.
func PrintExpr(e ast.Expr) string {
	p := &printer{}
	p.expr(e, precLowest)
	return p.b.String()
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) write(s string) {
	p.b.WriteString(s)
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.b.WriteString("  ")
	}
}

// stmt prints s on its own line(s) at the current indentation.
func (p *printer) stmt(s ast.Stmt) {
	p.writeIndent()
	p.inlineStmt(s)
	p.write("\n")
}

// inlineStmt prints s without leading indentation or trailing newline, so
// that it can follow `if (...) ` or `else `.
func (p *printer) inlineStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		if needsStmtParens(n.Expr) {
			p.write("(")
			p.expr(n.Expr, precLowest)
			p.write(")")
		} else {
			p.expr(n.Expr, precLowest)
		}
		p.write(";")
	case *ast.VarDecl:
		p.varDecl(n)
		p.write(";")
	case *ast.FnDecl:
		p.fn(n.Fn)
	case *ast.Return:
		p.write("return")
		if n.Arg != nil {
			p.write(" ")
			p.expr(n.Arg, precLowest)
		}
		p.write(";")
	case *ast.If:
		p.write("if (")
		p.expr(n.Test, precLowest)
		p.write(") ")
		p.inlineStmt(n.Cons)
		if n.Alt != nil {
			if _, ok := n.Cons.(*ast.Block); ok {
				p.write(" else ")
			} else {
				p.write("\n")
				p.writeIndent()
				p.write("else ")
			}
			p.inlineStmt(n.Alt)
		}
	case *ast.Block:
		p.block(n.Body)
	case *ast.While:
		p.write("while (")
		p.expr(n.Test, precLowest)
		p.write(") ")
		p.inlineStmt(n.Body)
	case *ast.For:
		p.write("for (")
		switch init := n.Init.(type) {
		case *ast.VarDecl:
			p.varDecl(init)
		case *ast.ExprStmt:
			p.expr(init.Expr, precLowest)
		}
		p.write(";")
		if n.Test != nil {
			p.write(" ")
			p.expr(n.Test, precLowest)
		}
		p.write(";")
		if n.Update != nil {
			p.write(" ")
			p.expr(n.Update, precLowest)
		}
		p.write(") ")
		p.inlineStmt(n.Body)
	case *ast.Throw:
		p.write("throw ")
		p.expr(n.Arg, precLowest)
		p.write(";")
	case *ast.Try:
		p.write("try ")
		p.block(n.Block.Body)
		if n.Handler != nil {
			p.write(" catch ")
			switch {
			case n.ParamPattern != nil:
				p.write("(")
				p.expr(n.ParamPattern, precAssign)
				p.write(") ")
			case n.Param != "":
				p.write("(" + n.Param + ") ")
			}
			p.block(n.Handler.Body)
		}
		if n.Finalizer != nil {
			p.write(" finally ")
			p.block(n.Finalizer.Body)
		}
	case *ast.Break:
		p.write("break")
		if n.Label != "" {
			p.write(" " + n.Label)
		}
		p.write(";")
	case *ast.Continue:
		p.write("continue")
		if n.Label != "" {
			p.write(" " + n.Label)
		}
		p.write(";")
	case *ast.Empty:
		p.write(";")
	case *ast.DoWhile:
		p.write("do ")
		p.inlineStmt(n.Body)
		if _, ok := n.Body.(*ast.Block); ok {
			p.write(" ")
		} else {
			p.write("\n")
			p.writeIndent()
		}
		p.write("while (")
		p.expr(n.Test, precLowest)
		p.write(");")
	case *ast.ForIn:
		p.write("for ")
		if n.Await {
			p.write("await ")
		}
		p.write("(")
		if n.Kind != "" {
			p.write(n.Kind + " ")
		}
		p.expr(n.Left, precPostfix)
		if n.Of {
			p.write(" of ")
			p.expr(n.Right, precAssign)
		} else {
			p.write(" in ")
			p.expr(n.Right, precLowest)
		}
		p.write(") ")
		p.inlineStmt(n.Body)
	case *ast.Switch:
		p.switchStmt(n)
	case *ast.Labeled:
		p.write(n.Label + ": ")
		p.inlineStmt(n.Body)
	case *ast.ClassDecl:
		p.class(n.Class)
	case *ast.Debugger:
		p.write("debugger;")
	case *ast.Import:
		p.importStmt(n)
	case *ast.Export:
		p.exportStmt(n)
	}
}

func (p *printer) switchStmt(n *ast.Switch) {
	p.write("switch (")
	p.expr(n.Disc, precLowest)
	p.write(") ")
	if len(n.Cases) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, c := range n.Cases {
		p.writeIndent()
		if c.Test != nil {
			p.write("case ")
			p.expr(c.Test, precLowest)
			p.write(":\n")
		} else {
			p.write("default:\n")
		}
		p.indent++
		for _, s := range c.Body {
			p.stmt(s)
		}
		p.indent--
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *printer) importStmt(n *ast.Import) {
	var clauses []string
	if n.Default != "" {
		clauses = append(clauses, n.Default)
	}
	if n.Namespace != "" {
		clauses = append(clauses, "* as "+n.Namespace)
	}
	if len(n.Named) > 0 {
		specs := make([]string, len(n.Named))
		for i, spec := range n.Named {
			specs[i] = spec.Imported
			if spec.Local != spec.Imported {
				specs[i] += " as " + spec.Local
			}
		}
		clauses = append(clauses, "{ "+strings.Join(specs, ", ")+" }")
	}

	p.write("import ")
	if len(clauses) > 0 {
		p.write(strings.Join(clauses, ", ") + " from ")
	}
	p.write(quote(n.Source) + ";")
}

func (p *printer) exportStmt(n *ast.Export) {
	p.write("export ")
	if n.Default {
		p.write("default ")
	}
	switch {
	case n.Decl != nil:
		p.inlineStmt(n.Decl)
		return
	case n.Expr != nil:
		p.expr(n.Expr, precAssign)
		p.write(";")
		return
	case n.All:
		p.write("*")
		if n.Namespace != "" {
			p.write(" as " + n.Namespace)
		}
	default:
		specs := make([]string, len(n.Specs))
		for i, spec := range n.Specs {
			specs[i] = spec.Local
			if spec.Exported != spec.Local {
				specs[i] += " as " + spec.Exported
			}
		}
		if len(specs) == 0 {
			p.write("{}")
		} else {
			p.write("{ " + strings.Join(specs, ", ") + " }")
		}
	}
	if n.Source != "" {
		p.write(" from " + quote(n.Source))
	}
	p.write(";")
}

func (p *printer) varDecl(n *ast.VarDecl) {
	p.write(n.Kind + " ")
	for i, d := range n.Decls {
		if i > 0 {
			p.write(", ")
		}
		if d.Pattern != nil {
			p.expr(d.Pattern, precAssign)
		} else {
			p.write(d.Name)
		}
		if d.Init != nil {
			p.write(" = ")
			p.expr(d.Init, precAssign)
		}
	}
}

// block prints a braced statement list; the closing brace is left open for
// a following `else`, `catch` or newline.
func (p *printer) block(body []ast.Stmt) {
	if len(body) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, s := range body {
		p.stmt(s)
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

// needsStmtParens reports whether an expression statement would otherwise
// start with `{`, `function` or `class` and be misread as a block or a
// declaration.
func needsStmtParens(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.Object, *ast.ObjectPat, *ast.Fn, *ast.Class:
			return true
		case *ast.TaggedTemplate:
			e = n.Tag
		case *ast.Binary:
			e = n.Left
		case *ast.Assign:
			e = n.Left
		case *ast.Cond:
			e = n.Test
		case *ast.Call:
			e = n.Callee
		case *ast.Member:
			e = n.Object
		case *ast.Seq:
			e = n.Exprs[0]
		case *ast.Update:
			if n.Prefix {
				return false
			}
			e = n.Arg
		default:
			return false
		}
	}
}
