package ast

// FoldFunc maps an expression to its replacement.
type FoldFunc func(Expr) Expr

// FoldChildren returns a copy of e whose direct child expressions have been
// replaced by f(child). Expressions nested inside function bodies are reached
// through FoldStmt, so f sees every outermost expression of those statements.
//
// FoldChildren never calls f on e itself, and never mutates e. Leaf nodes are
// returned as-is. Every expression kind is handled here; a new kind must be
// added both here and in Children.
func FoldChildren(e Expr, f FoldFunc) Expr {
	switch n := e.(type) {
	case *Ident, *Str, *Num, *Bool, *Null, *Regex, *This, *Super, *MetaProp:
		return e
	case *Template:
		cp := *n
		cp.Exprs = foldExprs(n.Exprs, f)
		return &cp
	case *TaggedTemplate:
		cp := *n
		cp.Tag = f(n.Tag)
		cp.Quasi = FoldChildren(n.Quasi, f).(*Template)
		return &cp
	case *Array:
		cp := *n
		cp.Elems = foldExprs(n.Elems, f)
		return &cp
	case *Object:
		cp := *n
		cp.Props = foldProps(n.Props, f)
		return &cp
	case *ArrayPat:
		cp := *n
		cp.Elems = foldExprs(n.Elems, f)
		return &cp
	case *ObjectPat:
		cp := *n
		cp.Props = foldProps(n.Props, f)
		return &cp
	case *AssignPat:
		cp := *n
		cp.Target = f(n.Target)
		cp.Default = f(n.Default)
		return &cp
	case *RestPat:
		cp := *n
		cp.Arg = f(n.Arg)
		return &cp
	case *Class:
		cp := *n
		cp.Super = foldOpt(n.Super, f)
		cp.Members = make([]ClassMember, len(n.Members))
		for i, m := range n.Members {
			if m.Computed {
				m.Key = f(m.Key)
			}
			m.Value = foldOpt(m.Value, f)
			m.Body = foldStmts(m.Body, f)
			cp.Members[i] = m
		}
		return &cp
	case *Fn:
		cp := *n
		cp.Params = foldParams(n.Params, f)
		cp.Body = foldStmts(n.Body, f)
		return &cp
	case *Arrow:
		cp := *n
		cp.Params = foldParams(n.Params, f)
		cp.Body = foldStmts(n.Body, f)
		cp.Expr = foldOpt(n.Expr, f)
		return &cp
	case *Unary:
		cp := *n
		cp.Arg = f(n.Arg)
		return &cp
	case *Update:
		cp := *n
		cp.Arg = f(n.Arg)
		return &cp
	case *Binary:
		cp := *n
		cp.Left = f(n.Left)
		cp.Right = f(n.Right)
		return &cp
	case *Assign:
		cp := *n
		cp.Left = f(n.Left)
		cp.Right = f(n.Right)
		return &cp
	case *Cond:
		cp := *n
		cp.Test = f(n.Test)
		cp.Cons = f(n.Cons)
		cp.Alt = f(n.Alt)
		return &cp
	case *Call:
		cp := *n
		cp.Callee = f(n.Callee)
		cp.Args = foldExprs(n.Args, f)
		return &cp
	case *New:
		cp := *n
		cp.Callee = f(n.Callee)
		cp.Args = foldExprs(n.Args, f)
		return &cp
	case *Member:
		cp := *n
		cp.Object = f(n.Object)
		if n.Computed {
			cp.Property = f(n.Property)
		}
		return &cp
	case *Seq:
		cp := *n
		cp.Exprs = foldExprs(n.Exprs, f)
		return &cp
	case *Paren:
		cp := *n
		cp.Expr = f(n.Expr)
		return &cp
	case *Spread:
		cp := *n
		cp.Arg = f(n.Arg)
		return &cp
	case *Await:
		cp := *n
		cp.Arg = f(n.Arg)
		return &cp
	case *Yield:
		cp := *n
		cp.Arg = foldOpt(n.Arg, f)
		return &cp
	default:
		return e
	}
}

// FoldStmt returns a copy of s with f applied to each outermost expression
// it contains, recursing into nested statements.
func FoldStmt(s Stmt, f FoldFunc) Stmt {
	switch n := s.(type) {
	case *ExprStmt:
		cp := *n
		cp.Expr = f(n.Expr)
		return &cp
	case *VarDecl:
		cp := *n
		cp.Decls = make([]Declarator, len(n.Decls))
		for i, d := range n.Decls {
			d.Pattern = foldOpt(d.Pattern, f)
			d.Init = foldOpt(d.Init, f)
			cp.Decls[i] = d
		}
		return &cp
	case *FnDecl:
		// f sees the declared function itself, so it can decide whether to
		// descend into it.
		cp := *n
		cp.Fn = f(n.Fn).(*Fn)
		return &cp
	case *ClassDecl:
		cp := *n
		cp.Class = f(n.Class).(*Class)
		return &cp
	case *Return:
		cp := *n
		cp.Arg = foldOpt(n.Arg, f)
		return &cp
	case *If:
		cp := *n
		cp.Test = f(n.Test)
		cp.Cons = FoldStmt(n.Cons, f)
		if n.Alt != nil {
			cp.Alt = FoldStmt(n.Alt, f)
		}
		return &cp
	case *Block:
		return foldBlock(n, f)
	case *While:
		cp := *n
		cp.Test = f(n.Test)
		cp.Body = FoldStmt(n.Body, f)
		return &cp
	case *For:
		cp := *n
		if n.Init != nil {
			cp.Init = FoldStmt(n.Init, f)
		}
		cp.Test = foldOpt(n.Test, f)
		cp.Update = foldOpt(n.Update, f)
		cp.Body = FoldStmt(n.Body, f)
		return &cp
	case *Throw:
		cp := *n
		cp.Arg = f(n.Arg)
		return &cp
	case *Try:
		cp := *n
		cp.Block = foldBlock(n.Block, f)
		cp.ParamPattern = foldOpt(n.ParamPattern, f)
		if n.Handler != nil {
			cp.Handler = foldBlock(n.Handler, f)
		}
		if n.Finalizer != nil {
			cp.Finalizer = foldBlock(n.Finalizer, f)
		}
		return &cp
	case *DoWhile:
		cp := *n
		cp.Body = FoldStmt(n.Body, f)
		cp.Test = f(n.Test)
		return &cp
	case *ForIn:
		cp := *n
		cp.Left = f(n.Left)
		cp.Right = f(n.Right)
		cp.Body = FoldStmt(n.Body, f)
		return &cp
	case *Switch:
		cp := *n
		cp.Disc = f(n.Disc)
		cp.Cases = make([]SwitchCase, len(n.Cases))
		for i, c := range n.Cases {
			c.Test = foldOpt(c.Test, f)
			c.Body = foldStmts(c.Body, f)
			cp.Cases[i] = c
		}
		return &cp
	case *Labeled:
		cp := *n
		cp.Body = FoldStmt(n.Body, f)
		return &cp
	case *Export:
		cp := *n
		if n.Decl != nil {
			cp.Decl = FoldStmt(n.Decl, f)
		}
		cp.Expr = foldOpt(n.Expr, f)
		return &cp
	default:
		// Break, Continue, Empty, Debugger and Import hold no expressions.
		return s
	}
}

// FoldModule applies FoldStmt to every top-level statement of m.
func FoldModule(m *Module, f FoldFunc) *Module {
	return &Module{Span: m.Span, Body: foldStmts(m.Body, f)}
}

func foldBlock(b *Block, f FoldFunc) *Block {
	return &Block{Span: b.Span, Body: foldStmts(b.Body, f)}
}

func foldOpt(e Expr, f FoldFunc) Expr {
	if e == nil {
		return nil
	}
	return f(e)
}

func foldExprs(list []Expr, f FoldFunc) []Expr {
	if list == nil {
		return nil
	}
	out := make([]Expr, len(list))
	for i, e := range list {
		out[i] = foldOpt(e, f)
	}
	return out
}

func foldStmts(list []Stmt, f FoldFunc) []Stmt {
	if list == nil {
		return nil
	}
	out := make([]Stmt, len(list))
	for i, s := range list {
		out[i] = FoldStmt(s, f)
	}
	return out
}

func foldParams(list []Param, f FoldFunc) []Param {
	if list == nil {
		return nil
	}
	out := make([]Param, len(list))
	for i, p := range list {
		p.Pattern = foldOpt(p.Pattern, f)
		p.Default = foldOpt(p.Default, f)
		out[i] = p
	}
	return out
}

func foldProps(list []Prop, f FoldFunc) []Prop {
	if list == nil {
		return nil
	}
	out := make([]Prop, len(list))
	for i, p := range list {
		if p.Computed {
			p.Key = f(p.Key)
		}
		p.Value = foldOpt(p.Value, f)
		out[i] = p
	}
	return out
}
