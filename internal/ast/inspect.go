package ast

// Inspect traverses the tree rooted at node in depth-first pre-order. It
// calls fn(n) for each node; if fn returns false, the children of n are not
// visited. Statements nested in function bodies are traversed too.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, c := range Children(node) {
		Inspect(c, fn)
	}
}

// Children returns the direct child nodes of n in source order. Property
// keys of non-computed members and object properties are included, since
// they are nodes too; nil optional children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}
	addExprs := func(list []Expr) {
		for _, e := range list {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	addStmts := func(list []Stmt) {
		for _, s := range list {
			out = append(out, s)
		}
	}
	addParams := func(list []Param) {
		for _, p := range list {
			if p.Pattern != nil {
				out = append(out, p.Pattern)
			}
			if p.Default != nil {
				out = append(out, p.Default)
			}
		}
	}
	// A shorthand property contributes only its Value, which is the key
	// identifier itself or an AssignPat wrapping it.
	addProps := func(list []Prop) {
		for _, p := range list {
			if p.Key != nil && !p.Shorthand {
				out = append(out, p.Key)
			}
			if p.Value != nil {
				out = append(out, p.Value)
			}
		}
	}

	switch n := n.(type) {
	case *Module:
		addStmts(n.Body)
	case *Template:
		addExprs(n.Exprs)
	case *TaggedTemplate:
		add(n.Tag, n.Quasi)
	case *Array:
		addExprs(n.Elems)
	case *Object:
		addProps(n.Props)
	case *ArrayPat:
		addExprs(n.Elems)
	case *ObjectPat:
		addProps(n.Props)
	case *AssignPat:
		add(n.Target, n.Default)
	case *RestPat:
		add(n.Arg)
	case *Class:
		if n.Super != nil {
			out = append(out, n.Super)
		}
		for _, m := range n.Members {
			if m.Key != nil {
				out = append(out, m.Key)
			}
			if m.Value != nil {
				out = append(out, m.Value)
			}
			addStmts(m.Body)
		}
	case *Fn:
		addParams(n.Params)
		addStmts(n.Body)
	case *Arrow:
		addParams(n.Params)
		addStmts(n.Body)
		if n.Expr != nil {
			out = append(out, n.Expr)
		}
	case *Unary:
		add(n.Arg)
	case *Update:
		add(n.Arg)
	case *Binary:
		add(n.Left, n.Right)
	case *Assign:
		add(n.Left, n.Right)
	case *Cond:
		add(n.Test, n.Cons, n.Alt)
	case *Call:
		add(n.Callee)
		addExprs(n.Args)
	case *New:
		add(n.Callee)
		addExprs(n.Args)
	case *Member:
		add(n.Object, n.Property)
	case *Seq:
		addExprs(n.Exprs)
	case *Paren:
		add(n.Expr)
	case *Spread:
		add(n.Arg)
	case *Await:
		add(n.Arg)
	case *Yield:
		if n.Arg != nil {
			out = append(out, n.Arg)
		}
	case *ExprStmt:
		add(n.Expr)
	case *VarDecl:
		for _, d := range n.Decls {
			if d.Pattern != nil {
				out = append(out, d.Pattern)
			}
			if d.Init != nil {
				out = append(out, d.Init)
			}
		}
	case *FnDecl:
		add(n.Fn)
	case *ClassDecl:
		add(n.Class)
	case *Return:
		if n.Arg != nil {
			out = append(out, n.Arg)
		}
	case *If:
		add(n.Test, n.Cons)
		if n.Alt != nil {
			out = append(out, n.Alt)
		}
	case *Block:
		addStmts(n.Body)
	case *While:
		add(n.Test, n.Body)
	case *For:
		if n.Init != nil {
			out = append(out, n.Init)
		}
		if n.Test != nil {
			out = append(out, n.Test)
		}
		if n.Update != nil {
			out = append(out, n.Update)
		}
		add(n.Body)
	case *Throw:
		add(n.Arg)
	case *Try:
		add(n.Block)
		if n.ParamPattern != nil {
			out = append(out, n.ParamPattern)
		}
		if n.Handler != nil {
			out = append(out, n.Handler)
		}
		if n.Finalizer != nil {
			out = append(out, n.Finalizer)
		}
	case *DoWhile:
		add(n.Body, n.Test)
	case *ForIn:
		add(n.Left, n.Right, n.Body)
	case *Switch:
		add(n.Disc)
		for _, c := range n.Cases {
			if c.Test != nil {
				out = append(out, c.Test)
			}
			addStmts(c.Body)
		}
	case *Labeled:
		add(n.Body)
	case *Export:
		if n.Decl != nil {
			out = append(out, n.Decl)
		}
		if n.Expr != nil {
			out = append(out, n.Expr)
		}
	}
	return out
}

// isNilNode catches typed nil pointers stored in a Node interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *Fn:
		return v == nil
	case *Class:
		return v == nil
	case *Template:
		return v == nil
	}
	return false
}
