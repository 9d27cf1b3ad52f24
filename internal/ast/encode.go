package ast

import "fmt"

// Encode converts a node into a map[string]any tree suitable for canonical
// JSON serialization. Every map carries "type" and "span"; absent optional
// children are omitted (canonical JSON forbids null) and array holes encode
// as {"type":"Hole"}.
func Encode(n Node) map[string]any {
	m := map[string]any{
		"type": nodeType(n),
		"span": encodeSpan(n.Pos()),
	}

	switch n := n.(type) {
	case *Module:
		m["body"] = encodeStmts(n.Body)
	case *Ident:
		m["name"] = n.Name
	case *Str:
		m["value"] = n.Value
		if n.Raw != "" {
			m["raw"] = n.Raw
		}
	case *Num:
		m["raw"] = n.Raw
	case *Bool:
		m["value"] = n.Value
	case *Regex:
		m["pattern"] = n.Pattern
		m["flags"] = n.Flags
	case *Template:
		quasis := make([]any, len(n.Quasis))
		for i, q := range n.Quasis {
			quasis[i] = q
		}
		m["quasis"] = quasis
		m["exprs"] = encodeExprs(n.Exprs)
	case *Array:
		m["elems"] = encodeExprs(n.Elems)
	case *Object:
		m["props"] = encodeProps(n.Props)
	case *ObjectPat:
		m["props"] = encodeProps(n.Props)
	case *ArrayPat:
		m["elems"] = encodeExprs(n.Elems)
	case *AssignPat:
		m["target"] = Encode(n.Target)
		m["default"] = Encode(n.Default)
	case *RestPat:
		m["arg"] = Encode(n.Arg)
	case *TaggedTemplate:
		m["tag"] = Encode(n.Tag)
		m["quasi"] = Encode(n.Quasi)
	case *MetaProp:
		m["meta"] = n.Meta
		m["prop"] = n.Prop
	case *Class:
		m["name"] = n.Name
		if n.Super != nil {
			m["super"] = Encode(n.Super)
		}
		members := make([]any, len(n.Members))
		for i, mem := range n.Members {
			mm := map[string]any{
				"span":     encodeSpan(mem.Span),
				"kind":     string(mem.Kind),
				"static":   mem.Static,
				"computed": mem.Computed,
			}
			if mem.Key != nil {
				mm["key"] = Encode(mem.Key)
			}
			if mem.Value != nil {
				mm["value"] = Encode(mem.Value)
			}
			if mem.Kind == MemberStaticBlock {
				mm["body"] = encodeStmts(mem.Body)
			}
			members[i] = mm
		}
		m["members"] = members
	case *Fn:
		m["name"] = n.Name
		m["params"] = encodeParams(n.Params)
		m["body"] = encodeStmts(n.Body)
		m["async"] = n.Async
		m["generator"] = n.Generator
	case *Arrow:
		m["params"] = encodeParams(n.Params)
		if n.Expr != nil {
			m["expr"] = Encode(n.Expr)
		} else {
			m["body"] = encodeStmts(n.Body)
		}
		m["async"] = n.Async
	case *Unary:
		m["op"] = string(n.Op)
		m["arg"] = Encode(n.Arg)
	case *Update:
		m["op"] = n.Op
		m["prefix"] = n.Prefix
		m["arg"] = Encode(n.Arg)
	case *Binary:
		m["op"] = string(n.Op)
		m["left"] = Encode(n.Left)
		m["right"] = Encode(n.Right)
	case *Assign:
		m["op"] = n.Op
		m["left"] = Encode(n.Left)
		m["right"] = Encode(n.Right)
	case *Cond:
		m["test"] = Encode(n.Test)
		m["cons"] = Encode(n.Cons)
		m["alt"] = Encode(n.Alt)
	case *Call:
		m["callee"] = Encode(n.Callee)
		m["args"] = encodeExprs(n.Args)
		m["optional"] = n.Optional
	case *New:
		m["callee"] = Encode(n.Callee)
		m["args"] = encodeExprs(n.Args)
	case *Member:
		m["object"] = Encode(n.Object)
		m["property"] = Encode(n.Property)
		m["computed"] = n.Computed
		m["optional"] = n.Optional
	case *Seq:
		m["exprs"] = encodeExprs(n.Exprs)
	case *Paren:
		m["expr"] = Encode(n.Expr)
	case *Spread:
		m["arg"] = Encode(n.Arg)
	case *Await:
		m["arg"] = Encode(n.Arg)
	case *Yield:
		if n.Arg != nil {
			m["arg"] = Encode(n.Arg)
		}
		m["delegate"] = n.Delegate
	case *ExprStmt:
		m["expr"] = Encode(n.Expr)
	case *VarDecl:
		m["kind"] = n.Kind
		decls := make([]any, len(n.Decls))
		for i, d := range n.Decls {
			dm := map[string]any{
				"span": encodeSpan(d.Span),
				"name": d.Name,
			}
			if d.Pattern != nil {
				dm["pattern"] = Encode(d.Pattern)
			}
			if d.Init != nil {
				dm["init"] = Encode(d.Init)
			}
			decls[i] = dm
		}
		m["decls"] = decls
	case *FnDecl:
		m["fn"] = Encode(n.Fn)
	case *ClassDecl:
		m["class"] = Encode(n.Class)
	case *Return:
		if n.Arg != nil {
			m["arg"] = Encode(n.Arg)
		}
	case *If:
		m["test"] = Encode(n.Test)
		m["cons"] = Encode(n.Cons)
		if n.Alt != nil {
			m["alt"] = Encode(n.Alt)
		}
	case *Block:
		m["body"] = encodeStmts(n.Body)
	case *While:
		m["test"] = Encode(n.Test)
		m["body"] = Encode(n.Body)
	case *For:
		if n.Init != nil {
			m["init"] = Encode(n.Init)
		}
		if n.Test != nil {
			m["test"] = Encode(n.Test)
		}
		if n.Update != nil {
			m["update"] = Encode(n.Update)
		}
		m["body"] = Encode(n.Body)
	case *Throw:
		m["arg"] = Encode(n.Arg)
	case *Try:
		m["block"] = Encode(n.Block)
		if n.Handler != nil {
			m["param"] = n.Param
			m["handler"] = Encode(n.Handler)
		}
		if n.ParamPattern != nil {
			m["paramPattern"] = Encode(n.ParamPattern)
		}
		if n.Finalizer != nil {
			m["finalizer"] = Encode(n.Finalizer)
		}
	case *Break:
		m["label"] = n.Label
	case *Continue:
		m["label"] = n.Label
	case *DoWhile:
		m["body"] = Encode(n.Body)
		m["test"] = Encode(n.Test)
	case *ForIn:
		m["kind"] = n.Kind
		m["left"] = Encode(n.Left)
		m["right"] = Encode(n.Right)
		m["body"] = Encode(n.Body)
		m["of"] = n.Of
		m["await"] = n.Await
	case *Switch:
		m["disc"] = Encode(n.Disc)
		cases := make([]any, len(n.Cases))
		for i, c := range n.Cases {
			cm := map[string]any{
				"span": encodeSpan(c.Span),
				"body": encodeStmts(c.Body),
			}
			if c.Test != nil {
				cm["test"] = Encode(c.Test)
			}
			cases[i] = cm
		}
		m["cases"] = cases
	case *Labeled:
		m["label"] = n.Label
		m["body"] = Encode(n.Body)
	case *Import:
		m["default"] = n.Default
		m["namespace"] = n.Namespace
		named := make([]any, len(n.Named))
		for i, spec := range n.Named {
			named[i] = map[string]any{
				"span":     encodeSpan(spec.Span),
				"imported": spec.Imported,
				"local":    spec.Local,
			}
		}
		m["named"] = named
		m["source"] = n.Source
	case *Export:
		m["default"] = n.Default
		if n.Decl != nil {
			m["decl"] = Encode(n.Decl)
		}
		if n.Expr != nil {
			m["expr"] = Encode(n.Expr)
		}
		specs := make([]any, len(n.Specs))
		for i, spec := range n.Specs {
			specs[i] = map[string]any{
				"span":     encodeSpan(spec.Span),
				"local":    spec.Local,
				"exported": spec.Exported,
			}
		}
		m["specs"] = specs
		m["all"] = n.All
		m["namespace"] = n.Namespace
		m["source"] = n.Source
	}
	return m
}

func encodeSpan(s Span) []any {
	return []any{int64(s.Lo), int64(s.Hi)}
}

func encodeProps(list []Prop) []any {
	out := make([]any, len(list))
	for i, p := range list {
		pm := map[string]any{
			"span":      encodeSpan(p.Span),
			"computed":  p.Computed,
			"shorthand": p.Shorthand,
			"spread":    p.Spread,
		}
		if p.Method != "" {
			pm["method"] = string(p.Method)
		}
		if p.Key != nil {
			pm["key"] = Encode(p.Key)
		}
		if p.Value != nil {
			pm["value"] = Encode(p.Value)
		}
		out[i] = pm
	}
	return out
}

// nodeType returns the bare type name, e.g. "Unary" for *Unary.
func nodeType(n Node) string {
	name := fmt.Sprintf("%T", n)
	// %T yields "*ast.Unary"
	const prefix = "*ast."
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		return name[len(prefix):]
	}
	return name
}

func encodeExprs(list []Expr) []any {
	out := make([]any, len(list))
	for i, e := range list {
		if e == nil {
			out[i] = map[string]any{"type": "Hole"}
			continue
		}
		out[i] = Encode(e)
	}
	return out
}

func encodeStmts(list []Stmt) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = Encode(s)
	}
	return out
}

func encodeParams(list []Param) []any {
	out := make([]any, len(list))
	for i, p := range list {
		pm := map[string]any{
			"span": encodeSpan(p.Span),
			"name": p.Name,
			"rest": p.Rest,
		}
		if p.Pattern != nil {
			pm["pattern"] = Encode(p.Pattern)
		}
		if p.Default != nil {
			pm["default"] = Encode(p.Default)
		}
		out[i] = pm
	}
	return out
}
