package ast

// ArrayPat is a destructuring target `[a, , ...rest]`. A nil element is a
// hole.
type ArrayPat struct {
	Span  Span
	Elems []Expr
}

// ObjectPat is a destructuring target `{a, b: c, ...rest}`. Props follow
// the Prop layout of object literals; Method is never set.
type ObjectPat struct {
	Span  Span
	Props []Prop
}

// AssignPat is a target with a default value, `target = def`.
type AssignPat struct {
	Span    Span
	Target  Expr
	Default Expr
}

// RestPat is `...arg` inside an array pattern.
type RestPat struct {
	Span Span
	Arg  Expr
}
