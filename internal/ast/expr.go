package ast

// Ident is an identifier reference, e.g. `window`.
type Ident struct {
	Span Span
	Name string
}

// Str is a string literal. Value is the decoded string, Raw the source text
// including quotes. Raw is empty for synthesized literals.
type Str struct {
	Span  Span
	Value string
	Raw   string
}

// Num is a numeric literal kept as source text (no floats in the tree).
type Num struct {
	Span Span
	Raw  string
}

// Bool is `true` or `false`.
type Bool struct {
	Span  Span
	Value bool
}

// Null is the `null` literal.
type Null struct {
	Span Span
}

// Regex is a regular expression literal `/Pattern/Flags`.
type Regex struct {
	Span    Span
	Pattern string
	Flags   string
}

// This is the `this` keyword.
type This struct {
	Span Span
}

// Super is the `super` keyword.
type Super struct {
	Span Span
}

// Template is an untagged template literal. Quasis holds the raw text chunks;
// len(Quasis) == len(Exprs)+1.
type Template struct {
	Span   Span
	Quasis []string
	Exprs  []Expr
}

// TaggedTemplate is tag`quasi`.
type TaggedTemplate struct {
	Span  Span
	Tag   Expr
	Quasi *Template
}

// MetaProp is `new.target` or `import.meta`.
type MetaProp struct {
	Span Span
	Meta string
	Prop string
}

// Array is an array literal. A nil element is a hole (`[, a]`).
type Array struct {
	Span  Span
	Elems []Expr
}

// Object is an object literal.
type Object struct {
	Span  Span
	Props []Prop
}

// Prop is one member of an object literal or object pattern.
//   - key: value            Key, Value set
//   - [key]: value          Computed
//   - key                   Shorthand (Value is the same Ident as Key)
//   - key = def             Shorthand in a pattern (Value is an *AssignPat)
//   - key(params) {}        Method is MemberMethod, MemberGet or MemberSet
//     and Value is an *Fn
//   - ...value              Spread (Key nil)
type Prop struct {
	Span      Span
	Key       Expr
	Value     Expr
	Computed  bool
	Shorthand bool
	Spread    bool
	Method    MemberKind
}

// Param is a function parameter with optional default or rest marker. A
// destructuring parameter has an empty Name and its target in Pattern.
type Param struct {
	Span    Span
	Name    string
	Pattern Expr
	Default Expr
	Rest    bool
}

// Fn is a function expression. FnDecl wraps it for declarations.
type Fn struct {
	Span      Span
	Name      string
	Params    []Param
	Body      []Stmt
	Async     bool
	Generator bool
}

// Arrow is an arrow function. Exactly one of Body or Expr is used: Expr for
// concise bodies, Body for block bodies.
type Arrow struct {
	Span   Span
	Params []Param
	Body   []Stmt
	Expr   Expr
	Async  bool
}

// Unary is a prefix operator expression, e.g. `typeof x`.
type Unary struct {
	Span Span
	Op   UnaryOp
	Arg  Expr
}

// Update is `++x`, `x--` and friends.
type Update struct {
	Span   Span
	Op     string
	Prefix bool
	Arg    Expr
}

// Binary is an infix operator expression, including logical operators.
type Binary struct {
	Span  Span
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Assign is `left op right` where op is `=` or a compound assignment.
type Assign struct {
	Span  Span
	Op    string
	Left  Expr
	Right Expr
}

// Cond is `test ? cons : alt`.
type Cond struct {
	Span Span
	Test Expr
	Cons Expr
	Alt  Expr
}

// Call is a call expression. Optional marks `callee?.(args)`.
type Call struct {
	Span     Span
	Callee   Expr
	Args     []Expr
	Optional bool
}

// New is `new Callee(args)`.
type New struct {
	Span   Span
	Callee Expr
	Args   []Expr
}

// Member is `object.property` or `object[property]` (Computed).
// For non-computed access Property is an *Ident.
type Member struct {
	Span     Span
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

// Seq is a comma-separated expression sequence.
type Seq struct {
	Span  Span
	Exprs []Expr
}

// Paren is a parenthesized expression as written in source.
type Paren struct {
	Span Span
	Expr Expr
}

// Spread is `...arg` in call arguments and array literals.
type Spread struct {
	Span Span
	Arg  Expr
}

// Await is `await arg`.
type Await struct {
	Span Span
	Arg  Expr
}

// Yield is `yield arg` or `yield* arg`. Arg may be nil.
type Yield struct {
	Span     Span
	Arg      Expr
	Delegate bool
}

func (e *Ident) Pos() Span { return e.Span }
func (e *Str) Pos() Span { return e.Span }
func (e *Num) Pos() Span { return e.Span }
func (e *Bool) Pos() Span { return e.Span }
func (e *Null) Pos() Span { return e.Span }
func (e *Regex) Pos() Span { return e.Span }
func (e *This) Pos() Span { return e.Span }
func (e *Super) Pos() Span { return e.Span }
func (e *Template) Pos() Span { return e.Span }
func (e *Array) Pos() Span { return e.Span }
func (e *Object) Pos() Span { return e.Span }
func (e *Fn) Pos() Span { return e.Span }
func (e *Arrow) Pos() Span { return e.Span }
func (e *Unary) Pos() Span { return e.Span }
func (e *Update) Pos() Span { return e.Span }
func (e *Binary) Pos() Span { return e.Span }
func (e *Assign) Pos() Span { return e.Span }
func (e *Cond) Pos() Span { return e.Span }
func (e *Call) Pos() Span { return e.Span }
func (e *New) Pos() Span { return e.Span }
func (e *Member) Pos() Span { return e.Span }
func (e *Seq) Pos() Span { return e.Span }
func (e *Paren) Pos() Span { return e.Span }
func (e *Spread) Pos() Span { return e.Span }
func (e *Await) Pos() Span { return e.Span }
func (e *Yield) Pos() Span { return e.Span }
func (e *TaggedTemplate) Pos() Span { return e.Span }
func (e *MetaProp) Pos() Span { return e.Span }
func (e *Class) Pos() Span { return e.Span }
func (e *ArrayPat) Pos() Span { return e.Span }
func (e *ObjectPat) Pos() Span { return e.Span }
func (e *AssignPat) Pos() Span { return e.Span }
func (e *RestPat) Pos() Span { return e.Span }

func (*Ident) astNode() {}
func (*Str) astNode() {}
func (*Num) astNode() {}
func (*Bool) astNode() {}
func (*Null) astNode() {}
func (*Regex) astNode() {}
func (*This) astNode() {}
func (*Super) astNode() {}
func (*Template) astNode() {}
func (*Array) astNode() {}
func (*Object) astNode() {}
func (*Fn) astNode() {}
func (*Arrow) astNode() {}
func (*Unary) astNode() {}
func (*Update) astNode() {}
func (*Binary) astNode() {}
func (*Assign) astNode() {}
func (*Cond) astNode() {}
func (*Call) astNode() {}
func (*New) astNode() {}
func (*Member) astNode() {}
func (*Seq) astNode() {}
func (*Paren) astNode() {}
func (*Spread) astNode() {}
func (*Await) astNode() {}
func (*Yield) astNode() {}
func (*TaggedTemplate) astNode() {}
func (*MetaProp) astNode() {}
func (*Class) astNode() {}
func (*ArrayPat) astNode() {}
func (*ObjectPat) astNode() {}
func (*AssignPat) astNode() {}
func (*RestPat) astNode() {}

func (*Ident) exprNode() {}
func (*Str) exprNode() {}
func (*Num) exprNode() {}
func (*Bool) exprNode() {}
func (*Null) exprNode() {}
func (*Regex) exprNode() {}
func (*This) exprNode() {}
func (*Super) exprNode() {}
func (*Template) exprNode() {}
func (*Array) exprNode() {}
func (*Object) exprNode() {}
func (*Fn) exprNode() {}
func (*Arrow) exprNode() {}
func (*Unary) exprNode() {}
func (*Update) exprNode() {}
func (*Binary) exprNode() {}
func (*Assign) exprNode() {}
func (*Cond) exprNode() {}
func (*Call) exprNode() {}
func (*New) exprNode() {}
func (*Member) exprNode() {}
func (*Seq) exprNode() {}
func (*Paren) exprNode() {}
func (*Spread) exprNode() {}
func (*Await) exprNode() {}
func (*Yield) exprNode() {}
func (*TaggedTemplate) exprNode() {}
func (*MetaProp) exprNode() {}
func (*Class) exprNode() {}
func (*ArrayPat) exprNode() {}
func (*ObjectPat) exprNode() {}
func (*AssignPat) exprNode() {}
func (*RestPat) exprNode() {}
