package ast

// MemberKind distinguishes the members of classes and object literals.
type MemberKind string

const (
	MemberMethod      MemberKind = "method"
	MemberGet         MemberKind = "get"
	MemberSet         MemberKind = "set"
	MemberField       MemberKind = "field"
	MemberStaticBlock MemberKind = "static-block"
)

// Class is a class expression. ClassDecl wraps it for declarations.
// Super is nil without an extends clause.
type Class struct {
	Span    Span
	Name    string
	Super   Expr
	Members []ClassMember
}

// ClassMember is one element of a class body.
//   - method, get, set      Key and Value (an *Fn) set
//   - field                 Key set; Value is the initializer or nil
//   - static-block          Body set; Key and Value nil
//
// Private names (#x) are kept as *Ident keys.
type ClassMember struct {
	Span     Span
	Kind     MemberKind
	Static   bool
	Key      Expr
	Computed bool
	Value    Expr
	Body     []Stmt
}
