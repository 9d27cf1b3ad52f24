package ast

// Node is a sealed interface implemented by every tree node.
type Node interface {
	Pos() Span
	astNode()
}

// Expr is a sealed interface over the closed set of expression shapes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a sealed interface over the closed set of statement shapes.
type Stmt interface {
	Node
	stmtNode()
}

// Module is the root of a parsed source file.
type Module struct {
	Span Span
	Body []Stmt
}

func (m *Module) Pos() Span { return m.Span }
func (*Module) astNode() {}
