package ast

// ExprStmt is an expression evaluated for its effects.
type ExprStmt struct {
	Span Span
	Expr Expr
}

// VarDecl is a `var`, `let` or `const` declaration.
type VarDecl struct {
	Span  Span
	Kind  string
	Decls []Declarator
}

// Declarator is one `name = init` binding of a VarDecl. Init may be nil.
// A destructuring declarator has an empty Name and its target in Pattern.
type Declarator struct {
	Span    Span
	Name    string
	Pattern Expr
	Init    Expr
}

// FnDecl is a function declaration.
type FnDecl struct {
	Span Span
	Fn   *Fn
}

// Return is `return arg;`. Arg may be nil.
type Return struct {
	Span Span
	Arg  Expr
}

// If is `if (test) cons else alt`. Alt may be nil.
type If struct {
	Span Span
	Test Expr
	Cons Stmt
	Alt  Stmt
}

// Block is a braced statement list.
type Block struct {
	Span Span
	Body []Stmt
}

// While is `while (test) body`.
type While struct {
	Span Span
	Test Expr
	Body Stmt
}

// For is a classic three-clause for loop. Init is a *VarDecl, an *ExprStmt or
// nil; Test and Update may be nil.
type For struct {
	Span   Span
	Init   Stmt
	Test   Expr
	Update Expr
	Body   Stmt
}

// Throw is `throw arg;`.
type Throw struct {
	Span Span
	Arg  Expr
}

// Try is try/catch/finally. Handler and Finalizer may be nil; Param is empty
// for an optional catch binding or a destructured one (ParamPattern).
type Try struct {
	Span         Span
	Block        *Block
	Param        string
	ParamPattern Expr
	Handler      *Block
	Finalizer    *Block
}

// Break is `break label;`.
type Break struct {
	Span  Span
	Label string
}

// Continue is `continue label;`.
type Continue struct {
	Span  Span
	Label string
}

// Empty is a lone `;`.
type Empty struct {
	Span Span
}

// DoWhile is `do body while (test);`.
type DoWhile struct {
	Span Span
	Body Stmt
	Test Expr
}

// ForIn is `for (left in right)` or, with Of, `for (left of right)`. Kind
// is "var", "let" or "const" when Left is declared in the header, empty
// when Left is an assignment target. Await marks `for await`.
type ForIn struct {
	Span  Span
	Kind  string
	Left  Expr
	Right Expr
	Body  Stmt
	Of    bool
	Await bool
}

// Switch is `switch (disc) { cases }`.
type Switch struct {
	Span  Span
	Disc  Expr
	Cases []SwitchCase
}

// SwitchCase is `case test:` or, with a nil Test, `default:`.
type SwitchCase struct {
	Span Span
	Test Expr
	Body []Stmt
}

// Labeled is `label: body`.
type Labeled struct {
	Span  Span
	Label string
	Body  Stmt
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	Span  Span
	Class *Class
}

// Debugger is the `debugger;` statement.
type Debugger struct {
	Span Span
}

// Import is an import declaration:
//
//	import Default, * as Namespace from "Source";
//	import Default, {Imported as Local} from "Source";
//	import "Source";
//
// Source is the decoded module specifier.
type Import struct {
	Span      Span
	Default   string
	Namespace string
	Named     []ImportSpec
	Source    string
}

// ImportSpec is one `Imported as Local` entry. Local equals Imported when
// there is no alias.
type ImportSpec struct {
	Span     Span
	Imported string
	Local    string
}

// Export is an export declaration. Exactly one form is used:
//   - Decl                       export var/function/class ...
//   - Default with Decl or Expr  export default ...
//   - Specs                      export {a as b} [from "Source"]
//   - All                        export * [as Namespace] from "Source"
type Export struct {
	Span      Span
	Default   bool
	Decl      Stmt
	Expr      Expr
	Specs     []ExportSpec
	All       bool
	Namespace string
	Source    string
}

// ExportSpec is one `Local as Exported` entry.
type ExportSpec struct {
	Span     Span
	Local    string
	Exported string
}

func (s *ExprStmt) Pos() Span { return s.Span }
func (s *VarDecl) Pos() Span { return s.Span }
func (s *FnDecl) Pos() Span { return s.Span }
func (s *Return) Pos() Span { return s.Span }
func (s *If) Pos() Span { return s.Span }
func (s *Block) Pos() Span { return s.Span }
func (s *While) Pos() Span { return s.Span }
func (s *For) Pos() Span { return s.Span }
func (s *Throw) Pos() Span { return s.Span }
func (s *Try) Pos() Span { return s.Span }
func (s *Break) Pos() Span { return s.Span }
func (s *Continue) Pos() Span { return s.Span }
func (s *Empty) Pos() Span { return s.Span }
func (s *Import) Pos() Span { return s.Span }
func (s *DoWhile) Pos() Span { return s.Span }
func (s *ForIn) Pos() Span { return s.Span }
func (s *Switch) Pos() Span { return s.Span }
func (s *Labeled) Pos() Span { return s.Span }
func (s *ClassDecl) Pos() Span { return s.Span }
func (s *Debugger) Pos() Span { return s.Span }
func (s *Export) Pos() Span { return s.Span }

func (*ExprStmt) astNode() {}
func (*VarDecl) astNode() {}
func (*FnDecl) astNode() {}
func (*Return) astNode() {}
func (*If) astNode() {}
func (*Block) astNode() {}
func (*While) astNode() {}
func (*For) astNode() {}
func (*Throw) astNode() {}
func (*Try) astNode() {}
func (*Break) astNode() {}
func (*Continue) astNode() {}
func (*Empty) astNode() {}
func (*Import) astNode() {}
func (*DoWhile) astNode() {}
func (*ForIn) astNode() {}
func (*Switch) astNode() {}
func (*Labeled) astNode() {}
func (*ClassDecl) astNode() {}
func (*Debugger) astNode() {}
func (*Export) astNode() {}

func (*ExprStmt) stmtNode() {}
func (*VarDecl) stmtNode() {}
func (*FnDecl) stmtNode() {}
func (*Return) stmtNode() {}
func (*If) stmtNode() {}
func (*Block) stmtNode() {}
func (*While) stmtNode() {}
func (*For) stmtNode() {}
func (*Throw) stmtNode() {}
func (*Try) stmtNode() {}
func (*Break) stmtNode() {}
func (*Continue) stmtNode() {}
func (*Empty) stmtNode() {}
func (*Import) stmtNode() {}
func (*DoWhile) stmtNode() {}
func (*ForIn) stmtNode() {}
func (*Switch) stmtNode() {}
func (*Labeled) stmtNode() {}
func (*ClassDecl) stmtNode() {}
func (*Debugger) stmtNode() {}
func (*Export) stmtNode() {}
