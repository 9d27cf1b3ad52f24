// Package ast defines the JavaScript syntax tree consumed and produced by the
// compatibility passes.
//
// This package contains node definitions and generic traversal only. Every
// other internal package imports ast; ast imports nothing internal.
//
// Key design constraints:
//   - Nodes are immutable once built. Passes return new nodes via FoldChildren,
//     FoldStmt and FoldModule instead of mutating in place.
//   - Node, Expr and Stmt are sealed - only types in this package implement them.
//   - Numbers keep their source text (Num.Raw). No float types anywhere.
//   - Every node carries a Span so rewrites can inherit source positions.
package ast
