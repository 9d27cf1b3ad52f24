package codegen

import (
	"sort"
	"strings"

	"github.com/roach88/jscompat/internal/ast"
)

// edit replaces src[lo:hi] with text. An insertion has lo == hi.
type edit struct {
	lo, hi uint32
	text   string
}

// Patch renders m by editing src in place instead of reprinting, so that
// comments and formatting outside rewritten expressions survive. m must
// be derived from the parse of src by span-preserving rewrites: the only
// changes Patch reproduces are
//
//   - calls whose identifier callee carries the call's own span (a
//     rewritten `op arg` becomes `callee(arg)`), and
//   - prelude, printed and inserted after the first at statements of m.
//
// The second result is false when the rewrites cannot be located in src;
// callers fall back to Print.
func Patch(src []byte, m *ast.Module, prelude []ast.Stmt, at int) (string, bool) {
	var edits []edit
	ok := true

	ast.Inspect(m, func(n ast.Node) bool {
		call, isCall := n.(*ast.Call)
		if !isCall || !isRewrittenCall(call) {
			return true
		}
		arg := call.Args[0].Pos()
		if arg.IsDummy() || arg.Lo < call.Span.Lo || arg.Hi != call.Span.Hi {
			ok = false
			return false
		}
		name := call.Callee.(*ast.Ident).Name
		edits = append(edits,
			edit{lo: call.Span.Lo, hi: arg.Lo, text: name + "("},
			edit{lo: call.Span.Hi, hi: call.Span.Hi, text: ")"},
		)
		return true
	})
	if !ok {
		return "", false
	}

	if len(prelude) > 0 {
		text := Print(&ast.Module{Body: prelude})
		var pos uint32
		if at > 0 {
			if at > len(m.Body) {
				return "", false
			}
			pos = m.Body[at-1].Pos().Hi
			text = "\n" + strings.TrimSuffix(text, "\n")
		}
		edits = append(edits, edit{lo: pos, hi: pos, text: text})
	}

	return apply(src, edits)
}

// isRewrittenCall matches the single-argument call a rewrite synthesizes:
// its callee identifier inherits the span of the replaced expression, which
// a parsed call never does.
func isRewrittenCall(c *ast.Call) bool {
	id, ok := c.Callee.(*ast.Ident)
	return ok && len(c.Args) == 1 && !c.Span.IsDummy() && id.Span == c.Span
}

// apply splices edits into src. Insertions sort before replacements that
// start at the same offset; overlapping replacements are rejected.
func apply(src []byte, edits []edit) (string, bool) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].lo != edits[j].lo {
			return edits[i].lo < edits[j].lo
		}
		return edits[i].hi-edits[i].lo < edits[j].hi-edits[j].lo
	})

	var b strings.Builder
	b.Grow(len(src) + 64)
	var cur uint32
	for _, e := range edits {
		if e.lo < cur || int(e.hi) > len(src) {
			return "", false
		}
		b.Write(src[cur:e.lo])
		b.WriteString(e.text)
		cur = e.hi
	}
	b.Write(src[cur:])
	return b.String(), true
}
