package ast

import "fmt"

// Span is a half-open byte range [Lo, Hi) into the original source.
type Span struct {
	Lo uint32 `json:"lo"`
	Hi uint32 `json:"hi"`
}

// DummySpan marks synthesized nodes that have no source location.
var DummySpan = Span{}

// IsDummy reports whether the span carries no source location.
func (s Span) IsDummy() bool {
	return s.Lo == 0 && s.Hi == 0
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}
