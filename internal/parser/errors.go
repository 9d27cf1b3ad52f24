package parser

import "fmt"

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SyntaxError reports source that tree-sitter could not parse cleanly.
type SyntaxError struct {
	File    string
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.File, e.Pos.Line, e.Pos.Column, e.Message)
}

// UnsupportedError reports valid JavaScript that the tree does not model,
// e.g. classes or destructuring patterns.
type UnsupportedError struct {
	File string
	Pos  Position
	Kind string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unsupported syntax: %s", e.File, e.Pos.Line, e.Pos.Column, e.Kind)
}
