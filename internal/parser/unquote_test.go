package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`""`, ""},
		{`'abc'`, "abc"},
		{`"it's"`, "it's"},
		{`'it\'s'`, "it's"},
		{`"a\\b"`, `a\b`},
		{`"\t\r\b\f\v\0"`, "\t\r\b\f\v\x00"},
		{`"\x41"`, "A"},
		{`"\xZZ"`, "xZZ"},
		{`"\u0041"`, "A"},
		{`"\u{41}"`, "A"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\q"`, "q"},
		{"\"a\\\nb\"", "ab"},
		{"\"a\\\r\nb\"", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, unquote(tt.raw))
		})
	}
}
