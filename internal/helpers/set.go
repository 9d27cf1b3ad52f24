package helpers

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/roach88/jscompat/internal/ast"
)

// Set records which helpers one module references and how often, and
// picks a binding for each helper that does not collide with the module's
// own names.
//
// Thread-safety: Set is safe for concurrent use.
type Set struct {
	mu       sync.Mutex
	uses     map[string]int    // category -> call sites
	names    map[string]string // category -> chosen binding
	reserved map[string]bool
}

// NewSet returns an empty set with no reserved names.
func NewSet() *Set {
	return &Set{
		uses:     make(map[string]int),
		names:    make(map[string]string),
		reserved: make(map[string]bool),
	}
}

// NewSetFor returns an empty set that avoids every name declared or
// referenced in m.
func NewSetFor(m *ast.Module) *Set {
	s := NewSet()
	for name := range Names(m) {
		s.reserved[name] = true
	}
	return s
}

// Name returns the binding used for the helper of category: the helper's
// own name, or the first of name2, name3, ... not reserved by the module.
// The choice is fixed on first call.
//
// Panics if category is unknown. Passes request fixed categories, so this
// is a programming error.
func (s *Set) Name(category string) string {
	h := mustLookup(category)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nameLocked(h)
}

func (s *Set) nameLocked(h Helper) string {
	if name, ok := s.names[h.Category]; ok {
		return name
	}
	name := h.Name
	for i := 2; s.reserved[name]; i++ {
		name = h.Name + strconv.Itoa(i)
	}
	s.reserved[name] = true
	s.names[h.Category] = name
	return name
}

// Ref records a use of the helper for category and returns an identifier
// bound to it, carrying span.
//
// Panics if category is unknown.
func (s *Set) Ref(span ast.Span, category string) ast.Expr {
	h := mustLookup(category)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uses[category]++
	return &ast.Ident{Span: span, Name: s.nameLocked(h)}
}

func mustLookup(category string) Helper {
	h, ok := Lookup(category)
	if !ok {
		panic(fmt.Sprintf("helpers: unknown helper category %q", category))
	}
	return h
}

// Used returns the categories referenced at least once, sorted.
func (s *Set) Used() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.uses))
	for category := range s.uses {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Uses returns the number of call sites referencing category.
func (s *Set) Uses(category string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uses[category]
}

// Count returns the total number of helper call sites.
func (s *Set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.uses {
		total += n
	}
	return total
}
