// Package scope implements the environment chain the evaluator walks to
// resolve and rebind variables.
package scope

import "github.com/PaoloGonzalez776/V-Code/values"

// Scope is one frame of the environment chain: a set of bindings plus a
// link to the enclosing frame. V-Code has only one binding form (`var`),
// so unlike a richer language's environment this tracks nothing besides
// the values themselves.
type Scope struct {
	vars   map[string]values.Value
	Parent *Scope
}

// New creates an empty Scope with the given parent. parent == nil marks
// the global frame.
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]values.Value), Parent: parent}
}

// Lookup searches this frame and, failing that, every enclosing frame in
// turn for name, returning its value and whether it was found.
func (s *Scope) Lookup(name string) (values.Value, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Bind introduces or overwrites name in the current frame only. This is
// `var`'s semantics: it always shadows, never walks the chain.
func (s *Scope) Bind(name string, v values.Value) {
	s.vars[name] = v
}

// Assign rebinds name in place in the nearest frame (this one or an
// ancestor) that already defines it, returning false if no frame does.
func (s *Scope) Assign(name string, v values.Value) bool {
	if _, ok := s.vars[name]; ok {
		s.vars[name] = v
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, v)
	}
	return false
}
