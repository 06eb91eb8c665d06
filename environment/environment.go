// Package environment implements the lexically scoped name->value frames
// that evaluation runs against.
//
// Grounded on the teacher's scope.Scope (Parent chain, LookUp/Bind), with
// Consts/LetVars/LetTypes and the closure-time Copy() dropped: MIL's `let`
// has no const or type-lock semantics, and spec.md §8.1 requires closures
// to observe later rebindings in their captured frame, which a snapshot
// copy would break. Frames are shared by reference; a child frame's Outer
// pointer never points back at a descendant, so no cycle is possible.
package environment

import "github.com/dariusmocan/interpreter/object"

// Environment is one frame in the scope chain.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a frame with no parent — the global scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a frame nested inside outer, used when a function
// call extends the closure's captured environment with its arguments.
func NewEnclosed(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	return env
}

// Get walks the chain outward from this frame, returning the first match.
func (e *Environment) Get(name string) (object.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		val, ok = e.outer.Get(name)
	}
	return val, ok
}

// Set always writes into this frame — the innermost one — never a parent.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
