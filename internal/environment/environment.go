// Package environment implements BMath's lexical scope chain.
//
// Following the teacher's split (internal/interp/runtime/environment.go), the
// Environment here stores a minimal local Value interface rather than
// importing the concrete value package directly — the concrete runtime
// values (internal/value) satisfy this interface by duck typing. That keeps
// the dependency one-directional (value depends on environment, for
// Closure's captured scope) and lets Environment stay a small, reusable
// scope chain with no knowledge of BMath's specific value kinds.
package environment

import "fmt"

// Value is the minimal capability an Environment needs from anything it
// stores: a human-readable rendering. BMath's concrete value.Value
// implementations satisfy this automatically.
type Value interface {
	String() string
}

// Environment is a lexical scope frame: a flat name→Value map plus an
// optional parent. Lookup walks outward through parents; assignment updates
// the nearest existing binding, or the current frame if isLocal/none exists.
type Environment struct {
	store    map[string]Value
	outer    *Environment
	reserved map[string]bool
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosed creates a child scope parented at outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Outer returns the parent environment, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// Get looks up name, walking outward through parent scopes.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetLocal looks up name in this frame only, without consulting parents.
func (e *Environment) GetLocal(name string) (Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Has reports whether name is bound anywhere in the scope chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Define binds name in this frame, overwriting any existing local binding.
// Used for `local` assignment and for parameter/function binding.
func (e *Environment) Define(name string, v Value) {
	e.store[name] = v
}

// Set implements non-local assignment: it updates the nearest existing
// binding of name in the scope chain, or creates it in the current frame if
// no binding exists anywhere.
func (e *Environment) Set(name string, v Value) {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			env.store[name] = v
			return
		}
	}
	e.store[name] = v
}

// MarkReserved flags name as a stdlib/global reserved identifier on this
// (expected to be the root) environment. Reserved names may not be
// reassigned by a non-local assignment from any scope, the root included;
// the interpreter checks this through IsReservedAtRoot, Set does not.
func (e *Environment) MarkReserved(name string) {
	if e.reserved == nil {
		e.reserved = make(map[string]bool)
	}
	e.reserved[name] = true
}

// IsReservedAtRoot reports whether name is reserved at the root of this
// environment's chain.
func (e *Environment) IsReservedAtRoot(name string) bool {
	root := e
	for root.outer != nil {
		root = root.outer
	}
	return root.reserved != nil && root.reserved[name]
}

// Root returns the outermost environment in the chain.
func (e *Environment) Root() *Environment {
	root := e
	for root.outer != nil {
		root = root.outer
	}
	return root
}

// IsRoot reports whether e has no parent.
func (e *Environment) IsRoot() bool { return e.outer == nil }

// FindOwner returns the frame in the chain (starting at e) that actually
// holds name's nearest binding, or nil if name is unbound anywhere. This is
// what Set would update; callers use it to detect a non-local assignment
// about to overwrite a reserved root binding.
func (e *Environment) FindOwner(name string) *Environment {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			return env
		}
	}
	return nil
}

// Size returns the number of bindings in this frame only.
func (e *Environment) Size() int { return len(e.store) }

// Range calls fn for every binding in this frame only, in unspecified order.
func (e *Environment) Range(fn func(name string, v Value)) {
	for name, v := range e.store {
		fn(name, v)
	}
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment(%d bindings)", len(e.store))
}
