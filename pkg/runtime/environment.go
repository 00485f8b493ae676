package runtime

import "sort"

// Environment provides lexical scoping for Monkey runtime values.
type Environment struct {
	values map[string]Value
	outer  *Environment
}

// NewEnvironment creates a new environment, optionally nested under outer.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		outer:  outer,
	}
}

// Outer exposes the enclosing scope (nil when global).
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Get retrieves a binding, searching outward through the scope chain. The
// boolean is false when no scope binds name, which is distinct from a name
// bound to null.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set binds name in this scope, shadowing any outer binding, and returns
// value.
func (e *Environment) Set(name string, value Value) Value {
	e.values[name] = value
	return value
}

// Snapshot returns a copy of the bindings local to this scope.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the local bindings in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend returns a new child scope of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
