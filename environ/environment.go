/*
File    : lox/environ/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environ implements the lexical environment chain values are
// bound in. It is grounded on the teacher's scope.Scope — a name->value
// map plus a parent pointer, with the same LookUp/Bind/Assign method
// triplet shape — stripped of GoMix's const/let/type bookkeeping (Lox
// has exactly one, always-mutable, untyped `var` declaration) and
// extended with the depth-indexed GetAt/AssignAt pair the resolver's
// side table requires (orig §4.4: "read/write at the d-th ancestor...
// no chain walk beyond that depth").
//
// Unlike scope.Scope.Copy — which GoMix's closures use to snapshot a
// scope by value — a Lox closure captures its defining Environment by
// pointer, never by copy: orig §5 requires environments to be shared,
// not duplicated, so that a counter closure's mutations are visible on
// every subsequent call. Go's garbage collector supplies the shared-
// ownership lifetime orig §9 calls for; no refcounting is implemented.
package environ

import "fmt"

// Environment is a single lexical frame: a set of name->value bindings,
// plus an optional link to the enclosing frame. A nil Parent marks the
// global frame.
type Environment struct {
	values map[string]interface{}
	Parent *Environment
}

// New creates a frame enclosed by parent. Pass nil to create the global
// frame.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Parent: parent}
}

// Define creates or overwrites a binding in this frame only. At global
// scope a redeclaration simply overwrites the previous value (orig §3);
// non-global redeclaration is rejected earlier, by the resolver, so
// Define itself never needs to check for a preexisting binding.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name by walking the chain outward from this frame. It is
// only ever used for a reference the resolver left out of its side
// table, i.e. a global.
func (e *Environment) Get(name string) (interface{}, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign rewrites an existing binding, searching outward from this
// frame for the nearest frame that already declares name. It reports
// false without modifying anything if name is undeclared anywhere in
// the chain.
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return false
}

// ancestor walks exactly distance frames outward. The interpreter only
// ever calls this with a distance the resolver computed and verified
// against the program, so it panics (rather than returning an error) if
// the chain runs out early — that would mean the resolver and
// interpreter have desynchronized, a programming error, not a user one.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.Parent == nil {
			panic(fmt.Sprintf("environ: no ancestor at distance %d", distance))
		}
		env = env.Parent
	}
	return env
}

// GetAt reads name directly from the frame `distance` links out,
// skipping the chain walk Get would otherwise perform. The interpreter
// uses this for every reference the resolver recorded a depth for.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name directly into the frame `distance` links out, the
// assignment counterpart to GetAt.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}
