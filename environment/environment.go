/*
File    : monkeymix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexical scope chain that backs
// variable binding and closures: a flat name-to-value map per scope, with
// lookup walking outward through enclosing scopes until it either finds
// the name or runs out of parents.
package environment

import "github.com/akashmaji946/monkeymix/object"

// Environment is one scope in the chain. There is no notion of constness
// and no assignment statement: bindings are created by a let statement or
// a parameter binding, a later let of the same name in the same scope
// replaces the value, and nothing is ever removed, so the store only ever
// grows.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// NewEnvironment creates a root scope with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosedEnvironment creates a scope nested inside outer, used for
// function call frames. Block bodies do not get their own scope.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this scope, then walks outward through enclosing
// scopes until it is found or the chain is exhausted.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this scope. It never touches an enclosing
// scope, so a let inside a function body cannot clobber an outer binding
// of the same name — it shadows it for the remainder of this scope.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
