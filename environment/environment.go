/*
Package environment implements Mrya's lexically nested scope chain (spec §3
Environments), grounded on the teacher's scope.Scope (LookUp/Bind/Assign
chain-walking). Each binding lives in a Box — a mutable cell carrying the
value plus its const/type metadata — rather than a bare map entry, per
spec's Box model.
*/
package environment

import "github.com/mrya-lang/mrya/values"

// Box is a mutable storage cell binding a single name in a scope.
type Box struct {
	Value    values.Value
	IsConst  bool
	TypeAnno string // "" means untyped
}

// Environment is one link in the lexical scope chain. Lookup walks outward;
// Define always creates in the innermost scope; Assign mutates the nearest
// enclosing box bearing the name (spec §3).
type Environment struct {
	vars   map[string]*Box
	parent *Environment
}

func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]*Box), parent: parent}
}

// Define creates a new binding in this scope, replacing any existing box of
// the same name defined directly in this scope (shadowing outer scopes is
// always allowed; redeclaring within the same scope simply rebinds).
func (e *Environment) Define(name string, v values.Value, isConst bool, typeAnno string) {
	e.vars[name] = &Box{Value: v, IsConst: isConst, TypeAnno: typeAnno}
}

// DefineBox installs an already-constructed box directly, used when a
// native module or the loader needs to seed bindings in bulk.
func (e *Environment) DefineBox(name string, box *Box) {
	e.vars[name] = box
}

// Lookup walks outward through the scope chain for name.
func (e *Environment) Lookup(name string) (values.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if box, ok := env.vars[name]; ok {
			return box.Value, true
		}
	}
	return nil, false
}

// LookupBox returns the box itself (not just its value), walking outward.
func (e *Environment) LookupBox(name string) (*Box, bool) {
	for env := e; env != nil; env = env.parent {
		if box, ok := env.vars[name]; ok {
			return box, true
		}
	}
	return nil, false
}

// Assign mutates the value of the nearest enclosing box bearing name. It
// reports whether the name was found and whether that box is const; a const
// box is left unchanged, and the caller turns that report into the const-law
// error (spec §8).
func (e *Environment) Assign(name string, v values.Value) (found bool, isConst bool) {
	box, ok := e.LookupBox(name)
	if !ok {
		return false, false
	}
	if box.IsConst {
		return true, true
	}
	box.Value = v
	return true, false
}

// Names reports every name bound directly in this scope (not ancestors),
// used by the module loader to populate a module's member map from a
// file's top-level environment (spec §4.5).
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	return names
}

func (e *Environment) Parent() *Environment { return e.parent }
