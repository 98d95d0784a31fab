/*
Package values defines Mrya's runtime tagged value representation (spec §3
Values): the sum type every expression evaluates to. List, Map, Instance,
Module, Class, and the callables are reference types — they hold a Go
pointer/slice handle shared by every alias; Nil/Bool/Int/Float/String are
also held by pointer but are never mutated after construction, so sharing
them behaves like copying, as the teacher's objects package does for its
own Integer/Float/String/Boolean/Nil.
*/
package values

import "fmt"

// Type is the runtime tag of a Value, used for typeof() and `let ... as`
// annotation checks.
type Type string

const (
	NilType      Type = "nil"
	BoolType     Type = "bool"
	IntType      Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	ListType     Type = "list"
	MapType      Type = "map"
	FuncType     Type = "func"
	ClassType    Type = "class"
	InstanceType Type = "object"
	ModuleType   Type = "module"
	NativeType   Type = "native"
)

// Value is the interface every Mrya runtime value implements.
type Value interface {
	Type() Type
	String() string  // canonical printable form, used by output()
	Inspect() string // debug form, used for list/map elements and error messages
}

// Truthy implements Mrya's truthiness rule for `if`/`while`/`and`/`or`:
// nil and false are falsy, everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case *Nil:
		return false
	case *Bool:
		return x.Value
	default:
		return true
	}
}

type Nil struct{}

func (*Nil) Type() Type      { return NilType }
func (*Nil) String() string  { return "nil" }
func (*Nil) Inspect() string { return "nil" }

var NilValue = &Nil{}

type Bool struct{ Value bool }

func (b *Bool) Type() Type      { return BoolType }
func (b *Bool) String() string  { return fmt.Sprintf("%t", b.Value) }
func (b *Bool) Inspect() string { return b.String() }

func NewBool(v bool) *Bool { return &Bool{Value: v} }

type Int struct{ Value int64 }

func (i *Int) Type() Type      { return IntType }
func (i *Int) String() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Int) Inspect() string { return i.String() }

type Float struct{ Value float64 }

func (f *Float) Type() Type      { return FloatType }
func (f *Float) String() string  { return fmt.Sprintf("%g", f.Value) }
func (f *Float) Inspect() string { return f.String() }

type String struct{ Value string }

func (s *String) Type() Type      { return StringType }
func (s *String) String() string  { return s.Value }
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.Value) }

// Equal implements value equality for the `==`/`!=` operators on primitives
// and reference identity for containers/instances (spec §4.3 Binary).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.Value == y.Value
	case *Int:
		switch y := b.(type) {
		case *Int:
			return x.Value == y.Value
		case *Float:
			return float64(x.Value) == y.Value
		}
		return false
	case *Float:
		switch y := b.(type) {
		case *Float:
			return x.Value == y.Value
		case *Int:
			return x.Value == float64(y.Value)
		}
		return false
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *List:
		y, ok := b.(*List)
		return ok && x == y
	case *Map:
		y, ok := b.(*Map)
		return ok && x == y
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	default:
		return a == b
	}
}
