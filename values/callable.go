package values

// Callable is the minimal surface the values package needs from a function
// or bound-method value, kept as an interface to avoid an import cycle
// between values (which Class/Instance live in) and the function package
// (which needs ast + environment types to hold a closure). Grounded on the
// same avoid-the-cycle technique the teacher uses for FunctionInterface in
// objects/struct.go.
type Callable interface {
	Value
	CallableName() string
	Params() []string
	IsVariadic() bool
}
