package std

import (
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/values"
)

// ArgError builds a Runtime error attributed to fn, used throughout the
// native modules for arity and type-mismatch complaints (grounded on the
// teacher's createError helper repeated in every std/*.go file).
func ArgError(fn, format string, a ...interface{}) error {
	return errs.New(errs.Runtime, 0, 0, fn, format, a...)
}

// WrongType reports that the idx'th (0-based) argument to fn was not the
// expected type.
func WrongType(fn string, idx int, want string, got values.Value) error {
	return ArgError(fn, "argument %d to %s must be a %s, got %s", idx+1, fn, want, got.Type())
}

// AsFloat widens an Int or Float value to float64.
func AsFloat(v values.Value) (float64, bool) {
	switch x := v.(type) {
	case *values.Int:
		return float64(x.Value), true
	case *values.Float:
		return x.Value, true
	default:
		return 0, false
	}
}

// AsInt narrows an Int or Float value to int64 (Float truncates).
func AsInt(v values.Value) (int64, bool) {
	switch x := v.(type) {
	case *values.Int:
		return x.Value, true
	case *values.Float:
		return int64(x.Value), true
	default:
		return 0, false
	}
}

// AsString extracts a Go string from a *values.String.
func AsString(v values.Value) (string, bool) {
	s, ok := v.(*values.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// AsList type-asserts v to a *values.List.
func AsList(v values.Value) (*values.List, bool) {
	l, ok := v.(*values.List)
	return l, ok
}

// Str is a short constructor used throughout the native modules.
func Str(s string) *values.String { return &values.String{Value: s} }

// I is a short Int constructor.
func I(v int64) *values.Int { return &values.Int{Value: v} }

// F is a short Float constructor.
func F(v float64) *values.Float { return &values.Float{Value: v} }

// B is a short Bool constructor.
func B(v bool) *values.Bool { return values.NewBool(v) }
