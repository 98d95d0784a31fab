package std

import (
	"github.com/spf13/cast"

	"github.com/mrya-lang/mrya/values"
)

// NewConvertModule builds the `convert` native module (spec §7 Domain
// stack). Grounded on the teacher's convertFromGoMix/convertToGoMix helpers
// in std/common.go, but delegating the actual coercion logic to spf13/cast
// rather than hand-rolling the string<->number parsing the teacher did
// inline — cast is already in the example pack's dependency surface and is
// exactly the "parse anything to anything, tolerantly" library this
// concern calls for.
func NewConvertModule() *values.Module {
	b := NewModule("convert")
	b.Func("to_int", 1, convToInt)
	b.Func("to_float", 1, convToFloat)
	b.Func("to_string", 1, convToString)
	b.Func("to_bool", 1, convToBool)
	return b.Build()
}

func unwrap(v values.Value) interface{} {
	switch x := v.(type) {
	case *values.Int:
		return x.Value
	case *values.Float:
		return x.Value
	case *values.String:
		return x.Value
	case *values.Bool:
		return x.Value
	default:
		return x.String()
	}
}

// Syntax: to_int(v)
func convToInt(args []values.Value) (values.Value, error) {
	n, err := cast.ToInt64E(unwrap(args[0]))
	if err != nil {
		return nil, ArgError("to_int", "cannot convert %s to int: %v", args[0].Inspect(), err)
	}
	return I(n), nil
}

// Syntax: to_float(v)
func convToFloat(args []values.Value) (values.Value, error) {
	f, err := cast.ToFloat64E(unwrap(args[0]))
	if err != nil {
		return nil, ArgError("to_float", "cannot convert %s to float: %v", args[0].Inspect(), err)
	}
	return F(f), nil
}

// Syntax: to_string(v)
func convToString(args []values.Value) (values.Value, error) {
	return Str(cast.ToString(unwrap(args[0]))), nil
}

// Syntax: to_bool(v)
func convToBool(args []values.Value) (values.Value, error) {
	bl, err := cast.ToBoolE(unwrap(args[0]))
	if err != nil {
		return nil, ArgError("to_bool", "cannot convert %s to bool: %v", args[0].Inspect(), err)
	}
	return B(bl), nil
}
