package std

import (
	"math"
	"math/rand"

	"github.com/mrya-lang/mrya/values"
)

// NewMathModule builds the `math` native module (spec §7 Domain stack),
// grounded on the teacher's std/math.go mathMethods table — same function
// set and one-liner-per-wrapper shape, rebuilt against values.Value instead
// of GoMixObject.
//
// Syntax: import("math")
func NewMathModule() *values.Module {
	b := NewModule("math")
	b.Const("pi", F(math.Pi))
	b.Const("e", F(math.E))
	b.Func("abs", 1, mathAbs)
	b.Func("floor", 1, math1(math.Floor))
	b.Func("ceil", 1, math1(math.Ceil))
	b.Func("round", 1, math1(math.Round))
	b.Func("sqrt", 1, math1(math.Sqrt))
	b.Func("pow", 2, mathPow)
	b.Func("sin", 1, math1(math.Sin))
	b.Func("cos", 1, math1(math.Cos))
	b.Func("tan", 1, math1(math.Tan))
	b.Func("asin", 1, math1(math.Asin))
	b.Func("acos", 1, math1(math.Acos))
	b.Func("atan", 1, math1(math.Atan))
	b.Func("atan2", 2, mathAtan2)
	b.Func("log", 1, math1(math.Log))
	b.Func("log10", 1, math1(math.Log10))
	b.Func("exp", 1, math1(math.Exp))
	b.Func("min", 2, mathMin)
	b.Func("max", 2, mathMax)
	b.Func("random", 0, mathRandom)
	b.Func("rand_int", 2, mathRandInt)
	return b.Build()
}

// math1 adapts a pure float64->float64 stdlib function into a NativeFunc.
func math1(fn func(float64) float64) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		x, ok := AsFloat(args[0])
		if !ok {
			return nil, WrongType("math", 0, "number", args[0])
		}
		return F(fn(x)), nil
	}
}

// mathAbs preserves Int-ness: abs(-3) is the int 3, abs(-3.5) is the float
// 3.5 (spec's always-Float division law applies only to `/`, not to abs).
//
// Syntax: abs(n)
func mathAbs(args []values.Value) (values.Value, error) {
	switch x := args[0].(type) {
	case *values.Int:
		if x.Value < 0 {
			return I(-x.Value), nil
		}
		return x, nil
	case *values.Float:
		return F(math.Abs(x.Value)), nil
	default:
		return nil, WrongType("abs", 0, "number", args[0])
	}
}

// Syntax: pow(base, exp)
func mathPow(args []values.Value) (values.Value, error) {
	x, ok1 := AsFloat(args[0])
	y, ok2 := AsFloat(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("pow", 0, "number", args[0])
	}
	return F(math.Pow(x, y)), nil
}

// Syntax: atan2(y, x)
func mathAtan2(args []values.Value) (values.Value, error) {
	y, ok1 := AsFloat(args[0])
	x, ok2 := AsFloat(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("atan2", 0, "number", args[0])
	}
	return F(math.Atan2(y, x)), nil
}

// min/max preserve Int-ness when both operands are Int, matching the
// arithmetic operators' int-preserving rule (spec §4.3 Binary).
//
// Syntax: min(a, b)
func mathMin(args []values.Value) (values.Value, error) {
	return mathMinMax(args, "min", false)
}

// Syntax: max(a, b)
func mathMax(args []values.Value) (values.Value, error) {
	return mathMinMax(args, "max", true)
}

func mathMinMax(args []values.Value, name string, wantMax bool) (values.Value, error) {
	ai, aIsInt := args[0].(*values.Int)
	bi, bIsInt := args[1].(*values.Int)
	a, ok1 := AsFloat(args[0])
	b, ok2 := AsFloat(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType(name, 0, "number", args[0])
	}
	pick := a
	winnerIsA := true
	if (wantMax && b > a) || (!wantMax && b < a) {
		pick = b
		winnerIsA = false
	}
	if aIsInt && bIsInt {
		if winnerIsA {
			return ai, nil
		}
		return bi, nil
	}
	return F(pick), nil
}

// Syntax: random() -- a float in [0, 1)
func mathRandom(args []values.Value) (values.Value, error) {
	return F(rand.Float64()), nil
}

// Syntax: rand_int(lo, hi) -- an int in [lo, hi)
func mathRandInt(args []values.Value) (values.Value, error) {
	lo, ok1 := AsInt(args[0])
	hi, ok2 := AsInt(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("rand_int", 0, "int", args[0])
	}
	if hi <= lo {
		return nil, ArgError("rand_int", "rand_int expects hi > lo, got lo=%d hi=%d", lo, hi)
	}
	return I(lo + rand.Int63n(hi-lo)), nil
}
