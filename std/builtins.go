package std

import (
	"fmt"

	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/values"
)

// RegisterGlobals defines every builtin available without an import (spec
// §4.6, §9 Raised errors) directly into env, mirroring the teacher's
// std.Builtins slice that common.go's init() appended to and main wired
// into the root scope once at startup.
func RegisterGlobals(env *environment.Environment) {
	def := func(name string, minArity int, variadic bool, fn values.NativeFunc) {
		env.Define(name, &values.NativeCallable{
			Name: name, Conv: values.ConventionPure, Fn: fn, MinArity: minArity, Variadic: variadic,
		}, true, "")
	}
	defAware := func(name string, minArity int, fn values.NativeFunc) {
		env.Define(name, &values.NativeCallable{
			Name: name, Conv: values.ConventionInterpreterAware, Fn: fn, MinArity: minArity,
		}, true, "")
	}
	def("raise", 0, true, raiseFn)
	def("assert", 1, true, assertFn)
	def("typeof", 1, false, typeofFn)
	defAware("len", 1, lenFn)
	defAware("length", 1, lenFn)
	def("to_string", 1, false, toStringFn)
}

// raiseFn raises a user error carrying the given message (spec §9 "raise
// throws a RaisedError whose kind catch clauses match by name").
func raiseFn(args []values.Value) (values.Value, error) {
	msg := "error"
	if len(args) > 0 {
		msg = args[0].String()
	}
	return nil, errs.New(errs.Raised, 0, 0, "", "%s", msg)
}

// assertFn supports both a single truthy check (assert(cond)) and an
// equality check against an expected value (assert(actual, expected, msg?)),
// recovered from original_source's test-harness usage of assert.
func assertFn(args []values.Value) (values.Value, error) {
	switch len(args) {
	case 0:
		return nil, ArgError("assert", "assert expects at least 1 argument")
	case 1:
		if !values.Truthy(args[0]) {
			return nil, errs.New(errs.Raised, 0, 0, "", "assertion failed")
		}
		return values.NilValue, nil
	default:
		actual, expected := args[0], args[1]
		if values.Equal(actual, expected) {
			return values.NilValue, nil
		}
		msg := fmt.Sprintf("assertion failed: expected %s, got %s", expected.Inspect(), actual.Inspect())
		if len(args) >= 3 {
			msg = args[2].String()
		}
		return nil, errs.New(errs.Raised, 0, 0, "", "%s", msg)
	}
}

func typeofFn(args []values.Value) (values.Value, error) {
	return Str(string(args[0].Type())), nil
}

// lenFn is interpreter-aware (args[0] is the injected *eval.InterpHandle,
// spec §4.6) so that len() on a class instance can dispatch its `_len_`
// dunder (glossary: evaluator-invoked for built-ins) instead of only
// handling the built-in collection types.
func lenFn(args []values.Value) (values.Value, error) {
	handle, ok := args[0].(*eval.InterpHandle)
	if !ok {
		return nil, ArgError("len", "internal: missing interpreter handle")
	}
	switch v := args[1].(type) {
	case *values.List:
		return I(int64(len(v.Elements))), nil
	case *values.String:
		return I(int64(len([]rune(v.Value)))), nil
	case *values.Map:
		return I(int64(v.Len())), nil
	case *values.Instance:
		method, _, found := v.Class.FindMethod("_len_")
		if !found {
			return nil, WrongType("len", 0, "list, string, or map", args[1])
		}
		fn, ok := method.(*function.Function)
		if !ok {
			return nil, ArgError("len", "_len_ on %s is not a user-defined method", v.Class.Name)
		}
		return handle.It.Invoke(function.Bind(v, fn), nil)
	default:
		return nil, WrongType("len", 0, "list, string, or map", args[1])
	}
}

func toStringFn(args []values.Value) (values.Value, error) {
	return Str(args[0].String()), nil
}
