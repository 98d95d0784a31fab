package std

import (
	"strings"

	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/values"
)

// NewStringsModule builds the `strings` native module (spec §7 Domain
// stack), grounded on the teacher's std/strings.go per-function wrapper
// shape. init() additionally registers every method with
// eval.RegisterStringMethod so "abc".upper() works without an explicit
// import, the same forward-compatibility hook the evaluator package
// documents for this purpose.
func NewStringsModule() *values.Module {
	b := NewModule("strings")
	for name, fn := range stringFns {
		b.Func(name, 1, fn)
	}
	b.Func("split", 2, strSplit)
	b.Func("join", 2, strJoin)
	b.Func("replace", 3, strReplace)
	b.Func("contains", 2, strContains)
	b.Func("index_of", 2, strIndexOf)
	b.Func("repeat", 2, strRepeat)
	return b.Build()
}

// stringFns holds the unary (receiver-only) string functions shared between
// the `strings` module and the Get-on-string registry.
var stringFns = map[string]values.NativeFunc{
	"upper":       func(a []values.Value) (values.Value, error) { return str1(a, strings.ToUpper) },
	"lower":       func(a []values.Value) (values.Value, error) { return str1(a, strings.ToLower) },
	"trim":        func(a []values.Value) (values.Value, error) { return str1(a, strings.TrimSpace) },
	"title":       func(a []values.Value) (values.Value, error) { return str1(a, strings.Title) },
	"reverse":     func(a []values.Value) (values.Value, error) { return str1(a, reverseRunes) },
	"is_empty":    strIsEmpty,
}

func init() {
	for name, fn := range stringFns {
		eval.RegisterStringMethod(name, fn)
	}
	eval.RegisterStringMethod("split", strSplit)
	eval.RegisterStringMethod("replace", strReplace)
	eval.RegisterStringMethod("contains", strContains)
	eval.RegisterStringMethod("index_of", strIndexOf)
	eval.RegisterStringMethod("repeat", strRepeat)
}

func str1(args []values.Value, fn func(string) string) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("string method", 0, "string", args[0])
	}
	return Str(fn(s)), nil
}

func strIsEmpty(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("is_empty", 0, "string", args[0])
	}
	return B(s == ""), nil
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Syntax: split(s, sep)
func strSplit(args []values.Value) (values.Value, error) {
	s, ok1 := AsString(args[0])
	sep, ok2 := AsString(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("split", 0, "string", args[0])
	}
	parts := strings.Split(s, sep)
	elems := make([]values.Value, len(parts))
	for i, p := range parts {
		elems[i] = Str(p)
	}
	return values.NewList(elems), nil
}

// Syntax: join(list, sep)
func strJoin(args []values.Value) (values.Value, error) {
	list, ok := AsList(args[0])
	if !ok {
		return nil, WrongType("join", 0, "list", args[0])
	}
	sep, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("join", 1, "string", args[1])
	}
	parts := make([]string, len(list.Elements))
	for i, e := range list.Elements {
		parts[i] = e.String()
	}
	return Str(strings.Join(parts, sep)), nil
}

// Syntax: replace(s, old, new) -- receiver bound form takes (old, new)
func strReplace(args []values.Value) (values.Value, error) {
	if len(args) < 3 {
		return nil, ArgError("replace", "replace expects 3 arguments (s, old, new)")
	}
	s, ok1 := AsString(args[0])
	old, ok2 := AsString(args[1])
	new_, ok3 := AsString(args[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, WrongType("replace", 0, "string", args[0])
	}
	return Str(strings.ReplaceAll(s, old, new_)), nil
}

// Syntax: contains(s, sub)
func strContains(args []values.Value) (values.Value, error) {
	s, ok1 := AsString(args[0])
	sub, ok2 := AsString(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("contains", 0, "string", args[0])
	}
	return B(strings.Contains(s, sub)), nil
}

// Syntax: index_of(s, sub)
func strIndexOf(args []values.Value) (values.Value, error) {
	s, ok1 := AsString(args[0])
	sub, ok2 := AsString(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("index_of", 0, "string", args[0])
	}
	return I(int64(strings.Index(s, sub))), nil
}

// Syntax: repeat(s, n)
func strRepeat(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("repeat", 0, "string", args[0])
	}
	n, ok := AsInt(args[1])
	if !ok || n < 0 {
		return nil, WrongType("repeat", 1, "non-negative int", args[1])
	}
	return Str(strings.Repeat(s, int(n))), nil
}
