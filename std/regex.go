package std

import (
	"regexp"

	"github.com/mrya-lang/mrya/values"
)

// NewRegexModule builds the `regex` native module (spec §7 Domain stack),
// grounded on the teacher's std/regex.go thin regexp wrapper.
func NewRegexModule() *values.Module {
	b := NewModule("regex")
	b.Func("match", 2, regexMatch)
	b.Func("find", 2, regexFind)
	b.Func("find_all", 2, regexFindAll)
	b.Func("replace", 3, regexReplace)
	return b.Build()
}

func compile(fn, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, ArgError(fn, "invalid pattern %q: %v", pattern, err)
	}
	return re, nil
}

// Syntax: match(pattern, s)
func regexMatch(args []values.Value) (values.Value, error) {
	pattern, ok1 := AsString(args[0])
	s, ok2 := AsString(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("match", 0, "string", args[0])
	}
	re, err := compile("match", pattern)
	if err != nil {
		return nil, err
	}
	return B(re.MatchString(s)), nil
}

// Syntax: find(pattern, s) -- first match or nil
func regexFind(args []values.Value) (values.Value, error) {
	pattern, ok1 := AsString(args[0])
	s, ok2 := AsString(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("find", 0, "string", args[0])
	}
	re, err := compile("find", pattern)
	if err != nil {
		return nil, err
	}
	m := re.FindString(s)
	if m == "" && !re.MatchString(s) {
		return values.NilValue, nil
	}
	return Str(m), nil
}

// Syntax: find_all(pattern, s) -- list of matches
func regexFindAll(args []values.Value) (values.Value, error) {
	pattern, ok1 := AsString(args[0])
	s, ok2 := AsString(args[1])
	if !ok1 || !ok2 {
		return nil, WrongType("find_all", 0, "string", args[0])
	}
	re, err := compile("find_all", pattern)
	if err != nil {
		return nil, err
	}
	matches := re.FindAllString(s, -1)
	elems := make([]values.Value, len(matches))
	for i, m := range matches {
		elems[i] = Str(m)
	}
	return values.NewList(elems), nil
}

// Syntax: replace(pattern, s, replacement)
func regexReplace(args []values.Value) (values.Value, error) {
	pattern, ok1 := AsString(args[0])
	s, ok2 := AsString(args[1])
	repl, ok3 := AsString(args[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, WrongType("replace", 0, "string", args[0])
	}
	re, err := compile("replace", pattern)
	if err != nil {
		return nil, err
	}
	return Str(re.ReplaceAllString(s, repl)), nil
}
