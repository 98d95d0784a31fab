package std

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/mrya-lang/mrya/values"
)

// NewJSONModule builds the `json` native module (spec §7 Domain stack).
// Grounded on the teacher's std/json.go jsonStringDecode/jsonStringEncode
// pair in common.go, split across three real libraries from the example
// pack instead of one hand-rolled encoder: encoding/json for the
// value<->JSON conversion, tidwall/gjson for path queries (json.get),
// and tidwall/pretty for pretty-printing. parse additionally tolerates
// single-quoted strings, recovered from original_source's JSON loader
// which accepted single-quote JSON-like input.
func NewJSONModule() *values.Module {
	b := NewModule("json")
	b.Func("parse", 1, jsonParse)
	b.Func("stringify", 1, jsonStringify)
	b.Func("pretty", 1, jsonPretty)
	b.Func("get", 2, jsonGet)
	return b.Build()
}

// Syntax: parse(s)
func jsonParse(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("parse", 0, "string", args[0])
	}
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		// Retry tolerating single-quoted strings (original_source's loader
		// accepted them; standard JSON does not).
		alt := strings.ReplaceAll(s, "'", "\"")
		if err2 := json.Unmarshal([]byte(alt), &v); err2 != nil {
			return nil, ArgError("parse", "invalid JSON: %v", err)
		}
	}
	return fromGo(v), nil
}

// Syntax: stringify(v)
func jsonStringify(args []values.Value) (values.Value, error) {
	data, err := json.Marshal(toGo(args[0]))
	if err != nil {
		return nil, ArgError("stringify", "cannot encode value: %v", err)
	}
	return Str(string(data)), nil
}

// Syntax: pretty(v) -- stringify with indentation
func jsonPretty(args []values.Value) (values.Value, error) {
	data, err := json.Marshal(toGo(args[0]))
	if err != nil {
		return nil, ArgError("pretty", "cannot encode value: %v", err)
	}
	return Str(string(pretty.Pretty(data))), nil
}

// Syntax: get(json_string, path) -- gjson dotted-path query
func jsonGet(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("get", 0, "string", args[0])
	}
	path, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("get", 1, "string", args[1])
	}
	result := gjson.Get(s, path)
	if !result.Exists() {
		return values.NilValue, nil
	}
	return fromGo(result.Value()), nil
}

// toGo converts a Mrya value into a plain Go value encoding/json can marshal.
func toGo(v values.Value) interface{} {
	switch x := v.(type) {
	case *values.Nil:
		return nil
	case *values.Bool:
		return x.Value
	case *values.Int:
		return x.Value
	case *values.Float:
		return x.Value
	case *values.String:
		return x.Value
	case *values.List:
		out := make([]interface{}, len(x.Elements))
		for i, e := range x.Elements {
			out[i] = toGo(e)
		}
		return out
	case *values.Map:
		out := make(map[string]interface{})
		for _, p := range x.Pairs() {
			out[p[0].String()] = toGo(p[1])
		}
		return out
	default:
		return v.String()
	}
}

// fromGo converts a decoded JSON value (as produced by encoding/json or
// gjson) into a Mrya value.
func fromGo(v interface{}) values.Value {
	switch x := v.(type) {
	case nil:
		return values.NilValue
	case bool:
		return B(x)
	case float64:
		if x == float64(int64(x)) {
			return I(int64(x))
		}
		return F(x)
	case string:
		return Str(x)
	case []interface{}:
		elems := make([]values.Value, len(x))
		for i, e := range x {
			elems[i] = fromGo(e)
		}
		return values.NewList(elems)
	case map[string]interface{}:
		m := values.NewMap()
		for k, val := range x {
			m.Set(Str(k), fromGo(val))
		}
		return m
	default:
		return Str("")
	}
}
