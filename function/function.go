/*
Package function holds the two callable runtime values that close over an
environment: Function (a closure) and BoundMethod (a method paired with the
instance it was looked up on). Grounded on the teacher's function.Function,
generalized with variadic parameters and method binding (spec §3 Values,
§4.4).
*/
package function

import (
	"fmt"
	"strings"

	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/values"
)

// Function is a user-defined function or method declaration paired with the
// environment active at its definition site (spec §3 Values: closures).
type Function struct {
	Decl *ast.FunctionDecl
	Env  *environment.Environment

	// DeclaringClass is set only for methods: the class whose method table
	// held this declaration, needed to resolve `inherit` (spec §4.4).
	DeclaringClass *values.Class
}

func New(decl *ast.FunctionDecl, env *environment.Environment) *Function {
	return &Function{Decl: decl, Env: env}
}

func (f *Function) Type() values.Type { return values.FuncType }

func (f *Function) String() string {
	return fmt.Sprintf("<func %s(%s)>", f.Decl.Name.Literal, strings.Join(f.Params(), ", "))
}

func (f *Function) Inspect() string { return f.String() }

func (f *Function) CallableName() string { return f.Decl.Name.Literal }

func (f *Function) Params() []string {
	out := make([]string, len(f.Decl.Params))
	for i, p := range f.Decl.Params {
		out[i] = p.Literal
	}
	return out
}

func (f *Function) IsVariadic() bool { return f.Decl.Variadic }

// BoundMethod pairs a method Function with the instance it was looked up
// on; invoking it binds `this` to that instance (spec §3 Values, glossary).
type BoundMethod struct {
	Receiver *values.Instance
	Method   *Function
}

func Bind(recv *values.Instance, method *Function) *BoundMethod {
	return &BoundMethod{Receiver: recv, Method: method}
}

func (b *BoundMethod) Type() values.Type { return values.FuncType }

func (b *BoundMethod) String() string {
	return fmt.Sprintf("<bound method %s>", b.Method.CallableName())
}

func (b *BoundMethod) Inspect() string { return b.String() }

func (b *BoundMethod) CallableName() string { return b.Method.CallableName() }
func (b *BoundMethod) Params() []string     { return b.Method.Params() }
func (b *BoundMethod) IsVariadic() bool     { return b.Method.IsVariadic() }
