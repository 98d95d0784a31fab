package eval

import (
	"strings"

	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/values"
)

// Eval evaluates one expression node against env (spec §4.3 Expression
// evaluation).
func (it *Interp) Eval(expr ast.Expr, env *environment.Environment) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return evalLiteral(e), nil
	case *ast.Variable:
		v, ok := env.Lookup(e.Name.Literal)
		if !ok {
			return nil, errs.New(errs.Runtime, e.Line(), 0, e.Name.Literal, "undefined variable %q", e.Name.Literal)
		}
		return v, nil
	case *ast.ListLiteral:
		elems := make([]values.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := it.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return values.NewList(elems), nil
	case *ast.MapLiteral:
		m := values.NewMap()
		for i, keyExpr := range e.Keys {
			k, err := it.Eval(keyExpr, env)
			if err != nil {
				return nil, err
			}
			v, err := it.Eval(e.Values[i], env)
			if err != nil {
				return nil, err
			}
			if !m.Set(k, v) {
				return nil, errs.New(errs.Runtime, e.Line(), 0, "", "map key must be a string, int, or float, got %s", k.Type())
			}
		}
		return m, nil
	case *ast.HString:
		var sb strings.Builder
		for _, part := range e.Parts {
			v, err := it.Eval(part, env)
			if err != nil {
				return nil, err
			}
			sb.WriteString(v.String())
		}
		return &values.String{Value: sb.String()}, nil
	case *ast.Unary:
		return it.evalUnary(e, env)
	case *ast.Binary:
		return it.evalBinary(e, env)
	case *ast.Logical:
		return it.evalLogical(e, env)
	case *ast.Get:
		return it.evalGet(e, env)
	case *ast.Subscript:
		obj, err := it.Eval(e.Object, env)
		if err != nil {
			return nil, err
		}
		idx, err := it.Eval(e.Index, env)
		if err != nil {
			return nil, err
		}
		return it.subscriptGet(obj, idx, e.Closing.Line)
	case *ast.Call:
		return it.evalCall(e, env)
	case *ast.Splat:
		return nil, errs.New(errs.Runtime, e.Line(), 0, "", "'...' is only valid as a call argument")
	case *ast.This:
		return it.evalThis(e, env)
	case *ast.Inherit:
		return it.evalInherit(e, env)
	default:
		return nil, errs.Newf(errs.Runtime, "unknown expression node %T", expr)
	}
}

func evalLiteral(l *ast.Literal) values.Value {
	switch l.Kind {
	case ast.LitNil:
		return values.NilValue
	case ast.LitBool:
		return values.NewBool(l.Bool)
	case ast.LitInt:
		return &values.Int{Value: l.Int}
	case ast.LitFloat:
		return &values.Float{Value: l.Flt}
	case ast.LitString:
		return &values.String{Value: l.Str}
	default:
		return values.NilValue
	}
}

// evalCall evaluates a call's callee and arguments — expanding any Splat
// argument by asserting its value is a list and inlining its elements — then
// dispatches through invoke (spec §4.3 Call).
func (it *Interp) evalCall(c *ast.Call, env *environment.Environment) (values.Value, error) {
	callee, err := it.Eval(c.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, 0, len(c.Args))
	for _, a := range c.Args {
		if sp, ok := a.(*ast.Splat); ok {
			v, err := it.Eval(sp.Expr, env)
			if err != nil {
				return nil, err
			}
			list, ok := v.(*values.List)
			if !ok {
				return nil, errs.New(errs.Runtime, sp.Line(), 0, "", "'...' argument must be a list, got %s", v.Type())
			}
			args = append(args, list.Elements...)
			continue
		}
		v, err := it.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return it.invoke(callee, args, c.Closing.Line)
}
