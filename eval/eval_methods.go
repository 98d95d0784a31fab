package eval

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/values"
)

// superMarker is the internal value bound under "__inherit__" in a method's
// call environment: the superclass of the class that declared the
// currently-executing method (spec §4.4). It never escapes to user code.
type superMarker struct {
	Class *values.Class
}

func (superMarker) Type() values.Type { return values.Type("native:super") }
func (superMarker) String() string    { return "<super>" }
func (superMarker) Inspect() string   { return "<super>" }

// stringMethods backs Get-on-string (spec §4.3): the string native module
// registers its functions here so that "abc".upper() resolves without going
// through an explicit import. Populated by the std/strings package.
var stringMethods = map[string]values.NativeFunc{}

// RegisterStringMethod installs a method exposed on every string value via
// property access, e.g. RegisterStringMethod("upper", ...) enables
// `"abc".upper()`.
func RegisterStringMethod(name string, fn values.NativeFunc) {
	stringMethods[name] = fn
}

func (it *Interp) evalThis(t *ast.This, env *environment.Environment) (values.Value, error) {
	v, ok := env.Lookup("this")
	if !ok {
		return nil, errs.New(errs.Runtime, t.Line(), 0, "", "'this' used outside a method")
	}
	return v, nil
}

// evalInherit resolves `inherit.method` relative to the superclass of the
// class that declared the currently-executing method, then binds the result
// to the original instance (spec §4.3 This/Inherit, §4.4).
func (it *Interp) evalInherit(node *ast.Inherit, env *environment.Environment) (values.Value, error) {
	markerVal, ok := env.Lookup("__inherit__")
	if !ok {
		return nil, errs.New(errs.Runtime, node.Line(), 0, "", "'inherit' used outside a method")
	}
	marker, ok := markerVal.(superMarker)
	if !ok || marker.Class == nil {
		return nil, errs.New(errs.Runtime, node.Line(), 0, "", "method has no superclass to 'inherit' from")
	}

	method, _, found := marker.Class.FindMethod(node.Method.Literal)
	if !found {
		return nil, errs.New(errs.Runtime, node.Line(), 0, node.Method.Literal,
			"%s has no method %q", marker.Class.Name, node.Method.Literal)
	}
	fn, ok := method.(*function.Function)
	if !ok {
		return nil, errs.New(errs.Runtime, node.Line(), 0, node.Method.Literal,
			"%s.%s is not a user-defined method", marker.Class.Name, node.Method.Literal)
	}

	thisVal, ok := env.Lookup("this")
	if !ok {
		return nil, errs.New(errs.Runtime, node.Line(), 0, "", "'inherit' used outside a method")
	}
	inst, ok := thisVal.(*values.Instance)
	if !ok {
		return nil, errs.New(errs.Runtime, node.Line(), 0, "", "'this' is not an instance")
	}
	return function.Bind(inst, fn), nil
}

// evalGet implements field/method/module/string property access (spec §4.3
// Get on instance/module/string).
func (it *Interp) evalGet(g *ast.Get, env *environment.Environment) (values.Value, error) {
	obj, err := it.Eval(g.Object, env)
	if err != nil {
		return nil, err
	}

	switch o := obj.(type) {
	case *values.Instance:
		if v, ok := o.Fields[g.Name.Literal]; ok {
			return v, nil
		}
		method, _, found := o.Class.FindMethod(g.Name.Literal)
		if !found {
			return nil, errs.New(errs.Runtime, g.Line(), 0, g.Name.Literal,
				"%s has no field or method %q", o.Class.Name, g.Name.Literal)
		}
		fn, ok := method.(*function.Function)
		if !ok {
			return method, nil
		}
		return function.Bind(o, fn), nil

	case *values.Class:
		if v, ok := o.StaticAttr[g.Name.Literal]; ok {
			return v, nil
		}
		if method, _, found := o.FindMethod(g.Name.Literal); found {
			return method, nil
		}
		return nil, errs.New(errs.Runtime, g.Line(), 0, g.Name.Literal, "class %s has no attribute %q", o.Name, g.Name.Literal)

	case *values.Module:
		v, ok := o.Get(g.Name.Literal)
		if !ok {
			return nil, errs.New(errs.Runtime, g.Line(), 0, g.Name.Literal, "module %s has no member %q", o.Name, g.Name.Literal)
		}
		return v, nil

	case *values.String:
		fn, ok := stringMethods[g.Name.Literal]
		if !ok {
			return nil, errs.New(errs.Runtime, g.Line(), 0, g.Name.Literal, "string has no method %q", g.Name.Literal)
		}
		return values.BindReceiver(g.Name.Literal, o, fn), nil

	default:
		return nil, errs.New(errs.Runtime, g.Line(), 0, g.Name.Literal, "cannot access property %q on a %s", g.Name.Literal, obj.Type())
	}
}
