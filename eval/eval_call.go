package eval

import (
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/values"
)

// InterpHandle is the value passed as the first argument to an
// interpreter-aware native (spec §4.6) — natives that call back into user
// code (e.g. an HTTP handler invocation, an async task) type-assert their
// first argument to *InterpHandle to reach the running interpreter.
type InterpHandle struct {
	It *Interp
}

func (*InterpHandle) Type() values.Type { return values.Type("native:interp") }
func (*InterpHandle) String() string    { return "<interpreter>" }
func (*InterpHandle) Inspect() string   { return "<interpreter>" }

// Invoke calls a Mrya callable value from host code — used by
// interpreter-aware natives (spec §4.6) such as the http module's route
// handlers or the async module's task callbacks, which must call back into
// user-defined functions they were handed as arguments.
func (it *Interp) Invoke(callee values.Value, args []values.Value) (values.Value, error) {
	return it.invoke(callee, args, 0)
}

// invoke dispatches a Call expression's callee per spec §4.3 Call.
func (it *Interp) invoke(callee values.Value, args []values.Value, line int) (values.Value, error) {
	switch c := callee.(type) {
	case *values.Class:
		return it.construct(c, args, line)
	case *values.Module:
		return nil, errs.New(errs.Runtime, line, 0, c.Name,
			"module %q is not callable; did you mean to return a value from it?", c.Name)
	case *function.Function:
		return it.callFunction(c, nil, args, line)
	case *function.BoundMethod:
		return it.callFunction(c.Method, c, args, line)
	case *values.NativeCallable:
		return it.callNative(c, args, line)
	default:
		return nil, errs.New(errs.Runtime, line, 0, "", "%s is not callable", callee.Type())
	}
}

// construct builds a new instance and, if the class chain defines `_start_`,
// binds and invokes it with the call's arguments (spec §4.3 Call: Class).
func (it *Interp) construct(cls *values.Class, args []values.Value, line int) (values.Value, error) {
	inst := values.NewInstance(cls)
	method, _, found := cls.FindMethod("_start_")
	if !found {
		if len(args) > 0 {
			return nil, errs.New(errs.Runtime, line, 0, cls.Name,
				"%s takes no arguments (no _start_ defined)", cls.Name)
		}
		return inst, nil
	}
	fn, ok := method.(*function.Function)
	if !ok {
		return nil, errs.New(errs.Runtime, line, 0, cls.Name, "_start_ on %s is not a user-defined method", cls.Name)
	}
	if _, err := it.callFunction(fn, function.Bind(inst, fn), args, line); err != nil {
		return nil, err
	}
	return inst, nil
}

// callFunction runs fn's body in a fresh environment enclosing its captured
// closure (never the caller's environment). When bound is non-nil it binds
// `this` and, for methods, `inherit` relative to the declaring class
// (spec §4.3 Call: Function/BoundMethod, §4.4).
func (it *Interp) callFunction(fn *function.Function, bound *function.BoundMethod, args []values.Value, line int) (values.Value, error) {
	callEnv := environment.New(fn.Env)

	if bound != nil {
		callEnv.Define("this", bound.Receiver, true, "")
		if fn.DeclaringClass != nil {
			callEnv.Define("__inherit__", superMarker{Class: fn.DeclaringClass.Super}, true, "")
		}
	}

	if err := bindParams(callEnv, fn.Params(), fn.IsVariadic(), args, line, fn.CallableName()); err != nil {
		return nil, err
	}

	err := it.ExecStmts(fn.Decl.Body.Stmts, callEnv)
	if err == nil {
		return values.NilValue, nil
	}
	if rs, ok := err.(returnSignal); ok {
		return rs.Value, nil
	}
	return nil, err
}

// bindParams binds the call environment's parameters, handling the trailing
// variadic parameter (spec §4.3: "leading fixed parameters positionally,
// then the trailing parameter to the list of remaining arguments").
func bindParams(env *environment.Environment, params []string, variadic bool, args []values.Value, line int, name string) error {
	if variadic {
		fixed := len(params) - 1
		if fixed < 0 {
			fixed = 0
		}
		if len(args) < fixed {
			return errs.New(errs.Runtime, line, 0, name, "%s expects at least %d argument(s), got %d", name, fixed, len(args))
		}
		for i := 0; i < fixed; i++ {
			env.Define(params[i], args[i], false, "")
		}
		rest := append([]values.Value{}, args[fixed:]...)
		env.Define(params[fixed], values.NewList(rest), false, "")
		return nil
	}

	if len(args) != len(params) {
		return errs.New(errs.Runtime, line, 0, name, "%s expects %d argument(s), got %d", name, len(params), len(args))
	}
	for i, p := range params {
		env.Define(p, args[i], false, "")
	}
	return nil
}

// callNative dispatches a host function under its declared calling
// convention (spec §4.3 Call: NativeCallable, §4.6).
func (it *Interp) callNative(n *values.NativeCallable, args []values.Value, line int) (values.Value, error) {
	if len(args) < n.MinArity {
		return nil, errs.New(errs.Runtime, line, 0, n.Name, "%s expects at least %d argument(s), got %d", n.Name, n.MinArity, len(args))
	}

	call := args
	if n.Conv == values.ConventionInterpreterAware {
		call = make([]values.Value, 0, len(args)+1)
		call = append(call, &InterpHandle{It: it})
		call = append(call, args...)
	}
	return n.Fn(call)
}
