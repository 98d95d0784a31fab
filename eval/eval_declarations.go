package eval

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/values"
)

// execFunctionDecl captures env as the closure, folds decorators, and binds
// the result to the function name as a constant (spec §4.3, §9 Decorators).
func (it *Interp) execFunctionDecl(s *ast.FunctionDecl, env *environment.Environment) error {
	fn := function.New(s, env)
	val, err := it.applyDecorators(s.Decorators, fn, env, s.Line())
	if err != nil {
		return err
	}
	env.Define(s.Name.Literal, val, true, "")
	return nil
}

// execClassDecl resolves the optional superclass, builds the method table
// with each method's declaring class recorded for `inherit` (spec §4.4),
// folds decorators, and binds the class as a constant.
func (it *Interp) execClassDecl(s *ast.ClassDecl, env *environment.Environment) error {
	var super *values.Class
	if s.Super != nil {
		superVal, err := it.Eval(s.Super, env)
		if err != nil {
			return err
		}
		sc, ok := superVal.(*values.Class)
		if !ok {
			return errs.New(errs.Runtime, s.Line(), 0, s.Name.Literal, "superclass of %q must be a class", s.Name.Literal)
		}
		super = sc
	}

	cls := values.NewClass(s.Name.Literal, super)
	for _, m := range s.Methods {
		method := function.New(m, env)
		method.DeclaringClass = cls
		cls.Methods[m.Name.Literal] = method
	}

	val, err := it.applyDecorators(s.Decorators, cls, env, s.Line())
	if err != nil {
		return err
	}
	env.Define(s.Name.Literal, val, true, "")
	return nil
}

// applyDecorators folds each decorator callable over value, bottom-up: the
// decorator textually closest to the declaration runs first, so its result
// becomes the input to the one above it (spec §9 Decorators).
func (it *Interp) applyDecorators(decorators []ast.Expr, value values.Value, env *environment.Environment, line int) (values.Value, error) {
	result := value
	for i := len(decorators) - 1; i >= 0; i-- {
		decoVal, err := it.Eval(decorators[i], env)
		if err != nil {
			return nil, err
		}
		result, err = it.invoke(decoVal, []values.Value{result}, line)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
