package eval

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/lexer"
	"github.com/mrya-lang/mrya/values"
)

func (it *Interp) evalUnary(u *ast.Unary, env *environment.Environment) (values.Value, error) {
	right, err := it.Eval(u.Right, env)
	if err != nil {
		return nil, err
	}
	switch u.Op.Kind {
	case lexer.MINUS:
		switch x := right.(type) {
		case *values.Int:
			return &values.Int{Value: -x.Value}, nil
		case *values.Float:
			return &values.Float{Value: -x.Value}, nil
		default:
			return nil, errs.New(errs.Runtime, u.Line(), 0, "", "'-' requires a numeric operand, got %s", right.Type())
		}
	case lexer.BANG:
		return values.NewBool(!values.Truthy(right)), nil
	default:
		return nil, errs.Newf(errs.Runtime, "unknown unary operator %s", u.Op.Kind)
	}
}

// evalLogical short-circuits: `or` yields true as soon as the left side is
// truthy, `and` yields false as soon as it's falsy; otherwise the result is
// the right side's truthiness (spec §4.3 Logical).
func (it *Interp) evalLogical(l *ast.Logical, env *environment.Environment) (values.Value, error) {
	left, err := it.Eval(l.Left, env)
	if err != nil {
		return nil, err
	}
	if l.Op.Kind == lexer.OR {
		if values.Truthy(left) {
			return values.NewBool(true), nil
		}
		right, err := it.Eval(l.Right, env)
		if err != nil {
			return nil, err
		}
		return values.NewBool(values.Truthy(right)), nil
	}
	// and
	if !values.Truthy(left) {
		return values.NewBool(false), nil
	}
	right, err := it.Eval(l.Right, env)
	if err != nil {
		return nil, err
	}
	return values.NewBool(values.Truthy(right)), nil
}

// dunderFor maps an operator token to the instance method that overloads it,
// and whether the result must be negated (`!=` is `_equals_` negated),
// per spec §4.3 Binary.
func dunderFor(k lexer.Kind) (name string, negate bool, ok bool) {
	switch k {
	case lexer.PLUS:
		return "_plus_", false, true
	case lexer.MINUS:
		return "_minus_", false, true
	case lexer.STAR:
		return "_times_", false, true
	case lexer.SLASH:
		return "_divide_", false, true
	case lexer.EQ:
		return "_equals_", false, true
	case lexer.NE:
		return "_equals_", true, true
	default:
		return "", false, false
	}
}

func (it *Interp) evalBinary(b *ast.Binary, env *environment.Environment) (values.Value, error) {
	left, err := it.Eval(b.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.Eval(b.Right, env)
	if err != nil {
		return nil, err
	}

	if inst, ok := left.(*values.Instance); ok {
		if name, negate, has := dunderFor(b.Op.Kind); has {
			method, _, found := inst.Class.FindMethod(name)
			if !found {
				return nil, errs.New(errs.ClassFunction, b.Line(), 0, name,
					"%s has no %s method required by operator %s", inst.Class.Name, name, b.Op.Literal)
			}
			fn, ok := method.(*function.Function)
			if !ok {
				return nil, errs.New(errs.Runtime, b.Line(), 0, "", "%s.%s is not a user-defined method", inst.Class.Name, name)
			}
			result, err := it.callFunction(fn, function.Bind(inst, fn), []values.Value{right}, b.Line())
			if err != nil {
				return nil, err
			}
			if negate {
				return values.NewBool(!values.Truthy(result)), nil
			}
			return result, nil
		}
	}

	switch b.Op.Kind {
	case lexer.PLUS:
		return evalAdd(left, right, b.Line())
	case lexer.MINUS:
		return evalArith(left, right, b.Line(), "-")
	case lexer.STAR:
		return evalArith(left, right, b.Line(), "*")
	case lexer.SLASH:
		return evalDivide(left, right, b.Line())
	case lexer.EQ:
		return values.NewBool(values.Equal(left, right)), nil
	case lexer.NE:
		return values.NewBool(!values.Equal(left, right)), nil
	case lexer.LT, lexer.GT, lexer.LE, lexer.GE:
		return evalCompare(left, right, b.Op.Kind, b.Line())
	default:
		return nil, errs.Newf(errs.Runtime, "unknown binary operator %s", b.Op.Kind)
	}
}

func asFloat(v values.Value) (float64, bool) {
	switch x := v.(type) {
	case *values.Int:
		return float64(x.Value), true
	case *values.Float:
		return x.Value, true
	default:
		return 0, false
	}
}

func bothInt(a, b values.Value) (int64, int64, bool) {
	x, ok1 := a.(*values.Int)
	y, ok2 := b.(*values.Int)
	if ok1 && ok2 {
		return x.Value, y.Value, true
	}
	return 0, 0, false
}

// evalAdd handles `+`: string concatenation (if either side is a string,
// via stringification) takes priority over numeric addition, per spec §4.3.
func evalAdd(left, right values.Value, line int) (values.Value, error) {
	if _, ok := left.(*values.String); ok {
		return &values.String{Value: left.String() + right.String()}, nil
	}
	if _, ok := right.(*values.String); ok {
		return &values.String{Value: left.String() + right.String()}, nil
	}
	if xi, yi, ok := bothInt(left, right); ok {
		return &values.Int{Value: xi + yi}, nil
	}
	xf, ok1 := asFloat(left)
	yf, ok2 := asFloat(right)
	if ok1 && ok2 {
		return &values.Float{Value: xf + yf}, nil
	}
	return nil, errs.New(errs.Runtime, line, 0, "", "cannot add %s and %s", left.Type(), right.Type())
}

func evalArith(left, right values.Value, line int, op string) (values.Value, error) {
	if xi, yi, ok := bothInt(left, right); ok {
		switch op {
		case "-":
			return &values.Int{Value: xi - yi}, nil
		case "*":
			return &values.Int{Value: xi * yi}, nil
		}
	}
	xf, ok1 := asFloat(left)
	yf, ok2 := asFloat(right)
	if !ok1 || !ok2 {
		return nil, errs.New(errs.Runtime, line, 0, "", "operator %q requires numeric operands, got %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "-":
		return &values.Float{Value: xf - yf}, nil
	case "*":
		return &values.Float{Value: xf * yf}, nil
	}
	return nil, errs.Newf(errs.Runtime, "unknown arithmetic operator %q", op)
}

// evalDivide always yields a Float: int/int division is not guaranteed to
// be exact, and the spec only promises int×float promotion, not truncating
// integer division, so true division avoids a silent-precision-loss trap.
func evalDivide(left, right values.Value, line int) (values.Value, error) {
	xf, ok1 := asFloat(left)
	yf, ok2 := asFloat(right)
	if !ok1 || !ok2 {
		return nil, errs.New(errs.Runtime, line, 0, "", "'/' requires numeric operands, got %s and %s", left.Type(), right.Type())
	}
	if yf == 0 {
		return nil, errs.New(errs.Runtime, line, 0, "", "division by zero")
	}
	return &values.Float{Value: xf / yf}, nil
}

func evalCompare(left, right values.Value, op lexer.Kind, line int) (values.Value, error) {
	if ls, ok := left.(*values.String); ok {
		if rs, ok2 := right.(*values.String); ok2 {
			return values.NewBool(compareOp(op, ls.Value < rs.Value, ls.Value == rs.Value)), nil
		}
	}
	xf, ok1 := asFloat(left)
	yf, ok2 := asFloat(right)
	if !ok1 || !ok2 {
		return nil, errs.New(errs.Runtime, line, 0, "", "cannot compare %s and %s", left.Type(), right.Type())
	}
	return values.NewBool(compareOp(op, xf < yf, xf == yf)), nil
}

func compareOp(op lexer.Kind, less, equal bool) bool {
	switch op {
	case lexer.LT:
		return less
	case lexer.GT:
		return !less && !equal
	case lexer.LE:
		return less || equal
	case lexer.GE:
		return !less
	default:
		return false
	}
}
