package eval

import (
	"fmt"
	"strings"

	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/values"
)

// Exec runs one statement against env, per spec §4.3 Statement execution.
func (it *Interp) Exec(stmt ast.Stmt, env *environment.Environment) error {
	switch s := stmt.(type) {
	case *ast.Let:
		return it.execLet(s, env)
	case *ast.Output:
		return it.execOutput(s, env)
	case *ast.Assignment:
		return it.execAssignment(s, env)
	case *ast.SubscriptSet:
		return it.execSubscriptSet(s, env)
	case *ast.SetProperty:
		return it.execSetProperty(s, env)
	case *ast.If:
		return it.execIf(s, env)
	case *ast.While:
		return it.execWhile(s, env)
	case *ast.For:
		return it.execFor(s, env)
	case *ast.Break:
		return breakSignal{}
	case *ast.Continue:
		return continueSignal{}
	case *ast.Return:
		return it.execReturn(s, env)
	case *ast.Try:
		return it.execTry(s, env)
	case *ast.FunctionDecl:
		return it.execFunctionDecl(s, env)
	case *ast.ClassDecl:
		return it.execClassDecl(s, env)
	case *ast.Import:
		return it.execImport(s, env)
	case *ast.ExprStmt:
		_, err := it.Eval(s.Expr, env)
		return err
	case *ast.Block:
		return it.runBlock(s, env)
	default:
		return errs.Newf(errs.Runtime, "unknown statement node %T", stmt)
	}
}

// ExecStmts runs a top-level statement list directly in env without opening
// a further child scope, used by the module loader and the CLI/REPL run
// entry points (env already is the intended top-level scope).
func (it *Interp) ExecStmts(stmts []ast.Stmt, env *environment.Environment) error {
	for _, s := range stmts {
		if err := it.Exec(s, env); err != nil {
			return err
		}
	}
	return nil
}

// RunModule executes a file's top-level statements in env and reports
// whether a bare top-level `return` short-circuited them, surfacing its
// value without exposing the unexported returnSignal type outside this
// package (the loader needs exactly this to implement spec §4.5's
// "return a class from a module" convention).
func (it *Interp) RunModule(stmts []ast.Stmt, env *environment.Environment) (value values.Value, returned bool, err error) {
	execErr := it.ExecStmts(stmts, env)
	if execErr == nil {
		return nil, false, nil
	}
	if rs, ok := execErr.(returnSignal); ok {
		return rs.Value, true, nil
	}
	return nil, false, execErr
}

// runBlock executes a block in a fresh child scope of parent, matching
// spec §3 Lifecycle: a new environment is created per block entry.
func (it *Interp) runBlock(block *ast.Block, parent *environment.Environment) error {
	env := environment.New(parent)
	return it.ExecStmts(block.Stmts, env)
}

// execLet implements the Let aliasing law (spec §4.3): `let a = 1; let b = a`
// gives b its own fresh box holding a's current value, so later reassigning
// b (or a) does not affect the other. Reference types (List/Map/Instance)
// still alias correctly on top of this because their Value is a pointer --
// the box only ever holds the handle, never a copy of the pointee.
func (it *Interp) execLet(s *ast.Let, env *environment.Environment) error {
	val, err := it.Eval(s.Init, env)
	if err != nil {
		return err
	}
	if s.TypeAnno != "" && !values.MatchesAnnotation(val, s.TypeAnno) {
		return errs.New(errs.TypeMismatch, s.Line(), 0, s.Name.Literal,
			"%s does not match type annotation %q", val.Type(), s.TypeAnno)
	}
	env.Define(s.Name.Literal, val, s.IsConst, s.TypeAnno)
	return nil
}

// execOutput prints a value; if it is a class instance with an `_out_`
// method, that method supplies the printed representation (spec §4.3).
func (it *Interp) execOutput(s *ast.Output, env *environment.Environment) error {
	val, err := it.Eval(s.Expr, env)
	if err != nil {
		return err
	}
	text, err := it.renderOutput(val, s.Line())
	if err != nil {
		return err
	}
	fmt.Fprintln(it.Writer, text)
	return nil
}

func (it *Interp) renderOutput(val values.Value, line int) (string, error) {
	inst, ok := val.(*values.Instance)
	if !ok {
		return val.String(), nil
	}
	method, _, found := inst.Class.FindMethod("_out_")
	if !found {
		return val.String(), nil
	}
	fn, ok := method.(*function.Function)
	if !ok {
		return val.String(), nil
	}
	result, err := it.invoke(function.Bind(inst, fn), nil, line)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// execAssignment reassigns an existing binding, re-checking the box's type
// annotation (if any) against the new value -- spec §2/§7: annotations are
// enforced at definition *and* at every later assignment, not just at
// `let`.
func (it *Interp) execAssignment(s *ast.Assignment, env *environment.Environment) error {
	val, err := it.Eval(s.Value, env)
	if err != nil {
		return err
	}
	box, found := env.LookupBox(s.Name.Literal)
	if !found {
		return errs.New(errs.Runtime, s.Line(), 0, s.Name.Literal, "undefined variable %q", s.Name.Literal)
	}
	if box.IsConst {
		return errs.New(errs.Runtime, s.Line(), 0, s.Name.Literal, "cannot assign to const %q", s.Name.Literal)
	}
	if box.TypeAnno != "" && !values.MatchesAnnotation(val, box.TypeAnno) {
		return errs.New(errs.TypeMismatch, s.Line(), 0, s.Name.Literal,
			"%s does not match type annotation %q", val.Type(), box.TypeAnno)
	}
	env.Assign(s.Name.Literal, val)
	return nil
}

func (it *Interp) execSetProperty(s *ast.SetProperty, env *environment.Environment) error {
	obj, err := it.Eval(s.Object, env)
	if err != nil {
		return err
	}
	val, err := it.Eval(s.Value, env)
	if err != nil {
		return err
	}
	switch target := obj.(type) {
	case *values.Instance:
		target.Fields[s.Name.Literal] = val
		return nil
	case *values.Class:
		target.StaticAttr[s.Name.Literal] = val
		return nil
	default:
		return errs.New(errs.Runtime, s.Line(), 0, s.Name.Literal, "cannot set property %q on a %s", s.Name.Literal, obj.Type())
	}
}

func (it *Interp) execSubscriptSet(s *ast.SubscriptSet, env *environment.Environment) error {
	obj, err := it.Eval(s.Object, env)
	if err != nil {
		return err
	}
	idx, err := it.Eval(s.Index, env)
	if err != nil {
		return err
	}
	val, err := it.Eval(s.Value, env)
	if err != nil {
		return err
	}
	return it.subscriptSet(obj, idx, val, s.Closing.Line)
}

func (it *Interp) execIf(s *ast.If, env *environment.Environment) error {
	cond, err := it.Eval(s.Cond, env)
	if err != nil {
		return err
	}
	if values.Truthy(cond) {
		return it.Exec(s.Then, env)
	}
	if s.Else != nil {
		return it.Exec(s.Else, env)
	}
	return nil
}

func (it *Interp) execWhile(s *ast.While, env *environment.Environment) error {
	for {
		cond, err := it.Eval(s.Cond, env)
		if err != nil {
			return err
		}
		if !values.Truthy(cond) {
			return nil
		}
		err = it.Exec(s.Body, env)
		if err == nil {
			continue
		}
		if _, ok := err.(breakSignal); ok {
			return nil
		}
		if _, ok := err.(continueSignal); ok {
			continue
		}
		return err
	}
}

// execFor binds the loop variable in a fresh environment each iteration, so
// closures created in successive iterations capture distinct bindings
// (spec §8 loop-variable capture law).
func (it *Interp) execFor(s *ast.For, env *environment.Environment) error {
	iterable, err := it.Eval(s.Iterable, env)
	if err != nil {
		return err
	}
	elems, err := iterableElements(iterable, s.Line())
	if err != nil {
		return err
	}
	for _, elem := range elems {
		iterEnv := environment.New(env)
		iterEnv.Define(s.Var.Literal, elem, false, "")
		err := it.ExecStmts(s.Body.Stmts, iterEnv)
		if err == nil {
			continue
		}
		if _, ok := err.(breakSignal); ok {
			return nil
		}
		if _, ok := err.(continueSignal); ok {
			continue
		}
		return err
	}
	return nil
}

func iterableElements(v values.Value, line int) ([]values.Value, error) {
	switch x := v.(type) {
	case *values.List:
		return x.Elements, nil
	case *values.String:
		runes := []rune(x.Value)
		out := make([]values.Value, len(runes))
		for i, r := range runes {
			out[i] = &values.String{Value: string(r)}
		}
		return out, nil
	default:
		return nil, errs.New(errs.Runtime, line, 0, "", "cannot iterate over a %s", v.Type())
	}
}

func (it *Interp) execReturn(s *ast.Return, env *environment.Environment) error {
	if s.Value == nil {
		return returnSignal{Value: values.NilValue}
	}
	val, err := it.Eval(s.Value, env)
	if err != nil {
		return err
	}
	return returnSignal{Value: val}
}

func (it *Interp) execImport(s *ast.Import, env *environment.Environment) error {
	pathVal, err := it.Eval(s.Path, env)
	if err != nil {
		return err
	}
	str, ok := pathVal.(*values.String)
	if !ok {
		return errs.New(errs.Runtime, s.Line(), 0, "", "import path must be a string")
	}
	val, err := it.Loader.Load(str.Value, it)
	if err != nil {
		return err
	}
	env.Define(moduleBindingName(str.Value), val, true, "")
	return nil
}

// moduleBindingName derives the identifier an import is bound under: the
// path's basename, stripped of a package: prefix or file extension
// (spec §4.5 — "bind the resulting module value under the path's basename").
func moduleBindingName(path string) string {
	name := path
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, ":"); idx >= 0 {
		name = name[idx+1:]
	}
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	return name
}
