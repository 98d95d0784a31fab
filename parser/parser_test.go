package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrya-lang/mrya/ast"
)

func parseOne(t *testing.T, src string) ast.Stmt {
	t.Helper()
	stmts, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	out := parseOne(t, `output(1 + 2 * 3)`).(*ast.Output)
	bin := out.Expr.(*ast.Binary)
	assert.Equal(t, "+", string(bin.Op.Kind))
	rhs := bin.Right.(*ast.Binary)
	assert.Equal(t, "*", string(rhs.Op.Kind))
}

func TestParse_GroupedPrecedence(t *testing.T) {
	out := parseOne(t, `output((1 + 2) * 3)`).(*ast.Output)
	bin := out.Expr.(*ast.Binary)
	assert.Equal(t, "*", string(bin.Op.Kind))
	_, ok := bin.Left.(*ast.Binary)
	assert.True(t, ok)
}

func TestParse_LetConstAndTypeAnnotation(t *testing.T) {
	let := parseOne(t, `let x as int = 5`).(*ast.Let)
	assert.Equal(t, "x", let.Name.Literal)
	assert.Equal(t, "int", let.TypeAnno)
	assert.False(t, let.IsConst)

	c := parseOne(t, `const y = 1`).(*ast.Let)
	assert.True(t, c.IsConst)
}

func TestParse_AssignmentTargets(t *testing.T) {
	assign := parseOne(t, `x = 1`).(*ast.Assignment)
	assert.Equal(t, "x", assign.Name.Literal)

	setProp := parseOne(t, `obj.field = 1`).(*ast.SetProperty)
	assert.Equal(t, "field", setProp.Name.Literal)

	subSet := parseOne(t, `xs[0] = 1`).(*ast.SubscriptSet)
	_, ok := subSet.Index.(*ast.Literal)
	assert.True(t, ok)
}

func TestParse_CompoundAssignmentDesugars(t *testing.T) {
	assign := parseOne(t, `x += 1`).(*ast.Assignment)
	bin := assign.Value.(*ast.Binary)
	assert.Equal(t, "+", string(bin.Op.Kind))
	_, ok := bin.Left.(*ast.Variable)
	assert.True(t, ok)
}

func TestParse_BareCallWrappedInOutputAtTopLevel(t *testing.T) {
	stmts, err := Parse(`f()`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	out, ok := stmts[0].(*ast.Output)
	require.True(t, ok)
	_, ok = out.Expr.(*ast.Call)
	assert.True(t, ok)
}

func TestParse_BareCallInsideBlockStaysSilent(t *testing.T) {
	fn := parseOne(t, `func f = define() { g() }`).(*ast.FunctionDecl)
	require.Len(t, fn.Body.Stmts, 1)
	_, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	assert.True(t, ok)
}

func TestParse_FunctionDeclVariadic(t *testing.T) {
	fn := parseOne(t, `func sum = define(a, ...rest) { return a }`).(*ast.FunctionDecl)
	assert.Equal(t, "sum", fn.Name.Literal)
	assert.True(t, fn.Variadic)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "rest", fn.Params[1].Literal)
}

func TestParse_SplatArgument(t *testing.T) {
	out := parseOne(t, `output(sum(...args))`).(*ast.Output)
	call := out.Expr.(*ast.Call)
	require.Len(t, call.Args, 1)
	_, ok := call.Args[0].(*ast.Splat)
	assert.True(t, ok)
}

func TestParse_ClassWithInheritance(t *testing.T) {
	cls := parseOne(t, `class B < A { func greet = define() { return inherit.greet() } }`).(*ast.ClassDecl)
	assert.Equal(t, "B", cls.Name.Literal)
	super := cls.Super.(*ast.Variable)
	assert.Equal(t, "A", super.Name.Literal)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "greet", cls.Methods[0].Name.Literal)
}

func TestParse_Decorators(t *testing.T) {
	fn := parseOne(t, `% logged func f = define() { return 1 }`).(*ast.FunctionDecl)
	require.Len(t, fn.Decorators, 1)
	_, ok := fn.Decorators[0].(*ast.Variable)
	assert.True(t, ok)
}

func TestParse_TryCatchEnd(t *testing.T) {
	try := parseOne(t, `try { raise("bad") } catch RaisedError { output("caught") } end { output("end") }`).(*ast.Try)
	require.Len(t, try.Catches, 1)
	assert.Equal(t, "RaisedError", try.Catches[0].Kind)
	require.NotNil(t, try.Finally)
}

func TestParse_TryRequiresCatchOrEnd(t *testing.T) {
	_, err := Parse(`try { output(1) }`)
	assert.Error(t, err)
}

func TestParse_ForLoop(t *testing.T) {
	forStmt := parseOne(t, `for (x in xs) { output(x) }`).(*ast.For)
	assert.Equal(t, "x", forStmt.Var.Literal)
}

func TestParse_Import(t *testing.T) {
	imp := parseOne(t, `import("utils")`).(*ast.Import)
	lit := imp.Path.(*ast.Literal)
	assert.Equal(t, "utils", lit.Str)
}

func TestParse_HStringHoles(t *testing.T) {
	out := parseOne(t, "output(`hi <name>!`)").(*ast.Output)
	hs := out.Expr.(*ast.HString)
	require.Len(t, hs.Parts, 3)
	lit0 := hs.Parts[0].(*ast.Literal)
	assert.Equal(t, "hi ", lit0.Str)
	_, ok := hs.Parts[1].(*ast.Variable)
	assert.True(t, ok)
	lit2 := hs.Parts[2].(*ast.Literal)
	assert.Equal(t, "!", lit2.Str)
}

func TestParse_ListAndMapLiterals(t *testing.T) {
	let := parseOne(t, `let xs = [1, 2, 3]`).(*ast.Let)
	list := let.Init.(*ast.ListLiteral)
	assert.Len(t, list.Elements, 3)

	let2 := parseOne(t, `let m = {"a": 1, "b": 2}`).(*ast.Let)
	m := let2.Init.(*ast.MapLiteral)
	assert.Len(t, m.Keys, 2)
	assert.Len(t, m.Values, 2)
}

func TestParse_BreakContinueInsideLoop(t *testing.T) {
	w := parseOne(t, `while (true) { break }`).(*ast.While)
	require.Len(t, w.Body.Stmts, 1)
	_, ok := w.Body.Stmts[0].(*ast.Break)
	assert.True(t, ok)
}

func TestParse_BreakOutsideLoopIsError(t *testing.T) {
	_, err := Parse(`break`)
	assert.Error(t, err)
}

func TestParse_BreakInsideFunctionInsideLoopIsError(t *testing.T) {
	_, err := Parse(`while (true) { func f = define() { break } }`)
	assert.Error(t, err)
}

func TestParse_IfElseIfChain(t *testing.T) {
	ifStmt := parseOne(t, `if (a) { output(1) } else if (b) { output(2) } else { output(3) }`).(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.Block)
	assert.True(t, ok)
}
