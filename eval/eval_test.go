package eval

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/parser"
	"github.com/mrya-lang/mrya/values"
)

// raiseFn is a minimal stand-in for std.RegisterGlobals' `raise`, kept local
// to this package to avoid eval_test importing std (std already imports
// eval, so the reverse import would cycle).
func raiseFn(args []values.Value) (values.Value, error) {
	msg := "error"
	if len(args) > 0 {
		msg = args[0].String()
	}
	return nil, errs.New(errs.Raised, 0, 0, "", "%s", msg)
}

func newTestInterp(t *testing.T) (*Interp, *environment.Environment, *bytes.Buffer) {
	t.Helper()
	global := environment.New(nil)
	global.Define("raise", &values.NativeCallable{
		Name: "raise", Conv: values.ConventionPure, Fn: raiseFn, Variadic: true,
	}, true, "")
	var out bytes.Buffer
	it := New(global, &out, bufio.NewReader(strings.NewReader("")), nil)
	return it, global, &out
}

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	it, global, out := newTestInterp(t)
	stmts, err := parser.Parse(src)
	require.NoError(t, err)
	err = it.ExecStmts(stmts, global)
	return out.String(), err
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	out, err := run(t, `
func make_counter = define() {
	let n = 0
	func inc = define() {
		n = n + 1
		return n
	}
	return inc
}
let c = make_counter()
output(c())
output(c())
output(c())
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestLoopVariableCaptureIsPerIteration(t *testing.T) {
	out, err := run(t, `
let fns = [0, 0, 0]
for (i in [1, 2, 3]) {
	func f = define() {
		return i
	}
	fns[i - 1] = f
}
output(fns[0]())
output(fns[1]())
output(fns[2]())
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestLetAliasingSharesValueNotBox(t *testing.T) {
	out, err := run(t, `
let a = 1
let b = a
b = 99
output(a)
output(b)
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n99\n", out)
}

func TestLetAliasingOfListStillAliasesThroughThePointer(t *testing.T) {
	out, err := run(t, `
let a = [1, 2]
let b = a
b[0] = 99
output(a[0])
`)
	require.NoError(t, err)
	assert.Equal(t, "99\n", out)
}

func TestTypedBindingRejectsMismatchAtAssignment(t *testing.T) {
	_, err := run(t, `
let x as int = 1
x = "a"
`)
	require.Error(t, err)
	mryaErr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.TypeMismatch, mryaErr.Kind)
}

func TestTypedBindingAcceptsMatchingAssignment(t *testing.T) {
	out, err := run(t, `
let x as int = 1
x = 2
output(x)
`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestTryCatchMatchesByKindName(t *testing.T) {
	out, err := run(t, `
try {
	raise("boom")
} catch RaisedError {
	output("caught")
}
`)
	require.NoError(t, err)
	assert.Equal(t, "caught\n", out)
}

func TestTryFinallyAlwaysRuns(t *testing.T) {
	out, err := run(t, `
try {
	output("body")
} catch RaisedError {
	output("caught")
} end {
	output("finally")
}
`)
	require.NoError(t, err)
	assert.Equal(t, "body\nfinally\n", out)
}

func TestTryFinallyErrorSupersedesInFlightError(t *testing.T) {
	_, err := run(t, `
try {
	raise("body error")
} catch OtherKind {
	output("unreachable")
} end {
	raise("finally error")
}
`)
	require.Error(t, err)
	mryaErr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Contains(t, mryaErr.Message, "finally error")
}

func TestClassInheritanceResolvesSuperMethod(t *testing.T) {
	out, err := run(t, `
class Animal {
	func _start_ = define(name) {
		this.name = name
	}
	func greet = define() {
		return "hi " + this.name
	}
}
class Dog < Animal {
	func greet = define() {
		return inherit.greet() + "!"
	}
}
let d = Dog("rex")
output(d.greet())
`)
	require.NoError(t, err)
	assert.Equal(t, "hi rex!\n", out)
}
