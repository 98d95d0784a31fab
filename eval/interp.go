/*
Package eval is the tree-walking statement executor and expression
evaluator (spec §4.3): closure capture, call dispatch, control-flow
signals, and operator overloading through dunder methods. It is grounded on
the teacher's eval.Evaluator (a single struct threading scope/writer/reader
through a type-switch Eval, rather than a double-dispatch Visitor), adapted
to Mrya's ast/values/environment packages.
*/
package eval

import (
	"bufio"
	"io"

	"go.uber.org/zap"

	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/internal/mryalog"
	"github.com/mrya-lang/mrya/values"
)

// ModuleLoader is the narrow interface the evaluator needs from the module
// loader to execute an `import(...)` statement (spec §4.5). Defined here
// rather than depending on the loader package directly, so loader (which
// must hold an *Interp to run a file's statements) can depend on eval
// without a cycle.
// ModuleLoader returns values.Value rather than *values.Module because a
// source module whose top level executes a bare `return` exports that value
// directly instead of a module object (spec §4.5 — "this is how files export
// a class").
type ModuleLoader interface {
	Load(path string, it *Interp) (values.Value, error)
	CurrentDir() string
}

// Interp is the interpreter: one Go call stack, per spec §5's
// single-threaded, synchronous core. It holds no current-environment
// pointer; the environment is passed explicitly through Exec and Eval.
type Interp struct {
	Global *environment.Environment
	Writer io.Writer
	Reader *bufio.Reader
	Loader ModuleLoader
	Log    *zap.SugaredLogger
}

// New wires a fresh interpreter around the given global environment. The
// caller (the CLI in main/, or a test) is responsible for populating Global with
// built-ins and native modules before running any source.
func New(global *environment.Environment, w io.Writer, r *bufio.Reader, loader ModuleLoader) *Interp {
	return &Interp{
		Global: global,
		Writer: w,
		Reader: r,
		Loader: loader,
		Log:    mryalog.Nop(),
	}
}
