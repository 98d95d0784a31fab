package std

import (
	"github.com/gammazero/workerpool"

	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/values"
)

// future is the value returned by async.spawn: a handle to a task still
// running on the worker pool. await() blocks the calling Mrya code on
// fut.done (spec §7 Domain stack, async module).
type future struct {
	done   chan struct{}
	result values.Value
	err    error
}

func (*future) Type() values.Type { return values.Type("native:future") }
func (*future) String() string    { return "<future>" }
func (*future) Inspect() string   { return "<future>" }

// asyncPool backs the `async` native module: tasks submitted via spawn run
// on gammazero/workerpool goroutines, each serialized against interpLock
// before touching the interpreter, since the tree-walking evaluator's
// environment chain is not safe for concurrent mutation (spec §5).
var asyncPool = workerpool.New(4)

// NewAsyncModule builds the `async` native module.
func NewAsyncModule() *values.Module {
	b := NewModule("async")
	b.Aware("spawn", 1, asyncSpawn)
	b.Func("await", 1, asyncAwait)
	b.Variadic("gather", 0, asyncGather)
	return b.Build()
}

// Syntax: spawn(fn) -- fn is called with no arguments on a worker goroutine
func asyncSpawn(args []values.Value) (values.Value, error) {
	handle, ok := args[0].(*eval.InterpHandle)
	if !ok {
		return nil, ArgError("spawn", "internal: missing interpreter handle")
	}
	fn := args[1]
	fut := &future{done: make(chan struct{})}
	asyncPool.Submit(func() {
		interpLock.Lock()
		defer interpLock.Unlock()
		fut.result, fut.err = handle.It.Invoke(fn, nil)
		close(fut.done)
	})
	return fut, nil
}

// Syntax: await(future) -- blocks until the task completes
func asyncAwait(args []values.Value) (values.Value, error) {
	fut, ok := args[0].(*future)
	if !ok {
		return nil, WrongType("await", 0, "future", args[0])
	}
	<-fut.done
	if fut.err != nil {
		return nil, fut.err
	}
	return fut.result, nil
}

// Syntax: gather(future, future, ...) -- awaits every future, returns
// their results as a list in argument order
func asyncGather(args []values.Value) (values.Value, error) {
	results := make([]values.Value, len(args))
	for i, a := range args {
		fut, ok := a.(*future)
		if !ok {
			return nil, WrongType("gather", i, "future", a)
		}
		<-fut.done
		if fut.err != nil {
			return nil, fut.err
		}
		results[i] = fut.result
	}
	return values.NewList(results), nil
}
