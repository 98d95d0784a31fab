package eval

import "github.com/mrya-lang/mrya/values"

// Control-flow is modeled as distinct in-band signals traveling the same
// error channel as real failures, rather than host-language exceptions
// (spec §9 Non-local control flow). The loop/call frame that owns a signal
// intercepts it by type assertion; any signal that escapes its owning frame
// propagates like an ordinary error up to the CLI driver.

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside a loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside a loop" }

// returnSignal unwinds to the nearest enclosing call frame, carrying the
// function's result value. At module top level the loader intercepts it
// directly to export a value instead of a module object (spec §4.5).
type returnSignal struct {
	Value values.Value
}

func (returnSignal) Error() string { return "return outside a function" }
