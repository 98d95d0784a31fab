package values

// Convention tags the three native calling conventions the evaluator must
// distinguish (spec §4.6/§9): plain functions, functions that need a handle
// back into the interpreter (to call user code, or resolve the current
// directory), and receiver-bound lambdas synthesized for string property
// access (spec §4.3 Get-on-string).
type Convention int

const (
	ConventionPure Convention = iota
	ConventionInterpreterAware
	ConventionReceiverBound
)

// NativeFunc is a host function. For ConventionInterpreterAware natives the
// first element of args is always the interpreter handle, injected by the
// evaluator; callers never pass it themselves.
type NativeFunc func(args []Value) (Value, error)

// NativeCallable is a host-provided callable registered into a native
// module (spec §3 Values, §4.6).
type NativeCallable struct {
	Name       string
	Conv       Convention
	Fn         NativeFunc
	MinArity   int
	Variadic   bool
}

func (n *NativeCallable) Type() Type        { return NativeType }
func (n *NativeCallable) String() string    { return "<native " + n.Name + ">" }
func (n *NativeCallable) Inspect() string   { return n.String() }
func (n *NativeCallable) CallableName() string { return n.Name }
func (n *NativeCallable) IsVariadic() bool     { return n.Variadic }
func (n *NativeCallable) Params() []string     { return nil }

// BindReceiver produces a ConventionReceiverBound wrapper that prepends recv
// to whatever arguments the caller supplies — used for `"str".upper()`
// style string-module property access (spec §4.3, §4.6).
func BindReceiver(name string, recv Value, fn NativeFunc) *NativeCallable {
	return &NativeCallable{
		Name: name,
		Conv: ConventionReceiverBound,
		Fn: func(args []Value) (Value, error) {
			full := make([]Value, 0, len(args)+1)
			full = append(full, recv)
			full = append(full, args...)
			return fn(full)
		},
	}
}
