package std

import (
	"time"

	"github.com/mrya-lang/mrya/values"
)

// NewTimeModule builds the `time` native module (spec §7 Domain stack).
// Grounded on the teacher's std/time.go wrapper-per-stdlib-function shape;
// Mrya has no Duration value type, so durations are plain Float seconds.
func NewTimeModule() *values.Module {
	b := NewModule("time")
	b.Func("now", 0, timeNow)
	b.Func("unix", 0, timeUnix)
	b.Func("format", 2, timeFormat)
	b.Func("sleep", 1, timeSleep)
	b.Func("since", 1, timeSince)
	return b.Build()
}

// Syntax: now() -- Unix seconds as a Float, fractional
func timeNow(args []values.Value) (values.Value, error) {
	return F(float64(time.Now().UnixNano()) / 1e9), nil
}

// Syntax: unix() -- Unix seconds as an Int
func timeUnix(args []values.Value) (values.Value, error) {
	return I(time.Now().Unix()), nil
}

// Syntax: format(unix_seconds, layout) -- layout uses Go reference-time
// syntax (spec recovers this from original_source's strftime-style usage,
// adapted to the teacher's preferred stdlib idiom rather than hand-rolling
// a strftime table).
func timeFormat(args []values.Value) (values.Value, error) {
	sec, ok := AsFloat(args[0])
	if !ok {
		return nil, WrongType("format", 0, "number", args[0])
	}
	layout, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("format", 1, "string", args[1])
	}
	t := time.Unix(int64(sec), 0).UTC()
	return Str(t.Format(layout)), nil
}

// Syntax: sleep(seconds)
func timeSleep(args []values.Value) (values.Value, error) {
	sec, ok := AsFloat(args[0])
	if !ok {
		return nil, WrongType("sleep", 0, "number", args[0])
	}
	time.Sleep(time.Duration(sec * float64(time.Second)))
	return values.NilValue, nil
}

// Syntax: since(unix_seconds) -- elapsed seconds as a Float
func timeSince(args []values.Value) (values.Value, error) {
	sec, ok := AsFloat(args[0])
	if !ok {
		return nil, WrongType("since", 0, "number", args[0])
	}
	return F(time.Since(time.Unix(int64(sec), 0)).Seconds()), nil
}
