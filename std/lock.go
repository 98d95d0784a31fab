package std

import "sync"

// interpLock serializes every native-module callback into the running
// interpreter (spec §5: the evaluator's core is single-threaded and
// synchronous). The http module's request handlers and the async module's
// worker-pool tasks both run on goroutines outside the interpreter's own
// call stack, so each must hold this lock for the duration of any call
// back into user code.
var interpLock sync.Mutex
