package eval

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
)

// execTry runs the try/catch/finally state machine: Raised → Matching →
// Caught | Re-raised → Finalizing → Exit. The `end` block always runs on
// every exit path, and a finalizer error supersedes whatever was in flight
// (spec §4.3 State machine, §9).
func (it *Interp) execTry(s *ast.Try, env *environment.Environment) error {
	result := it.runBlock(s.Body, env)

	switch result.(type) {
	case nil:
		return it.finalizeTry(s, env, nil)
	case breakSignal, continueSignal, returnSignal:
		// Non-local control flow is not a catchable error; it still runs
		// the finalizer on its way out (spec §4.3: "return/break/continue
		// unwind" is an exit path the `end` block must see).
		return it.finalizeTry(s, env, result)
	}

	kind := errorKindName(result)
	for _, c := range s.Catches {
		if c.Kind != "" && c.Kind != kind {
			continue
		}
		caught := it.runBlock(c.Body, env)
		return it.finalizeTry(s, env, caught)
	}

	// No clause matched: re-raise.
	return it.finalizeTry(s, env, result)
}

func (it *Interp) finalizeTry(s *ast.Try, env *environment.Environment, exitErr error) error {
	if s.Finally == nil {
		return exitErr
	}
	if finalErr := it.runBlock(s.Finally, env); finalErr != nil {
		return finalErr
	}
	return exitErr
}

func errorKindName(err error) string {
	if e, ok := err.(*errs.Error); ok {
		return string(e.Kind)
	}
	return string(errs.Runtime)
}
