package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/loader"
	"github.com/mrya-lang/mrya/parser"
	"github.com/mrya-lang/mrya/std"
)

func newTestInterp(out *bytes.Buffer) (*eval.Interp, *environment.Environment) {
	global := environment.New(nil)
	std.RegisterGlobals(global)
	ldr := loader.New(".", "", nil)
	std.RegisterNatives(ldr)
	it := eval.New(global, out, bufio.NewReader(strings.NewReader("")), ldr)
	return it, global
}

func TestDirOf(t *testing.T) {
	assert.Equal(t, "scripts", dirOf("scripts/main.mrya"))
	assert.Equal(t, ".", dirOf("main.mrya"))
	assert.Equal(t, "a/b", dirOf("a/b/c.mrya"))
}

func TestRunWithRecoveryExecutesSource(t *testing.T) {
	var out bytes.Buffer
	it, env := newTestInterp(&out)

	stmts, err := parser.Parse(`output 1 + 2 * 3`)
	assert.NoError(t, err)

	err = runWithRecovery(it, stmts, env)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out.String())
}

func TestRunWithRecoveryReportsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	it, env := newTestInterp(&out)

	stmts, err := parser.Parse(`output undefined_name`)
	assert.NoError(t, err)

	err = runWithRecovery(it, stmts, env)
	assert.Error(t, err)
}

func TestPrintASTRendersIndentedTree(t *testing.T) {
	stmts, err := parser.Parse(`let a = 1 + 2`)
	assert.NoError(t, err)

	out := printAST(stmts)
	assert.Contains(t, out, "(line 1)")
	assert.True(t, strings.Count(out, "\n") >= 2)
}
