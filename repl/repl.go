/*
Package repl implements the Read-Eval-Print Loop for the Mrya interpreter.
Grounded on the teacher's repl.Repl (banner/colors/readline-driven loop,
kept nearly verbatim), rewired to Mrya's parser/eval/environment stack
instead of go-mix's single Evaluator/Parser pair, and extended with the
trailing-backslash line-continuation rule (spec §6).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a Read-Eval-Print Loop bound to a single running interpreter, so
// definitions made at one prompt remain visible to the next (spec §6).
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Interp *eval.Interp
	Env    *environment.Environment
}

// NewRepl creates a REPL around an already-wired interpreter and the
// environment its prompts should evaluate into (typically it.Global).
func NewRepl(banner, version, author, line, license, prompt string, it *eval.Interp, env *environment.Environment) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		Interp: it, Env: env,
	}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Mrya!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "End a line with '\\' to continue it on the next line")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a (possibly continued) line, parse it,
// execute it against r.Env, print errors in red. Unlike file execution,
// the loop survives an error and returns to the prompt (spec §6).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
		Stderr: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, ok := r.readLogicalLine(rl, writer)
		if !ok {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// readLogicalLine joins consecutive input lines ending in a trailing
// backslash into one logical line before parsing (spec §6 continuation).
func (r *Repl) readLogicalLine(rl *readline.Instance, writer io.Writer) (string, bool) {
	var sb strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", false
		}
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.HasSuffix(trimmed, "\\") {
			sb.WriteString(strings.TrimSuffix(trimmed, "\\"))
			sb.WriteString("\n")
			rl.SetPrompt("... ")
			continue
		}
		sb.WriteString(line)
		rl.SetPrompt(r.Prompt)
		return sb.String(), true
	}
}

func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	stmts, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if err := r.Interp.ExecStmts(stmts, r.Env); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
}
