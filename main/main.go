/*
File    : mrya/main/main.go

Package main is the entry point for the Mrya interpreter. Grounded on the
teacher's main/main.go (banner, colored output, a file-run mode and a
socket-served REPL mode), rebuilt on top of urfave/cli/v3 instead of a
hand-rolled os.Args switch — the example pack's rlch-scaf CLI is the
reference for that shape — and wired to Mrya's own lexer/parser/eval/
loader/std stack rather than go-mix's.
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/internal/config"
	"github.com/mrya-lang/mrya/internal/mryalog"
	"github.com/mrya-lang/mrya/lexer"
	"github.com/mrya-lang/mrya/loader"
	"github.com/mrya-lang/mrya/parser"
	"github.com/mrya-lang/mrya/repl"
	"github.com/mrya-lang/mrya/std"
)

const version = "v1.0.0"
const author = "the Mrya project"
const license = "MIT"

const banner = `
  ███╗   ███╗██████╗ ██╗   ██╗ █████╗
  ████╗ ████║██╔══██╗╚██╗ ██╔╝██╔══██╗
  ██╔████╔██║██████╔╝ ╚████╔╝ ███████║
  ██║╚██╔╝██║██╔══██╗  ╚██╔╝  ██╔══██║
  ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
  ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝
`

const lineSep = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	app := &cli.Command{
		Name:    "mrya",
		Version: version,
		Usage:   "The Mrya scripting language",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable verbose diagnostic logging"},
			&cli.StringFlag{Name: "config", Usage: "path to mrya.yaml", Value: "mrya.yaml"},
		},
		Commands: []*cli.Command{
			runCommand(),
			replCommand(),
			serverCommand(),
			tokensCommand(),
			astCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 0 {
				return runFile(cmd, cmd.Args().First())
			}
			return startRepl(cmd)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute a Mrya source file",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("run expects a file argument", 1)
			}
			return runFile(cmd, cmd.Args().First())
		},
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Start an interactive REPL",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return startRepl(cmd)
		},
	}
}

func serverCommand() *cli.Command {
	return &cli.Command{
		Name:      "server",
		Usage:     "Serve a REPL session over TCP, one Mrya session per connection",
		ArgsUsage: "<port>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("server expects a port argument", 1)
			}
			return startServer(cmd, cmd.Args().First())
		},
	}
}

func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the token stream for a file",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("tokens expects a file argument", 1)
			}
			src, err := os.ReadFile(cmd.Args().First())
			if err != nil {
				return err
			}
			toks, err := lexer.New(string(src)).Tokens()
			if err != nil {
				redColor.Fprintf(os.Stderr, "%v\n", err)
				return cli.Exit("", 1)
			}
			for _, t := range toks {
				fmt.Println(t.String())
			}
			return nil
		},
	}
}

func astCommand() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Print the parsed AST for a file",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("ast expects a file argument", 1)
			}
			src, err := os.ReadFile(cmd.Args().First())
			if err != nil {
				return err
			}
			stmts, err := parser.Parse(string(src))
			if err != nil {
				redColor.Fprintf(os.Stderr, "%v\n", err)
				return cli.Exit("", 1)
			}
			fmt.Print(printAST(stmts))
			return nil
		},
	}
}

// newInterp wires one fresh interpreter: globals, native modules, and a
// loader rooted at baseDir (spec §4.5/§4.6).
func newInterp(cmd *cli.Command, baseDir string) (*eval.Interp, *environment.Environment) {
	log := mryalog.New(cmd.Bool("debug"))
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		cfg = config.Default()
	}

	global := environment.New(nil)
	std.RegisterGlobals(global)

	ldr := loader.New(baseDir, cfg.InstallRoot, log)
	std.RegisterNatives(ldr)

	it := eval.New(global, os.Stdout, bufio.NewReader(os.Stdin), ldr)
	it.Log = log
	return it, global
}

// runFile reads and executes a single Mrya source file (spec §6).
func runFile(cmd *cli.Command, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		return cli.Exit("", 1)
	}

	stmts, err := parser.Parse(string(src))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		return cli.Exit("", 1)
	}

	it, global := newInterp(cmd, dirOf(path))
	if err := runWithRecovery(it, stmts, global); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		return cli.Exit("", 1)
	}
	return nil
}

// runWithRecovery executes stmts, converting a panic (an unhandled Go-level
// bug rather than a Mrya-level raise, which eval already turns into an
// error) into a reported error instead of crashing the process.
func runWithRecovery(it *eval.Interp, stmts []ast.Stmt, env *environment.Environment) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("[RUNTIME ERROR] %v", r)
		}
	}()
	return it.ExecStmts(stmts, env)
}

func startRepl(cmd *cli.Command) error {
	it, global := newInterp(cmd, ".")
	r := repl.NewRepl(banner, version, author, lineSep, license, "mrya> ", it, global)
	r.Start(os.Stdin, os.Stdout)
	return nil
}

func startServer(cmd *cli.Command, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on %s: %v\n", port, err)
		return cli.Exit("", 1)
	}
	cyanColor.Printf("Mrya REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(cmd, conn)
	}
}

func handleClient(cmd *cli.Command, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	it, global := newInterp(cmd, ".")
	it.Writer = conn
	r := repl.NewRepl(banner, version, author, lineSep, license, "mrya> ", it, global)
	r.Start(conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
