package ast

import "github.com/mrya-lang/mrya/lexer"

// Let is `let`/`const name [as type] = initializer`.
type Let struct {
	Base
	Name        lexer.Token
	Init        Expr
	IsConst     bool
	TypeAnno    string // "" means no annotation
}

func (l *Let) Label() string { return "Let(" + l.Name.Literal + ")" }
func (l *Let) stmtNode()     {}

// Output is `output(expr)` or the bare-call-at-top-level sugar (spec §4.2).
type Output struct {
	Base
	Expr Expr
}

func (o *Output) Label() string { return "Output" }
func (o *Output) stmtNode()     {}

// Assignment is `name = value` (compound assignments are desugared by the
// parser into this form before reaching the evaluator).
type Assignment struct {
	Base
	Name  lexer.Token
	Value Expr
}

func (a *Assignment) Label() string { return "Assignment(" + a.Name.Literal + ")" }
func (a *Assignment) stmtNode()     {}

// SubscriptSet is `object[index] = value`.
type SubscriptSet struct {
	Base
	Object  Expr
	Index   Expr
	Value   Expr
	Closing lexer.Token
}

func (s *SubscriptSet) Label() string { return "SubscriptSet" }
func (s *SubscriptSet) stmtNode()     {}

// SetProperty is `object.name = value`.
type SetProperty struct {
	Base
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (s *SetProperty) Label() string { return "SetProperty(." + s.Name.Literal + ")" }
func (s *SetProperty) stmtNode()     {}

type If struct {
	Base
	Cond Expr
	Then *Block
	Else Stmt // *Block or *If (else-if chain), nil if absent
}

func (i *If) Label() string { return "If" }
func (i *If) stmtNode()     {}

type While struct {
	Base
	Cond Expr
	Body *Block
}

func (w *While) Label() string { return "While" }
func (w *While) stmtNode()     {}

// For is `for (var in iterable) { body }`. A fresh scope binding Var is
// created per iteration (spec §3 Lifecycle, loop-variable capture law).
type For struct {
	Base
	Var      lexer.Token
	Iterable Expr
	Body     *Block
}

func (f *For) Label() string { return "For(" + f.Var.Literal + ")" }
func (f *For) stmtNode()     {}

type Break struct {
	Base
	Keyword lexer.Token
}

func (b *Break) Label() string { return "Break" }
func (b *Break) stmtNode()     {}

type Continue struct {
	Base
	Keyword lexer.Token
}

func (c *Continue) Label() string { return "Continue" }
func (c *Continue) stmtNode()     {}

type Return struct {
	Base
	Keyword lexer.Token
	Value   Expr // nil if bare `return`
}

func (r *Return) Label() string { return "Return" }
func (r *Return) stmtNode()     {}

// Catch is one `catch [Kind] { body }` clause; Kind == "" means catch-all.
type Catch struct {
	Kind string
	Body *Block
}

// Try is `try { } catch ... [end { }]` (spec §4.3 state machine).
type Try struct {
	Base
	Body    *Block
	Catches []Catch
	Finally *Block // nil if no `end` block
}

func (t *Try) Label() string { return "Try" }
func (t *Try) stmtNode()     {}

// FunctionDecl is `func name = define(params) { body }`, with zero or more
// `% expr` decorator lines collected above it.
type FunctionDecl struct {
	Base
	Name       lexer.Token
	Params     []lexer.Token
	Variadic   bool // last param binds the remaining arguments as a list
	Body       *Block
	Decorators []Expr
}

func (f *FunctionDecl) Label() string { return "FunctionDecl(" + f.Name.Literal + ")" }
func (f *FunctionDecl) stmtNode()     {}

// ClassDecl is `class Name [< Super] { methodDecl* }`.
type ClassDecl struct {
	Base
	Name       lexer.Token
	Super      Expr // nil if no superclass
	Methods    []*FunctionDecl
	Decorators []Expr
}

func (c *ClassDecl) Label() string { return "ClassDecl(" + c.Name.Literal + ")" }
func (c *ClassDecl) stmtNode()     {}

// Import is `import("path")` rewritten from an expression-statement.
type Import struct {
	Base
	Path Expr
}

func (i *Import) Label() string { return "Import" }
func (i *Import) stmtNode()     {}

// ExprStmt is a bare expression used for its side effect.
type ExprStmt struct {
	Base
	Expr Expr
}

func (e *ExprStmt) Label() string { return "ExprStmt" }
func (e *ExprStmt) stmtNode()     {}
