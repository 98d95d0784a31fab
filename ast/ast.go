/*
Package ast defines the tagged node variants produced by the parser and
walked by the evaluator: Expr and Stmt, per spec §3. Every node that can
fail at runtime carries enough token reference to report a source line.
*/
package ast

import "github.com/mrya-lang/mrya/lexer"

// Node is the minimal contract every AST node satisfies: a source line for
// error attribution and a one-line textual label used by the `ast` command's
// dump.
type Node interface {
	Line() int
	Label() string
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

type Base struct {
	Ln int
}

func (b Base) Line() int { return b.Ln }

// Block is a brace-delimited statement list, used for function/method
// bodies, if/while/for bodies, and try/catch/finally bodies.
type Block struct {
	Base
	Stmts []Stmt
}

func (b *Block) Label() string { return "Block" }
func (b *Block) stmtNode()     {}

func NewBlock(line int, stmts []Stmt) *Block {
	return &Block{Base: Base{Ln: line}, Stmts: stmts}
}

func Tok(t lexer.Token) Base { return Base{Ln: t.Line} }
