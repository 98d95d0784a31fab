/*
File    : mrya/main/print_visitor.go
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/mrya-lang/mrya/ast"
)

const indentSize = 2

// printingVisitor renders a parsed statement list as an indented tree of
// node Labels, grounded on the teacher's PrintingVisitor (main/print_visitor.go)
// — same indent-and-recurse shape, rebuilt against ast.Node's Label()
// method instead of a double-dispatch Accept/Visit pair, since Mrya's ast
// package carries one Label() per node rather than a Visitor interface.
type printingVisitor struct {
	indent int
	buf    bytes.Buffer
}

func (p *printingVisitor) line(n ast.Node) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, "%s (line %d)\n", n.Label(), n.Line())
}

func (p *printingVisitor) in()  { p.indent += indentSize }
func (p *printingVisitor) out() { p.indent -= indentSize }

func (p *printingVisitor) visitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		p.visitStmt(s)
	}
}

func (p *printingVisitor) visitStmt(s ast.Stmt) {
	p.line(s)
	p.in()
	switch n := s.(type) {
	case *ast.Let:
		p.visitExpr(n.Init)
	case *ast.Output:
		p.visitExpr(n.Expr)
	case *ast.Assignment:
		p.visitExpr(n.Value)
	case *ast.SubscriptSet:
		p.visitExpr(n.Object)
		p.visitExpr(n.Index)
		p.visitExpr(n.Value)
	case *ast.SetProperty:
		p.visitExpr(n.Object)
		p.visitExpr(n.Value)
	case *ast.If:
		p.visitExpr(n.Cond)
		p.visitStmt(n.Then)
		if n.Else != nil {
			p.visitStmt(n.Else)
		}
	case *ast.While:
		p.visitExpr(n.Cond)
		p.visitStmt(n.Body)
	case *ast.For:
		p.visitExpr(n.Iterable)
		p.visitStmt(n.Body)
	case *ast.Return:
		if n.Value != nil {
			p.visitExpr(n.Value)
		}
	case *ast.Try:
		p.visitStmt(n.Body)
		for _, c := range n.Catches {
			p.visitStmt(c.Body)
		}
		if n.Finally != nil {
			p.visitStmt(n.Finally)
		}
	case *ast.FunctionDecl:
		p.visitStmt(n.Body)
	case *ast.ClassDecl:
		if n.Super != nil {
			p.visitExpr(n.Super)
		}
		for _, m := range n.Methods {
			p.visitStmt(m)
		}
	case *ast.Import:
		p.visitExpr(n.Path)
	case *ast.ExprStmt:
		p.visitExpr(n.Expr)
	case *ast.Block:
		p.visitStmts(n.Stmts)
	}
	p.out()
}

func (p *printingVisitor) visitExpr(e ast.Expr) {
	p.line(e)
	p.in()
	switch n := e.(type) {
	case *ast.ListLiteral:
		for _, el := range n.Elements {
			p.visitExpr(el)
		}
	case *ast.MapLiteral:
		for i := range n.Keys {
			p.visitExpr(n.Keys[i])
			p.visitExpr(n.Values[i])
		}
	case *ast.HString:
		for _, part := range n.Parts {
			p.visitExpr(part)
		}
	case *ast.Unary:
		p.visitExpr(n.Right)
	case *ast.Binary:
		p.visitExpr(n.Left)
		p.visitExpr(n.Right)
	case *ast.Logical:
		p.visitExpr(n.Left)
		p.visitExpr(n.Right)
	case *ast.Get:
		p.visitExpr(n.Object)
	case *ast.Subscript:
		p.visitExpr(n.Object)
		p.visitExpr(n.Index)
	case *ast.Call:
		p.visitExpr(n.Callee)
		for _, a := range n.Args {
			p.visitExpr(a)
		}
	case *ast.Splat:
		p.visitExpr(n.Expr)
	}
	p.out()
}

func (p *printingVisitor) String() string { return p.buf.String() }

// printAST renders stmts as an indented tree, used by the `mrya ast` command.
func printAST(stmts []ast.Stmt) string {
	p := &printingVisitor{}
	p.visitStmts(stmts)
	return p.String()
}
