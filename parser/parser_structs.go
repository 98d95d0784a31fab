package parser

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/lexer"
)

// classDecl parses `class Name [< Super] { methodDecl* }` (spec §4.2, §4.4).
// Methods reuse the func/define form; each may carry its own decorators.
func (p *Parser) classDecl(decorators []ast.Expr) (ast.Stmt, error) {
	kw := p.advance() // CLASS
	name, err := p.expect(lexer.IDENT, "class name")
	if err != nil {
		return nil, err
	}
	var super ast.Expr
	if p.match(lexer.LT) {
		super, err = p.call()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.LBRACE, "'{' to start class body"); err != nil {
		return nil, err
	}
	var methods []*ast.FunctionDecl
	for !p.check(lexer.RBRACE) && !p.atEnd() {
		methodDecorators, err := p.collectDecorators()
		if err != nil {
			return nil, err
		}
		if !p.check(lexer.FUNC) {
			return nil, p.errorf("expected method declaration in class body, got %q", p.cur().Literal)
		}
		methodStmt, err := p.functionDecl(methodDecorators)
		if err != nil {
			return nil, err
		}
		methods = append(methods, methodStmt.(*ast.FunctionDecl))
	}
	if _, err := p.expect(lexer.RBRACE, "'}' to close class body"); err != nil {
		return nil, err
	}
	return &ast.ClassDecl{Base: ast.Tok(kw), Name: name, Super: super, Methods: methods, Decorators: decorators}, nil
}
