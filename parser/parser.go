/*
Package parser implements a recursive-descent parser with Pratt-style
precedence climbing for expressions (spec §4.2), grounded on the teacher's
parser package layout (parser.go core + parser_*.go split by grammar
concern). The parser does not attempt resynchronization: the first error
aborts, matching the teacher's own single-shot ParseError behavior.
*/
package parser

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/lexer"
)

type Parser struct {
	toks      []lexer.Token
	pos       int
	loopDepth int
}

// New scans src's full token stream up front, which keeps look-ahead in the
// grammar rules simple (mirrors the teacher's NewParser(src) entry point).
func New(src string) (*Parser, error) {
	toks, err := lexer.New(src).Tokens()
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks}, nil
}

// newFromTokens is used by the h-string hole expander, which re-lexes a
// fragment of source and hands the resulting tokens straight to a fresh
// sub-parser (spec §4.2 H-string expansion, §9).
func newFromTokens(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

func (p *Parser) cur() lexer.Token { return p.toks[p.pos] }
func (p *Parser) atEnd() bool      { return p.cur().Kind == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(k lexer.Kind) bool { return p.cur().Kind == k }

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(k lexer.Kind, what string) (lexer.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorf("expected %s, got %q", what, p.cur().Literal)
}

func (p *Parser) errorf(format string, args ...any) error {
	t := p.cur()
	return errs.New(errs.Parse, t.Line, t.Column, t.Literal, format, args...)
}

// Parse consumes the whole token stream into a top-level statement list
// (spec §3 AST: a program is a Statement list).
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, topLevelOutputSugar(stmt))
	}
	return stmts, nil
}

// topLevelOutputSugar implements the "bare top-level call expression is
// wrapped in an Output statement" REPL-ergonomic rule (spec §4.2). It only
// applies at the program's outermost statement list, not inside function,
// loop, or conditional bodies, so a side-effecting call used as an ordinary
// statement inside a block stays silent.
func topLevelOutputSugar(stmt ast.Stmt) ast.Stmt {
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return stmt
	}
	if call, ok := es.Expr.(*ast.Call); ok {
		return &ast.Output{Base: ast.Base{Ln: call.Line()}, Expr: call}
	}
	return stmt
}

// Parse is a package-level convenience wrapping New+Parse, used by the
// module loader and the CLI's run entry point.
func Parse(src string) ([]ast.Stmt, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}
