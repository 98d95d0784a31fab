package parser

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/lexer"
)

// functionDecl parses `func name = define(params) { body }` (spec §4.2: "the
// unusual form is historical"). A parameter list may end with `...last` to
// mark the function variadic.
func (p *Parser) functionDecl(decorators []ast.Expr) (ast.Stmt, error) {
	kw := p.advance() // FUNC
	name, err := p.expect(lexer.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN, "'=' after function name"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DEFINE, "'define' in function declaration"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'(' to start parameter list"); err != nil {
		return nil, err
	}
	params, variadic, err := p.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')' to close parameter list"); err != nil {
		return nil, err
	}
	// A break/continue cannot cross a function boundary to reach a loop it
	// textually appears inside but dynamically does not run inside.
	savedLoopDepth := p.loopDepth
	p.loopDepth = 0
	body, err := p.block()
	p.loopDepth = savedLoopDepth
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{
		Base:       ast.Tok(kw),
		Name:       name,
		Params:     params,
		Variadic:   variadic,
		Body:       body,
		Decorators: decorators,
	}, nil
}

func (p *Parser) paramList() ([]lexer.Token, bool, error) {
	var params []lexer.Token
	variadic := false
	if p.check(lexer.RPAREN) {
		return params, variadic, nil
	}
	for {
		if p.match(lexer.ELLIPSIS) {
			name, err := p.expect(lexer.IDENT, "parameter name after '...'")
			if err != nil {
				return nil, false, err
			}
			params = append(params, name)
			variadic = true
			break
		}
		name, err := p.expect(lexer.IDENT, "parameter name")
		if err != nil {
			return nil, false, err
		}
		params = append(params, name)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return params, variadic, nil
}
