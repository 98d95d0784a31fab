package parser

import (
	"strconv"

	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/lexer"
)

// expression is the entry point into the precedence climb (spec §4.2):
// logical-or, logical-and, equality, comparison, addition, multiplication,
// unary, call/get/subscript, primary — low to high. Assignment is handled
// above this, in the statement grammar, since Mrya has no general
// assignment expression.
func (p *Parser) expression() (ast.Expr, error) {
	return p.logicalOr()
}

func (p *Parser) logicalOr() (ast.Expr, error) {
	left, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.OR) {
		op := p.advance()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Base: ast.Tok(op), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) logicalAnd() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.AND) {
		op := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Base: ast.Tok(op), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.EQ) || p.check(lexer.NE) {
		op := p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Tok(op), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.addition()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.LT) || p.check(lexer.GT) || p.check(lexer.LE) || p.check(lexer.GE) {
		op := p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Tok(op), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) addition() (ast.Expr, error) {
	left, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Tok(op), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) multiplication() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.STAR) || p.check(lexer.SLASH) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Tok(op), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.check(lexer.BANG) || p.check(lexer.MINUS) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Base: ast.Tok(op), Op: op, Right: right}, nil
	}
	return p.call()
}

// call handles the left-associative postfix chain: calls, property access,
// and subscripting (spec §4.2, §3 AST: Call/Get/Subscript).
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(lexer.LPAREN):
			p.advance()
			expr, err = p.finishCall(expr)
		case p.check(lexer.DOT):
			p.advance()
			var name lexer.Token
			name, err = p.expect(lexer.IDENT, "property name after '.'")
			if err == nil {
				expr = &ast.Get{Base: ast.Tok(name), Object: expr, Name: name}
			}
		case p.check(lexer.LBRACKET):
			p.advance()
			var index ast.Expr
			index, err = p.expression()
			if err == nil {
				var closing lexer.Token
				closing, err = p.expect(lexer.RBRACKET, "']' after subscript index")
				if err == nil {
					expr = &ast.Subscript{Base: ast.Tok(closing), Object: expr, Index: index, Closing: closing}
				}
			}
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RPAREN) {
		for {
			if p.match(lexer.ELLIPSIS) {
				inner, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, &ast.Splat{Base: ast.Base{Ln: inner.Line()}, Expr: inner})
			} else {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	closing, err := p.expect(lexer.RPAREN, "')' after call arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Base: ast.Tok(closing), Callee: callee, Args: args, Closing: closing}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	t := p.cur()
	switch t.Kind {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(t.Literal, 10, 64)
		if err != nil {
			return nil, p.wrapf(t, "invalid integer literal %q", t.Literal)
		}
		return ast.NewIntLiteral(t, v), nil
	case lexer.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return nil, p.wrapf(t, "invalid float literal %q", t.Literal)
		}
		return ast.NewFloatLiteral(t, v), nil
	case lexer.STRING:
		p.advance()
		return ast.NewStringLiteral(t, t.Literal), nil
	case lexer.HSTRING:
		p.advance()
		parts, err := p.expandHString(t)
		if err != nil {
			return nil, err
		}
		return &ast.HString{Base: ast.Tok(t), Parts: parts}, nil
	case lexer.TRUE:
		p.advance()
		return ast.NewBoolLiteral(t, true), nil
	case lexer.FALSE:
		p.advance()
		return ast.NewBoolLiteral(t, false), nil
	case lexer.NIL:
		p.advance()
		return ast.NewNilLiteral(t.Line), nil
	case lexer.IDENT, lexer.INPUT:
		p.advance()
		return ast.NewVariable(t), nil
	case lexer.THIS:
		p.advance()
		return ast.NewThis(t), nil
	case lexer.INHERIT:
		p.advance()
		if _, err := p.expect(lexer.DOT, "'.' after inherit"); err != nil {
			return nil, err
		}
		method, err := p.expect(lexer.IDENT, "method name after inherit.")
		if err != nil {
			return nil, err
		}
		return &ast.Inherit{Base: ast.Tok(t), Keyword: t, Method: method}, nil
	case lexer.LPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')' to close grouped expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.LBRACKET:
		return p.listLiteral()
	case lexer.LBRACE:
		return p.mapLiteral()
	default:
		return nil, p.errorf("unexpected token %q in expression", t.Literal)
	}
}

func (p *Parser) listLiteral() (ast.Expr, error) {
	open := p.advance() // LBRACKET
	var elems []ast.Expr
	if !p.check(lexer.RBRACKET) {
		for {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RBRACKET, "']' to close list literal"); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Base: ast.Tok(open), Elements: elems}, nil
}

func (p *Parser) mapLiteral() (ast.Expr, error) {
	open := p.advance() // LBRACE
	var keys, values []ast.Expr
	if !p.check(lexer.RBRACE) {
		for {
			k, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON, "':' after map key"); err != nil {
				return nil, err
			}
			v, err := p.expression()
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			values = append(values, v)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}' to close map literal"); err != nil {
		return nil, err
	}
	return &ast.MapLiteral{Base: ast.Tok(open), Keys: keys, Values: values}, nil
}

func (p *Parser) wrapf(t lexer.Token, format string, args ...any) error {
	return errs.New(errs.Parse, t.Line, t.Column, t.Literal, format, args...)
}
