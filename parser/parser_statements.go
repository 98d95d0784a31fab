package parser

import (
	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/lexer"
)

// declaration sits above statement() so that decorator lines (`% expr`,
// spec §4.2) can be collected before a func/class declaration, which is the
// only context they're legal in.
func (p *Parser) declaration() (ast.Stmt, error) {
	decorators, err := p.collectDecorators()
	if err != nil {
		return nil, err
	}
	switch {
	case p.check(lexer.FUNC):
		return p.functionDecl(decorators)
	case p.check(lexer.CLASS):
		return p.classDecl(decorators)
	case len(decorators) > 0:
		return nil, p.errorf("decorators must precede a func or class declaration")
	default:
		return p.statement()
	}
}

func (p *Parser) collectDecorators() ([]ast.Expr, error) {
	var decorators []ast.Expr
	for p.check(lexer.PERCENT) {
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, expr)
	}
	return decorators, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch p.cur().Kind {
	case lexer.LET, lexer.CONST:
		return p.letStmt()
	case lexer.OUTPUT:
		return p.outputStmt()
	case lexer.IMPORT:
		return p.importStmt()
	case lexer.IF:
		return p.ifStmt()
	case lexer.WHILE:
		return p.whileStmt()
	case lexer.FOR:
		return p.forStmt()
	case lexer.BREAK:
		kw := p.advance()
		if p.loopDepth == 0 {
			return nil, p.wrapf(kw, "'break' outside a loop")
		}
		p.match(lexer.SEMI)
		return &ast.Break{Base: ast.Tok(kw), Keyword: kw}, nil
	case lexer.CONTINUE:
		kw := p.advance()
		if p.loopDepth == 0 {
			return nil, p.wrapf(kw, "'continue' outside a loop")
		}
		p.match(lexer.SEMI)
		return &ast.Continue{Base: ast.Tok(kw), Keyword: kw}, nil
	case lexer.RETURN:
		return p.returnStmt()
	case lexer.TRY:
		return p.tryStmt()
	case lexer.LBRACE:
		return p.block()
	default:
		return p.exprOrAssignStmt()
	}
}

func (p *Parser) letStmt() (ast.Stmt, error) {
	kw := p.advance() // LET or CONST
	isConst := kw.Kind == lexer.CONST
	name, err := p.expect(lexer.IDENT, "identifier after let/const")
	if err != nil {
		return nil, err
	}
	typeAnno := ""
	if p.match(lexer.AS) {
		tag, err := p.expect(lexer.IDENT, "type tag after 'as'")
		if err != nil {
			return nil, err
		}
		typeAnno = tag.Literal
	}
	if _, err := p.expect(lexer.ASSIGN, "'=' in let binding"); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.match(lexer.SEMI)
	return &ast.Let{Base: ast.Tok(kw), Name: name, Init: init, IsConst: isConst, TypeAnno: typeAnno}, nil
}

// outputStmt accepts both `output(expr)` and the bare keyword-prefix form
// `output expr`; the parenthesized call form is canonical (spec §9 open
// question).
func (p *Parser) outputStmt() (ast.Stmt, error) {
	kw := p.advance() // OUTPUT
	var expr ast.Expr
	var err error
	if p.match(lexer.LPAREN) {
		expr, err = p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')' after output argument"); err != nil {
			return nil, err
		}
	} else {
		expr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	p.match(lexer.SEMI)
	return &ast.Output{Base: ast.Tok(kw), Expr: expr}, nil
}

func (p *Parser) importStmt() (ast.Stmt, error) {
	kw := p.advance() // IMPORT
	if _, err := p.expect(lexer.LPAREN, "'(' after import"); err != nil {
		return nil, err
	}
	path, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')' after import path"); err != nil {
		return nil, err
	}
	p.match(lexer.SEMI)
	return &ast.Import{Base: ast.Tok(kw), Path: path}, nil
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	kw := p.advance() // IF
	if _, err := p.expect(lexer.LPAREN, "'(' after if"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		if p.check(lexer.IF) {
			elseBranch, err = p.ifStmt()
		} else {
			elseBranch, err = p.block()
		}
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Base: ast.Tok(kw), Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	kw := p.advance() // WHILE
	if _, err := p.expect(lexer.LPAREN, "'(' after while"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')' after while condition"); err != nil {
		return nil, err
	}
	p.loopDepth++
	body, err := p.block()
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	return &ast.While{Base: ast.Tok(kw), Cond: cond, Body: body}, nil
}

func (p *Parser) forStmt() (ast.Stmt, error) {
	kw := p.advance() // FOR
	if _, err := p.expect(lexer.LPAREN, "'(' after for"); err != nil {
		return nil, err
	}
	varTok, err := p.expect(lexer.IDENT, "loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN, "'in' in for loop"); err != nil {
		return nil, err
	}
	iterable, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')' after for iterable"); err != nil {
		return nil, err
	}
	p.loopDepth++
	body, err := p.block()
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	return &ast.For{Base: ast.Tok(kw), Var: varTok, Iterable: iterable, Body: body}, nil
}

// canStartExpr reports whether kind can begin an expression, used to decide
// whether a bare `return` carries a value.
func canStartExpr(k lexer.Kind) bool {
	switch k {
	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.HSTRING, lexer.IDENT,
		lexer.TRUE, lexer.FALSE, lexer.NIL, lexer.LPAREN, lexer.LBRACKET,
		lexer.LBRACE, lexer.MINUS, lexer.BANG, lexer.THIS, lexer.INHERIT,
		lexer.ELLIPSIS:
		return true
	default:
		return false
	}
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	kw := p.advance() // RETURN
	var value ast.Expr
	if canStartExpr(p.cur().Kind) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	p.match(lexer.SEMI)
	return &ast.Return{Base: ast.Tok(kw), Keyword: kw, Value: value}, nil
}

func (p *Parser) tryStmt() (ast.Stmt, error) {
	kw := p.advance() // TRY
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	var catches []ast.Catch
	for p.match(lexer.CATCH) {
		kind := ""
		if p.check(lexer.IDENT) {
			kindTok := p.advance()
			kind = kindTok.Literal
		}
		cbody, err := p.block()
		if err != nil {
			return nil, err
		}
		catches = append(catches, ast.Catch{Kind: kind, Body: cbody})
	}
	var finally *ast.Block
	if p.match(lexer.END) {
		finally, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	if len(catches) == 0 && finally == nil {
		return nil, p.errorf("try requires at least one catch clause or an end block")
	}
	return &ast.Try{Base: ast.Tok(kw), Body: body, Catches: catches, Finally: finally}, nil
}

func (p *Parser) block() (*ast.Block, error) {
	open, err := p.expect(lexer.LBRACE, "'{' to start a block")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.check(lexer.RBRACE) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RBRACE, "'}' to close a block"); err != nil {
		return nil, err
	}
	return ast.NewBlock(open.Line, stmts), nil
}

var assignOps = []lexer.Kind{lexer.ASSIGN, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN, lexer.SLASH_ASSIGN}

func compoundOpFor(k lexer.Kind) lexer.Kind {
	switch k {
	case lexer.PLUS_ASSIGN:
		return lexer.PLUS
	case lexer.MINUS_ASSIGN:
		return lexer.MINUS
	case lexer.STAR_ASSIGN:
		return lexer.STAR
	case lexer.SLASH_ASSIGN:
		return lexer.SLASH
	default:
		return lexer.ASSIGN
	}
}

// exprOrAssignStmt parses an expression, then reinterprets it as an
// assignment target if an assignment operator follows (spec §4.2: x = e,
// obj.field = e, obj[i] = e; compound ops desugar to `target = target OP
// value` here, so the evaluator has one assignment path per target kind).
func (p *Parser) exprOrAssignStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if p.curIsAssignOp() {
		opTok := p.advance()
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		if opTok.Kind != lexer.ASSIGN {
			binOp := compoundOpFor(opTok.Kind)
			rhs = &ast.Binary{Base: ast.Tok(opTok), Left: expr, Op: lexer.New(binOp, string(binOp), opTok.Line, opTok.Column), Right: rhs}
		}
		p.match(lexer.SEMI)
		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assignment{Base: ast.Tok(target.Name), Name: target.Name, Value: rhs}, nil
		case *ast.Get:
			return &ast.SetProperty{Base: ast.Tok(target.Name), Object: target.Object, Name: target.Name, Value: rhs}, nil
		case *ast.Subscript:
			return &ast.SubscriptSet{Base: ast.Tok(target.Closing), Object: target.Object, Index: target.Index, Value: rhs, Closing: target.Closing}, nil
		default:
			return nil, p.errorf("invalid assignment target")
		}
	}

	p.match(lexer.SEMI)
	if call, ok := expr.(*ast.Call); ok {
		return &ast.ExprStmt{Base: ast.Base{Ln: call.Line()}, Expr: call}, nil
	}
	return &ast.ExprStmt{Base: ast.Base{Ln: expr.Line()}, Expr: expr}, nil
}

func (p *Parser) curIsAssignOp() bool {
	for _, k := range assignOps {
		if p.check(k) {
			return true
		}
	}
	return false
}
