package parser

import (
	"strings"

	"github.com/mrya-lang/mrya/ast"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/lexer"
)

// expandHString scans an h-string's raw body for `<expr>` holes, re-lexing
// and re-parsing each as an expression (spec §4.2 H-string expansion, §9
// Nested h-strings are permitted transitively). Hole matching tracks '<'/'>'
// nesting depth, so a balanced '<...>' pair inside a hole stays part of that
// hole's source, where it is lexed as ordinary '<'/'>' operators rather than
// as a further hole. A comparison operator inside a hole is not told apart
// from nesting: an unbalanced '>' ends the hole early.
func (p *Parser) expandHString(tok lexer.Token) ([]ast.Expr, error) {
	runes := []rune(tok.Literal)
	var parts []ast.Expr
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, ast.NewStringLiteral(tok, lit.String()))
			lit.Reset()
		}
	}

	i := 0
	for i < len(runes) {
		if runes[i] != '<' {
			lit.WriteRune(runes[i])
			i++
			continue
		}
		depth := 1
		j := i + 1
		for j < len(runes) && depth > 0 {
			switch runes[j] {
			case '<':
				depth++
			case '>':
				depth--
				if depth == 0 {
					goto found
				}
			}
			j++
		}
	found:
		if depth != 0 {
			return nil, errs.New(errs.Parse, tok.Line, tok.Column, tok.Literal, "unterminated h-string hole")
		}
		holeSrc := string(runes[i+1 : j])
		flush()
		holeToks, err := lexer.New(holeSrc).Tokens()
		if err != nil {
			return nil, err
		}
		sub := newFromTokens(holeToks)
		expr, err := sub.expression()
		if err != nil {
			return nil, err
		}
		parts = append(parts, expr)
		i = j + 1
	}
	flush()
	return parts, nil
}
