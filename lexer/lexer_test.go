package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestTokens_Arithmetic(t *testing.T) {
	toks, err := New("1 + 2 * 3").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{INT, PLUS, INT, STAR, INT, EOF}, kinds(toks))
}

func TestTokens_TwoCharOperators(t *testing.T) {
	toks, err := New("a == b != c <= d >= e += 1").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{IDENT, EQ, IDENT, NE, IDENT, LE, IDENT, GE, IDENT, PLUS_ASSIGN, INT, EOF}, kinds(toks))
}

func TestTokens_Keywords(t *testing.T) {
	toks, err := New("let const func define return if else while for in").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{LET, CONST, FUNC, DEFINE, RETURN, IF, ELSE, WHILE, FOR, IN, EOF}, kinds(toks))
}

func TestTokens_StringEscapes(t *testing.T) {
	toks, err := New(`"a\nb\tc\"d\\e\qf"`).Tokens()
	assert.NoError(t, err)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\"d\\e\\qf", toks[0].Literal)
}

func TestTokens_UnterminatedString(t *testing.T) {
	_, err := New(`"abc`).Tokens()
	assert.Error(t, err)
}

func TestTokens_Numbers(t *testing.T) {
	toks, err := New("42 3.14 0 1.0").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{INT, FLOAT, INT, FLOAT, EOF}, kinds(toks))
	assert.Equal(t, "3.14", toks[1].Literal)
}

func TestTokens_Ellipsis(t *testing.T) {
	toks, err := New("func sum = define(...xs) { }").Tokens()
	assert.NoError(t, err)
	assert.Contains(t, kinds(toks), ELLIPSIS)
}

func TestTokens_HString(t *testing.T) {
	toks, err := New("`hello <name>!`").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, HSTRING, toks[0].Kind)
	assert.Equal(t, "hello <name>!", toks[0].Literal)
}

func TestTokens_Shebang(t *testing.T) {
	toks, err := New("#!/usr/bin/env mrya\nlet x = 1").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, LET, toks[0].Kind)
}

func TestTokens_LineTracking(t *testing.T) {
	toks, err := New("let x = 1\nlet y = 2").Tokens()
	assert.NoError(t, err)
	// second "let" is on line 2
	var secondLet Token
	count := 0
	for _, tk := range toks {
		if tk.Kind == LET {
			count++
			if count == 2 {
				secondLet = tk
			}
		}
	}
	assert.Equal(t, 2, secondLet.Line)
}

func TestTokens_Comment(t *testing.T) {
	toks, err := New("1 // trailing comment\n+ 2").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{INT, PLUS, INT, EOF}, kinds(toks))
}

func TestTokens_DecoratorMarker(t *testing.T) {
	toks, err := New("% memoize").Tokens()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{PERCENT, IDENT, EOF}, kinds(toks))
}
