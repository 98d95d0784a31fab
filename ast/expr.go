package ast

import (
	"fmt"

	"github.com/mrya-lang/mrya/lexer"
)

// LiteralKind tags the primitive kind held by a Literal node — the evaluator
// materializes the runtime value from this at evaluation time rather than
// the parser constructing a values.Value directly, which would otherwise
// make ast depend on values.
type LiteralKind int

const (
	LitNil LiteralKind = iota
	LitBool
	LitInt
	LitFloat
	LitString
)

type Literal struct {
	Base
	Kind LiteralKind
	Bool bool
	Int  int64
	Flt  float64
	Str  string
}

func (l *Literal) Label() string { return fmt.Sprintf("Literal(%v)", l.raw()) }
func (l *Literal) exprNode()     {}

func (l *Literal) raw() any {
	switch l.Kind {
	case LitBool:
		return l.Bool
	case LitInt:
		return l.Int
	case LitFloat:
		return l.Flt
	case LitString:
		return l.Str
	default:
		return nil
	}
}

func NewNilLiteral(line int) *Literal   { return &Literal{Base: Base{Ln: line}, Kind: LitNil} }
func NewBoolLiteral(t lexer.Token, v bool) *Literal {
	return &Literal{Base: Tok(t), Kind: LitBool, Bool: v}
}
func NewIntLiteral(t lexer.Token, v int64) *Literal {
	return &Literal{Base: Tok(t), Kind: LitInt, Int: v}
}
func NewFloatLiteral(t lexer.Token, v float64) *Literal {
	return &Literal{Base: Tok(t), Kind: LitFloat, Flt: v}
}
func NewStringLiteral(t lexer.Token, v string) *Literal {
	return &Literal{Base: Tok(t), Kind: LitString, Str: v}
}

// Variable is a reference to a named binding.
type Variable struct {
	Base
	Name lexer.Token
}

func (v *Variable) Label() string { return "Variable(" + v.Name.Literal + ")" }
func (v *Variable) exprNode()     {}

func NewVariable(name lexer.Token) *Variable { return &Variable{Base: Tok(name), Name: name} }

// ListLiteral is `[e1, e2, ...]`.
type ListLiteral struct {
	Base
	Elements []Expr
}

func (l *ListLiteral) Label() string { return "ListLiteral" }
func (l *ListLiteral) exprNode()     {}

// MapLiteral is `{k1: v1, k2: v2}`, evaluated key-by-key in source order.
type MapLiteral struct {
	Base
	Keys   []Expr
	Values []Expr
}

func (m *MapLiteral) Label() string { return "MapLiteral" }
func (m *MapLiteral) exprNode()     {}

// HString is an interpolated string: literal fragments (as *Literal nodes)
// alternating with embedded expression nodes, parsed from a `<...>` hole.
type HString struct {
	Base
	Parts []Expr
}

func (h *HString) Label() string { return "HString" }
func (h *HString) exprNode()     {}

type Unary struct {
	Base
	Op    lexer.Token
	Right Expr
}

func (u *Unary) Label() string { return "Unary(" + string(u.Op.Kind) + ")" }
func (u *Unary) exprNode()     {}

type Binary struct {
	Base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (b *Binary) Label() string { return "Binary(" + string(b.Op.Kind) + ")" }
func (b *Binary) exprNode()     {}

// Logical is `and`/`or`, evaluated with short-circuiting.
type Logical struct {
	Base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (l *Logical) Label() string { return "Logical(" + string(l.Op.Kind) + ")" }
func (l *Logical) exprNode()     {}

// Get is `object.name` — field, method, or module member access.
type Get struct {
	Base
	Object Expr
	Name   lexer.Token
}

func (g *Get) Label() string { return "Get(." + g.Name.Literal + ")" }
func (g *Get) exprNode()     {}

// Subscript is `object[index]`.
type Subscript struct {
	Base
	Object  Expr
	Index   Expr
	Closing lexer.Token
}

func (s *Subscript) Label() string { return "Subscript" }
func (s *Subscript) exprNode()     {}

// Call is `callee(args...)`.
type Call struct {
	Base
	Callee  Expr
	Args    []Expr
	Closing lexer.Token
}

func (c *Call) Label() string { return "Call" }
func (c *Call) exprNode()     {}

// Splat wraps `...expr` at a call site: the argument list's element is
// unpacked into positional arguments at call time.
type Splat struct {
	Base
	Expr Expr
}

func (s *Splat) Label() string { return "Splat" }
func (s *Splat) exprNode()     {}

// This is the `this` keyword inside a method body.
type This struct {
	Base
	Keyword lexer.Token
}

func (t *This) Label() string { return "This" }
func (t *This) exprNode()     {}

// Inherit is `inherit.method` — super-method access relative to the
// declaring class of the currently executing method (spec §4.4).
type Inherit struct {
	Base
	Keyword lexer.Token
	Method  lexer.Token
}

func (i *Inherit) Label() string { return "Inherit(." + i.Method.Literal + ")" }
func (i *Inherit) exprNode()     {}

func NewThis(t lexer.Token) *This { return &This{Base: Tok(t), Keyword: t} }
