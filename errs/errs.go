/*
Package errs defines the typed error kinds shared across the Mrya pipeline:
lexer, parser, and evaluator all produce errs.Error values so that CLI
formatting and user-level `catch` clauses (spec §7) see one stable vocabulary.
*/
package errs

import "fmt"

// Kind is one of the stable, catch-clause-visible error kind identifiers.
type Kind string

const (
	Lexer         Kind = "LexerError"
	Parse         Kind = "ParseError"
	Runtime       Kind = "RuntimeError"
	TypeMismatch  Kind = "TypeMismatch"
	Raised        Kind = "RaisedError"
	ClassFunction Kind = "ClassFunctionError"
)

// Error is the concrete type behind every typed failure in the pipeline.
// Line/Column/Lexeme are best-effort source attribution; Line 0 means unknown
// (e.g. an error raised by host-module code with no AST position).
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
	Lexeme  string
}

func (e *Error) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("[Line %d] %s: %s", e.Line, e.Kind, e.Message)
}

func New(kind Kind, line, col int, lexeme, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: col, Lexeme: lexeme}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// As reports whether err is (or wraps) an *errs.Error of the given kind.
func As(err error, kind Kind) (*Error, bool) {
	e, ok := err.(*Error)
	if !ok || e == nil {
		return nil, false
	}
	return e, e.Kind == kind
}
