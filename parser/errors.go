package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/alone/lexer"
)

var (
	// ErrNoInput is returned when there are no tokens left to parse. It is
	// not a syntax error: drivers treat it as the end of the input.
	ErrNoInput = errors.New("no input")

	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedSymbol  = errors.New("expected symbol")
	ErrTooDeep         = errors.New("expressions nested too deep")
)

// Error is a syntax error found at a given token.
type Error struct {
	Err error
	Tok *lexer.Token
}

func (e *Error) Error() string {
	if e.Tok == nil {
		return e.Err.Error()
	}
	line, col := e.Tok.Pos()
	return fmt.Sprintf("%d:%d: %v %q", line, col, e.Err, e.Tok.Text())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParserError attaches the position of tok to err.
func ParserError(err error, tok *lexer.Token) error {
	return &Error{Err: err, Tok: tok}
}
