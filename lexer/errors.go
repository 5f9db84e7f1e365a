package lexer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrNumberRange    = errors.New("number out of range")
)

// Error describes a failure to tokenize the input at a given position.
type Error struct {
	Err  error
	Text string

	Span Span
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Col, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}
