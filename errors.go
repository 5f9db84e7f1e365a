package alone

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kinds of evaluation errors. Every *EvalError unwraps to one of them.
var (
	ErrUndefinedSymbol   = errors.New("undefined symbol")
	ErrNotASymbol        = errors.New("not a symbol")
	ErrInvalidFunction   = errors.New("invalid function")
	ErrWrongArgumentType = errors.New("wrong argument type")
	ErrArity             = errors.New("wrong number of arguments")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrOverflow          = errors.New("integer overflow")
	ErrStackDepth        = errors.New("maximum evaluation depth exceeded")
	ErrUnsupported       = errors.New("unsupported expression")
)

// EvalError describes why an expression could not be evaluated.
type EvalError struct {
	Err error

	Builtin Builtin
	Symbol  string
	Detail  string

	Line int
	Col  int
}

func (e *EvalError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", e.Line, e.Col)
	}
	if e.Builtin != BuiltinInvalid {
		fmt.Fprintf(&b, "%v: ", e.Builtin)
	}
	b.WriteString(e.Err.Error())
	if e.Symbol != "" {
		fmt.Fprintf(&b, " %s", e.Symbol)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func errArity(b Builtin, format string, args ...interface{}) error {
	return &EvalError{Err: ErrArity, Builtin: b, Detail: fmt.Sprintf(format, args...)}
}

func errArgumentType(b Builtin, expected string, got *Value) error {
	return &EvalError{
		Err:     ErrWrongArgumentType,
		Builtin: b,
		Detail:  fmt.Sprintf("expected %s, got %v", expected, got),
	}
}

func errDomain(b Builtin, err error) error {
	return &EvalError{Err: err, Builtin: b}
}
