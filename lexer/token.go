package lexer

import (
	"fmt"
)

// Span is a half-open [Start, End) byte range into the source. Offsets are
// 1-based and only meant for diagnostics.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	num    int64

	span Span
	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// NewNumberToken creates a lexical unit of type number holding n.
func NewNumberToken(n int64, lexeme string, line int, col int) *Token {
	tok := NewToken(TokenNumber, lexeme, line, col)
	tok.num = n
	return tok
}

// WithSpan returns a copy of the token with its source span set.
func (t Token) WithSpan(span Span) *Token {
	t.span = span
	return &t
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Span returns the byte range the lexical unit was read from
func (t Token) Span() Span {
	return t.span
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the numeric value of a number token.
func (t Token) Int() int64 {
	return t.num
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
