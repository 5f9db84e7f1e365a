package lexer

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const eof = -1

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer. It scans the whole input eagerly, a
// lexer is good for one Scan call.
type Lexer struct {
	in []byte

	tokens  []Token
	lastErr error

	start  int
	offset int

	startLine int
	startCol  int
	line      int
	col       int
}

// Tokens returns the tokens emitted so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the input until it is exhausted or an invalid character is
// found.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) text() string {
	return string(lx.in[lx.start:lx.offset])
}

func (lx *Lexer) span() Span {
	return Span{Start: lx.start + 1, End: lx.offset + 1}
}

func (lx *Lexer) emit(tt TokenType) lexState {
	tok := NewToken(tt, lx.text(), lx.startLine+1, lx.startCol+1)

	if tt == TokenNumber {
		n, err := strconv.ParseInt(tok.lexeme, 10, 64)
		if err != nil {
			return lexStateError(lx.errorf(ErrNumberRange))
		}
		tok = NewNumberToken(n, tok.lexeme, tok.line, tok.col)
	}

	lx.tokens = append(lx.tokens, *tok.WithSpan(lx.span()))
	lx.ignore()
	return lexDefaultState
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) errorf(err error) error {
	return &Error{
		Err:  err,
		Text: lx.text(),

		Span: lx.span(),
		Line: lx.startLine + 1,
		Col:  lx.startCol + 1,
	}
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRune(lx.in[lx.offset:])
	return r
}

func (lx *Lexer) next() (rune, error) {
	if lx.offset >= len(lx.in) {
		return rune(0), io.EOF
	}

	r, size := utf8.DecodeRune(lx.in[lx.offset:])
	lx.offset += size

	if r == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isLeftBracket(r):
		return lexEmit(TokenLeftBracket)
	case isRightBracket(r):
		return lexEmit(TokenRightBracket)

	case isDigit(r):
		return lexCollectStream(TokenNumber, isDigit)
	case isSymbolStart(r):
		return lexCollectStream(TokenSymbol, isSymbolBody)

	case isComment(r):
		return lexSkipStream(func(r rune) bool {
			return r != eof && !isLineBreak(r)
		})
	case isWhitespace(r):
		return lexSkipStream(isWhitespace)
	}

	return lexStateError(lx.errorf(ErrUnexpectedChar))
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		return lx.emit(tt)
	}
}

func collect(lx *Lexer, accept func(rune) bool) error {
	for accept(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return err
		}
	}
	return nil
}

func lexCollectStream(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		if err := collect(lx, accept); err != nil {
			return lexStateError(err)
		}
		return lexEmit(tt)
	}
}

func lexSkipStream(accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		if err := collect(lx, accept); err != nil {
			return lexStateError(err)
		}
		lx.ignore()
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, errors.WithMessage(err, "tokenize")
	}
	return lx.Tokens(), nil
}
