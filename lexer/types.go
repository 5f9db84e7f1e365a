package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid      TokenType = iota
	TokenLeftBracket            // Open parenthesis: "("
	TokenRightBracket           // Close parenthesis: ")"
	TokenNumber                 // Decimal integer: [0-9]+
	TokenSymbol                 // Letters, punctuation and digits (after the first character)
	TokenString                 // String literal, reserved
	TokenWhitespace             // Any whitespace run, never emitted
	TokenComment                // From ";" to the end of the line, never emitted
)

const (
	symbolLetters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolPunctuation = "!%&*+-./:<>=?@$^"
	digits            = "0123456789"
)

var tokenValues = map[TokenType][]rune{
	TokenLeftBracket:  []rune{'('},
	TokenRightBracket: []rune{')'},
	TokenNumber:       []rune(digits),
	TokenSymbol:       []rune(symbolLetters + symbolPunctuation),
	TokenComment:      []rune{';'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:      "invalid",
	TokenLeftBracket:  "left_bracket",
	TokenRightBracket: "right_bracket",
	TokenNumber:       "number",
	TokenSymbol:       "symbol",
	TokenString:       "string",
	TokenWhitespace:   "whitespace",
	TokenComment:      "comment",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isLeftBracket  = isTokenType(TokenLeftBracket)
	isRightBracket = isTokenType(TokenRightBracket)
	isDigit        = isTokenType(TokenNumber)
	isSymbolStart  = isTokenType(TokenSymbol)
	isComment      = isTokenType(TokenComment)
)

func isSymbolBody(r rune) bool {
	return isSymbolStart(r) || isDigit(r)
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
