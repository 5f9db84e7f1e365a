package lexer

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`+ 1 1 1 1`,

		`(+ 1 2 3)`,

		`(- 1 2 3)`,

		`(foo a b c-d-e-f)`,

		`(foo
			a :b
			c-d-e-f
		)`,

		`(define foo (+ 3 3))`,

		`(if (< x 3) (print x) (begin (setq x 0) x))`,

		`(list 1 2 3) ; a comment`,

		`!%&*+-./:<>=?@$^`,

		"",

		"   \t\n\r\n",
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{
				TokenNumber,
			},
		},
		{
			`(+ n 1)`,
			[]TokenType{
				TokenLeftBracket,
				TokenSymbol,
				TokenSymbol,
				TokenNumber,
				TokenRightBracket,
			},
		},
		{
			`-1`,
			[]TokenType{
				TokenSymbol,
			},
		},
		{
			`12abc`,
			[]TokenType{
				TokenNumber,
				TokenSymbol,
			},
		},
		{
			`(+
				(car x)
				; ignored (
				1)`,
			[]TokenType{
				TokenLeftBracket,
				TokenSymbol,
				TokenLeftBracket,
				TokenSymbol,
				TokenSymbol,
				TokenRightBracket,
				TokenNumber,
				TokenRightBracket,
			},
		},
		{
			`;; only a comment`,
			[]TokenType{},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens))
	}
}

func TestTokenValues(t *testing.T) {
	tokens, err := Tokenize([]byte(`(+ n 1)`))
	require.NoError(t, err)

	type tokenValue struct {
		Type TokenType
		Text string
		Int  int64
		Span Span
	}

	got := make([]tokenValue, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tokenValue{tok.Type(), tok.Text(), tok.Int(), tok.Span()})
	}

	want := []tokenValue{
		{TokenLeftBracket, "(", 0, Span{1, 2}},
		{TokenSymbol, "+", 0, Span{2, 3}},
		{TokenSymbol, "n", 0, Span{4, 5}},
		{TokenNumber, "1", 1, Span{6, 7}},
		{TokenRightBracket, ")", 0, Span{7, 8}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	assert.Equal(t, *NewToken(TokenSymbol, "n", 1, 4).WithSpan(Span{4, 5}), tokens[2])
	assert.Equal(t, *NewNumberToken(1, "1", 1, 6).WithSpan(Span{6, 7}), tokens[3])
}

func TestNumberLiterals(t *testing.T) {
	testCases := []int64{
		0,
		7,
		1234567890,
		math.MaxInt64,
	}

	for _, n := range testCases {
		tokens, err := Tokenize([]byte(strconv.FormatInt(n, 10)))
		require.NoError(t, err)
		require.Len(t, tokens, 1)

		assert.True(t, tokens[0].Is(TokenNumber))
		assert.Equal(t, n, tokens[0].Int())
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{},
		},
		{
			"1",
			[][2]int{
				{1, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3},
			},
		},
		{
			"(a ; comment\n b)",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 2}, {2, 3},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			line, col := tokens[i].Pos()
			ret = append(ret, [2]int{line, col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Line int
		Col  int
	}{
		{`#`, ErrUnexpectedChar, 1, 1},
		{`(foo [1])`, ErrUnexpectedChar, 1, 6},
		{"(a\n  \"b\")", ErrUnexpectedChar, 2, 3},
		{`(print é)`, ErrUnexpectedChar, 1, 8},
		{`99999999999999999999`, ErrNumberRange, 1, 1},
		{`(+ 1 9223372036854775808)`, ErrNumberRange, 1, 6},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize([]byte(tc.In))
		assert.Nil(t, tokens)
		require.Error(t, err)
		assert.True(t, errors.Is(err, tc.Err), "%q: %v", tc.In, err)

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, tc.Line, lexErr.Line, tc.In)
		assert.Equal(t, tc.Col, lexErr.Col, tc.In)
	}
}
