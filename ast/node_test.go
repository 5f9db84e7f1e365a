package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/alone/lexer"
)

func TestNodeTypes(t *testing.T) {
	num := NewNumber(lexer.NewNumberToken(42, "42", 1, 1))
	assert.Equal(t, int64(42), num.Value)
	assert.True(t, num.Type().IsValue())
	assert.False(t, num.Type().IsForm())
	assert.Equal(t, "number", num.Type().String())

	sym := NewSymbol(lexer.NewToken(lexer.TokenSymbol, "foo", 1, 4))
	assert.Equal(t, "foo", sym.Name)
	line, col := sym.Token().Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, col)

	call := &Call{
		Open:      lexer.NewToken(lexer.TokenLeftBracket, "(", 2, 1),
		SymbolTok: lexer.NewToken(lexer.TokenSymbol, "+", 2, 2),
		Args:      []Expr{num, sym},
	}
	assert.True(t, call.Type().IsForm())
	assert.Equal(t, "(call)[2]", call.String())
	assert.Equal(t, []Expr{num, sym}, Children(call))

	assert.Nil(t, NewStr("x").Token())
}

func TestEncode(t *testing.T) {
	one := NewNumber(lexer.NewNumberToken(1, "1", 1, 1))
	two := NewNumber(lexer.NewNumberToken(2, "2", 1, 1))
	x := NewSymbol(lexer.NewToken(lexer.TokenSymbol, "x", 1, 1))

	testCases := []struct {
		In  Expr
		Out string
	}{
		{one, `1`},
		{x, `x`},
		{NewStr("a b"), `"a b"`},
		{
			&If{Cond: x, Then: one, Else: two},
			`(if x 1 2)`,
		},
		{
			&Define{
				DefineTok: lexer.NewToken(lexer.TokenSymbol, "setq", 1, 2),
				SymbolTok: lexer.NewToken(lexer.TokenSymbol, "x", 1, 7),
				Value:     one,
			},
			`(setq x 1)`,
		},
		{
			&Define{SymbolTok: lexer.NewToken(lexer.TokenSymbol, "y", 1, 9), Value: x},
			`(define y x)`,
		},
		{
			&Call{
				SymbolTok: lexer.NewToken(lexer.TokenSymbol, "+", 1, 2),
				Args: []Expr{one, &Call{
					SymbolTok: lexer.NewToken(lexer.TokenSymbol, "list", 1, 5),
				}},
			},
			`(+ 1 (list))`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestPrint(t *testing.T) {
	one := NewNumber(lexer.NewNumberToken(1, "1", 1, 5))
	tree := &If{
		Open:  lexer.NewToken(lexer.TokenLeftBracket, "(", 1, 1),
		IfTok: lexer.NewToken(lexer.TokenSymbol, "if", 1, 2),
		Cond:  one,
		Then:  one,
		Else:  nil,
	}

	var buf bytes.Buffer
	Print(&buf, tree)

	out := buf.String()
	assert.Contains(t, out, "(if): ")
	assert.Contains(t, out, "    (number): 1")
	assert.Contains(t, out, "    :nil")

	buf.Reset()
	Dump(&buf, tree)
	assert.Contains(t, buf.String(), "Cond")
}
