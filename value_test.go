package alone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueTruthiness(t *testing.T) {
	testCases := []struct {
		Value  *Value
		Truthy bool
	}{
		{Nil, false},
		{NewNumberValue(0), false},
		{NewNumberValue(1), true},
		{NewNumberValue(-1), true},
		{NewCallableValue(BuiltinCar), true},
		{NewConsValue(Nil, Nil), true},
		{True, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Truthy, tc.Value.IsTruthy(), tc.Value.String())
	}
}

func TestValueString(t *testing.T) {
	testCases := []struct {
		Value *Value
		Out   string
	}{
		{Nil, "Nil"},
		{NewNumberValue(-12), "-12"},
		{NewCallableValue(BuiltinPrint), "<callable>"},
		{NewConsValue(NewNumberValue(1), NewNumberValue(2)), "(1, 2)"},
		{NewListValue(), "Nil"},
		{NewListValue(NewNumberValue(1), NewListValue(NewNumberValue(2))), "(1, ((2, Nil), Nil))"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, tc.Value.String())
	}
}

func TestValueEqual(t *testing.T) {
	a := NewListValue(NewNumberValue(1), NewNumberValue(2))
	b := NewListValue(NewNumberValue(1), NewNumberValue(2))
	c := NewListValue(NewNumberValue(1), NewNumberValue(3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Nil))
	assert.False(t, NewNumberValue(1).Equal(NewCallableValue(BuiltinPrint)))
	assert.True(t, NewCallableValue(BuiltinPrint).Equal(NewCallableValue(BuiltinPrint)))
}
