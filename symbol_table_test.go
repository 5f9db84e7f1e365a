package alone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	assert.Zero(t, env.Len())

	_, err := env.Get("x")
	assert.ErrorIs(t, err, ErrUndefinedSymbol)

	require.NoError(t, env.Set("x", NewNumberValue(1)))
	require.NoError(t, env.Set("x", NewNumberValue(2)))
	require.NoError(t, env.Set("y", nil))

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())

	v, ok := env.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, Nil, v)

	assert.Equal(t, []string{"x", "y"}, env.Names())
	assert.Equal(t, 2, env.Len())
}

func TestDefaultEnvironment(t *testing.T) {
	env := DefaultEnvironment()

	for _, name := range []string{"print", "exit", "begin", "+", "-", "*", "/", "=", "eq", "<", ">", "<=", ">=", "!", "not", "cons", "list", "car", "cdr"} {
		v, ok := env.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, ValueTypeCallable, v.Type, name)
	}

	for _, name := range []string{"t", "T"} {
		v, err := env.Get(name)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v.Int())
	}

	// environments don't share bindings
	other := DefaultEnvironment()
	require.NoError(t, env.Set("car", NewNumberValue(0)))
	v, err := other.Get("car")
	require.NoError(t, err)
	assert.Equal(t, ValueTypeCallable, v.Type)
}
