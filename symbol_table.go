package alone

import (
	"sort"

	"github.com/pkg/errors"
)

var errEmptyName = errors.New("symbol name can't be empty")

// Environment is the single, flat symbol table of an evaluation session.
// Every define mutates it in place.
type Environment struct {
	symbols map[string]*Value
}

// NewEnvironment creates an environment with no bindings.
func NewEnvironment() *Environment {
	return &Environment{
		symbols: make(map[string]*Value),
	}
}

// DefaultEnvironment creates an environment populated with the builtin
// registry and the predefined constants.
func DefaultEnvironment() *Environment {
	env := NewEnvironment()
	for _, binding := range defaultBindings {
		env.symbols[binding.name] = binding.value
	}
	return env
}

// Set binds name to value, replacing any previous binding.
func (env *Environment) Set(name string, value *Value) error {
	if name == "" {
		return errEmptyName
	}
	if value == nil {
		value = Nil
	}
	env.symbols[name] = value
	return nil
}

// Get returns the value bound to name.
func (env *Environment) Get(name string) (*Value, error) {
	if value, ok := env.symbols[name]; ok {
		return value, nil
	}
	return nil, &EvalError{Err: ErrUndefinedSymbol, Symbol: name}
}

// Lookup is like Get but reports a missing binding with a boolean.
func (env *Environment) Lookup(name string) (*Value, bool) {
	value, ok := env.symbols[name]
	return value, ok
}

// Names returns every bound name, sorted.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.symbols))
	for name := range env.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings.
func (env *Environment) Len() int {
	return len(env.symbols)
}
