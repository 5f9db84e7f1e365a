// Package alone is a small interpreter for an S-expression language.
//
// Source text is tokenized by package lexer, turned into an expression tree
// by package parser and evaluated here against a single, flat Environment
// populated with builtins:
//
//	ctx := alone.NewContext(alone.DefaultEnvironment())
//	value, err := ctx.Run([]byte(`(define x 5) (+ x 1)`))
//
// Evaluation is a plain recursive walk of the tree. Its depth is bounded by
// Context.MaxDepth; going deeper fails with ErrStackDepth.
package alone

// Run evaluates every expression in src against a fresh default environment
// and returns the value of the last one.
func Run(src []byte) (*Value, error) {
	return NewContext(nil).Run(src)
}
