package alone

import (
	"github.com/xiam/alone/ast"
	"github.com/xiam/alone/lexer"
)

// Eval evaluates expr against env, with a default context.
func Eval(expr ast.Expr, env *Environment) (*Value, error) {
	return NewContext(env).Eval(expr)
}

// Eval evaluates expr against the environment of the context. Errors are
// not transactional: bindings and output produced before the failing
// sub-expression remain.
func (ctx *Context) Eval(expr ast.Expr) (*Value, error) {
	return ctx.eval(expr)
}

func (ctx *Context) eval(expr ast.Expr) (*Value, error) {
	if expr == nil {
		return nil, &EvalError{Err: ErrUnsupported, Detail: "empty expression"}
	}

	if ctx.maxDepth > 0 && ctx.depth >= ctx.maxDepth {
		ctx.log.WithField("ctx", ctx.name).Warnf("evaluation depth %d exceeded", ctx.maxDepth)
		return nil, withPos(&EvalError{Err: ErrStackDepth}, expr.Token())
	}
	ctx.depth++
	defer func() {
		ctx.depth--
	}()

	switch node := expr.(type) {
	case *ast.Number:
		return NewNumberValue(node.Value), nil

	case *ast.Symbol:
		value, err := ctx.Get(node.Name)
		if err != nil {
			return nil, withPos(err, node.Tok)
		}
		return value, nil

	case *ast.Str:
		return nil, &EvalError{Err: ErrUnsupported, Detail: "string literal"}

	case *ast.If:
		cond, err := ctx.eval(node.Cond)
		if err != nil {
			return nil, err
		}
		if cond.IsTruthy() {
			return ctx.eval(node.Then)
		}
		return ctx.eval(node.Else)

	case *ast.Define:
		name, err := symbolName(node.SymbolTok)
		if err != nil {
			return nil, err
		}
		value, err := ctx.eval(node.Value)
		if err != nil {
			return nil, err
		}
		if err := ctx.Set(name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return ctx.evalCall(node)
	}

	return nil, &EvalError{Err: ErrUnsupported, Detail: expr.String()}
}

func (ctx *Context) evalCall(node *ast.Call) (*Value, error) {
	name, err := symbolName(node.SymbolTok)
	if err != nil {
		return nil, err
	}

	fn, ok := ctx.env.Lookup(name)
	if !ok || fn.Type != ValueTypeCallable {
		return nil, withPos(&EvalError{Err: ErrInvalidFunction, Symbol: name}, node.SymbolTok)
	}

	args := make([]*Value, 0, len(node.Args))
	for _, arg := range node.Args {
		value, err := ctx.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	ctx.log.WithField("ctx", ctx.name).Debugf("call %s %v", name, args)

	result, err := fn.Builtin().Call(ctx, args)
	if err != nil {
		return nil, withPos(err, node.Open)
	}
	return result, nil
}

func symbolName(tok *lexer.Token) (string, error) {
	if tok == nil || !tok.Is(lexer.TokenSymbol) {
		err := &EvalError{Err: ErrNotASymbol}
		if tok != nil {
			err.Detail = tok.Text()
		}
		return "", withPos(err, tok)
	}
	return tok.Text(), nil
}

// withPos fills in the position of an *EvalError that has none yet.
func withPos(err error, tok *lexer.Token) error {
	evalErr, ok := err.(*EvalError)
	if !ok || tok == nil || evalErr.Line > 0 {
		return err
	}
	evalErr.Line, evalErr.Col = tok.Pos()
	return evalErr
}
