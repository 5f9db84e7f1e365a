package alone

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xiam/alone/ast"
	"github.com/xiam/alone/lexer"
	"github.com/xiam/alone/parser"
)

// DefaultMaxDepth is the default limit of nested expressions an evaluation
// may walk through.
const DefaultMaxDepth = 10000

// FormFunc receives a top-level expression before it gets evaluated.
type FormFunc func(expr ast.Expr)

// ExitFunc terminates the process with the given status code. It must not
// return.
type ExitFunc func(code int)

// Context holds everything an evaluation session needs: its environment,
// where print writes to and how exit terminates the process. A context is
// meant to be used from a single goroutine.
type Context struct {
	name string

	env  *Environment
	out  io.Writer
	exit ExitFunc

	maxDepth int
	depth    int

	onForm FormFunc

	log *logrus.Entry
}

// NewContext creates a context on top of env. A nil env is replaced by a
// fresh DefaultEnvironment.
func NewContext(env *Environment) *Context {
	if env == nil {
		env = DefaultEnvironment()
	}
	ctx := &Context{
		name:     "root",
		env:      env,
		out:      os.Stdout,
		exit:     os.Exit,
		maxDepth: DefaultMaxDepth,
		log:      logrus.NewEntry(defaultLogger()),
	}
	return ctx
}

func defaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func (ctx *Context) Name(name string) *Context {
	ctx.name = name
	return ctx
}

// Output sets where print writes to.
func (ctx *Context) Output(w io.Writer) *Context {
	ctx.out = w
	return ctx
}

// OnExit sets the function the exit builtin terminates the process with.
// Any cleanup the host needs has to happen inside fn.
func (ctx *Context) OnExit(fn ExitFunc) *Context {
	ctx.exit = fn
	return ctx
}

// OnForm sets a function Run calls with every top-level expression before
// evaluating it.
func (ctx *Context) OnForm(fn FormFunc) *Context {
	ctx.onForm = fn
	return ctx
}

// MaxDepth limits how deep parsing and evaluation may recurse, 0 means no
// limit.
func (ctx *Context) MaxDepth(depth int) *Context {
	ctx.maxDepth = depth
	return ctx
}

// Logger replaces the logger of the context.
func (ctx *Context) Logger(entry *logrus.Entry) *Context {
	ctx.log = entry
	return ctx
}

// Env returns the environment of the context.
func (ctx *Context) Env() *Environment {
	return ctx.env
}

func (ctx *Context) Set(name string, value *Value) error {
	ctx.log.WithField("ctx", ctx.name).Debugf("set %q -> %v", name, value)
	return ctx.env.Set(name, value)
}

func (ctx *Context) Get(name string) (*Value, error) {
	return ctx.env.Get(name)
}

// Exit terminates the process through the configured ExitFunc.
func (ctx *Context) Exit(code int) {
	ctx.log.WithField("ctx", ctx.name).Debugf("exit %d", code)
	ctx.exit(code)
}

func (ctx *Context) String() string {
	return ctx.name
}

// Run parses every top-level expression in src and evaluates them in order.
// It returns the value of the last one, or Nil if src has none. Evaluation
// stops at the first error; bindings made before it are kept.
func (ctx *Context) Run(src []byte) (*Value, error) {
	exprs, err := ctx.Parse(src)
	if err != nil {
		return nil, err
	}

	result := Nil
	for _, expr := range exprs {
		if ctx.onForm != nil {
			ctx.onForm(expr)
		}
		if result, err = ctx.Eval(expr); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Parse reads every top-level expression in src, nesting no deeper than the
// limit set with MaxDepth.
func (ctx *Context) Parse(src []byte) ([]ast.Expr, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return parser.New(tokens).MaxDepth(ctx.maxDepth).ParseAll()
}
