// Package repl implements an interactive read-eval-print session on top of
// an alone.Context.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/xiam/alone"
	"github.com/xiam/alone/ast"
	"github.com/xiam/alone/parser"
)

// DefaultPrompt is printed before reading each line.
const DefaultPrompt = "Alone > "

// Banner is printed once when an interactive session starts.
const Banner = "alone: a tiny S-expression interpreter"

// EnvCommand lists the names bound in the environment instead of
// evaluating the line.
const EnvCommand = ":env"

// Session reads one expression per line, evaluates it against a shared
// context and prints either its value or the error.
type Session struct {
	ctx *alone.Context

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	prompt     string
	showPrompt bool
	dump       io.Writer
	maxDepth   int

	errColor *color.Color
}

// New creates a session reading from in. Values go to out and errors to
// errOut.
func New(ctx *alone.Context, in io.Reader, out io.Writer, errOut io.Writer) *Session {
	return &Session{
		ctx:        ctx,
		in:         bufio.NewReader(in),
		out:        out,
		errOut:     errOut,
		prompt:     DefaultPrompt,
		showPrompt: true,
		maxDepth:   parser.DefaultMaxDepth,
		errColor:   color.New(color.FgRed),
	}
}

// Prompt sets the prompt string.
func (s *Session) Prompt(prompt string) *Session {
	s.prompt = prompt
	return s
}

// ShowPrompt toggles the banner and the prompt, they are useless when
// input is not a terminal.
func (s *Session) ShowPrompt(show bool) *Session {
	s.showPrompt = show
	return s
}

// DumpAST makes the session write every parsed tree to w before
// evaluating it.
func (s *Session) DumpAST(w io.Writer) *Session {
	s.dump = w
	return s
}

// MaxDepth limits how deep the expression on a line may nest, 0 means no
// limit.
func (s *Session) MaxDepth(depth int) *Session {
	s.maxDepth = depth
	return s
}

// Color enables or disables colored error messages.
func (s *Session) Color(enabled bool) *Session {
	if enabled {
		s.errColor.EnableColor()
	} else {
		s.errColor.DisableColor()
	}
	return s
}

// Start runs the session until input is exhausted. Evaluation errors are
// reported and the session goes on; only read errors are returned.
func (s *Session) Start() error {
	if s.showPrompt {
		fmt.Fprintln(s.out, Banner)
	}

	for {
		if s.showPrompt {
			fmt.Fprint(s.out, s.prompt)
		}

		line, err := s.in.ReadString('\n')
		if line != "" {
			s.Line(line)
		}
		if err == io.EOF {
			if s.showPrompt {
				fmt.Fprintln(s.out)
			}
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}
	}
}

// Line evaluates a single line of input and prints the outcome. Lines with
// no tokens are skipped.
func (s *Session) Line(line string) {
	if strings.TrimSpace(line) == EnvCommand {
		fmt.Fprintln(s.out, strings.Join(s.ctx.Env().Names(), " "))
		return
	}

	expr, err := parser.ParseDepth([]byte(line), s.maxDepth)
	if err != nil {
		if errors.Is(err, parser.ErrNoInput) {
			return
		}
		s.reportError(err)
		return
	}

	if s.dump != nil {
		ast.Dump(s.dump, expr)
	}

	value, err := s.ctx.Eval(expr)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, value)
}

func (s *Session) reportError(err error) {
	s.errColor.Fprintf(s.errOut, "Error! %v\n", err)
}
