package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/xiam/alone"
	"github.com/xiam/alone/ast"
)

// runSource evaluates every form in src in order and prints the value of
// the last one. The first error stops evaluation and makes the program
// exit with status 1. When dump is set every form is dumped to it before
// being evaluated.
func runSource(ctx *alone.Context, src []byte, out io.Writer, dump io.Writer) error {
	if dump != nil {
		ctx.OnForm(func(expr ast.Expr) {
			ast.Dump(dump, expr)
		})
	}

	value, err := ctx.Run(src)
	if err != nil {
		return cli.Exit(color.New(color.FgRed).Sprintf("Error! %v", err), 1)
	}
	fmt.Fprintln(out, value)
	return nil
}
