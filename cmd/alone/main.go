package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/xiam/alone"
	"github.com/xiam/alone/repl"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:      "alone",
		Usage:     "a tiny S-expression interpreter",
		Version:   version,
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "evaluate `SOURCE` and exit",
				EnvVars: []string{"ALONE_EVAL"},
			},
			&cli.IntFlag{
				Name:    "max-depth",
				Usage:   "maximum evaluation depth",
				Value:   alone.DefaultMaxDepth,
				EnvVars: []string{"ALONE_MAX_DEPTH"},
			},
			&cli.StringFlag{
				Name:    "prompt",
				Usage:   "interactive prompt",
				Value:   repl.DefaultPrompt,
				EnvVars: []string{"ALONE_PROMPT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log evaluation steps to stderr",
				EnvVars: []string{"ALONE_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:  "dump-ast",
				Usage: "dump every parsed tree to stderr before evaluating it",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output",
				EnvVars: []string{"ALONE_NO_COLOR"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func run(c *cli.Context) error {
	if c.Bool("no-color") {
		color.NoColor = true
	}

	logger := newLogger(c.Bool("verbose"))

	ctx := alone.NewContext(alone.DefaultEnvironment()).
		Name("main").
		MaxDepth(c.Int("max-depth")).
		Logger(logrus.NewEntry(logger)).
		OnExit(func(code int) {
			logger.WithField("code", code).Debug("exit")
			os.Exit(code)
		})
	logger.WithField("bindings", ctx.Env().Len()).Debug("environment ready")

	var dump io.Writer
	if c.Bool("dump-ast") {
		dump = os.Stderr
	}

	switch {
	case c.IsSet("eval"):
		return runSource(ctx, []byte(c.String("eval")), os.Stdout, dump)
	case c.NArg() > 0:
		name := c.Args().First()
		src, err := os.ReadFile(name)
		if err != nil {
			return cli.Exit(errors.Wrapf(err, "could not read %q", name), 1)
		}
		return runSource(ctx.Name(name), src, os.Stdout, dump)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	session := repl.New(ctx, os.Stdin, os.Stdout, os.Stderr).
		Prompt(c.String("prompt")).
		ShowPrompt(interactive).
		MaxDepth(c.Int("max-depth")).
		DumpAST(dump).
		Color(!color.NoColor)

	return session.Start()
}
