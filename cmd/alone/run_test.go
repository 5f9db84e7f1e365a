package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/xiam/alone"
)

func init() {
	color.NoColor = true
}

func TestRunSource(t *testing.T) {
	var out bytes.Buffer
	ctx := alone.NewContext(nil).Output(&out)

	err := runSource(ctx, []byte("(define n 4)\n; square\n(* n n)\n"), &out, nil)
	require.NoError(t, err)
	assert.Equal(t, "16\n", out.String())
}

func TestRunSourceEmpty(t *testing.T) {
	var out bytes.Buffer
	ctx := alone.NewContext(nil).Output(&out)

	require.NoError(t, runSource(ctx, []byte("  ; nothing\n"), &out, nil))
	assert.Equal(t, "Nil\n", out.String())
}

func TestRunSourceError(t *testing.T) {
	var out bytes.Buffer
	ctx := alone.NewContext(nil).Output(&out)

	err := runSource(ctx, []byte("(print 1)\n(/ 1 0)\n(print 2)\n"), &out, nil)
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, exitErr.Error(), "Error! ")
	assert.Contains(t, exitErr.Error(), "division by zero")
	assert.Equal(t, "1\n", out.String())
}

func TestRunSourceDump(t *testing.T) {
	var out, dump bytes.Buffer
	ctx := alone.NewContext(nil).Output(&out)

	require.NoError(t, runSource(ctx, []byte("(define a 1) (+ a 2)"), &out, &dump))
	assert.Equal(t, "3\n", out.String())
	assert.Contains(t, dump.String(), "Define")
	assert.Contains(t, dump.String(), "Call")
}

func TestRunSourceSyntaxError(t *testing.T) {
	var out, dump bytes.Buffer
	ctx := alone.NewContext(nil).Output(&out)

	err := runSource(ctx, []byte("(print 1) (+ 1 2"), &out, &dump)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.Empty(t, out.String())
	assert.Empty(t, dump.String())
}

func TestRunSourceTooDeep(t *testing.T) {
	var out bytes.Buffer
	ctx := alone.NewContext(nil).Output(&out).MaxDepth(4)

	err := runSource(ctx, []byte("(+ 1 (+ 2 (+ 3 (+ 4 5))))"), &out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested too deep")
}
