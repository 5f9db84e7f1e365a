package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/xiam/alone/lexer"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Print writes a human-readable representation of a node
func Print(w io.Writer, n Expr) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Expr, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch v := n.(type) {
	case *Symbol:
		fmt.Fprintf(w, "%s (%v)\n", v.Name, v.Tok)
	case *Number:
		fmt.Fprintf(w, "%d (%v)\n", v.Value, v.Tok)
	case *Str:
		fmt.Fprintf(w, "%q\n", v.Value)
	case *Define:
		fmt.Fprintf(w, "%v (%v)\n", v.SymbolTok, v.Open)
	case *Call:
		fmt.Fprintf(w, "%v (%v)\n", v.SymbolTok, v.Open)
	default:
		fmt.Fprintf(w, "(%v)\n", n.Token())
	}

	for _, child := range Children(n) {
		printLevel(w, child, level+1)
	}
}

// Dump writes the full structure of a node, tokens included.
func Dump(w io.Writer, n Expr) {
	dumpConfig.Fdump(w, n)
}

// Encode transforms a node into its canonical source representation
func Encode(n Expr) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n Expr) string {
	if n == nil {
		return ":nil"
	}

	switch v := n.(type) {
	case *Symbol:
		return v.Name
	case *Number:
		return fmt.Sprintf("%d", v.Value)
	case *Str:
		return fmt.Sprintf("%q", v.Value)
	case *If:
		return encodeForm("if", v.Cond, v.Then, v.Else)
	case *Define:
		return encodeForm(tokenText(v.DefineTok, "define"), append([]Expr{&Symbol{Name: tokenText(v.SymbolTok, "")}}, v.Value)...)
	case *Call:
		return encodeForm(tokenText(v.SymbolTok, ""), v.Args...)
	}

	return n.String()
}

func encodeForm(head string, args ...Expr) string {
	nodes := []string{head}
	for i := range args {
		nodes = append(nodes, encodeNode(args[i]))
	}
	return fmt.Sprintf("(%s)", strings.Join(nodes, " "))
}

func tokenText(tok *lexer.Token, fallback string) string {
	if tok == nil {
		return fallback
	}
	return tok.Text()
}
