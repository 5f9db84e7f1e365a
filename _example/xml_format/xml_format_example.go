package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/alone/ast"
	"github.com/xiam/alone/parser"
)

func printTree(node ast.Expr) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.Type().IsForm() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		for _, child := range ast.Children(node) {
			printIndentedTree(child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node, node.Type())
}

func main() {
	input := `(begin (define a 3) (if (= a 3) (cons a 3) (list 1 2 a)))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
