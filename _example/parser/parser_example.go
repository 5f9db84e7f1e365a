package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/alone/ast"
	"github.com/xiam/alone/parser"
)

func main() {
	input := `(if (< x 10) (print x) (define x (- x 10)))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
	fmt.Printf("\n%s\n", ast.Encode(root))
}
