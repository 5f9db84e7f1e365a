package main

import (
	"fmt"
	"log"

	"github.com/xiam/alone/lexer"
)

func main() {
	input := `
		(define fact ; comment
			(if (< n 2) 1 (* n (fact (- n 1))))
		)
		(print 66 3 53)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d, span: %v)\n\t-> %q\n\n", i, tt, line, col, tok.Span(), lexeme)
	}
}
