package parser

import (
	"github.com/xiam/alone/ast"
	"github.com/xiam/alone/lexer"
)

const (
	keywordIf     = "if"
	keywordDefine = "define"
	keywordSetq   = "setq"
)

// DefaultMaxDepth is the default limit of nested expressions a parser
// accepts.
const DefaultMaxDepth = 10000

// Parser is a recursive descent parser with one token of lookahead. Each
// call to Parse consumes exactly one top-level expression.
type Parser struct {
	tokens []lexer.Token
	offset int

	lastTok *lexer.Token

	depth    int
	maxDepth int
}

// New creates a parser over an already tokenized input.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
}

// MaxDepth limits how deep expressions may nest, 0 means no limit.
func (p *Parser) MaxDepth(depth int) *Parser {
	p.maxDepth = depth
	return p
}

// Parse reads the next top-level expression. ErrNoInput is returned when the
// token stream is exhausted.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.peek() == nil {
		return nil, ErrNoInput
	}
	return p.parseExpr()
}

// ParseAll reads top-level expressions until the token stream is exhausted.
func (p *Parser) ParseAll() ([]ast.Expr, error) {
	exprs := []ast.Expr{}
	for !p.Done() {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// Done returns true when there are no tokens left.
func (p *Parser) Done() bool {
	return p.peek() == nil
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) peek() *lexer.Token {
	if p.offset >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.offset]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.offset++
		p.lastTok = tok
	}
	return tok
}

func (p *Parser) errUnexpectedEOF() error {
	return ParserError(ErrUnexpectedEOF, p.curr())
}

func (p *Parser) expect(tt lexer.TokenType) (*lexer.Token, error) {
	tok := p.next()
	if tok == nil {
		return nil, p.errUnexpectedEOF()
	}
	if !tok.Is(tt) {
		return nil, ParserError(ErrUnexpectedToken, tok)
	}
	return tok, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	p.depth++
	defer func() {
		p.depth--
	}()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, ParserError(ErrTooDeep, p.peek())
	}

	tok := p.next()
	if tok == nil {
		return nil, p.errUnexpectedEOF()
	}

	switch tok.Type() {
	case lexer.TokenLeftBracket:
		return p.parseForm(tok)
	case lexer.TokenNumber:
		return ast.NewNumber(tok), nil
	case lexer.TokenSymbol:
		return ast.NewSymbol(tok), nil
	case lexer.TokenString:
		return ast.NewStr(tok.Text()), nil
	}

	return nil, ParserError(ErrUnexpectedToken, tok)
}

func (p *Parser) parseForm(open *lexer.Token) (ast.Expr, error) {
	head := p.peek()
	if head == nil {
		return nil, p.errUnexpectedEOF()
	}
	if !head.Is(lexer.TokenSymbol) {
		return nil, ParserError(ErrExpectedSymbol, head)
	}

	switch head.Text() {
	case keywordIf:
		return p.parseIf(open)
	case keywordDefine, keywordSetq:
		return p.parseDefine(open)
	}
	return p.parseCall(open)
}

func (p *Parser) parseIf(open *lexer.Token) (ast.Expr, error) {
	node := &ast.If{
		Open:  open,
		IfTok: p.next(),
	}

	var err error
	for _, branch := range []*ast.Expr{&node.Cond, &node.Then, &node.Else} {
		if *branch, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}

	if node.Close, err = p.expect(lexer.TokenRightBracket); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseDefine(open *lexer.Token) (ast.Expr, error) {
	node := &ast.Define{
		Open:      open,
		DefineTok: p.next(),
	}

	sym := p.next()
	if sym == nil {
		return nil, p.errUnexpectedEOF()
	}
	switch sym.Type() {
	case lexer.TokenLeftBracket, lexer.TokenRightBracket:
		return nil, ParserError(ErrExpectedSymbol, sym)
	}
	node.SymbolTok = sym

	var err error
	if node.Value, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if node.Close, err = p.expect(lexer.TokenRightBracket); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseCall(open *lexer.Token) (ast.Expr, error) {
	node := &ast.Call{
		Open:      open,
		SymbolTok: p.next(),
		Args:      []ast.Expr{},
	}

	for {
		tok := p.peek()
		if tok == nil {
			return nil, p.errUnexpectedEOF()
		}
		if tok.Is(lexer.TokenRightBracket) {
			break
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Args = append(node.Args, arg)
	}

	node.Close = p.next()
	return node, nil
}

// Parse tokenizes the input and returns its first top-level expression.
// Trailing tokens are ignored.
func Parse(in []byte) (ast.Expr, error) {
	return ParseDepth(in, DefaultMaxDepth)
}

// ParseDepth is like Parse with a custom nesting limit.
func ParseDepth(in []byte, maxDepth int) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return New(tokens).MaxDepth(maxDepth).Parse()
}
