package ast

import (
	"fmt"

	"github.com/xiam/alone/lexer"
)

// Expr represents a node of the expression tree. The set of implementations
// is closed: *Symbol, *Number, *Str, *If, *Define and *Call.
type Expr interface {
	// Type returns the type of the node
	Type() NodeType
	// Token returns the first token of the node, nil for synthesized nodes
	Token() *lexer.Token

	fmt.Stringer

	expr()
}

// Symbol is a reference to a name in the environment.
type Symbol struct {
	Tok  *lexer.Token
	Name string
}

// Number is an integer literal.
type Number struct {
	Tok   *lexer.Token
	Value int64
}

// Str is a string literal. The grammar has no way to produce one yet.
type Str struct {
	Value string
}

// If is a conditional. Only the selected branch gets evaluated.
type If struct {
	Open  *lexer.Token
	IfTok *lexer.Token

	Cond Expr
	Then Expr
	Else Expr

	Close *lexer.Token
}

// Define binds the value of an expression to a symbol. SymbolTok is carried
// as read and is validated when the node is evaluated.
type Define struct {
	Open      *lexer.Token
	DefineTok *lexer.Token
	SymbolTok *lexer.Token

	Value Expr

	Close *lexer.Token
}

// Call is the invocation of a builtin with positional arguments.
type Call struct {
	Open      *lexer.Token
	SymbolTok *lexer.Token

	Args []Expr

	Close *lexer.Token
}

// NewSymbol creates a symbol node from a symbol token
func NewSymbol(tok *lexer.Token) *Symbol {
	return &Symbol{Tok: tok, Name: tok.Text()}
}

// NewNumber creates a number node from a number token
func NewNumber(tok *lexer.Token) *Number {
	return &Number{Tok: tok, Value: tok.Int()}
}

// NewStr creates a string node
func NewStr(v string) *Str {
	return &Str{Value: v}
}

func (n *Symbol) Type() NodeType { return NodeTypeSymbol }
func (n *Number) Type() NodeType { return NodeTypeNumber }
func (n *Str) Type() NodeType    { return NodeTypeString }
func (n *If) Type() NodeType     { return NodeTypeIf }
func (n *Define) Type() NodeType { return NodeTypeDefine }
func (n *Call) Type() NodeType   { return NodeTypeCall }

func (n *Symbol) Token() *lexer.Token { return n.Tok }
func (n *Number) Token() *lexer.Token { return n.Tok }
func (n *Str) Token() *lexer.Token    { return nil }
func (n *If) Token() *lexer.Token     { return n.Open }
func (n *Define) Token() *lexer.Token { return n.Open }
func (n *Call) Token() *lexer.Token   { return n.Open }

func (n *Symbol) String() string { return fmt.Sprintf("(%v): %v", n.Type(), n.Name) }
func (n *Number) String() string { return fmt.Sprintf("(%v): %d", n.Type(), n.Value) }
func (n *Str) String() string    { return fmt.Sprintf("(%v): %q", n.Type(), n.Value) }
func (n *If) String() string     { return fmt.Sprintf("(%v)[3]", n.Type()) }
func (n *Define) String() string { return fmt.Sprintf("(%v)[1]", n.Type()) }
func (n *Call) String() string   { return fmt.Sprintf("(%v)[%d]", n.Type(), len(n.Args)) }

func (*Symbol) expr() {}
func (*Number) expr() {}
func (*Str) expr()    {}
func (*If) expr()     {}
func (*Define) expr() {}
func (*Call) expr()   {}

// Children returns the sub-expressions of a node, in evaluation order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *If:
		return []Expr{n.Cond, n.Then, n.Else}
	case *Define:
		return []Expr{n.Value}
	case *Call:
		return n.Args
	}
	return nil
}

var (
	_ = Expr(&Symbol{})
	_ = Expr(&Number{})
	_ = Expr(&Str{})
	_ = Expr(&If{})
	_ = Expr(&Define{})
	_ = Expr(&Call{})
)
