package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue NodeType = 128
	nodeTypeForm  NodeType = 256

	NodeTypeSymbol = nodeTypeValue | 1
	NodeTypeNumber = nodeTypeValue | 2
	NodeTypeString = nodeTypeValue | 4

	NodeTypeIf     = nodeTypeForm | 1
	NodeTypeDefine = nodeTypeForm | 2
	NodeTypeCall   = nodeTypeForm | 4
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsValue returns true for leaf node types
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsForm returns true for parenthesized node types
func (nt NodeType) IsForm() bool {
	return nt&nodeTypeForm > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol: "symbol",
	NodeTypeNumber: "number",
	NodeTypeString: "string",
	NodeTypeIf:     "if",
	NodeTypeDefine: "define",
	NodeTypeCall:   "call",
}
