package ir

// NodeType is defined on its own file so the enumer generated code has a
// single source file to point at.

// NodeType distinguishes the two node kinds of the IR graph. It is fixed at
// construction and immutable thereafter.
type NodeType int

//go:generate go tool enumer -type=NodeType nodetype.go

const (
	// Operation is a computational step. It consumes and produces Variable
	// nodes through data edges.
	Operation NodeType = iota

	// Variable is a data value (tensor or scalar) flowing between Operations.
	Variable
)
