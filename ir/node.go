package ir

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Node is a single vertex of the IR graph, either an Operation or a Variable.
//
// Nodes can only be created through the factory methods of a Graph (see
// Graph.CreateOperationNode and friends), which guarantees every live Node
// has exactly one owner and a process-unique id. There is no public way to
// build a detached Node.
//
// A Node carries its adjacency as two ordered sequences, inputs and outputs.
// Edges are directed: an edge from Variable v to Operation o means o reads v,
// and from o to v means o produces v. Every data edge connects an Operation
// endpoint to a Variable endpoint; Operation-Operation and Variable-Variable
// edges are rejected. Ordering constraints between two Operations are instead
// expressed through synthetic control Variables (see AddControlDependency).
//
// The edge primitives keep both endpoints in sync: one AddInput/AddOutput
// call per edge, the matching entry on the neighbor side is maintained for
// you. Calling both sides creates a duplicate edge.
type Node struct {
	id    int64
	name  string
	kind  NodeType
	desc  any
	owner *Graph

	inputs  []*Node
	outputs []*Node
}

// ID returns the node's process-unique id. Ids are assigned monotonically at
// creation and never reused, so id order reflects creation order. Use ids
// (not pointers) whenever a pass needs deterministic iteration.
func (n *Node) ID() int64 { return n.id }

// Name returns the human-readable name of the node. Names are not guaranteed
// unique; they are meant for diagnostics and for matching against external
// descriptor tables.
func (n *Node) Name() string { return n.name }

// Type returns the node kind, fixed at construction.
func (n *Node) Type() NodeType { return n.kind }

// IsOperation returns whether the node is an Operation.
func (n *Node) IsOperation() bool { return n.kind == Operation }

// IsVariable returns whether the node is a Variable.
func (n *Node) IsVariable() bool { return n.kind == Variable }

// Descriptor returns the opaque descriptor payload attached to the node, or
// nil if there is none. The graph core stores it unmodified and never
// interprets it -- its schema belongs to the external descriptor provider.
func (n *Node) Descriptor() any { return n.desc }

// SetDescriptor replaces the descriptor payload. Passes use this when a
// rewrite changes what an existing node stands for.
func (n *Node) SetDescriptor(desc any) { n.desc = desc }

// Inputs returns the node's input adjacency in insertion order.
// The returned slice is owned by the node and must not be modified.
func (n *Node) Inputs() []*Node { return n.inputs }

// Outputs returns the node's output adjacency in insertion order.
// The returned slice is owned by the node and must not be modified.
func (n *Node) Outputs() []*Node { return n.outputs }

// String implements fmt.Stringer, for diagnostics.
func (n *Node) String() string {
	return fmt.Sprintf("%s #%d (%q)", n.kind, n.id, n.name)
}

// AddInput adds a directed edge from in to n: in becomes the last entry of
// n.Inputs() and n the last entry of in.Outputs().
//
// Both nodes must be owned by the same Graph (ErrNotFound otherwise), and the
// edge must connect an Operation to a Variable (ErrInvalidGraphStructure
// otherwise). Duplicate edges are allowed.
func (n *Node) AddInput(in *Node) error {
	if err := n.validateEdge(in); err != nil {
		return err
	}
	n.inputs = append(n.inputs, in)
	in.outputs = append(in.outputs, n)
	return nil
}

// AddOutput adds a directed edge from n to out: out becomes the last entry of
// n.Outputs() and n the last entry of out.Inputs().
// Same rules as AddInput.
func (n *Node) AddOutput(out *Node) error {
	if err := n.validateEdge(out); err != nil {
		return err
	}
	n.outputs = append(n.outputs, out)
	out.inputs = append(out.inputs, n)
	return nil
}

// RemoveInput removes one edge from in to n, on both endpoints. If the edge
// was added more than once, only the first occurrence on each side is
// removed. It returns ErrNotFound if there is no such edge.
func (n *Node) RemoveInput(in *Node) error {
	var ok bool
	if n.inputs, ok = removeFirst(n.inputs, in); !ok {
		return errors.Wrapf(ErrNotFound, "%s is not an input of %s", in, n)
	}
	in.outputs, _ = removeFirst(in.outputs, n)
	return nil
}

// RemoveOutput removes one edge from n to out, on both endpoints. If the edge
// was added more than once, only the first occurrence on each side is
// removed. It returns ErrNotFound if there is no such edge.
func (n *Node) RemoveOutput(out *Node) error {
	var ok bool
	if n.outputs, ok = removeFirst(n.outputs, out); !ok {
		return errors.Wrapf(ErrNotFound, "%s is not an output of %s", out, n)
	}
	out.inputs, _ = removeFirst(out.inputs, n)
	return nil
}

// validateEdge checks that an edge between n and other is allowed: both ends
// are live nodes of the same graph, and the edge respects the bipartite
// Operation/Variable structure.
func (n *Node) validateEdge(other *Node) error {
	if other == nil {
		return errors.Wrapf(ErrInvalidArgument, "cannot add an edge from %s to a nil node", n)
	}
	if n.owner == nil {
		return errors.Wrapf(ErrNotFound, "%s was removed from its graph", n)
	}
	if other.owner == nil {
		return errors.Wrapf(ErrNotFound, "%s was removed from its graph", other)
	}
	if n.owner != other.owner {
		return errors.Wrapf(ErrNotFound, "%s and %s belong to different graphs", n, other)
	}
	if n.kind == other.kind {
		return errors.Wrapf(ErrInvalidGraphStructure,
			"data edges connect an Operation to a Variable, cannot connect %s to %s", n, other)
	}
	return nil
}

// detach excises n from every neighbor's adjacency and clears n's own.
// Called by Graph.RemoveNode; duplicate edges are all removed.
func (n *Node) detach() {
	for _, in := range n.inputs {
		in.outputs = removeAll(in.outputs, n)
	}
	for _, out := range n.outputs {
		out.inputs = removeAll(out.inputs, n)
	}
	n.inputs = nil
	n.outputs = nil
}

// removeFirst removes the first occurrence of target from s, preserving the
// order of the remaining elements. The second result reports whether target
// was present.
func removeFirst(s []*Node, target *Node) ([]*Node, bool) {
	i := slices.Index(s, target)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

// removeAll removes every occurrence of target from s, preserving the order
// of the remaining elements.
func removeAll(s []*Node, target *Node) []*Node {
	return slices.DeleteFunc(s, func(n *Node) bool { return n == target })
}
