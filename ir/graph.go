package ir

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/pkg/errors"
)

// nodeIDCounter assigns process-unique node ids. Ids are unique across all
// graphs in the process, not just within one graph, so nodes from different
// compilation units never alias in debug output.
var nodeIDCounter atomic.Int64

// Graph is the owning container of all Nodes of one computation unit.
//
// The Graph exclusively owns every Node's lifetime: it is the only component
// that can create a Node (factory methods below) or permanently destroy one
// (RemoveNode). All Node-to-Node references (adjacency) are non-owning
// back-references into the same Graph.
//
// A Graph is not internally synchronized. It is designed for single-threaded,
// single-writer mutation by one transformation pass at a time; concurrent
// passes must not mutate the same Graph simultaneously.
type Graph struct {
	name  string
	nodes map[int64]*Node
	attrs map[string]any
}

// New creates a new, empty graph with the given name.
func New(name string) *Graph {
	return &Graph{
		name:  name,
		nodes: make(map[int64]*Node),
	}
}

// Name returns the name given to New.
func (g *Graph) Name() string { return g.name }

// createNode is the single allocation point for nodes: fresh unique id,
// registered in the graph, owner set.
func (g *Graph) createNode(name string, kind NodeType, desc any) *Node {
	n := &Node{
		id:    nodeIDCounter.Add(1),
		name:  name,
		kind:  kind,
		desc:  desc,
		owner: g,
	}
	g.nodes[n.id] = n
	return n
}

// CreateOperationNode creates and registers a new Operation node with the
// given name and opaque operator descriptor. The returned node is owned by
// the graph; its lifetime ends with RemoveNode or with the graph itself.
func (g *Graph) CreateOperationNode(name string, desc any) *Node {
	return g.createNode(name, Operation, desc)
}

// CreateVariableNode creates and registers a new Variable node with the given
// name and opaque variable descriptor.
func (g *Graph) CreateVariableNode(name string, desc any) *Node {
	return g.createNode(name, Variable, desc)
}

// CreateEmptyNode creates and registers a node of the given type with no
// descriptor attached. Used by loaders that attach the descriptor in a
// second step (see Node.SetDescriptor). It fails with ErrInvalidArgument if
// kind is not a valid NodeType.
func (g *Graph) CreateEmptyNode(name string, kind NodeType) (*Node, error) {
	if !kind.IsANodeType() {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot create node %q with unknown node type %d", name, kind)
	}
	return g.createNode(name, kind, nil), nil
}

// CreateControlDepVar creates and registers a new control-dependency
// Variable, named per the reserved ControlDepVarName convention so that
// downstream consumers recognize it as ordering-only, never as real data.
// Most callers want AddControlDependency instead.
func (g *Graph) CreateControlDepVar() *Node {
	n := g.createNode("", Variable, nil)
	n.name = controlDepVarName(n.id)
	return n
}

// Has reports whether n is currently owned by this graph.
func (g *Graph) Has(n *Node) bool {
	return n != nil && g.nodes[n.id] == n
}

// Size returns the number of nodes currently owned by the graph.
func (g *Graph) Size() int { return len(g.nodes) }

// Nodes returns all nodes currently owned by the graph, in unspecified
// order. Use SortedNodes when a pass needs a deterministic sequence.
func (g *Graph) Nodes() []*Node {
	all := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		all = append(all, n)
	}
	return all
}

// SortedNodes returns all nodes currently owned by the graph, sorted by id
// ascending, which is creation order.
func (g *Graph) SortedNodes() []*Node {
	all := g.Nodes()
	slices.SortFunc(all, func(a, b *Node) int { return cmp.Compare(a.id, b.id) })
	return all
}

// RemoveNode detaches n from every neighbor's adjacency (both directions,
// duplicate edges included), releases ownership and invalidates the node.
// This is the cleanup policy: a still-wired node may be removed, and its
// neighbors are left consistent.
//
// Removal is terminal. The node's id is never reassigned, the node object is
// never reused, and any reference a pass retained across this call is
// dangling: every subsequent edge operation on it fails with ErrNotFound.
//
// It fails with ErrNotFound if n is not owned by this graph.
func (g *Graph) RemoveNode(n *Node) error {
	if !g.Has(n) {
		return errors.Wrapf(ErrNotFound, "node is not owned by graph %q", g.name)
	}
	n.detach()
	delete(g.nodes, n.id)
	n.owner = nil
	return nil
}

// SetAttr attaches a named graph-level attribute. The core stores attributes
// untouched for passes to communicate through; it never interprets them.
func (g *Graph) SetAttr(name string, value any) {
	if g.attrs == nil {
		g.attrs = make(map[string]any)
	}
	g.attrs[name] = value
}

// Attr returns the graph-level attribute with the given name, and whether it
// was set.
func (g *Graph) Attr(name string) (any, bool) {
	value, ok := g.attrs[name]
	return value, ok
}
