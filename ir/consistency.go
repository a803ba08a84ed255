package ir

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// CheckConsistency verifies the structural invariants of the graph and
// returns nil when they all hold:
//
//   - Ownership: every adjacency entry of every owned node points to another
//     currently-owned node of the same graph (no dangling or cross-graph
//     references).
//   - Symmetry: for every input edge there is the matching entry on the
//     producer's output side, and vice versa.
//   - Bipartite structure: every edge connects an Operation endpoint to a
//     Variable endpoint.
//   - Control naming: nodes named with the ControlDepVarName marker are
//     Variables.
//
// Passes call it after a rewrite; it is read-only and idempotent, so calling
// it repeatedly on an unmutated graph always yields the same result. On the
// first violation found it fails with ErrInvalidGraphStructure naming the
// offending node id. Nodes are visited in id order, so the reported node is
// deterministic for a given graph.
func (g *Graph) CheckConsistency() error {
	for _, n := range g.SortedNodes() {
		if err := g.checkAdjacency(n, n.inputs, "input"); err != nil {
			return err
		}
		if err := g.checkAdjacency(n, n.outputs, "output"); err != nil {
			return err
		}
		if strings.HasPrefix(n.name, ControlDepVarName) && !n.IsVariable() {
			return errors.Wrapf(ErrInvalidGraphStructure,
				"node #%d: %s carries the control-dependency marker but is not a Variable", n.id, n)
		}
	}
	return nil
}

// checkAdjacency verifies one adjacency direction of n: ownership, bipartite
// structure and the presence of the reverse entry on the neighbor.
func (g *Graph) checkAdjacency(n *Node, neighbors []*Node, direction string) error {
	for _, neighbor := range neighbors {
		if !g.Has(neighbor) {
			return errors.Wrapf(ErrInvalidGraphStructure,
				"node #%d: %s %s is not owned by graph %q", n.id, direction, neighbor, g.name)
		}
		if neighbor.kind == n.kind {
			return errors.Wrapf(ErrInvalidGraphStructure,
				"node #%d: %s %s violates the Operation/Variable bipartite structure", n.id, direction, neighbor)
		}
		reverse := neighbor.outputs
		if direction == "output" {
			reverse = neighbor.inputs
		}
		if !slices.Contains(reverse, n) {
			return errors.Wrapf(ErrInvalidGraphStructure,
				"node #%d: %s %s has no matching reverse edge", n.id, direction, neighbor)
		}
	}
	return nil
}
