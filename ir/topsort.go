package ir

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// TopologicalSort returns all nodes of the graph in a topological order:
// every node appears after all of its inputs. Control Variables participate
// like any other node, so a control dependency from Operation a to Operation
// b places a before b exactly as a data dependency would.
//
// The order is deterministic: among the nodes ready at any step, the one
// with the smallest id (oldest) is emitted first. Pass output therefore
// depends only on graph structure and creation order, never on map iteration
// or pointer addresses.
//
// It fails with ErrInvalidGraphStructure if the graph contains a cycle,
// naming a node on it.
func TopologicalSort(g *Graph) ([]*Node, error) {
	indegree := make(map[*Node]int, g.Size())
	for _, n := range g.nodes {
		indegree[n] = len(n.inputs)
	}

	// ready holds the zero-indegree frontier, kept sorted by id.
	var ready []*Node
	for _, n := range g.SortedNodes() {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	order := make([]*Node, 0, g.Size())
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)
		for _, out := range n.outputs {
			// Duplicate edges decrement once per occurrence, matching the
			// indegree count above.
			indegree[out]--
			if indegree[out] == 0 {
				i, _ := slices.BinarySearchFunc(ready, out, func(a, b *Node) int { return cmp.Compare(a.id, b.id) })
				ready = slices.Insert(ready, i, out)
			}
		}
	}

	if len(order) < g.Size() {
		blocked := int64(-1)
		for n, deg := range indegree {
			if deg > 0 && (blocked < 0 || n.id < blocked) {
				blocked = n.id
			}
		}
		return nil, errors.Wrapf(ErrInvalidGraphStructure, "graph %q has a cycle through node #%d", g.name, blocked)
	}
	return order, nil
}

// HasCycle reports whether the graph contains a dependency cycle.
func HasCycle(g *Graph) bool {
	_, err := TopologicalSort(g)
	return err != nil
}
