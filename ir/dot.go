package ir

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes the graph in Graphviz DOT format to the given writer, as a
// debugging aid. Operations are drawn as boxes, Variables as ellipses and
// control Variables dashed. Nodes are emitted in id order, so the output is
// deterministic for a given graph.
func (g *Graph) WriteDOT(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("digraph %q {\n", g.name)
	for _, n := range g.SortedNodes() {
		shape := "ellipse"
		if n.IsOperation() {
			shape = "box"
		}
		style := "solid"
		if n.IsControlDepVar() {
			style = "dashed"
		}
		w("  node_%d [label=%q, shape=%s, style=%s];\n", n.id, n.name, shape, style)
	}
	for _, n := range g.SortedNodes() {
		for _, out := range n.outputs {
			w("  node_%d -> node_%d;\n", n.id, out.id)
		}
	}
	w("}\n")
	return err
}

// DOT returns the graph rendered in Graphviz DOT format. See WriteDOT.
func (g *Graph) DOT() string {
	var sb strings.Builder
	_ = g.WriteDOT(&sb)
	return sb.String()
}
