package ir

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ControlDepVarName is the reserved name marker of control-dependency
// Variables: synthetic nodes that exist purely to order two Operations that
// share no data. Any Variable whose name starts with this marker is a
// control-only node; downstream consumers (type/shape inference, execution)
// must never treat it as real data.
//
// The marker is a fixed process-wide literal. It must never collide with a
// legitimate user-chosen variable name; that is a precondition of the
// external naming scheme, not validated here.
const ControlDepVarName = "__control_var"

// controlDepVarName derives the unique name of a control Variable from its
// node id.
func controlDepVarName(id int64) string {
	return fmt.Sprintf("%s@%d", ControlDepVarName, id)
}

// IsControlDepVar returns whether n is a control-dependency Variable,
// recognized solely by the ControlDepVarName marker.
func (n *Node) IsControlDepVar() bool {
	return n.kind == Variable && strings.HasPrefix(n.name, ControlDepVarName)
}

// AddControlDependency forces any topological consumer of g to schedule the
// Operation `to` after the Operation `from`, even though no data flows
// between them: it creates a fresh control Variable, adds it as an output of
// `from` and an input of `to`, and returns it.
//
// This is pure composition over the node/graph primitives; the only thing
// that distinguishes the result from a data edge pair is the reserved name.
// Repeated calls for the same pair, or chains across several operations, are
// allowed; nothing deduplicates redundant constraints.
//
// It fails with ErrNotFound if either operation is not owned by g, and with
// ErrInvalidArgument if either node is not an Operation.
func AddControlDependency(g *Graph, from, to *Node) (*Node, error) {
	for _, n := range [2]*Node{from, to} {
		if !g.Has(n) {
			return nil, errors.Wrapf(ErrNotFound, "control dependency endpoint is not owned by graph %q", g.Name())
		}
		if !n.IsOperation() {
			return nil, errors.Wrapf(ErrInvalidArgument, "control dependencies connect Operations, got %s", n)
		}
	}
	ctrl := g.CreateControlDepVar()
	if err := from.AddOutput(ctrl); err != nil {
		return nil, err
	}
	if err := to.AddInput(ctrl); err != nil {
		return nil, err
	}
	return ctrl, nil
}
