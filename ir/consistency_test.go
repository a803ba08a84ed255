package ir

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildValidGraph(t *testing.T) *Graph {
	g := New("valid")
	x := g.CreateVariableNode("x", nil)
	w := g.CreateVariableNode("w", nil)
	matmul := g.CreateOperationNode("matmul", nil)
	y := g.CreateVariableNode("y", nil)
	require.NoError(t, matmul.AddInput(x))
	require.NoError(t, matmul.AddInput(w))
	require.NoError(t, matmul.AddOutput(y))
	return g
}

func TestCheckConsistencyIdempotent(t *testing.T) {
	g := buildValidGraph(t)
	// Read-only: two checks on an unmutated graph agree.
	require.NoError(t, g.CheckConsistency())
	require.NoError(t, g.CheckConsistency())
}

func TestCheckConsistencyCrossGraphReference(t *testing.T) {
	g := buildValidGraph(t)
	other := New("other")
	foreign := other.CreateVariableNode("foreign", nil)

	// Corrupt the adjacency behind the primitives' back, the way a buggy
	// pass holding internal state might.
	op := findByName(g, "matmul")
	op.inputs = append(op.inputs, foreign)

	err := g.CheckConsistency()
	require.ErrorIs(t, err, ErrInvalidGraphStructure)
	assert.Contains(t, err.Error(), "not owned")
}

func TestCheckConsistencyBipartiteViolation(t *testing.T) {
	g := buildValidGraph(t)
	op := findByName(g, "matmul")
	op2 := g.CreateOperationNode("relu", nil)
	op.outputs = append(op.outputs, op2)
	op2.inputs = append(op2.inputs, op)

	err := g.CheckConsistency()
	require.ErrorIs(t, err, ErrInvalidGraphStructure)
	assert.Contains(t, err.Error(), "bipartite")
}

func TestCheckConsistencyMissingReverseEdge(t *testing.T) {
	g := buildValidGraph(t)
	op := findByName(g, "matmul")
	v := g.CreateVariableNode("extra", nil)
	op.inputs = append(op.inputs, v) // one-sided edge

	err := g.CheckConsistency()
	require.ErrorIs(t, err, ErrInvalidGraphStructure)
	assert.Contains(t, err.Error(), "reverse edge")
}

func TestCheckConsistencyControlMarkerOnOperation(t *testing.T) {
	g := buildValidGraph(t)
	// An Operation named with the reserved marker breaks the convention:
	// downstream consumers would skip it as control-only data.
	g.CreateOperationNode(ControlDepVarName+"@13", nil)

	err := g.CheckConsistency()
	require.ErrorIs(t, err, ErrInvalidGraphStructure)
	assert.Contains(t, err.Error(), "control-dependency marker")
}

func TestCheckConsistencyReportsNodeID(t *testing.T) {
	g := buildValidGraph(t)
	other := New("other")
	foreign := other.CreateVariableNode("foreign", nil)
	op := findByName(g, "matmul")
	op.inputs = append(op.inputs, foreign)

	err := g.CheckConsistency()
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("node #%d", op.ID()))
}

func findByName(g *Graph, name string) *Node {
	for _, n := range g.Nodes() {
		if n.Name() == name {
			return n
		}
	}
	return nil
}
