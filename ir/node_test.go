package ir

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeIDsUniqueAndMonotonic(t *testing.T) {
	g := New("ids")
	var previous int64
	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		var n *Node
		if i%2 == 0 {
			n = g.CreateOperationNode("op", nil)
		} else {
			n = g.CreateVariableNode("var", nil)
		}
		require.False(t, seen[n.ID()], "id %d assigned twice", n.ID())
		seen[n.ID()] = true
		require.Greater(t, n.ID(), previous, "ids must be strictly increasing in creation order")
		previous = n.ID()
	}

	// Ids are unique across graphs too.
	other := New("other")
	n := other.CreateVariableNode("var", nil)
	require.False(t, seen[n.ID()])
	require.Greater(t, n.ID(), previous)
}

func TestNodeAccessors(t *testing.T) {
	g := New("accessors")
	op := g.CreateOperationNode("matmul", "op-descriptor")
	v := g.CreateVariableNode("weights", map[string]any{"dtype": "f32"})

	assert.Equal(t, "matmul", op.Name())
	assert.Equal(t, Operation, op.Type())
	assert.True(t, op.IsOperation())
	assert.False(t, op.IsVariable())
	assert.Equal(t, "op-descriptor", op.Descriptor())

	assert.Equal(t, "weights", v.Name())
	assert.Equal(t, Variable, v.Type())
	assert.True(t, v.IsVariable())
	assert.False(t, v.IsOperation())

	// The core stores descriptors untouched and allows replacing them.
	v.SetDescriptor(42)
	assert.Equal(t, 42, v.Descriptor())

	assert.Contains(t, op.String(), "Operation")
	assert.Contains(t, op.String(), `"matmul"`)
}

func TestEdgeSymmetry(t *testing.T) {
	g := New("symmetry")
	x := g.CreateVariableNode("x", nil)
	op := g.CreateOperationNode("relu", nil)
	y := g.CreateVariableNode("y", nil)

	require.NoError(t, op.AddInput(x))
	require.NoError(t, op.AddOutput(y))

	// One call per edge, both endpoints updated.
	assert.Equal(t, []*Node{x}, op.Inputs())
	assert.Equal(t, []*Node{op}, x.Outputs())
	assert.Equal(t, []*Node{y}, op.Outputs())
	assert.Equal(t, []*Node{op}, y.Inputs())
	assert.Empty(t, x.Inputs())
	assert.Empty(t, y.Outputs())

	// Removal clears both endpoints as well.
	require.NoError(t, op.RemoveInput(x))
	assert.Empty(t, op.Inputs())
	assert.Empty(t, x.Outputs())
	require.NoError(t, y.RemoveInput(op))
	assert.Empty(t, op.Outputs())
	assert.Empty(t, y.Inputs())
}

func TestEdgeInsertionOrder(t *testing.T) {
	g := New("order")
	op := g.CreateOperationNode("concat", nil)
	a := g.CreateVariableNode("a", nil)
	b := g.CreateVariableNode("b", nil)
	c := g.CreateVariableNode("c", nil)
	for _, v := range []*Node{a, b, c} {
		require.NoError(t, op.AddInput(v))
	}
	assert.Equal(t, []*Node{a, b, c}, op.Inputs())

	// Removing the middle input preserves the order of the rest.
	require.NoError(t, op.RemoveInput(b))
	assert.Equal(t, []*Node{a, c}, op.Inputs())
}

func TestBipartiteEdgeRejected(t *testing.T) {
	g := New("bipartite")
	op1 := g.CreateOperationNode("op1", nil)
	op2 := g.CreateOperationNode("op2", nil)
	v1 := g.CreateVariableNode("v1", nil)
	v2 := g.CreateVariableNode("v2", nil)

	err := op1.AddInput(op2)
	require.ErrorIs(t, err, ErrInvalidGraphStructure)
	err = op1.AddOutput(op2)
	require.ErrorIs(t, err, ErrInvalidGraphStructure)
	err = v1.AddInput(v2)
	require.ErrorIs(t, err, ErrInvalidGraphStructure)

	// Failed edges must leave no partial adjacency behind.
	assert.Empty(t, op1.Inputs())
	assert.Empty(t, op1.Outputs())
	assert.Empty(t, op2.Inputs())
	assert.Empty(t, op2.Outputs())
	assert.Empty(t, v2.Outputs())
}

func TestRemoveAbsentEdge(t *testing.T) {
	g := New("absent")
	op := g.CreateOperationNode("op", nil)
	v := g.CreateVariableNode("v", nil)

	// Removing an edge that was never added is NotFound, consistently on
	// both primitives.
	require.ErrorIs(t, op.RemoveInput(v), ErrNotFound)
	require.ErrorIs(t, op.RemoveOutput(v), ErrNotFound)

	// And removing twice fails the second time.
	require.NoError(t, op.AddInput(v))
	require.NoError(t, op.RemoveInput(v))
	require.ErrorIs(t, op.RemoveInput(v), ErrNotFound)
}

func TestCrossGraphEdgeRejected(t *testing.T) {
	g1 := New("g1")
	g2 := New("g2")
	op := g1.CreateOperationNode("op", nil)
	v := g2.CreateVariableNode("v", nil)

	err := op.AddInput(v)
	require.ErrorIs(t, err, ErrNotFound)
	assert.True(t, errors.Is(op.AddOutput(v), ErrNotFound))
}

func TestRemovedNodeEdgesFail(t *testing.T) {
	g := New("removed")
	op := g.CreateOperationNode("op", nil)
	v := g.CreateVariableNode("v", nil)
	require.NoError(t, g.RemoveNode(op))

	// A removed node is terminal: every edge operation on it fails.
	require.ErrorIs(t, op.AddInput(v), ErrNotFound)
	require.ErrorIs(t, v.AddInput(op), ErrNotFound)
}

func TestDuplicateEdges(t *testing.T) {
	g := New("duplicates")
	op := g.CreateOperationNode("op", nil)
	v := g.CreateVariableNode("v", nil)

	// Nothing deduplicates edges; each removal drops one occurrence.
	require.NoError(t, op.AddInput(v))
	require.NoError(t, op.AddInput(v))
	assert.Equal(t, []*Node{v, v}, op.Inputs())
	assert.Equal(t, []*Node{op, op}, v.Outputs())

	require.NoError(t, op.RemoveInput(v))
	assert.Equal(t, []*Node{v}, op.Inputs())
	assert.Equal(t, []*Node{op}, v.Outputs())
}
