// Package ir implements the dataflow-graph intermediate representation used
// to model a computation before it is compiled and executed.
//
// A computation is a bipartite directed graph of two node kinds: Operation
// nodes (computational steps) and Variable nodes (the values flowing between
// them). A Graph exclusively owns every Node it contains; transformation
// passes rewrite the graph in place through the Node edge primitives and the
// Graph factory/removal methods, and the consistency check verifies the
// structural invariants after a rewrite.
//
// Among its features:
//
//   - Factory-only node construction: every live Node has exactly one owning
//     Graph and a process-unique, monotonically increasing id.
//   - Control dependencies: ordering constraints between two Operations that
//     share no data, encoded as synthetic Variables named with the reserved
//     ControlDepVarName marker.
//   - Deterministic topological sort for passes whose output must not depend
//     on allocation order.
//
// The package stores operator and variable descriptors as opaque payloads:
// it never interprets operator semantics, infers shapes, or executes
// anything. Serialization lives in the sibling package program.
//
// A Graph is not internally synchronized: it is meant for single-writer
// mutation by one active pass at a time.
package ir
