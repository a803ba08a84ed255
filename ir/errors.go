package ir

import "github.com/pkg/errors"

// Sentinel errors for the failure conditions of the graph core. Every error
// returned by this package wraps one of them (with context and a stack trace,
// see github.com/pkg/errors), so callers can match with errors.Is.
//
// The core performs no retries, no recovery and no logging: every failure is
// surfaced synchronously to the caller, and escalation policy (abort the
// compilation vs. skip the pass) is the pass-manager's decision.
var (
	// ErrInvalidArgument indicates a malformed construction request, e.g. an
	// unrecognized node type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidGraphStructure indicates an edge, removal or existing
	// structure that violates the bipartite or ownership invariants.
	ErrInvalidGraphStructure = errors.New("invalid graph structure")

	// ErrNotFound indicates a reference to a node not owned by the graph, or
	// the removal of an edge that does not exist.
	ErrNotFound = errors.New("not found")
)
