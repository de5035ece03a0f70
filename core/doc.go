// Package core defines the central Graph, Node, and Edge types used across
// causegraph, plus deterministic primitives for building and querying directed
// weight-labeled graphs.
//
// A core.Graph is built once (AddNode/AddEdge) and then treated as an
// immutable value by every other package. Construction is single-threaded by
// contract; once built, a Graph may be read concurrently from any number of
// goroutines without synchronization, since reads never mutate state.
//
// Determinism:
//
//	Nodes() returns nodes in declaration order; Edges() returns edges in
//	insertion order. No map iteration order ever leaks into results.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - node ID already declared.
//	ErrNodeNotFound  - edge endpoint references an undeclared node.
//	ErrEdgeNotFound  - requested edge does not exist.
package core
