// SPDX-License-Identifier: MIT

// Package core: domain types, sentinel errors, and the NewGraph constructor.
// This file declares Node, Edge, Graph, GraphOption and the package sentinels.
// Query and mutation methods live in methods.go per the package conventions.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node was declared with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node ID was declared twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Node represents a named graph node.
//
// ID uniquely identifies this Node within its Graph; Index is the zero-based
// declaration position, which doubles as the row/column index of the source
// adjacency matrix when the graph was built by the adjacency package.
type Node struct {
	// ID is the unique identifier (label) for this Node.
	ID string

	// Index is the declaration position, stable for the Graph's lifetime.
	Index int
}

// Edge represents a directed connection between two declared nodes.
//
// Label carries the decimal string form of the edge weight exactly as it will
// appear in the serialized attribute list (label="…"). The Graph holds at most
// one edge per (From, To) pair; re-adding replaces the label (last write wins).
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Label is the decimal weight label attached to the edge.
	Label string
}

// edgeKey is the ordered pair (from, to) used to enforce the at-most-one-edge
// invariant. Complexity: O(1) to build; used in O(1) lookups.
type edgeKey struct {
	from string
	to   string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithName sets the graph name emitted after the "digraph" keyword when the
// graph is serialized. The default is the anonymous form (no name).
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the in-memory directed graph value produced by matrix ingestion
// and consumed by serialization.
//
// Invariants (enforced by AddNode/AddEdge, relied upon everywhere else):
//   - every edge endpoint is a declared node;
//   - at most one edge exists per (From, To) pair;
//   - nodes and edges preserve insertion order.
type Graph struct {
	name string // optional graph name for serialization

	nodes   []string        // node IDs in declaration order
	nodeIdx map[string]int  // node ID → declaration index
	edges   []Edge          // edges in insertion order
	edgeIdx map[edgeKey]int // (from,to) → position in edges
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is anonymous.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodeIdx: make(map[string]int),
		edgeIdx: make(map[edgeKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
