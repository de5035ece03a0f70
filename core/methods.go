// SPDX-License-Identifier: MIT

// Package core: Graph mutation and query methods.
//
// Mutators (AddNode, AddEdge) are intended for the single-threaded build
// phase; all query methods are read-only and return defensive copies so a
// built Graph can be shared freely.
package core

import "fmt"

// AddNode declares a node with the given ID at the next declaration index.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode when the ID was
// already declared.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return fmt.Errorf("AddNode: %w", ErrEmptyNodeID)
	}
	if _, ok := g.nodeIdx[id]; ok {
		return fmt.Errorf("AddNode: %q: %w", id, ErrDuplicateNode)
	}
	g.nodeIdx[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)

	return nil
}

// AddEdge inserts the directed edge from→to carrying the given weight label.
// Both endpoints must already be declared (ErrNodeNotFound otherwise). When an
// edge for the same (from, to) pair exists, its label is replaced in place —
// last write wins — and the original insertion position is kept.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to, label string) error {
	if _, ok := g.nodeIdx[from]; !ok {
		return fmt.Errorf("AddEdge: source %q: %w", from, ErrNodeNotFound)
	}
	if _, ok := g.nodeIdx[to]; !ok {
		return fmt.Errorf("AddEdge: target %q: %w", to, ErrNodeNotFound)
	}

	key := edgeKey{from: from, to: to}
	if pos, ok := g.edgeIdx[key]; ok {
		g.edges[pos].Label = label

		return nil
	}
	g.edgeIdx[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Label: label})

	return nil
}

// Name returns the graph name set via WithName, or "" for anonymous graphs.
// Complexity: O(1).
func (g *Graph) Name() string { return g.name }

// NodeCount returns the number of declared nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id was declared.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIdx[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeIdx[edgeKey{from: from, to: to}]

	return ok
}

// NodeIDs returns the declared node IDs in declaration order.
// The returned slice is a copy; mutating it does not affect the Graph.
//
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Nodes returns the declared nodes (ID plus declaration index) in order.
// The returned slice is a copy.
//
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, id := range g.nodes {
		out[i] = Node{ID: id, Index: i}
	}

	return out
}

// Edges returns all edges in insertion order. The returned slice is a copy.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeLabel returns the weight label of the directed edge from→to, or
// ErrEdgeNotFound when no such edge exists.
//
// Complexity: O(1).
func (g *Graph) EdgeLabel(from, to string) (string, error) {
	pos, ok := g.edgeIdx[edgeKey{from: from, to: to}]
	if !ok {
		return "", fmt.Errorf("EdgeLabel: %q->%q: %w", from, to, ErrEdgeNotFound)
	}

	return g.edges[pos].Label, nil
}

// Clone returns an independent deep copy of the Graph. The copy shares no
// internal state with the receiver.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		name:    g.name,
		nodes:   make([]string, len(g.nodes)),
		nodeIdx: make(map[string]int, len(g.nodeIdx)),
		edges:   make([]Edge, len(g.edges)),
		edgeIdx: make(map[edgeKey]int, len(g.edgeIdx)),
	}
	copy(cp.nodes, g.nodes)
	copy(cp.edges, g.edges)
	for id, i := range g.nodeIdx {
		cp.nodeIdx[id] = i
	}
	for k, i := range g.edgeIdx {
		cp.edgeIdx[k] = i
	}

	return cp
}
