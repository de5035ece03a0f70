// Package causegraph turns numeric adjacency matrices — typically the output
// of an external causal-discovery service — into directed, weight-labeled
// graphs and into normalized DOT text that downstream identification tooling
// can consume directly.
//
// 🚀 What is causegraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: immutable-after-build directed graphs with labeled edges
//		• Matrix ingestion: thresholded adjacency-matrix → graph construction
//		• DOT serialization: single-line digraph emission, normalization, parsing
//		• A boundary capability for interchangeable discovery services
//
// ✨ Why choose causegraph?
//
//   - Deterministic by construction – stable node order, row-major edge order
//   - Rock-solid error policy – sentinel errors only, checked via errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Stateless – every call is independent; safe for concurrent use
//
// Everything is organized under four subpackages:
//
//	core/      — Graph, Node and Edge value types plus query methods
//	adjacency/ — BuildGraph: weighted matrix + labels → core.Graph
//	dot/       — Marshal / Normalize / Parse for the DOT statement grammar
//	discovery/ — Service capability and the Predict→Build→Marshal pipeline
//
// Quick example, matrix [[0, 0.5], [0.6, 0]] with labels A and B: the cell
// (row=to, col=from) convention means m[1][0]=0.6 declares A→B and
// m[0][1]=0.5 declares B→A. Serialized (edges in row-major discovery order):
//
//	digraph { "A"; "B"; "B" -> "A" [label="0.5"]; "A" -> "B" [label="0.6"]; }
package causegraph
