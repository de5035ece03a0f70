// Package adjacency converts square numeric weight matrices into core graphs.
//
// The adjacency package provides:
//
//   - BuildGraph, the single construction entry point: an N×N float64 matrix
//     plus an optional ordered label list become a directed core.Graph with
//     one weight-labeled edge per cell whose magnitude clears the threshold.
//   - Functional options controlling the threshold, synthetic label prefix,
//     and the NaN/Inf ingestion policy.
//
// Matrix convention (fixed, matching discovery-service output): the cell at
// (row=to, col=from) holds the weight of the edge from→to. A cell survives the
// cut when |w| > threshold — strictly greater, so a weight of exactly 0.01
// under the default threshold produces no edge.
//
// Every call is pure and stateless: the input matrix is only read, the result
// is freshly allocated, and concurrent calls need no synchronization.
package adjacency
