// SPDX-License-Identifier: MIT
// Package adjacency - matrix→graph construction.
//
// Deliverables:
//  1. Strict threshold: |w| > t emits an edge; |w| == t does not.
//  2. (row=to, col=from) convention: cell m[i][j] declares node[j] → node[i].
//  3. Deterministic output: nodes in index order, edges in row-major scan order.
//  4. Weight labels are the shortest round-trippable decimal form of the cell.
//  5. The input matrix is read-only; the result shares no state with it.

package adjacency

import (
	"fmt"
	"strconv"

	"github.com/arvelin/causegraph/core"
)

// BuildGraph CONSTRUCT a directed core.Graph from a square weight matrix.
// Implementation:
//   - Stage 1: validate shape (ErrNonSquare) and resolve options.
//   - Stage 2: validate or synthesize node labels.
//   - Stage 3: enforce the numeric policy (ErrNaNInf) when enabled.
//   - Stage 4: declare one node per label in index order.
//   - Stage 5: row-major scan; emit node[col] → node[row] for |w| > threshold.
//
// Behavior highlights:
//   - Threshold is strict: a cell of exactly ±threshold emits no edge.
//   - Labels are used verbatim when provided; nil labels ⇒ prefix0..prefixN-1.
//   - N = 0 (nil or empty matrix) is legal and yields the empty graph.
//
// Inputs:
//   - matrix: N×N weights, cell (row=to, col=from); never mutated.
//   - labels: nil, or exactly N unique non-empty node names in index order.
//   - opts: threshold / label prefix / numeric policy overrides.
//
// Returns:
//   - *core.Graph: freshly built graph; never shares state with inputs.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrEmptyLabel, ErrDuplicateLabel,
//     ErrNaNInf; bubbled core errors are impossible after validation but are
//     still surfaced wrapped if they ever occur.
//
// Determinism:
//   - Fixed i→j traversal; node order equals label index order; no map
//     iteration order reaches the result.
//
// Complexity:
//   - Time O(N²), Space O(N + E).
func BuildGraph(matrix [][]float64, labels []string, opts ...Option) (*core.Graph, error) {
	// Validate shape before touching anything else.
	n, err := validateSquare(matrix)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	// Resolve effective options on documented defaults.
	o := gatherOptions(opts...)

	// Validate caller labels or synthesize the default sequence.
	if err = validateLabels(labels, n); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if labels == nil {
		labels = syntheticLabels(n, o.labelPrefix)
	}

	// Numeric policy: reject NaN/±Inf cells unless explicitly relaxed.
	if o.validateNaNInf {
		if err = validateFinite(matrix); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Declare nodes in index order.
	g := core.NewGraph()
	for _, label := range labels {
		if err = g.AddNode(label); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Row-major scan with a single emission site.
	// Cell (row=to, col=from): matrix[to][from] ⇒ edge labels[from] → labels[to].
	var to, from int
	var w float64
	for to = 0; to < n; to++ {
		for from = 0; from < n; from++ {
			w = matrix[to][from]
			if !clearsThreshold(w, o.threshold) {
				continue
			}
			if err = g.AddEdge(labels[from], labels[to], FormatWeight(w)); err != nil {
				return nil, fmt.Errorf("BuildGraph: AddEdge %q->%q: %w", labels[from], labels[to], err)
			}
		}
	}

	return g, nil
}

// clearsThreshold reports whether |w| strictly exceeds t.
// NaN never clears (all comparisons false); ±Inf always does.
// Complexity: O(1).
func clearsThreshold(w, t float64) bool {
	if w < 0 {
		w = -w
	}

	return w > t
}

// FormatWeight renders a cell value as its shortest decimal string that
// parses back to the identical float64 (strconv 'g', precision -1). This is
// the exact text carried by the edge label attribute.
// Complexity: O(1).
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// syntheticLabels generates prefix0..prefixN-1 for unlabeled matrices.
// Complexity: O(N).
func syntheticLabels(n int, prefix string) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = prefix + strconv.Itoa(i)
	}

	return out
}
