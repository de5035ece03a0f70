// SPDX-License-Identifier: MIT
// Package: adjacency
//
// Purpose:
//   - Provide a single, canonical source of truth for input validation.
//   - Keep BuildGraph minimal by delegating shape/label/numeric checks here.
//   - Return plain sentinel errors wrapped once with the validator tag so
//     call sites stay uniform and errors.Is keeps matching.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and allocate only for label dedup.
//   - Shape and numeric checks run a fixed row-major scan.

package adjacency

import (
	"fmt"
	"math"
)

// validateSquare ensures every row of m has length len(m) and returns the
// dimension N. The empty matrix (N = 0) is valid and yields the empty graph.
//
// Returns ErrNonSquare with the offending row index attached.
// Complexity: O(N).
func validateSquare(m [][]float64) (int, error) {
	n := len(m)
	for i := range m {
		if len(m[i]) != n {
			return 0, fmt.Errorf("validateSquare: row %d has %d cols, want %d: %w",
				i, len(m[i]), n, ErrNonSquare)
		}
	}

	return n, nil
}

// validateLabels ensures the provided label list has exactly n entries, none
// empty, all unique. A nil list is valid (synthetic labels will be generated).
//
// Returns ErrDimensionMismatch, ErrEmptyLabel, or ErrDuplicateLabel.
// Complexity: O(N) time, O(N) space for the dedup set.
func validateLabels(labels []string, n int) error {
	if labels == nil {
		return nil
	}
	if len(labels) != n {
		return fmt.Errorf("validateLabels: %d labels for dimension %d: %w",
			len(labels), n, ErrDimensionMismatch)
	}

	seen := make(map[string]struct{}, n)
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("validateLabels: label %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("validateLabels: label %d %q: %w", i, l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf cells anywhere in m.
//
// Returns ErrNaNInf with the offending coordinates attached.
// Complexity: O(N²).
func validateFinite(m [][]float64) error {
	for i := range m {
		for j, w := range m[i] {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("validateFinite: cell (%d,%d)=%v: %w", i, j, w, ErrNaNInf)
			}
		}
	}

	return nil
}
