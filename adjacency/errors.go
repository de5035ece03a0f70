// SPDX-License-Identifier: MIT
// Package adjacency: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// adjacency package. BuildGraph MUST return these sentinels and tests MUST
// check them via errors.Is. No code path panics on user-triggered error
// conditions; panics are reserved for option-constructor programmer errors.

package adjacency

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "adjacency: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels at definition site; attach context
// with fmt.Errorf("ctx: %w", ErrX) at the call site — callers still match via
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> label arity -> label content -> numeric policy.

var (
	// ErrNonSquare signals that the input matrix is not square: some row's
	// length differs from the number of rows.
	ErrNonSquare = errors.New("adjacency: matrix is not square")

	// ErrDimensionMismatch indicates that the provided label list's length
	// differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("adjacency: labels length differs from matrix dimension")

	// ErrEmptyLabel indicates that a provided label is the empty string.
	ErrEmptyLabel = errors.New("adjacency: empty node label")

	// ErrDuplicateLabel indicates that two provided labels are identical.
	// Duplicate labels would collapse distinct matrix indices into one node.
	ErrDuplicateLabel = errors.New("adjacency: duplicate node label")

	// ErrNaNInf signals a NaN or ±Inf cell where finite values are required
	// by the numeric policy (default; relax via WithNoValidateNaNInf).
	ErrNaNInf = errors.New("adjacency: NaN or Inf encountered")
)
