// SPDX-License-Identifier: MIT
// Package dot: sentinel error set.
// Callers MUST branch via errors.Is; context is attached with %w at the
// detection site. No code path panics on user input.

package dot

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Marshal.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrMalformedRendered indicates that rendered graph text lacks a
	// brace-delimited statement block, so normalization would corrupt it.
	ErrMalformedRendered = errors.New("dot: malformed rendered graph text")

	// ErrUnknownStatement indicates a statement that is neither a node
	// declaration nor an edge declaration in the supported grammar.
	ErrUnknownStatement = errors.New("dot: unknown statement")
)
