// SPDX-License-Identifier: MIT

// Package adjacency: functional configuration for matrix→graph construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults + user setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package adjacency

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWeightThreshold is the strict magnitude cutoff for edge
	// emission: a cell w yields an edge only when |w| > threshold.
	// 0.01 matches the discovery-service contract this package serves.
	DefaultWeightThreshold = 0.01

	// DefaultLabelPrefix is the prefix for synthetic node labels generated
	// when no label list is supplied: x0, x1, … xN-1.
	DefaultLabelPrefix = "x"

	// DefaultValidateNaNInf toggles strict finite-value validation of the
	// input matrix. When enabled, any NaN or ±Inf cell fails the build.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "adjacency: WithThreshold: threshold must be finite, non-negative"
	panicPrefixInvalid    = "adjacency: WithLabelPrefix: prefix must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	threshold      float64 // >= 0, finite; DefaultWeightThreshold
	labelPrefix    string  // non-empty; DefaultLabelPrefix
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithThreshold sets the strict magnitude cutoff for edge emission.
// A cell w produces an edge only when |w| > t.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on NaN/±Inf or negative t.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - t = 0 emits an edge for every non-zero cell.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithLabelPrefix sets the prefix used for synthetic labels when the caller
// supplies no label list (prefix0, prefix1, …).
//
// Behavior highlights:
//   - Panics on the empty prefix: synthetic labels must be non-empty IDs.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLabelPrefix(prefix string) Option {
	if prefix == "" {
		panic(panicPrefixInvalid)
	}

	return func(o *Options) { o.labelPrefix = prefix }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Any NaN or ±Inf matrix cell fails BuildGraph with ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite cells then pass through the threshold test: NaN never clears it,
// ±Inf always does, with the label carrying the literal formatted value.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Intended for ingesting external data with known ±Inf placeholders.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided Option setters on top of the documented
// defaults. Last-writer-wins semantics; pure function.
//
// Complexity:
//   - Time O(k), Space O(1) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		threshold:      DefaultWeightThreshold,
		labelPrefix:    DefaultLabelPrefix,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
