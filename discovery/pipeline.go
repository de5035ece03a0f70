// SPDX-License-Identifier: MIT
// Package discovery - service capability and Predict→Build→Marshal pipeline.

package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/arvelin/causegraph/adjacency"
	"github.com/arvelin/causegraph/core"
	"github.com/arvelin/causegraph/dot"
)

// ErrNilService indicates that NewPipeline was given a nil Service.
var ErrNilService = errors.New("discovery: service is nil")

// Service is the capability shared by interchangeable discovery variants:
// fit a dataset (rows = samples, cols = variables) and return a square
// adjacency-like weight matrix in the (row=to, col=from) convention, plus the
// variable labels in matrix index order. A nil label slice is legal and
// yields synthetic x0..xN-1 names downstream.
//
// Implementations typically cross a process or network boundary, so Predict
// takes a context and must honor its cancellation.
type Service interface {
	Predict(ctx context.Context, data [][]float64) (weights [][]float64, labels []string, err error)
}

// Result carries the two artifacts every discovery run produces: the built
// graph value and its serialized statement list.
type Result struct {
	// Graph is the thresholded, weight-labeled causal graph.
	Graph *core.Graph

	// Text is the normalized DOT form of Graph, ready for downstream
	// identification tooling.
	Text string
}

// Pipeline composes a discovery Service with graph construction and
// serialization. The zero value is not usable; construct via NewPipeline.
// A Pipeline is stateless between runs and safe for concurrent use as long
// as the wrapped Service is.
type Pipeline struct {
	svc  Service
	opts []adjacency.Option // construction policy forwarded to BuildGraph
}

// NewPipeline wraps svc with the given construction options (threshold,
// label prefix, numeric policy). Returns ErrNilService for a nil svc.
//
// Complexity: O(1).
func NewPipeline(svc Service, opts ...adjacency.Option) (*Pipeline, error) {
	if svc == nil {
		return nil, ErrNilService
	}

	return &Pipeline{svc: svc, opts: opts}, nil
}

// Run EXECUTE one discovery pass over data.
// Implementation:
//   - Stage 1: delegate to the wrapped Service (the only blocking step).
//   - Stage 2: build the graph from the predicted weights and labels.
//   - Stage 3: marshal the graph to its statement list.
//
// Behavior highlights:
//   - Service output is validated by BuildGraph exactly like caller-supplied
//     matrices: a misbehaving service surfaces the same sentinels
//     (adjacency.ErrNonSquare, adjacency.ErrDimensionMismatch, …).
//
// Errors:
//   - the Service's own error, wrapped; adjacency and dot sentinels bubbled.
//
// Complexity:
//   - Time: Predict plus O(N²); Space O(N + E).
func (p *Pipeline) Run(ctx context.Context, data [][]float64) (Result, error) {
	weights, labels, err := p.svc.Predict(ctx, data)
	if err != nil {
		return Result{}, fmt.Errorf("discovery: Predict: %w", err)
	}

	g, err := adjacency.BuildGraph(weights, labels, p.opts...)
	if err != nil {
		return Result{}, fmt.Errorf("discovery: %w", err)
	}

	text, err := dot.Marshal(g)
	if err != nil {
		return Result{}, fmt.Errorf("discovery: %w", err)
	}

	return Result{Graph: g, Text: text}, nil
}
