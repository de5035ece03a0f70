// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvelin/causegraph/adjacency"
	"github.com/arvelin/causegraph/core"
)

func TestBuildGraph_ToFromConvention(t *testing.T) {
	// m[1][0]=0.6 ⇒ A→B; m[0][1]=0.5 ⇒ B→A.
	m := [][]float64{
		{0, 0.5},
		{0.6, 0},
	}
	g, err := adjacency.BuildGraph(m, []string{"A", "B"})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, g.NodeIDs())
	require.Equal(t, []core.Edge{
		{From: "B", To: "A", Label: "0.5"},
		{From: "A", To: "B", Label: "0.6"},
	}, g.Edges())
}

func TestBuildGraph_ZeroMatrix(t *testing.T) {
	m := [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g, err := adjacency.BuildGraph(m, []string{"x0", "x1", "x2"})
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestBuildGraph_EmptyMatrix(t *testing.T) {
	for _, m := range [][][]float64{nil, {}} {
		g, err := adjacency.BuildGraph(m, nil)
		require.NoError(t, err)
		require.Equal(t, 0, g.NodeCount())
		require.Equal(t, 0, g.EdgeCount())
	}
}

func TestBuildGraph_ThresholdIsStrict(t *testing.T) {
	// Exactly ±0.01 is excluded; anything strictly above is included.
	m := [][]float64{
		{0, 0.01, -0.01},
		{0.0100001, 0, 0},
		{-0.02, 0, 0},
	}
	g, err := adjacency.BuildGraph(m, nil)
	require.NoError(t, err)

	require.Equal(t, []core.Edge{
		{From: "x0", To: "x1", Label: "0.0100001"},
		{From: "x0", To: "x2", Label: "-0.02"},
	}, g.Edges())
}

func TestBuildGraph_NegativeWeightsCountByMagnitude(t *testing.T) {
	m := [][]float64{
		{0, -0.5},
		{0, 0},
	}
	g, err := adjacency.BuildGraph(m, []string{"A", "B"})
	require.NoError(t, err)

	label, err := g.EdgeLabel("B", "A")
	require.NoError(t, err)
	require.Equal(t, "-0.5", label)
}

func TestBuildGraph_EdgeCountMatchesThresholdMask(t *testing.T) {
	m := [][]float64{
		{0.2, 0, 0.009},
		{0, -1.5, 0.011},
		{3, 0, 0},
	}
	g, err := adjacency.BuildGraph(m, nil)
	require.NoError(t, err)

	want := 0
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]) > adjacency.DefaultWeightThreshold {
				want++
			}
		}
	}
	require.Equal(t, want, g.EdgeCount())
}

func TestBuildGraph_SyntheticLabels(t *testing.T) {
	m := [][]float64{
		{0, 1},
		{0, 0},
	}

	g, err := adjacency.BuildGraph(m, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"x0", "x1"}, g.NodeIDs())

	g, err = adjacency.BuildGraph(m, nil, adjacency.WithLabelPrefix("v"))
	require.NoError(t, err)
	require.Equal(t, []string{"v0", "v1"}, g.NodeIDs())
	require.True(t, g.HasEdge("v1", "v0")) // m[0][1] ⇒ col 1 → row 0
}

func TestBuildGraph_CustomThreshold(t *testing.T) {
	m := [][]float64{
		{0, 0.4},
		{0.6, 0},
	}
	g, err := adjacency.BuildGraph(m, []string{"A", "B"}, adjacency.WithThreshold(0.5))
	require.NoError(t, err)

	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
}

func TestBuildGraph_ShapeErrors(t *testing.T) {
	_, err := adjacency.BuildGraph([][]float64{{0, 1}}, nil)
	require.ErrorIs(t, err, adjacency.ErrNonSquare)

	_, err = adjacency.BuildGraph([][]float64{{0, 1}, {1}}, nil)
	require.ErrorIs(t, err, adjacency.ErrNonSquare)
}

func TestBuildGraph_LabelErrors(t *testing.T) {
	m := [][]float64{
		{0, 0},
		{0, 0},
	}

	_, err := adjacency.BuildGraph(m, []string{"A"})
	require.ErrorIs(t, err, adjacency.ErrDimensionMismatch)

	_, err = adjacency.BuildGraph(m, []string{"A", ""})
	require.ErrorIs(t, err, adjacency.ErrEmptyLabel)

	_, err = adjacency.BuildGraph(m, []string{"A", "A"})
	require.ErrorIs(t, err, adjacency.ErrDuplicateLabel)
}

func TestBuildGraph_NumericPolicy(t *testing.T) {
	bad := [][]float64{
		{0, math.NaN()},
		{0, 0},
	}
	_, err := adjacency.BuildGraph(bad, nil)
	require.ErrorIs(t, err, adjacency.ErrNaNInf)

	inf := [][]float64{
		{0, math.Inf(1)},
		{0, 0},
	}
	_, err = adjacency.BuildGraph(inf, nil)
	require.ErrorIs(t, err, adjacency.ErrNaNInf)

	// Relaxed policy: +Inf clears any threshold, NaN never does.
	g, err := adjacency.BuildGraph(bad, nil, adjacency.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.Equal(t, 0, g.EdgeCount())

	g, err = adjacency.BuildGraph(inf, nil, adjacency.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	label, err := g.EdgeLabel("x1", "x0")
	require.NoError(t, err)
	require.Equal(t, "+Inf", label)
}

func TestBuildGraph_ErrorPriority(t *testing.T) {
	// Shape beats labels beats numeric policy.
	_, err := adjacency.BuildGraph([][]float64{{math.NaN(), 0}}, []string{"A"})
	require.ErrorIs(t, err, adjacency.ErrNonSquare)

	bad := [][]float64{
		{0, math.NaN()},
		{0, 0},
	}
	_, err = adjacency.BuildGraph(bad, []string{"A", "A"})
	require.ErrorIs(t, err, adjacency.ErrDuplicateLabel)
}

func TestBuildGraph_DoesNotMutateInput(t *testing.T) {
	m := [][]float64{
		{0, 0.5},
		{0.6, 0},
	}
	want := [][]float64{
		{0, 0.5},
		{0.6, 0},
	}
	_, err := adjacency.BuildGraph(m, nil)
	require.NoError(t, err)
	require.Equal(t, want, m)
}

func TestFormatWeight_RoundTrips(t *testing.T) {
	for _, w := range []float64{0.5, 0.6, -0.02, 1e-9, 12345.6789, 1e21} {
		s := adjacency.FormatWeight(w)
		back, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		require.Equal(t, w, back, "weight %v ⇒ %q", w, s)
	}
}
