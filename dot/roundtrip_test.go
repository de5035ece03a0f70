// SPDX-License-Identifier: MIT

// End-to-end round-trip coverage: matrices built by the adjacency package,
// serialized and normalized here, must parse back to the same node set and
// edge set.

package dot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvelin/causegraph/adjacency"
	"github.com/arvelin/causegraph/dot"
)

func TestRoundTrip_MatrixToDOTAndBack(t *testing.T) {
	cases := []struct {
		name   string
		matrix [][]float64
		labels []string
	}{
		{
			name:   "two-node cycle",
			matrix: [][]float64{{0, 0.5}, {0.6, 0}},
			labels: []string{"A", "B"},
		},
		{
			name:   "zero matrix",
			matrix: [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			labels: []string{"x0", "x1", "x2"},
		},
		{
			name:   "empty matrix",
			matrix: nil,
			labels: nil,
		},
		{
			name: "synthetic labels, mixed signs",
			matrix: [][]float64{
				{0, -0.8, 0},
				{1.25, 0, 0.009},
				{0, 3, 0},
			},
			labels: nil,
		},
		{
			name:   "labels needing quoting",
			matrix: [][]float64{{0, 2}, {0, 0}},
			labels: []string{"per capita income", `quoted "var"`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := adjacency.BuildGraph(tc.matrix, tc.labels)
			require.NoError(t, err)

			text, err := dot.Marshal(g)
			require.NoError(t, err)

			normalized, err := dot.Normalize(text)
			require.NoError(t, err)
			require.Equal(t, text, normalized) // Marshal output is already normalized

			back, err := dot.Parse(normalized)
			require.NoError(t, err)

			require.Equal(t, g.NodeIDs(), back.NodeIDs())
			require.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestRoundTrip_SurvivesEngineRendering(t *testing.T) {
	// Simulate an external engine re-rendering the graph with tabs, one
	// statement per line, and a graph name.
	g, err := adjacency.BuildGraph([][]float64{{0, 0.5}, {0.6, 0}}, []string{"A", "B"})
	require.NoError(t, err)

	rendered := "digraph G {\n" +
		"\t\"A\";\n" +
		"\t\"B\";\n" +
		"\t\"B\" -> \"A\" [label=\"0.5\"];\n" +
		"\t\"A\" -> \"B\" [label=\"0.6\"];\n" +
		"}\n"

	back, err := dot.Parse(rendered)
	require.NoError(t, err)
	require.Equal(t, g.NodeIDs(), back.NodeIDs())
	require.Equal(t, g.Edges(), back.Edges())
}
