// SPDX-License-Identifier: MIT
// Package dot - deterministic single-line digraph emission.

package dot

import (
	"strings"

	"github.com/arvelin/causegraph/core"
)

// Grammar literals shared by marshalling and normalization.
const (
	kwDigraph     = "digraph"
	stmtSep       = ";"
	openBrace     = "{"
	closeBrace    = "}"
	edgeOp        = "->"
	labelAttrOpen = `[label="`
	labelAttrEnd  = `"]`
)

// Marshal RENDER g as a single-line DOT digraph statement list.
// Implementation:
//   - Stage 1: validate the receiver (ErrNilGraph).
//   - Stage 2: emit the header: `digraph` plus the quoted name when present.
//   - Stage 3: emit one quoted node statement per node, declaration order.
//   - Stage 4: emit one edge statement per edge, insertion order, with the
//     weight label attribute.
//
// Behavior highlights:
//   - Identifiers are always quoted, so labels with spaces or DOT keywords
//     serialize safely; quotes and backslashes inside IDs are escaped.
//   - The empty graph serializes with an empty statement body: `digraph { }`.
//   - Output never contains line breaks or tabs; it is already in the
//     normalized form that Normalize produces and Parse consumes.
//
// Returns:
//   - string: the statement list, e.g. `digraph { "A"; "A" -> "B" [label="0.6"]; }`.
//
// Errors:
//   - ErrNilGraph.
//
// Determinism:
//   - Output depends only on node/edge order inside g, which core keeps stable.
//
// Complexity:
//   - Time O(V + E), Space O(V + E) for the builder.
func Marshal(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	var b strings.Builder
	b.WriteString(kwDigraph)
	if name := g.Name(); name != "" {
		b.WriteByte(' ')
		b.WriteString(quote(name))
	}
	b.WriteString(" " + openBrace + " ")

	for _, id := range g.NodeIDs() {
		b.WriteString(quote(id))
		b.WriteString(stmtSep + " ")
	}
	for _, e := range g.Edges() {
		b.WriteString(quote(e.From))
		b.WriteString(" " + edgeOp + " ")
		b.WriteString(quote(e.To))
		b.WriteString(" " + labelAttrOpen)
		b.WriteString(escape(e.Label))
		b.WriteString(labelAttrEnd)
		b.WriteString(stmtSep + " ")
	}
	b.WriteString(closeBrace)

	return b.String(), nil
}

// quote wraps id in double quotes, escaping embedded quotes and backslashes.
// Complexity: O(len(id)).
func quote(id string) string {
	return `"` + escape(id) + `"`
}

// escape backslash-escapes the two characters meaningful inside a quoted
// DOT identifier: `"` and `\`.
// Complexity: O(len(s)).
func escape(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
