// SPDX-License-Identifier: MIT
// Package dot - statement-list parsing back into core graphs.
//
// The parser accepts exactly the grammar this package emits plus the common
// engine variations Normalize preserves:
//
//	[strict] (digraph|graph) [name] { stmt; stmt; … }
//	stmt     = node | edge
//	node     = ID [attrs]
//	edge     = ID -> ID [attrs]
//	attrs    = "[" key "=" value { ("," | " ") key "=" value } "]"
//	ID/value = quoted string (with \" and \\ escapes) or bare token
//
// Only the `label` attribute is interpreted (as the edge weight label);
// every other attribute is parsed and dropped. Subgraphs, ports, rank
// directives and chained edges (`a -> b -> c`) are outside the grammar and
// fail with ErrUnknownStatement.

package dot

import (
	"fmt"
	"strings"

	"github.com/arvelin/causegraph/core"
)

// Parse READ a DOT statement list into a freshly built core.Graph.
// Implementation:
//   - Stage 1: run Normalize so framing, line breaks and tabs are canonical.
//   - Stage 2: parse the header ([strict] digraph|graph [name]).
//   - Stage 3: split the statement body on `;` and dispatch each statement to
//     the node or edge rule; edge endpoints are auto-declared on first use,
//     matching DOT semantics.
//
// Behavior highlights:
//   - Duplicate node declarations are tolerated (idempotent declaration).
//   - Re-declared edges follow core's last-write-wins label policy.
//   - An edge with no label attribute carries the empty label.
//
// Inputs:
//   - text: rendered or already-normalized statement list.
//
// Returns:
//   - *core.Graph with the graph name from the header (when present).
//
// Errors:
//   - ErrMalformedRendered (no statement block, bad header, bad quoting),
//   - ErrUnknownStatement (statement outside the supported grammar),
//   - bubbled core errors wrapped with the offending statement.
//
// Determinism:
//   - Node order is declaration order in the text; edge order is statement
//     order. Round-trips through Marshal therefore preserve both.
//
// Complexity:
//   - Time O(len(text)), Space O(V + E).
func Parse(text string) (*core.Graph, error) {
	normalized, err := Normalize(text)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	// Normalize guarantees exactly one `{ … }` block with a non-empty header.
	open := strings.IndexByte(normalized, '{')
	closing := strings.LastIndexByte(normalized, '}')
	name, err := parseHeader(normalized[:open])
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	var g *core.Graph
	if name != "" {
		g = core.NewGraph(core.WithName(name))
	} else {
		g = core.NewGraph()
	}

	for _, stmt := range strings.Split(normalized[open+1:closing], stmtSep) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err = parseStatement(g, stmt); err != nil {
			return nil, fmt.Errorf("Parse: statement %q: %w", stmt, err)
		}
	}

	return g, nil
}

// parseHeader extracts the optional graph name from `[strict] digraph|graph [name]`.
// Complexity: O(len(header)).
func parseHeader(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) > 0 && fields[0] == "strict" {
		fields = fields[1:]
	}
	if len(fields) == 0 || (fields[0] != kwDigraph && fields[0] != "graph") {
		return "", fmt.Errorf("parseHeader: %q: %w", header, ErrMalformedRendered)
	}
	switch len(fields) {
	case 1:
		return "", nil
	case 2:
		name, rest, err := scanID(fields[1])
		if err != nil || rest != "" {
			return "", fmt.Errorf("parseHeader: graph name %q: %w", fields[1], ErrMalformedRendered)
		}

		return name, nil
	default:
		return "", fmt.Errorf("parseHeader: %q: %w", header, ErrMalformedRendered)
	}
}

// parseStatement dispatches one trimmed statement to the node or edge rule.
func parseStatement(g *core.Graph, stmt string) error {
	id, rest, err := scanID(stmt)
	if err != nil {
		return err
	}
	rest = strings.TrimSpace(rest)

	// Node declaration: bare ID, optionally with an (ignored) attribute list.
	if rest == "" || strings.HasPrefix(rest, "[") {
		if rest != "" {
			if _, err = parseAttrs(rest); err != nil {
				return err
			}
		}

		return declareNode(g, id)
	}

	// Edge declaration: ID -> ID [attrs].
	if !strings.HasPrefix(rest, edgeOp) {
		return fmt.Errorf("expected %q: %w", edgeOp, ErrUnknownStatement)
	}
	rest = strings.TrimSpace(rest[len(edgeOp):])

	target, rest, err := scanID(rest)
	if err != nil {
		return err
	}
	rest = strings.TrimSpace(rest)

	label := ""
	if rest != "" {
		if !strings.HasPrefix(rest, "[") {
			return fmt.Errorf("trailing %q: %w", rest, ErrUnknownStatement)
		}
		if label, err = parseAttrs(rest); err != nil {
			return err
		}
	}

	if err = declareNode(g, id); err != nil {
		return err
	}
	if err = declareNode(g, target); err != nil {
		return err
	}

	return g.AddEdge(id, target, label)
}

// declareNode adds id unless it is already present (declaration idempotence).
func declareNode(g *core.Graph, id string) error {
	if g.HasNode(id) {
		return nil
	}

	return g.AddNode(id)
}

// parseAttrs parses a full `[ key=value, … ]` list and returns the value of
// the `label` key ("" when absent). All other attributes are validated and
// dropped.
// Complexity: O(len(attrs)).
func parseAttrs(attrs string) (string, error) {
	if !strings.HasPrefix(attrs, "[") || !strings.HasSuffix(attrs, "]") {
		return "", fmt.Errorf("attribute list %q: %w", attrs, ErrUnknownStatement)
	}
	s := strings.TrimSpace(attrs[1 : len(attrs)-1])

	label := ""
	for s != "" {
		key, rest, err := scanID(s)
		if err != nil {
			return "", err
		}
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "=") {
			return "", fmt.Errorf("attribute %q misses '=': %w", key, ErrUnknownStatement)
		}

		var value string
		value, rest, err = scanID(strings.TrimSpace(rest[1:]))
		if err != nil {
			return "", err
		}
		if key == "label" {
			label = value
		}

		s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ","))
	}

	return label, nil
}

// scanID consumes one identifier from the front of s: either a quoted string
// with \" and \\ escapes, or a bare token ending at whitespace, '[', ']',
// ',', '=' or the edge operator. Returns the decoded identifier and the
// unconsumed remainder.
// Complexity: O(len(id)).
func scanID(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("scanID: empty input: %w", ErrMalformedRendered)
	}

	// Quoted form.
	if s[0] == '"' {
		var b strings.Builder
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				if i+1 >= len(s) {
					return "", "", fmt.Errorf("scanID: dangling escape: %w", ErrMalformedRendered)
				}
				i++
				b.WriteByte(s[i])
			case '"':
				return b.String(), s[i+1:], nil
			default:
				b.WriteByte(s[i])
			}
		}

		return "", "", fmt.Errorf("scanID: unterminated quote: %w", ErrMalformedRendered)
	}

	// Bare form.
	end := len(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '[' || c == ']' || c == ',' || c == '=' ||
			(c == '-' && i+1 < len(s) && s[i+1] == '>') {
			end = i

			break
		}
	}
	if end == 0 {
		return "", "", fmt.Errorf("scanID: %q: %w", s, ErrMalformedRendered)
	}

	return s[:end], s[end:], nil
}
