// SPDX-License-Identifier: MIT
// Package dot - normalization of externally rendered graph text.

package dot

import (
	"fmt"
	"strings"
)

// lineBreakReplacer maps every line-break flavor to the statement separator
// and drops tabs, in one pass. CRLF is handled before the lone CR/LF cases.
var lineBreakReplacer = strings.NewReplacer(
	"\r\n", stmtSep,
	"\n", stmtSep,
	"\r", stmtSep,
	"\t", "",
)

// Normalize TRANSFORM rendered graph text into a single-line statement list.
// Implementation:
//   - Stage 1: trim leading/trailing whitespace.
//   - Stage 2: locate the statement block structurally: the first `{` and the
//     last `}`. Fixed-offset slicing of the engine's wrapper is deliberately
//     not used — it breaks as soon as the graph name or engine framing
//     changes.
//   - Stage 3: normalize the header (collapse whitespace runs; default to
//     `digraph` when the engine emitted a bare block).
//   - Stage 4: inside the block, replace every line break with `;`, drop all
//     tabs, then re-join the statements with single separators and spacing.
//
// Behavior highlights:
//   - Idempotent: normalizing already-normalized text (including Marshal
//     output) returns it unchanged.
//   - Empty statement blocks normalize to `digraph { }`.
//   - `strict digraph G {` style headers survive with their name intact.
//
// Inputs:
//   - rendered: multi-line text produced by a graph-rendering engine.
//
// Returns:
//   - string: `header { stmt; stmt; … }` with no line breaks or tabs.
//
// Errors:
//   - ErrMalformedRendered when no `{`…`}` block exists in the text.
//
// Complexity:
//   - Time O(len(rendered)), Space O(len(rendered)).
func Normalize(rendered string) (string, error) {
	s := strings.TrimSpace(rendered)

	open := strings.IndexByte(s, '{')
	if open < 0 {
		return "", fmt.Errorf("Normalize: no opening brace: %w", ErrMalformedRendered)
	}
	closing := strings.LastIndexByte(s, '}')
	if closing < open {
		return "", fmt.Errorf("Normalize: no closing brace after opening: %w", ErrMalformedRendered)
	}

	header := strings.Join(strings.Fields(s[:open]), " ")
	if header == "" {
		header = kwDigraph
	}

	body := lineBreakReplacer.Replace(s[open+1 : closing])

	// Re-join statements with canonical `; ` separation, dropping the empty
	// fragments produced by `;\n` statement endings.
	var b strings.Builder
	b.Grow(len(body) + len(header) + 8)
	b.WriteString(header)
	b.WriteString(" " + openBrace + " ")
	for _, stmt := range strings.Split(body, stmtSep) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		b.WriteString(stmt)
		b.WriteString(stmtSep + " ")
	}
	b.WriteString(closeBrace)

	return b.String(), nil
}
