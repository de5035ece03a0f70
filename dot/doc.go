// Package dot serializes core graphs to the DOT digraph statement grammar and
// back.
//
// The dot package provides:
//
//   - Marshal: deterministic single-line emission of a core.Graph as
//     `digraph { "A"; "B"; "A" -> "B" [label="0.6"]; }` — node statements in
//     declaration order, edge statements in insertion order, identifiers
//     always quoted.
//   - Normalize: turns the multi-line output of an external rendering engine
//     into the same single-line, tool-consumable statement list (trim, line
//     breaks → `;`, tabs dropped, wrapper located structurally by its braces).
//   - Parse: reads a statement list back into a core.Graph, so a serialized
//     graph can be verified to round-trip.
//
// Normalize deliberately avoids fixed-offset slicing of the rendering
// engine's header and footer: the statement block is located by its opening
// and closing braces, so graphs with names, `strict` modifiers, or different
// engine framing normalize correctly instead of being silently corrupted.
//
// Limitation, shared with the statement grammar itself: identifiers containing
// a literal `;` or line break are not supported — the normalizer treats both
// as statement separators.
//
// All three operations are pure and stateless.
package dot
