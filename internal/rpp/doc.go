// Package rpp implements the document model for REAPER project files: a
// line-oriented reader that builds a tree of tagged nodes, and a writer that
// re-emits the exact textual grammar.
//
// The format is a nested-list dialect: a line starting with "<" opens a tagged
// block, a bare ">" closes it, and every other line is a leaf statement of
// whitespace-separated tokens. Tokens may be quoted (double, single, or
// backtick) and may embed opaque "<...>" runs mid-line; base64 payload lines
// inside a block are kept verbatim.
//
// Every parsed line retains its original text. The writer replays that text
// for untouched lines and regenerates only lines whose attributes were
// modified, so an unmodified document serializes byte-identically to its
// input.
package rpp
