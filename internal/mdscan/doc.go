// Package mdscan classifies Markdown lines into document blocks.
//
// The scanner is deliberately small and line oriented. It recognises a fixed
// subset of Markdown and never fails:
//   - fenced code blocks (``` with an optional language tag)
//   - pipe tables, with or without a separator row
//   - headings of depth 1 to 4
//   - bullet items (-, *, +) on two nesting levels
//   - numbered items
//   - paragraphs with `inline code` spans
//
// Lines are processed once, left to right. Multi-line constructs (tables and
// code blocks) are buffered in an explicit scan state and flushed as a single
// Block when the construct ends. Irregular input is normalised rather than
// rejected: ragged tables are padded, an unterminated fence is closed at end of
// input, and tables without data rows are dropped.
//
// Top-level headings (a single #) never produce a block; the first one is kept
// in Document.Title so callers can use it for a title page.
package mdscan
