package mdscan

import "regexp"

// inlineCodePattern matches a backtick, one or more non-backtick characters
// and a closing backtick.
var inlineCodePattern = regexp.MustCompile("`([^`]+)`")

// Span is a run of text inside a paragraph, either plain or inline code.
type Span struct {
	Text string
	Code bool
}

// SplitInline splits text into alternating plain and code spans.
// Empty plain segments are skipped; code spans are never empty.
func SplitInline(text string) []Span {
	matches := inlineCodePattern.FindAllStringSubmatchIndex(text, -1)
	spans := make([]Span, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Code: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

// StripInline removes code span markers and keeps their content as plain text.
// Used where code styling does not apply: headings and table cells.
func StripInline(text string) string {
	return inlineCodePattern.ReplaceAllString(text, "$1")
}

// PlainText concatenates the text of all spans.
func PlainText(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}
