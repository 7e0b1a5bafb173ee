package mdscan

import (
	"fmt"
	"strings"
)

// Block is one classified, ready-to-render unit of output.
// The set of implementations is closed: Heading, Paragraph, ListItem, Table
// and CodeBlock.
type Block interface {
	fmt.Stringer
	isBlock()
}

// Heading is a section heading. Level is 1 to 3; inline code markers have
// already been removed from Text.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a single body paragraph.
type Paragraph struct {
	Spans []Span
}

// ListKind selects the list style of a ListItem.
type ListKind int

const (
	Bullet ListKind = iota
	NestedBullet
	Numbered
)

func (k ListKind) String() string {
	switch k {
	case Bullet:
		return "bullet"
	case NestedBullet:
		return "bullet2"
	case Numbered:
		return "number"
	}
	return fmt.Sprintf("ListKind(%d)", int(k))
}

// ListItem is one bullet or numbered list entry. Numbering is left to the
// output style; the literal number in the source is not kept.
type ListItem struct {
	Kind  ListKind
	Spans []Span
}

// Table is a rectangular grid of cell text. Rows[0] is the header.
// Every row has exactly Columns cells.
type Table struct {
	Rows    [][]string
	Columns int
}

// CodeBlock holds the lines between two fences. Language is the tag written
// after the opening fence; Lexer is its canonical name when the tag is a known
// language. Both are informational.
type CodeBlock struct {
	Language string
	Lexer    string
	Lines    []string
}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (ListItem) isBlock()  {}
func (Table) isBlock()     {}
func (CodeBlock) isBlock() {}

func (h Heading) String() string {
	return fmt.Sprintf("heading%d %q", h.Level, h.Text)
}

func (p Paragraph) String() string {
	return "paragraph " + formatSpans(p.Spans)
}

func (li ListItem) String() string {
	return li.Kind.String() + " " + formatSpans(li.Spans)
}

func (t Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "table %dx%d", len(t.Rows), t.Columns)
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "\n  %q", row)
	}
	return b.String()
}

func (c CodeBlock) String() string {
	lang := c.Language
	if c.Lexer != "" {
		lang = c.Lexer
	}
	if lang == "" {
		lang = "plain"
	}
	return fmt.Sprintf("code[%s] %d lines", lang, len(c.Lines))
}

func formatSpans(spans []Span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		if s.Code {
			parts[i] = fmt.Sprintf("code(%q)", s.Text)
		} else {
			parts[i] = fmt.Sprintf("%q", s.Text)
		}
	}
	return strings.Join(parts, " ")
}
