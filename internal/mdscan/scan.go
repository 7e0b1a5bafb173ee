package mdscan

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

type mode int

const (
	modeIdle mode = iota
	modeTable
	modeCode
)

// scanState is the buffering state between lines. At most one buffer is open:
// buf holds table rows in modeTable and code lines in modeCode.
type scanState struct {
	mode     mode
	buf      []string
	language string
}

// Document is the result of a scan.
type Document struct {
	// Title is the text of the first top-level heading, empty if none.
	Title  string
	Blocks []Block
}

// Parse splits content into lines and scans them.
func Parse(content string) *Document {
	return Scan(SplitLines(content))
}

// Scan classifies lines in order and returns the resulting blocks.
// It is a pure function of its input.
func Scan(lines []string) *Document {
	s := &scanner{}
	for _, line := range lines {
		s.feed(line)
	}
	s.finish()
	return &s.doc
}

type scanner struct {
	state scanState
	doc   Document
}

func (s *scanner) feed(raw string) {
	line := Classify(raw, s.state.mode == modeCode)

	switch line.Kind {
	case KindFence:
		if s.state.mode == modeCode {
			s.flushCode()
			return
		}
		s.flushTable()
		s.state = scanState{mode: modeCode, language: line.Text}
		return
	case KindCode:
		s.state.buf = append(s.state.buf, raw)
		return
	case KindTableRow:
		s.state.mode = modeTable
		s.state.buf = append(s.state.buf, raw)
		return
	}

	// Anything else ends a pending table before it is handled.
	s.flushTable()

	switch line.Kind {
	case KindHeading:
		text := StripInline(line.Text)
		if line.Depth == 1 {
			if s.doc.Title == "" {
				s.doc.Title = text
			}
			return
		}
		s.emit(Heading{Level: line.Depth - 1, Text: text})
	case KindBullet:
		kind := Bullet
		if line.Depth > 0 {
			kind = NestedBullet
		}
		s.emit(ListItem{Kind: kind, Spans: SplitInline(line.Text)})
	case KindNumbered:
		s.emit(ListItem{Kind: Numbered, Spans: SplitInline(line.Text)})
	case KindParagraph:
		s.emit(Paragraph{Spans: SplitInline(line.Text)})
	}
}

// finish flushes whatever is still buffered. An unterminated fence is closed
// implicitly.
func (s *scanner) finish() {
	switch s.state.mode {
	case modeTable:
		s.flushTable()
	case modeCode:
		s.flushCode()
	}
}

func (s *scanner) flushTable() {
	if s.state.mode != modeTable {
		return
	}
	if t, ok := ParseTable(s.state.buf); ok {
		s.emit(*t)
	}
	s.state = scanState{}
}

func (s *scanner) flushCode() {
	if len(s.state.buf) > 0 {
		s.emit(CodeBlock{
			Language: s.state.language,
			Lexer:    LexerName(s.state.language),
			Lines:    s.state.buf,
		})
	}
	s.state = scanState{}
}

func (s *scanner) emit(b Block) {
	s.doc.Blocks = append(s.doc.Blocks, b)
}

// LexerName returns the canonical name of the language named by a fence tag,
// such as "Python" for "py". Only the first word of the tag is considered.
// It returns "" for an empty or unknown tag.
func LexerName(tag string) string {
	fields := strings.Fields(tag)
	if len(fields) == 0 {
		return ""
	}
	lexer := lexers.Get(fields[0])
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
