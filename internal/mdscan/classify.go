package mdscan

import (
	"fmt"
	"regexp"
	"strings"
)

// LineKind is the classification of a single input line.
type LineKind int

const (
	KindBlank LineKind = iota
	KindFence
	KindCode
	KindRule
	KindTableRow
	KindHeading
	KindBullet
	KindNumbered
	KindParagraph
)

var kindNames = [...]string{
	KindBlank:     "blank",
	KindFence:     "fence",
	KindCode:      "code",
	KindRule:      "rule",
	KindTableRow:  "table-row",
	KindHeading:   "heading",
	KindBullet:    "bullet",
	KindNumbered:  "numbered",
	KindParagraph: "paragraph",
}

func (k LineKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("LineKind(%d)", int(k))
}

// fenceMarker opens and closes a code block.
const fenceMarker = "```"

var patterns = struct {
	rule     *regexp.Regexp
	heading  *regexp.Regexp
	bullet   *regexp.Regexp
	numbered *regexp.Regexp
}{
	rule:     regexp.MustCompile(`^-{3,}\s*$`),
	heading:  regexp.MustCompile(`^(#{1,4})\s+(.*)`),
	bullet:   regexp.MustCompile(`^(\s*)[-*+]\s+(.*)`),
	numbered: regexp.MustCompile(`^(\s*)\d+\.\s+(.*)`),
}

// Line is a classified input line.
//
// Text carries the payload of the line: the fence language tag, the heading or
// list item text, or the line itself for code, table and paragraph lines.
// Depth is the heading depth (1-4) or the indentation width of a list item.
type Line struct {
	Kind  LineKind
	Text  string
	Depth int
}

// Classify returns the kind of a line. inCode reports whether a code fence is
// open, in which case only a closing fence is recognised.
// Rules are tried in a fixed priority order; the first match wins.
func Classify(line string, inCode bool) Line {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, fenceMarker) {
		return Line{Kind: KindFence, Text: strings.TrimSpace(trimmed[len(fenceMarker):])}
	}
	if inCode {
		return Line{Kind: KindCode, Text: line}
	}
	if patterns.rule.MatchString(line) {
		return Line{Kind: KindRule}
	}
	if strings.HasPrefix(trimmed, "|") {
		return Line{Kind: KindTableRow, Text: line}
	}
	if m := patterns.heading.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindHeading, Text: strings.TrimSpace(m[2]), Depth: len(m[1])}
	}
	if m := patterns.bullet.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindBullet, Text: m[2], Depth: len(m[1])}
	}
	if m := patterns.numbered.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindNumbered, Text: m[2], Depth: len(m[1])}
	}
	// Whitespace-only lines are blank, not paragraphs, so they flush a table.
	if trimmed == "" {
		return Line{Kind: KindBlank}
	}
	return Line{Kind: KindParagraph, Text: line}
}
