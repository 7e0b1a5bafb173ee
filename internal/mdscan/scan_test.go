package mdscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantTitle string
		want      []Block
	}{
		{
			name: "mixed document",
			input: "# Title\n## Section\nSome `code` text\n- item one\n" +
				"| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantTitle: "Title",
			want: []Block{
				Heading{Level: 1, Text: "Section"},
				Paragraph{Spans: []Span{{Text: "Some "}, {Text: "code", Code: true}, {Text: " text"}}},
				ListItem{Kind: Bullet, Spans: []Span{{Text: "item one"}}},
				Table{Rows: [][]string{{"a", "b"}, {"1", "2"}}, Columns: 2},
			},
		},
		{
			name:  "fenced block keeps blank lines",
			input: "```py\nx=1\n\n y=2\n```\n",
			want: []Block{
				CodeBlock{Language: "py", Lexer: "Python", Lines: []string{"x=1", "", " y=2"}},
			},
		},
		{
			name:  "numbered items ignore literal digits",
			input: "1. First\n7. Second\n",
			want: []Block{
				ListItem{Kind: Numbered, Spans: []Span{{Text: "First"}}},
				ListItem{Kind: Numbered, Spans: []Span{{Text: "Second"}}},
			},
		},
		{
			name:  "heading levels shift down by one",
			input: "## Two\n### Three\n#### Four `x`\n",
			want: []Block{
				Heading{Level: 1, Text: "Two"},
				Heading{Level: 2, Text: "Three"},
				Heading{Level: 3, Text: "Four x"},
			},
		},
		{
			name:      "only the first top-level heading becomes the title",
			input:     "# First `one`\ntext\n# Second\n",
			wantTitle: "First one",
			want: []Block{
				Paragraph{Spans: []Span{{Text: "text"}}},
			},
		},
		{
			name:  "nested bullets",
			input: "- top\n  - nested\n\t* tab nested\n",
			want: []Block{
				ListItem{Kind: Bullet, Spans: []Span{{Text: "top"}}},
				ListItem{Kind: NestedBullet, Spans: []Span{{Text: "nested"}}},
				ListItem{Kind: NestedBullet, Spans: []Span{{Text: "tab nested"}}},
			},
		},
		{
			name:  "horizontal rule is discarded",
			input: "before\n---\nafter\n",
			want: []Block{
				Paragraph{Spans: []Span{{Text: "before"}}},
				Paragraph{Spans: []Span{{Text: "after"}}},
			},
		},
		{
			name:  "code fence content is not classified",
			input: "```\n# not a heading\n| not | a table |\n- not a bullet\n```\n",
			want: []Block{
				CodeBlock{Lines: []string{"# not a heading", "| not | a table |", "- not a bullet"}},
			},
		},
		{
			name:  "empty fenced block produces nothing",
			input: "```go\n```\nafter\n",
			want: []Block{
				Paragraph{Spans: []Span{{Text: "after"}}},
			},
		},
		{
			name:  "unknown language keeps tag without lexer",
			input: "```nosuchlanguage\nx\n```",
			want: []Block{
				CodeBlock{Language: "nosuchlanguage", Lines: []string{"x"}},
			},
		},
		{
			name:  "CRLF input",
			input: "## Head\r\ntext\r\n",
			want: []Block{
				Heading{Level: 1, Text: "Head"},
				Paragraph{Spans: []Span{{Text: "text"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := Parse(tt.input)
			if doc.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", doc.Title, tt.wantTitle)
			}
			if diff := cmp.Diff(tt.want, doc.Blocks, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScan_TableFlushTransitions(t *testing.T) {
	t.Parallel()

	table := Table{Rows: [][]string{{"h"}, {"v"}}, Columns: 1}
	para := func(s string) Block { return Paragraph{Spans: []Span{{Text: s}}} }

	tests := []struct {
		name  string
		lines []string
		want  []Block
	}{
		{
			name:  "blank line flushes",
			lines: []string{"| h |", "| v |", "", "| h |", "| v |"},
			want:  []Block{table, table},
		},
		{
			name:  "whitespace only line flushes",
			lines: []string{"| h |", "| v |", "  \t", "| h |", "| v |"},
			want:  []Block{table, table},
		},
		{
			name:  "horizontal rule flushes",
			lines: []string{"| h |", "| v |", "---", "| h |", "| v |"},
			want:  []Block{table, table},
		},
		{
			name:  "content line flushes before it is emitted",
			lines: []string{"| h |", "| v |", "after"},
			want:  []Block{table, para("after")},
		},
		{
			name:  "opening fence flushes",
			lines: []string{"| h |", "| v |", "```", "code", "```"},
			want:  []Block{table, CodeBlock{Lines: []string{"code"}}},
		},
		{
			name:  "end of input flushes",
			lines: []string{"before", "| h |", "| v |"},
			want:  []Block{para("before"), table},
		},
		{
			name:  "header only table is suppressed",
			lines: []string{"| a | b |", "|---|---|", "after"},
			want:  []Block{para("after")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := Scan(tt.lines)
			if diff := cmp.Diff(tt.want, doc.Blocks, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScan_UnterminatedFenceFlushesAtEnd(t *testing.T) {
	t.Parallel()

	doc := Scan([]string{"intro", "```sh", "echo hi", "", "exit 0"})

	want := []Block{
		Paragraph{Spans: []Span{{Text: "intro"}}},
		CodeBlock{Language: "sh", Lexer: LexerName("sh"), Lines: []string{"echo hi", "", "exit 0"}},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_Deterministic(t *testing.T) {
	t.Parallel()

	lines := SplitLines("# T\n## A\n| x | y |\n|--|--|\n| 1 |\n```go\nfunc(){}\n\n- `a` b\n1. c\n")

	first := Scan(lines)
	second := Scan(lines)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second scan differs (-first +second):\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\r\nb\rc\n", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitLines(tt.in)); diff != "" {
			t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestLexerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{"", ""},
		{"go", "Go"},
		{"py", "Python"},
		{"go title=main.go", "Go"},
		{"nosuchlanguage", ""},
	}

	for _, tt := range tests {
		if got := LexerName(tt.tag); got != tt.want {
			t.Errorf("LexerName(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestBlock_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block Block
		want  string
	}{
		{Heading{Level: 2, Text: "Usage"}, `heading2 "Usage"`},
		{Paragraph{Spans: []Span{{Text: "run "}, {Text: "make", Code: true}}}, `paragraph "run " code("make")`},
		{ListItem{Kind: Numbered, Spans: []Span{{Text: "one"}}}, `number "one"`},
		{CodeBlock{Language: "py", Lexer: "Python", Lines: []string{"a", "b"}}, "code[Python] 2 lines"},
		{CodeBlock{Lines: []string{"a"}}, "code[plain] 1 lines"},
		{Table{Rows: [][]string{{"a"}, {"1"}}, Columns: 1}, "table 2x1\n  [\"a\"]\n  [\"1\"]"},
	}

	for _, tt := range tests {
		if got := tt.block.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
