package md2docx

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/mdscan"
)

// Fixed layout measurements.
var (
	headingSpaceBefore    = docx.Pt(14) // top-level body heading
	subheadingSpaceBefore = docx.Pt(8)
	headingSpaceAfter     = docx.Pt(6)
	bodySpaceAfter        = docx.Pt(6)
	listSpaceAfter        = docx.Pt(2)
	tableSpacerAfter      = docx.Pt(4)
	codeIndent            = docx.Cm(0.5)
	codeGapBefore         = docx.Pt(2)
	codeGapAfter          = docx.Pt(6)
)

const (
	titlePageTopSpacers  = 6
	titlePageMetaSpacers = 3
	separatorWidth       = 40
	separatorRune        = "—"
	footerSeparator      = " | "
)

// palette is a Theme converted to document units.
type palette struct {
	bodyFont string
	codeFont string

	body, inlineCode, code, table         docx.Length
	heading                               [docx.MaxHeadingLevel]docx.Length
	title, subtitle, separator, coverMeta docx.Length
	footer                                docx.Length

	accent, headerText, inlineCodeColor, codeText docx.Color
	codeFill, stripe, subtitleColor, coverValue   docx.Color
	footerColor                                   docx.Color
}

func newPalette(t *Theme) (palette, error) {
	p := palette{
		bodyFont:   t.Fonts.Body,
		codeFont:   t.Fonts.Code,
		body:       docx.Pt(t.Sizes.Body),
		inlineCode: docx.Pt(t.Sizes.InlineCode),
		code:       docx.Pt(t.Sizes.Code),
		table:      docx.Pt(t.Sizes.Table),
		title:      docx.Pt(t.Sizes.Title),
		subtitle:   docx.Pt(t.Sizes.Subtitle),
		separator:  docx.Pt(t.Sizes.Separator),
		coverMeta:  docx.Pt(t.Sizes.CoverMeta),
		footer:     docx.Pt(t.Sizes.Footer),
	}
	for i := range p.heading {
		p.heading[i] = docx.Pt(t.HeadingSize(i + 1))
	}

	colors := []struct {
		name string
		in   string
		out  *docx.Color
	}{
		{"accent", t.Colors.Accent, &p.accent},
		{"headerText", t.Colors.HeaderText, &p.headerText},
		{"inlineCode", t.Colors.InlineCode, &p.inlineCodeColor},
		{"codeText", t.Colors.CodeText, &p.codeText},
		{"codeFill", t.Colors.CodeFill, &p.codeFill},
		{"stripe", t.Colors.Stripe, &p.stripe},
		{"subtitle", t.Colors.Subtitle, &p.subtitleColor},
		{"coverValue", t.Colors.CoverValue, &p.coverValue},
		{"footer", t.Colors.Footer, &p.footerColor},
	}
	for _, c := range colors {
		v, err := docx.ParseColor(c.in)
		if err != nil {
			return palette{}, fmt.Errorf("%w: %s: colors.%s: %v", ErrInvalidTheme, t.Name, c.name, err)
		}
		*c.out = v
	}
	return p, nil
}

// renderer appends blocks to a document. It is used for a single conversion.
type renderer struct {
	doc   *docx.Document
	p     palette
	stats Stats
	langs map[string]bool
}

func newRenderer(p palette, page docx.PageLayout) *renderer {
	doc := docx.New()
	doc.SetPage(page)
	doc.SetDefaultFont(p.bodyFont, p.body)
	return &renderer{doc: doc, p: p, langs: map[string]bool{}}
}

// titlePage writes spacers, the centred title, subtitle and separator, one
// line per cover field, then a page break.
func (r *renderer) titlePage(c *Cover) {
	r.spacers(titlePageTopSpacers)

	r.centered().AddRun(c.Title).
		SetFont(r.p.bodyFont).SetSize(r.p.title).SetBold(true).SetColor(r.p.accent)

	sub := r.centered()
	if c.Subtitle != "" {
		sub.AddRun(c.Subtitle).
			SetFont(r.p.bodyFont).SetSize(r.p.subtitle).SetColor(r.p.subtitleColor)
	}

	r.centered().AddRun(strings.Repeat(separatorRune, separatorWidth)).
		SetSize(r.p.separator).SetColor(r.p.accent)

	r.spacers(titlePageMetaSpacers)

	for _, f := range coverLines(c) {
		line := r.centered()
		line.AddRun(f.Label+": ").
			SetFont(r.p.bodyFont).SetSize(r.p.coverMeta).SetBold(true).SetColor(r.p.accent)
		line.AddRun(f.Value).
			SetFont(r.p.bodyFont).SetSize(r.p.coverMeta).SetColor(r.p.coverValue)
	}

	r.doc.AddPageBreak()
}

// coverLines orders the title page lines: author, custom fields, version,
// date. Lines without a value are skipped.
func coverLines(c *Cover) []CoverField {
	var lines []CoverField
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, CoverField{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)})
		}
	}
	add("Author", c.Author)
	for _, f := range c.Fields {
		add(f.Label, f.Value)
	}
	add("Version", c.Version)
	add("Date", c.Date)
	return lines
}

func (r *renderer) spacers(n int) {
	for range n {
		r.doc.AddParagraph("").SetSpaceAfter(0)
	}
}

func (r *renderer) centered() *docx.Paragraph {
	return r.doc.AddParagraph("").SetAlignment(docx.AlignCenter)
}

// footer writes the optional text and page number field.
func (r *renderer) footer(f *Footer) {
	if f.isEmpty() {
		return
	}
	p := r.doc.Footer().SetAlignment(footerAlignment(f.Position))
	text := strings.TrimSpace(f.Text)
	if text != "" {
		if f.ShowPageNumber {
			text += footerSeparator
		}
		r.footerRun(p.AddRun(text))
	}
	if f.ShowPageNumber {
		r.footerRun(p.AddPageNumber())
	}
}

func (r *renderer) footerRun(run *docx.Run) {
	run.SetFont(r.p.bodyFont).SetSize(r.p.footer).SetColor(r.p.footerColor)
}

func footerAlignment(position string) docx.Alignment {
	switch strings.ToLower(position) {
	case PositionLeft:
		return docx.AlignLeft
	case PositionRight:
		return docx.AlignRight
	default:
		return docx.AlignCenter
	}
}

func (r *renderer) block(b mdscan.Block) {
	switch b := b.(type) {
	case mdscan.Heading:
		r.heading(b)
	case mdscan.Paragraph:
		r.paragraph(b)
	case mdscan.ListItem:
		r.listItem(b)
	case mdscan.Table:
		r.table(b)
	case mdscan.CodeBlock:
		r.codeBlock(b)
	}
}

func (r *renderer) heading(h mdscan.Heading) {
	level := min(max(h.Level, 1), docx.MaxHeadingLevel)
	before := subheadingSpaceBefore
	if level == 1 {
		before = headingSpaceBefore
	}
	p := r.doc.AddHeading(level).SetSpacing(before, headingSpaceAfter)
	p.AddRun(h.Text).
		SetFont(r.p.bodyFont).SetSize(r.p.heading[level-1]).SetBold(true).SetColor(r.p.accent)
	r.stats.Headings++
}

func (r *renderer) paragraph(para mdscan.Paragraph) {
	p := r.doc.AddParagraph("").SetSpacing(0, bodySpaceAfter)
	r.spans(p, para.Spans)
	r.stats.Paragraphs++
}

func (r *renderer) listItem(li mdscan.ListItem) {
	p := r.doc.AddParagraph(listStyle(li.Kind)).SetSpacing(0, listSpaceAfter)
	r.spans(p, li.Spans)
	r.stats.ListItems++
}

func listStyle(k mdscan.ListKind) string {
	switch k {
	case mdscan.NestedBullet:
		return docx.StyleListBullet2
	case mdscan.Numbered:
		return docx.StyleListNumber
	default:
		return docx.StyleListBullet
	}
}

// spans writes plain spans in the body font and code spans in the code font
// with the inline code colour.
func (r *renderer) spans(p *docx.Paragraph, spans []mdscan.Span) {
	for _, s := range spans {
		if s.Code {
			p.AddRun(s.Text).
				SetFont(r.p.codeFont).SetSize(r.p.inlineCode).SetColor(r.p.inlineCodeColor)
			continue
		}
		p.AddRun(s.Text).SetFont(r.p.bodyFont).SetSize(r.p.body)
	}
}

// table writes the grid with a shaded header row and striped even rows,
// followed by a spacer paragraph.
func (r *renderer) table(t mdscan.Table) {
	if len(t.Rows) == 0 || t.Columns == 0 {
		return
	}
	out := r.doc.AddTable(len(t.Rows), t.Columns)
	for ri, row := range t.Rows {
		for ci := range t.Columns {
			text := ""
			if ci < len(row) {
				text = mdscan.StripInline(row[ci])
			}
			cell := out.Cell(ri, ci)
			run := cell.Paragraph().AddRun(text).SetFont(r.p.bodyFont).SetSize(r.p.table)
			switch {
			case ri == 0:
				cell.SetShading(r.p.accent)
				run.SetBold(true).SetColor(r.p.headerText)
			case ri%2 == 0:
				cell.SetShading(r.p.stripe)
			}
		}
	}
	r.doc.AddParagraph("").SetSpaceAfter(tableSpacerAfter)
	r.stats.Tables++
}

// codeBlock writes one shaded, indented paragraph per line. Empty lines
// become a single space so the shading stays continuous.
func (r *renderer) codeBlock(c mdscan.CodeBlock) {
	for _, line := range c.Lines {
		if line == "" {
			line = " "
		}
		r.doc.AddParagraph("").
			SetSpacing(0, 0).
			SetIndent(codeIndent).
			SetShading(r.p.codeFill).
			AddRun(line).
			SetFont(r.p.codeFont).SetSize(r.p.code).SetColor(r.p.codeText)
	}
	r.doc.AddParagraph("").SetSpacing(codeGapBefore, codeGapAfter)

	r.stats.CodeBlocks++
	if c.Lexer != "" && !r.langs[c.Lexer] {
		r.langs[c.Lexer] = true
		r.stats.Languages = append(r.stats.Languages, c.Lexer)
	}
}
