package docx

import (
	"strconv"
	"strings"
)

// Paragraph style IDs defined in styles.xml.
const (
	StyleNormal      = "Normal"
	StyleListBullet  = "ListBullet"
	StyleListBullet2 = "ListBullet2"
	StyleListNumber  = "ListNumber"
	StyleFooter      = "Footer"
	StyleTableGrid   = "TableGrid"
)

// MaxHeadingLevel is the deepest heading style available.
const MaxHeadingLevel = 3

// HeadingStyle returns the style ID for a heading level, clamped to
// 1..MaxHeadingLevel.
func HeadingStyle(level int) string {
	level = min(max(level, 1), MaxHeadingLevel)
	return "Heading" + strconv.Itoa(level)
}

// Alignment is a paragraph justification value.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Paragraph is a block of runs sharing paragraph properties.
type Paragraph struct {
	style   string
	align   Alignment
	before  *Length
	after   *Length
	indent  Length
	shading Color
	runs    []*Run
}

// Style returns the paragraph style ID.
func (p *Paragraph) Style() string { return p.style }

// Runs returns the runs in document order.
func (p *Paragraph) Runs() []*Run { return p.runs }

// Text concatenates the text of all runs. Fields contribute their cached
// result.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// Alignment returns the paragraph justification, empty when inherited.
func (p *Paragraph) Alignment() Alignment { return p.align }

// Shading returns the background fill, empty when none.
func (p *Paragraph) Shading() Color { return p.shading }

// Indent returns the left indentation.
func (p *Paragraph) Indent() Length { return p.indent }

// Spacing returns the space before and after, zero when unset.
func (p *Paragraph) Spacing() (before, after Length) {
	if p.before != nil {
		before = *p.before
	}
	if p.after != nil {
		after = *p.after
	}
	return before, after
}

// AddRun appends a text run.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.runs = append(p.runs, r)
	return r
}

// AddPageNumber appends a PAGE field. Formatting set on the returned run
// applies to the rendered number.
func (p *Paragraph) AddPageNumber() *Run {
	r := &Run{text: "1", field: "PAGE"}
	p.runs = append(p.runs, r)
	return r
}

func (p *Paragraph) SetAlignment(a Alignment) *Paragraph {
	p.align = a
	return p
}

// SetSpacing sets the space before and after the paragraph.
func (p *Paragraph) SetSpacing(before, after Length) *Paragraph {
	p.before, p.after = &before, &after
	return p
}

// SetSpaceAfter sets only the space after the paragraph.
func (p *Paragraph) SetSpaceAfter(after Length) *Paragraph {
	p.after = &after
	return p
}

func (p *Paragraph) SetIndent(left Length) *Paragraph {
	p.indent = left
	return p
}

func (p *Paragraph) SetShading(c Color) *Paragraph {
	p.shading = c
	return p
}

func (p *Paragraph) writeXML(w *xmlWriter, _ *layout) {
	w.open("w:p")
	p.writeProperties(w)
	for _, r := range p.runs {
		r.writeXML(w)
	}
	w.close("w:p")
}

func (p *Paragraph) writeProperties(w *xmlWriter) {
	if p.style == "" && p.align == "" && p.before == nil && p.after == nil && p.indent == 0 && p.shading == "" {
		return
	}
	w.open("w:pPr")
	if p.style != "" {
		w.val("w:pStyle", p.style)
	}
	if p.shading != "" {
		writeShading(w, p.shading)
	}
	if p.before != nil || p.after != nil {
		var attrs []string
		if p.before != nil {
			attrs = append(attrs, "w:before", itoa(*p.before))
		}
		if p.after != nil {
			attrs = append(attrs, "w:after", itoa(*p.after))
		}
		w.leaf("w:spacing", attrs...)
	}
	if p.indent != 0 {
		w.leaf("w:ind", "w:left", itoa(p.indent))
	}
	if p.align != "" {
		w.val("w:jc", string(p.align))
	}
	w.close("w:pPr")
}

func writeShading(w *xmlWriter, c Color) {
	w.leaf("w:shd", "w:val", "clear", "w:color", "auto", "w:fill", string(c))
}

// Run is a span of text with uniform character formatting.
type Run struct {
	text      string
	field     string
	pageBreak bool
	font      string
	size      Length
	bold      bool
	italic    bool
	color     Color
}

func (r *Run) Text() string { return r.text }
func (r *Run) Font() string { return r.font }
func (r *Run) Size() Length { return r.size }
func (r *Run) Bold() bool { return r.bold }
func (r *Run) Italic() bool { return r.italic }
func (r *Run) Color() Color { return r.color }
func (r *Run) IsField() bool { return r.field != "" }
func (r *Run) IsBreak() bool { return r.pageBreak }

func (r *Run) SetFont(name string) *Run {
	r.font = name
	return r
}

func (r *Run) SetSize(size Length) *Run {
	r.size = size
	return r
}

func (r *Run) SetBold(b bool) *Run {
	r.bold = b
	return r
}

func (r *Run) SetItalic(b bool) *Run {
	r.italic = b
	return r
}

func (r *Run) SetColor(c Color) *Run {
	r.color = c
	return r
}

func (r *Run) writeXML(w *xmlWriter) {
	switch {
	case r.pageBreak:
		w.open("w:r")
		w.leaf("w:br", "w:type", "page")
		w.close("w:r")
	case r.field != "":
		// begin, instruction, separate, cached result, end
		r.writeFieldChar(w, "begin")
		w.open("w:r")
		r.writeProperties(w)
		w.textElement("w:instrText", " "+r.field+" ", "xml:space", "preserve")
		w.close("w:r")
		r.writeFieldChar(w, "separate")
		r.writeText(w)
		r.writeFieldChar(w, "end")
	default:
		r.writeText(w)
	}
}

func (r *Run) writeFieldChar(w *xmlWriter, kind string) {
	w.open("w:r")
	r.writeProperties(w)
	w.leaf("w:fldChar", "w:fldCharType", kind)
	w.close("w:r")
}

// writeText emits tabs and newlines as <w:tab/> and <w:br/>; Word drops
// both control characters inside <w:t>.
func (r *Run) writeText(w *xmlWriter) {
	w.open("w:r")
	r.writeProperties(w)
	if r.text == "" {
		w.textElement("w:t", "", "xml:space", "preserve")
	}
	start := 0
	for i := 0; i <= len(r.text); i++ {
		if i < len(r.text) && r.text[i] != '\t' && r.text[i] != '\n' {
			continue
		}
		if i > start {
			w.textElement("w:t", r.text[start:i], "xml:space", "preserve")
		}
		if i < len(r.text) {
			if r.text[i] == '\t' {
				w.leaf("w:tab")
			} else {
				w.leaf("w:br")
			}
		}
		start = i + 1
	}
	w.close("w:r")
}

func (r *Run) writeProperties(w *xmlWriter) {
	if r.font == "" && r.size == 0 && !r.bold && !r.italic && r.color == "" {
		return
	}
	w.open("w:rPr")
	if r.font != "" {
		writeFonts(w, r.font)
	}
	if r.bold {
		w.leaf("w:b")
		w.leaf("w:bCs")
	}
	if r.italic {
		w.leaf("w:i")
		w.leaf("w:iCs")
	}
	if r.color != "" {
		w.val("w:color", string(r.color))
	}
	if r.size != 0 {
		writeSize(w, r.size)
	}
	w.close("w:rPr")
}

func writeFonts(w *xmlWriter, name string) {
	w.leaf("w:rFonts", "w:ascii", name, "w:hAnsi", name, "w:eastAsia", name, "w:cs", name)
}

func writeSize(w *xmlWriter, size Length) {
	hp := strconv.Itoa(size.halfPoints())
	w.val("w:sz", hp)
	w.val("w:szCs", hp)
}
