package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"
)

// Document is an in-memory .docx document with a single section.
// It is not safe for concurrent use.
type Document struct {
	// Title and Author are written to the core properties.
	Title  string
	Author string
	// Created is written to the core properties when non-zero. It also
	// stamps the zip entries, so a fixed value gives reproducible output.
	Created time.Time

	page     PageLayout
	font     string
	fontSize Length
	body     []element
	footer   *Paragraph
}

// element is a block-level child of the document body.
type element interface {
	writeXML(w *xmlWriter, l *layout)
}

// layout carries section geometry to elements while writing.
type layout struct {
	contentWidth Length
}

// New returns an empty Letter-sized document with 2.5 cm margins and a
// Calibri 11pt body font.
func New() *Document {
	return &Document{
		page:     PageLetter,
		font:     "Calibri",
		fontSize: Pt(11),
	}
}

// SetPage replaces the page layout.
func (d *Document) SetPage(p PageLayout) { d.page = p }

// Page returns the page layout.
func (d *Document) Page() PageLayout { return d.page }

// SetDefaultFont sets the font of the Normal style, which every other
// style inherits.
func (d *Document) SetDefaultFont(name string, size Length) {
	if name != "" {
		d.font = name
	}
	if size > 0 {
		d.fontSize = size
	}
}

// DefaultFont returns the Normal style font and size.
func (d *Document) DefaultFont() (string, Length) { return d.font, d.fontSize }

// AddParagraph appends a paragraph with the given style ID. An empty style
// means Normal.
func (d *Document) AddParagraph(style string) *Paragraph {
	p := &Paragraph{style: style}
	d.body = append(d.body, p)
	return p
}

// AddHeading appends a paragraph styled as a heading of the given level.
func (d *Document) AddHeading(level int) *Paragraph {
	return d.AddParagraph(HeadingStyle(level))
}

// AddTable appends a rows x cols table.
func (d *Document) AddTable(rows, cols int) *Table {
	t := newTable(rows, cols)
	d.body = append(d.body, t)
	return t
}

// AddPageBreak appends a paragraph holding a page break.
func (d *Document) AddPageBreak() {
	p := &Paragraph{}
	p.runs = append(p.runs, &Run{pageBreak: true})
	d.body = append(d.body, p)
}

// Footer returns the footer paragraph, creating it on first use. A document
// without a footer paragraph has no footer part.
func (d *Document) Footer() *Paragraph {
	if d.footer == nil {
		d.footer = &Paragraph{style: StyleFooter}
	}
	return d.footer
}

// HasFooter reports whether Footer was called.
func (d *Document) HasFooter() bool { return d.footer != nil }

// Paragraphs returns the body paragraphs in order, excluding table cells.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, e := range d.body {
		if p, ok := e.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the body tables in order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, e := range d.body {
		if t, ok := e.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of body elements.
func (d *Document) Len() int { return len(d.body) }

// Bytes returns the encoded .docx archive.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// zipEpoch is the earliest time representable in a zip entry.
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Write encodes the document as a .docx archive.
func (d *Document) Write(w io.Writer) error {
	modified := zipEpoch
	if d.Created.After(zipEpoch) {
		modified = d.Created
	}

	parts := []struct {
		name  string
		write func(*xmlWriter)
	}{
		{"[Content_Types].xml", d.writeContentTypes},
		{"_rels/.rels", writePackageRels},
		{"docProps/core.xml", d.writeCoreProperties},
		{"word/document.xml", d.writeDocument},
		{"word/_rels/document.xml.rels", d.writeDocumentRels},
		{"word/styles.xml", d.writeStyles},
		{"word/numbering.xml", writeNumbering},
	}
	if d.footer != nil {
		parts = append(parts, struct {
			name  string
			write func(*xmlWriter)
		}{footerPart, d.writeFooter})
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", part.name, err)
		}
		xw, err := newXMLWriter(f)
		if err != nil {
			return fmt.Errorf("writing %s: %w", part.name, err)
		}
		part.write(xw)
		if err := xw.finish(); err != nil {
			return fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

func (d *Document) writeDocument(w *xmlWriter) {
	l := &layout{contentWidth: d.page.ContentWidth()}
	w.open("w:document", "xmlns:w", nsW, "xmlns:r", nsR)
	w.open("w:body")
	for _, e := range d.body {
		e.writeXML(w, l)
	}
	d.writeSection(w)
	w.close("w:body")
	w.close("w:document")
}

func (d *Document) writeSection(w *xmlWriter) {
	width, height := d.page.Size()
	m := itoa(d.page.Margin)

	w.open("w:sectPr")
	if d.footer != nil {
		w.leaf("w:footerReference", "w:type", "default", "r:id", footerRID)
	}
	size := []string{"w:w", itoa(width), "w:h", itoa(height)}
	if d.page.Landscape {
		size = append(size, "w:orient", "landscape")
	}
	w.leaf("w:pgSz", size...)
	w.leaf("w:pgMar", "w:top", m, "w:right", m, "w:bottom", m, "w:left", m,
		"w:header", "708", "w:footer", "708", "w:gutter", "0")
	w.close("w:sectPr")
}

func (d *Document) writeFooter(w *xmlWriter) {
	w.open("w:ftr", "xmlns:w", nsW, "xmlns:r", nsR)
	d.footer.writeXML(w, nil)
	w.close("w:ftr")
}
