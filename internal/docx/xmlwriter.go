package docx

import (
	"encoding/xml"
	"io"
	"strconv"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Namespaces used by the generated parts.
const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsRels     = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes    = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCore     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC       = "http://purl.org/dc/elements/1.1/"
	nsDCTerms  = "http://purl.org/dc/terms/"
	nsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	relOffice  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCore    = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relStyles  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumber  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relFooter  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	footerRID  = "rId3"
	footerPart = "word/footer1.xml"
)

// xmlWriter emits prefixed WordprocessingML elements through an xml.Encoder.
// Element and attribute names are written verbatim (for example "w:p"), which
// keeps the output in the prefix form Office expects. The first error sticks
// and later calls are no-ops.
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func newXMLWriter(w io.Writer) (*xmlWriter, error) {
	if _, err := io.WriteString(w, xmlDeclaration); err != nil {
		return nil, err
	}
	return &xmlWriter{enc: xml.NewEncoder(w)}, nil
}

// open starts an element. attrs are name/value pairs.
func (w *xmlWriter) open(name string, attrs ...string) {
	if w.err != nil {
		return
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for i := 0; i+1 < len(attrs); i += 2 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: attrs[i]}, Value: attrs[i+1]})
	}
	w.err = w.enc.EncodeToken(start)
}

func (w *xmlWriter) close(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// leaf writes an element without children.
func (w *xmlWriter) leaf(name string, attrs ...string) {
	w.open(name, attrs...)
	w.close(name)
}

// val writes the common <name w:val="v"/> form.
func (w *xmlWriter) val(name, v string) {
	w.leaf(name, "w:val", v)
}

func (w *xmlWriter) text(s string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.CharData(s))
}

// textElement writes <name>s</name>.
func (w *xmlWriter) textElement(name, s string, attrs ...string) {
	w.open(name, attrs...)
	w.text(s)
	w.close(name)
}

func (w *xmlWriter) finish() error {
	if w.err != nil {
		return w.err
	}
	return w.enc.Flush()
}

func itoa(l Length) string { return strconv.Itoa(int(l)) }
