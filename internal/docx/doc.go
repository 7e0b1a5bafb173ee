// Package docx writes WordprocessingML (.docx) documents.
//
// A .docx file is a zip archive of XML parts. This package builds the minimal
// set of parts Word and LibreOffice need: the main document, styles, list
// numbering, one footer and the core properties. The API mirrors the
// append-only way documents are assembled:
//
//	doc := docx.New()
//	p := doc.AddParagraph(docx.StyleNormal)
//	p.AddRun("Hello ").SetBold(true)
//	p.AddRun("world").SetFont("Courier New")
//	doc.Footer().SetAlignment(docx.AlignCenter).AddPageNumber()
//	err := doc.Write(w)
//
// Only the features needed for styled technical documents are covered:
// paragraphs with named styles, formatted runs, shading, spacing, simple
// tables, page breaks and a PAGE field in the footer.
package docx
