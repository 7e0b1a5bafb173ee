package docx

import (
	"strconv"
	"time"
)

const (
	ctMain      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctFooter    = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	ctCore      = "application/vnd.openxmlformats-package.core-properties+xml"
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
)

func (d *Document) writeContentTypes(w *xmlWriter) {
	w.open("Types", "xmlns", nsTypes)
	w.leaf("Default", "Extension", "rels", "ContentType", ctRels)
	w.leaf("Default", "Extension", "xml", "ContentType", "application/xml")
	w.leaf("Override", "PartName", "/word/document.xml", "ContentType", ctMain)
	w.leaf("Override", "PartName", "/word/styles.xml", "ContentType", ctStyles)
	w.leaf("Override", "PartName", "/word/numbering.xml", "ContentType", ctNumbering)
	if d.footer != nil {
		w.leaf("Override", "PartName", "/"+footerPart, "ContentType", ctFooter)
	}
	w.leaf("Override", "PartName", "/docProps/core.xml", "ContentType", ctCore)
	w.close("Types")
}

func writePackageRels(w *xmlWriter) {
	w.open("Relationships", "xmlns", nsRels)
	w.leaf("Relationship", "Id", "rId1", "Type", relOffice, "Target", "word/document.xml")
	w.leaf("Relationship", "Id", "rId2", "Type", relCore, "Target", "docProps/core.xml")
	w.close("Relationships")
}

func (d *Document) writeDocumentRels(w *xmlWriter) {
	w.open("Relationships", "xmlns", nsRels)
	w.leaf("Relationship", "Id", "rId1", "Type", relStyles, "Target", "styles.xml")
	w.leaf("Relationship", "Id", "rId2", "Type", relNumber, "Target", "numbering.xml")
	if d.footer != nil {
		w.leaf("Relationship", "Id", footerRID, "Type", relFooter, "Target", "footer1.xml")
	}
	w.close("Relationships")
}

func (d *Document) writeCoreProperties(w *xmlWriter) {
	w.open("cp:coreProperties", "xmlns:cp", nsCore, "xmlns:dc", nsDC,
		"xmlns:dcterms", nsDCTerms, "xmlns:xsi", nsXSI)
	if d.Title != "" {
		w.textElement("dc:title", d.Title)
	}
	if d.Author != "" {
		w.textElement("dc:creator", d.Author)
	}
	if !d.Created.IsZero() {
		stamp := d.Created.UTC().Format(time.RFC3339)
		w.textElement("dcterms:created", stamp, "xsi:type", "dcterms:W3CDTF")
		w.textElement("dcterms:modified", stamp, "xsi:type", "dcterms:W3CDTF")
	}
	w.close("cp:coreProperties")
}

// headingSizes are the style defaults; renderers usually override them per run.
var headingSizes = [MaxHeadingLevel]float64{16, 13, 12}

func (d *Document) writeStyles(w *xmlWriter) {
	w.open("w:styles", "xmlns:w", nsW)

	w.open("w:docDefaults")
	w.open("w:rPrDefault")
	w.open("w:rPr")
	writeFonts(w, d.font)
	writeSize(w, d.fontSize)
	w.val("w:lang", "en-US")
	w.close("w:rPr")
	w.close("w:rPrDefault")
	w.open("w:pPrDefault")
	w.open("w:pPr")
	w.leaf("w:spacing", "w:after", "160", "w:line", "259", "w:lineRule", "auto")
	w.close("w:pPr")
	w.close("w:pPrDefault")
	w.close("w:docDefaults")

	w.leaf("w:latentStyles", "w:defLockedState", "0", "w:defUIPriority", "99",
		"w:defSemiHidden", "0", "w:defUnhideWhenUsed", "0", "w:defQFormat", "0", "w:count", "376")

	w.open("w:style", "w:type", "paragraph", "w:default", "1", "w:styleId", StyleNormal)
	w.val("w:name", "Normal")
	w.leaf("w:qFormat")
	w.open("w:rPr")
	writeFonts(w, d.font)
	writeSize(w, d.fontSize)
	w.close("w:rPr")
	w.close("w:style")

	for i, size := range headingSizes {
		level := i + 1
		w.open("w:style", "w:type", "paragraph", "w:styleId", HeadingStyle(level))
		w.val("w:name", "heading "+strconv.Itoa(level))
		w.val("w:basedOn", StyleNormal)
		w.val("w:next", StyleNormal)
		w.val("w:uiPriority", "9")
		w.leaf("w:qFormat")
		w.open("w:pPr")
		w.leaf("w:keepNext")
		w.leaf("w:keepLines")
		w.leaf("w:spacing", "w:before", "240", "w:after", "0")
		w.val("w:outlineLvl", strconv.Itoa(i))
		w.close("w:pPr")
		w.open("w:rPr")
		w.leaf("w:b")
		w.leaf("w:bCs")
		writeSize(w, Pt(size))
		w.close("w:rPr")
		w.close("w:style")
	}

	writeListStyle(w, StyleListBullet, "List Bullet", bulletNumID, 0)
	writeListStyle(w, StyleListBullet2, "List Bullet 2", bulletNumID, 1)
	writeListStyle(w, StyleListNumber, "List Number", decimalNumID, 0)

	w.open("w:style", "w:type", "paragraph", "w:styleId", StyleFooter)
	w.val("w:name", "footer")
	w.val("w:basedOn", StyleNormal)
	w.val("w:uiPriority", "99")
	w.open("w:pPr")
	w.leaf("w:spacing", "w:after", "0")
	w.close("w:pPr")
	w.close("w:style")

	w.open("w:style", "w:type", "table", "w:styleId", StyleTableGrid)
	w.val("w:name", "Table Grid")
	w.val("w:uiPriority", "39")
	w.open("w:pPr")
	w.leaf("w:spacing", "w:after", "0", "w:line", "240", "w:lineRule", "auto")
	w.close("w:pPr")
	w.open("w:tblPr")
	w.open("w:tblBorders")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		w.leaf(side, "w:val", "single", "w:sz", "4", "w:space", "0", "w:color", "auto")
	}
	w.close("w:tblBorders")
	w.open("w:tblCellMar")
	w.leaf("w:left", "w:w", "108", "w:type", "dxa")
	w.leaf("w:right", "w:w", "108", "w:type", "dxa")
	w.close("w:tblCellMar")
	w.close("w:tblPr")
	w.close("w:style")

	w.close("w:styles")
}

func writeListStyle(w *xmlWriter, id, name string, numID, level int) {
	w.open("w:style", "w:type", "paragraph", "w:styleId", id)
	w.val("w:name", name)
	w.val("w:basedOn", StyleNormal)
	w.val("w:uiPriority", "99")
	w.leaf("w:qFormat")
	w.open("w:pPr")
	w.open("w:numPr")
	w.val("w:ilvl", strconv.Itoa(level))
	w.val("w:numId", strconv.Itoa(numID))
	w.close("w:numPr")
	w.leaf("w:contextualSpacing")
	w.close("w:pPr")
	w.close("w:style")
}

// Numbering instances referenced by the list styles.
const (
	bulletNumID  = 1
	decimalNumID = 2
)

type numberingLevel struct {
	format string
	text   string
	indent Length
}

var (
	bulletLevels = []numberingLevel{
		{format: "bullet", text: "•", indent: 720},
		{format: "bullet", text: "◦", indent: 1440},
	}
	decimalLevels = []numberingLevel{
		{format: "decimal", text: "%1.", indent: 720},
	}
)

func writeNumbering(w *xmlWriter) {
	w.open("w:numbering", "xmlns:w", nsW)
	for id, levels := range [][]numberingLevel{bulletLevels, decimalLevels} {
		w.open("w:abstractNum", "w:abstractNumId", strconv.Itoa(id))
		w.val("w:multiLevelType", "hybridMultilevel")
		for i, lvl := range levels {
			w.open("w:lvl", "w:ilvl", strconv.Itoa(i))
			w.val("w:start", "1")
			w.val("w:numFmt", lvl.format)
			w.val("w:lvlText", lvl.text)
			w.val("w:lvlJc", "left")
			w.open("w:pPr")
			w.leaf("w:ind", "w:left", itoa(lvl.indent), "w:hanging", "360")
			w.close("w:pPr")
			w.close("w:lvl")
		}
		w.close("w:abstractNum")
	}
	w.open("w:num", "w:numId", strconv.Itoa(bulletNumID))
	w.val("w:abstractNumId", "0")
	w.close("w:num")
	w.open("w:num", "w:numId", strconv.Itoa(decimalNumID))
	w.val("w:abstractNumId", "1")
	w.close("w:num")
	w.close("w:numbering")
}
