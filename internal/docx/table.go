package docx

// Table is a grid of cells with one paragraph each. Columns share the
// content width equally.
type Table struct {
	style string
	rows  [][]*Cell
	cols  int
}

// Cell holds a single paragraph and an optional background fill.
type Cell struct {
	shading   Color
	paragraph *Paragraph
}

func newTable(rows, cols int) *Table {
	t := &Table{style: StyleTableGrid, cols: cols, rows: make([][]*Cell, rows)}
	for i := range t.rows {
		t.rows[i] = make([]*Cell, cols)
		for j := range t.rows[i] {
			t.rows[i][j] = &Cell{paragraph: &Paragraph{}}
		}
	}
	return t
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.rows) }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Cell returns the cell at row r and column c. It panics when out of range,
// like slice indexing.
func (t *Table) Cell(r, c int) *Cell { return t.rows[r][c] }

// Paragraph returns the cell content.
func (c *Cell) Paragraph() *Paragraph { return c.paragraph }

// Shading returns the cell fill, empty when none.
func (c *Cell) Shading() Color { return c.shading }

func (c *Cell) SetShading(col Color) *Cell {
	c.shading = col
	return c
}

func (t *Table) writeXML(w *xmlWriter, l *layout) {
	colWidth := Length(0)
	if t.cols > 0 {
		colWidth = l.contentWidth / Length(t.cols)
	}
	width := itoa(colWidth)

	w.open("w:tbl")
	w.open("w:tblPr")
	w.val("w:tblStyle", t.style)
	w.leaf("w:tblW", "w:w", "0", "w:type", "auto")
	w.val("w:jc", string(AlignLeft))
	w.leaf("w:tblLook", "w:val", "04A0", "w:firstRow", "1", "w:lastRow", "0",
		"w:firstColumn", "1", "w:lastColumn", "0", "w:noHBand", "0", "w:noVBand", "1")
	w.close("w:tblPr")

	w.open("w:tblGrid")
	for range t.cols {
		w.leaf("w:gridCol", "w:w", width)
	}
	w.close("w:tblGrid")

	for _, row := range t.rows {
		w.open("w:tr")
		for _, cell := range row {
			w.open("w:tc")
			w.open("w:tcPr")
			w.leaf("w:tcW", "w:w", width, "w:type", "dxa")
			if cell.shading != "" {
				writeShading(w, cell.shading)
			}
			w.close("w:tcPr")
			cell.paragraph.writeXML(w, l)
			w.close("w:tc")
		}
		w.close("w:tr")
	}
	w.close("w:tbl")
}
