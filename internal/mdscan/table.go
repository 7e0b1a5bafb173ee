package mdscan

import (
	"regexp"
	"strings"
)

// separatorRowPattern matches rows made only of hyphens, colons, spaces and
// pipes, such as |---|:--:|.
var separatorRowPattern = regexp.MustCompile(`^\|[-| :]+\|$`)

// IsSeparatorRow reports whether line is a table separator row.
func IsSeparatorRow(line string) bool {
	return separatorRowPattern.MatchString(strings.TrimSpace(line))
}

// ParseTable turns buffered table lines into a rectangular grid.
// Separator rows are dropped. The first remaining row is the header, whatever
// its content. It reports false when fewer than two rows remain, since a header
// without data rows is not rendered.
func ParseTable(raw []string) (*Table, bool) {
	rows := make([][]string, 0, len(raw))
	columns := 0
	for _, line := range raw {
		if IsSeparatorRow(line) {
			continue
		}
		cells := splitRow(line)
		if len(cells) > columns {
			columns = len(cells)
		}
		rows = append(rows, cells)
	}
	if len(rows) < 2 {
		return nil, false
	}

	for i, cells := range rows {
		if len(cells) < columns {
			padded := make([]string, columns)
			copy(padded, cells)
			rows[i] = padded
		}
	}
	return &Table{Rows: rows, Columns: columns}, true
}

// splitRow strips one leading and one trailing pipe, then splits on the
// remaining pipes and trims each cell.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
