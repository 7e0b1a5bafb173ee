package mdscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsSeparatorRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"|---|---|", true},
		{"| --- | :---: |", true},
		{"  |:--|--:|  ", true},
		{"| a | b |", false},
		{"|---|x|", false},
		{"---", false},
	}

	for _, tt := range tests {
		if got := IsSeparatorRow(tt.line); got != tt.want {
			t.Errorf("IsSeparatorRow(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    []string
		want   *Table
		wantOK bool
	}{
		{
			name: "header separator and data",
			raw:  []string{"| a | b |", "|---|---|", "| 1 | 2 |"},
			want: &Table{
				Rows:    [][]string{{"a", "b"}, {"1", "2"}},
				Columns: 2,
			},
			wantOK: true,
		},
		{
			name: "header is positional without separator",
			raw:  []string{"| x | y |", "| 1 | 2 |"},
			want: &Table{
				Rows:    [][]string{{"x", "y"}, {"1", "2"}},
				Columns: 2,
			},
			wantOK: true,
		},
		{
			name: "ragged rows are padded to the widest row",
			raw:  []string{"| a |", "|---|", "| 1 | 2 | 3 |", "| 4 | 5 |"},
			want: &Table{
				Rows:    [][]string{{"a", "", ""}, {"1", "2", "3"}, {"4", "5", ""}},
				Columns: 3,
			},
			wantOK: true,
		},
		{
			name: "only one pipe stripped on each side",
			raw:  []string{"|| a ||", "| 1 | 2 |"},
			want: &Table{
				Rows:    [][]string{{"", "a", ""}, {"1", "2", ""}},
				Columns: 3,
			},
			wantOK: true,
		},
		{
			name: "inline code markers are kept in the grid",
			raw:  []string{"| flag | use |", "| `-v` | verbose |"},
			want: &Table{
				Rows:    [][]string{{"flag", "use"}, {"`-v`", "verbose"}},
				Columns: 2,
			},
			wantOK: true,
		},
		{
			name:   "header and separator only",
			raw:    []string{"| a | b |", "|---|---|"},
			wantOK: false,
		},
		{
			name:   "separators only",
			raw:    []string{"|---|", "|:-:|"},
			wantOK: false,
		},
		{
			name:   "empty buffer",
			raw:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTable(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseTable() ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTable_ColumnCountIsMaxRowWidth(t *testing.T) {
	t.Parallel()

	raw := []string{"| h |", "| 1 | 2 |", "| 1 | 2 | 3 | 4 |", "| 1 |"}
	table, ok := ParseTable(raw)
	if !ok {
		t.Fatal("ParseTable() ok = false, want true")
	}
	if table.Columns != 4 {
		t.Errorf("Columns = %d, want 4", table.Columns)
	}
	if len(table.Rows) != len(raw) {
		t.Errorf("rows = %d, want %d (no row may be dropped)", len(table.Rows), len(raw))
	}
	for i, row := range table.Rows {
		if len(row) != table.Columns {
			t.Errorf("row %d has %d cells, want %d", i, len(row), table.Columns)
		}
	}
}
