package tabscrape

import "strconv"

// Cell is a single table value. A Cell with Valid set to false is null: it
// was added to pad a row that was shorter than the table is wide.
type Cell struct {
	Value string
	Valid bool
}

// Null is the cell used to pad short rows.
var Null = Cell{}

// Text returns a non-null cell holding s.
func Text(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// String returns the cell value, or the empty string for a null cell.
func (c Cell) String() string {
	return c.Value
}

// Table is a rectangular table of cells. Every row holds exactly as many cells
// as the table has columns.
//
// When Headers is non-empty its length is the column count. Otherwise columns
// are identified by position, starting at 0.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// NewTable builds a rectangular table from headers and ragged rows.
//
// With headers, rows are padded on the right with null cells or truncated to
// len(headers). Without headers, the widest row defines the column count and
// shorter rows are padded with null cells. Row order is preserved.
func NewTable(headers []string, rows [][]string) *Table {
	width := len(headers)
	if width == 0 {
		for _, row := range rows {
			width = max(width, len(row))
		}
	}

	t := &Table{Headers: headers}
	if len(rows) > 0 {
		t.Rows = make([][]Cell, 0, len(rows))
	}
	for _, row := range rows {
		cells := make([]Cell, width)
		for i := range cells {
			if i < len(row) {
				cells[i] = Text(row[i])
			} else {
				cells[i] = Null
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Shape returns the number of rows and columns.
func (t *Table) Shape() (rows, cols int) {
	if t == nil {
		return 0, 0
	}
	rows = len(t.Rows)
	if len(t.Headers) > 0 {
		return rows, len(t.Headers)
	}
	if rows > 0 {
		return rows, len(t.Rows[0])
	}
	return 0, 0
}

// Empty reports whether the table has shape (0, 0).
func (t *Table) Empty() bool {
	rows, cols := t.Shape()
	return rows == 0 && cols == 0
}

// Columns returns the column names: the headers when present, otherwise the
// positional indexes "0", "1", ...
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	if len(t.Headers) > 0 {
		return t.Headers
	}
	_, cols := t.Shape()
	names := make([]string, cols)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

// Column returns the cells of the first column named name.
func (t *Table) Column(name string) ([]Cell, bool) {
	for i, col := range t.Columns() {
		if col != name {
			continue
		}
		cells := make([]Cell, len(t.Rows))
		for j, row := range t.Rows {
			cells[j] = row[i]
		}
		return cells, true
	}
	return nil, false
}

// Records returns the rows as strings. Null cells become empty strings.
func (t *Table) Records() [][]string {
	if t == nil {
		return nil
	}
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		record := make([]string, len(row))
		for j, c := range row {
			record[j] = c.Value
		}
		records[i] = record
	}
	return records
}
