package format

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/tabscrape"
)

type jsonTable struct {
	Columns []string    `json:"columns"`
	Rows    [][]*string `json:"rows"`
	Shape   [2]int      `json:"shape"`
}

// WriteJSON writes tbl as an indented JSON object with "columns", "rows" and
// "shape" keys. Null cells are encoded as null.
func WriteJSON(w io.Writer, tbl *tabscrape.Table) error {
	rows, cols := tbl.Shape()
	out := jsonTable{
		Columns: tbl.Columns(),
		Rows:    make([][]*string, 0, rows),
		Shape:   [2]int{rows, cols},
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	if tbl != nil {
		for _, row := range tbl.Rows {
			values := make([]*string, len(row))
			for i, c := range row {
				if c.Valid {
					values[i] = &c.Value
				}
			}
			out.Rows = append(out.Rows, values)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
