package format

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fwojciec/tabscrape"
)

// WriteCSV writes the column names followed by one record per row. Null cells
// are written as empty fields. An empty table writes nothing.
func WriteCSV(w io.Writer, tbl *tabscrape.Table) error {
	if tbl.Empty() {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.Columns()); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, record := range tbl.Records() {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
