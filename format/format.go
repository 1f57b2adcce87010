// Package format renders tables as CSV, JSON or Markdown.
package format

import (
	"io"
	"strings"

	"github.com/fwojciec/tabscrape"
)

// Format names an output encoding.
type Format string

const (
	CSV      Format = "csv"
	JSON     Format = "json"
	Markdown Format = "markdown"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{CSV, JSON, Markdown}

// Parse returns the Format named s. Matching ignores case and surrounding
// whitespace.
func Parse(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", tabscrape.Errorf(tabscrape.EINVALID, "unknown format %q", s)
}

// Writer writes tables in a single format.
type Writer struct {
	Format Format

	// Converter turns the rendered HTML table into Markdown. Required for
	// the Markdown format only.
	Converter tabscrape.Converter
}

// Write renders tbl to w.
func (wr *Writer) Write(w io.Writer, tbl *tabscrape.Table) error {
	switch wr.Format {
	case CSV:
		return WriteCSV(w, tbl)
	case JSON:
		return WriteJSON(w, tbl)
	case Markdown:
		if wr.Converter == nil {
			return tabscrape.Errorf(tabscrape.EINVALID, "markdown output requires a converter")
		}
		return WriteMarkdown(w, tbl, wr.Converter)
	default:
		return tabscrape.Errorf(tabscrape.EINVALID, "unknown format %q", wr.Format)
	}
}
