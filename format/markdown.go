package format

import (
	"io"
	"strings"

	"github.com/fwojciec/tabscrape"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteMarkdown renders tbl as an HTML table and converts it to a Markdown
// table with conv. An empty table writes nothing.
func WriteMarkdown(w io.Writer, tbl *tabscrape.Table, conv tabscrape.Converter) error {
	if tbl.Empty() {
		return nil
	}

	src, err := TableHTML(tbl)
	if err != nil {
		return err
	}
	md, err := conv.Convert(src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, md)
	return err
}

// TableHTML renders tbl as a <table> with a <thead> holding the column names
// and a <tbody> holding the rows. Cell text is escaped.
func TableHTML(tbl *tabscrape.Table) (string, error) {
	table := element(atom.Table)

	thead := element(atom.Thead)
	header := element(atom.Tr)
	for _, name := range tbl.Columns() {
		header.AppendChild(cell(atom.Th, name))
	}
	thead.AppendChild(header)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	if tbl != nil {
		for _, row := range tbl.Rows {
			tr := element(atom.Tr)
			for _, c := range row {
				tr.AppendChild(cell(atom.Td, c.Value))
			}
			tbody.AppendChild(tr)
		}
	}
	table.AppendChild(tbody)

	var b strings.Builder
	if err := html.Render(&b, table); err != nil {
		return "", tabscrape.Wrapf(err, tabscrape.EINTERNAL, "rendering table HTML")
	}
	return b.String(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func cell(a atom.Atom, text string) *html.Node {
	n := element(a)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
