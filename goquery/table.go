package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/tabscrape"
)

// Ensure TableExtractor implements tabscrape.TableExtractor at compile time.
var _ tabscrape.TableExtractor = (*TableExtractor)(nil)

var (
	headerCellMatcher = cascadia.MustCompile("th")
	rowCellMatcher    = cascadia.MustCompile("td, th")
	frameMatcher      = cascadia.MustCompile("iframe, frame")
)

// TableExtractor extracts the first <table> of an HTML document.
type TableExtractor struct{}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{}
}

// Extract parses html and converts its first <table> into a rectangular
// tabscrape.Table.
//
// Headers come from the <th> cells of the table's <thead>. Without a <thead>
// the cells of the first row are used as headers, and that row is still
// returned as part of the body. Rows whose cells are all blank are dropped.
func (e *TableExtractor) Extract(html string) (*tabscrape.Table, error) {
	tbl, err := findTable(html)
	if err != nil {
		return nil, err
	}

	return tabscrape.NewTable(headers(tbl), rows(tbl)), nil
}

func findTable(html string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tabscrape.Errorf(tabscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		if n := doc.FindMatcher(frameMatcher).Length(); n > 0 {
			return nil, tabscrape.Errorf(tabscrape.ENOTFOUND,
				"no <table> found in page source; the page has %d frame(s) and the table may be inside one", n)
		}
		return nil, tabscrape.Errorf(tabscrape.ENOTFOUND,
			"no <table> found in page source; the table may be rendered differently or inside a frame")
	}
	return tbl, nil
}

// headers returns the header cells of tbl, or nil when it has none.
func headers(tbl *goquery.Selection) []string {
	var cells []string
	if thead := tbl.Find("thead").First(); thead.Length() > 0 {
		cells = cellTexts(thead.FindMatcher(headerCellMatcher))
	} else if first := tbl.Find("tr").First(); first.Length() > 0 {
		cells = cellTexts(first.FindMatcher(rowCellMatcher))
	}
	if len(cells) == 0 {
		return nil
	}
	return cells
}

// rows returns the non-blank body rows of tbl. The rows are the direct <tr>
// children of the first <tbody>, or every <tr> in the table when there is no
// <tbody>.
func rows(tbl *goquery.Selection) [][]string {
	trs := tbl.Find("tr")
	if tbody := tbl.Find("tbody").First(); tbody.Length() > 0 {
		trs = tbody.ChildrenFiltered("tr")
	}

	var result [][]string
	trs.Each(func(_ int, tr *goquery.Selection) {
		cells := cellTexts(tr.FindMatcher(rowCellMatcher))
		if isBlank(cells) {
			return
		}
		result = append(result, cells)
	})
	return result
}

func cellTexts(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, cell *goquery.Selection) string {
		return strings.TrimSpace(cell.Text())
	})
}

// isBlank reports whether every cell is empty. A row without cells is blank.
func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
