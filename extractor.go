package tabscrape

// TableExtractor converts rendered HTML into a Table.
type TableExtractor interface {
	// Extract parses html and returns the first <table> in document order.
	// Returns ENOTFOUND when the document contains no table.
	Extract(html string) (*Table, error)
}
