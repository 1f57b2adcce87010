package mock

import "github.com/fwojciec/tabscrape"

var _ tabscrape.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of tabscrape.TableExtractor.
type TableExtractor struct {
	ExtractFn func(html string) (*tabscrape.Table, error)
}

func (e *TableExtractor) Extract(html string) (*tabscrape.Table, error) {
	return e.ExtractFn(html)
}
