package mock

import "github.com/fwojciec/tabscrape"

var _ tabscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of tabscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
