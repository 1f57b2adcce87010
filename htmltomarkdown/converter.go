// Package htmltomarkdown renders HTML tables as GitHub-flavoured Markdown
// pipe tables using html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/tabscrape"
)

var _ tabscrape.Converter = (*TableConverter)(nil)

// TableConverter converts a rendered <table> fragment into a Markdown pipe
// table.
type TableConverter struct {
	conv *converter.Converter
}

// NewTableConverter creates a new TableConverter.
func NewTableConverter() *TableConverter {
	return &TableConverter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders fragment, which must contain a <table>, as a pipe table
// followed by a single newline.
func (c *TableConverter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", tabscrape.Errorf(tabscrape.EINVALID, "empty table fragment")
	}
	if !strings.Contains(strings.ToLower(fragment), "<table") {
		return "", tabscrape.Errorf(tabscrape.EINVALID, "fragment has no <table> element")
	}

	md, err := c.conv.ConvertString(fragment)
	if err != nil {
		return "", tabscrape.Wrapf(err, tabscrape.EINTERNAL, "converting table to markdown")
	}

	return strings.TrimSpace(md) + "\n", nil
}
