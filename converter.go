package tabscrape

// Converter renders an HTML <table> fragment as Markdown.
type Converter interface {
	// Convert returns fragment as a Markdown table. Returns EINVALID when
	// fragment contains no <table>.
	Convert(fragment string) (string, error)
}
