package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/tabscrape"
	"github.com/fwojciec/tabscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a table with a header row", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Option</th><th>Default</th></tr></thead>
<tbody>
<tr><td>timeout</td><td>30s</td></tr>
<tr><td>retries</td><td>3</td></tr>
</tbody>
</table>`

		md, err := htmltomarkdown.NewTableConverter().Convert(html)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(md), "\n")
		require.Len(t, lines, 4)
		// Cells may be padded for alignment.
		assert.Contains(t, lines[0], "Option")
		assert.Contains(t, lines[0], "Default")
		assert.Contains(t, lines[1], "---")
		assert.Contains(t, lines[2], "timeout")
		assert.Contains(t, lines[3], "retries")
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "|"), "line %q", line)
		}
	})

	t.Run("ends with a single newline", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewTableConverter().Convert(`<table><thead><tr><th>A</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table>`)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(md, "|\n"))
		assert.False(t, strings.HasSuffix(md, "\n\n"))
	})

	t.Run("rejects fragments without a table", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewTableConverter().Convert(`<p>Hello, world!</p>`)

		require.Error(t, err)
		assert.Equal(t, tabscrape.EINVALID, tabscrape.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewTableConverter().Convert("  \n")

		require.Error(t, err)
		assert.Equal(t, tabscrape.EINVALID, tabscrape.ErrorCode(err))
	})
}
