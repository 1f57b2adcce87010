package goquery_test

import (
	"testing"

	"github.com/fwojciec/tabscrape"
	"github.com/fwojciec/tabscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure TableExtractor implements tabscrape.TableExtractor.
var _ tabscrape.TableExtractor = (*goquery.TableExtractor)(nil)

func TestTableExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("uses thead cells as headers", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<table>
	<thead><tr><th>A</th><th>B</th></tr></thead>
	<tbody>
		<tr><td>1</td><td>2</td></tr>
		<tr><td>3</td><td>4</td></tr>
	</tbody>
</table>
</body>
</html>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		rows, cols := tbl.Shape()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 2, cols)
		assert.Equal(t, []string{"A", "B"}, tbl.Headers)
		assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, tbl.Records())
	})

	t.Run("falls back to the first row for headers and keeps it in the body", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>X</th><th>Y</th></tr><tr><td>a</td><td>b</td></tr></table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"X", "Y"}, tbl.Headers)
		assert.Equal(t, [][]string{{"X", "Y"}, {"a", "b"}}, tbl.Records())
	})

	t.Run("pads short rows with null and truncates long rows", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>A</th><th>B</th><th>C</th></tr></thead>
<tbody>
<tr><td>1</td><td>2</td></tr>
<tr><td>3</td><td>4</td><td>5</td><td>6</td></tr>
</tbody>
</table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		rows, cols := tbl.Shape()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 3, cols)
		assert.Equal(t, [][]tabscrape.Cell{
			{tabscrape.Text("1"), tabscrape.Text("2"), tabscrape.Null},
			{tabscrape.Text("3"), tabscrape.Text("4"), tabscrape.Text("5")},
		}, tbl.Rows)
	})

	t.Run("drops rows whose cells are all blank", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>A</th><th>B</th><th>C</th></tr></thead>
<tbody>
<tr><td></td><td>  </td><td></td></tr>
<tr><td>1</td><td></td><td></td></tr>
<tr></tr>
<tr><td>
</td><td>&nbsp;</td><td>	</td></tr>
</tbody>
</table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", "", ""}}, tbl.Records())
	})

	t.Run("strips surrounding whitespace from nested cell text", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>  <span>Name</span>  </th><th>
	Price
</th></tr></thead>
<tbody><tr><td> <a href="/x">Widget</a> </td><td><b>9</b>.99</td></tr></tbody>
</table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Price"}, tbl.Headers)
		assert.Equal(t, [][]string{{"Widget", "9.99"}}, tbl.Records())
	})

	t.Run("uses only the first table in document order", func(t *testing.T) {
		t.Parallel()

		html := `<div><table><tr><td>first</td></tr></table></div>
<table><tr><td>second</td></tr></table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"first"}}, tbl.Records())
	})

	t.Run("returns positional columns when thead has no th cells", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><td>not a header</td></tr></thead>
<tbody><tr><td>1</td><td>2</td></tr><tr><td>3</td></tr></tbody>
</table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, tbl.Headers)
		assert.Equal(t, []string{"0", "1"}, tbl.Columns())
		assert.Equal(t, [][]tabscrape.Cell{
			{tabscrape.Text("1"), tabscrape.Text("2")},
			{tabscrape.Text("3"), tabscrape.Null},
		}, tbl.Rows)
	})

	t.Run("only takes direct rows of tbody", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Outer</th></tr></thead>
<tbody>
<tr><td>outer<table><tbody><tr><td>inner</td></tr></tbody></table></td></tr>
</tbody>
</table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		rows, cols := tbl.Shape()
		assert.Equal(t, 1, rows)
		assert.Equal(t, 1, cols)
		assert.Equal(t, "outerinner", tbl.Rows[0][0].Value)
	})

	t.Run("collects every row when there is no tbody", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>H</th></tr></thead><tfoot><tr><td>total</td></tr></tfoot></table>`

		tbl, err := goquery.NewTableExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"H"}, tbl.Headers)
		assert.Equal(t, [][]string{{"H"}, {"total"}}, tbl.Records())
	})

	t.Run("returns an empty table for a table without rows", func(t *testing.T) {
		t.Parallel()

		tbl, err := goquery.NewTableExtractor().Extract(`<table></table>`)

		require.NoError(t, err)
		assert.True(t, tbl.Empty())
	})

	t.Run("returns not found when there is no table", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTableExtractor().Extract(`<html><body><p>No data yet</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, tabscrape.ENOTFOUND, tabscrape.ErrorCode(err))
		assert.Contains(t, tabscrape.ErrorMessage(err), "rendered differently or inside a frame")
	})

	t.Run("mentions frames when the page has them", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTableExtractor().Extract(`<html><body><iframe src="/data"></iframe></body></html>`)

		require.Error(t, err)
		assert.Equal(t, tabscrape.ENOTFOUND, tabscrape.ErrorCode(err))
		assert.Contains(t, tabscrape.ErrorMessage(err), "1 frame(s)")
	})

	t.Run("returns not found for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTableExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, tabscrape.ENOTFOUND, tabscrape.ErrorCode(err))
	})
}
