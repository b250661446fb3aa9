package extract

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := Parse([]byte(html))
	require.NoError(t, err)
	return doc
}

func styledTable(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="styled-table-new">`)
	b.WriteString("<tr>")
	for _, h := range header {
		fmt.Fprintf(&b, "<th>%s</th>", h)
	}
	b.WriteString("</tr>")
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range r {
			fmt.Fprintf(&b, "<td> %s </td>", c)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

func TestTableSkipsHeaderAndLeadingCell(t *testing.T) {
	header := []string{"No.", "Ticker", "Company", "Price"}
	rows := [][]string{
		{"1", "AAPL", "Apple Inc.", "190.1"},
		{"2", "MSFT", "Microsoft", "410.2"},
		{"3", "NVDA", "NVIDIA", "120.3"},
	}
	doc := mustParse(t, styledTable(header, rows))

	got, err := Table(doc, "table.styled-table-new", Policy{SkipHeader: true, SkipCells: 1})
	require.NoError(t, err)

	want := Grid{
		{"AAPL", "Apple Inc.", "190.1"},
		{"MSFT", "Microsoft", "410.2"},
		{"NVDA", "NVIDIA", "120.3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Table() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableHeaderRowKeptWhenNotSkipped(t *testing.T) {
	html := `<table id="t"><tr><td>x</td><td>Name</td><td>Perf</td></tr><tr><td>1</td><td>Energy</td><td>1.2%</td></tr></table>`
	doc := mustParse(t, html)

	got, err := Table(doc, "#t", Policy{SkipCells: 1})
	require.NoError(t, err)
	assert.Equal(t, Grid{{"Name", "Perf"}, {"Energy", "1.2%"}}, got)
}

func TestTableDropsShortRows(t *testing.T) {
	html := `<table class="body-table">
<tr><td>Ticker</td><td>Owner</td><td>Rel</td><td>Date</td><td>Tx</td></tr>
<tr><td>AAPL</td><td>Cook</td><td>CEO</td><td>Jan 02</td><td>Sale</td></tr>
<tr><td colspan="5">advertisement</td></tr>
<tr><td>MSFT</td><td>Nadella</td></tr>
<tr></tr>
<tr><td>TSLA</td><td>Musk</td><td>CEO</td><td>Jan 03</td><td>Buy</td></tr>
</table>`
	doc := mustParse(t, html)

	var drops []Drop
	got, err := Table(doc, "table.body-table", Policy{
		SkipHeader: true,
		MinCells:   5,
		OnDrop:     func(d Drop) { drops = append(drops, d) },
	})
	require.NoError(t, err)

	assert.Equal(t, Grid{
		{"AAPL", "Cook", "CEO", "Jan 02", "Sale"},
		{"TSLA", "Musk", "CEO", "Jan 03", "Buy"},
	}, got)
	assert.Equal(t, []Drop{{Row: 2, Cells: 1}, {Row: 3, Cells: 2}, {Row: 4, Cells: 0}}, drops)
}

func TestTableDropsRowsLeftEmptyBySkipping(t *testing.T) {
	html := `<table id="t"><tr><td>1</td></tr><tr><td>2</td><td>a</td></tr></table>`
	doc := mustParse(t, html)

	count := 0
	got, err := Table(doc, "#t", Policy{SkipCells: 1, OnDrop: func(Drop) { count++ }})
	require.NoError(t, err)
	assert.Equal(t, Grid{{"a"}}, got)
	assert.Equal(t, 1, count)
}

func TestTableThHeaderIsNotADrop(t *testing.T) {
	html := `<table id="t"><tr><th>No.</th><th>Name</th></tr><tr><td>1</td><td>Energy</td></tr></table>`
	doc := mustParse(t, html)

	var drops []Drop
	got, err := Table(doc, "#t", Policy{SkipCells: 1, OnDrop: func(d Drop) { drops = append(drops, d) }})
	require.NoError(t, err)
	assert.Equal(t, Grid{{"Energy"}}, got)
	assert.Empty(t, drops)
}

func TestTableSplitLink(t *testing.T) {
	html := `<table class="body-table">
<tr><td>h</td><td>h</td></tr>
<tr><td>AAPL</td><td><a href="http://sec.gov/form4/1">Jan 05 04:30 PM</a></td></tr>
<tr><td>MSFT</td><td>Jan 06 05:00 PM</td></tr>
</table>`
	doc := mustParse(t, html)

	got, err := Table(doc, "table.body-table", Policy{SkipHeader: true, SplitLink: true})
	require.NoError(t, err)
	assert.Equal(t, Grid{
		{"AAPL", "Jan 05 04:30 PM", "http://sec.gov/form4/1"},
		{"MSFT", "Jan 06 05:00 PM", ""},
	}, got)
}

func TestTableNotFound(t *testing.T) {
	doc := mustParse(t, `<html><body><p>nothing here</p></body></html>`)

	_, err := Table(doc, "table.styled-table-new", Policy{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTableNotFound))
	assert.Contains(t, err.Error(), "table.styled-table-new")

	_, err = Header(doc, "table.styled-table-new", 0)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableUsesFirstMatch(t *testing.T) {
	html := `<table class="t"><tr><td>first</td></tr></table><table class="t"><tr><td>second</td></tr></table>`
	doc := mustParse(t, html)

	got, err := Table(doc, "table.t", Policy{})
	require.NoError(t, err)
	assert.Equal(t, Grid{{"first"}}, got)
}

func TestHeader(t *testing.T) {
	doc := mustParse(t, styledTable([]string{"No.", "Ticker", " Company "}, nil))

	got, err := Header(doc, "table.styled-table-new", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ticker", "Company"}, got)
}

func TestPairs(t *testing.T) {
	html := `<table class="snapshot-table2">
<tr><td>Index</td><td>DJIA, NDX</td><td>P/E</td><td>29.5</td></tr>
<tr><td>Market Cap</td><td>2.9T</td><td>dangling</td></tr>
</table>`
	doc := mustParse(t, html)

	got := Pairs(doc, "table.snapshot-table2 tr")
	assert.Equal(t, Dict{"Index": "DJIA, NDX", "P/E": "29.5", "Market Cap": "2.9T"}, got)
	assert.Equal(t, []string{"Index", "Market Cap", "P/E"}, got.Keys())
}

func TestProject(t *testing.T) {
	d := Dict{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5", "f": "6", "g": "7"}

	got := Project(d, 3)
	want := Grid{
		{"a", "1", "b", "2", "c", "3"},
		{"d", "4", "e", "5", "f", "6"},
		{"g", "7"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, Grid{{"a", "1"}}, Project(Dict{"a": "1"}, 0))
	assert.Empty(t, Project(Dict{}, 3))
}
