package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Drop describes a row discarded during extraction.
type Drop struct {
	Row   int // index of the row within the table, header included
	Cells int // number of cells the row had after leading cells were skipped
}

// Policy differentiates one page's table shape from another's.
type Policy struct {
	// SkipHeader drops the first row of the table.
	SkipHeader bool
	// SkipCells is the number of leading cells discarded from every row.
	SkipCells int
	// MinCells drops rows with fewer retained cells. Rows left with no cells
	// are always dropped. Dropped rows are not an error.
	MinCells int
	// SplitLink replaces the last cell with its text followed by the href of
	// its first anchor, or "" when it has none.
	SplitLink bool
	// OnDrop, when set, is called for every dropped row.
	OnDrop func(Drop)
}

func (p Policy) drop(d Drop) {
	if p.OnDrop != nil {
		p.OnDrop(d)
	}
}

// Parse builds a document from raw HTML.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return doc, nil
}

// Text returns the flattened, trimmed text of a selection.
func Text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// Table extracts the first table matching selector according to p.
func Table(doc *goquery.Document, selector string, p Policy) (Grid, error) {
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, selector)
	}
	return rows(table, p), nil
}

func rows(table *goquery.Selection, p Policy) Grid {
	grid := Grid{}
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 && p.SkipHeader {
			return
		}

		cells := tr.Find("td")
		// a th-only row is a header, not a malformed row
		if cells.Length() == 0 && tr.Find("th").Length() > 0 {
			return
		}
		if p.SkipCells > 0 {
			cells = cells.Slice(min(p.SkipCells, cells.Length()), goquery.ToEnd)
		}
		n := cells.Length()
		if n < p.MinCells || n == 0 {
			p.drop(Drop{Row: i, Cells: n})
			return
		}

		row := make([]string, 0, n+1)
		cells.Each(func(_ int, td *goquery.Selection) {
			row = append(row, Text(td))
		})
		if p.SplitLink {
			row = append(row, cells.Last().Find("a").First().AttrOr("href", ""))
		}
		grid = append(grid, row)
	})
	return grid
}

// Header returns the cells of the first row of the table matching selector,
// after skipping skipCells leading cells. Header cells may be th or td.
func Header(doc *goquery.Document, selector string, skipCells int) ([]string, error) {
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, selector)
	}
	cells := table.Find("tr").First().Find("th, td")
	if skipCells > 0 {
		cells = cells.Slice(min(skipCells, cells.Length()), goquery.ToEnd)
	}
	header := make([]string, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		header = append(header, Text(c))
	})
	return header, nil
}

// Pairs reads every row matching rowSelector as alternating key and value
// cells. An odd trailing cell is ignored; a repeated key keeps its last value.
func Pairs(doc *goquery.Document, rowSelector string) Dict {
	dict := Dict{}
	doc.Find(rowSelector).Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		for i := 0; i+1 < cells.Length(); i += 2 {
			dict[Text(cells.Eq(i))] = Text(cells.Eq(i + 1))
		}
	})
	return dict
}
