package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// feed proxy hrefs carry the publisher one path segment further down
const feedProxy = "feedproxy.google.com"

// Source derives the publisher of a news link from its '/'-separated
// segments: the fifth for feed proxy links, otherwise the third (the host of an
// absolute URL). It returns "" when the segment does not exist.
func Source(href string) string {
	idx := 2
	if strings.Contains(href, feedProxy) {
		idx = 4
	}
	segments := strings.Split(href, "/")
	if idx >= len(segments) {
		return ""
	}
	return segments[idx]
}

// News extracts the news and blog listings from the first element matching
// container, which holds the two listing tables in that order.
// Rows are shaped [time, title, source, link].
func News(doc *goquery.Document, container string, p Policy) (news, blogs Grid, err error) {
	root := doc.Find(container).First()
	if root.Length() == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrTableNotFound, container)
	}
	tables := root.Find("table")
	if tables.Length() < 2 {
		return nil, nil, fmt.Errorf("%w: %s has %d tables, expected 2", ErrMissingSubTable, container, tables.Length())
	}
	return newsRows(tables.Eq(0), p), newsRows(tables.Eq(1), p), nil
}

func newsRows(table *goquery.Selection, p Policy) Grid {
	grid := Grid{}
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			p.drop(Drop{Row: i, Cells: cells.Length()})
			return
		}
		link := cells.Eq(2).Find("a").First()
		if link.Length() == 0 {
			p.drop(Drop{Row: i, Cells: cells.Length()})
			return
		}
		href := link.AttrOr("href", "")
		grid = append(grid, []string{Text(cells.Eq(1)), Text(link), Source(href), href})
	})
	return grid
}
