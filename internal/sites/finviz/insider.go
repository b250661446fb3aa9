package finviz

import (
	"fmt"

	"finviz/internal/extract"
	"finviz/internal/output"
	"finviz/internal/param"
	"finviz/internal/request"
)

// Insider is the insider trading page.
type Insider struct {
	Report param.Insider
	OnDrop func(extract.Drop)
}

func (i Insider) Path() string {
	return request.Build("/insidertrading.ashx", request.Raw(i.Report.Token()))
}

// Extract drops rows with fewer than five cells and splits the SEC form cell
// into its date and link.
func (i Insider) Extract(body []byte) ([]output.Table, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	grid, err := extract.Table(doc, insiderTable, extract.Policy{
		SkipHeader: true,
		MinCells:   5,
		SplitLink:  true,
		OnDrop:     i.OnDrop,
	})
	if err != nil {
		return nil, err
	}
	return []output.Table{{Title: "Insider: " + i.Report.String(), Header: clone(insiderHeader), Rows: rows(grid)}}, nil
}

// News is the market news page with its news and blogs listings.
type News struct {
	OnDrop func(extract.Drop)
}

func (News) Path() string { return request.Build("/news.ashx") }

func (n News) Extract(body []byte) ([]output.Table, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	news, blogs, err := extract.News(doc, newsTables, extract.Policy{OnDrop: n.OnDrop})
	if err != nil {
		return nil, err
	}
	return []output.Table{
		{Title: "News", Header: clone(newsHeader), Rows: rows(news)},
		{Title: "Blogs", Header: clone(newsHeader), Rows: rows(blogs)},
	}, nil
}

// Quote is the fundamentals snapshot of one ticker.
type Quote struct {
	Symbol  string
	Columns int // key/value pairs per row, at least 1
}

func (q Quote) Path() string {
	return request.Build("/quote.ashx", request.Param("t", q.Symbol))
}

// Extract returns the snapshot pairs sorted by key, Columns pairs per row.
func (q Quote) Extract(body []byte) ([]output.Table, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	if doc.Find(quoteRows).Length() == 0 {
		return nil, fmt.Errorf("%w: %s", extract.ErrTableNotFound, quoteRows)
	}

	columns := max(q.Columns, 1)
	header := make([]string, 0, columns*2)
	for range columns {
		header = append(header, "Key", "Value")
	}
	grid := extract.Project(extract.Pairs(doc, quoteRows), columns)
	return []output.Table{{Title: q.Symbol, Header: header, Rows: rows(grid)}}, nil
}
