// Package finviz implements the finviz.com pages: how each one is requested
// and how its tables are read.
package finviz

import (
	"finviz/internal/extract"
	"finviz/internal/output"

	"go.uber.org/zap"
)

// Endpoint is one finviz page with its request options already chosen.
type Endpoint interface {
	// Path returns the request path and query, relative to the site root.
	Path() string
	// Extract reads the page's tables from a fetched body.
	Extract(body []byte) ([]output.Table, error)
}

const (
	dataTable    = "table.styled-table-new"
	insiderTable = "table.body-table"
	newsTables   = "#news table"
	quoteRows    = "table.snapshot-table2 tr"

	futuresStart = "var rows = "
	futuresEnd   = "FinvizInitFuturesPerformance(rows);"
)

var (
	performanceHeader = []string{"Ticker", "Price", "Perf 5Min", "Perf Hour", "Perf Day", "Perf Week", "Perf Month", "Perf Quart", "Perf Half", "Perf Year", "Perf YTD"}
	futuresHeader     = []string{"ticker", "label", "group", "perf"}
	insiderHeader     = []string{"Ticker", "Owner", "Relationship", "Date", "Transaction", "Cost ", "#Shares", "Value ($)", "#Shares Total", "SEC Form 4", "SEC Form 4 Link"}
	newsHeader        = []string{"Time", "Title", "Source", "Link"}
)

// Stats counts what extraction silently discarded.
type Stats struct {
	Dropped int
}

// Observe returns a drop hook that counts into s and logs each drop at debug
// level. logger may be nil.
func (s *Stats) Observe(logger *zap.Logger, endpoint string) func(extract.Drop) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(d extract.Drop) {
		s.Dropped++
		logger.Debug("row dropped",
			zap.String("endpoint", endpoint),
			zap.Int("row", d.Row),
			zap.Int("cells", d.Cells),
		)
	}
}

func rows(g extract.Grid) [][]string {
	if g == nil {
		return [][]string{}
	}
	return g
}

func clone(header []string) []string {
	return append([]string(nil), header...)
}

// styledTable reads the common results table: header row and the leading
// row number cell skipped.
func styledTable(body []byte, title string, header []string, onDrop func(extract.Drop)) ([]output.Table, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	grid, err := extract.Table(doc, dataTable, extract.Policy{SkipHeader: true, SkipCells: 1, OnDrop: onDrop})
	if err != nil {
		return nil, err
	}
	return []output.Table{{Title: title, Header: header, Rows: rows(grid)}}, nil
}
