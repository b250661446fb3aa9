package finviz

import (
	"finviz/internal/extract"
	"finviz/internal/output"
	"finviz/internal/param"
	"finviz/internal/request"
)

// Screener is the stock screener results page.
type Screener struct {
	Section   param.Section
	Signal    *param.Signal // nil for no signal filter
	Order     *param.Order  // nil for the site's default order
	Direction param.Direction
	OnDrop    func(extract.Drop)
}

func (s Screener) Path() string {
	parts := []request.Part{request.Param("v", s.Section.Token())}
	if s.Signal != nil {
		parts = append(parts, request.Optional("s", s.Signal.Token()))
	}
	if s.Order != nil {
		parts = append(parts, request.Optional("o", s.Direction.Token()+s.Order.Token()))
	}
	return request.Build("/screener.ashx", parts...)
}

// Extract returns the results with the page's own column header.
func (s Screener) Extract(body []byte) ([]output.Table, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	header, err := extract.Header(doc, dataTable, 1)
	if err != nil {
		return nil, err
	}
	grid, err := extract.Table(doc, dataTable, extract.Policy{SkipHeader: true, SkipCells: 1, OnDrop: s.OnDrop})
	if err != nil {
		return nil, err
	}

	title := "Screener: " + s.Section.String()
	if s.Signal != nil {
		title += " (" + s.Signal.String() + ")"
	}
	return []output.Table{{Title: title, Header: header, Rows: rows(grid)}}, nil
}

// Crypto is the crypto currency performance page.
type Crypto struct {
	OnDrop func(extract.Drop)
}

func (Crypto) Path() string { return request.Build("/crypto_performance.ashx") }

func (c Crypto) Extract(body []byte) ([]output.Table, error) {
	return styledTable(body, "Crypto", clone(performanceHeader), c.OnDrop)
}

// Forex is the currency pair performance page.
type Forex struct {
	View   param.ForexView
	OnDrop func(extract.Drop)
}

func (f Forex) Path() string {
	return request.Build("/forex_performance.ashx", request.Raw(f.View.Token()))
}

func (f Forex) Extract(body []byte) ([]output.Table, error) {
	return styledTable(body, "Forex ("+f.View.String()+")", clone(performanceHeader), f.OnDrop)
}

// Futures is the futures performance page. Its data is a JSON array embedded
// in a script rather than an HTML table.
type Futures struct {
	Frame param.FuturesFrame
}

func (f Futures) Path() string {
	return request.Build("/futures_performance.ashx", request.Optional("v", f.Frame.Token()))
}

func (f Futures) Extract(body []byte) ([]output.Table, error) {
	grid, err := extract.EmbeddedJSON(string(body), futuresStart, futuresEnd, futuresHeader)
	if err != nil {
		return nil, err
	}
	return []output.Table{{Title: "Futures (" + f.Frame.String() + ")", Header: clone(futuresHeader), Rows: rows(grid)}}, nil
}
