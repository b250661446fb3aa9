package finviz

import (
	"slices"

	"finviz/internal/extract"
	"finviz/internal/output"
	"finviz/internal/param"
	"finviz/internal/request"
)

// Group is the sector/industry/country rollup page.
type Group struct {
	By        param.GroupBy
	Type      param.GroupType
	Order     param.GroupOrder
	Direction param.Direction
	OnDrop    func(extract.Drop)
}

func (g Group) Path() string {
	return request.Build("/groups.ashx",
		request.Param("g", g.By.Token()),
		request.Optional("sg", g.By.Sub()),
		request.Param("v", g.Type.Token()),
		request.Param("o", g.Direction.Token()+g.Order.Token()),
	)
}

// Extract keeps the header row as the first row of the table. When the
// header is made of th cells it holds no td and is read separately instead.
func (g Group) Extract(body []byte) ([]output.Table, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	grid, err := extract.Table(doc, dataTable, extract.Policy{SkipCells: 1, OnDrop: g.OnDrop})
	if err != nil {
		return nil, err
	}

	header, err := extract.Header(doc, dataTable, 1)
	if err != nil {
		return nil, err
	}
	if len(grid) > 0 && slices.Equal(grid[0], header) {
		header = nil
	}

	title := "Groups: " + g.By.String() + " (" + g.Type.String() + ")"
	return []output.Table{{Title: title, Header: header, Rows: rows(grid)}}, nil
}
