package finviz

import (
	"fmt"
	"strconv"
	"strings"

	"finviz/internal/extract"
	"finviz/internal/param"
)

// Keys of scraper.Options.Extra read by the endpoints.
const (
	KeyView      = "view"
	KeySignal    = "signal"
	KeyOrder     = "order"
	KeyDesc      = "desc"
	KeyGroup     = "group"
	KeyGroupType = "group-type"
	KeyTimeframe = "timeframe"
	KeyForex     = "forex"
	KeyInsider   = "insider"
	KeyOwner     = "owner"
	KeyChart     = "chart"
	KeyColumns   = "columns"
)

type options map[string]string

func (o options) get(key, def string) string {
	if v := strings.TrimSpace(o[key]); v != "" {
		return v
	}
	return def
}

func (o options) direction() (param.Direction, error) {
	desc := o.get(KeyDesc, "false")
	b, err := strconv.ParseBool(desc)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", KeyDesc, desc)
	}
	if b {
		return param.Descending, nil
	}
	return param.Ascending, nil
}

// NewEndpoint builds the named table endpoint from its options. symbol is
// required by quote and ignored elsewhere. onDrop may be nil.
func NewEndpoint(name, symbol string, extra map[string]string, onDrop func(extract.Drop)) (Endpoint, error) {
	o := options(extra)

	switch name {
	case "screener":
		return newScreener(o, onDrop)
	case "crypto":
		return Crypto{OnDrop: onDrop}, nil
	case "forex":
		view, err := param.ParseForexView(o.get(KeyForex, "percent"))
		if err != nil {
			return nil, err
		}
		return Forex{View: view, OnDrop: onDrop}, nil
	case "futures":
		frame, err := param.ParseFuturesFrame(o.get(KeyTimeframe, "daily"))
		if err != nil {
			return nil, err
		}
		return Futures{Frame: frame}, nil
	case "groups":
		return newGroup(o, onDrop)
	case "insider":
		return newInsider(o, onDrop)
	case "news":
		return News{OnDrop: onDrop}, nil
	case "quote":
		if symbol == "" {
			return nil, fmt.Errorf("symbol is required for quote")
		}
		columns, err := strconv.Atoi(o.get(KeyColumns, "1"))
		if err != nil || columns < 1 {
			return nil, fmt.Errorf("invalid %s: %q", KeyColumns, o[KeyColumns])
		}
		return Quote{Symbol: symbol, Columns: columns}, nil
	default:
		return nil, fmt.Errorf("unknown endpoint: %s", name)
	}
}

func newScreener(o options, onDrop func(extract.Drop)) (Screener, error) {
	section, err := param.ParseSection(o.get(KeyView, "overview"))
	if err != nil {
		return Screener{}, err
	}
	dir, err := o.direction()
	if err != nil {
		return Screener{}, err
	}
	s := Screener{Section: section, Direction: dir, OnDrop: onDrop}

	if name := o.get(KeySignal, ""); name != "" {
		signal, err := param.ParseSignal(name)
		if err != nil {
			return Screener{}, err
		}
		s.Signal = &signal
	}
	if name := o.get(KeyOrder, ""); name != "" {
		order, err := param.ParseOrder(name)
		if err != nil {
			return Screener{}, err
		}
		s.Order = &order
	}
	return s, nil
}

func newGroup(o options, onDrop func(extract.Drop)) (Group, error) {
	by, err := param.ParseGroupBy(o.get(KeyGroup, "sector"))
	if err != nil {
		return Group{}, err
	}
	typ, err := param.ParseGroupType(o.get(KeyGroupType, "overview"))
	if err != nil {
		return Group{}, err
	}
	order, err := param.ParseGroupOrder(o.get(KeyOrder, "name"))
	if err != nil {
		return Group{}, err
	}
	dir, err := o.direction()
	if err != nil {
		return Group{}, err
	}
	return Group{By: by, Type: typ, Order: order, Direction: dir, OnDrop: onDrop}, nil
}

func newInsider(o options, onDrop func(extract.Drop)) (Insider, error) {
	kind, err := param.ParseInsiderKind(o.get(KeyInsider, "latest"))
	if err != nil {
		return Insider{}, err
	}
	owner := o.get(KeyOwner, "")
	if kind == param.InsiderNumeric && owner == "" {
		return Insider{}, fmt.Errorf("%s is required for the numeric insider report", KeyOwner)
	}
	return Insider{Report: param.Insider{Kind: kind, Owner: owner}, OnDrop: onDrop}, nil
}

// NewChart builds the chart download of symbol from its options.
func NewChart(symbol string, extra map[string]string) (Chart, error) {
	if symbol == "" {
		return Chart{}, fmt.Errorf("symbol is required for chart")
	}
	if strings.ContainsAny(symbol, `/\`) {
		return Chart{}, fmt.Errorf("invalid symbol: %q", symbol)
	}
	o := options(extra)
	style, err := param.ParseChartStyle(o.get(KeyChart, "candle"))
	if err != nil {
		return Chart{}, err
	}
	frame, err := param.ParseChartFrame(o.get(KeyTimeframe, "daily"))
	if err != nil {
		return Chart{}, err
	}
	return Chart{Symbol: symbol, Style: style, Frame: frame}, nil
}
