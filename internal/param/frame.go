package param

// FuturesFrame is the time frame of the futures performance page ("v").
// The daily frame is the page default and sends no parameter.
type FuturesFrame int

const (
	FuturesDaily FuturesFrame = iota
	FuturesWeekly
	FuturesMonthly
	FuturesQuarter
	FuturesHalfYear
	FuturesYear
)

var futuresFrames = []Option{
	FuturesDaily:    {"daily", "", "Daily"},
	FuturesWeekly:   {"weekly", "12", "Weekly"},
	FuturesMonthly:  {"monthly", "13", "Monthly"},
	FuturesQuarter:  {"quarter", "14", "Quarter"},
	FuturesHalfYear: {"halfyear", "15", "Half Year"},
	FuturesYear:     {"year", "16", "Year"},
}

func (f FuturesFrame) Token() string  { return futuresFrames[f].Token }
func (f FuturesFrame) String() string { return futuresFrames[f].Label }

func ParseFuturesFrame(name string) (FuturesFrame, error) {
	return parse[FuturesFrame]("futures time frame", futuresFrames, name)
}
func AllFuturesFrames() []FuturesFrame { return all[FuturesFrame](futuresFrames) }

// ChartFrame is the period of a ticker chart image ("p").
type ChartFrame int

const (
	ChartDaily ChartFrame = iota
	ChartWeekly
	ChartMonthly
)

var chartFrames = []Option{
	ChartDaily:   {"daily", "d", "Daily"},
	ChartWeekly:  {"weekly", "w", "Weekly"},
	ChartMonthly: {"monthly", "m", "Monthly"},
}

func (f ChartFrame) Token() string  { return chartFrames[f].Token }
func (f ChartFrame) String() string { return chartFrames[f].Label }

func ParseChartFrame(name string) (ChartFrame, error) {
	return parse[ChartFrame]("chart time frame", chartFrames, name)
}
func AllChartFrames() []ChartFrame { return all[ChartFrame](chartFrames) }

// ChartStyle is the kind of ticker chart image.
type ChartStyle int

const (
	ChartCandle ChartStyle = iota
	ChartLine
	ChartAdvanced
)

var chartStyles = []Option{
	ChartCandle:   {"candle", "c", "Candle"},
	ChartLine:     {"line", "l", "Line"},
	ChartAdvanced: {"advanced", "c", "Advanced"},
}

func (s ChartStyle) String() string { return chartStyles[s].Label }

// Tokens resolves the style into the chart type ("ty") and technical
// analysis overlay ("ta") tokens. Only the advanced daily chart carries the overlay.
func (s ChartStyle) Tokens(frame ChartFrame) (ty, ta string) {
	ta = "0"
	if s == ChartAdvanced && frame == ChartDaily {
		ta = "1"
	}
	return chartStyles[s].Token, ta
}

func ParseChartStyle(name string) (ChartStyle, error) {
	return parse[ChartStyle]("chart style", chartStyles, name)
}
func AllChartStyles() []ChartStyle { return all[ChartStyle](chartStyles) }

// ForexView is the unit of the forex performance page.
type ForexView int

const (
	ForexPercent ForexView = iota
	ForexPIPS
)

var forexViews = []Option{
	ForexPercent: {"percent", "", "Percent"},
	ForexPIPS:    {"pips", "v=1&tv=2&o=-perfdaypct", "PIPS"},
}

// Token is a literal query block, not a single value.
func (v ForexView) Token() string  { return forexViews[v].Token }
func (v ForexView) String() string { return forexViews[v].Label }

func ParseForexView(name string) (ForexView, error) {
	return parse[ForexView]("forex view", forexViews, name)
}
func AllForexViews() []ForexView { return all[ForexView](forexViews) }
