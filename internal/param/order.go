package param

// Direction is the sort direction, serialized as a prefix of the sort field.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

var directions = []Option{
	Ascending:  {"asc", "", "Ascending"},
	Descending: {"desc", "-", "Descending"},
}

func (d Direction) Token() string  { return directions[d].Token }
func (d Direction) String() string { return directions[d].Label }

func ParseDirection(name string) (Direction, error) {
	return parse[Direction]("direction", directions, name)
}
func AllDirections() []Direction { return all[Direction](directions) }

// Order is a screener sort field.
type Order int

const (
	OrderTicker Order = iota
	OrderCompany
	OrderSector
	OrderIndustry
	OrderCountry
	OrderMarketCap
	OrderPriceEarnings
	OrderForwardPriceEarnings
	OrderPEG
	OrderPriceSales
	OrderPriceBook
	OrderPriceCash
	OrderPriceFreeCashFlow
	OrderDividendYield
	OrderPayoutRatio
	OrderEPS
	OrderEPSGrowthThisYear
	OrderEPSGrowthNextYear
	OrderEPSGrowthPast5Years
	OrderEPSGrowthNext5Years
	OrderSalesGrowthPast5Years
	OrderEPSGrowthQtrOverQtr
	OrderSalesGrowthQtrOverQtr
	OrderSharesOutstanding
	OrderSharesFloat
	OrderInsiderOwnership
	OrderInsiderTransactions
	OrderInstitutionalOwnership
	OrderInstitutionalTransactions
	OrderShortInterestShare
	OrderShortInterestRatio
	OrderEarningsDate
	OrderReturnOnAssets
	OrderReturnOnEquity
	OrderReturnOnInvestment
	OrderCurrentRatio
	OrderQuickRatio
	OrderLTDebtEquity
	OrderTotalDebtEquity
	OrderGrossMargin
	OrderOperatingMargin
	OrderNetProfitMargin
	OrderAnalystRecommendation
	OrderPerformanceWeek
	OrderPerformanceMonth
	OrderPerformanceQuarter
	OrderPerformanceHalfYear
	OrderPerformanceYear
	OrderPerformanceYearToDate
	OrderBeta
	OrderAverageTrueRange
	OrderVolatilityWeek
	OrderVolatilityMonth
	OrderSMA20
	OrderSMA50
	OrderSMA200
	OrderHigh50Day
	OrderLow50Day
	OrderHigh52Week
	OrderLow52Week
	OrderRelativeStrengthIndex
	OrderAverageVolume3Month
	OrderRelativeVolume
	OrderChange
	OrderChangeFromOpen
	OrderGap
	OrderVolume
	OrderPrice
	OrderTargetPrice
	OrderIPODate
)

var orders = []Option{
	OrderTicker:                    {"ticker", "ticker", "Ticker"},
	OrderCompany:                   {"company", "company", "Company"},
	OrderSector:                    {"sector", "sector", "Sector"},
	OrderIndustry:                  {"industry", "industry", "Industry"},
	OrderCountry:                   {"country", "country", "Country"},
	OrderMarketCap:                 {"marketcap", "marketcap", "Market Cap"},
	OrderPriceEarnings:             {"pe", "pe", "P/E"},
	OrderForwardPriceEarnings:      {"forwardpe", "forwardpe", "Forward P/E"},
	OrderPEG:                       {"peg", "peg", "PEG"},
	OrderPriceSales:                {"ps", "ps", "P/S"},
	OrderPriceBook:                 {"pb", "pb", "P/B"},
	OrderPriceCash:                 {"pc", "pc", "P/Cash"},
	OrderPriceFreeCashFlow:         {"pfcf", "pfcf", "P/Free Cash Flow"},
	OrderDividendYield:             {"dividendyield", "dividendyield", "Dividend Yield"},
	OrderPayoutRatio:               {"payoutratio", "payoutratio", "Payout Ratio"},
	OrderEPS:                       {"eps", "eps", "EPS"},
	OrderEPSGrowthThisYear:         {"eps-this-year", "epsyoy", "EPS Growth This Year"},
	OrderEPSGrowthNextYear:         {"eps-next-year", "epsyoy1", "EPS Growth Next Year"},
	OrderEPSGrowthPast5Years:       {"eps-past-5y", "eps5years", "EPS Growth Past 5 Years"},
	OrderEPSGrowthNext5Years:       {"eps-next-5y", "estltgrowth", "EPS Growth Next 5 Years"},
	OrderSalesGrowthPast5Years:     {"sales-past-5y", "sales5years", "Sales Growth Past 5 Years"},
	OrderEPSGrowthQtrOverQtr:       {"eps-qoq", "epsqoq", "EPS Growth Qtr Over Qtr"},
	OrderSalesGrowthQtrOverQtr:     {"sales-qoq", "salesqoq", "Sales Growth Qtr Over Qtr"},
	OrderSharesOutstanding:         {"shares-outstanding", "sharesoutstanding2", "Shares Outstanding"},
	OrderSharesFloat:               {"shares-float", "sharesfloat", "Shares Float"},
	OrderInsiderOwnership:          {"insider-own", "insiderown", "Insider Ownership"},
	OrderInsiderTransactions:       {"insider-trans", "insidertrans", "Insider Transactions"},
	OrderInstitutionalOwnership:    {"inst-own", "instown", "Institutional Ownership"},
	OrderInstitutionalTransactions: {"inst-trans", "insttrans", "Institutional Transactions"},
	OrderShortInterestShare:        {"short-float", "shortinterestshare", "Short Interest Share"},
	OrderShortInterestRatio:        {"short-ratio", "shortinterestratio", "Short Interest Ratio"},
	OrderEarningsDate:              {"earnings-date", "earningsdate", "Earnings Date"},
	OrderReturnOnAssets:            {"roa", "roa", "Return on Assets"},
	OrderReturnOnEquity:            {"roe", "roe", "Return on Equity"},
	OrderReturnOnInvestment:        {"roi", "roi", "Return on Investment"},
	OrderCurrentRatio:              {"current-ratio", "curratio", "Current Ratio"},
	OrderQuickRatio:                {"quick-ratio", "quickratio", "Quick Ratio"},
	OrderLTDebtEquity:              {"lt-debt-eq", "ltdebteq", "LT Debt/Equity"},
	OrderTotalDebtEquity:           {"debt-eq", "debteq", "Total Debt/Equity"},
	OrderGrossMargin:               {"gross-margin", "grossmargin", "Gross Margin"},
	OrderOperatingMargin:           {"oper-margin", "opermargin", "Operating Margin"},
	OrderNetProfitMargin:           {"net-margin", "netmargin", "Net Profit Margin"},
	OrderAnalystRecommendation:     {"recom", "recom", "Analyst Recommendation"},
	OrderPerformanceWeek:           {"perf-week", "perf1w", "Performance (Week)"},
	OrderPerformanceMonth:          {"perf-month", "perf4w", "Performance (Month)"},
	OrderPerformanceQuarter:        {"perf-quarter", "perf13w", "Performance (Quarter)"},
	OrderPerformanceHalfYear:       {"perf-half", "perf26w", "Performance (Half Year)"},
	OrderPerformanceYear:           {"perf-year", "perf52w", "Performance (Year)"},
	OrderPerformanceYearToDate:     {"perf-ytd", "perfytd", "Performance (Year To Date)"},
	OrderBeta:                      {"beta", "beta", "Beta"},
	OrderAverageTrueRange:          {"atr", "averagetruerange", "Average True Range"},
	OrderVolatilityWeek:            {"volatility-week", "volatility1w", "Volatility (Week)"},
	OrderVolatilityMonth:           {"volatility-month", "volatility4w", "Volatility (Month)"},
	OrderSMA20:                     {"sma20", "sma20", "20-Day Simple Moving Average"},
	OrderSMA50:                     {"sma50", "sma50", "50-Day Simple Moving Average"},
	OrderSMA200:                    {"sma200", "sma200", "200-Day Simple Moving Average"},
	OrderHigh50Day:                 {"high-50d", "high50d", "50-Day High"},
	OrderLow50Day:                  {"low-50d", "low50d", "50-Day Low"},
	OrderHigh52Week:                {"high-52w", "high52w", "52-Week High"},
	OrderLow52Week:                 {"low-52w", "low52w", "52-Week Low"},
	OrderRelativeStrengthIndex:     {"rsi", "rsi", "Relative Strength Index (14)"},
	OrderAverageVolume3Month:       {"avg-volume", "averagevolume", "Average Volume (3 Month)"},
	OrderRelativeVolume:            {"rel-volume", "relativevolume", "Relative Volume"},
	OrderChange:                    {"change", "change", "Change"},
	OrderChangeFromOpen:            {"change-open", "changeopen", "Change from Open"},
	OrderGap:                       {"gap", "gap", "Gap"},
	OrderVolume:                    {"volume", "volume", "Volume"},
	OrderPrice:                     {"price", "price", "Price"},
	OrderTargetPrice:               {"target-price", "targetprice", "Target Price"},
	OrderIPODate:                   {"ipo-date", "ipodate", "IPO Date"},
}

func (o Order) Token() string  { return orders[o].Token }
func (o Order) String() string { return orders[o].Label }

func ParseOrder(name string) (Order, error) { return parse[Order]("order", orders, name) }
func AllOrders() []Order                    { return all[Order](orders) }

// GroupOrder is a sort field of the group rollup pages.
type GroupOrder int

const (
	GroupOrderName GroupOrder = iota
	GroupOrderMarketCap
	GroupOrderPriceEarnings
	GroupOrderForwardPriceEarnings
	GroupOrderPEG
	GroupOrderPriceSales
	GroupOrderPriceBook
	GroupOrderPriceCash
	GroupOrderPriceFreeCashFlow
	GroupOrderDividendYield
	GroupOrderEPSGrowthPast5Years
	GroupOrderEPSGrowthNext5Years
	GroupOrderSalesGrowthPast5Years
	GroupOrderShortInterestShare
	GroupOrderAnalystRecommendation
	GroupOrderPerformanceWeek
	GroupOrderPerformanceMonth
	GroupOrderPerformanceQuarter
	GroupOrderPerformanceHalfYear
	GroupOrderPerformanceYear
	GroupOrderPerformanceYearToDate
	GroupOrderAverageVolume3Month
	GroupOrderRelativeVolume
	GroupOrderChange
	GroupOrderVolume
	GroupOrderNumberOfStocks
)

var groupOrders = []Option{
	GroupOrderName:                  {"name", "name", "Name"},
	GroupOrderMarketCap:             {"marketcap", "marketcap", "Market Cap"},
	GroupOrderPriceEarnings:         {"pe", "pe", "P/E"},
	GroupOrderForwardPriceEarnings:  {"forwardpe", "forwardpe", "Forward P/E"},
	GroupOrderPEG:                   {"peg", "peg", "PEG"},
	GroupOrderPriceSales:            {"ps", "ps", "P/S"},
	GroupOrderPriceBook:             {"pb", "pb", "P/B"},
	GroupOrderPriceCash:             {"pc", "pc", "P/Cash"},
	GroupOrderPriceFreeCashFlow:     {"pfcf", "pfcf", "P/Free Cash Flow"},
	GroupOrderDividendYield:         {"dividendyield", "dividendyield", "Dividend Yield"},
	GroupOrderEPSGrowthPast5Years:   {"eps-past-5y", "eps5years", "EPS Growth Past 5 Years"},
	GroupOrderEPSGrowthNext5Years:   {"eps-next-5y", "estltgrowth", "EPS Growth Next 5 Years"},
	GroupOrderSalesGrowthPast5Years: {"sales-past-5y", "sales5years", "Sales Growth Past 5 Years"},
	GroupOrderShortInterestShare:    {"short-float", "shortinterestshare", "Short Interest Share"},
	GroupOrderAnalystRecommendation: {"recom", "recom", "Analyst Recommendation"},
	GroupOrderPerformanceWeek:       {"perf-week", "perf1w", "Performance (Week)"},
	GroupOrderPerformanceMonth:      {"perf-month", "perf4w", "Performance (Month)"},
	GroupOrderPerformanceQuarter:    {"perf-quarter", "perf13w", "Performance (Quarter)"},
	GroupOrderPerformanceHalfYear:   {"perf-half", "perf26w", "Performance (Half Year)"},
	GroupOrderPerformanceYear:       {"perf-year", "perf52w", "Performance (Year)"},
	GroupOrderPerformanceYearToDate: {"perf-ytd", "perfytd", "Performance (Year To Date)"},
	GroupOrderAverageVolume3Month:   {"avg-volume", "averagevolume", "Average Volume (3 Month)"},
	GroupOrderRelativeVolume:        {"rel-volume", "relativevolume", "Relative Volume"},
	GroupOrderChange:                {"change", "change", "Change"},
	GroupOrderVolume:                {"volume", "volume", "Volume"},
	GroupOrderNumberOfStocks:        {"stocks", "count", "Number of Stocks"},
}

func (o GroupOrder) Token() string  { return groupOrders[o].Token }
func (o GroupOrder) String() string { return groupOrders[o].Label }

func ParseGroupOrder(name string) (GroupOrder, error) {
	return parse[GroupOrder]("group order", groupOrders, name)
}
func AllGroupOrders() []GroupOrder { return all[GroupOrder](groupOrders) }
