package finviz

import (
	"testing"

	"finviz/internal/extract"
	"finviz/internal/output"
	"finviz/internal/param"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		e    interface{ Path() string }
		want string
	}{
		{"screener", Screener{Section: param.SectionOverview, Signal: ptr(param.SignalDoubleBottom), Order: ptr(param.OrderTicker)}, "/screener.ashx?v=111&s=ta_p_doublebottom&o=ticker"},
		{"screener desc", Screener{Section: param.SectionValuation, Order: ptr(param.OrderTicker), Direction: param.Descending}, "/screener.ashx?v=121&o=-ticker"},
		{"screener bare", Screener{Section: param.SectionTechnical}, "/screener.ashx?v=171"},
		{"crypto", Crypto{}, "/crypto_performance.ashx"},
		{"forex percent", Forex{View: param.ForexPercent}, "/forex_performance.ashx"},
		{"forex pips", Forex{View: param.ForexPIPS}, "/forex_performance.ashx?v=1&tv=2&o=-perfdaypct"},
		{"futures daily", Futures{Frame: param.FuturesDaily}, "/futures_performance.ashx"},
		{"futures year", Futures{Frame: param.FuturesYear}, "/futures_performance.ashx?v=16"},
		{"group", Group{By: param.GroupIndustry, Type: param.GroupValuation, Order: param.GroupOrderPerformanceWeek}, "/groups.ashx?g=industry&v=120&o=perf1w"},
		{"group desc", Group{By: param.GroupSector, Type: param.GroupPerformance, Order: param.GroupOrderName, Direction: param.Descending}, "/groups.ashx?g=sector&v=140&o=-name"},
		{"group sub", Group{By: param.GroupIndustryEnergy, Order: param.GroupOrderName}, "/groups.ashx?g=industry&sg=energy&v=110&o=name"},
		{"insider latest", Insider{Report: param.Insider{Kind: param.InsiderLatest}}, "/insidertrading.ashx"},
		{"insider buys", Insider{Report: param.Insider{Kind: param.InsiderLatestBuys}}, "/insidertrading.ashx?tc=1"},
		{"insider numeric", Insider{Report: param.Insider{Kind: param.InsiderNumeric, Owner: "1234"}}, "/insidertrading.ashx?oc=1234&tc=7"},
		{"news", News{}, "/news.ashx"},
		{"quote", Quote{Symbol: "AAPL"}, "/quote.ashx?t=AAPL"},
		{"chart line", Chart{Symbol: "MSFT", Style: param.ChartLine, Frame: param.ChartWeekly}, "/chart.ashx?t=MSFT&ty=l&ta=0&p=w"},
		{"chart advanced daily", Chart{Symbol: "MSFT", Style: param.ChartAdvanced, Frame: param.ChartDaily}, "/chart.ashx?t=MSFT&ty=c&ta=1&p=d"},
		{"chart advanced monthly", Chart{Symbol: "MSFT", Style: param.ChartAdvanced, Frame: param.ChartMonthly}, "/chart.ashx?t=MSFT&ty=c&ta=0&p=m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.Path())
		})
	}
}

const screenerPage = `<html><body>
<table class="styled-table-new">
<tr><th>No.</th><th>Ticker</th><th>Company</th><th>Price</th></tr>
<tr><td>1</td><td>A</td><td>Agilent</td><td>130.1</td></tr>
<tr><td>2</td><td>AA</td><td>Alcoa</td><td>40.5</td></tr>
<tr></tr>
</table></body></html>`

func TestScreenerExtract(t *testing.T) {
	dropped := 0
	s := Screener{Section: param.SectionOverview, Signal: ptr(param.SignalDoubleBottom), OnDrop: func(extract.Drop) { dropped++ }}

	got, err := s.Extract([]byte(screenerPage))
	require.NoError(t, err)

	want := []output.Table{{
		Title:  "Screener: Overview (Double Bottom)",
		Header: []string{"Ticker", "Company", "Price"},
		Rows:   [][]string{{"A", "Agilent", "130.1"}, {"AA", "Alcoa", "40.5"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, dropped)
}

func TestCryptoExtractUsesDefaultHeader(t *testing.T) {
	got, err := Crypto{}.Extract([]byte(`<table class="styled-table-new">
<tr><td>No.</td><td>Ticker</td></tr>
<tr><td>1</td><td>BTCUSD</td><td>67000</td><td>0.1%</td></tr>
</table>`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, performanceHeader, got[0].Header)
	assert.Equal(t, [][]string{{"BTCUSD", "67000", "0.1%"}}, got[0].Rows)

	got[0].Header[0] = "changed"
	assert.Equal(t, "Ticker", performanceHeader[0])
}

func TestForexExtractTableNotFound(t *testing.T) {
	_, err := Forex{View: param.ForexPIPS}.Extract([]byte(`<html><body>maintenance</body></html>`))
	assert.ErrorIs(t, err, extract.ErrTableNotFound)
}

func TestFuturesExtract(t *testing.T) {
	body := `<script>var rows = [{"ticker":"ES","label":"E-mini S&P","group":"Index","perf":1.23}];
FinvizInitFuturesPerformance(rows);</script>`

	got, err := Futures{Frame: param.FuturesWeekly}.Extract([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, []output.Table{{
		Title:  "Futures (Weekly)",
		Header: []string{"ticker", "label", "group", "perf"},
		Rows:   [][]string{{"ES", "E-mini S&P", "Index", "1.23"}},
	}}, got)

	_, err = Futures{}.Extract([]byte(`var rows = [];`))
	assert.ErrorIs(t, err, extract.ErrMarkerNotFound)
}

func TestGroupExtractKeepsHeaderRow(t *testing.T) {
	body := `<table class="styled-table-new">
<tr><td>No.</td><td>Name</td><td>Perf Week</td></tr>
<tr><td>1</td><td>Energy</td><td>2.1%</td></tr>
</table>`

	got, err := Group{By: param.GroupSector}.Extract([]byte(body))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Header)
	assert.Equal(t, [][]string{{"Name", "Perf Week"}, {"Energy", "2.1%"}}, got[0].Rows)
}

func TestGroupExtractThHeader(t *testing.T) {
	body := `<table class="styled-table-new">
<tr><th>No.</th><th>Name</th><th>Perf Week</th></tr>
<tr><td>1</td><td>Energy</td><td>2.1%</td></tr>
</table>`

	var drops []extract.Drop
	got, err := Group{By: param.GroupSector, OnDrop: func(d extract.Drop) { drops = append(drops, d) }}.Extract([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Perf Week"}, got[0].Header)
	assert.Equal(t, [][]string{{"Energy", "2.1%"}}, got[0].Rows)
	assert.Empty(t, drops)
}

func TestInsiderExtract(t *testing.T) {
	body := `<table class="body-table">
<tr><td>Ticker</td><td>Owner</td><td>Relationship</td><td>Date</td><td>Transaction</td><td>Cost</td><td>#Shares</td><td>Value ($)</td><td>#Shares Total</td><td>SEC Form 4</td></tr>
<tr><td>AAPL</td><td>COOK TIMOTHY</td><td>CEO</td><td>Oct 01</td><td>Sale</td><td>226.2</td><td>100</td><td>22,620</td><td>3,000</td><td><a href="http://www.sec.gov/x.xml">Oct 03 06:30 PM</a></td></tr>
<tr><td colspan="10">more</td></tr>
</table>`

	got, err := Insider{Report: param.Insider{Kind: param.InsiderLatest}}.Extract([]byte(body))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Insider: Latest", got[0].Title)
	require.Len(t, got[0].Rows, 1)
	row := got[0].Rows[0]
	assert.Len(t, row, len(insiderHeader))
	assert.Equal(t, []string{"Oct 03 06:30 PM", "http://www.sec.gov/x.xml"}, row[len(row)-2:])
}

func TestNewsExtract(t *testing.T) {
	body := `<div id="news"><table><tr>
<td><table><tr><td></td><td>09:00AM</td><td><a href="https://www.cnbc.com/a">A</a></td></tr></table></td>
<td><table><tr><td></td><td>Oct-17</td><td><a href="http://feedproxy.google.com/~r/blog/~3/b">B</a></td></tr></table></td>
</tr></table></div>`

	got, err := News{}.Extract([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, []output.Table{
		{Title: "News", Header: newsHeader, Rows: [][]string{{"09:00AM", "A", "www.cnbc.com", "https://www.cnbc.com/a"}}},
		{Title: "Blogs", Header: newsHeader, Rows: [][]string{{"Oct-17", "B", "blog", "http://feedproxy.google.com/~r/blog/~3/b"}}},
	}, got)
}

func TestQuoteExtract(t *testing.T) {
	body := `<table class="snapshot-table2">
<tr><td>P/E</td><td>29.5</td><td>Index</td><td>DJIA</td></tr>
<tr><td>Beta</td><td>1.2</td></tr>
</table>`

	got, err := Quote{Symbol: "AAPL", Columns: 2}.Extract([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, []output.Table{{
		Title:  "AAPL",
		Header: []string{"Key", "Value", "Key", "Value"},
		Rows:   [][]string{{"Beta", "1.2", "Index", "DJIA"}, {"P/E", "29.5"}},
	}}, got)

	_, err = Quote{Symbol: "AAPL"}.Extract([]byte(`<p>no such ticker</p>`))
	assert.ErrorIs(t, err, extract.ErrTableNotFound)
}
