package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	futuresStart = "var rows = "
	futuresEnd   = "FinvizInitFuturesPerformance(rows);"
)

var futuresFields = []string{"ticker", "label", "group", "perf"}

func TestEmbeddedJSON(t *testing.T) {
	body := `<script>
var rows = [{"ticker":"ES","label":"E-mini S&P","group":"Index","perf":1.23},
{"ticker":"GC","label":"Gold","group":"Metals","perf":-0.5,"extra":true},
{"ticker":"CL","label":"Crude Oil"},
42];
FinvizInitFuturesPerformance(rows);
</script>`

	got, err := EmbeddedJSON(body, futuresStart, futuresEnd, futuresFields)
	require.NoError(t, err)
	assert.Equal(t, Grid{
		{"ES", "E-mini S&P", "Index", "1.23"},
		{"GC", "Gold", "Metals", "-0.5"},
		{"CL", "Crude Oil", "", ""},
		{"", "", "", ""},
	}, got)
}

func TestEmbeddedJSONNonStringValues(t *testing.T) {
	body := `var rows = [{"ticker":null,"label":{"a": 1},"group":["x", "y"],"perf":true}]FinvizInitFuturesPerformance(rows);`

	got, err := EmbeddedJSON(body, futuresStart, futuresEnd, futuresFields)
	require.NoError(t, err)
	assert.Equal(t, Grid{{"null", `{"a":1}`, `["x","y"]`, "true"}}, got)
}

func TestEmbeddedJSONEmptyArray(t *testing.T) {
	got, err := EmbeddedJSON("var rows = [];FinvizInitFuturesPerformance(rows);", futuresStart, futuresEnd, futuresFields)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEmbeddedJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no start marker", `FinvizInitFuturesPerformance(rows);`, ErrMarkerNotFound},
		{"no end marker", `var rows = [{"ticker":"ES"}];`, ErrMarkerNotFound},
		{"end before start", `FinvizInitFuturesPerformance(rows); var rows = [];`, ErrMarkerNotFound},
		{"not json", `var rows = [{ticker: ES}]; FinvizInitFuturesPerformance(rows);`, ErrMalformedPayload},
		{"not an array", `var rows = {"ticker":"ES"}; FinvizInitFuturesPerformance(rows);`, ErrMalformedPayload},
		{"null", `var rows = null; FinvizInitFuturesPerformance(rows);`, ErrMalformedPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EmbeddedJSON(tt.body, futuresStart, futuresEnd, futuresFields)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
