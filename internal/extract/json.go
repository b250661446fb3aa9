package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EmbeddedJSON extracts a JSON array embedded in page text between the start
// and end markers and projects fields out of every element, in order.
//
// Missing fields, and elements that are not objects, yield empty cells. String
// values are unquoted; any other value keeps its compact JSON text.
func EmbeddedJSON(body, start, end string, fields []string) (Grid, error) {
	i := strings.Index(body, start)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, start)
	}
	body = body[i+len(start):]
	j := strings.Index(body, end)
	if j < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, end)
	}
	payload := strings.TrimSpace(body[:j])
	payload = strings.TrimRight(payload, ";")

	if !strings.HasPrefix(payload, "[") {
		return nil, fmt.Errorf("%w: expected json array", ErrMalformedPayload)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elems); err != nil {
		return nil, fmt.Errorf("%w: expected json array: %v", ErrMalformedPayload, err)
	}

	grid := make(Grid, 0, len(elems))
	for _, elem := range elems {
		var record map[string]json.RawMessage
		if err := json.Unmarshal(elem, &record); err != nil {
			record = nil
		}
		row := make([]string, len(fields))
		for k, field := range fields {
			if v, ok := record[field]; ok {
				row[k] = jsonText(v)
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func jsonText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
