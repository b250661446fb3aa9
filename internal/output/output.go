package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table is one extracted table ready for rendering.
type Table struct {
	Title  string     `json:"title,omitempty"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// split returns the header and body rows. A table without a header uses its
// first row as header.
func (t Table) split() ([]string, [][]string) {
	if t.Header != nil || len(t.Rows) == 0 {
		return t.Header, t.Rows
	}
	return t.Rows[0], t.Rows[1:]
}

// Content renders tables in every supported format. It implements
// scraper.Content.
type Content struct {
	tables  []Table
	maxRows int
}

// NewContent creates a Content. maxRows limits the body rows rendered per
// table; zero or less renders every row.
func NewContent(tables []Table, maxRows int) *Content {
	return &Content{tables: tables, maxRows: maxRows}
}

// Tables returns the tables held by c.
func (c *Content) Tables() []Table {
	return c.tables
}

// limit returns the rows to render and how many were cut.
func (c *Content) limit(rows [][]string) ([][]string, int) {
	if c.maxRows <= 0 || len(rows) <= c.maxRows {
		return rows, 0
	}
	return rows[:c.maxRows], len(rows) - c.maxRows
}

// ToText renders box-drawn tables.
func (c *Content) ToText() (string, error) {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	var sb strings.Builder
	for i, t := range c.tables {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		header, rows := t.split()
		rows, cut := c.limit(rows)

		w := table.NewWriter()
		w.SetStyle(style)
		if t.Title != "" {
			w.SetTitle("%s", t.Title)
		}
		if len(header) > 0 {
			w.AppendHeader(toRow(header))
		}
		for _, r := range rows {
			w.AppendRow(toRow(r))
		}
		if cut > 0 {
			w.SetCaption("... %d more rows", cut)
		}
		sb.WriteString(w.Render())
	}
	return sb.String(), nil
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// ToHTML renders every table as an HTML table preceded by its title.
func (c *Content) ToHTML() (string, error) {
	var sb strings.Builder
	for _, t := range c.tables {
		header, rows := t.split()
		rows, cut := c.limit(rows)

		if t.Title != "" {
			fmt.Fprintf(&sb, "<h2>%s</h2>\n", html.EscapeString(t.Title))
		}
		sb.WriteString("<table>\n")
		if len(header) > 0 {
			sb.WriteString("<thead><tr>")
			for _, h := range header {
				fmt.Fprintf(&sb, "<th>%s</th>", html.EscapeString(h))
			}
			sb.WriteString("</tr></thead>\n")
		}
		sb.WriteString("<tbody>\n")
		for _, r := range rows {
			sb.WriteString("<tr>")
			for _, cell := range r {
				fmt.Fprintf(&sb, "<td>%s</td>", html.EscapeString(cell))
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody>\n</table>\n")
		if cut > 0 {
			fmt.Fprintf(&sb, "<p>... %d more rows</p>\n", cut)
		}
	}
	return sb.String(), nil
}

// ToMarkdown converts the HTML rendering into GitHub-flavoured markdown tables.
func (c *Content) ToMarkdown() (string, error) {
	h, err := c.ToHTML()
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.Table())

	markdown, err := converter.ConvertString(h)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}

// ToJSON returns every table, unlimited by maxRows.
func (c *Content) ToJSON() ([]byte, error) {
	tables := c.tables
	if tables == nil {
		tables = []Table{}
	}
	data, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// ToCSV writes the tables one after another, each introduced by a "# title"
// line when titled.
func (c *Content) ToCSV() (string, error) {
	var buf bytes.Buffer
	for i, t := range c.tables {
		if i > 0 {
			buf.WriteString("\n")
		}
		if t.Title != "" {
			fmt.Fprintf(&buf, "# %s\n", t.Title)
		}

		header, rows := t.split()
		w := csv.NewWriter(&buf)
		if len(header) > 0 {
			if err := w.Write(header); err != nil {
				return "", fmt.Errorf("failed to write csv: %w", err)
			}
		}
		if err := w.WriteAll(rows); err != nil {
			return "", fmt.Errorf("failed to write csv: %w", err)
		}
	}
	return buf.String(), nil
}
