// Package param maps the closed sets of request options understood by
// finviz.com to the literal query tokens the site expects.
//
// Every family is a small integer type indexing a fixed table, so resolving a
// variant is a slice lookup and a new variant without a table entry shows up as
// an empty token in the package tests.
package param

import (
	"fmt"
	"sort"
	"strings"
)

// Option is one variant of a query parameter family.
type Option struct {
	Name  string // name accepted on the command line
	Token string // literal token sent to the site
	Label string // human readable description
}

func parse[T ~int](family string, table []Option, name string) (T, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, o := range table {
		if o.Name == name {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s: %q", family, name)
}

func all[T ~int](table []Option) []T {
	out := make([]T, len(table))
	for i := range table {
		out[i] = T(i)
	}
	return out
}

var families = map[string][]Option{
	"section":       sections,
	"signal":        signals,
	"order":         orders,
	"group-order":   groupOrders,
	"group":         groupBys,
	"group-type":    groupTypes,
	"direction":     directions,
	"futures-frame": futuresFrames,
	"chart-frame":   chartFrames,
	"chart-style":   chartStyles,
	"forex":         forexViews,
	"insider":       insiderKinds,
}

// Families returns the names of all option families, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the variants of the named family in declaration order.
func Options(family string) ([]Option, bool) {
	table, ok := families[strings.ToLower(family)]
	if !ok {
		return nil, false
	}
	out := make([]Option, len(table))
	copy(out, table)
	return out, true
}
