package param

import "fmt"

// InsiderKind is an insider trading report subtype.
type InsiderKind int

const (
	InsiderLatest InsiderKind = iota
	InsiderLatestBuys
	InsiderLatestSales
	InsiderTopWeek
	InsiderTopWeekBuys
	InsiderTopWeekSales
	InsiderTopOwnerTrade
	InsiderTopOwnerBuys
	InsiderTopOwnerSales
	InsiderNumeric
)

// Tokens are literal query blocks. The numeric block is a format string taking
// the owner filter value.
var insiderKinds = []Option{
	InsiderLatest:        {"latest", "", "Latest"},
	InsiderLatestBuys:    {"latest-buys", "tc=1", "Latest Buys"},
	InsiderLatestSales:   {"latest-sales", "tc=2", "Latest Sales"},
	InsiderTopWeek:       {"top-week", "or=-10&tv=100000&tc=7&o=-transactionValue", "Top Week"},
	InsiderTopWeekBuys:   {"top-week-buys", "or=-10&tv=100000&tc=1&o=-transactionValue", "Top Week Buys"},
	InsiderTopWeekSales:  {"top-week-sales", "or=-10&tv=100000&tc=2&o=-transactionValue", "Top Week Sales"},
	InsiderTopOwnerTrade: {"top-owner-trade", "or=10&tv=1000000&tc=7&o=-transactionValue", "Top Owner Trade"},
	InsiderTopOwnerBuys:  {"top-owner-buys", "or=10&tv=1000000&tc=1&o=-transactionValue", "Top Owner Buys"},
	InsiderTopOwnerSales: {"top-owner-sales", "or=10&tv=1000000&tc=2&o=-transactionValue", "Top Owner Sales"},
	InsiderNumeric:       {"numeric", "oc=%s&tc=7", "Owner"},
}

func (k InsiderKind) String() string { return insiderKinds[k].Label }

func ParseInsiderKind(name string) (InsiderKind, error) {
	return parse[InsiderKind]("insider type", insiderKinds, name)
}
func AllInsiderKinds() []InsiderKind { return all[InsiderKind](insiderKinds) }

// Insider is a resolved insider report selection. Owner is only read by the
// numeric kind and is interpolated without escaping.
type Insider struct {
	Kind  InsiderKind
	Owner string
}

// Token returns the literal query block for the selection.
func (i Insider) Token() string {
	if i.Kind == InsiderNumeric {
		return fmt.Sprintf(insiderKinds[InsiderNumeric].Token, i.Owner)
	}
	return insiderKinds[i.Kind].Token
}

func (i Insider) String() string {
	if i.Kind == InsiderNumeric {
		return fmt.Sprintf("%s %s", i.Kind, i.Owner)
	}
	return i.Kind.String()
}
