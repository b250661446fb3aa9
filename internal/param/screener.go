package param

// Section selects the screener view (the "v" parameter).
type Section int

const (
	SectionOverview Section = iota
	SectionValuation
	SectionOwnership
	SectionPerformance
	SectionCustom
	SectionFinancial
	SectionTechnical
)

var sections = []Option{
	SectionOverview:    {"overview", "111", "Overview"},
	SectionValuation:   {"valuation", "121", "Valuation"},
	SectionOwnership:   {"ownership", "131", "Ownership"},
	SectionPerformance: {"performance", "141", "Performance"},
	SectionCustom:      {"custom", "152", "Custom"},
	SectionFinancial:   {"financial", "161", "Financial"},
	SectionTechnical:   {"technical", "171", "Technical"},
}

func (s Section) Token() string  { return sections[s].Token }
func (s Section) String() string { return sections[s].Label }

func ParseSection(name string) (Section, error) { return parse[Section]("section", sections, name) }
func AllSections() []Section                    { return all[Section](sections) }

// Signal is a screener filter signal (the "s" parameter).
type Signal int

const (
	SignalTopGainers Signal = iota
	SignalTopLosers
	SignalNewHigh
	SignalNewLow
	SignalMostVolatile
	SignalMostActive
	SignalUnusualVolume
	SignalOverbought
	SignalOversold
	SignalDowngrades
	SignalUpgrades
	SignalEarningsBefore
	SignalEarningsAfter
	SignalRecentInsiderBuying
	SignalRecentInsiderSelling
	SignalMajorNews
	SignalHorizontalSR
	SignalTLResistance
	SignalTLSupport
	SignalWedgeUp
	SignalWedgeDown
	SignalWedge
	SignalTriangleAscending
	SignalTriangleDescending
	SignalChannelUp
	SignalChannelDown
	SignalChannel
	SignalDoubleTop
	SignalDoubleBottom
	SignalMultipleTop
	SignalMultipleBottom
	SignalHeadShoulders
	SignalHeadShouldersInverse
)

var signals = []Option{
	SignalTopGainers:           {"topgainers", "ta_topgainers", "Top Gainers"},
	SignalTopLosers:            {"toplosers", "ta_toplosers", "Top Losers"},
	SignalNewHigh:              {"newhigh", "ta_newhigh", "New High"},
	SignalNewLow:               {"newlow", "ta_newlow", "New Low"},
	SignalMostVolatile:         {"mostvolatile", "ta_mostvolatile", "Most Volatile"},
	SignalMostActive:           {"mostactive", "ta_mostactive", "Most Active"},
	SignalUnusualVolume:        {"unusualvolume", "ta_unusualvolume", "Unusual Volume"},
	SignalOverbought:           {"overbought", "ta_overbought", "Overbought"},
	SignalOversold:             {"oversold", "ta_oversold", "Oversold"},
	SignalDowngrades:           {"downgrades", "n_downgrades", "Downgrades"},
	SignalUpgrades:             {"upgrades", "n_upgrades", "Upgrades"},
	SignalEarningsBefore:       {"earningsbefore", "n_earningsbefore", "Earnings Before"},
	SignalEarningsAfter:        {"earningsafter", "n_earningsafter", "Earnings After"},
	SignalRecentInsiderBuying:  {"insiderbuying", "it_latestbuys", "Recent Insider Buying"},
	SignalRecentInsiderSelling: {"insiderselling", "it_latestsales", "Recent Insider Selling"},
	SignalMajorNews:            {"majornews", "n_majornews", "Major News"},
	SignalHorizontalSR:         {"horizontal", "ta_p_horizontal", "Horizontal S/R"},
	SignalTLResistance:         {"tlresistance", "ta_p_tlresistance", "TL Resistance"},
	SignalTLSupport:            {"tlsupport", "ta_p_tlsupport", "TL Support"},
	SignalWedgeUp:              {"wedgeup", "ta_p_wedgeup", "Wedge Up"},
	SignalWedgeDown:            {"wedgedown", "ta_p_wedgedown", "Wedge Down"},
	SignalWedge:                {"wedge", "ta_p_wedge", "Wedge"},
	SignalTriangleAscending:    {"triangleascending", "ta_p_wedgeresistance", "Triangle Ascending"},
	SignalTriangleDescending:   {"triangledescending", "ta_p_wedgesupport", "Triangle Descending"},
	SignalChannelUp:            {"channelup", "ta_p_channelup", "Channel Up"},
	SignalChannelDown:          {"channeldown", "ta_p_channeldown", "Channel Down"},
	SignalChannel:              {"channel", "ta_p_channel", "Channel"},
	SignalDoubleTop:            {"doubletop", "ta_p_doubletop", "Double Top"},
	SignalDoubleBottom:         {"doublebottom", "ta_p_doublebottom", "Double Bottom"},
	SignalMultipleTop:          {"multipletop", "ta_p_multipletop", "Multiple Top"},
	SignalMultipleBottom:       {"multiplebottom", "ta_p_multiplebottom", "Multiple Bottom"},
	SignalHeadShoulders:        {"headshoulders", "ta_p_headandshoulders", "Head & Shoulders"},
	SignalHeadShouldersInverse: {"headshouldersinverse", "ta_p_headandshouldersinv", "Head & Shoulders Inverse"},
}

func (s Signal) Token() string  { return signals[s].Token }
func (s Signal) String() string { return signals[s].Label }

func ParseSignal(name string) (Signal, error) { return parse[Signal]("signal", signals, name) }
func AllSignals() []Signal                    { return all[Signal](signals) }
