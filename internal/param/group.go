package param

// GroupBy is the grouping dimension of the group rollup pages ("g", plus "sg"
// for the per-sector industry slices).
type GroupBy int

const (
	GroupSector GroupBy = iota
	GroupIndustry
	GroupIndustryBasicMaterials
	GroupIndustryCommunicationServices
	GroupIndustryConsumerCyclical
	GroupIndustryConsumerDefensive
	GroupIndustryEnergy
	GroupIndustryFinancial
	GroupIndustryHealthcare
	GroupIndustryIndustrials
	GroupIndustryRealEstate
	GroupIndustryTechnology
	GroupIndustryUtilities
	GroupCountry
	GroupCapitalization
)

var groupBys = []Option{
	GroupSector:                        {"sector", "sector", "Sector"},
	GroupIndustry:                      {"industry", "industry", "Industry"},
	GroupIndustryBasicMaterials:        {"basicmaterials", "industry", "Industry (Basic Materials)"},
	GroupIndustryCommunicationServices: {"communicationservices", "industry", "Industry (Communication Services)"},
	GroupIndustryConsumerCyclical:      {"consumercyclical", "industry", "Industry (Consumer Cyclical)"},
	GroupIndustryConsumerDefensive:     {"consumerdefensive", "industry", "Industry (Consumer Defensive)"},
	GroupIndustryEnergy:                {"energy", "industry", "Industry (Energy)"},
	GroupIndustryFinancial:             {"financial", "industry", "Industry (Financial)"},
	GroupIndustryHealthcare:            {"healthcare", "industry", "Industry (Healthcare)"},
	GroupIndustryIndustrials:           {"industrials", "industry", "Industry (Industrials)"},
	GroupIndustryRealEstate:            {"realestate", "industry", "Industry (Real Estate)"},
	GroupIndustryTechnology:            {"technology", "industry", "Industry (Technology)"},
	GroupIndustryUtilities:             {"utilities", "industry", "Industry (Utilities)"},
	GroupCountry:                       {"country", "country", "Country"},
	GroupCapitalization:                {"capitalization", "capitalization", "Capitalization"},
}

// sub-group tokens; empty for the top level dimensions
var groupSubs = []string{
	GroupIndustryBasicMaterials:        "basicmaterials",
	GroupIndustryCommunicationServices: "communicationservices",
	GroupIndustryConsumerCyclical:      "consumercyclical",
	GroupIndustryConsumerDefensive:     "consumerdefensive",
	GroupIndustryEnergy:                "energy",
	GroupIndustryFinancial:             "financial",
	GroupIndustryHealthcare:            "healthcare",
	GroupIndustryIndustrials:           "industrials",
	GroupIndustryRealEstate:            "realestate",
	GroupIndustryTechnology:            "technology",
	GroupIndustryUtilities:             "utilities",
	GroupCapitalization:                "",
}

func (g GroupBy) Token() string  { return groupBys[g].Token }
func (g GroupBy) Sub() string    { return groupSubs[g] }
func (g GroupBy) String() string { return groupBys[g].Label }

func ParseGroupBy(name string) (GroupBy, error) { return parse[GroupBy]("group", groupBys, name) }
func AllGroupBys() []GroupBy                    { return all[GroupBy](groupBys) }

// GroupType is the detail level of the group rollup pages ("v").
type GroupType int

const (
	GroupOverview GroupType = iota
	GroupValuation
	GroupPerformance
	GroupCustom
)

var groupTypes = []Option{
	GroupOverview:    {"overview", "110", "Overview"},
	GroupValuation:   {"valuation", "120", "Valuation"},
	GroupPerformance: {"performance", "140", "Performance"},
	GroupCustom:      {"custom", "150", "Custom"},
}

func (g GroupType) Token() string  { return groupTypes[g].Token }
func (g GroupType) String() string { return groupTypes[g].Label }

func ParseGroupType(name string) (GroupType, error) {
	return parse[GroupType]("group type", groupTypes, name)
}
func AllGroupTypes() []GroupType { return all[GroupType](groupTypes) }
