package domain

import "strings"

// Group is a presentation bucket for profit and loss items.
type Group string

const (
	GroupRevenue Group = "Revenue"
	GroupCOGS    Group = "COGS"
	GroupOpEx    Group = "OpEx"
	GroupOther   Group = "Other"
	GroupTax     Group = "Tax"
)

// PLGroups lists the profit and loss groups in presentation order.
var PLGroups = []Group{GroupRevenue, GroupCOGS, GroupOpEx, GroupOther, GroupTax}

// plGroupByCategory is the closed category-to-group mapping. Categories not
// present here fall back by item kind via GroupFor, so every item lands in
// exactly one group.
var plGroupByCategory = map[string]Group{
	"Revenue":                  GroupRevenue,
	"Other income":             GroupRevenue,
	"Discounts received":       GroupRevenue,
	"COGS":                     GroupCOGS,
	"Opening inventory":        GroupCOGS,
	"Purchases":                GroupCOGS,
	"Operating Expenses":       GroupOpEx,
	"Selling expenses":         GroupOpEx,
	"Administrative expenses":  GroupOpEx,
	"Other operating expenses": GroupOpEx,
	"Interest income":          GroupOther,
	"Interest expense":         GroupOther,
	"Other income/expenses":    GroupOther,
	"Tax":                      GroupTax,
}

// GroupFor maps a category to its profit and loss group. Unmapped categories
// fall back by kind: revenue items to Revenue, everything else to OpEx. The
// mapping is total, so grouping is deterministic and total-preserving.
func GroupFor(category string, kind ItemKind) Group {
	if g, ok := plGroupByCategory[category]; ok {
		return g
	}
	if kind == Revenue {
		return GroupRevenue
	}
	return GroupOpEx
}

// AssetBucket identifies a sub-table of the asset breakdown.
type AssetBucket string

const (
	BucketInventories AssetBucket = "inventories"
	BucketReceivables AssetBucket = "receivables"
	BucketCash        AssetBucket = "cashAndCashEquivalents"
)

// LiabilityBucket identifies a sub-table of the liability breakdown.
type LiabilityBucket string

const (
	BucketEquity         LiabilityBucket = "equity"
	BucketShortTermDebts LiabilityBucket = "shortTermDebts"
)

// AssetBucketFor assigns an asset line to its breakdown sub-table by category
// keyword. Unknown asset categories count as receivables, the broadest of the
// three buckets, so no asset line ever drops out of the breakdown.
func AssetBucketFor(category string) AssetBucket {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "inventor") || strings.Contains(c, "stock"):
		return BucketInventories
	case strings.Contains(c, "cash") || strings.Contains(c, "bank"):
		return BucketCash
	default:
		return BucketReceivables
	}
}

// LiabilityBucketFor assigns a liability-side line to its breakdown sub-table.
// Equity-kind items always land in the equity bucket; everything else is a
// short-term debt.
func LiabilityBucketFor(category string, kind ItemKind) LiabilityBucket {
	if kind == Equity || strings.Contains(strings.ToLower(category), "equity") {
		return BucketEquity
	}
	return BucketShortTermDebts
}
