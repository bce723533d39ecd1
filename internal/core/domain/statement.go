package domain

import (
	"github.com/shopspring/decimal"
)

// LabeledAmount is one pre-ordered row of the detailed profit and loss
// presentation. Available is false for figures that cannot be computed
// (net profit without tax data); such rows are reported as unavailable,
// never as zero.
type LabeledAmount struct {
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	Available bool            `json:"available"`
	Subtotal  bool            `json:"subtotal"`
}

// AssetBreakdown splits balance-sheet assets into the statement's
// additional-information sub-tables.
type AssetBreakdown struct {
	Inventories            []LineItem `json:"inventories"`
	Receivables            []LineItem `json:"receivables"`
	CashAndCashEquivalents []LineItem `json:"cashAndCashEquivalents"`
}

// LiabilityBreakdown splits the liability side of the balance sheet.
type LiabilityBreakdown struct {
	Equity         []LineItem `json:"equity"`
	ShortTermDebts []LineItem `json:"shortTermDebts"`
}

// ProfitLossBreakdown splits profit and loss items into presentation groups.
type ProfitLossBreakdown struct {
	Income            []LineItem `json:"income"`
	COGS              []LineItem `json:"cogs"`
	OperatingExpenses []LineItem `json:"operatingExpenses"`
	FinancialItems    []LineItem `json:"financialItems"`
	Tax               []LineItem `json:"tax"`
}

// RelatedParty is one shareholder or otherwise related party disclosure.
type RelatedParty struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// TaxSummary carries the derived tax figures for the profit and loss
// breakdown section. NetIncome and EffectiveTaxRate are invalid when no tax
// lines exist or (for the rate) when taxable income is zero; the marker is
// explicit, division by zero never occurs.
type TaxSummary struct {
	TaxableIncome    decimal.Decimal     `json:"taxableIncome"`
	HasTax           bool                `json:"hasTax"`
	TaxAmount        decimal.NullDecimal `json:"taxAmount"`
	NetIncome        decimal.NullDecimal `json:"netIncome"`
	EffectiveTaxRate decimal.NullDecimal `json:"effectiveTaxRate"`
}

// StatementDataModel is the canonical structured representation of one
// financial statement. It is derived fresh from the current transaction set
// on every generation request and never persisted.
type StatementDataModel struct {
	BalanceSheet        []LineItem          `json:"balanceSheet"`
	ProfitLoss          []LineItem          `json:"profitLoss"`
	DetailedProfitLoss  []LabeledAmount     `json:"detailedProfitLoss,omitempty"`
	AssetBreakdown      AssetBreakdown      `json:"assetBreakdown"`
	LiabilityBreakdown  LiabilityBreakdown  `json:"liabilityBreakdown"`
	ProfitLossBreakdown ProfitLossBreakdown `json:"profitLossBreakdown"`
	RelatedParties      []RelatedParty      `json:"relatedParties"`
	TaxSummary          TaxSummary          `json:"taxSummary"`
}

// DashboardSummary holds the headline figures shown on the dashboard.
type DashboardSummary struct {
	CashBalance decimal.Decimal `json:"cashBalance"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetBurn     decimal.Decimal `json:"netBurn"`
}

// SumAmounts totals a slice of line items.
func SumAmounts(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
