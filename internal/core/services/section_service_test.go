package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	"github.com/finbooks/fin_statements_app/internal/core/services"
)

func testProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:              "Acme Trading B.V.",
		Address:           "Keizersgracht 1",
		City:              "Amsterdam",
		Country:           "Netherlands",
		EstablishedDate:   "01-02-2015",
		ApprovalDate:      "30-06-2025",
		ChamberOfCommerce: "12345678",
		FinancialYear:     "2024",
		Owner:             "J. Doe",
	}
}

func buildTestSections(t *testing.T, txns []domain.RawTransaction) []domain.OrderedSection {
	t.Helper()
	agg := services.NewAggregatorService()
	model, _ := agg.Aggregate(context.Background(), txns)
	return services.NewSectionBuilderService().BuildSections(model, testProfile())
}

func sectionByID(t *testing.T, sections []domain.OrderedSection, id string) domain.OrderedSection {
	t.Helper()
	for _, sec := range sections {
		if sec.ID == id {
			return sec
		}
	}
	t.Fatalf("section %q not found", id)
	return domain.OrderedSection{}
}

func TestBuildSections_OutlineOrderIsFixed(t *testing.T) {
	withData := buildTestSections(t, []domain.RawTransaction{
		txn("Product sales", "Revenue", 1000, domain.CreditTxn),
	})
	empty := buildTestSections(t, nil)

	require.Equal(t, len(withData), len(empty))
	for i := range withData {
		assert.Equal(t, withData[i].ID, empty[i].ID, "outline position %d", i)
		assert.Equal(t, withData[i].Title, empty[i].Title)
	}

	ids := make([]string, 0, len(withData))
	for _, sec := range withData {
		ids = append(ids, sec.ID)
	}
	assert.Equal(t, "cover", ids[0])
	assert.Equal(t, "index", ids[1])
	assert.Equal(t, "general", ids[2])
	assert.Equal(t, "signature", ids[len(ids)-1])
}

func TestBuildSections_YearInterpolation(t *testing.T) {
	sections := buildTestSections(t, nil)

	assert.Equal(t, "2.1 Balance per 31-12-2024", sectionByID(t, sections, "balance-sheet-assets").Title)
	assert.Equal(t, "2.2 Profit and Loss Account 2024", sectionByID(t, sections, "profit-loss-account").Title)
	assert.Contains(t, sectionByID(t, sections, "assets-info").Title, "31-12-2024")
	assert.Contains(t, sectionByID(t, sections, "pl-info").Title, "2024")
}

func TestBuildSections_EmptyMessages(t *testing.T) {
	sections := buildTestSections(t, nil)

	tests := map[string]string{
		"result-comparison":            "No profit & loss data available. Generate statements to view data.",
		"profit-loss-account":          "No profit & loss data available. Generate statements to view data.",
		"related-parties-shareholders": "No related parties/shareholders info available.",
		"assets-inventories":           "No inventories data.",
		"assets-receivables":           "No receivables data.",
		"assets-cash":                  "No cash and cash equivalents data.",
		"liabilities-equity":           "No equity data.",
		"liabilities-short-term-debts": "No short-term debts data.",
		"pl-income":                    "No income data.",
		"pl-cogs":                      "No COGS data.",
		"pl-opex":                      "No operating expenses data.",
		"pl-financial-items":           "No financial items data.",
		"pl-tax":                       "No tax data.",
	}
	for id, message := range tests {
		sec := sectionByID(t, sections, id)
		assert.True(t, sec.Empty(), "section %s should be empty", id)
		assert.Equal(t, message, sec.EmptyMessage, "section %s", id)
	}
}

func TestBuildSections_TaxSummaryPairs(t *testing.T) {
	sections := buildTestSections(t, []domain.RawTransaction{
		txn("Product sales", "Revenue", 100000, domain.CreditTxn),
		txn("Stock purchases", "Purchases", 40000, domain.DebitTxn),
		txn("Office rent", "Operating Expenses", 20000, domain.DebitTxn),
		txn("Corporate income tax", "Tax", 8000, domain.DebitTxn),
	})

	sec := sectionByID(t, sections, "tax-summary")
	require.Equal(t, domain.SectionKeyValue, sec.Kind)
	require.Len(t, sec.Pairs, 4)
	assert.Equal(t, [2]string{"Taxable Income (EBT)", "€40,000"}, sec.Pairs[0])
	assert.Equal(t, [2]string{"Income Tax Expense", "€8,000"}, sec.Pairs[1])
	assert.Equal(t, [2]string{"Net Income (After Tax)", "€32,000"}, sec.Pairs[2])
	assert.Equal(t, [2]string{"Effective Tax Rate", "20.00%"}, sec.Pairs[3])
}

func TestBuildSections_TaxSummaryWithoutTaxData(t *testing.T) {
	sections := buildTestSections(t, []domain.RawTransaction{
		txn("Product sales", "Revenue", 100000, domain.CreditTxn),
	})

	sec := sectionByID(t, sections, "tax-summary")
	require.Len(t, sec.Pairs, 4)
	assert.Equal(t, "€100,000", sec.Pairs[0][1])
	assert.Equal(t, "No tax data", sec.Pairs[1][1])
	assert.Equal(t, "No tax data", sec.Pairs[2][1])
	assert.Equal(t, "No tax data", sec.Pairs[3][1])
}

func TestBuildSections_IndexListsNumberedSections(t *testing.T) {
	sections := buildTestSections(t, nil)
	index := sectionByID(t, sections, "index")

	require.NotEmpty(t, index.Paragraphs)
	assert.Equal(t, "1 General", index.Paragraphs[0])
	assert.Contains(t, index.Paragraphs, "2 Financial statements")
	assert.Contains(t, index.Paragraphs, "  2.1 Balance per 31-12-2024")
	assert.Contains(t, index.Paragraphs, "    2.3.1 General principles")
	assert.Contains(t, index.Paragraphs, "    2.5.1 Inventories")

	// Un-numbered sections (cover, the index itself, signature) never appear.
	for _, line := range index.Paragraphs {
		assert.NotContains(t, line, "Index")
		assert.NotContains(t, line, "Signature")
	}
}

func TestBuildSections_DetailedProfitLossRows(t *testing.T) {
	sections := buildTestSections(t, []domain.RawTransaction{
		txn("Product sales", "Revenue", 100000, domain.CreditTxn),
		txn("Stock purchases", "Purchases", 40000, domain.DebitTxn),
	})

	sec := sectionByID(t, sections, "profit-loss-account")
	require.Equal(t, []string{"Accounts", "Amount (€)"}, sec.Columns)

	rows := make(map[string]string)
	for _, row := range sec.Rows {
		rows[row[0]] = row[1]
	}
	assert.Equal(t, "100,000", rows["Total Revenue"])
	assert.Equal(t, "60,000", rows["Gross Profit"])
	// No tax data, so the bottom line is reported as unavailable.
	assert.Equal(t, "-", rows["Net Profit"])
}

func TestBuildSections_GeneralDisclosuresInterpolation(t *testing.T) {
	sections := buildTestSections(t, nil)
	sec := sectionByID(t, sections, "basis-disclosures")

	require.Len(t, sec.Paragraphs, 1)
	assert.Contains(t, sec.Paragraphs[0], "Acme Trading B.V.")
	assert.Contains(t, sec.Paragraphs[0], "Amsterdam")
}

func TestBuildSections_MissingProfileDegrades(t *testing.T) {
	agg := services.NewAggregatorService()
	model, _ := agg.Aggregate(context.Background(), nil)
	sections := services.NewSectionBuilderService().BuildSections(model, domain.CompanyProfile{})

	sec := sectionByID(t, sections, "basis-disclosures")
	require.Len(t, sec.Paragraphs, 1)
	assert.Contains(t, sec.Paragraphs[0], "the company")
}
