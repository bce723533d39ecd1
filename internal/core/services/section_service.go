package services

import (
	"fmt"
	"strings"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/utils"
)

// Static basis-of-statement texts. These are fixed disclosure wording, only
// 2.3.5 interpolates company data.
const (
	basisGeneralPrinciples = "Assets and liabilities are generally valued at historical cost, production cost or at fair value at the time of acquisition. If no specific valuation principle has been stated, valuation is at historical cost. In the balance sheet, income statement and the cash flow statement, references are made to the notes. Income and expenses are allocated to the year to which they relate. Profits are only included insofar as they have been realized on the balance sheet date. Liabilities and possible losses that originate before the end of the reporting year are taken into account if they have become known before the preparation of the annual accounts."

	basisBalanceSheetAssets = "Inventories (stocks) are valued at historical price or production cost based on the FIFO method (first in, first out) or lower realisable value. The historical cost or production cost consist of all costs relating to the acquisition or production and the costs incurred in order to bring the inventories to their current location and current condition. The production cost includes direct labour and fixed and variable production overheads, taking into account the costs of the operations office, the maintenance department and internal logistics. The realisable value is the estimated sales price less directly attributable sales costs. In determining the realisable value the obsolescence of the inventories is taken into account. Trade receivables are recognised initially at fair value and subsequently measured at amortised cost. If payment of the receivable is postponed under an extended payment deadline, fair value is measured on the basis of the discounted value of the expected revenues. Interest gains are recognised using the effective interest method. When a trade receivable is uncollectible, it is written off against the allowance account for trade receivables. Cash at banks represent bank balances. Cash at banks is carried at nominal value."

	basisBalanceSheetLiabilities = "On initial recognition current liabilities are recognised at fair value. After initial recognition current liabilities are recognised at the amortised cost price, being the amount received taking into account premiums or discounts and minus transaction costs. This is usually the nominal value."

	basisResultDetermination = "Net turnover comprises the income from the supply of goods and services and realised income from construction contracts after deduction of discounts and such like and of taxes levied on the turnover. Revenues from the goods supplied are recognised when all significant risks and rewards in respect of the goods have been transferred to the buyer. The result is the difference between the realisable value of the goods/services provided and the costs and other charges during the year. The results on transactions are recognised in the year in which they are realised."
)

const (
	amountColumn    = "Amount (" + utils.CurrencyGlyph + ")"
	noDataMarker    = "No tax data"
	unavailableCell = "-"
)

type sectionBuilderService struct{}

// NewSectionBuilderService creates the section builder.
func NewSectionBuilderService() portssvc.SectionBuilderSvc {
	return &sectionBuilderService{}
}

var _ portssvc.SectionBuilderSvc = (*sectionBuilderService)(nil)

// BuildSections lays the statement out as its fixed ordered section outline:
// cover, index, general information, the statements themselves, the
// additional-information breakdowns and the signature block. Sections with no
// data keep their empty message; the outline shape never depends on the data.
func (s *sectionBuilderService) BuildSections(model *domain.StatementDataModel, profile domain.CompanyProfile) []domain.OrderedSection {
	year := profile.FinancialYear

	sections := []domain.OrderedSection{
		coverSection(profile),
		{ID: "index", Title: "Index", Kind: domain.SectionNarrative, Major: true},
	}

	sections = append(sections, generalSection(profile)...)
	sections = append(sections, balanceSheetSections(model, year)...)
	sections = append(sections, profitLossSection(model, year))
	sections = append(sections, basisSections(profile)...)
	sections = append(sections, relatedPartiesSections(model)...)
	sections = append(sections, assetInfoSections(model, year)...)
	sections = append(sections, liabilityInfoSections(model, year)...)
	sections = append(sections, profitLossInfoSections(model, year)...)
	sections = append(sections, signatureSection(profile))

	// The index lists the outline itself, so it is filled in after the
	// outline is known.
	sections[1].Paragraphs = indexLines(sections)
	return sections
}

func coverSection(profile domain.CompanyProfile) domain.OrderedSection {
	paras := []string{"To the board of", displayName(profile), profile.Address}
	if profile.City != "" {
		paras = append(paras, profile.City)
	}
	if profile.Country != "" {
		paras = append(paras, profile.Country)
	}
	paras = append(paras,
		fmt.Sprintf("Financial Statements %s", profile.FinancialYear),
		fmt.Sprintf("Date established: %s", profile.EstablishedDate),
	)
	return domain.OrderedSection{
		ID:         "cover",
		Title:      fmt.Sprintf("Financial Statements %s", profile.FinancialYear),
		Kind:       domain.SectionNarrative,
		Paragraphs: paras,
		Major:      true,
	}
}

func generalSection(profile domain.CompanyProfile) []domain.OrderedSection {
	name := displayName(profile)
	paras := []string{
		"These financial statements are based on fiscal figures.",
		fmt.Sprintf("The limited liability company %s has the following trade names: %s.", name, name),
	}
	if profile.City != "" {
		paras = append(paras, fmt.Sprintf("The limited liability company seat is located in %s.", profile.City))
	}
	if profile.ChamberOfCommerce != "" {
		paras = append(paras, fmt.Sprintf("The limited liability company is registered with the Chamber of Commerce under file number %s.", profile.ChamberOfCommerce))
	}
	paras = append(paras,
		"Date of determination financial statements",
		fmt.Sprintf("The financial statements %s has been established in the General Meeting held on %s.", profile.FinancialYear, profile.ApprovalDate),
	)
	return []domain.OrderedSection{
		{
			ID:         "general",
			Number:     "1",
			Title:      "1 General",
			Kind:       domain.SectionNarrative,
			Paragraphs: paras,
			Major:      true,
		},
	}
}

func balanceSheetSections(model *domain.StatementDataModel, year string) []domain.OrderedSection {
	var assets, liabilities []domain.LineItem
	for _, item := range model.BalanceSheet {
		if item.Kind == domain.Asset {
			assets = append(assets, item)
		} else {
			liabilities = append(liabilities, item)
		}
	}

	columns := []string{"Category", "Account", amountColumn}
	assetRows := categoryAccountRows(assets)
	if len(assetRows) > 0 {
		assetRows = append(assetRows, []string{"", "Total Assets", utils.FormatNumber(domain.SumAmounts(assets))})
	}
	liabilityRows := categoryAccountRows(liabilities)
	if len(liabilityRows) > 0 {
		liabilityRows = append(liabilityRows, []string{"", "Total Equity & Liabilities", utils.FormatNumber(domain.SumAmounts(liabilities))})
	}

	resultRows := make([][]string, 0, len(model.ProfitLoss))
	for _, item := range model.ProfitLoss {
		resultRows = append(resultRows, []string{item.Account, utils.FormatNumber(item.Amount)})
	}

	return []domain.OrderedSection{
		{
			ID:           "result-comparison",
			Number:       "1.1",
			Title:        "1.1 Result comparison",
			Kind:         domain.SectionTable,
			Columns:      []string{"Particulars", amountColumn},
			Rows:         resultRows,
			EmptyMessage: "No profit & loss data available. Generate statements to view data.",
		},
		{
			ID:           "balance-sheet-assets",
			Number:       "2.1",
			Title:        fmt.Sprintf("2.1 Balance per 31-12-%s", year),
			Kind:         domain.SectionTable,
			Columns:      columns,
			Rows:         assetRows,
			EmptyMessage: "No balance sheet data available. Generate statements to view data.",
			Major:        true,
		},
		{
			ID:           "balance-sheet-liabilities",
			Title:        "Equity and liabilities",
			Kind:         domain.SectionTable,
			Columns:      columns,
			Rows:         liabilityRows,
			EmptyMessage: "No balance sheet data available. Generate statements to view data.",
		},
	}
}

func profitLossSection(model *domain.StatementDataModel, year string) domain.OrderedSection {
	rows := make([][]string, 0, len(model.DetailedProfitLoss))
	for _, row := range model.DetailedProfitLoss {
		amount := unavailableCell
		if row.Available {
			amount = utils.FormatNumber(row.Amount)
		}
		rows = append(rows, []string{row.Label, amount})
	}
	if len(rows) == 0 {
		for _, item := range model.ProfitLoss {
			rows = append(rows, []string{item.Account, utils.FormatNumber(item.Amount)})
		}
	}
	return domain.OrderedSection{
		ID:           "profit-loss-account",
		Number:       "2.2",
		Title:        fmt.Sprintf("2.2 Profit and Loss Account %s", year),
		Kind:         domain.SectionTable,
		Columns:      []string{"Accounts", amountColumn},
		Rows:         rows,
		EmptyMessage: "No profit & loss data available. Generate statements to view data.",
		Major:        true,
	}
}

func basisSections(profile domain.CompanyProfile) []domain.OrderedSection {
	disclosure := fmt.Sprintf(
		"The activities of %s, established in %s, consists mainly of: The import, export, production, distribution of all kinds of food and non-food products, holding and management.",
		displayName(profile), profile.City,
	)
	narrative := func(id, number, title string, paras ...string) domain.OrderedSection {
		return domain.OrderedSection{
			ID:         id,
			Number:     number,
			Title:      title,
			Kind:       domain.SectionNarrative,
			Paragraphs: paras,
		}
	}
	parent := narrative("basis", "2.3", "2.3 Basis of the Financial Statement")
	parent.Major = true
	return []domain.OrderedSection{
		parent,
		narrative("basis-general-principles", "2.3.1", "2.3.1 General principles", basisGeneralPrinciples),
		narrative("basis-assets", "2.3.2", "2.3.2 Basis for balance sheet assets", basisBalanceSheetAssets),
		narrative("basis-liabilities", "2.3.3", "2.3.3 Basis for balance sheet liabilities", basisBalanceSheetLiabilities),
		narrative("basis-result", "2.3.4", "2.3.4 Policies for result determination", basisResultDetermination),
		narrative("basis-disclosures", "2.3.5", "2.3.5 General disclosures", disclosure),
	}
}

func relatedPartiesSections(model *domain.StatementDataModel) []domain.OrderedSection {
	rows := make([][]string, 0, len(model.RelatedParties))
	for _, party := range model.RelatedParties {
		rows = append(rows, []string{party.Name, party.Type, party.Details})
	}
	return []domain.OrderedSection{
		{
			ID:     "related-parties",
			Number: "2.4",
			Title:  "2.4 Related Parties",
			Kind:   domain.SectionNarrative,
			Major:  true,
		},
		{
			ID:           "related-parties-shareholders",
			Number:       "2.4.1",
			Title:        "Specification shareholder(s)",
			Kind:         domain.SectionTable,
			Columns:      []string{"Name", "Type", "Details"},
			Rows:         rows,
			EmptyMessage: "No related parties/shareholders info available.",
		},
	}
}

func assetInfoSections(model *domain.StatementDataModel, year string) []domain.OrderedSection {
	return []domain.OrderedSection{
		{
			ID:     "assets-info",
			Number: "2.5",
			Title:  fmt.Sprintf("2.5 Additional information on balance sheets assets per 31-12-%s", year),
			Kind:   domain.SectionNarrative,
			Major:  true,
		},
		accountAmountTable("assets-inventories", "2.5.1", "Inventories", model.AssetBreakdown.Inventories, "No inventories data."),
		accountAmountTable("assets-receivables", "2.5.2", "Receivables", model.AssetBreakdown.Receivables, "No receivables data."),
		accountAmountTable("assets-cash", "2.5.3", "Cash and Cash Equivalents", model.AssetBreakdown.CashAndCashEquivalents, "No cash and cash equivalents data."),
	}
}

func liabilityInfoSections(model *domain.StatementDataModel, year string) []domain.OrderedSection {
	return []domain.OrderedSection{
		{
			ID:     "liabilities-info",
			Number: "2.6",
			Title:  fmt.Sprintf("2.6 Additional information on balance sheets liabilities per 31-12-%s", year),
			Kind:   domain.SectionNarrative,
			Major:  true,
		},
		accountAmountTable("liabilities-equity", "2.6.1", "Equity", model.LiabilityBreakdown.Equity, "No equity data."),
		accountAmountTable("liabilities-short-term-debts", "2.6.2", "Short-term Debts", model.LiabilityBreakdown.ShortTermDebts, "No short-term debts data."),
	}
}

func profitLossInfoSections(model *domain.StatementDataModel, year string) []domain.OrderedSection {
	pl := model.ProfitLossBreakdown
	sections := []domain.OrderedSection{
		{
			ID:     "pl-info",
			Number: "2.7",
			Title:  fmt.Sprintf("2.7 Additional information profit and loss account %s", year),
			Kind:   domain.SectionNarrative,
			Major:  true,
		},
		accountAmountTable("pl-income", "2.7.1", "Income", pl.Income, "No income data."),
		accountAmountTable("pl-cogs", "2.7.2", "COGS", pl.COGS, "No COGS data."),
		accountAmountTable("pl-opex", "2.7.3", "Operating Expenses", pl.OperatingExpenses, "No operating expenses data."),
		accountAmountTable("pl-financial-items", "2.7.4", "Financial Items", pl.FinancialItems, "No financial items data."),
		accountAmountTable("pl-tax", "2.7.5", "Tax", pl.Tax, "No tax data."),
	}
	sections = append(sections, taxSummarySection(model.TaxSummary))
	return sections
}

func taxSummarySection(tax domain.TaxSummary) domain.OrderedSection {
	taxExpense, netIncome, rate := noDataMarker, noDataMarker, noDataMarker
	if tax.HasTax {
		taxExpense = utils.FormatAmount(tax.TaxAmount.Decimal)
		netIncome = utils.FormatAmount(tax.NetIncome.Decimal)
		if tax.EffectiveTaxRate.Valid {
			rate = utils.FormatRate(tax.EffectiveTaxRate.Decimal) + "%"
		}
	}
	return domain.OrderedSection{
		ID:    "tax-summary",
		Title: "Tax & Net Income Summary",
		Kind:  domain.SectionKeyValue,
		Pairs: [][2]string{
			{"Taxable Income (EBT)", utils.FormatAmount(tax.TaxableIncome)},
			{"Income Tax Expense", taxExpense},
			{"Net Income (After Tax)", netIncome},
			{"Effective Tax Rate", rate},
		},
	}
}

func signatureSection(profile domain.CompanyProfile) domain.OrderedSection {
	return domain.OrderedSection{
		ID:    "signature",
		Title: "Signature",
		Kind:  domain.SectionNarrative,
		Paragraphs: []string{
			fmt.Sprintf("%s, %s, %s", profile.City, profile.Country, profile.ApprovalDate),
			"Signature:",
			displayName(profile),
			profile.Owner,
			"Former Director",
			"..................",
		},
		Major: true,
	}
}

// indexLines renders the outline as the index page's indented lines. Only
// numbered sections are listed; the synthetic "2 Financial statements" parent
// is inserted before the first chapter-2 entry since no body section carries
// that heading itself.
func indexLines(sections []domain.OrderedSection) []string {
	var lines []string
	insertedChapter2 := false
	for _, sec := range sections {
		if sec.Number == "" {
			continue
		}
		if !insertedChapter2 && strings.HasPrefix(sec.Number, "2") {
			lines = append(lines, "2 Financial statements")
			insertedChapter2 = true
		}
		label := sec.Title
		if !strings.HasPrefix(label, sec.Number) {
			label = sec.Number + " " + label
		}
		indent := strings.Repeat("  ", strings.Count(sec.Number, "."))
		lines = append(lines, indent+label)
	}
	return lines
}

func accountAmountTable(id, number, title string, items []domain.LineItem, emptyMessage string) domain.OrderedSection {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Account, utils.FormatNumber(item.Amount)})
	}
	return domain.OrderedSection{
		ID:           id,
		Number:       number,
		Title:        title,
		Kind:         domain.SectionTable,
		Columns:      []string{"Account", amountColumn},
		Rows:         rows,
		EmptyMessage: emptyMessage,
	}
}

func categoryAccountRows(items []domain.LineItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Category, item.Account, utils.FormatNumber(item.Amount)})
	}
	return rows
}

func displayName(profile domain.CompanyProfile) string {
	if strings.TrimSpace(profile.Name) == "" {
		return "the company"
	}
	return profile.Name
}
