package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
)

// plCategoryKind maps the closed profit and loss category set to its item
// kind. Categories outside this map are resolved by balance-sheet keyword or
// by transaction direction.
var plCategoryKind = map[string]domain.ItemKind{
	"Revenue":                  domain.Revenue,
	"Other income":             domain.Revenue,
	"Discounts received":       domain.Revenue,
	"Interest income":          domain.Revenue,
	"COGS":                     domain.Expense,
	"Opening inventory":        domain.Expense,
	"Purchases":                domain.Expense,
	"Operating Expenses":       domain.Expense,
	"Selling expenses":         domain.Expense,
	"Administrative expenses":  domain.Expense,
	"Other operating expenses": domain.Expense,
	"Interest expense":         domain.Expense,
	"Other income/expenses":    domain.Expense,
	"Tax":                      domain.Expense,
}

type aggregatorService struct {
	BaseService
}

// NewAggregatorService creates the transaction aggregator.
func NewAggregatorService() portssvc.AggregatorSvc {
	return &aggregatorService{}
}

var _ portssvc.AggregatorSvc = (*aggregatorService)(nil)

// Aggregate folds the raw transaction list into a statement data model.
// Invalid records are skipped and reported; the model is always returned,
// even for an empty or fully-invalid input.
func (s *aggregatorService) Aggregate(ctx context.Context, txns []domain.RawTransaction) (*domain.StatementDataModel, []domain.InvalidLineItem) {
	var warnings []domain.InvalidLineItem

	type accKey struct {
		category string
		kind     domain.ItemKind
	}
	totals := map[accKey]decimal.Decimal{}
	order := []accKey{}

	for i, txn := range txns {
		if err := txn.Validate(); err != nil {
			warnings = append(warnings, domain.InvalidLineItem{
				Index:       i,
				Description: txn.Description,
				Reason:      err.Error(),
			})
			continue
		}

		kind := kindFor(txn)
		key := accKey{category: txn.Category, kind: kind}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(signedAmount(txn, kind))
	}

	model := &domain.StatementDataModel{}
	for _, key := range order {
		item := domain.LineItem{
			Account:  key.category,
			Category: key.category,
			Amount:   totals[key],
			Kind:     key.kind,
		}
		if key.kind.IsBalanceSheet() {
			model.BalanceSheet = append(model.BalanceSheet, item)
		} else {
			model.ProfitLoss = append(model.ProfitLoss, item)
		}
	}

	s.buildBreakdowns(model)
	model.TaxSummary = deriveTaxSummary(model.ProfitLossBreakdown)
	if len(model.ProfitLoss) > 0 {
		model.DetailedProfitLoss = detailedProfitLoss(model.ProfitLossBreakdown, model.TaxSummary)
	}

	if len(warnings) > 0 {
		s.LogWarn(ctx, "Excluded invalid transactions from aggregation",
			slog.Int("excluded", len(warnings)),
			slog.Int("total", len(txns)),
		)
	}
	return model, warnings
}

// kindFor resolves the item kind of one usable transaction. Profit and loss
// categories resolve through the closed category set, balance-sheet
// categories by keyword, and anything else by transaction direction.
func kindFor(txn domain.RawTransaction) domain.ItemKind {
	if kind, ok := plCategoryKind[txn.Category]; ok {
		return kind
	}

	c := strings.ToLower(txn.Category)
	switch {
	case strings.Contains(c, "inventor"), strings.Contains(c, "stock"):
		return domain.Asset
	case strings.Contains(c, "receivab"), strings.Contains(c, "debtor"), strings.Contains(c, "prepaid"):
		return domain.Asset
	case strings.Contains(c, "cash"), strings.Contains(c, "bank"):
		return domain.Asset
	case strings.Contains(c, "equity"), strings.Contains(c, "capital"), strings.Contains(c, "retained"):
		return domain.Equity
	case strings.Contains(c, "payable"), strings.Contains(c, "creditor"), strings.Contains(c, "loan"), strings.Contains(c, "debt"), strings.Contains(c, "accrual"):
		return domain.Liability
	}

	if txn.Type == domain.CreditTxn {
		return domain.Revenue
	}
	return domain.Expense
}

// signedAmount converts the transaction's positive magnitude into a signed
// contribution to its account: debits increase assets and expenses, credits
// increase liabilities, equity and revenue.
func signedAmount(txn domain.RawTransaction, kind domain.ItemKind) decimal.Decimal {
	amount := txn.Amount.Decimal.Abs()
	debitIncreases := kind == domain.Asset || kind == domain.Expense
	if (txn.Type == domain.DebitTxn) == debitIncreases {
		return amount
	}
	return amount.Neg()
}

// buildBreakdowns distributes the flat balance-sheet and profit and loss
// slices into their presentation breakdowns. Every item lands in exactly one
// bucket, so the breakdowns always reconcile with the flat totals.
func (s *aggregatorService) buildBreakdowns(model *domain.StatementDataModel) {
	for _, item := range model.BalanceSheet {
		switch item.Kind {
		case domain.Asset:
			switch domain.AssetBucketFor(item.Category) {
			case domain.BucketInventories:
				model.AssetBreakdown.Inventories = append(model.AssetBreakdown.Inventories, item)
			case domain.BucketCash:
				model.AssetBreakdown.CashAndCashEquivalents = append(model.AssetBreakdown.CashAndCashEquivalents, item)
			default:
				model.AssetBreakdown.Receivables = append(model.AssetBreakdown.Receivables, item)
			}
		default:
			if domain.LiabilityBucketFor(item.Category, item.Kind) == domain.BucketEquity {
				model.LiabilityBreakdown.Equity = append(model.LiabilityBreakdown.Equity, item)
			} else {
				model.LiabilityBreakdown.ShortTermDebts = append(model.LiabilityBreakdown.ShortTermDebts, item)
			}
		}
	}

	for _, item := range model.ProfitLoss {
		switch domain.GroupFor(item.Category, item.Kind) {
		case domain.GroupRevenue:
			model.ProfitLossBreakdown.Income = append(model.ProfitLossBreakdown.Income, item)
		case domain.GroupCOGS:
			model.ProfitLossBreakdown.COGS = append(model.ProfitLossBreakdown.COGS, item)
		case domain.GroupOther:
			model.ProfitLossBreakdown.FinancialItems = append(model.ProfitLossBreakdown.FinancialItems, item)
		case domain.GroupTax:
			model.ProfitLossBreakdown.Tax = append(model.ProfitLossBreakdown.Tax, item)
		default:
			model.ProfitLossBreakdown.OperatingExpenses = append(model.ProfitLossBreakdown.OperatingExpenses, item)
		}
	}
}

// deriveTaxSummary computes the tax figures. Taxable income is revenue less
// COGS, operating expenses and non-operating expenses. Without tax lines the
// net income and effective rate stay explicitly unavailable; a zero taxable
// income leaves the rate unavailable rather than dividing by zero.
func deriveTaxSummary(pl domain.ProfitLossBreakdown) domain.TaxSummary {
	revenue := domain.SumAmounts(pl.Income)
	cogs := domain.SumAmounts(pl.COGS)
	opEx := domain.SumAmounts(pl.OperatingExpenses)
	nonOpExpenses := decimal.Zero
	for _, item := range pl.FinancialItems {
		if item.Kind == domain.Expense {
			nonOpExpenses = nonOpExpenses.Add(item.Amount)
		}
	}

	summary := domain.TaxSummary{
		TaxableIncome: revenue.Sub(cogs).Sub(opEx).Sub(nonOpExpenses),
	}
	if len(pl.Tax) == 0 {
		return summary
	}

	tax := domain.SumAmounts(pl.Tax)
	summary.HasTax = true
	summary.TaxAmount = decimal.NewNullDecimal(tax)
	summary.NetIncome = decimal.NewNullDecimal(summary.TaxableIncome.Sub(tax))
	if !summary.TaxableIncome.IsZero() {
		rate := tax.Div(summary.TaxableIncome).Mul(decimal.NewFromInt(100))
		summary.EffectiveTaxRate = decimal.NewNullDecimal(rate)
	}
	return summary
}

// detailedProfitLoss lays the profit and loss account out as the ordered
// label-amount rows of the statement presentation: group items interleaved
// with their subtotals and the derived profit lines. Only called for models
// carrying at least one profit and loss item, so an empty model keeps every
// derived collection empty.
func detailedProfitLoss(pl domain.ProfitLossBreakdown, tax domain.TaxSummary) []domain.LabeledAmount {
	var rows []domain.LabeledAmount

	item := func(li domain.LineItem) {
		rows = append(rows, domain.LabeledAmount{Label: li.Account, Amount: li.Amount, Available: true})
	}
	subtotal := func(label string, amount decimal.Decimal) {
		rows = append(rows, domain.LabeledAmount{Label: label, Amount: amount, Available: true, Subtotal: true})
	}

	revenue := domain.SumAmounts(pl.Income)
	for _, li := range pl.Income {
		item(li)
	}
	subtotal("Total Revenue", revenue)

	cogs := domain.SumAmounts(pl.COGS)
	for _, li := range pl.COGS {
		item(li)
	}
	subtotal("Total COGS", cogs)
	grossProfit := revenue.Sub(cogs)
	subtotal("Gross Profit", grossProfit)

	opEx := domain.SumAmounts(pl.OperatingExpenses)
	for _, li := range pl.OperatingExpenses {
		item(li)
	}
	subtotal("Total Operating Expenses", opEx)
	operatingProfit := grossProfit.Sub(opEx)
	subtotal("Operating Profit", operatingProfit)

	otherNet := decimal.Zero
	for _, li := range pl.FinancialItems {
		item(li)
		if li.Kind == domain.Revenue {
			otherNet = otherNet.Add(li.Amount)
		} else {
			otherNet = otherNet.Sub(li.Amount)
		}
	}
	profitBeforeTax := operatingProfit.Add(otherNet)
	subtotal("Profit Before Tax", profitBeforeTax)

	for _, li := range pl.Tax {
		item(li)
	}
	if tax.HasTax {
		subtotal("Net Profit", profitBeforeTax.Sub(tax.TaxAmount.Decimal))
	} else {
		rows = append(rows, domain.LabeledAmount{Label: "Net Profit", Subtotal: true})
	}
	return rows
}

// Summary derives the dashboard headline figures from a model. Revenue covers
// all revenue-kind profit and loss items, expenses all expense-kind ones, so
// net burn is consistent with the statement's own totals.
func (s *aggregatorService) Summary(model *domain.StatementDataModel) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		CashBalance: domain.SumAmounts(model.AssetBreakdown.CashAndCashEquivalents),
	}
	for _, item := range model.ProfitLoss {
		if item.Kind == domain.Revenue {
			summary.Revenue = summary.Revenue.Add(item.Amount)
		} else {
			summary.Expenses = summary.Expenses.Add(item.Amount)
		}
	}
	summary.NetBurn = summary.Expenses.Sub(summary.Revenue)
	return summary
}
