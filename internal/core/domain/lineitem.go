package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemKind classifies a line item within the statement.
type ItemKind string

const (
	Asset     ItemKind = "asset"
	Liability ItemKind = "liability"
	Equity    ItemKind = "equity"
	Revenue   ItemKind = "revenue"
	Expense   ItemKind = "expense"
)

// IsBalanceSheet reports whether the kind belongs on the balance sheet.
func (k ItemKind) IsBalanceSheet() bool {
	return k == Asset || k == Liability || k == Equity
}

// IsProfitLoss reports whether the kind belongs on the profit and loss account.
func (k ItemKind) IsProfitLoss() bool {
	return k == Revenue || k == Expense
}

// TransactionType indicates whether a raw transaction is a credit or a debit.
type TransactionType string

const (
	CreditTxn TransactionType = "credit"
	DebitTxn  TransactionType = "debit"
)

// LineItem is one categorized monetary entry contributing to a statement.
// Amount is a signed decimal in the statement's base currency; zero is valid.
type LineItem struct {
	Account  string          `json:"account"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     ItemKind        `json:"kind"`
}

// Validate checks the structural requirements on a line item.
func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Account) == "" {
		return fmt.Errorf("line item account is required")
	}
	switch li.Kind {
	case Asset, Liability, Equity, Revenue, Expense:
	default:
		return fmt.Errorf("unknown item kind %q for account %s", li.Kind, li.Account)
	}
	return nil
}

// RawTransaction is one record as delivered by the external transaction store,
// already classified by the external classification service. Amount uses
// NullDecimal so a non-numeric value in the upstream payload marks just this
// record invalid instead of failing the whole list.
type RawTransaction struct {
	Date              string              `json:"date"`
	Description       string              `json:"description"`
	Amount            decimal.NullDecimal `json:"amount"`
	Category          string              `json:"category"`
	Type              TransactionType     `json:"type"`
	DashboardCategory string              `json:"dashboardCategory,omitempty"`
}

// Validate reports why a raw transaction cannot contribute to aggregation.
// A nil return means the record is usable; zero amounts are valid.
func (t RawTransaction) Validate() error {
	if !t.Amount.Valid {
		return fmt.Errorf("non-numeric amount")
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("missing description")
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("missing category")
	}
	if t.Type != CreditTxn && t.Type != DebitTxn {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}
