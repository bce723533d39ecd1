package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/fin_statements_app/internal/apperrors"
	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portsrepo "github.com/finbooks/fin_statements_app/internal/core/ports/repositories"
)

// TransactionStore talks to the external transaction store over HTTP.
type TransactionStore struct {
	client *client
}

// NewTransactionStore creates a transaction store adapter for the given base
// URL.
func NewTransactionStore(baseURL string, timeout time.Duration) *TransactionStore {
	return &TransactionStore{client: newClient(baseURL, timeout)}
}

var _ portsrepo.TransactionStore = (*TransactionStore)(nil)

// wireTransaction is the store's JSON shape. Amount stays raw so one
// non-numeric value marks only its own record invalid instead of failing the
// whole list decode.
type wireTransaction struct {
	Date              string          `json:"date"`
	Description       string          `json:"description"`
	Amount            json.RawMessage `json:"amount"`
	Category          string          `json:"category"`
	Type              string          `json:"type"`
	DashboardCategory string          `json:"dashboardCategory"`
}

// List fetches every stored transaction. Transport and payload-level failures
// abort the call; per-record amount problems are carried into the domain
// record as an invalid amount.
func (s *TransactionStore) List(ctx context.Context) ([]domain.RawTransaction, error) {
	var wire []wireTransaction
	if err := s.client.getJSON(ctx, "/transactions", &wire); err != nil {
		return nil, err
	}

	txns := make([]domain.RawTransaction, 0, len(wire))
	for _, w := range wire {
		txns = append(txns, domain.RawTransaction{
			Date:              w.Date,
			Description:       w.Description,
			Amount:            parseAmount(w.Amount),
			Category:          w.Category,
			Type:              domain.TransactionType(w.Type),
			DashboardCategory: w.DashboardCategory,
		})
	}
	return txns, nil
}

// Create appends one transaction to the store.
func (s *TransactionStore) Create(ctx context.Context, txn domain.RawTransaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.client.postJSON(ctx, "/transactions", txn, nil)
}

// parseAmount accepts a JSON number or a numeric string; anything else yields
// an invalid NullDecimal.
func parseAmount(raw json.RawMessage) decimal.NullDecimal {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.NullDecimal{}
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
