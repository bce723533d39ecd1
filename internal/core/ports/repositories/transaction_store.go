package repositories

import (
	"context"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

// TransactionStore is the external store that owns all durable transaction
// state. The core never persists anything itself; it reads the full
// categorized transaction list on every statement-generation request.
type TransactionStore interface {
	// List returns every stored transaction. A failure here aborts the whole
	// statement generation; the pipeline never runs on partial data.
	List(ctx context.Context) ([]domain.RawTransaction, error)

	// Create appends one transaction to the store.
	Create(ctx context.Context, txn domain.RawTransaction) error
}
