package repositories

import (
	"context"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

// CompanyProfileSource supplies the company snapshot a statement is rendered
// against. The snapshot is immutable for the duration of one render.
type CompanyProfileSource interface {
	Get(ctx context.Context) (domain.CompanyProfile, error)
}
