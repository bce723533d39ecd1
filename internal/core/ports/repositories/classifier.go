package repositories

import (
	"context"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

// Classifier is the external classification service. Classification logic is
// out of scope for this repo; records arriving without a category are sent
// here before aggregation.
type Classifier interface {
	Classify(ctx context.Context, description string) (domain.Classification, error)
}
