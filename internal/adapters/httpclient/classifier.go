package httpclient

import (
	"context"
	"time"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portsrepo "github.com/finbooks/fin_statements_app/internal/core/ports/repositories"
)

// Classifier calls the external classification service.
type Classifier struct {
	client *client
}

// NewClassifier creates a classifier adapter for the given base URL.
func NewClassifier(baseURL string, timeout time.Duration) *Classifier {
	return &Classifier{client: newClient(baseURL, timeout)}
}

var _ portsrepo.Classifier = (*Classifier)(nil)

type classifyRequest struct {
	Description string `json:"description"`
}

// Classify asks the service to categorize one transaction description.
func (c *Classifier) Classify(ctx context.Context, description string) (domain.Classification, error) {
	var classification domain.Classification
	err := c.client.postJSON(ctx, "/classify", classifyRequest{Description: description}, &classification)
	if err != nil {
		return domain.Classification{}, err
	}
	return classification, nil
}
