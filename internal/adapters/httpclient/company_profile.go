package httpclient

import (
	"context"
	"time"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portsrepo "github.com/finbooks/fin_statements_app/internal/core/ports/repositories"
)

// CompanyProfileSource fetches the company snapshot from the profile service.
type CompanyProfileSource struct {
	client *client
}

// NewCompanyProfileSource creates a profile adapter for the given base URL.
func NewCompanyProfileSource(baseURL string, timeout time.Duration) *CompanyProfileSource {
	return &CompanyProfileSource{client: newClient(baseURL, timeout)}
}

var _ portsrepo.CompanyProfileSource = (*CompanyProfileSource)(nil)

// Get fetches the current company profile.
func (s *CompanyProfileSource) Get(ctx context.Context) (domain.CompanyProfile, error) {
	var profile domain.CompanyProfile
	if err := s.client.getJSON(ctx, "/company", &profile); err != nil {
		return domain.CompanyProfile{}, err
	}
	return profile, nil
}
