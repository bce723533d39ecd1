package services

import (
	"context"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

// AggregatorSvc turns categorized raw transactions into the statement data
// model. Invalid records are excluded and reported as warnings alongside the
// otherwise-successful model; an empty input is the valid "no data yet"
// state, not an error.
type AggregatorSvc interface {
	Aggregate(ctx context.Context, txns []domain.RawTransaction) (*domain.StatementDataModel, []domain.InvalidLineItem)

	// Summary derives the dashboard headline figures from a model.
	Summary(model *domain.StatementDataModel) domain.DashboardSummary
}

// SectionBuilderSvc produces the fixed ordered section outline for a model
// and a company snapshot. Building never fails; missing profile fields
// degrade to empty strings.
type SectionBuilderSvc interface {
	BuildSections(model *domain.StatementDataModel, profile domain.CompanyProfile) []domain.OrderedSection
}

// Exporter serializes a built section list into a downloadable document.
type Exporter interface {
	Export(sections []domain.OrderedSection, profile domain.CompanyProfile) ([]byte, error)
	Filename(profile domain.CompanyProfile) string
}

// StatementSvc orchestrates one statement generation: fetch transactions and
// profile from the collaborators, classify uncategorized records, aggregate,
// and build sections. Each invocation is an independent synchronous pipeline
// with no shared mutable state.
type StatementSvc interface {
	Generate(ctx context.Context) (*domain.StatementResult, error)

	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)

	// ExportPDF renders the paginated document and returns the file bytes
	// together with the download filename.
	ExportPDF(ctx context.Context) ([]byte, string, error)

	// ExportWorkbook renders the statement as a spreadsheet workbook.
	ExportWorkbook(ctx context.Context) ([]byte, string, error)
}
