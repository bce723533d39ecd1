package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portsrepo "github.com/finbooks/fin_statements_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
)

// statementService implements the StatementSvc interface
type statementService struct {
	BaseService
	txnStore   portsrepo.TransactionStore
	profiles   portsrepo.CompanyProfileSource
	classifier portsrepo.Classifier
	aggregator portssvc.AggregatorSvc
	sections   portssvc.SectionBuilderSvc
	pdf        portssvc.Exporter
	workbook   portssvc.Exporter
}

// StatementServiceOption configures the statement service
type StatementServiceOption func(*statementService)

// WithClassifier sets the external classification service used for records
// that arrive without a category. Without it such records stay uncategorized
// and are excluded by the aggregator with a warning.
func WithClassifier(classifier portsrepo.Classifier) StatementServiceOption {
	return func(s *statementService) {
		s.classifier = classifier
	}
}

// WithPDFExporter sets the exporter behind ExportPDF.
func WithPDFExporter(exporter portssvc.Exporter) StatementServiceOption {
	return func(s *statementService) {
		s.pdf = exporter
	}
}

// WithWorkbookExporter sets the exporter behind ExportWorkbook.
func WithWorkbookExporter(exporter portssvc.Exporter) StatementServiceOption {
	return func(s *statementService) {
		s.workbook = exporter
	}
}

// NewStatementService creates the statement orchestrator with the provided
// collaborators.
func NewStatementService(
	txnStore portsrepo.TransactionStore,
	profiles portsrepo.CompanyProfileSource,
	aggregator portssvc.AggregatorSvc,
	sections portssvc.SectionBuilderSvc,
	opts ...StatementServiceOption,
) portssvc.StatementSvc {
	s := &statementService{
		txnStore:   txnStore,
		profiles:   profiles,
		aggregator: aggregator,
		sections:   sections,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure statementService implements the StatementSvc interface
var _ portssvc.StatementSvc = (*statementService)(nil)

// Generate runs one statement pipeline: fetch, classify, aggregate, build.
// Collaborator failures abort the whole run; per-record problems surface as
// warnings on an otherwise complete result.
func (s *statementService) Generate(ctx context.Context) (*domain.StatementResult, error) {
	txns, err := s.txnStore.List(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from store")
		return nil, err
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch company profile")
		return nil, err
	}

	txns = s.classifyUncategorized(ctx, txns)

	model, warnings := s.aggregator.Aggregate(ctx, txns)
	sections := s.sections.BuildSections(model, profile)

	s.LogInfo(ctx, "Statement generated",
		slog.Int("transactions", len(txns)),
		slog.Int("sections", len(sections)),
		slog.Int("warnings", len(warnings)),
	)
	return &domain.StatementResult{
		Model:    model,
		Profile:  profile,
		Sections: sections,
		Warnings: warnings,
	}, nil
}

// classifyUncategorized fills in missing categories via the classifier. A
// classification failure leaves the record uncategorized so the aggregator
// reports it as a warning; it never fails the run.
func (s *statementService) classifyUncategorized(ctx context.Context, txns []domain.RawTransaction) []domain.RawTransaction {
	if s.classifier == nil {
		return txns
	}
	for i, txn := range txns {
		if txn.Category != "" {
			continue
		}
		classification, err := s.classifier.Classify(ctx, txn.Description)
		if err != nil {
			s.LogWarn(ctx, "Classification failed, leaving record uncategorized",
				slog.Int("index", i),
				slog.String("description", txn.Description),
				slog.String("error", err.Error()),
			)
			continue
		}
		txns[i].Category = classification.Category
		if txns[i].DashboardCategory == "" {
			txns[i].DashboardCategory = classification.DashboardCategory
		}
	}
	return txns
}

// DashboardSummary derives the dashboard headline figures from a fresh
// aggregation of the current transaction set.
func (s *statementService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	txns, err := s.txnStore.List(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from store")
		return nil, err
	}
	txns = s.classifyUncategorized(ctx, txns)
	model, _ := s.aggregator.Aggregate(ctx, txns)
	summary := s.aggregator.Summary(model)
	return &summary, nil
}

// ExportPDF generates the statement and renders it as the paginated PDF.
func (s *statementService) ExportPDF(ctx context.Context) ([]byte, string, error) {
	return s.export(ctx, s.pdf)
}

// ExportWorkbook generates the statement and renders it as a spreadsheet.
func (s *statementService) ExportWorkbook(ctx context.Context) ([]byte, string, error) {
	return s.export(ctx, s.workbook)
}

func (s *statementService) export(ctx context.Context, exporter portssvc.Exporter) ([]byte, string, error) {
	if exporter == nil {
		return nil, "", errors.New("no exporter configured")
	}
	result, err := s.Generate(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := exporter.Export(result.Sections, result.Profile)
	if err != nil {
		s.LogError(ctx, err, "Failed to export statement")
		return nil, "", err
	}
	return data, exporter.Filename(result.Profile), nil
}
