package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/fin_statements_app/internal/apperrors"
	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/core/services"
)

// --- Mock TransactionStore ---
type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) List(ctx context.Context) ([]domain.RawTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawTransaction), args.Error(1)
}

func (m *MockTransactionStore) Create(ctx context.Context, txn domain.RawTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock CompanyProfileSource ---
type MockProfileSource struct {
	mock.Mock
}

func (m *MockProfileSource) Get(ctx context.Context) (domain.CompanyProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CompanyProfile), args.Error(1)
}

// --- Mock Classifier ---
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, description string) (domain.Classification, error) {
	args := m.Called(ctx, description)
	return args.Get(0).(domain.Classification), args.Error(1)
}

// --- Mock Exporter ---
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(sections []domain.OrderedSection, profile domain.CompanyProfile) ([]byte, error) {
	args := m.Called(sections, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExporter) Filename(profile domain.CompanyProfile) string {
	args := m.Called(profile)
	return args.String(0)
}

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	store      *MockTransactionStore
	profiles   *MockProfileSource
	classifier *MockClassifier
	exporter   *MockExporter
	service    portssvc.StatementSvc
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.store = new(MockTransactionStore)
	s.profiles = new(MockProfileSource)
	s.classifier = new(MockClassifier)
	s.exporter = new(MockExporter)
	s.service = services.NewStatementService(
		s.store,
		s.profiles,
		services.NewAggregatorService(),
		services.NewSectionBuilderService(),
		services.WithClassifier(s.classifier),
		services.WithPDFExporter(s.exporter),
		services.WithWorkbookExporter(s.exporter),
	)
}

func (s *StatementServiceTestSuite) TestGenerate_Success() {
	ctx := context.Background()
	s.store.On("List", ctx).Return([]domain.RawTransaction{
		txn("Product sales", "Revenue", 1500, domain.CreditTxn),
	}, nil).Once()
	s.profiles.On("Get", ctx).Return(testProfile(), nil).Once()

	result, err := s.service.Generate(ctx)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("Acme Trading B.V.", result.Profile.Name)
	s.NotEmpty(result.Sections)
	s.Empty(result.Warnings)
	s.store.AssertExpectations(s.T())
	s.profiles.AssertExpectations(s.T())
}

func (s *StatementServiceTestSuite) TestGenerate_StoreFailureAborts() {
	ctx := context.Background()
	s.store.On("List", ctx).Return(nil, fmt.Errorf("%w: connection refused", apperrors.ErrUpstream)).Once()

	result, err := s.service.Generate(ctx)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUpstream)
	s.Nil(result)
	s.profiles.AssertNotCalled(s.T(), "Get", mock.Anything)
}

func (s *StatementServiceTestSuite) TestGenerate_ProfileFailureAborts() {
	ctx := context.Background()
	s.store.On("List", ctx).Return([]domain.RawTransaction{}, nil).Once()
	s.profiles.On("Get", ctx).Return(domain.CompanyProfile{}, fmt.Errorf("%w: status 503", apperrors.ErrUpstream)).Once()

	result, err := s.service.Generate(ctx)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUpstream)
	s.Nil(result)
}

func (s *StatementServiceTestSuite) TestGenerate_ClassifiesUncategorizedRecords() {
	ctx := context.Background()
	uncategorized := txn("Monthly office rent", "", 800, domain.DebitTxn)
	s.store.On("List", ctx).Return([]domain.RawTransaction{uncategorized}, nil).Once()
	s.profiles.On("Get", ctx).Return(testProfile(), nil).Once()
	s.classifier.On("Classify", ctx, "Monthly office rent").
		Return(domain.Classification{Category: "Operating Expenses"}, nil).Once()

	result, err := s.service.Generate(ctx)

	s.Require().NoError(err)
	s.Empty(result.Warnings)
	s.Require().Len(result.Model.ProfitLoss, 1)
	s.Equal("Operating Expenses", result.Model.ProfitLoss[0].Category)
	s.classifier.AssertExpectations(s.T())
}

func (s *StatementServiceTestSuite) TestGenerate_ClassifierFailureBecomesWarning() {
	ctx := context.Background()
	uncategorized := txn("Mystery payment", "", 100, domain.DebitTxn)
	s.store.On("List", ctx).Return([]domain.RawTransaction{uncategorized}, nil).Once()
	s.profiles.On("Get", ctx).Return(testProfile(), nil).Once()
	s.classifier.On("Classify", ctx, "Mystery payment").
		Return(domain.Classification{}, fmt.Errorf("%w: timeout", apperrors.ErrUpstream)).Once()

	result, err := s.service.Generate(ctx)

	s.Require().NoError(err)
	s.Require().Len(result.Warnings, 1)
	s.Equal("missing category", result.Warnings[0].Reason)
	s.Empty(result.Model.ProfitLoss)
}

func (s *StatementServiceTestSuite) TestDashboardSummary() {
	ctx := context.Background()
	s.store.On("List", ctx).Return([]domain.RawTransaction{
		txn("Business account balance", "Cash at bank", 5000, domain.DebitTxn),
		txn("Product sales", "Revenue", 2000, domain.CreditTxn),
		txn("Office rent", "Operating Expenses", 3000, domain.DebitTxn),
	}, nil).Once()

	summary, err := s.service.DashboardSummary(ctx)

	s.Require().NoError(err)
	s.True(summary.CashBalance.Equal(decimal.NewFromInt(5000)))
	s.True(summary.Revenue.Equal(decimal.NewFromInt(2000)))
	s.True(summary.Expenses.Equal(decimal.NewFromInt(3000)))
	s.True(summary.NetBurn.Equal(decimal.NewFromInt(1000)))
}

func (s *StatementServiceTestSuite) TestExportPDF() {
	ctx := context.Background()
	s.store.On("List", ctx).Return([]domain.RawTransaction{}, nil).Once()
	s.profiles.On("Get", ctx).Return(testProfile(), nil).Once()
	s.exporter.On("Export", mock.Anything, testProfile()).Return([]byte("%PDF"), nil).Once()
	s.exporter.On("Filename", testProfile()).Return("Full-Financial-Statement-Acme Trading B.V..pdf").Once()

	data, filename, err := s.service.ExportPDF(ctx)

	s.Require().NoError(err)
	s.Equal([]byte("%PDF"), data)
	s.Equal("Full-Financial-Statement-Acme Trading B.V..pdf", filename)
	s.exporter.AssertExpectations(s.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
