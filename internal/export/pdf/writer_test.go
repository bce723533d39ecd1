package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	"github.com/finbooks/fin_statements_app/internal/core/render"
	"github.com/finbooks/fin_statements_app/internal/export/pdf"
)

func TestExportProducesPDFBytes(t *testing.T) {
	sections := []domain.OrderedSection{
		{
			ID:    "general",
			Title: "1 General",
			Kind:  domain.SectionNarrative,
			Paragraphs: []string{
				"The activities consist of trading.",
			},
			Major: true,
		},
		{
			ID:      "profit-loss-account",
			Title:   "2.2 Profit and loss account 2024",
			Kind:    domain.SectionTable,
			Columns: []string{"Account", "Amount (€)"},
			Rows:    [][]string{{"Revenue", "2,000"}},
			Major:   true,
		},
		{
			ID:           "inventories",
			Title:        "2.5.1 Inventories",
			Kind:         domain.SectionTable,
			Columns:      []string{"Account", "Amount (€)"},
			EmptyMessage: "No inventories data.",
		},
	}

	data, err := pdf.NewExporter(render.A4).Export(sections, domain.CompanyProfile{Name: "Acme Trading B.V."})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportEmptyOutline(t *testing.T) {
	data, err := pdf.NewExporter(render.A4).Export(nil, domain.CompanyProfile{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPDFFilename(t *testing.T) {
	e := pdf.NewExporter(render.A4)

	assert.Equal(t, "Full-Financial-Statement-Acme Trading B.V..pdf",
		e.Filename(domain.CompanyProfile{Name: "Acme Trading B.V."}))
	assert.Equal(t, "Full-Financial-Statement-Company.pdf",
		e.Filename(domain.CompanyProfile{Name: "   "}))
	assert.Equal(t, "Full-Financial-Statement-Annual Report- 2024.pdf",
		e.Filename(domain.CompanyProfile{Name: `Annual Report: 2024`}))
}
