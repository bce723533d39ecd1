package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	"github.com/finbooks/fin_statements_app/internal/core/render"
)

// SectionResponse represents one section block of the live statement view
type SectionResponse struct {
	ID           string      `json:"id"`
	Number       string      `json:"number,omitempty"`
	Title        string      `json:"title"`
	Kind         string      `json:"kind"`
	Columns      []string    `json:"columns,omitempty"`
	Rows         [][]string  `json:"rows,omitempty"`
	Paragraphs   []string    `json:"paragraphs,omitempty"`
	Pairs        [][2]string `json:"pairs,omitempty"`
	EmptyMessage string      `json:"emptyMessage,omitempty"`
}

// WarningResponse represents one excluded transaction warning
type WarningResponse struct {
	Index       int    `json:"index"`
	Description string `json:"description,omitempty"`
	Reason      string `json:"reason"`
}

// LiveStatementResponse represents the full live statement view response
type LiveStatementResponse struct {
	Company  string            `json:"company"`
	Year     string            `json:"year"`
	Sections []SectionResponse `json:"sections"`
	Warnings []WarningResponse `json:"warnings,omitempty"`
}

// PageUnitResponse represents one placed content unit on a statement page
type PageUnitResponse struct {
	SectionID string   `json:"sectionID"`
	Type      string   `json:"type"`
	Text      string   `json:"text,omitempty"`
	Cells     []string `json:"cells,omitempty"`
	Height    float64  `json:"height"`
}

// PageResponse represents one page of the paginated statement document
type PageResponse struct {
	Number int                `json:"number"`
	Units  []PageUnitResponse `json:"units"`
}

// PaginatedStatementResponse represents the paginated statement document response
type PaginatedStatementResponse struct {
	Company  string            `json:"company"`
	Year     string            `json:"year"`
	Spec     render.PageSpec   `json:"spec"`
	Pages    []PageResponse    `json:"pages"`
	Warnings []WarningResponse `json:"warnings,omitempty"`
}

// DashboardSummaryResponse represents the dashboard headline figures response
type DashboardSummaryResponse struct {
	CashBalance decimal.Decimal `json:"cashBalance"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetBurn     decimal.Decimal `json:"netBurn"`
}

// ToLiveStatementResponse converts a statement result and its live rendering
// to the live view response DTO
func ToLiveStatementResponse(result *domain.StatementResult, view *render.LiveView) LiveStatementResponse {
	sections := make([]SectionResponse, 0, len(view.Blocks))
	for i, block := range view.Blocks {
		resp := SectionResponse{
			ID:           block.ID,
			Title:        block.Title,
			Kind:         string(block.Kind),
			Columns:      block.Columns,
			Rows:         block.Rows,
			Paragraphs:   block.Paragraphs,
			Pairs:        block.Pairs,
			EmptyMessage: block.EmptyMessage,
		}
		if i < len(result.Sections) {
			resp.Number = result.Sections[i].Number
		}
		sections = append(sections, resp)
	}
	return LiveStatementResponse{
		Company:  result.Profile.Name,
		Year:     result.Profile.FinancialYear,
		Sections: sections,
		Warnings: toWarningResponses(result.Warnings),
	}
}

// ToPaginatedStatementResponse converts a statement result and its paginated
// rendering to the pages response DTO
func ToPaginatedStatementResponse(result *domain.StatementResult, doc *render.Document) PaginatedStatementResponse {
	pages := make([]PageResponse, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		units := make([]PageUnitResponse, 0, len(page.Units))
		for _, unit := range page.Units {
			units = append(units, PageUnitResponse{
				SectionID: unit.SectionID,
				Type:      string(unit.Type),
				Text:      unit.Text,
				Cells:     unit.Cells,
				Height:    unit.Height,
			})
		}
		pages = append(pages, PageResponse{Number: page.Number, Units: units})
	}
	return PaginatedStatementResponse{
		Company:  result.Profile.Name,
		Year:     result.Profile.FinancialYear,
		Spec:     doc.Spec,
		Pages:    pages,
		Warnings: toWarningResponses(result.Warnings),
	}
}

// ToDashboardSummaryResponse converts the domain summary to its response DTO
func ToDashboardSummaryResponse(summary domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse(summary)
}

func toWarningResponses(warnings []domain.InvalidLineItem) []WarningResponse {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningResponse(w))
	}
	return out
}
