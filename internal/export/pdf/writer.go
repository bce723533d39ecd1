package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/core/render"
	"github.com/finbooks/fin_statements_app/internal/utils"
)

// ptToMM converts the renderer's point-based unit heights into maroto's
// millimeter row heights.
const ptToMM = 25.4 / 72.0

// Exporter writes the paginated rendering as a PDF document. Page breaks are
// decided by the paginated renderer, not by the PDF library, so the exported
// document always matches the page structure reported by the pages endpoint.
type Exporter struct {
	renderer *render.PaginatedRenderer
	spec     render.PageSpec
}

// NewExporter creates a PDF exporter for the given page geometry.
func NewExporter(spec render.PageSpec) *Exporter {
	return &Exporter{
		renderer: render.NewPaginatedRenderer(spec),
		spec:     spec,
	}
}

var _ portssvc.Exporter = (*Exporter)(nil)

// Export renders the sections into pages and emits each as an explicit PDF
// page.
func (e *Exporter) Export(sections []domain.OrderedSection, _ domain.CompanyProfile) ([]byte, error) {
	rendering, err := e.renderer.Render(sections)
	if err != nil {
		return nil, err
	}
	doc, ok := rendering.(*render.Document)
	if !ok {
		return nil, fmt.Errorf("unexpected rendering type %T", rendering)
	}

	margin := e.spec.Margin * ptToMM
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(margin).
		WithTopMargin(margin).
		WithRightMargin(margin).
		WithBottomMargin(margin / 2).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current}",
			Place:   props.RightBottom,
			Size:    10,
		}).
		Build()

	m := maroto.New(cfg)
	for _, pg := range doc.Pages {
		p := page.New()
		for _, unit := range pg.Units {
			p.Add(unitRow(unit))
		}
		m.AddPages(p)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return generated.GetBytes(), nil
}

// Filename builds the download name from the company name, falling back to
// "Company" when the profile has none.
func (e *Exporter) Filename(profile domain.CompanyProfile) string {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = "Company"
	}
	return fmt.Sprintf("Full-Financial-Statement-%s.pdf", utils.SanitizeFilename(name))
}

// unitRow maps one placed content unit onto a maroto row of the same height.
func unitRow(unit render.Unit) core.Row {
	height := unit.Height * ptToMM
	switch unit.Type {
	case render.UnitHeading:
		return row.New(height).Add(
			text.NewCol(12, unit.Text, props.Text{Size: 14, Style: fontstyle.Bold}),
		)
	case render.UnitColumns:
		return cellsRow(height, unit.Cells, props.Text{Size: 11, Style: fontstyle.Bold})
	case render.UnitRow, render.UnitPair:
		return cellsRow(height, unit.Cells, props.Text{Size: 11})
	case render.UnitEmptyMessage:
		return row.New(height).Add(
			text.NewCol(12, unit.Text, props.Text{Size: 11, Style: fontstyle.Italic}),
		)
	case render.UnitParagraph:
		return row.New(height).Add(
			text.NewCol(12, unit.Text, props.Text{Size: 11}),
		)
	default:
		return row.New(height).Add(col.New(12))
	}
}

// cellsRow splits the 12-column grid evenly across the cells; the trailing
// amount cell is right-aligned.
func cellsRow(height float64, cells []string, style props.Text) core.Row {
	r := row.New(height)
	if len(cells) == 0 {
		return r.Add(col.New(12))
	}
	width := 12 / len(cells)
	for i, cell := range cells {
		w := width
		if i == len(cells)-1 {
			w = 12 - width*(len(cells)-1)
		}
		cellStyle := style
		if i == len(cells)-1 && len(cells) > 1 {
			cellStyle.Align = align.Right
		}
		r.Add(text.NewCol(w, cell, cellStyle))
	}
	return r
}
