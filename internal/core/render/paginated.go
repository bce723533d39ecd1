package render

import "github.com/finbooks/fin_statements_app/internal/core/domain"

// PageSpec describes the fixed page geometry of the paginated target, in
// points. Content flows inside width-2*margin by height-2*margin.
type PageSpec struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// A4 is the default page geometry, matching the exported document.
var A4 = PageSpec{Width: 595.28, Height: 841.89, Margin: 60}

// ContentWidth is the shared wrap width for all narrative sections.
func (s PageSpec) ContentWidth() float64 {
	return s.Width - 2*s.Margin
}

func (s PageSpec) contentLimit() float64 {
	return s.Height - s.Margin
}

// UnitType tags one fixed-height content unit.
type UnitType string

const (
	UnitHeading      UnitType = "heading"
	UnitColumns      UnitType = "columns"
	UnitRow          UnitType = "row"
	UnitParagraph    UnitType = "paragraphLine"
	UnitPair         UnitType = "pair"
	UnitEmptyMessage UnitType = "emptyMessage"
	UnitSpacer       UnitType = "spacer"
)

// Fixed unit heights in points. avgCharWidth approximates the body font's
// glyph advance for deterministic word wrapping.
const (
	headingHeight   = 28
	columnsHeight   = 22
	rowHeight       = 20
	paragraphHeight = 16
	pairHeight      = 20
	emptyMsgHeight  = 20
	spacerHeight    = 10
	avgCharWidth    = 6.5
)

// Unit is one placed content unit: a heading line, a wrapped paragraph line,
// a table header or row, a key-value line or an empty-section message.
type Unit struct {
	SectionID    string   `json:"sectionID"`
	SectionTitle string   `json:"sectionTitle"`
	Type         UnitType `json:"type"`
	Text         string   `json:"text,omitempty"`
	Cells        []string `json:"cells,omitempty"`
	Height       float64  `json:"height"`

	// Paragraph holds the full unwrapped paragraph on the first line unit of
	// each narrative paragraph; subsequent line units leave it empty.
	Paragraph string `json:"-"`
}

// Page is one emitted page with its 1-based, contiguous page number,
// rendered at a fixed bottom-right position by the document writer.
type Page struct {
	Number int    `json:"number"`
	Units  []Unit `json:"units"`
}

// Document is the paginated rendering: a fixed-page-size document where long
// tables and wrapped paragraphs flow across page boundaries.
type Document struct {
	Spec  PageSpec `json:"spec"`
	Pages []Page   `json:"pages"`
}

// PaginatedRenderer flows section content units through a per-page cursor
// state machine. Stateless across Render calls.
type PaginatedRenderer struct {
	spec PageSpec
}

// NewPaginatedRenderer returns a paginated renderer for the given geometry.
func NewPaginatedRenderer(spec PageSpec) *PaginatedRenderer {
	return &PaginatedRenderer{spec: spec}
}

var _ Renderer = (*PaginatedRenderer)(nil)

// Render lays the sections out into pages. Major sections always start on a
// fresh page, split tables keep every row exactly once without repeating the
// header, and a unit taller than a full page is placed on a page of its own
// so pagination always terminates.
func (r *PaginatedRenderer) Render(sections []domain.OrderedSection) (Rendering, error) {
	doc := &Document{Spec: r.spec}

	var current []Unit
	cursor := r.spec.Margin
	limit := r.spec.contentLimit()

	flush := func() {
		if len(current) == 0 {
			return
		}
		doc.Pages = append(doc.Pages, Page{Number: len(doc.Pages) + 1, Units: current})
		current = nil
		cursor = r.spec.Margin
	}

	for _, sec := range sections {
		if sec.Major {
			flush()
		}
		for _, u := range r.sectionUnits(sec) {
			if u.Type == UnitSpacer && (len(current) == 0 || cursor+u.Height > limit) {
				continue // spacing never opens or overflows a page
			}
			if cursor+u.Height > limit {
				if len(current) > 0 {
					flush()
				}
				// A unit taller than a full page still gets placed; it
				// overflows its own page rather than looping forever.
				if u.Height > limit-r.spec.Margin {
					current = append(current, u)
					flush()
					continue
				}
			}
			current = append(current, u)
			cursor += u.Height
		}
	}
	flush()

	return doc, nil
}

// sectionUnits converts one section descriptor into its fixed-height units.
func (r *PaginatedRenderer) sectionUnits(sec domain.OrderedSection) []Unit {
	unit := func(t UnitType, h float64) Unit {
		return Unit{SectionID: sec.ID, SectionTitle: sec.Title, Type: t, Height: h}
	}

	units := []Unit{}
	heading := unit(UnitHeading, headingHeight)
	heading.Text = sec.Title
	units = append(units, heading)

	switch sec.Kind {
	case domain.SectionTable:
		if len(sec.Rows) == 0 {
			em := unit(UnitEmptyMessage, emptyMsgHeight)
			em.Text = sec.EmptyMessage
			units = append(units, em)
			break
		}
		if len(sec.Columns) > 0 {
			head := unit(UnitColumns, columnsHeight)
			head.Cells = sec.Columns
			units = append(units, head)
		}
		for _, row := range sec.Rows {
			u := unit(UnitRow, rowHeight)
			u.Cells = row
			units = append(units, u)
		}
	case domain.SectionNarrative:
		for _, para := range sec.Paragraphs {
			lines := wrapText(para, r.spec.ContentWidth())
			for i, line := range lines {
				u := unit(UnitParagraph, paragraphHeight)
				u.Text = line
				if i == 0 {
					u.Paragraph = para
				}
				units = append(units, u)
			}
		}
	case domain.SectionKeyValue:
		if len(sec.Pairs) == 0 {
			em := unit(UnitEmptyMessage, emptyMsgHeight)
			em.Text = sec.EmptyMessage
			units = append(units, em)
			break
		}
		for _, p := range sec.Pairs {
			u := unit(UnitPair, pairHeight)
			u.Cells = []string{p[0], p[1]}
			units = append(units, u)
		}
	}

	units = append(units, unit(UnitSpacer, spacerHeight))
	return units
}

// ContentRows implements Rendering by flattening all pages back into the
// canonical content rows, paragraph lines rejoined into their source
// paragraphs. Modulo page breaks this equals the live view's rows.
func (d *Document) ContentRows() []ContentRow {
	var rows []ContentRow
	for _, page := range d.Pages {
		for _, u := range page.Units {
			switch u.Type {
			case UnitRow, UnitPair:
				rows = append(rows, ContentRow{SectionTitle: u.SectionTitle, Cells: u.Cells})
			case UnitEmptyMessage:
				rows = append(rows, ContentRow{SectionTitle: u.SectionTitle, Cells: []string{u.Text}})
			case UnitParagraph:
				if u.Paragraph != "" {
					rows = append(rows, ContentRow{SectionTitle: u.SectionTitle, Cells: []string{u.Paragraph}})
				}
			}
		}
	}
	return rows
}
