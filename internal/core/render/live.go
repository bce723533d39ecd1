package render

import "github.com/finbooks/fin_statements_app/internal/core/domain"

// Block is one visual block of the live view: exactly one section, rendered
// in full regardless of height.
type Block struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Kind         domain.SectionKind `json:"kind"`
	Columns      []string          `json:"columns,omitempty"`
	Rows         [][]string        `json:"rows,omitempty"`
	Paragraphs   []string          `json:"paragraphs,omitempty"`
	Pairs        [][2]string       `json:"pairs,omitempty"`
	EmptyMessage string            `json:"emptyMessage,omitempty"`
}

// LiveView is the unpaginated, continuously scrollable rendering: one block
// per section, in section order. It is the reference rendering against which
// the paginated document is checked for content parity.
type LiveView struct {
	Blocks []Block `json:"blocks"`
}

// LiveRenderer renders sections into a LiveView. It is stateless and safe
// for concurrent use.
type LiveRenderer struct{}

// NewLiveRenderer returns the live (on-screen) renderer.
func NewLiveRenderer() *LiveRenderer {
	return &LiveRenderer{}
}

var _ Renderer = (*LiveRenderer)(nil)

// Render produces one block per section, in order. Table and key-value
// sections without content keep their EmptyMessage so no section is ever
// silently omitted.
func (r *LiveRenderer) Render(sections []domain.OrderedSection) (Rendering, error) {
	view := &LiveView{Blocks: make([]Block, 0, len(sections))}
	for _, sec := range sections {
		b := Block{
			ID:         sec.ID,
			Title:      sec.Title,
			Kind:       sec.Kind,
			Columns:    sec.Columns,
			Rows:       sec.Rows,
			Paragraphs: sec.Paragraphs,
			Pairs:      sec.Pairs,
		}
		if sec.Empty() {
			b.EmptyMessage = sec.EmptyMessage
		}
		view.Blocks = append(view.Blocks, b)
	}
	return view, nil
}

// ContentRows implements Rendering.
func (v *LiveView) ContentRows() []ContentRow {
	var rows []ContentRow
	for _, b := range v.Blocks {
		rows = append(rows, contentRowsFromSection(domain.OrderedSection{
			Title:        b.Title,
			Kind:         b.Kind,
			Rows:         b.Rows,
			Paragraphs:   b.Paragraphs,
			Pairs:        b.Pairs,
			EmptyMessage: b.EmptyMessage,
		})...)
	}
	return rows
}
