package domain

// SectionKind discriminates the three section content shapes.
type SectionKind string

const (
	SectionTable     SectionKind = "table"
	SectionNarrative SectionKind = "narrative"
	SectionKeyValue  SectionKind = "keyValue"
)

// OrderedSection is the structure-only descriptor of one report section,
// consumed unchanged by both render targets. All cell values arrive
// pre-formatted so the two targets cannot diverge on figures.
//
// A table section with zero rows always carries EmptyMessage; renderers must
// surface the message instead of omitting the section.
type OrderedSection struct {
	// ID is a stable machine identifier, e.g. "balance-sheet".
	ID string `json:"id"`
	// Number is the outline number ("2.1", "2.3.4"); empty for cover,
	// index and signature.
	Number string `json:"number,omitempty"`
	// Title is the full display heading, including the outline number and
	// the interpolated reporting year where applicable.
	Title string `json:"title"`

	Kind SectionKind `json:"kind"`

	Columns    []string    `json:"columns,omitempty"`
	Rows       [][]string  `json:"rows,omitempty"`
	Paragraphs []string    `json:"paragraphs,omitempty"`
	Pairs      [][2]string `json:"pairs,omitempty"`

	EmptyMessage string `json:"emptyMessage,omitempty"`

	// Major sections always start on a fresh page in the paginated target.
	Major bool `json:"major"`
}

// Empty reports whether the section has no content of its kind.
func (s OrderedSection) Empty() bool {
	switch s.Kind {
	case SectionTable:
		return len(s.Rows) == 0
	case SectionNarrative:
		return len(s.Paragraphs) == 0
	case SectionKeyValue:
		return len(s.Pairs) == 0
	}
	return true
}

// StatementResult bundles everything one statement-generation request
// produces: the derived model, the profile snapshot it was rendered against,
// the ordered section descriptors and the per-item aggregation warnings.
type StatementResult struct {
	Model    *StatementDataModel `json:"model"`
	Profile  CompanyProfile      `json:"profile"`
	Sections []OrderedSection    `json:"sections"`
	Warnings []InvalidLineItem   `json:"warnings,omitempty"`
}

// InvalidLineItem describes one raw transaction that was excluded from
// aggregation. It is reported to the caller as data, never as a fatal error.
type InvalidLineItem struct {
	Index       int    `json:"index"`
	Description string `json:"description,omitempty"`
	Reason      string `json:"reason"`
}
