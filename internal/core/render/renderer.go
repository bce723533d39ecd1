package render

import (
	"strings"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

// Renderer is the common contract behind both render targets. Each renderer
// is stateless; both consume the same section descriptors, which is what
// guarantees content parity structurally rather than by convention.
type Renderer interface {
	Render(sections []domain.OrderedSection) (Rendering, error)
}

// Rendering is a finished render of either target. ContentRows exposes a
// page-break-agnostic view of the output used to verify that both targets
// present identical figures and section structure.
type Rendering interface {
	ContentRows() []ContentRow
}

// ContentRow is one content-bearing row of a rendering: a table row, a
// key-value pair, an empty-section message or a narrative paragraph, tagged
// with the title of the section it belongs to.
type ContentRow struct {
	SectionTitle string
	Cells        []string
}

// contentRowsFromSection derives the canonical content rows for one section.
// The live renderer uses it directly; the paginated renderer reconstructs
// the same rows from its placed units, wrapped paragraph lines rejoined.
func contentRowsFromSection(sec domain.OrderedSection) []ContentRow {
	var rows []ContentRow
	switch sec.Kind {
	case domain.SectionTable:
		if len(sec.Rows) == 0 {
			rows = append(rows, ContentRow{SectionTitle: sec.Title, Cells: []string{sec.EmptyMessage}})
			break
		}
		for _, r := range sec.Rows {
			rows = append(rows, ContentRow{SectionTitle: sec.Title, Cells: r})
		}
	case domain.SectionKeyValue:
		if len(sec.Pairs) == 0 {
			rows = append(rows, ContentRow{SectionTitle: sec.Title, Cells: []string{sec.EmptyMessage}})
			break
		}
		for _, p := range sec.Pairs {
			rows = append(rows, ContentRow{SectionTitle: sec.Title, Cells: []string{p[0], p[1]}})
		}
	case domain.SectionNarrative:
		for _, p := range sec.Paragraphs {
			rows = append(rows, ContentRow{SectionTitle: sec.Title, Cells: []string{p}})
		}
	}
	return rows
}

// wrapText word-wraps a paragraph so each line fits maxWidth points at the
// body font size. Widths are counted in runes, and words longer than a full
// line are split hard on rune boundaries so layout always makes progress
// without ever cutting a multi-byte character.
func wrapText(text string, maxWidth float64) []string {
	maxChars := int(maxWidth / avgCharWidth)
	if maxChars < 1 {
		maxChars = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	currentLen := 0
	for _, w := range words {
		runes := []rune(w)
		for len(runes) > maxChars {
			if current != "" {
				lines = append(lines, current)
				current = ""
				currentLen = 0
			}
			lines = append(lines, string(runes[:maxChars]))
			runes = runes[maxChars:]
		}
		word := string(runes)
		switch {
		case current == "":
			current = word
			currentLen = len(runes)
		case currentLen+1+len(runes) <= maxChars:
			current += " " + word
			currentLen += 1 + len(runes)
		default:
			lines = append(lines, current)
			current = word
			currentLen = len(runes)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
