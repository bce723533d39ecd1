package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/utils"
)

const sheetName = "Financial Statement"

// Exporter writes the built section outline as a spreadsheet workbook: one
// sheet, section headings in bold, tables and key-value pairs as cell rows.
// Cell values are the pre-formatted section strings, so workbook figures
// match the other render targets exactly.
type Exporter struct{}

// NewExporter creates the workbook exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

var _ portssvc.Exporter = (*Exporter)(nil)

// Export writes the sections into a single-sheet workbook.
func (e *Exporter) Export(sections []domain.OrderedSection, _ domain.CompanyProfile) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headingStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return nil, err
	}
	columnStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	rowIdx := 1
	writeCells := func(cells []string, style int) error {
		for colIdx, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, ref, cell); err != nil {
				return err
			}
			if style != 0 {
				if err := f.SetCellStyle(sheetName, ref, ref, style); err != nil {
					return err
				}
			}
		}
		rowIdx++
		return nil
	}

	for _, sec := range sections {
		if err := writeCells([]string{sec.Title}, headingStyle); err != nil {
			return nil, err
		}
		if err := writeSectionBody(sec, writeCells, columnStyle); err != nil {
			return nil, err
		}
		rowIdx++ // blank separator row
	}

	if err := f.SetColWidth(sheetName, "A", "A", 48); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "C", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSectionBody(sec domain.OrderedSection, writeCells func([]string, int) error, columnStyle int) error {
	switch sec.Kind {
	case domain.SectionTable:
		if len(sec.Rows) == 0 {
			return writeCells([]string{sec.EmptyMessage}, 0)
		}
		if len(sec.Columns) > 0 {
			if err := writeCells(sec.Columns, columnStyle); err != nil {
				return err
			}
		}
		for _, row := range sec.Rows {
			if err := writeCells(row, 0); err != nil {
				return err
			}
		}
	case domain.SectionNarrative:
		for _, para := range sec.Paragraphs {
			if err := writeCells([]string{para}, 0); err != nil {
				return err
			}
		}
	case domain.SectionKeyValue:
		if len(sec.Pairs) == 0 {
			return writeCells([]string{sec.EmptyMessage}, 0)
		}
		for _, pair := range sec.Pairs {
			if err := writeCells([]string{pair[0], pair[1]}, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// Filename builds the download name from the company name, falling back to
// "Company" when the profile has none.
func (e *Exporter) Filename(profile domain.CompanyProfile) string {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = "Company"
	}
	return fmt.Sprintf("Full-Financial-Statement-%s.xlsx", utils.SanitizeFilename(name))
}
