package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FromExcelFile loads the first sheet of an xlsx workbook as a Table.
func FromExcelFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	return FromExcelSheet(f, sheets[0])
}

// FromExcelSheet loads one sheet as a Table. The first row supplies the
// column titles; numeric-looking cells are parsed to float64 so the usual
// column classification applies to spreadsheet input.
func FromExcelSheet(f *excelize.File, sheet string) (*Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols := make([]Column, len(rows[0]))
	for i, title := range rows[0] {
		if strings.TrimSpace(title) == "" {
			title = fmt.Sprintf("V%d", i+1)
		}
		cols[i] = Column{Title: title}
	}

	data := make([][]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]interface{}, len(cols))
		for i := range cols {
			if i >= len(row) {
				continue
			}
			cells[i] = parseCell(row[i])
		}
		data = append(data, cells)
	}

	return &Table{Columns: cols, Rows: data, Note: sheet}, nil
}

// parseCell keeps spreadsheet numbers numeric and everything else as text.
// Empty cells become nil so they do not affect column classification.
func parseCell(s string) interface{} {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}
