// Package table holds the tabular content model and the formatting policy
// that turns a raw table into a themed, presentation-ready artifact.
package table

import "fmt"

// Column is a named table column.
type Column struct {
	Title string
}

// Table is a raw tabular value with named columns. Rows may be ragged;
// missing cells are treated as empty. Note is an optional annotation used
// as the default slide subtitle when none is supplied.
type Table struct {
	Columns []Column
	Rows    [][]interface{}
	Note    string
}

// FromMatrix builds a Table from a bare matrix, generating V1..Vn column
// names from the widest row.
func FromMatrix(rows [][]interface{}) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cols := make([]Column, width)
	for i := range cols {
		cols[i] = Column{Title: fmt.Sprintf("V%d", i+1)}
	}

	return &Table{Columns: cols, Rows: rows}
}

// FromStringMatrix is FromMatrix for string cells.
func FromStringMatrix(rows [][]string) *Table {
	converted := make([][]interface{}, len(rows))
	for i, row := range rows {
		converted[i] = make([]interface{}, len(row))
		for j, cell := range row {
			converted[i][j] = cell
		}
	}
	return FromMatrix(converted)
}
