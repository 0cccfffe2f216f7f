package table

import (
	"fmt"
	"math"
	"strconv"
)

// Kind classifies how a column's cells are rendered and aligned.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindPercent
)

// ThemedColumn is a formatted column: its classification, allocated width
// and alignment.
type ThemedColumn struct {
	Title    string
	Kind     Kind
	Width    int64 // EMU, allocated from Theme.TotalWidth
	Centered bool
}

// Themed is the read-only artifact produced by Format: formatted cell
// strings plus the styling needed to draw the table on a slide. It is
// consumed once by the slide-adding operation and never mutated.
type Themed struct {
	Columns []ThemedColumn
	Cells   [][]string
	Theme   Theme
	Note    string
}

// Format classifies each column, renders every cell to its display string
// and allocates column widths. Output is deterministic for a given table
// and theme.
func Format(t *Table, theme Theme) *Themed {
	kinds := make([]Kind, len(t.Columns))
	for i := range t.Columns {
		kinds[i] = classify(column(t, i))
	}

	cells := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = make([]string, len(t.Columns))
		for c := range t.Columns {
			var v interface{}
			if c < len(row) {
				v = row[c]
			}
			cells[r][c] = render(v, kinds[c])
		}
	}

	widths := allocateWidths(t.Columns, theme.TotalWidth)

	cols := make([]ThemedColumn, len(t.Columns))
	for i, col := range t.Columns {
		cols[i] = ThemedColumn{
			Title:    col.Title,
			Kind:     kinds[i],
			Width:    widths[i],
			Centered: kinds[i] != KindText,
		}
	}

	return &Themed{Columns: cols, Cells: cells, Theme: theme, Note: t.Note}
}

// column collects the cells of column i; rows too short contribute nil.
func column(t *Table, i int) []interface{} {
	out := make([]interface{}, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

// classify decides the column kind. A column is numeric when every
// non-empty cell is a finite number and at least one cell is non-empty. A
// numeric column is a percent column when all values lie in [0, 1] and at
// least one value is fractional, so integer counts that happen to fit the
// unit interval stay numeric. NaN and infinities make the column text so
// they pass through verbatim instead of rendering as "NaN %".
func classify(cells []interface{}) Kind {
	seen := 0
	allUnit := true
	fractional := false

	for _, v := range cells {
		if v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			return KindText
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return KindText
		}
		seen++
		if f < 0 || f > 1 {
			allUnit = false
		}
		if f != math.Trunc(f) {
			fractional = true
		}
	}

	if seen == 0 {
		return KindText
	}
	if allUnit && fractional {
		return KindPercent
	}
	return KindNumeric
}

// render produces the display string for one cell under a column kind.
func render(v interface{}, kind Kind) string {
	if v == nil {
		return ""
	}
	switch kind {
	case KindNumeric:
		f, _ := toFloat(v)
		return strconv.FormatFloat(f, 'f', 2, 64)
	case KindPercent:
		f, _ := toFloat(v)
		return fmt.Sprintf("%.0f %%", f*100)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// allocateWidths splits the total width budget proportionally to each
// header title's rune length. The last column absorbs the rounding
// remainder so the widths always sum to exactly the budget.
func allocateWidths(cols []Column, total int64) []int64 {
	if len(cols) == 0 {
		return nil
	}

	lengths := make([]int64, len(cols))
	var sum int64
	for i, col := range cols {
		n := int64(len([]rune(col.Title)))
		if n < 1 {
			n = 1
		}
		lengths[i] = n
		sum += n
	}

	widths := make([]int64, len(cols))
	var used int64
	for i := range cols {
		if i == len(cols)-1 {
			widths[i] = total - used
			break
		}
		widths[i] = total * lengths[i] / sum
		used += widths[i]
	}
	return widths
}

// toFloat reports v as a float64 when it holds any numeric Go type.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
