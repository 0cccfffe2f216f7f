//go:build property_test

package table

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: every percent cell ends in "%" and carries the original
// fraction times 100, rounded to zero decimals.
func TestPercentRenderingProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("percent cells are value*100 with a % suffix", prop.ForAll(
		func(values []float64) bool {
			rows := make([][]interface{}, len(values))
			for i, v := range values {
				rows[i] = []interface{}{v}
			}
			out := Format(&Table{Columns: []Column{{Title: "Rate"}}, Rows: rows}, DefaultTheme())

			if out.Columns[0].Kind != KindPercent {
				// Values may all be integral (0 or 1); then the column is
				// numeric and the percent property does not apply.
				for _, v := range values {
					if v != math.Trunc(v) {
						return false
					}
				}
				return true
			}

			for i, v := range values {
				cell := out.Cells[i][0]
				if !strings.HasSuffix(cell, "%") {
					return false
				}
				num, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(cell, "%")), 64)
				if err != nil {
					return false
				}
				if math.Abs(num-v*100) > 0.5 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.Float64Range(0, 1)),
	))

	properties.TestingRun(t)
}

// Property: every non-percent numeric cell renders with exactly two
// decimal digits.
func TestNumericRenderingProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("numeric cells have exactly two decimals", prop.ForAll(
		func(values []float64) bool {
			rows := make([][]interface{}, len(values))
			for i, v := range values {
				rows[i] = []interface{}{v}
			}
			out := Format(&Table{Columns: []Column{{Title: "Amount"}}, Rows: rows}, DefaultTheme())

			if out.Columns[0].Kind != KindNumeric {
				return true
			}
			for i := range values {
				cell := out.Cells[i][0]
				dot := strings.LastIndex(cell, ".")
				if dot < 0 || len(cell)-dot-1 != 2 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.Float64Range(-1e6, 1e6)),
	))

	properties.TestingRun(t)
}

// Property: allocated column widths always sum to exactly the theme's
// total width budget.
func TestWidthBudgetProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("column widths sum to the width budget", prop.ForAll(
		func(titles []string) bool {
			if len(titles) == 0 {
				return true
			}
			cols := make([]Column, len(titles))
			for i, title := range titles {
				cols[i] = Column{Title: title}
			}
			theme := DefaultTheme()
			out := Format(&Table{Columns: cols}, theme)

			var sum int64
			for _, col := range out.Columns {
				sum += col.Width
			}
			return sum == theme.TotalWidth
		},
		gen.SliceOfN(6, gen.AlphaString()),
	))

	properties.TestingRun(t)
}
