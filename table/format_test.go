package table

import (
	"math"
	"testing"
)

func sampleTheme() Theme {
	return DefaultTheme()
}

func TestFormatClassifiesAndRendersColumns(t *testing.T) {
	in := &Table{
		Columns: []Column{{Title: "String"}, {Title: "Int"}, {Title: "Percent"}},
		Rows: [][]interface{}{
			{"A", 1, 0.5},
			{"B", 2, 0.75},
		},
	}

	out := Format(in, sampleTheme())

	if got := out.Columns[0].Kind; got != KindText {
		t.Errorf("String column kind = %v, want KindText", got)
	}
	if got := out.Columns[1].Kind; got != KindNumeric {
		t.Errorf("Int column kind = %v, want KindNumeric", got)
	}
	if got := out.Columns[2].Kind; got != KindPercent {
		t.Errorf("Percent column kind = %v, want KindPercent", got)
	}

	wantCells := [][]string{
		{"A", "1.00", "50 %"},
		{"B", "2.00", "75 %"},
	}
	for r := range wantCells {
		for c := range wantCells[r] {
			if out.Cells[r][c] != wantCells[r][c] {
				t.Errorf("cell [%d][%d] = %q, want %q", r, c, out.Cells[r][c], wantCells[r][c])
			}
		}
	}

	if out.Columns[0].Centered {
		t.Error("text column should not be centered")
	}
	if !out.Columns[1].Centered || !out.Columns[2].Centered {
		t.Error("numeric and percent columns should be centered")
	}
}

func TestIntegerUnitIntervalColumnStaysNumeric(t *testing.T) {
	in := &Table{
		Columns: []Column{{Title: "Flag"}},
		Rows:    [][]interface{}{{0}, {1}, {1}},
	}

	out := Format(in, sampleTheme())
	if got := out.Columns[0].Kind; got != KindNumeric {
		t.Fatalf("integer column in [0,1] classified %v, want KindNumeric", got)
	}
	if out.Cells[0][0] != "0.00" || out.Cells[1][0] != "1.00" {
		t.Errorf("integer cells = %v, want 0.00 / 1.00", out.Cells)
	}
}

func TestMixedColumnIsText(t *testing.T) {
	in := &Table{
		Columns: []Column{{Title: "Mixed"}},
		Rows:    [][]interface{}{{1}, {"two"}},
	}

	out := Format(in, sampleTheme())
	if got := out.Columns[0].Kind; got != KindText {
		t.Fatalf("mixed column classified %v, want KindText", got)
	}
	if out.Cells[0][0] != "1" || out.Cells[1][0] != "two" {
		t.Errorf("text cells = %v, want passthrough", out.Cells)
	}
}

func TestFractionalValueOutsideUnitIntervalIsNumeric(t *testing.T) {
	in := &Table{
		Columns: []Column{{Title: "Rate"}},
		Rows:    [][]interface{}{{0.5}, {1.5}},
	}

	out := Format(in, sampleTheme())
	if got := out.Columns[0].Kind; got != KindNumeric {
		t.Fatalf("column with value above 1 classified %v, want KindNumeric", got)
	}
}

func TestNonFiniteValuesAreText(t *testing.T) {
	cases := []struct {
		name string
		rows [][]interface{}
		want [][]string
	}{
		{
			name: "all NaN",
			rows: [][]interface{}{{math.NaN()}, {math.NaN()}},
			want: [][]string{{"NaN"}, {"NaN"}},
		},
		{
			name: "NaN and infinity",
			rows: [][]interface{}{{math.NaN()}, {math.Inf(1)}},
			want: [][]string{{"NaN"}, {"+Inf"}},
		},
		{
			name: "NaN among unit-interval values",
			rows: [][]interface{}{{0.5}, {math.NaN()}},
			want: [][]string{{"0.5"}, {"NaN"}},
		},
		{
			name: "negative infinity among numbers",
			rows: [][]interface{}{{1.5}, {math.Inf(-1)}},
			want: [][]string{{"1.5"}, {"-Inf"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := &Table{Columns: []Column{{Title: "X"}}, Rows: tc.rows}
			out := Format(in, sampleTheme())

			if got := out.Columns[0].Kind; got != KindText {
				t.Fatalf("column classified %v, want KindText", got)
			}
			for r := range tc.want {
				if out.Cells[r][0] != tc.want[r][0] {
					t.Errorf("cell [%d] = %q, want %q", r, out.Cells[r][0], tc.want[r][0])
				}
			}
		})
	}
}

func TestWidthsSumToBudgetAndTrackHeaderLength(t *testing.T) {
	theme := sampleTheme()
	in := &Table{
		Columns: []Column{{Title: "ID"}, {Title: "Description of the item"}, {Title: "Qty"}},
	}

	out := Format(in, theme)

	var sum int64
	for _, col := range out.Columns {
		if col.Width <= 0 {
			t.Errorf("column %q width = %d, want positive", col.Title, col.Width)
		}
		sum += col.Width
	}
	if sum != theme.TotalWidth {
		t.Errorf("width sum = %d, want exactly %d", sum, theme.TotalWidth)
	}
	if out.Columns[1].Width <= out.Columns[0].Width {
		t.Error("longer header should get a wider column")
	}
}

func TestRaggedRowsAndNilCells(t *testing.T) {
	in := &Table{
		Columns: []Column{{Title: "A"}, {Title: "B"}},
		Rows: [][]interface{}{
			{1.25},
			{2.5, nil},
		},
	}

	out := Format(in, sampleTheme())
	if out.Cells[0][1] != "" || out.Cells[1][1] != "" {
		t.Errorf("missing cells should render empty, got %v", out.Cells)
	}
	if out.Cells[0][0] != "1.25" || out.Cells[1][0] != "2.50" {
		t.Errorf("numeric cells = %v, want 1.25 / 2.50", out.Cells)
	}
	// Column B has no values at all, so it falls back to text.
	if got := out.Columns[1].Kind; got != KindText {
		t.Errorf("empty column classified %v, want KindText", got)
	}
}

func TestFromMatrixGeneratesColumnNames(t *testing.T) {
	m := FromMatrix([][]interface{}{
		{1, 2, 3},
		{4, 5},
	})

	if len(m.Columns) != 3 {
		t.Fatalf("got %d columns, want 3", len(m.Columns))
	}
	for i, want := range []string{"V1", "V2", "V3"} {
		if m.Columns[i].Title != want {
			t.Errorf("column %d title = %q, want %q", i, m.Columns[i].Title, want)
		}
	}
}

func TestNoteSurvivesFormatting(t *testing.T) {
	in := &Table{
		Columns: []Column{{Title: "A"}},
		Rows:    [][]interface{}{{"x"}},
		Note:    "source: monthly report",
	}

	out := Format(in, sampleTheme())
	if out.Note != in.Note {
		t.Errorf("themed note = %q, want %q", out.Note, in.Note)
	}
}
