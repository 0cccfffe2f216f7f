package table

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFixtureXLSX(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	f := excelize.NewFile()

	cells := map[string]interface{}{
		"A1": "Name", "B1": "Score", "C1": "Rate",
		"A2": "alpha", "B2": 12, "C2": 0.25,
		"A3": "beta", "B3": 3, "C3": 0.5,
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("set cell %s: %v", cell, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
	return path
}

func TestFromExcelFile(t *testing.T) {
	got, err := FromExcelFile(writeFixtureXLSX(t))
	if err != nil {
		t.Fatalf("FromExcelFile: %v", err)
	}

	wantTitles := []string{"Name", "Score", "Rate"}
	if len(got.Columns) != len(wantTitles) {
		t.Fatalf("got %d columns, want %d", len(got.Columns), len(wantTitles))
	}
	for i, want := range wantTitles {
		if got.Columns[i].Title != want {
			t.Errorf("column %d = %q, want %q", i, got.Columns[i].Title, want)
		}
	}
	if len(got.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.Rows))
	}
	if got.Note != "Sheet1" {
		t.Errorf("note = %q, want sheet name", got.Note)
	}

	// Spreadsheet numbers stay numeric, so the usual classification applies.
	out := Format(got, DefaultTheme())
	if out.Columns[1].Kind != KindNumeric {
		t.Errorf("Score kind = %v, want KindNumeric", out.Columns[1].Kind)
	}
	if out.Columns[2].Kind != KindPercent {
		t.Errorf("Rate kind = %v, want KindPercent", out.Columns[2].Kind)
	}
	if out.Cells[0][1] != "12.00" {
		t.Errorf("Score cell = %q, want 12.00", out.Cells[0][1])
	}
	if out.Cells[0][2] != "25 %" {
		t.Errorf("Rate cell = %q, want 25 %%", out.Cells[0][2])
	}
}
