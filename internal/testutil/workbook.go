package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// Row is one task line of a test workbook. Due may be nil, a time.Time
// (written as a date-typed cell) or a string.
type Row struct {
	Name    string
	Status  string
	Due     any
	Owner   string
	Comment string
}

var header = []any{"ID", "Task", "Status", "Due", "Owner", "Effort", "Pct", "Notes", "Comment"}

// WriteWorkbook saves rows into a fresh workbook with a single sheet named
// sheet, using the B/C/D/E/I layout under a header row. It returns the file path.
func WriteWorkbook(t *testing.T, sheet string, rows []Row) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("renaming sheet: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("writing header: %v", err)
	}

	for i, r := range rows {
		n := i + 2
		set(t, f, sheet, "A", n, n-1)
		set(t, f, sheet, "B", n, r.Name)
		set(t, f, sheet, "C", n, r.Status)
		set(t, f, sheet, "D", n, r.Due)
		set(t, f, sheet, "E", n, r.Owner)
		set(t, f, sheet, "F", n, "2d")
		set(t, f, sheet, "I", n, r.Comment)
	}

	path := filepath.Join(t.TempDir(), "tasks.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

func set(t *testing.T, f *excelize.File, sheet, col string, row int, v any) {
	t.Helper()
	switch val := v.(type) {
	case nil:
		return
	case string:
		if val == "" {
			return
		}
	}
	cell, err := excelize.JoinCellName(col, row)
	if err != nil {
		t.Fatalf("cell name: %v", err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		t.Fatalf("writing %s: %v", cell, err)
	}
}

// Day returns midnight UTC of today's date shifted by n days.
func Day(n int) time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)
}
