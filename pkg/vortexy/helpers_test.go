package vortexy

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves cells (cell name -> value) as dir/name.
func writeWorkbook(t *testing.T, dir, name string, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for cell, value := range cells {
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// readRows returns the first sheet of an xlsx file.
func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	return rows
}

// testOptions returns options with a captured logger and a fixed clock.
func testOptions() (Options, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	opts := DefaultOptions()
	opts.Pretty = false
	opts.Logger = logger
	opts.Now = func() time.Time {
		return time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	}
	return opts, hook
}

// hasEntry reports whether hook captured a message at level for the fan.
func hasEntry(hook *test.Hook, level logrus.Level, fan string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Level == level && entry.Data["fan"] == fan {
			return true
		}
	}
	return false
}

// radiatorCells is a three-column table: B ranks ahead of A at 41 dBA,
// C has a single sample.
var radiatorCells = map[string]interface{}{
	"A1": "Fan A", "A2": 40, "B2": 60, "C2": 1000, "A3": 42, "B3": 58, "C3": 1200,
	"D1": "Fan B", "D2": 40, "E2": 50, "F2": 1100, "D3": 42, "E3": 48, "F3": 1300,
	"G1": "Fan C", "G2": 41, "H2": 45, "I2": 1000,
}
