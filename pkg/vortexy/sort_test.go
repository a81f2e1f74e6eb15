package vortexy

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSortWorkbook(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "radiator.xlsx", radiatorCells)
	outputPath := filepath.Join(dir, "sorted.xlsx")

	opts, hook := testOptions()
	result, err := SortWorkbook(input, outputPath, opts)
	if err != nil {
		t.Fatalf("SortWorkbook failed: %v", err)
	}

	if !result.Written {
		t.Fatal("Expected sorted workbook to be written")
	}
	if len(result.Ranked) != 2 || result.Ranked[0].Name != "Fan B" || result.Ranked[0].MetricAt != 49 {
		t.Errorf("Unexpected ranking: %+v", result.Ranked)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Name != "Fan C" {
		t.Errorf("Expected Fan C to be skipped, got %+v", result.Skipped)
	}
	if !hasEntry(hook, logrus.WarnLevel, "Fan C") {
		t.Error("Expected a warning for the skipped fan")
	}

	expected := [][]string{
		{"Fan B", "", "", "Fan A"},
		{"40", "50", "1100", "40", "60", "1000"},
		{"42", "48", "1300", "42", "58", "1200"},
	}
	if rows := readRows(t, outputPath); !reflect.DeepEqual(rows, expected) {
		t.Errorf("rows = %q, expected %q", rows, expected)
	}
}

func TestSortWorkbookNothingToRank(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "thin.xlsx", map[string]interface{}{
		"A1": "Solo", "A2": 40, "B2": 50,
	})
	outputPath := filepath.Join(dir, "sorted.xlsx")

	opts, _ := testOptions()
	result, err := SortWorkbook(input, outputPath, opts)
	if err != nil {
		t.Fatalf("SortWorkbook failed: %v", err)
	}
	if result.Written {
		t.Error("Expected no output without rankable fans")
	}
	if _, err := os.Stat(outputPath); err == nil {
		t.Error("Expected no file to be written")
	}
}

func TestSortDirectoryIsolatesFailures(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "sorted")

	writeWorkbook(t, inputDir, "a_good.xlsx", radiatorCells)
	if err := os.WriteFile(filepath.Join(inputDir, "b_broken.xlsx"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inputDir, "~$a_good.xlsx"), []byte("lock"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}
	writeWorkbook(t, inputDir, "c_good.xlsx", radiatorCells)

	opts, _ := testOptions()
	report, err := SortDirectory(inputDir, outputDir, opts)
	if err != nil {
		t.Fatalf("SortDirectory failed: %v", err)
	}

	if len(report.Processed) != 2 {
		t.Errorf("Expected 2 processed files, got %v", report.Processed)
	}
	if len(report.Failed) != 1 || filepath.Base(report.Failed[0].Path) != "b_broken.xlsx" {
		t.Fatalf("Expected b_broken.xlsx to fail, got %+v", report.Failed)
	}
	if !errors.Is(report.Err(), ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat in report, got %v", report.Err())
	}

	for _, name := range []string{"a_good.xlsx", "c_good.xlsx"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("Expected %s in output: %v", name, err)
		}
	}
}

func TestSortDirectoryEmpty(t *testing.T) {
	opts, _ := testOptions()
	_, err := SortDirectory(t.TempDir(), t.TempDir(), opts)
	if !errors.Is(err, ErrNoInputs) {
		t.Errorf("Expected ErrNoInputs, got %v", err)
	}
}

func TestSortDirectoryOutputCollision(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "sorted")

	csv := "Fan B,\n40,50\n42,48\n"
	if err := os.WriteFile(filepath.Join(inputDir, "fans.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	writeWorkbook(t, inputDir, "fans.xlsx", radiatorCells)

	opts, _ := testOptions()
	report, err := SortDirectory(inputDir, outputDir, opts)
	if err != nil {
		t.Fatalf("SortDirectory failed: %v", err)
	}

	if len(report.Failed) != 1 || filepath.Base(report.Failed[0].Path) != "fans.xlsx" {
		t.Fatalf("Expected fans.xlsx to collide, got %+v", report.Failed)
	}
	if !errors.Is(report.Err(), ErrOutputCollision) {
		t.Errorf("Expected ErrOutputCollision, got %v", report.Err())
	}

	rows := readRows(t, filepath.Join(outputDir, "fans.xlsx"))
	if len(rows) == 0 || len(rows[0]) != 1 || rows[0][0] != "Fan B" {
		t.Errorf("Expected the csv table in the output, got %q", rows)
	}
}

func TestSortWorkbookIgnoresDisplayPrecision(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "close.xlsx", map[string]interface{}{
		"A1": "A", "A2": 40, "B2": 10.004, "A3": 42, "B3": 14.004,
		"C1": "B", "C2": 40, "D2": 10.001, "C3": 42, "D3": 14.001,
	})
	outputPath := filepath.Join(dir, "sorted.xlsx")

	opts, _ := testOptions()
	precision := 2
	opts.Precision = &precision

	result, err := SortWorkbook(input, outputPath, opts)
	if err != nil {
		t.Fatalf("SortWorkbook failed: %v", err)
	}

	if len(result.Ranked) != 2 || result.Ranked[0].Name != "B" || result.Ranked[1].Name != "A" {
		t.Fatalf("Expected B before A, got %+v", result.Ranked)
	}
	if math.Abs(result.Ranked[0].MetricAt-12.001) > 1e-9 {
		t.Errorf("Expected full-precision estimate 12.001, got %v", result.Ranked[0].MetricAt)
	}

	rows := readRows(t, outputPath)
	if len(rows) < 2 || len(rows[1]) < 2 || rows[1][1] != "10.001" {
		t.Errorf("Expected raw values in the sorted workbook, got %q", rows)
	}
}

func TestSortWorkbookTargetZero(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "low.xlsx", map[string]interface{}{
		"A1": "A", "A2": 10, "B2": 30, "A3": 20, "B3": 40,
	})

	opts, _ := testOptions()
	target := 0.0
	opts.TargetNoise = &target

	result, err := SortWorkbook(input, filepath.Join(dir, "sorted.xlsx"), opts)
	if err != nil {
		t.Fatalf("SortWorkbook failed: %v", err)
	}
	if len(result.Ranked) != 1 || result.Ranked[0].MetricAt != 20 {
		t.Errorf("Expected extrapolation to 0 dBA (20), got %+v", result.Ranked)
	}
}
