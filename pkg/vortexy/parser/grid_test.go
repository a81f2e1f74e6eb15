package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestLoadGridMissingFile(t *testing.T) {
	_, err := LoadGrid(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadGridUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fans.txt")
	if err := os.WriteFile(path, []byte("A,\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGrid(path, "")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestLoadGridCorruptWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGrid(path, "")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestLoadGridEmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGrid(path, "")
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestLoadGridCSVEncodings(t *testing.T) {
	content := "风扇A,,\n40,10,1000\n"
	gbk, err := simplifiedchinese.GB18030.NewEncoder().String(content)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"utf8", []byte(content)},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, content...)},
		{"gb18030", []byte(gbk)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fans.csv")
			if err := os.WriteFile(path, tt.data, 0644); err != nil {
				t.Fatal(err)
			}

			grid, err := LoadGrid(path, "")
			if err != nil {
				t.Fatalf("LoadGrid failed: %v", err)
			}
			if grid.Cell(0, 0) != "风扇A" {
				t.Errorf("Expected header '风扇A', got %q", grid.Cell(0, 0))
			}
			if grid.Cell(1, 2) != "1000" {
				t.Errorf("Expected '1000', got %q", grid.Cell(1, 2))
			}
			if grid.Columns() != 3 {
				t.Errorf("Expected 3 columns, got %d", grid.Columns())
			}
		})
	}
}

func TestGridCellOutOfRange(t *testing.T) {
	grid := Grid{{"a"}, {"b", " c "}}

	if grid.Cell(1, 1) != "c" {
		t.Errorf("Expected trimmed 'c', got %q", grid.Cell(1, 1))
	}
	if grid.Cell(0, 1) != "" || grid.Cell(5, 0) != "" || grid.Cell(-1, 0) != "" {
		t.Error("Expected empty string outside the grid")
	}
}
