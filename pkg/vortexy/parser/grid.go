// Package parser reads measurement tables and fan databases from
// spreadsheet files.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Grid is a rectangular view of a sheet: rows of raw cell text.
// Rows may be ragged; cells past the end of a row are empty.
type Grid [][]string

// Cell returns the trimmed cell text at the 0-based position, or "" when the
// position is outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return strings.TrimSpace(g[row][col])
}

// Header returns row 0.
func (g Grid) Header() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// Columns returns the width of the widest row.
func (g Grid) Columns() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// LoadGrid reads a table from an xlsx or csv file.
// For workbooks, sheet selects the sheet; an empty name selects the first one.
func LoadGrid(path, sheet string) (Grid, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var (
		grid Grid
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		grid, err = loadWorkbook(path, sheet)
	case ".csv":
		grid, err = loadCSV(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoHeader, path)
	}
	return grid, nil
}

func loadWorkbook(path, sheet string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrNoHeader)
		}
		sheet = sheets[0]
	}

	// Raw values keep full numeric precision instead of the display format
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidFormat, sheet, err)
	}
	return Grid(rows), nil
}

func loadCSV(path string) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data, err = decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Grid(rows), nil
}

// decodeText returns data as UTF-8. Input that is not valid UTF-8 is treated
// as GB18030, the usual encoding of csv exports from Chinese Excel.
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	return simplifiedchinese.GB18030.NewDecoder().Bytes(data)
}
