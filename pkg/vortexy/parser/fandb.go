package parser

import (
	"fmt"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

// Fan database fields.
const (
	fieldName        = "name"
	fieldThickness   = "thickness"
	fieldBearing     = "bearing"
	fieldSize        = "size"
	fieldBrand       = "brand"
	fieldPrice       = "price"
	fieldDescription = "description"
)

// FanDatabaseHeaders lists the accepted header names of each fan database
// field. English names are matched case-insensitively.
var FanDatabaseHeaders = map[string][]string{
	fieldName:        {"风扇型号", "name"},
	fieldThickness:   {"厚度", "thickness"},
	fieldBearing:     {"轴承类型", "bearing"},
	fieldSize:        {"尺寸", "size"},
	fieldBrand:       {"品牌", "brand"},
	fieldPrice:       {"价格", "price"},
	fieldDescription: {"简介", "description"},
}

// ParseFanDatabase reads one fan record per data row of grid.
// Rows without a name are skipped.
func ParseFanDatabase(grid Grid) ([]models.FanSpec, error) {
	columns := mapFanDatabaseHeader(grid.Header())
	nameCol, ok := columns[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: missing fan name column", ErrNoHeader)
	}

	text := func(row int, field string) string {
		col, ok := columns[field]
		if !ok {
			return ""
		}
		return grid.Cell(row, col)
	}
	number := func(row int, field string) *float64 {
		v, ok := parseNumber(text(row, field))
		if !ok {
			return nil
		}
		return &v
	}

	specs := []models.FanSpec{}
	for row := 1; row < len(grid); row++ {
		name := grid.Cell(row, nameCol)
		if name == "" {
			continue
		}
		specs = append(specs, models.FanSpec{
			Name:        name,
			Thickness:   number(row, fieldThickness),
			Bearing:     text(row, fieldBearing),
			Size:        number(row, fieldSize),
			Brand:       text(row, fieldBrand),
			Price:       text(row, fieldPrice),
			Description: text(row, fieldDescription),
		})
	}

	return specs, nil
}

// mapFanDatabaseHeader returns field name to column index. The first column
// carrying a field wins.
func mapFanDatabaseHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for col, cell := range header {
		field, ok := fanDatabaseField(cell)
		if !ok {
			continue
		}
		if _, seen := columns[field]; !seen {
			columns[field] = col
		}
	}
	return columns
}

func fanDatabaseField(cell string) (string, bool) {
	key := strings.TrimSpace(cell)
	for field, names := range FanDatabaseHeaders {
		for _, name := range names {
			if strings.EqualFold(key, name) {
				return field, true
			}
		}
	}
	return "", false
}
