package parser

import (
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

// ScanGroups finds the fan column groups described by a header row.
//
// A non-blank header cell starts a group. The blank-header columns right
// after it (at most two) belong to the same group, so a group is 2 or 3
// columns wide. A name followed directly by another name, or by the end of
// the table, has no data columns and is skipped.
//
// columns is the full table width; header cells past the end of the header
// slice count as blank.
func ScanGroups(header []string, columns int) []models.ColumnGroup {
	if len(header) > columns {
		columns = len(header)
	}

	var groups []models.ColumnGroup
	col := 0
	for col < columns {
		name := headerCell(header, col)
		if name == "" {
			col++
			continue
		}

		extra := 0
		for extra < models.MaxGroupWidth-1 {
			next := col + 1 + extra
			if next >= columns || headerCell(header, next) != "" {
				break
			}
			extra++
		}

		if extra == 0 {
			col++
			continue
		}

		groups = append(groups, models.ColumnGroup{
			Name:  name,
			Start: col,
			Width: 1 + extra,
		})
		col += 1 + extra
	}

	return groups
}

func headerCell(header []string, col int) string {
	if col >= len(header) {
		return ""
	}
	return strings.TrimSpace(header[col])
}
