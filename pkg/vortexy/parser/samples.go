package parser

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

// ExtractStats describes what ExtractFans left out.
type ExtractStats struct {
	// DroppedRows counts partially filled rows that were discarded, per fan.
	DroppedRows map[string]int
	// Duplicates lists fan names that appeared more than once; the last
	// group with that name wins.
	Duplicates []string
}

// ExtractFans reads the samples of every column group from the data rows
// (row 1 onwards) of grid.
//
// A row is kept only when every cell of the group span holds a number.
// Rows with some but not all cells filled are dropped and counted in the
// stats; fully blank rows are ignored. Values are rounded to precision
// decimal places unless precision is negative.
func ExtractFans(grid Grid, groups []models.ColumnGroup, precision int) (*models.FanSet, ExtractStats) {
	set := models.NewFanSet()
	stats := ExtractStats{DroppedRows: make(map[string]int)}

	for _, group := range groups {
		fan := models.Fan{
			Name:    group.Name,
			Width:   group.Width,
			Samples: []models.Sample{},
		}

		dropped := 0
		for row := 1; row < len(grid); row++ {
			sample, ok, blank := readSample(grid, row, group, precision)
			if ok {
				fan.Samples = append(fan.Samples, sample)
			} else if !blank {
				dropped++
			}
		}

		if dropped > 0 {
			stats.DroppedRows[group.Name] = dropped
		} else {
			delete(stats.DroppedRows, group.Name)
		}
		if set.Put(fan) {
			stats.Duplicates = append(stats.Duplicates, group.Name)
		}
	}

	return set, stats
}

// readSample parses one row of a group. blank reports whether every cell of
// the span was empty.
func readSample(grid Grid, row int, group models.ColumnGroup, precision int) (sample models.Sample, ok, blank bool) {
	values := make([]float64, 0, group.Width)
	blank = true
	ok = true
	for col := group.Start; col < group.End(); col++ {
		cell := grid.Cell(row, col)
		if cell != "" {
			blank = false
		}
		v, parsed := parseNumber(cell)
		if !parsed {
			ok = false
			continue
		}
		values = append(values, Round(v, precision))
	}
	if !ok {
		return models.Sample{}, false, blank
	}

	sample = models.Sample{Noise: values[0], Metric: values[1]}
	if group.Width >= 3 {
		sample.Tertiary = values[2]
	}
	return sample, true, false
}

// ParseFans loads the table at path and extracts its fans.
func ParseFans(path, sheet string, precision int) (*models.FanSet, ExtractStats, error) {
	grid, err := LoadGrid(path, sheet)
	if err != nil {
		return nil, ExtractStats{}, err
	}

	groups := ScanGroups(grid.Header(), grid.Columns())
	set, stats := ExtractFans(grid, groups, precision)
	return set, stats, nil
}
