package output

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/xuri/excelize/v2"
)

// WriteRankedWorkbook writes ranked fans to an xlsx file in the layout they
// were read from: the fan name in row 1 above its samples, one column group
// per fan. Groups are placed left to right in ranking order and keep their
// original width and sample order.
func WriteRankedWorkbook(ranked []models.RankedFan, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	col := 1
	for _, fan := range ranked {
		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, fan.Name); err != nil {
			return err
		}

		for i, sample := range fan.Samples {
			cell, err := excelize.CoordinatesToCellName(col, i+2)
			if err != nil {
				return err
			}
			values := sample.Values(fan.Width)
			if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
				return err
			}
		}

		col += fan.Width
	}

	return f.SaveAs(path)
}
