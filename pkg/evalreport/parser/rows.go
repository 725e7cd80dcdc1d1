package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

// categoryBanners are section headings interleaved with use-case rows in the
// evaluation table. They are skipped, not counted.
var categoryBanners = map[string]bool{
	"Drive away":                true,
	"Accelerations":             true,
	"Decelerations":             true,
	"Constant Speeds":           true,
	"Constant speeds":           true,
	"Gearbox behaviour":         true,
	"Status":                    true,
	"Drivability Lowest Events": true,
	"Dynamism Lowest Events":    true,
}

// ExtractRows walks rows strictly below the header and builds one UseCaseRow
// per named row. It stops at the first fully empty row or sheet end. Rows with
// an empty, placeholder, or banner name are skipped without counting.
// Malformed cells degrade to Unspecified/missing and never abort the run.
func ExtractRows(f *excelize.File, sheetName string, rows [][]string, layout Layout, colorTolerance float64) []models.UseCaseRow {
	var result []models.UseCaseRow
	for r := layout.HeaderRow + 1; r <= len(rows); r++ {
		if rowEmpty(rows, r) {
			break
		}

		name := cellAt(rows, r, layout.UseCaseCol)
		if name == "" || name == placeholderDot || categoryBanners[name] {
			continue
		}

		row := models.UseCaseRow{
			Row:         r,
			Name:        name,
			Drivability: resolveStatus(f, sheetName, rows, r, layout.DrivabilityP1Col, colorTolerance),
			Dynamism:    resolveStatus(f, sheetName, rows, r, layout.DynamismP1Col, colorTolerance),
		}

		for _, vehicle := range layout.Vehicles {
			raw := cellAt(rows, r, vehicle.Column)
			if raw == "" || raw == placeholderDot {
				continue
			}
			value := models.CellValue{Raw: raw}
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				value.Number = n
				value.Numeric = true
			}
			if row.VehicleValues == nil {
				row.VehicleValues = make(map[string]models.CellValue)
			}
			row.VehicleValues[vehicle.Name] = value
		}

		result = append(result, row)
	}
	return result
}

// resolveStatus resolves one P1 status cell. Text wins over color: a cell
// whose text names a status is taken at face value even if its fill disagrees.
// col == 0 means the category column was never located.
func resolveStatus(f *excelize.File, sheetName string, rows [][]string, row, col int, colorTolerance float64) models.Status {
	if col == 0 {
		return models.StatusUnspecified
	}

	text := cellAt(rows, row, col)
	if text != "" && text != placeholderDot {
		if status, ok := MatchStatusText(text); ok {
			return status
		}
	}

	if hex, ok := cellFillColor(f, sheetName, row, col); ok {
		if status, ok := MatchStatusColor(hex, colorTolerance); ok {
			return status
		}
	}

	return models.StatusUnspecified
}

// cellFillColor returns the solid fill color of a cell as a hex string.
func cellFillColor(f *excelize.File, sheetName string, row, col int) (string, bool) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", false
	}
	styleID, err := f.GetCellStyle(sheetName, cell)
	if err != nil {
		return "", false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return "", false
	}
	if len(style.Fill.Color) == 0 || style.Fill.Color[0] == "" {
		return "", false
	}
	return style.Fill.Color[0], true
}

// rowEmpty reports whether the 1-based row has no non-blank cell at all.
func rowEmpty(rows [][]string, row int) bool {
	if row < 1 || row > len(rows) {
		return true
	}
	for _, v := range rows[row-1] {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
