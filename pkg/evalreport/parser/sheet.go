// Package parser locates the evaluation sheet layout and extracts use-case rows.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

const (
	// headerScanRows bounds the header search to the top of the sheet.
	headerScanRows = 20
	// headerScanCols bounds the header search across the sheet.
	headerScanCols = 200
	// p1ScanWidth bounds the P1 column search right of a category label.
	p1ScanWidth = 10
)

// DefaultVehicleStartCol is the first column considered for vehicle data.
// Pasted vehicle columns conventionally start around column L.
const DefaultVehicleStartCol = 10

// Layout describes the resolved geometry of an evaluation sheet.
// Header row and use-case column are mandatory; the P1 columns are
// best-effort and zero when not found.
type Layout struct {
	// HeaderRow is the 1-based row containing the USE CASE label.
	HeaderRow int
	// UseCaseCol is the 1-based column of the USE CASE label.
	UseCaseCol int
	// DrivabilityP1Col is the Drivability P1 status column, 0 if not found.
	DrivabilityP1Col int
	// DynamismP1Col is the Dynamism P1 status column, 0 if not found.
	DynamismP1Col int
	// Vehicles lists the resolved vehicle columns in left-to-right order.
	Vehicles []models.VehicleColumn
}

// FindEvaluationSheet returns the name of the first sheet whose name
// contains "evaluation", case-insensitively.
func FindEvaluationSheet(f *excelize.File) (string, bool) {
	for _, name := range f.GetSheetList() {
		if strings.Contains(strings.ToLower(name), "evaluation") {
			return name, true
		}
	}
	return "", false
}

// FindHeader scans the first headerScanRows rows for a cell containing
// "USE CASE" and returns its 1-based row and column indices.
func FindHeader(rows [][]string) (headerRow, useCaseCol int, ok bool) {
	for r := 1; r <= headerScanRows && r <= len(rows); r++ {
		for c := 1; c <= headerScanCols; c++ {
			v := cellAt(rows, r, c)
			if v != "" && strings.Contains(strings.ToUpper(v), "USE CASE") {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// DetectLayout resolves the full sheet layout from raw rows. The header is
// mandatory; category and vehicle columns are best-effort.
func DetectLayout(rows [][]string, vehicleStartCol int) (Layout, error) {
	headerRow, useCaseCol, ok := FindHeader(rows)
	if !ok {
		return Layout{}, fmt.Errorf("no header row with USE CASE label in first %d rows", headerScanRows)
	}

	layout := Layout{
		HeaderRow:  headerRow,
		UseCaseCol: useCaseCol,
	}

	if drivCol, ok := FindColumn(rows, headerRow, "DRIVABILITY"); ok {
		if p1, ok := FindP1Column(rows, headerRow, drivCol); ok {
			layout.DrivabilityP1Col = p1
		}
	}
	if dynCol, ok := FindColumn(rows, headerRow, "DYNAMISM"); ok {
		if p1, ok := FindP1Column(rows, headerRow, dynCol); ok {
			layout.DynamismP1Col = p1
		}
	}

	if vehicleStartCol <= 0 {
		vehicleStartCol = DefaultVehicleStartCol
	}
	layout.Vehicles = FindVehicleColumns(rows, headerRow, vehicleStartCol)

	return layout, nil
}

// cellAt returns the trimmed value at 1-based (row, col), or "" when the
// coordinates fall outside the ragged row slices excelize returns.
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}
