package parser

import (
	"strings"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

// headerBandOffsets are the row offsets searched around the header row when
// matching column labels. Category labels often live in merged cells one row
// above or below the header.
var headerBandOffsets = []int{-1, 0, 1, 2}

// vehicleNoiseLabels are header fragments that disqualify a cell in the
// vehicle-name row from being a vehicle label.
var vehicleNoiseLabels = []string{
	"CURRENT", "STATUS", "SOPM", "PREDICTION", "DRIVABILITY", "DYNAMISM",
}

// placeholderDot is the marker the workbook macros write into status and
// vehicle cells that carry color instead of text.
const placeholderDot = "●"

// FindColumn searches the band around the header row for a cell containing
// label, left to right, and returns its 1-based column index.
func FindColumn(rows [][]string, headerRow int, label string) (int, bool) {
	upper := strings.ToUpper(label)
	for c := 1; c <= headerScanCols; c++ {
		for _, off := range headerBandOffsets {
			r := headerRow + off
			if r < 1 {
				continue
			}
			v := cellAt(rows, r, c)
			if v != "" && strings.Contains(strings.ToUpper(v), upper) {
				return c, true
			}
		}
	}
	return 0, false
}

// FindP1Column locates the P1 status column for a category. Starting at the
// category column it scans rightward for a "CURRENT STATUS" band cell, then
// for a header-row cell reading exactly "P1" in the same column or up to two
// columns further right.
func FindP1Column(rows [][]string, headerRow, categoryCol int) (int, bool) {
	for c := categoryCol; c < categoryCol+p1ScanWidth; c++ {
		if !bandContains(rows, headerRow, c, "CURRENT STATUS") {
			continue
		}
		for off := 0; off < 3; off++ {
			if strings.EqualFold(cellAt(rows, headerRow, c+off), "P1") {
				return c + off, true
			}
		}
	}
	return 0, false
}

// FindVehicleColumns collects vehicle labels from the row above the header,
// from startCol rightward, in left-to-right order. Placeholder dots, priority
// labels, header noise, and duplicate names are skipped.
func FindVehicleColumns(rows [][]string, headerRow, startCol int) []models.VehicleColumn {
	nameRow := headerRow - 1
	if nameRow < 1 {
		return nil
	}

	var vehicles []models.VehicleColumn
	seen := make(map[string]bool)
	for c := startCol; c <= headerScanCols; c++ {
		name := cellAt(rows, nameRow, c)
		if name == "" || name == placeholderDot || seen[name] {
			continue
		}
		if isVehicleNoise(name) {
			continue
		}
		seen[name] = true
		vehicles = append(vehicles, models.VehicleColumn{Name: name, Column: c})
	}
	return vehicles
}

func isVehicleNoise(name string) bool {
	upper := strings.ToUpper(name)
	if upper == "P1" || upper == "P2" || upper == "P3" {
		return true
	}
	for _, noise := range vehicleNoiseLabels {
		if strings.Contains(upper, noise) {
			return true
		}
	}
	return false
}

func bandContains(rows [][]string, headerRow, col int, label string) bool {
	for _, off := range headerBandOffsets {
		r := headerRow + off
		if r < 1 {
			continue
		}
		v := cellAt(rows, r, col)
		if v != "" && strings.Contains(strings.ToUpper(v), label) {
			return true
		}
	}
	return false
}
