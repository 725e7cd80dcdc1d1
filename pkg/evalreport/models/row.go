// Package models defines data structures for evaluation workbook analysis.
package models

// Status is the P1 evaluation outcome for one use case and category.
type Status string

const (
	// StatusRed marks a failing evaluation outcome.
	StatusRed Status = "Red"
	// StatusYellow marks an outcome that needs improvement.
	StatusYellow Status = "Yellow"
	// StatusGreen marks a passing evaluation outcome.
	StatusGreen Status = "Green"
	// StatusUnspecified marks a cell with no resolvable text or fill color.
	StatusUnspecified Status = "Unspecified"
)

// Statuses lists every status value in report display order.
var Statuses = []Status{StatusRed, StatusYellow, StatusGreen, StatusUnspecified}

// CellValue is one vehicle cell as pasted by the user.
type CellValue struct {
	// Raw is the trimmed cell text.
	Raw string `json:"raw"`
	// Number is the parsed numeric value (valid only when Numeric is true).
	Number float64 `json:"number,omitempty"`
	// Numeric reports whether Raw parsed as a decimal number.
	Numeric bool `json:"numeric"`
}

// VehicleColumn identifies one vehicle data column, resolved once per run.
type VehicleColumn struct {
	// Name is the vehicle label from the vehicle-name row.
	Name string `json:"name"`
	// Column is the 1-based column index.
	Column int `json:"column"`
}

// UseCaseRow is one extracted evaluation row. Immutable after extraction.
type UseCaseRow struct {
	// Row is the 1-based sheet row the use case was read from.
	Row int `json:"row"`
	// Name is the use-case name.
	Name string `json:"name"`
	// Drivability is the resolved Drivability P1 status.
	Drivability Status `json:"drivability"`
	// Dynamism is the resolved Dynamism P1 status.
	Dynamism Status `json:"dynamism"`
	// VehicleValues maps vehicle name to the pasted cell value.
	// Vehicles whose cell is empty are absent from the map.
	VehicleValues map[string]CellValue `json:"vehicle_values,omitempty"`
}

// HasVehicleData reports whether at least one vehicle cell is non-missing.
func (r UseCaseRow) HasVehicleData() bool {
	return len(r.VehicleValues) > 0
}
