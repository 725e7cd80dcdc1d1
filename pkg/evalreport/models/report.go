package models

// StatusDistribution tallies one status category across all extracted rows.
// Counts always sum to the total row count.
type StatusDistribution struct {
	// Counts maps each status to its occurrence count.
	Counts map[Status]int `json:"counts"`
	// Percentages maps each status to its share of total rows,
	// rounded to one decimal place.
	Percentages map[Status]float64 `json:"percentages"`
}

// VehicleStats holds descriptive statistics over the numeric values of one
// vehicle column. All fields are zero when no numeric data was found.
type VehicleStats struct {
	// Count is the number of numeric data points.
	Count int `json:"count"`
	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`
	// Min is the smallest value.
	Min float64 `json:"min"`
	// Max is the largest value.
	Max float64 `json:"max"`
	// Range is Max minus Min.
	Range float64 `json:"range"`
	// NoData flags a vehicle column with zero numeric values.
	NoData bool `json:"no_numeric_data,omitempty"`
}

// Completeness holds data-quality metrics over the extracted rows.
type Completeness struct {
	// DrivabilityPct is the percentage of rows with a resolved
	// (non-Unspecified) Drivability status.
	DrivabilityPct float64 `json:"drivability_pct"`
	// DynamismPct is the percentage of rows with a resolved Dynamism status.
	DynamismPct float64 `json:"dynamism_pct"`
	// VehicleDataPct is the percentage of rows with at least one
	// non-missing vehicle value.
	VehicleDataPct float64 `json:"vehicle_data_pct"`
	// MissingDrivability counts rows with Unspecified Drivability status.
	MissingDrivability int `json:"missing_drivability"`
	// MissingDynamism counts rows with Unspecified Dynamism status.
	MissingDynamism int `json:"missing_dynamism"`
	// RowsWithoutVehicleData counts rows with no vehicle values at all.
	RowsWithoutVehicleData int `json:"rows_without_vehicle_data"`
}

// Report is the aggregate analysis result for one run.
// Built once, never mutated after construction.
type Report struct {
	// TotalUseCases is the number of extracted use-case rows.
	TotalUseCases int `json:"total_use_cases"`
	// Drivability is the Drivability P1 status distribution.
	Drivability StatusDistribution `json:"drivability_status"`
	// Dynamism is the Dynamism P1 status distribution.
	Dynamism StatusDistribution `json:"dynamism_status"`
	// Completeness holds data-quality metrics.
	Completeness Completeness `json:"completeness"`
	// Vehicles maps vehicle name to its statistics.
	Vehicles map[string]VehicleStats `json:"vehicles"`
	// Insights is the ordered list of generated insight strings.
	Insights []string `json:"insights"`
}
