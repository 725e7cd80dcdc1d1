// Package analysis aggregates extracted use-case rows into a report.
package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

// BuildReport aggregates the extracted rows into an immutable Report:
// status tallies for both categories, per-vehicle descriptive statistics,
// completeness metrics, and insight strings.
func BuildReport(rows []models.UseCaseRow) *models.Report {
	total := len(rows)

	report := &models.Report{
		TotalUseCases: total,
		Drivability:   tally(rows, total, func(r models.UseCaseRow) models.Status { return r.Drivability }),
		Dynamism:      tally(rows, total, func(r models.UseCaseRow) models.Status { return r.Dynamism }),
		Vehicles:      vehicleStats(rows),
	}

	rowsWithData := 0
	for _, r := range rows {
		if r.HasVehicleData() {
			rowsWithData++
		}
	}
	report.Completeness = models.Completeness{
		DrivabilityPct:         round1(percent(total-report.Drivability.Counts[models.StatusUnspecified], total)),
		DynamismPct:            round1(percent(total-report.Dynamism.Counts[models.StatusUnspecified], total)),
		VehicleDataPct:         round1(percent(rowsWithData, total)),
		MissingDrivability:     report.Drivability.Counts[models.StatusUnspecified],
		MissingDynamism:        report.Dynamism.Counts[models.StatusUnspecified],
		RowsWithoutVehicleData: total - rowsWithData,
	}

	report.Insights = Insights(report)
	return report
}

// tally counts status occurrences for one category and derives percentages.
// Counts sum to the total row count by construction.
func tally(rows []models.UseCaseRow, total int, status func(models.UseCaseRow) models.Status) models.StatusDistribution {
	dist := models.StatusDistribution{
		Counts:      make(map[models.Status]int, len(models.Statuses)),
		Percentages: make(map[models.Status]float64, len(models.Statuses)),
	}
	for _, s := range models.Statuses {
		dist.Counts[s] = 0
	}
	for _, r := range rows {
		s := status(r)
		if _, known := dist.Counts[s]; !known {
			s = models.StatusUnspecified
		}
		dist.Counts[s]++
	}
	for _, s := range models.Statuses {
		dist.Percentages[s] = round1(percent(dist.Counts[s], total))
	}
	return dist
}

// vehicleStats computes count/mean/min/max/range over the numeric values of
// each vehicle column. A vehicle with zero numeric values reports zeros and
// the NoData flag; no division by zero can occur.
func vehicleStats(rows []models.UseCaseRow) map[string]models.VehicleStats {
	values := make(map[string][]float64)
	for _, r := range rows {
		for vehicle, v := range r.VehicleValues {
			if v.Numeric {
				values[vehicle] = append(values[vehicle], v.Number)
			} else if _, seen := values[vehicle]; !seen {
				values[vehicle] = nil
			}
		}
	}

	result := make(map[string]models.VehicleStats, len(values))
	for vehicle, data := range values {
		if len(data) == 0 {
			result[vehicle] = models.VehicleStats{NoData: true}
			continue
		}
		mean, _ := stats.Mean(data)
		min, _ := stats.Min(data)
		max, _ := stats.Max(data)
		result[vehicle] = models.VehicleStats{
			Count: len(data),
			Mean:  mean,
			Min:   min,
			Max:   max,
			Range: max - min,
		}
	}
	return result
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
