package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

// Insight thresholds. All are fixed, deterministic functions of the computed
// percentages; wording and order are stable across runs.
const (
	strongGreenPct   = 70.0
	excellentPct     = 80.0
	criticalRedPct   = 30.0
	lowCompleteness  = 50.0
	lowVehicleRowPct = 50.0
)

// Insights derives the ordered insight list from an otherwise complete report.
func Insights(report *models.Report) []string {
	var insights []string
	insights = append(insights, statusInsights("drivability", report.Drivability, report.TotalUseCases)...)
	insights = append(insights, statusInsights("dynamism", report.Dynamism, report.TotalUseCases)...)
	insights = append(insights, performanceInsights(report.Drivability, report.TotalUseCases)...)
	insights = append(insights, vehicleInsights(report)...)
	return insights
}

// statusInsights reports on one status category's distribution.
func statusInsights(category string, dist models.StatusDistribution, total int) []string {
	if total == 0 {
		return nil
	}

	var insights []string
	red := dist.Counts[models.StatusRed]
	yellow := dist.Counts[models.StatusYellow]
	green := dist.Counts[models.StatusGreen]
	unspecified := dist.Counts[models.StatusUnspecified]

	if red > 0 {
		insights = append(insights, fmt.Sprintf(
			"WARNING: %d use cases (%.1f%%) have RED %s status - these need immediate attention",
			red, dist.Percentages[models.StatusRed], category))
	}
	if yellow > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d use cases (%.1f%%) have YELLOW %s status - these require improvement",
			yellow, dist.Percentages[models.StatusYellow], category))
	}
	if green > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d use cases (%.1f%%) have GREEN %s status - performing well",
			green, dist.Percentages[models.StatusGreen], category))
	}

	if unspecified == total {
		insights = append(insights, fmt.Sprintf(
			"No %s P1 status data found - this is expected if test data has not been pasted yet or the workbook macros have not been run",
			category))
	} else if dist.Percentages[models.StatusUnspecified] > lowCompleteness {
		insights = append(insights, fmt.Sprintf(
			"Data quality issue: %d rows (%.1f%%) missing %s P1 status",
			unspecified, dist.Percentages[models.StatusUnspecified], category))
	}

	return insights
}

// performanceInsights summarizes overall drivability performance.
func performanceInsights(dist models.StatusDistribution, total int) []string {
	if total == 0 || dist.Counts[models.StatusGreen] == 0 {
		return nil
	}

	greenPct := dist.Percentages[models.StatusGreen]
	redPct := dist.Percentages[models.StatusRed]
	switch {
	case greenPct >= excellentPct:
		return []string{fmt.Sprintf("Excellent overall performance: %.1f%% of use cases are GREEN", greenPct)}
	case greenPct >= strongGreenPct:
		return []string{fmt.Sprintf("Strong overall performance: %.1f%% of use cases are GREEN", greenPct)}
	case redPct >= criticalRedPct:
		return []string{fmt.Sprintf("Critical: %.1f%% of use cases are RED - significant improvements needed", redPct)}
	}
	return nil
}

// vehicleInsights summarizes detected vehicle data and its coverage.
func vehicleInsights(report *models.Report) []string {
	if len(report.Vehicles) == 0 {
		return []string{"No vehicle test data detected - paste test data into the vehicle columns (typically starting from column L)"}
	}

	names := make([]string, 0, len(report.Vehicles))
	for name := range report.Vehicles {
		names = append(names, name)
	}
	sort.Strings(names)

	listed := names
	suffix := ""
	if len(names) > 3 {
		listed = names[:3]
		suffix = fmt.Sprintf(" and %d more", len(names)-3)
	}
	insights := []string{fmt.Sprintf(
		"Found test data for %d vehicle(s): %s%s",
		len(names), strings.Join(listed, ", "), suffix)}

	rowsWithData := report.TotalUseCases - report.Completeness.RowsWithoutVehicleData
	if report.Completeness.VehicleDataPct < lowVehicleRowPct {
		insights = append(insights, fmt.Sprintf(
			"Only %d/%d use cases have vehicle test data",
			rowsWithData, report.TotalUseCases))
	}
	return insights
}
