package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

const lineWidth = 80

// RenderConsole writes the fixed-layout human-readable report: banner,
// per-category distribution tables, vehicle summary, per-vehicle statistics,
// data-quality metrics, and the insights list.
func RenderConsole(w io.Writer, report *models.Report) {
	banner(w, "EVALUATION DATA ANALYSIS REPORT")

	fmt.Fprintf(w, "\nTotal Use Cases Analyzed: %d\n", report.TotalUseCases)

	section(w, "DRIVABILITY P1 STATUS DISTRIBUTION")
	distributionTable(w, report.Drivability)

	section(w, "DYNAMISM P1 STATUS DISTRIBUTION")
	distributionTable(w, report.Dynamism)

	if len(report.Vehicles) > 0 {
		section(w, "VEHICLE TEST DATA SUMMARY")
		fmt.Fprintf(w, "  Total Vehicles: %d\n", len(report.Vehicles))
		fmt.Fprintf(w, "  Rows with Data: %d / %d\n",
			report.TotalUseCases-report.Completeness.RowsWithoutVehicleData, report.TotalUseCases)
		fmt.Fprintf(w, "\n  Vehicles:\n")
		for _, name := range sortedVehicles(report.Vehicles) {
			fmt.Fprintf(w, "    - %s\n", name)
		}

		section(w, "PER-VEHICLE STATISTICS (NUMERIC DATA)")
		for _, name := range sortedVehicles(report.Vehicles) {
			stats := report.Vehicles[name]
			fmt.Fprintf(w, "\n  %s:\n", name)
			if stats.NoData {
				fmt.Fprintf(w, "    No numeric data\n")
				continue
			}
			fmt.Fprintf(w, "    Data Points: %d\n", stats.Count)
			fmt.Fprintf(w, "    Average:     %.2f\n", stats.Mean)
			fmt.Fprintf(w, "    Min:         %.2f\n", stats.Min)
			fmt.Fprintf(w, "    Max:         %.2f\n", stats.Max)
			fmt.Fprintf(w, "    Range:       %.2f\n", stats.Range)
		}
	}

	section(w, "DATA QUALITY METRICS")
	fmt.Fprintf(w, "  Drivability P1 Completeness: %.1f%%\n", report.Completeness.DrivabilityPct)
	fmt.Fprintf(w, "  Dynamism P1 Completeness:    %.1f%%\n", report.Completeness.DynamismPct)
	fmt.Fprintf(w, "  Vehicle Data Completeness:   %.1f%%\n", report.Completeness.VehicleDataPct)

	if len(report.Insights) > 0 {
		section(w, "KEY INSIGHTS")
		for _, insight := range report.Insights {
			fmt.Fprintf(w, "  %s\n", insight)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", lineWidth))
}

func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

func section(w io.Writer, title string) {
	rule := strings.Repeat("-", lineWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

func distributionTable(w io.Writer, dist models.StatusDistribution) {
	for _, status := range models.Statuses {
		fmt.Fprintf(w, "  %-15s: %4d (%5.1f%%)\n",
			string(status), dist.Counts[status], dist.Percentages[status])
	}
}

func sortedVehicles(vehicles map[string]models.VehicleStats) []string {
	names := make([]string, 0, len(vehicles))
	for name := range vehicles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
