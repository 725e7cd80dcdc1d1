package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

func containsInsight(insights []string, fragment string) bool {
	for _, s := range insights {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

func TestInsightsAllUnspecified(t *testing.T) {
	rows := make([]models.UseCaseRow, 4)
	for i := range rows {
		rows[i] = row("uc", models.StatusUnspecified, models.StatusUnspecified, nil)
	}

	report := BuildReport(rows)
	assert.True(t, containsInsight(report.Insights, "No drivability P1 status data found"))
	assert.True(t, containsInsight(report.Insights, "No dynamism P1 status data found"))
	assert.True(t, containsInsight(report.Insights, "macros have not been run"))
}

func TestInsightsRedWarning(t *testing.T) {
	rows := []models.UseCaseRow{
		row("a", models.StatusRed, models.StatusGreen, nil),
		row("b", models.StatusGreen, models.StatusGreen, nil),
	}

	report := BuildReport(rows)
	require.NotEmpty(t, report.Insights)
	assert.True(t, containsInsight(report.Insights, "WARNING: 1 use cases (50.0%) have RED drivability status"))
}

func TestInsightsStrongGreen(t *testing.T) {
	rows := make([]models.UseCaseRow, 10)
	for i := range rows {
		s := models.StatusGreen
		if i >= 7 {
			s = models.StatusYellow
		}
		rows[i] = row("uc", s, models.StatusGreen, nil)
	}

	report := BuildReport(rows)
	assert.True(t, containsInsight(report.Insights, "Strong overall performance: 70.0%"))
}

func TestInsightsExcellentGreen(t *testing.T) {
	rows := make([]models.UseCaseRow, 10)
	for i := range rows {
		s := models.StatusGreen
		if i >= 9 {
			s = models.StatusYellow
		}
		rows[i] = row("uc", s, models.StatusGreen, nil)
	}

	report := BuildReport(rows)
	assert.True(t, containsInsight(report.Insights, "Excellent overall performance: 90.0%"))
}

func TestInsightsCriticalRed(t *testing.T) {
	rows := make([]models.UseCaseRow, 10)
	for i := range rows {
		s := models.StatusRed
		if i >= 4 {
			s = models.StatusGreen
		}
		rows[i] = row("uc", s, models.StatusGreen, nil)
	}

	report := BuildReport(rows)
	assert.True(t, containsInsight(report.Insights, "Critical: 40.0% of use cases are RED"))
}

func TestInsightsMostlyMissingStatus(t *testing.T) {
	rows := make([]models.UseCaseRow, 10)
	for i := range rows {
		s := models.StatusUnspecified
		if i >= 7 {
			s = models.StatusGreen
		}
		rows[i] = row("uc", s, models.StatusGreen, nil)
	}

	report := BuildReport(rows)
	assert.True(t, containsInsight(report.Insights, "Data quality issue: 7 rows (70.0%) missing drivability P1 status"))
}

func TestInsightsVehicles(t *testing.T) {
	rows := []models.UseCaseRow{
		row("a", models.StatusGreen, models.StatusGreen, map[string]models.CellValue{"VH B": numeric(1), "VH A": numeric(2)}),
		row("b", models.StatusGreen, models.StatusGreen, nil),
		row("c", models.StatusGreen, models.StatusGreen, nil),
	}

	report := BuildReport(rows)
	assert.True(t, containsInsight(report.Insights, "Found test data for 2 vehicle(s): VH A, VH B"))
	assert.True(t, containsInsight(report.Insights, "Only 1/3 use cases have vehicle test data"))
}

func TestInsightsNoVehicles(t *testing.T) {
	report := BuildReport([]models.UseCaseRow{
		row("a", models.StatusGreen, models.StatusGreen, nil),
	})
	assert.True(t, containsInsight(report.Insights, "No vehicle test data detected"))
}

func TestInsightsVehicleListTruncated(t *testing.T) {
	values := map[string]models.CellValue{
		"VH 1": numeric(1), "VH 2": numeric(2), "VH 3": numeric(3),
		"VH 4": numeric(4), "VH 5": numeric(5),
	}
	report := BuildReport([]models.UseCaseRow{
		row("a", models.StatusGreen, models.StatusGreen, values),
	})
	assert.True(t, containsInsight(report.Insights, "Found test data for 5 vehicle(s): VH 1, VH 2, VH 3 and 2 more"))
}
