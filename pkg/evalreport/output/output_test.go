package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		TotalUseCases: 4,
		Drivability: models.StatusDistribution{
			Counts: map[models.Status]int{
				models.StatusRed: 1, models.StatusYellow: 0,
				models.StatusGreen: 2, models.StatusUnspecified: 1,
			},
			Percentages: map[models.Status]float64{
				models.StatusRed: 25.0, models.StatusYellow: 0,
				models.StatusGreen: 50.0, models.StatusUnspecified: 25.0,
			},
		},
		Dynamism: models.StatusDistribution{
			Counts: map[models.Status]int{
				models.StatusRed: 0, models.StatusYellow: 0,
				models.StatusGreen: 0, models.StatusUnspecified: 4,
			},
			Percentages: map[models.Status]float64{
				models.StatusRed: 0, models.StatusYellow: 0,
				models.StatusGreen: 0, models.StatusUnspecified: 100.0,
			},
		},
		Completeness: models.Completeness{
			DrivabilityPct: 75.0, DynamismPct: 0, VehicleDataPct: 50.0,
			MissingDrivability: 1, MissingDynamism: 4, RowsWithoutVehicleData: 2,
		},
		Vehicles: map[string]models.VehicleStats{
			"VH Proto A": {Count: 3, Mean: 20, Min: 10, Max: 30, Range: 20},
			"VH Proto B": {NoData: true},
		},
		Insights: []string{"WARNING: 1 use cases (25.0%) have RED drivability status - these need immediate attention"},
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	report := sampleReport()
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, ExportJSON(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.TotalUseCases, decoded.TotalUseCases)
	assert.Equal(t, report.Drivability.Counts, decoded.Drivability.Counts)
	assert.Equal(t, report.Dynamism.Counts, decoded.Dynamism.Counts)
	assert.Equal(t, report.Vehicles, decoded.Vehicles)
	assert.Equal(t, report.Insights, decoded.Insights)
}

func TestExportJSONStableKeys(t *testing.T) {
	data, err := ToJSON(sampleReport())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{
		"total_use_cases", "drivability_status", "dynamism_status",
		"completeness", "vehicles", "insights",
	} {
		assert.Contains(t, doc, key)
	}
}

func TestExportJSONUnwritablePath(t *testing.T) {
	err := ExportJSON(sampleReport(), filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)

	var exportErr *ExportError
	assert.True(t, errors.As(err, &exportErr))
}

func TestRenderConsole(t *testing.T) {
	var buf bytes.Buffer
	RenderConsole(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "EVALUATION DATA ANALYSIS REPORT")
	assert.Contains(t, out, "Total Use Cases Analyzed: 4")
	assert.Contains(t, out, "DRIVABILITY P1 STATUS DISTRIBUTION")
	assert.Contains(t, out, "DYNAMISM P1 STATUS DISTRIBUTION")
	assert.Contains(t, out, "Red            :    1 ( 25.0%)")
	assert.Contains(t, out, "VEHICLE TEST DATA SUMMARY")
	assert.Contains(t, out, "Rows with Data: 2 / 4")
	assert.Contains(t, out, "- VH Proto A")
	assert.Contains(t, out, "Average:     20.00")
	assert.Contains(t, out, "No numeric data")
	assert.Contains(t, out, "Drivability P1 Completeness: 75.0%")
	assert.Contains(t, out, "KEY INSIGHTS")
	assert.Contains(t, out, "RED drivability status")
}

func TestRenderConsoleWithoutVehicles(t *testing.T) {
	report := sampleReport()
	report.Vehicles = nil

	var buf bytes.Buffer
	RenderConsole(&buf, report)
	out := buf.String()

	assert.NotContains(t, out, "VEHICLE TEST DATA SUMMARY")
	assert.NotContains(t, out, "PER-VEHICLE STATISTICS")
	assert.Contains(t, out, "DATA QUALITY METRICS")
}
