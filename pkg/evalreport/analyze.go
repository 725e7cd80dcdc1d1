package evalreport

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/drivelab/evalreport/pkg/evalreport/analysis"
	"github.com/drivelab/evalreport/pkg/evalreport/models"
	"github.com/drivelab/evalreport/pkg/evalreport/parser"
)

// Analyze opens the workbook at path, extracts the evaluation table, and
// builds the aggregate report. The workbook is read-only and closed on every
// exit path. Structural failures (unreadable file, missing sheet or header,
// empty table) are fatal; per-cell anomalies degrade into the report's
// completeness metrics instead.
func Analyze(path string, opts Options) (*models.Report, error) {
	log := opts.logger()
	log.Info("loading workbook", zap.String("path", path))

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
	}
	defer f.Close()

	sheetName, ok := parser.FindEvaluationSheet(f)
	if !ok {
		return nil, fmt.Errorf("%w in %s", ErrSheetNotFound, path)
	}
	log.Info("found evaluation sheet", zap.String("sheet", sheetName))

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", ErrFileRead, sheetName, err)
	}

	layout, err := parser.DetectLayout(rows, opts.VehicleStartCol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderNotFound, err)
	}
	log.Info("detected header",
		zap.Int("row", layout.HeaderRow),
		zap.Int("use_case_col", layout.UseCaseCol),
		zap.Int("vehicle_columns", len(layout.Vehicles)))
	if layout.DrivabilityP1Col == 0 {
		log.Warn("could not locate Drivability P1 column, statuses default to Unspecified")
	}
	if layout.DynamismP1Col == 0 {
		log.Warn("could not locate Dynamism P1 column, statuses default to Unspecified")
	}

	ucRows := parser.ExtractRows(f, sheetName, rows, layout, opts.ColorTolerance)
	if len(ucRows) == 0 {
		return nil, fmt.Errorf("%w below header row %d", ErrNoDataRows, layout.HeaderRow)
	}
	log.Info("extracted use-case rows", zap.Int("rows", len(ucRows)))

	return analysis.BuildReport(ucRows), nil
}
