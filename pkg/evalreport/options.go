// Package evalreport analyzes evaluation workbooks and builds summary reports.
package evalreport

import (
	"go.uber.org/zap"

	"github.com/drivelab/evalreport/pkg/evalreport/parser"
)

// Options configures workbook analysis.
type Options struct {
	// ColorTolerance is the maximum normalized Euclidean RGB distance at
	// which a status fill color still matches the palette. Zero or negative
	// falls back to parser.DefaultColorTolerance.
	ColorTolerance float64
	// VehicleStartCol is the first 1-based column considered when scanning
	// the vehicle-name row. Zero falls back to parser.DefaultVehicleStartCol.
	VehicleStartCol int
	// Logger receives progress and best-effort warnings. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		ColorTolerance:  parser.DefaultColorTolerance,
		VehicleStartCol: parser.DefaultVehicleStartCol,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
