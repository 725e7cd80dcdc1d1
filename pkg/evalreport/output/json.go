// Package output renders analysis reports as console text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

// ExportError indicates a JSON report could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("writing report to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ToJSON serializes the report as an indented JSON document.
func ToJSON(report *models.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// ExportJSON writes the report as JSON to path. Failures are returned as
// *ExportError.
func ExportJSON(report *models.Report, path string) error {
	data, err := ToJSON(report)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
