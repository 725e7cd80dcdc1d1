package evalreport

import "errors"

// ErrFileRead indicates the workbook could not be opened or parsed.
var ErrFileRead = errors.New("workbook not readable")

// ErrSheetNotFound indicates no sheet name contains "evaluation".
var ErrSheetNotFound = errors.New("evaluation sheet not found")

// ErrHeaderNotFound indicates no USE CASE header row was detected.
var ErrHeaderNotFound = errors.New("use case header not found")

// ErrNoDataRows indicates the evaluation table below the header is empty.
var ErrNoDataRows = errors.New("no data rows found")
