package automator

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNotXLSX indicates the input file is not an .xlsx workbook.
var ErrNotXLSX = errors.New("not an .xlsx file")

// ErrMissingSheet indicates the workbook has no sheet with the configured name.
var ErrMissingSheet = errors.New("sheet not found")

// ErrNoCategoryColumns indicates the sheet has no device problem, patient
// problem, or patient outcome columns.
var ErrNoCategoryColumns = errors.New("no problem or outcome columns found")
