package types

// ProcessResult describes the outcome of processing one MAUDE file.
type ProcessResult struct {
	InputFile       string
	BackupFile      string
	SheetName       string
	DeviceValues    int
	PatientProblems int
	PatientOutcomes int
	ExistingBinary  []string
	NewColumns      []string
	OriginalColumns int
	TotalColumns    int
	Rows            int
	// NoOp is true when every derived column already existed, so the file
	// was left untouched and no backup was written.
	NoOp bool
}

// SheetData holds one worksheet as plain strings: the header row plus all
// data rows, positionally aligned.
type SheetData struct {
	Headers []string
	Rows    [][]string
}
