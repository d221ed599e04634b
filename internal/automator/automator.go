package automator

import (
	"fmt"
	"time"

	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/types"

	"github.com/xuri/excelize/v2"
)

// Process runs the full pipeline on one MAUDE file: validate, capture
// styling, collect distinct category values, append binary indicator
// columns, restore styling, back up the original, and overwrite it.
//
// The original file is only replaced after both the in-memory transformation
// and the backup copy have succeeded. When every derived column already
// exists the file is left untouched and the result reports NoOp.
//
// progressChan, when non-nil, receives fractional progress during column
// synthesis; sends never block.
func Process(path string, opts Options, progressChan chan<- float64) (*types.ProcessResult, error) {
	if err := Validate(path, opts); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(opts.SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data := &types.SheetData{Headers: rows[0], Rows: rows[1:]}
	origCols := len(data.Headers)

	snap, err := captureStyles(f, opts.SheetName, len(rows), origCols)
	if err != nil {
		return nil, fmt.Errorf("capturing styles in %s: %w", path, err)
	}

	result := &types.ProcessResult{
		InputFile:       path,
		SheetName:       opts.SheetName,
		ExistingBinary:  ExistingBinaryColumns(data.Headers),
		OriginalColumns: origCols,
		TotalColumns:    origCols,
		Rows:            len(data.Rows),
	}
	for i, cat := range Categories {
		n := len(DistinctValues(data.Rows, cat.MatchColumns(data.Headers)))
		switch i {
		case 0:
			result.DeviceValues = n
		case 1:
			result.PatientProblems = n
		case 2:
			result.PatientOutcomes = n
		}
	}

	columns := BuildBinaryColumns(data)
	if len(columns) == 0 {
		result.NoOp = true
		return result, nil
	}
	for _, col := range columns {
		result.NewColumns = append(result.NewColumns, col.Name)
	}
	result.TotalColumns = origCols + len(columns)

	if err := appendBinaryColumns(f, opts, origCols, columns, progressChan); err != nil {
		return nil, fmt.Errorf("writing binary columns to %s: %w", path, err)
	}

	if err := snap.restore(f, opts.SheetName); err != nil {
		return nil, fmt.Errorf("restoring styles in %s: %w", path, err)
	}

	backupPath, err := WriteBackup(path, time.Now())
	if err != nil {
		return nil, fmt.Errorf("backup failed, original left untouched: %w", err)
	}
	result.BackupFile = backupPath

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("rewriting %s: %w", path, err)
	}
	return result, nil
}

// appendBinaryColumns writes each synthesized column after the existing ones:
// bold header in row 1, then one styled 0/1 cell per data row.
func appendBinaryColumns(f *excelize.File, opts Options, origCols int, columns []BinaryColumn, progressChan chan<- float64) error {
	bs, err := newBinaryStyles(f, opts)
	if err != nil {
		return err
	}

	totalCells := 0
	for _, col := range columns {
		totalCells += len(col.Values) + 1
	}
	written := 0
	report := func() {
		if progressChan != nil && totalCells > 0 {
			select {
			case progressChan <- float64(written) / float64(totalCells):
			default:
			}
		}
	}

	for i, col := range columns {
		colNum := origCols + 1 + i

		headerCell, err := excelize.CoordinatesToCellName(colNum, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(opts.SheetName, headerCell, col.Name); err != nil {
			return err
		}
		if err := f.SetCellStyle(opts.SheetName, headerCell, headerCell, bs.header); err != nil {
			return err
		}
		written++
		report()

		for rowIdx, v := range col.Values {
			cell, err := excelize.CoordinatesToCellName(colNum, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(opts.SheetName, cell, v); err != nil {
				return err
			}
			fill := bs.red
			if v == 1 {
				fill = bs.green
			}
			if err := f.SetCellStyle(opts.SheetName, cell, cell, fill); err != nil {
				return err
			}
			written++
			report()
		}
	}
	return nil
}
