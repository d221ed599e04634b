package automator

import (
	"github.com/xuri/excelize/v2"
)

// styleSnapshot holds the formatting of the sheet's used range so it can be
// reapplied unchanged after new columns are appended.
type styleSnapshot struct {
	cellStyles map[[2]int]int // (row, col), 1-based -> style ID
	colWidths  map[int]float64
	rowHeights map[int]float64
	maxRow     int
	maxCol     int
}

// captureStyles records every cell's style ID plus column widths and row
// heights before any structural change is made.
func captureStyles(f *excelize.File, sheet string, maxRow, maxCol int) (*styleSnapshot, error) {
	snap := &styleSnapshot{
		cellStyles: make(map[[2]int]int, maxRow*maxCol),
		colWidths:  make(map[int]float64, maxCol),
		rowHeights: make(map[int]float64, maxRow),
		maxRow:     maxRow,
		maxCol:     maxCol,
	}

	for row := 1; row <= maxRow; row++ {
		height, err := f.GetRowHeight(sheet, row)
		if err != nil {
			return nil, err
		}
		snap.rowHeights[row] = height

		for col := 1; col <= maxCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			styleID, err := f.GetCellStyle(sheet, cell)
			if err != nil {
				return nil, err
			}
			snap.cellStyles[[2]int{row, col}] = styleID
		}
	}

	for col := 1; col <= maxCol; col++ {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, err
		}
		width, err := f.GetColWidth(sheet, letter)
		if err != nil {
			return nil, err
		}
		snap.colWidths[col] = width
	}

	return snap, nil
}

// restore reapplies the captured formatting to every pre-existing
// coordinate. Columns appended after the capture are left untouched.
func (s *styleSnapshot) restore(f *excelize.File, sheet string) error {
	for row := 1; row <= s.maxRow; row++ {
		if height := s.rowHeights[row]; height > 0 {
			if err := f.SetRowHeight(sheet, row, height); err != nil {
				return err
			}
		}
		for col := 1; col <= s.maxCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, s.cellStyles[[2]int{row, col}]); err != nil {
				return err
			}
		}
	}

	for col := 1; col <= s.maxCol; col++ {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if width := s.colWidths[col]; width > 0 {
			if err := f.SetColWidth(sheet, letter, letter, width); err != nil {
				return err
			}
		}
	}
	return nil
}

// binaryStyles holds the fixed formatting for new indicator columns: bold
// header, green fill for 1, red fill for 0.
type binaryStyles struct {
	header int
	green  int
	red    int
}

func newBinaryStyles(f *excelize.File, opts Options) (binaryStyles, error) {
	var bs binaryStyles
	var err error

	bs.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return bs, err
	}

	bs.green, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{opts.GreenColor}},
	})
	if err != nil {
		return bs, err
	}

	bs.red, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{opts.RedColor}},
	})
	return bs, err
}
