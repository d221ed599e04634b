package automator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Validate checks that the file is a readable xlsx workbook containing the
// configured sheet with at least one category column. It never mutates the
// file.
func Validate(path string, opts Options) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("%w: %s", ErrNotXLSX, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(opts.SheetName)
	if err != nil {
		return err
	}
	if idx == -1 {
		return fmt.Errorf("%w: no %q sheet in %s", ErrMissingSheet, opts.SheetName, path)
	}

	rows, err := f.GetRows(opts.SheetName)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 || !hasCategoryColumns(rows[0]) {
		return fmt.Errorf("%w in %s", ErrNoCategoryColumns, path)
	}
	return nil
}

// hasCategoryColumns reports whether any header matches any category; a file
// with only some categories present is still processable.
func hasCategoryColumns(headers []string) bool {
	for _, cat := range Categories {
		if len(cat.MatchColumns(headers)) > 0 {
			return true
		}
	}
	return false
}
