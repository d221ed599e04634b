package automator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindMAUDEFiles lists the xlsx files in dir whose name contains "MAUDE",
// case-insensitively. The scan is non-recursive and the result is sorted.
func FindMAUDEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.EqualFold(filepath.Ext(name), ".xlsx") &&
			strings.Contains(strings.ToUpper(name), "MAUDE") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}
