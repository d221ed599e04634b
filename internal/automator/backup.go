package automator

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupPath returns the timestamped sibling path the original is copied to,
// e.g. report.xlsx -> report_backup_20250114_093045.xlsx.
func BackupPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_backup_" + now.Format("20060102_150405") + ext
}

// WriteBackup copies the unmodified source file to its backup path and
// returns that path. A partial backup is removed so a failed copy never
// leaves a misleading file behind.
func WriteBackup(path string, now time.Time) (string, error) {
	backupPath := BackupPath(path, now)

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return "", err
	}
	return backupPath, nil
}
