package automator

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFindMAUDEFiles(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{
		"MAUDE_export.xlsx",
		"maude_2024.xlsx",
		"Old_MAUDE.XLSX",
		"report.xlsx",
		"MAUDE_notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "MAUDE_archive.xlsx"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindMAUDEFiles(tmpDir)
	if err != nil {
		t.Fatalf("FindMAUDEFiles failed: %v", err)
	}

	want := []string{
		filepath.Join(tmpDir, "MAUDE_export.xlsx"),
		filepath.Join(tmpDir, "Old_MAUDE.XLSX"),
		filepath.Join(tmpDir, "maude_2024.xlsx"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindMAUDEFiles() = %v; want %v", got, want)
	}
}

func TestFindMAUDEFilesEmptyDir(t *testing.T) {
	got, err := FindMAUDEFiles(t.TempDir())
	if err != nil {
		t.Fatalf("FindMAUDEFiles failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no files, got %v", got)
	}
}
