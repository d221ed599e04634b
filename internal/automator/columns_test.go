package automator

import (
	"testing"

	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/types"
)

func TestSanitizeValueName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Single word", "Fracture", "Fracture"},
		{"Spaces", "Device Stops", "Device_Stops"},
		{"Comma", "Pain, Chronic", "Pain_Chronic"},
		{"Parentheses", "Injury (severe)", "Injury_severe"},
		{"Slash", "Crack/Split", "Crack_Split"},
		{"Binary prefix stripped", "Binary_Fracture", "Fracture"},
		{"Binary prefix only leading", "Not_Binary_Value", "Not_Binary_Value"},
		{"Everything at once", "Break, (Crack/Split) Noted", "Break_Crack_Split_Noted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeValueName(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeValueName(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildBinaryColumns(t *testing.T) {
	data := &types.SheetData{
		Headers: []string{"Report ID", "Device Problem 1", "Device Problem 2"},
		Rows: [][]string{
			{"R1", "Fracture", ""},
			{"R2", "Fracture", "Leak"},
		},
	}

	columns := BuildBinaryColumns(data)

	if len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(columns))
	}
	if columns[0].Name != "Device_Fracture" || columns[1].Name != "Device_Leak" {
		t.Errorf("unexpected column names: %q, %q", columns[0].Name, columns[1].Name)
	}

	// Row 1 has Fracture only; row 2 has both.
	if got := columns[0].Values; got[0] != 1 || got[1] != 1 {
		t.Errorf("Device_Fracture values = %v; want [1 1]", got)
	}
	if got := columns[1].Values; got[0] != 0 || got[1] != 1 {
		t.Errorf("Device_Leak values = %v; want [0 1]", got)
	}
}

func TestBuildBinaryColumnsSkipsExisting(t *testing.T) {
	data := &types.SheetData{
		Headers: []string{"Device Problem 1", "Device_Fracture"},
		Rows: [][]string{
			{"Fracture", "1"},
			{"Leak", "0"},
		},
	}

	columns := BuildBinaryColumns(data)

	if len(columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(columns))
	}
	if columns[0].Name != "Device_Leak" {
		t.Errorf("expected Device_Leak, got %q", columns[0].Name)
	}
}

func TestBuildBinaryColumnsTrimsBeforeMatching(t *testing.T) {
	data := &types.SheetData{
		Headers: []string{"Device Problem 1"},
		Rows: [][]string{
			{"  Fracture  "},
			{"Fracture"},
		},
	}

	columns := BuildBinaryColumns(data)

	if len(columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(columns))
	}
	if got := columns[0].Values; got[0] != 1 || got[1] != 1 {
		t.Errorf("Device_Fracture values = %v; want [1 1]", got)
	}
}

func TestBuildBinaryColumnsCollidingSanitizedNames(t *testing.T) {
	// "Crack Split" and "Crack/Split" both sanitize to Crack_Split; the
	// first value in sorted order keeps the column, the second is skipped.
	data := &types.SheetData{
		Headers: []string{"Device Problem 1"},
		Rows: [][]string{
			{"Crack Split"},
			{"Crack/Split"},
		},
	}

	columns := BuildBinaryColumns(data)

	if len(columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(columns))
	}
	if columns[0].Name != "Device_Crack_Split" {
		t.Errorf("expected Device_Crack_Split, got %q", columns[0].Name)
	}
	if got := columns[0].Values; got[0] != 1 || got[1] != 0 {
		t.Errorf("Device_Crack_Split values = %v; want [1 0]", got)
	}
}

func TestBuildBinaryColumnsCoincidentValuesAcrossCategories(t *testing.T) {
	// The same value in two categories produces two independent columns.
	data := &types.SheetData{
		Headers: []string{"Device Problem 1", "Patient Problem 1"},
		Rows: [][]string{
			{"Unknown", "Unknown"},
			{"", "Unknown"},
		},
	}

	columns := BuildBinaryColumns(data)

	if len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(columns))
	}
	if columns[0].Name != "Device_Unknown" || columns[1].Name != "Patient_Unknown" {
		t.Errorf("unexpected column names: %q, %q", columns[0].Name, columns[1].Name)
	}
	if got := columns[0].Values; got[0] != 1 || got[1] != 0 {
		t.Errorf("Device_Unknown values = %v; want [1 0]", got)
	}
	if got := columns[1].Values; got[0] != 1 || got[1] != 1 {
		t.Errorf("Patient_Unknown values = %v; want [1 1]", got)
	}
}
