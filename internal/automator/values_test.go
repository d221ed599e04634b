package automator

import (
	"reflect"
	"testing"
)

func TestCategoryMatchColumns(t *testing.T) {
	device := Categories[0]

	tests := []struct {
		name     string
		headers  []string
		expected []int
	}{
		{
			name:     "Numbered columns",
			headers:  []string{"Report ID", "Device Problem 1", "Device Problem 2"},
			expected: []int{1, 2},
		},
		{
			name:     "No match",
			headers:  []string{"Report ID", "Event Date"},
			expected: nil,
		},
		{
			// Plain substring rule: a trailing colon still matches.
			name:     "Trailing colon matches",
			headers:  []string{"Device Problem:"},
			expected: []int{0},
		},
		{
			name:     "Case sensitive",
			headers:  []string{"device problem 1", "DEVICE PROBLEM 2"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := device.MatchColumns(tt.headers)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("MatchColumns(%v) = %v; want %v", tt.headers, got, tt.expected)
			}
		})
	}
}

func TestDistinctValues(t *testing.T) {
	rows := [][]string{
		{"Fracture", "Leak"},
		{"  Fracture  ", ""},
		{"", "   "},
		{"Leak"}, // ragged row, second column missing
	}

	got := DistinctValues(rows, []int{0, 1})
	want := []string{"Fracture", "Leak"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues() = %v; want %v", got, want)
	}
}

func TestDistinctValuesSorted(t *testing.T) {
	rows := [][]string{
		{"Zebra"},
		{"Apple"},
		{"Mango"},
	}

	got := DistinctValues(rows, []int{0})
	want := []string{"Apple", "Mango", "Zebra"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues() = %v; want %v", got, want)
	}
}

func TestExistingBinaryColumns(t *testing.T) {
	headers := []string{
		"Report ID",
		"Device Problem 1",
		"Device_Fracture",
		"Patient_Pain",
		"Outcome_Death",
		"Patient Outcome 1",
	}

	got := ExistingBinaryColumns(headers)
	want := []string{"Device_Fracture", "Patient_Pain", "Outcome_Death"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExistingBinaryColumns() = %v; want %v", got, want)
	}
}
