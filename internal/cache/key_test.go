package cache

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normal", "josh allen", "josh allen"},
		{"mixed case", "Josh Allen", "josh allen"},
		{"surrounding space", "  josh allen ", "josh allen"},
		{"interior runs", "josh    allen", "josh allen"},
		{"tabs and newlines", "josh\tallen\n", "josh allen"},
		{"empty", "", ""},
		{"only space", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEntryKey(t *testing.T) {
	a := entryKey("NFL", "Micah Parsons")
	b := entryKey(" nfl ", "  micah   parsons")
	if a != b {
		t.Errorf("equivalent keys differ: %q vs %q", a, b)
	}
	if a == entryKey("NBA", "Micah Parsons") {
		t.Error("sport must be part of the key")
	}
}

func TestStatLineKey(t *testing.T) {
	tests := []struct {
		name    string
		metrics []string
		want    string
	}{
		{"no metrics means all", nil, "p1:2024:all"},
		{"single metric", []string{"sacks"}, "p1:2024:sacks"},
		{"sorted", []string{"tackles", "sacks"}, "p1:2024:sacks,tackles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatLineKey("p1", "2024", tt.metrics); got != tt.want {
				t.Errorf("StatLineKey = %q, want %q", got, tt.want)
			}
		})
	}

	// The input slice must not be reordered.
	metrics := []string{"tackles", "sacks"}
	_ = StatLineKey("p1", "2024", metrics)
	if metrics[0] != "tackles" {
		t.Error("StatLineKey mutated its input")
	}
}
