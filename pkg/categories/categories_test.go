package categories

import (
	"testing"
)

func TestAll(t *testing.T) {
	list := All()
	if len(list) != 20 {
		t.Fatalf("Expected 20 categories, got %d", len(list))
	}

	if list[0] != "mohinga" {
		t.Errorf("Expected first category to be mohinga, got %s", list[0])
	}

	// All() must return a copy
	list[0] = "changed"
	if All()[0] != "mohinga" {
		t.Error("Expected All() to return a copy of the list")
	}
}

func TestContains(t *testing.T) {
	if !Contains("mohinga") {
		t.Error("Expected mohinga to be a known category")
	}
	if !Contains("  Laphet Thoke ") {
		t.Error("Expected name matching to be case and whitespace insensitive")
	}
	if Contains("pizza") {
		t.Error("Expected pizza to be unknown")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"1", "mohinga", false},
		{"20", "mont ti", false},
		{"0", "", true},
		{"21", "", true},
		{"-3", "", true},
		{"mohinga", "mohinga", false},
		{"  Shan Noodles ", "shan noodles", false},
		{"burmese tofu", "burmese tofu", false}, // user-chosen category
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
