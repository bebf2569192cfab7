package core

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"original", Original, false},
		{"intermediate", Intermediate, false},
		{"simple", Simple, false},
		{" simple ", "", true},
		{"", "", true},
		{"Simple", "", true},
		{"easy", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDifficulty) {
				t.Errorf("ParseDifficulty(%q) error = %v, want ErrInvalidDifficulty", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficultiesAreValid(t *testing.T) {
	levels := Difficulties()
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	for _, d := range levels {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Difficulty("hard").Valid() {
		t.Error("unknown level reported as valid")
	}
}
