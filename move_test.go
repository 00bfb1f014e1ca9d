package cubestate

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"R", "R"},
		{"R'", "R'"},
		{"r`", "R'"},
		{"U2", "U U"},
		{" F ", "F"},
	}

	for _, tt := range tests {
		moves, err := ParseMove(tt.input)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.input, err)
			continue
		}
		if got := FormatMoves(moves); got != tt.want {
			t.Errorf("ParseMove(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, input := range []string{"", "X", "R3", "R''"} {
		if _, err := ParseMove(input); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", input, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(moves); got != "R U R' U'" {
		t.Errorf("got %q", got)
	}

	_, err = ParseMoves("R Q U")
	var nerr *NotationError
	if !errors.As(err, &nerr) || nerr.Token != "Q" {
		t.Errorf("expected NotationError for Q, got %v", err)
	}
	if !errors.Is(err, ErrInvalidNotation) {
		t.Error("NotationError should match ErrInvalidNotation")
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
}
