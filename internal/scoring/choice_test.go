package scoring

import (
	"errors"
	"testing"
)

// TestParseChoice verifies letter extraction across the supported response shapes.
func TestParseChoice(t *testing.T) {
	choices := Letters(4)
	cases := []struct {
		name     string
		response string
		want     string
	}{
		{"bare letter", "B", "B"},
		{"trailing period", "C.", "C"},
		{"parenthesized", "The answer is (D)", "D"},
		{"parenthesis wins over bare", "A or maybe (C)", "C"},
		{"standalone word", "I think A is right", "A"},
		{"right paren", "Answer:B) three chairs", "B"},
		{"dotted inside text", "Option C. fits", "C"},
		{"last standalone wins", "A is wrong, the answer is B", "B"},
		{"whitespace and quotes", "  'A'  ", "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseChoice(tc.response, choices)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

// TestParseChoiceNoCandidate verifies responses without a letter report ErrNoChoice.
func TestParseChoiceNoCandidate(t *testing.T) {
	for _, response := range []string{"", "three", "I cannot tell"} {
		if _, err := ParseChoice(response, Letters(2)); !errors.Is(err, ErrNoChoice) {
			t.Fatalf("%q: expected ErrNoChoice, got %v", response, err)
		}
	}
}

// TestParseChoiceRespectsChoiceSet verifies letters outside the choice set are ignored.
func TestParseChoiceRespectsChoiceSet(t *testing.T) {
	if _, err := ParseChoice("D", Letters(2)); !errors.Is(err, ErrNoChoice) {
		t.Fatalf("expected ErrNoChoice, got %v", err)
	}
}
