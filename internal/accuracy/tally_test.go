package accuracy

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestAccuracyFormatRounding verifies display rounding is half away from zero.
func TestAccuracyFormatRounding(t *testing.T) {
	cases := []struct {
		tally    Tally
		decimals int
		want     string
	}{
		{Tally{Correct: 1, Total: 8}, 1, "12.5%"},
		{Tally{Correct: 1, Total: 8}, 0, "13%"},
		{Tally{Correct: 2, Total: 3}, 2, "66.67%"},
		{Tally{Correct: 1, Total: 3}, 2, "33.33%"},
		{Tally{Correct: 4, Total: 4}, 2, "100.00%"},
		{Tally{}, 2, "N/A"},
	}
	for _, tc := range cases {
		if got := tc.tally.Accuracy().Format(tc.decimals); got != tc.want {
			t.Fatalf("%v at %d decimals: expected %q, got %q", tc.tally, tc.decimals, tc.want, got)
		}
	}
}

// TestAccuracyRound verifies the headline rounding to five places.
func TestAccuracyRound(t *testing.T) {
	got, err := Tally{Correct: 2, Total: 3}.Accuracy().Round(5)
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if got != 66.66667 {
		t.Fatalf("expected 66.66667, got %v", got)
	}
	if _, err := (Tally{}).Accuracy().Round(5); !errors.Is(err, ErrEmptyGroup) {
		t.Fatalf("expected ErrEmptyGroup, got %v", err)
	}
}

// TestAccuracyMarshalJSON verifies N/A encodes as null.
func TestAccuracyMarshalJSON(t *testing.T) {
	payload, err := json.Marshal(map[string]Accuracy{
		"empty": (Tally{}).Accuracy(),
		"half":  Tally{Correct: 1, Total: 2}.Accuracy(),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `{"empty":null,"half":0.5}` {
		t.Fatalf("unexpected json: %s", payload)
	}
}

// TestValidateAllCollectsEveryIssue verifies batch validation reports each bad row.
func TestValidateAllCollectsEveryIssue(t *testing.T) {
	items := sampleItems()
	items[0].MovementType = ""
	items[2].FrameCount = -1
	err := ValidateAll(items, ProfileCounting)
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(errs))
	}
	if errs[0].Index != 0 || errs[0].Field != "movement_type" {
		t.Fatalf("unexpected first issue: %+v", errs[0])
	}
	if errs[1].Index != 2 || errs[1].Message != "must be positive, got -1" {
		t.Fatalf("unexpected second issue: %+v", errs[1])
	}
}

// TestLookupProfile verifies built-in profile lookup.
func TestLookupProfile(t *testing.T) {
	profile, err := LookupProfile(" Perspective ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !profile.Groups(DimSplit) || profile.Groups(DimDifficulty) {
		t.Fatalf("unexpected perspective dimensions: %v", profile.Dimensions)
	}
	if profile, err := LookupProfile(""); err != nil || profile.Name != "full" {
		t.Fatalf("expected default full profile, got %q, %v", profile.Name, err)
	}
	if _, err := LookupProfile("nope"); err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}
