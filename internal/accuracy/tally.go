package accuracy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrEmptyGroup indicates an accuracy was requested for a group with no items.
var ErrEmptyGroup = errors.New("group has no items")

// NotAvailable is the display text for an empty group.
const NotAvailable = "N/A"

// Tally counts correct answers out of a total.
type Tally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Add records one answer.
func (t Tally) Add(correct bool) Tally {
	t.Total++
	if correct {
		t.Correct++
	}
	return t
}

// Merge adds two tallies.
func (t Tally) Merge(other Tally) Tally {
	return Tally{Correct: t.Correct + other.Correct, Total: t.Total + other.Total}
}

// Accuracy derives the accuracy of the tally.
func (t Tally) Accuracy() Accuracy {
	if t.Total == 0 {
		return Accuracy{}
	}
	return Accuracy{value: float64(t.Correct) / float64(t.Total), valid: true}
}

// String renders the tally as correct/total.
func (t Tally) String() string {
	return fmt.Sprintf("%d/%d", t.Correct, t.Total)
}

// Accuracy is a ratio in [0, 1] or N/A when the group is empty.
type Accuracy struct {
	value float64
	valid bool
}

// Valid reports whether the accuracy is defined.
func (a Accuracy) Valid() bool {
	return a.valid
}

// Value returns the ratio, or ErrEmptyGroup when undefined.
func (a Accuracy) Value() (float64, error) {
	if !a.valid {
		return 0, ErrEmptyGroup
	}
	return a.value, nil
}

// Percent returns the accuracy scaled to 0-100, or ErrEmptyGroup.
func (a Accuracy) Percent() (float64, error) {
	value, err := a.Value()
	if err != nil {
		return 0, err
	}
	return value * 100, nil
}

// Round returns the percentage rounded half away from zero to places decimals.
func (a Accuracy) Round(places int) (float64, error) {
	percent, err := a.Percent()
	if err != nil {
		return 0, err
	}
	return roundHalfAway(percent, places), nil
}

// Format renders the percentage with the given decimals, e.g. "66.67%".
func (a Accuracy) Format(decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	percent, err := a.Round(decimals)
	if err != nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.*f%%", decimals, percent)
}

// String renders the percentage with two decimals.
func (a Accuracy) String() string {
	return a.Format(2)
}

// MarshalJSON encodes the ratio, or null when undefined.
func (a Accuracy) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

func roundHalfAway(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
