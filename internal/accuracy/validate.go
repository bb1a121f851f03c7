package accuracy

import (
	"fmt"
	"strings"
)

// ValidationError reports a scored item that is missing a required field.
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

// Error returns a readable message naming the item position and field.
func (err *ValidationError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("item %d: %s: %s", err.Index, err.Field, err.Message)
}

// ValidationErrors collects every validation failure found in a batch.
type ValidationErrors []*ValidationError

// Error joins the individual failures.
func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("scored item validation failed: %s", strings.Join(parts, "; "))
}

// Validate checks that item carries every field the profile requires.
func Validate(item ScoredItem, index int, profile Profile) error {
	for _, dim := range profile.Required {
		if _, ok := valueOf(item, dim); ok {
			continue
		}
		message := "is required"
		if dim == DimFrameCount && item.FrameCount < 0 {
			message = fmt.Sprintf("must be positive, got %d", item.FrameCount)
		}
		return &ValidationError{Index: index, Field: string(dim), Message: message}
	}
	return nil
}

// ValidateAll checks every item and returns all failures at once.
func ValidateAll(items []ScoredItem, profile Profile) error {
	var errs ValidationErrors
	for i, item := range items {
		if err := Validate(item, i, profile); err != nil {
			errs = append(errs, err.(*ValidationError))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
