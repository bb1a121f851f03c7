package scoring

import (
	"errors"
	"strings"
)

// ErrNoChoice indicates that no choice letter could be found in a response.
var ErrNoChoice = errors.New("no choice letter found in response")

// punctuation is stripped from both ends of a response, one character class at a time.
var punctuation = []string{",", ".", "!", "?", ";", ":", "'"}

// ParseChoice extracts the predicted choice letter from a model response.
//
// Patterns are tried in order: "(A)", " A ", "A.", "A)". The first pattern
// that matches any choice wins. When several choices match, the one whose
// standalone occurrence appears last is returned.
func ParseChoice(response string, choices []string) (string, error) {
	response = strings.TrimSpace(response)
	for _, char := range punctuation {
		response = strings.Trim(response, char)
	}
	padded := " " + response + " "

	patterns := []func(string) string{
		func(choice string) string { return "(" + choice + ")" },
		func(choice string) string { return " " + choice + " " },
		func(choice string) string { return choice + "." },
		func(choice string) string { return choice + ")" },
	}
	var candidates []string
	for _, pattern := range patterns {
		for _, choice := range choices {
			if strings.Contains(padded, pattern(choice)) {
				candidates = append(candidates, choice)
			}
		}
		if len(candidates) > 0 {
			break
		}
	}

	switch len(candidates) {
	case 0:
		return "", ErrNoChoice
	case 1:
		return candidates[0], nil
	}
	best := 0
	bestIndex := strings.LastIndex(padded, " "+candidates[0]+" ")
	for i, candidate := range candidates[1:] {
		index := strings.LastIndex(padded, " "+candidate+" ")
		if index > bestIndex {
			best = i + 1
			bestIndex = index
		}
	}
	return candidates[best], nil
}

// Letters returns the first n choice letters starting at A.
func Letters(n int) []string {
	letters := make([]string, 0, n)
	for i := 0; i < n && i < 26; i++ {
		letters = append(letters, string(rune('A'+i)))
	}
	return letters
}
