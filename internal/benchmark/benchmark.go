package benchmark

import (
	"encoding/json"
	"fmt"
	"strings"

	"thorbench/internal/accuracy"
	"thorbench/internal/scoring"
)

// Benchmark describes how one dataset's predictions are scored and reported.
type Benchmark struct {
	Name    string
	Title   string
	Profile accuracy.Profile
	Choices []string

	score  func(doc json.RawMessage, response string) (scoring.Outcome, error)
	prompt func(doc json.RawMessage, postPrompt string) (string, error)
}

// Score grades one response against its document.
func (b Benchmark) Score(doc json.RawMessage, response string) (scoring.Outcome, error) {
	outcome, err := b.score(doc, response)
	if err != nil {
		return scoring.Outcome{}, fmt.Errorf("%s: %w", b.Name, err)
	}
	outcome.Item.Benchmark = b.Name
	return outcome, nil
}

// Prompt renders the question text sent to the model.
func (b Benchmark) Prompt(doc json.RawMessage, postPrompt string) (string, error) {
	return b.prompt(doc, postPrompt)
}

var (
	Counting = Benchmark{
		Name:    "counting_400",
		Title:   "AI2-THOR Counting 400 Evaluation Results",
		Profile: accuracy.ProfileCounting,
		Choices: scoring.Letters(4),
		score: func(raw json.RawMessage, response string) (scoring.Outcome, error) {
			var doc scoring.CountingDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return scoring.Outcome{}, fmt.Errorf("decode doc: %w", err)
			}
			return scoring.ScoreCounting(doc, response), nil
		},
		prompt: func(raw json.RawMessage, postPrompt string) (string, error) {
			var doc scoring.CountingDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return "", fmt.Errorf("decode doc: %w", err)
			}
			return doc.Prompt(postPrompt), nil
		},
	}
	Perspective = Benchmark{
		Name:    "perspective_411",
		Title:   "AI2-THOR Perspective 411 Evaluation Results",
		Profile: accuracy.ProfilePerspective,
		Choices: scoring.Letters(2),
		score: func(raw json.RawMessage, response string) (scoring.Outcome, error) {
			var doc scoring.PerspectiveDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return scoring.Outcome{}, fmt.Errorf("decode doc: %w", err)
			}
			return scoring.ScorePerspective(doc, response), nil
		},
		prompt: func(raw json.RawMessage, postPrompt string) (string, error) {
			var doc scoring.PerspectiveDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return "", fmt.Errorf("decode doc: %w", err)
			}
			return doc.Prompt(postPrompt), nil
		},
	}
)

// All lists the registered benchmarks.
var All = []Benchmark{Counting, Perspective}

// Lookup returns a benchmark by name. Short names such as "counting" match.
func Lookup(name string) (Benchmark, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	names := make([]string, 0, len(All))
	for _, b := range All {
		if b.Name == normalized || strings.SplitN(b.Name, "_", 2)[0] == normalized {
			return b, nil
		}
		names = append(names, b.Name)
	}
	return Benchmark{}, fmt.Errorf("unknown benchmark %q (known: %s)", name, strings.Join(names, ", "))
}
