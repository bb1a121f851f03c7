package scoring

import (
	"strings"

	"thorbench/internal/accuracy"
)

const unknownSplit = "unknown"

// Outcome is the scored item plus how the prediction was read.
type Outcome struct {
	Item   accuracy.ScoredItem
	Parsed bool
}

// ScoreCounting grades a response to a counting question against choices A-D.
func ScoreCounting(doc CountingDoc, response string) Outcome {
	predicted, parsed := predict(response, Letters(4))
	return Outcome{
		Item: accuracy.ScoredItem{
			ID:           doc.ID,
			IsCorrect:    parsed && predicted == strings.TrimSpace(doc.Answer),
			QuestionType: doc.QuestionType,
			Difficulty:   doc.Difficulty,
			MovementType: doc.MovementType,
			FrameCount:   doc.TotalFrames,
			Prediction:   predicted,
		},
		Parsed: parsed,
	}
}

// ScorePerspective grades a response to a perspective question against
// choices A-B and derives its split.
func ScorePerspective(doc PerspectiveDoc, response string) Outcome {
	predicted, parsed := predict(response, Letters(2))
	return Outcome{
		Item: accuracy.ScoredItem{
			ID:           doc.ID,
			IsCorrect:    parsed && predicted == strings.TrimSpace(doc.Answer),
			QuestionType: doc.QuestionType,
			FrameCount:   1,
			Split:        PerspectiveSplit(doc),
			Prediction:   predicted,
		},
		Parsed: parsed,
	}
}

// PerspectiveSplit names the split a perspective question belongs to.
// Distance questions split on whether the correct choice says closer or
// further; relative position questions use their question type.
func PerspectiveSplit(doc PerspectiveDoc) string {
	questionType := doc.QuestionType
	switch {
	case strings.Contains(questionType, "distance_change"):
		answer := strings.TrimSpace(doc.Answer)
		if len(answer) != 1 {
			return unknownSplit
		}
		choices, err := ParseAnswerChoices(doc.AnswerChoices)
		if err != nil {
			return unknownSplit
		}
		index := int(answer[0]) - 'A'
		if index < 0 || index >= len(choices) {
			return unknownSplit
		}
		text := strings.ToLower(choices[index])
		switch {
		case strings.Contains(text, "closer"):
			return "distance_change_closer"
		case strings.Contains(text, "further"):
			return "distance_change_further"
		}
		return unknownSplit
	case strings.Contains(questionType, "relative_position"):
		return questionType
	default:
		return unknownSplit
	}
}

func predict(response string, choices []string) (string, bool) {
	choice, err := ParseChoice(response, choices)
	if err != nil {
		return "", false
	}
	return choice, true
}
