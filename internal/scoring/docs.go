package scoring

import (
	"strings"
)

// CountingDoc is one object counting question with its metadata.
type CountingDoc struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	QuestionType string   `json:"question_type"`
	Difficulty   string   `json:"difficulty"`
	MovementType string   `json:"movement_type"`
	TotalFrames  int      `json:"total_frames"`
}

// PerspectiveDoc is one perspective-taking question. AnswerChoices holds the
// list literal as stored in the dataset, e.g. ["Closer", "Further"].
type PerspectiveDoc struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	AnswerChoices string `json:"answer_choices"`
	Answer        string `json:"answer"`
	QuestionType  string `json:"question_type"`
}

// ParseAnswerChoices parses a list literal whose elements are all quoted
// strings, e.g. ['Closer', "It's further"]. Bare words are rejected.
func ParseAnswerChoices(literal string) ([]string, error) {
	return parseStringList(literal)
}

// FormatPrompt renders the question followed by its choices and post prompt.
func FormatPrompt(question string, choices []string, postPrompt string) string {
	text := strings.TrimSpace(question)
	if len(choices) > 0 {
		text += "\n" + strings.Join(choices, "\n")
	}
	return text + postPrompt
}

// LetterChoices prefixes each choice with its letter, e.g. "A) Closer".
func LetterChoices(choices []string) []string {
	letters := Letters(len(choices))
	out := make([]string, 0, len(letters))
	for i, letter := range letters {
		out = append(out, letter+") "+choices[i])
	}
	return out
}

// Prompt renders the counting question; choices already carry their letters.
func (doc CountingDoc) Prompt(postPrompt string) string {
	return FormatPrompt(doc.Question, doc.Choices, postPrompt)
}

// Prompt renders the perspective question with lettered choices. Choices that
// fail to parse are appended verbatim.
func (doc PerspectiveDoc) Prompt(postPrompt string) string {
	choices, err := ParseAnswerChoices(doc.AnswerChoices)
	if err != nil {
		return FormatPrompt(doc.Question, []string{doc.AnswerChoices}, postPrompt)
	}
	return FormatPrompt(doc.Question, LetterChoices(choices), postPrompt)
}
