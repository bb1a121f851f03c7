package accuracy

// ScoredItem is one graded answer plus the metadata it is grouped by.
type ScoredItem struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	Benchmark    string `json:"benchmark,omitempty" yaml:"benchmark,omitempty"`
	IsCorrect    bool   `json:"is_correct" yaml:"is_correct"`
	QuestionType string `json:"question_type" yaml:"question_type"`
	Difficulty   string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	MovementType string `json:"movement_type,omitempty" yaml:"movement_type,omitempty"`
	FrameCount   int    `json:"frame_count,omitempty" yaml:"frame_count,omitempty"`
	Split        string `json:"split,omitempty" yaml:"split,omitempty"`
	Prediction   string `json:"prediction,omitempty" yaml:"prediction,omitempty"`
}

// Value returns the item's value for a dimension, or false when absent.
func (item ScoredItem) Value(dim Dimension) (string, bool) {
	return valueOf(item, dim)
}
