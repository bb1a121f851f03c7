package accuracy

import (
	"fmt"
	"strings"
)

// Dimension names a recognized grouping attribute of a scored item.
type Dimension string

const (
	DimQuestionType Dimension = "question_type"
	DimDifficulty   Dimension = "difficulty"
	DimMovementType Dimension = "movement_type"
	DimFrameCount   Dimension = "frame_count"
	DimSplit        Dimension = "split"
)

// Dimensions lists every recognized dimension in report order.
var Dimensions = []Dimension{
	DimQuestionType,
	DimDifficulty,
	DimMovementType,
	DimFrameCount,
	DimSplit,
}

// ParseDimension resolves a dimension by name.
func ParseDimension(name string) (Dimension, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, dim := range Dimensions {
		if string(dim) == normalized {
			return dim, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q", name)
}

// Title returns the section heading used when rendering the dimension.
func (d Dimension) Title() string {
	switch d {
	case DimQuestionType:
		return "By Question Type"
	case DimDifficulty:
		return "By Difficulty"
	case DimMovementType:
		return "By Movement Type"
	case DimFrameCount:
		return "By Number of Frames"
	case DimSplit:
		return "By Split"
	default:
		return "By " + string(d)
	}
}

// valueOf returns the item's value for the dimension and whether it is present.
func valueOf(item ScoredItem, dim Dimension) (string, bool) {
	switch dim {
	case DimQuestionType:
		return item.QuestionType, strings.TrimSpace(item.QuestionType) != ""
	case DimDifficulty:
		return item.Difficulty, strings.TrimSpace(item.Difficulty) != ""
	case DimMovementType:
		return item.MovementType, strings.TrimSpace(item.MovementType) != ""
	case DimFrameCount:
		return fmt.Sprintf("%d", item.FrameCount), item.FrameCount > 0
	case DimSplit:
		return item.Split, strings.TrimSpace(item.Split) != ""
	default:
		return "", false
	}
}
