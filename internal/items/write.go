package items

import (
	"encoding/json"
	"fmt"
	"io"

	"thorbench/internal/accuracy"
)

// WriteJSONLines writes one scored item per line.
func WriteJSONLines(w io.Writer, items []accuracy.ScoredItem) error {
	encoder := json.NewEncoder(w)
	for i, item := range items {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("write item %d: %w", i, err)
		}
	}
	return nil
}
