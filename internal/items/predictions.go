package items

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Prediction pairs a benchmark document with the model's raw response.
type Prediction struct {
	DocID    int             `json:"doc_id,omitempty"`
	Doc      json.RawMessage `json:"doc"`
	Response string          `json:"response"`
}

// LoadPredictions reads predictions from a .json array or .jsonl file.
func LoadPredictions(path string) ([]Prediction, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" || ext == ".yaml" {
		return nil, fmt.Errorf("predictions must be json or jsonl, got %s", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	predictions, err := decodeRecords[Prediction](data, path)
	if err != nil {
		return nil, err
	}
	for i, prediction := range predictions {
		if len(prediction.Doc) == 0 || string(prediction.Doc) == "null" {
			return nil, fmt.Errorf("prediction %d: doc is required", i)
		}
	}
	return predictions, nil
}
