package items

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"thorbench/internal/accuracy"
)

// rawItem mirrors accuracy.ScoredItem but keeps is_correct optional so a
// missing verdict can be told apart from false.
type rawItem struct {
	ID           string `json:"id" yaml:"id"`
	Benchmark    string `json:"benchmark" yaml:"benchmark"`
	IsCorrect    *bool  `json:"is_correct" yaml:"is_correct"`
	QuestionType string `json:"question_type" yaml:"question_type"`
	Difficulty   string `json:"difficulty" yaml:"difficulty"`
	MovementType string `json:"movement_type" yaml:"movement_type"`
	FrameCount   int    `json:"frame_count" yaml:"frame_count"`
	Split        string `json:"split" yaml:"split"`
	Prediction   string `json:"prediction" yaml:"prediction"`
}

func (raw rawItem) toItem(index int) (accuracy.ScoredItem, *accuracy.ValidationError) {
	if raw.IsCorrect == nil {
		return accuracy.ScoredItem{}, &accuracy.ValidationError{Index: index, Field: "is_correct", Message: "is required"}
	}
	return accuracy.ScoredItem{
		ID:           strings.TrimSpace(raw.ID),
		Benchmark:    strings.TrimSpace(raw.Benchmark),
		IsCorrect:    *raw.IsCorrect,
		QuestionType: strings.TrimSpace(raw.QuestionType),
		Difficulty:   strings.TrimSpace(raw.Difficulty),
		MovementType: strings.TrimSpace(raw.MovementType),
		FrameCount:   raw.FrameCount,
		Split:        strings.TrimSpace(raw.Split),
		Prediction:   raw.Prediction,
	}, nil
}

// LoadItems reads scored items from a .json, .jsonl, or .yml/.yaml file.
// Every item missing its verdict is reported at once.
func LoadItems(path string) ([]accuracy.ScoredItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return parseItems(data, path)
}

// ReadItems decodes scored items from r using the format implied by name.
func ReadItems(r io.Reader, name string) ([]accuracy.ScoredItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return parseItems(data, name)
}

func parseItems(data []byte, name string) ([]accuracy.ScoredItem, error) {
	raws, err := decodeRecords[rawItem](data, name)
	if err != nil {
		return nil, err
	}
	out := make([]accuracy.ScoredItem, 0, len(raws))
	var errs accuracy.ValidationErrors
	for i, raw := range raws {
		item, issue := raw.toItem(i)
		if issue != nil {
			errs = append(errs, issue)
			continue
		}
		out = append(out, item)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func decodeRecords[T any](data []byte, path string) ([]T, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return decodeJSONLines[T](data)
	case ".yml", ".yaml":
		return decodeYAML[T](data)
	default:
		return decodeJSON[T](data)
	}
}

func decodeJSON[T any](data []byte) ([]T, error) {
	var records []T
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}

func decodeJSONLines[T any](data []byte) ([]T, error) {
	var records []T
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var record T
		decoder := json.NewDecoder(bytes.NewReader(text))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("parse jsonl line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan jsonl: %w", err)
	}
	return records, nil
}

func decodeYAML[T any](data []byte) ([]T, error) {
	var records []T
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return records, nil
}
