package main

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"thorbench/internal/accuracy"
)

// newItemAppender creates a DuckDB appender for bulk scored item inserts.
func newItemAppender(conn *sql.Conn) (*duckdbdriver.Appender, error) {
	var appender *duckdbdriver.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdbdriver.NewAppenderFromConn(rawConn, "", "scored_items")
		return err
	}); err != nil {
		return nil, err
	}
	if appender == nil {
		return nil, fmt.Errorf("duckdb appender initialization failed")
	}
	return appender, nil
}

// itemRow lays out an item in scored_items column order.
func itemRow(runID string, index int, item accuracy.ScoredItem) []driver.Value {
	return []driver.Value{
		runID,
		int32(index),
		nullable(item.ID),
		item.IsCorrect,
		nullable(item.QuestionType),
		nullable(item.Difficulty),
		nullable(item.MovementType),
		int32(item.FrameCount),
		nullable(item.Split),
		nullable(item.Prediction),
	}
}

func nullable(value string) driver.Value {
	if value == "" {
		return nil
	}
	return value
}

// syntheticItems builds a repeatable spread of counting items for run.
func syntheticItems(run, count int) []accuracy.ScoredItem {
	questionTypes := []string{"object_count", "object_count_occluded"}
	difficulties := []string{"easy", "medium", "hard"}
	movements := []string{"rotate", "forward", "strafe"}
	letters := []string{"A", "B", "C", "D"}
	items := make([]accuracy.ScoredItem, 0, count)
	for i := 0; i < count; i++ {
		seed := i*7 + run*3
		items = append(items, accuracy.ScoredItem{
			ID:           fmt.Sprintf("fixture-%d-%04d", run, i),
			Benchmark:    "counting_400",
			IsCorrect:    seed%10 < 6,
			QuestionType: questionTypes[i%len(questionTypes)],
			Difficulty:   difficulties[(i/2)%len(difficulties)],
			MovementType: movements[(i/3)%len(movements)],
			FrameCount:   3 + i%3,
			Prediction:   letters[seed%len(letters)],
		})
	}
	return items
}

// dirOf returns the parent directory for a file path.
func dirOf(path string) string {
	if path == "" {
		return "."
	}
	if idx := len(path) - 1; idx >= 0 && path[idx] == os.PathSeparator {
		return path
	}
	return filepath.Dir(path)
}

// removeIfExists deletes an existing fixture file so we always start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}

// deterministicID generates a repeatable UUID for fixture rows.
func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}

// fixtureNamespace ensures stable UUIDs across fixture runs.
var fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
