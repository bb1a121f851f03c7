package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"thorbench/internal/accuracy"
)

// Run describes one ingested batch of scored items.
type Run struct {
	ID          string
	Benchmark   string
	Profile     string
	ItemsDigest string
	ItemCount   int
	CreatedAt   time.Time
}

// ErrRunNotFound indicates the requested run does not exist.
var ErrRunNotFound = errors.New("run not found")

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// InsertRun stores a run and its items in one transaction. Missing run
// fields are filled in and the stored run is returned.
func InsertRun(ctx context.Context, db *sql.DB, run Run, items []accuracy.ScoredItem) (Run, error) {
	if db == nil {
		return Run{}, errors.New("duckdb: db is nil")
	}
	if run.Profile == "" {
		return Run{}, errors.New("duckdb: run profile is required")
	}
	if run.ID == "" {
		run.ID = NewRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	digest, err := FingerprintItems(items)
	if err != nil {
		return Run{}, fmt.Errorf("fingerprint items: %w", err)
	}
	run.ItemsDigest = digest
	run.ItemCount = len(items)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, benchmark, profile, items_digest, item_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, nullableString(run.Benchmark), run.Profile, run.ItemsDigest, run.ItemCount, run.CreatedAt,
	); err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO scored_items (run_id, item_index, item_id, is_correct, question_type, difficulty, movement_type, frame_count, split, prediction)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("prepare item insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for i, item := range items {
		if _, err := stmt.ExecContext(ctx,
			run.ID,
			i,
			nullableString(item.ID),
			item.IsCorrect,
			nullableString(item.QuestionType),
			nullableString(item.Difficulty),
			nullableString(item.MovementType),
			nullableInt(item.FrameCount),
			nullableString(item.Split),
			nullableString(item.Prediction),
		); err != nil {
			return Run{}, fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// ListRuns returns every stored run, oldest first.
func ListRuns(ctx context.Context, db *sql.DB) ([]Run, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT run_id, benchmark, profile, items_digest, item_count, created_at
		 FROM runs ORDER BY created_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var runs []Run
	for rows.Next() {
		var run Run
		var benchmark sql.NullString
		if err := rows.Scan(&run.ID, &benchmark, &run.Profile, &run.ItemsDigest, &run.ItemCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Benchmark = benchmark.String
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run by id.
func GetRun(ctx context.Context, db *sql.DB, runID string) (Run, error) {
	var run Run
	var benchmark sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT run_id, benchmark, profile, items_digest, item_count, created_at
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&run.ID, &benchmark, &run.Profile, &run.ItemsDigest, &run.ItemCount, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	run.Benchmark = benchmark.String
	return run, nil
}

// LoadItems returns a run's items in their original order.
func LoadItems(ctx context.Context, db *sql.DB, runID string) ([]accuracy.ScoredItem, error) {
	run, err := GetRun(ctx, db, runID)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT item_id, is_correct, question_type, difficulty, movement_type, frame_count, split, prediction
		 FROM scored_items WHERE run_id = ? ORDER BY item_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	defer func() { _ = rows.Close() }()
	items := make([]accuracy.ScoredItem, 0, run.ItemCount)
	for rows.Next() {
		var item accuracy.ScoredItem
		var id, questionType, difficulty, movementType, split, prediction sql.NullString
		var frameCount sql.NullInt64
		if err := rows.Scan(&id, &item.IsCorrect, &questionType, &difficulty, &movementType, &frameCount, &split, &prediction); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.ID = id.String
		item.Benchmark = run.Benchmark
		item.QuestionType = questionType.String
		item.Difficulty = difficulty.String
		item.MovementType = movementType.String
		item.FrameCount = int(frameCount.Int64)
		item.Split = split.String
		item.Prediction = prediction.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// nullableString stores empty strings as NULL.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

// nullableInt stores non-positive counts as NULL.
func nullableInt(value int) interface{} {
	if value <= 0 {
		return nil
	}
	return value
}
