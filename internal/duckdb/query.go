package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"thorbench/internal/accuracy"
)

// columns maps each dimension to its scored_items column. Only these names
// are ever interpolated into SQL.
var columns = map[accuracy.Dimension]string{
	accuracy.DimQuestionType: "question_type",
	accuracy.DimDifficulty:   "difficulty",
	accuracy.DimMovementType: "movement_type",
	accuracy.DimFrameCount:   "frame_count",
	accuracy.DimSplit:        "split",
}

// QueryOverall computes the overall tally of a run in SQL.
func QueryOverall(ctx context.Context, db *sql.DB, runID string) (accuracy.Tally, error) {
	var tally accuracy.Tally
	err := db.QueryRowContext(ctx,
		`SELECT count(*) FILTER (WHERE is_correct), count(*)
		 FROM scored_items WHERE run_id = ?`, runID,
	).Scan(&tally.Correct, &tally.Total)
	if err != nil {
		return accuracy.Tally{}, fmt.Errorf("query overall: %w", err)
	}
	return tally, nil
}

// QueryGroups computes one dimension's tallies for a run with GROUP BY.
// Values are ordered the same way as accuracy.Report.Groups.
func QueryGroups(ctx context.Context, db *sql.DB, runID string, dim accuracy.Dimension) ([]accuracy.Group, error) {
	column, ok := columns[dim]
	if !ok {
		return nil, fmt.Errorf("duckdb: unsupported dimension %q", dim)
	}
	query := fmt.Sprintf(
		`SELECT CAST(%[1]s AS VARCHAR), count(*) FILTER (WHERE is_correct), count(*)
		 FROM scored_items
		 WHERE run_id = ? AND %[1]s IS NOT NULL AND CAST(%[1]s AS VARCHAR) <> ''
		 GROUP BY %[1]s
		 ORDER BY %[1]s`, column)
	rows, err := db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query %s groups: %w", dim, err)
	}
	defer func() { _ = rows.Close() }()
	var groups []accuracy.Group
	for rows.Next() {
		var group accuracy.Group
		group.Key.Dimension = dim
		if err := rows.Scan(&group.Key.Value, &group.Tally.Correct, &group.Tally.Total); err != nil {
			return nil, fmt.Errorf("scan %s group: %w", dim, err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
