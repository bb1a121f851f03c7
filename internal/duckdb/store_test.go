package duckdb_test

import (
	"errors"
	"testing"
	"time"

	"thorbench/internal/accuracy"
	"thorbench/internal/duckdb"
)

func storeItems() []accuracy.ScoredItem {
	return []accuracy.ScoredItem{
		{ID: "1", IsCorrect: true, QuestionType: "A", Difficulty: "easy", MovementType: "rotate", FrameCount: 3},
		{ID: "2", IsCorrect: false, QuestionType: "A", Difficulty: "hard", MovementType: "forward", FrameCount: 10},
		{ID: "3", IsCorrect: true, QuestionType: "B", Difficulty: "easy", MovementType: "rotate", FrameCount: 4, Split: "s1"},
	}
}

// TestInsertRunRoundTrip verifies stored items load back in order.
func TestInsertRunRoundTrip(t *testing.T) {
	db, ctx := openTestDB(t)
	run, err := duckdb.InsertRun(ctx, db, duckdb.Run{Benchmark: "counting_400", Profile: "counting"}, storeItems())
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}
	if run.ID == "" || run.ItemCount != 3 || run.ItemsDigest == "" {
		t.Fatalf("run fields not filled: %+v", run)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM scored_items WHERE run_id = ?", run.ID); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}
	loaded, err := duckdb.LoadItems(ctx, db, run.ID)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	want := storeItems()
	for i := range want {
		want[i].Benchmark = "counting_400"
		if loaded[i] != want[i] {
			t.Fatalf("item %d mismatch: %+v vs %+v", i, loaded[i], want[i])
		}
	}
}

// TestQueryGroupsMatchesAggregate verifies SQL grouping agrees with the in-memory fold.
func TestQueryGroupsMatchesAggregate(t *testing.T) {
	db, ctx := openTestDB(t)
	items := storeItems()
	run, err := duckdb.InsertRun(ctx, db, duckdb.Run{Profile: "full"}, items)
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}
	report, err := accuracy.Aggregate(items, accuracy.ProfileFull)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	overall, err := duckdb.QueryOverall(ctx, db, run.ID)
	if err != nil {
		t.Fatalf("query overall: %v", err)
	}
	if overall != report.Overall() {
		t.Fatalf("overall mismatch: %v vs %v", overall, report.Overall())
	}
	for _, dim := range accuracy.Dimensions {
		groups, err := duckdb.QueryGroups(ctx, db, run.ID, dim)
		if err != nil {
			t.Fatalf("query %s: %v", dim, err)
		}
		want := report.Groups(dim)
		if len(groups) != len(want) {
			t.Fatalf("%s: expected %d groups, got %d", dim, len(want), len(groups))
		}
		for i := range want {
			if groups[i] != want[i] {
				t.Fatalf("%s group %d: expected %+v, got %+v", dim, i, want[i], groups[i])
			}
		}
	}
}

// TestListRuns verifies runs list oldest first and identical items share a digest.
func TestListRuns(t *testing.T) {
	db, ctx := openTestDB(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	second, err := duckdb.InsertRun(ctx, db, duckdb.Run{ID: "b", Profile: "full", CreatedAt: base.Add(time.Hour)}, storeItems())
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}
	first, err := duckdb.InsertRun(ctx, db, duckdb.Run{ID: "a", Profile: "full", CreatedAt: base}, storeItems())
	if err != nil {
		t.Fatalf("insert first: %v", err)
	}
	runs, err := duckdb.ListRuns(ctx, db)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "a" || runs[1].ID != "b" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if first.ItemsDigest != second.ItemsDigest {
		t.Fatalf("expected identical digests")
	}
}

// TestGetRunNotFound verifies missing runs report ErrRunNotFound.
func TestGetRunNotFound(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := duckdb.GetRun(ctx, db, "missing"); !errors.Is(err, duckdb.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := duckdb.LoadItems(ctx, db, "missing"); !errors.Is(err, duckdb.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound from LoadItems, got %v", err)
	}
}

// TestInsertRunRequiresProfile verifies the profile is mandatory.
func TestInsertRunRequiresProfile(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := duckdb.InsertRun(ctx, db, duckdb.Run{}, storeItems()); err == nil {
		t.Fatalf("expected error")
	}
}
