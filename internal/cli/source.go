package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"thorbench/internal/accuracy"
	"thorbench/internal/benchmark"
	"thorbench/internal/config"
	"thorbench/internal/duckdb"
	"thorbench/internal/items"
	"thorbench/internal/report"
)

var now = func() time.Time { return time.Now().UTC() }

// stdin is read when the items path is "-".
var stdin io.Reader = os.Stdin

// sourceFlags choose where scored items come from and how they are aggregated.
type sourceFlags struct {
	db       *string
	run      *string
	shards   *int
	decimals *int
	verify   *bool
}

func addSourceFlags(fs *flag.FlagSet) sourceFlags {
	return sourceFlags{
		db:       fs.String("db", "", "DuckDB database to store or read runs (default: db_path or THORBENCH_DB)"),
		run:      fs.String("run", "", "Aggregate a stored run instead of an items file"),
		shards:   fs.Int("shards", 0, "Aggregate in N concurrent shards"),
		decimals: fs.Int("decimals", -1, "Decimal places for percentages (default: config decimals)"),
		verify:   fs.Bool("verify", false, "With --run, recompute tallies in SQL and compare"),
	}
}

// reportRequest is everything needed to build one report document.
type reportRequest struct {
	cfg       config.Config
	logger    *slog.Logger
	selection selection
	explicit  bool
	source    sourceFlags
	paths     []string
}

// reportResult is a built document and the database it was read from or stored in.
type reportResult struct {
	doc    report.Document
	dbPath string
}

func (req reportRequest) dbPath() string {
	if path := strings.TrimSpace(*req.source.db); path != "" {
		return path
	}
	return req.cfg.DBPath
}

func (req reportRequest) shards() int {
	if *req.source.shards > 0 {
		return *req.source.shards
	}
	return req.cfg.Shards
}

func (req reportRequest) decimals() int {
	if *req.source.decimals >= 0 {
		return *req.source.decimals
	}
	return req.cfg.DecimalPlaces()
}

// checkArgs reports usage problems before any work is done.
func (req reportRequest) checkArgs() error {
	runID := strings.TrimSpace(*req.source.run)
	switch {
	case runID != "" && len(req.paths) > 0:
		return usagef("--run cannot be combined with an items file")
	case runID != "" && req.dbPath() == "":
		return usagef("--run requires --db")
	case runID == "" && *req.source.verify:
		return usagef("--verify requires --run")
	case runID == "" && len(req.paths) == 0:
		return usagef("missing items file")
	case len(req.paths) > 1:
		return usagef("unexpected arguments: %s", strings.Join(req.paths[1:], " "))
	case *req.source.decimals > config.MaxDecimals:
		return usagef("--decimals must be at most %d", config.MaxDecimals)
	case *req.source.shards < 0:
		return usagef("--shards must not be negative")
	}
	return nil
}

// buildReport loads items, aggregates them, and stores the run when a database is configured.
func buildReport(ctx context.Context, req reportRequest) (reportResult, error) {
	if err := req.checkArgs(); err != nil {
		return reportResult{}, err
	}
	dbPath := req.dbPath()
	runID := strings.TrimSpace(*req.source.run)
	if runID != "" {
		return buildStoredReport(ctx, req, dbPath, runID)
	}

	path := req.paths[0]
	scored, err := loadItems(path)
	if err != nil {
		return reportResult{}, err
	}
	req.logger.Debug("loaded items", "path", path, "items", len(scored))

	agg, err := accuracy.AggregateSharded(ctx, scored, req.selection.profile, req.shards())
	if err != nil {
		return reportResult{}, fmt.Errorf("%s: %w", path, err)
	}

	runID = duckdb.NewRunID()
	if dbPath != "" {
		run, err := storeRun(ctx, dbPath, req.selection, scored)
		if err != nil {
			return reportResult{}, err
		}
		runID = run.ID
		req.logger.Info("stored run", "run", run.ID, "db", dbPath, "items", run.ItemCount)
	}

	doc := req.document(agg, runID)
	logAggregated(req.logger, doc, agg)
	return reportResult{doc: doc, dbPath: dbPath}, nil
}

func buildStoredReport(ctx context.Context, req reportRequest, dbPath, runID string) (reportResult, error) {
	db, err := duckdb.Open(ctx, dbPath)
	if err != nil {
		return reportResult{}, err
	}
	defer db.Close()

	run, err := duckdb.GetRun(ctx, db, runID)
	if err != nil {
		return reportResult{}, err
	}
	if !req.explicit {
		sel, err := selectionForRun(run)
		if err != nil {
			return reportResult{}, err
		}
		req.selection = sel
	}
	scored, err := duckdb.LoadItems(ctx, db, run.ID)
	if err != nil {
		return reportResult{}, err
	}
	req.logger.Debug("loaded run", "run", run.ID, "items", len(scored))

	agg, err := accuracy.AggregateSharded(ctx, scored, req.selection.profile, req.shards())
	if err != nil {
		return reportResult{}, fmt.Errorf("run %s: %w", run.ID, err)
	}
	if *req.source.verify {
		if err := verifyStoredRun(ctx, db, run.ID, agg); err != nil {
			return reportResult{}, err
		}
		req.logger.Info("verified run", "run", run.ID, "dimensions", len(agg.Dimensions()))
	}
	doc := req.document(agg, run.ID)
	logAggregated(req.logger, doc, agg)
	return reportResult{doc: doc, dbPath: dbPath}, nil
}

// loadItems reads an items file, or JSON lines from stdin for "-".
func loadItems(path string) ([]accuracy.ScoredItem, error) {
	if path == "-" {
		return items.ReadItems(stdin, "stdin.jsonl")
	}
	return items.LoadItems(path)
}

// verifyStoredRun recomputes a run's tallies with SQL GROUP BY and compares
// them with the in-memory report.
func verifyStoredRun(ctx context.Context, db *sql.DB, runID string, agg accuracy.Report) error {
	overall, err := duckdb.QueryOverall(ctx, db, runID)
	if err != nil {
		return err
	}
	if overall != agg.Overall() {
		return fmt.Errorf("verify run %s: overall is %s in SQL but %s in memory", runID, overall, agg.Overall())
	}
	for _, dim := range agg.Dimensions() {
		stored, err := duckdb.QueryGroups(ctx, db, runID, dim)
		if err != nil {
			return err
		}
		want := agg.Groups(dim)
		if len(stored) != len(want) {
			return fmt.Errorf("verify run %s: %s has %d groups in SQL but %d in memory", runID, dim, len(stored), len(want))
		}
		for i, group := range stored {
			if group.Key != want[i].Key || group.Tally != want[i].Tally {
				return fmt.Errorf("verify run %s: %s=%s is %s in SQL but %s=%s is %s in memory",
					runID, dim, group.Key.Value, group.Tally, dim, want[i].Key.Value, want[i].Tally)
			}
		}
	}
	return nil
}

// selectionForRun restores the grouping a run was stored with.
func selectionForRun(run duckdb.Run) (selection, error) {
	if run.Benchmark != "" {
		b, err := benchmark.Lookup(run.Benchmark)
		if err != nil {
			return selection{}, err
		}
		return selection{profile: b.Profile, benchmark: &b}, nil
	}
	profile, err := accuracy.LookupProfile(run.Profile)
	if err != nil {
		return selection{}, err
	}
	return selection{profile: profile}, nil
}

func storeRun(ctx context.Context, dbPath string, sel selection, scored []accuracy.ScoredItem) (duckdb.Run, error) {
	db, err := duckdb.Open(ctx, dbPath)
	if err != nil {
		return duckdb.Run{}, err
	}
	defer db.Close()
	return duckdb.InsertRun(ctx, db, duckdb.Run{
		Benchmark: sel.benchmarkName(),
		Profile:   sel.profile.Name,
	}, scored)
}

func (req reportRequest) document(agg accuracy.Report, runID string) report.Document {
	return report.Build(agg, report.Meta{
		RunID:     runID,
		Benchmark: req.selection.benchmarkName(),
		Title:     req.selection.title(),
		Decimals:  req.decimals(),
		Now:       now(),
	})
}

func logAggregated(logger *slog.Logger, doc report.Document, agg accuracy.Report) {
	overall := agg.Overall()
	attrs := []any{"run", doc.RunID, "items", overall.Total}
	if headline, err := overall.Accuracy().Round(5); err == nil {
		attrs = append(attrs, "accuracy", headline)
	} else {
		attrs = append(attrs, "accuracy", accuracy.NotAvailable)
	}
	logger.Info("aggregated", attrs...)
}
