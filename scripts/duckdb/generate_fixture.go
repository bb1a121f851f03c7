package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"thorbench/internal/accuracy"
	"thorbench/internal/duckdb"
)

// fixtureConfig defines the JSON config for generating a DuckDB fixture.
type fixtureConfig struct {
	Name  string `json:"name"`
	Runs  int    `json:"runs"`
	Items int    `json:"items"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dirOf(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Runs <= 0 || cfg.Items < 0 {
		return fixtureConfig{}, fmt.Errorf("fixture %q: runs must be positive and items non-negative", cfg.Name)
	}
	return cfg, nil
}

// generateFixture writes cfg.Runs counting runs of cfg.Items synthetic items each.
func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for run := 0; run < cfg.Runs; run++ {
		runID := deterministicID("run-"+cfg.Name, run)
		items := syntheticItems(run, cfg.Items)
		digest, err := duckdb.FingerprintItems(items)
		if err != nil {
			return err
		}
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO runs (run_id, benchmark, profile, items_digest, item_count, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, "counting_400", accuracy.ProfileCounting.Name, digest, len(items), createdAt.Add(time.Duration(run)*time.Hour),
		); err != nil {
			return fmt.Errorf("insert run %d: %w", run, err)
		}
		if err := appendItems(conn, runID, items); err != nil {
			return fmt.Errorf("append run %d: %w", run, err)
		}
	}
	return nil
}

func appendItems(conn *sql.Conn, runID string, items []accuracy.ScoredItem) error {
	appender, err := newItemAppender(conn)
	if err != nil {
		return err
	}
	for i, item := range items {
		if err := appender.AppendRow(itemRow(runID, i, item)...); err != nil {
			_ = appender.Close()
			return err
		}
	}
	return appender.Close()
}
