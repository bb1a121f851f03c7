package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"thorbench/internal/duckdb"
	"thorbench/internal/report"
)

// runRuns builds the handler for the runs command.
func runRuns(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		dbFlag := flags.String("db", "", "DuckDB database (default: db_path or THORBENCH_DB)")
		rest, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if len(rest) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(rest, " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, logger, err := common.setup(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list runs: %v\n", err)
			return ExitError
		}
		dbPath := strings.TrimSpace(*dbFlag)
		if dbPath == "" {
			dbPath = cfg.DBPath
		}
		if dbPath == "" {
			fmt.Fprintln(stderr, "Missing --db")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		ctx := context.Background()
		db, err := duckdb.Open(ctx, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open database: %v\n", err)
			return ExitError
		}
		defer db.Close()
		runs, err := duckdb.ListRuns(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list runs: %v\n", err)
			return ExitError
		}
		logger.Debug("listed runs", "db", dbPath, "runs", len(runs))
		if len(runs) == 0 {
			fmt.Fprintln(stdout, "No runs found.")
			return ExitOK
		}

		noColor := *common.noColor || !isTerminal(stdout)
		fmt.Fprintln(stdout, runsTable(runs, noColor).View())
		return ExitOK
	}
}

// runsTable renders stored runs with the report table styles.
func runsTable(runs []duckdb.Run, noColor bool) table.Model {
	rows := make([]table.Row, 0, len(runs))
	for _, run := range runs {
		benchmarkName := run.Benchmark
		if benchmarkName == "" {
			benchmarkName = "-"
		}
		rows = append(rows, table.Row{
			run.ID,
			benchmarkName,
			run.Profile,
			strconv.Itoa(run.ItemCount),
			run.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Run", Width: 36},
			{Title: "Benchmark", Width: 16},
			{Title: "Profile", Width: 12},
			{Title: "Items", Width: 6},
			{Title: "Created", Width: 20},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithStyles(report.TableStyles(noColor)),
	)
}
