package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"thorbench/internal/accuracy"
	"thorbench/internal/benchmark"
	"thorbench/internal/items"
	"thorbench/internal/report"
)

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		benchmarkName := flags.String("benchmark", "", "Benchmark the predictions belong to")
		outPath := flags.String("out", "", "Write scored items as JSON lines to this file (default: stdout)")
		paths, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if strings.TrimSpace(*benchmarkName) == "" {
			fmt.Fprintln(stderr, "Missing --benchmark")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if len(paths) != 1 {
			fmt.Fprintln(stderr, "Usage: thorbench score --benchmark <name> <predictions.jsonl>")
			return ExitUsage
		}
		bench, err := benchmark.Lookup(*benchmarkName)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		cfg, logger, err := common.setup(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}
		predictions, err := items.LoadPredictions(paths[0])
		if err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}

		postPrompt := cfg.PostPrompt(bench.Name)
		scored := make([]accuracy.ScoredItem, 0, len(predictions))
		unparsed := 0
		for i, prediction := range predictions {
			if logger.Enabled(context.Background(), slog.LevelDebug) {
				prompt, err := bench.Prompt(prediction.Doc, postPrompt)
				if err == nil {
					logger.Debug("prompt", "prediction", i, "text", prompt)
				}
			}
			outcome, err := bench.Score(prediction.Doc, prediction.Response)
			if err != nil {
				fmt.Fprintf(stderr, "Score failed: prediction %d: %v\n", i, err)
				return ExitError
			}
			if !outcome.Parsed {
				unparsed++
				logger.Warn("no choice in response", "prediction", i, "id", outcome.Item.ID)
			}
			scored = append(scored, outcome.Item)
		}
		logger.Info("scored", "benchmark", bench.Name, "items", len(scored), "unparsed", unparsed)

		if *outPath == "" {
			if err := items.WriteJSONLines(stdout, scored); err != nil {
				fmt.Fprintf(stderr, "Failed to write items: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := writeItemsFile(*outPath, scored); err != nil {
			fmt.Fprintf(stderr, "Failed to write items: %v\n", err)
			return ExitError
		}

		agg, err := accuracy.Aggregate(scored, bench.Profile)
		if err != nil {
			fmt.Fprintf(stderr, "Aggregate failed: %v\n", err)
			return ExitError
		}
		doc := report.Build(agg, report.Meta{
			Benchmark: bench.Name,
			Title:     bench.Title,
			Decimals:  cfg.DecimalPlaces(),
			Now:       now(),
		})
		if err := report.WriteText(stdout, doc); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func writeItemsFile(path string, scored []accuracy.ScoredItem) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := items.WriteJSONLines(file, scored); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
