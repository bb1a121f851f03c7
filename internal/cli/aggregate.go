package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"thorbench/internal/config"
	"thorbench/internal/report"
)

// runAggregate builds the handler for the aggregate command.
func runAggregate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		sel := addSelectionFlags(flags)
		source := addSourceFlags(flags)
		format := flags.String("format", "", "Output format: text, json, html, table (default: config format)")
		paths, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}

		cfg, logger, err := common.setup(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Aggregate failed: %v\n", err)
			return ExitError
		}
		outputFormat := strings.ToLower(strings.TrimSpace(*format))
		if outputFormat == "" {
			outputFormat = cfg.Format
		}
		if !validFormat(outputFormat) {
			fmt.Fprintf(stderr, "unknown format %q\n", outputFormat)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		selected, err := sel.resolve()
		if err != nil {
			return reportFailure(cmd, stderr, "Aggregate failed", usagef("%v", err))
		}

		ctx := context.Background()
		result, err := buildReport(ctx, reportRequest{
			cfg:       cfg,
			logger:    logger,
			selection: selected,
			explicit:  sel.explicit(),
			source:    source,
			paths:     paths,
		})
		if err != nil {
			return reportFailure(cmd, stderr, "Aggregate failed", err)
		}
		if err := writeDocument(ctx, stdout, result.doc, outputFormat, *common.noColor); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func validFormat(format string) bool {
	return slices.Contains(config.Formats, format)
}

// writeDocument renders doc to w in the requested format.
func writeDocument(ctx context.Context, w io.Writer, doc report.Document, format string, noColor bool) error {
	switch format {
	case "json":
		return report.WriteJSON(w, doc)
	case "html":
		return report.Page(doc).Render(ctx, w)
	case "table":
		_, err := io.WriteString(w, report.RenderTables(doc, noColor || !isTerminal(w))+"\n")
		return err
	default:
		return report.WriteText(w, doc)
	}
}
