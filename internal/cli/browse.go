package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"thorbench/internal/report"
	"thorbench/internal/ui/browse"
)

// runBrowser is a test seam for the interactive report browser.
var runBrowser = func(doc report.Document, stdout io.Writer, opts browse.Options) error {
	return browse.Run(doc, os.Stdin, stdout, opts)
}

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		paths, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, logger, err := common.setup(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		selected, err := sel.resolve()
		if err != nil {
			return reportFailure(cmd, stderr, "Browse failed", usagef("%v", err))
		}

		result, err := buildReport(context.Background(), reportRequest{
			cfg:       cfg,
			logger:    logger,
			selection: selected,
			explicit:  sel.explicit(),
			source:    source,
			paths:     paths,
		})
		if err != nil {
			return reportFailure(cmd, stderr, "Browse failed", err)
		}

		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		if !decision.interactive {
			noColor := *common.noColor || !isTerminal(stdout)
			fmt.Fprintln(stdout, report.RenderTables(result.doc, noColor))
			return ExitOK
		}
		if err := runBrowser(result.doc, stdout, browse.Options{NoColor: *common.noColor}); err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
