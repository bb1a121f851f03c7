package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"thorbench/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// serveContext is canceled on interrupt so the server can shut down.
var serveContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := addCommonFlags(fs)
		sel := addSelectionFlags(fs)
		source := addSourceFlags(fs)
		addr := fs.String("addr", "127.0.0.1:8080", "Address to listen on")
		paths, code, ok := parseCommandArgs(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		cfg, logger, err := common.setup(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		selected, err := sel.resolve()
		if err != nil {
			return reportFailure(cmd, stderr, "Serve failed", usagef("%v", err))
		}

		ctx, stop := serveContext()
		defer stop()
		result, err := buildReport(ctx, reportRequest{
			cfg:       cfg,
			logger:    logger,
			selection: selected,
			explicit:  sel.explicit(),
			source:    source,
			paths:     paths,
		})
		if err != nil {
			return reportFailure(cmd, stderr, "Serve failed", err)
		}

		serverCfg := reportserver.Config{
			Addr:     *addr,
			Document: result.doc,
			DBPath:   result.dbPath,
			Logger:   logger,
		}
		fmt.Fprintf(stdout, "Serving report at http://%s\n", serverCfg.Addr)
		if err := serveReport(ctx, serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
