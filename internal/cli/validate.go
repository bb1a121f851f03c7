package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"thorbench/internal/accuracy"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		sel := addSelectionFlags(flags)
		paths, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if len(paths) == 0 {
			fmt.Fprintln(stderr, "Missing <items>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if len(paths) > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		_, logger, err := common.setup(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			return ExitError
		}
		selected, err := sel.resolve()
		if err != nil {
			return reportFailure(cmd, stderr, "Validation failed", usagef("%v", err))
		}

		scored, err := loadItems(paths[0])
		if err == nil {
			err = accuracy.ValidateAll(scored, selected.profile)
		}
		if err != nil {
			var issues accuracy.ValidationErrors
			if !errors.As(err, &issues) {
				fmt.Fprintf(stderr, "Validation failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stderr, "Validation failed: %d invalid items in %s\n", len(issues), paths[0])
			for _, issue := range issues {
				fmt.Fprintf(stderr, "- %s\n", issue.Error())
			}
			return ExitError
		}

		logger.Debug("validated items", "path", paths[0], "profile", selected.profile.Name, "items", len(scored))
		fmt.Fprintf(stdout, "Items OK (%d items, profile %s)\n", len(scored), selected.profile.Name)
		return ExitOK
	}
}
