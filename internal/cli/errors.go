package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// parseCommandArgs parses args for cmd. ok is false when the caller should
// return code.
func parseCommandArgs(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (positionals []string, code int, ok bool) {
	positionals, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return nil, ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return nil, ExitUsage, false
	}
	return positionals, ExitOK, true
}

// usageError marks problems with how a command was invoked.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// reportFailure prints err and maps it to an exit code.
func reportFailure(cmd *Command, stderr io.Writer, prefix string, err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr, usage.msg)
		printCommandUsage(cmd, stderr)
		return ExitUsage
	}
	fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
	return ExitError
}
