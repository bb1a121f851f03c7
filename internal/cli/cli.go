package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  thorbench <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"thorbench <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("score", "Grade model responses into scored items", []string{
		"thorbench score --benchmark <name> [--out <items.jsonl>] <predictions.jsonl>",
	}, runScore),
	command("aggregate", "Compute overall and per-category accuracy", []string{
		"thorbench aggregate [--benchmark <name>|--profile <name>] [--format text|json|html|table] <items>",
		"thorbench aggregate --db <path> --run <run-id> [--verify]",
		"cat items.jsonl | thorbench aggregate -",
	}, runAggregate),
	command("validate", "Check scored items for missing fields", []string{
		"thorbench validate [--benchmark <name>|--profile <name>] <items>",
	}, runValidate),
	command("serve", "Serve an accuracy report over HTTP", []string{
		"thorbench serve [--addr <host:port>] [--benchmark <name>] <items>",
	}, runServe),
	command("browse", "Browse an accuracy report in the terminal", []string{
		"thorbench browse [--benchmark <name>] <items>",
	}, runBrowse),
	command("runs", "List runs stored in a DuckDB database", []string{
		"thorbench runs --db <path>",
	}, runRuns),
}
