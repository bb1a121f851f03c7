package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"thorbench/internal/accuracy"
	"thorbench/internal/benchmark"
	"thorbench/internal/config"
	"thorbench/internal/logging"
)

// commonFlags are shared by every command.
type commonFlags struct {
	configPath *string
	verbose    *bool
	noColor    *bool
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "", "Path to config file (default: search for .thorbench/config.yml)"),
		verbose:    fs.Bool("verbose", false, "Verbose logging"),
		noColor:    fs.Bool("no-color", false, "Disable ANSI colors"),
	}
}

// setup loads the config and builds the stderr logger.
func (c commonFlags) setup(stderr io.Writer) (config.Config, *slog.Logger, error) {
	cfg, _, err := config.Resolve(strings.TrimSpace(*c.configPath))
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	if *c.verbose {
		level = slog.LevelDebug
	}
	return cfg, logging.New(stderr, level, *c.noColor), nil
}

// selectionFlags pick the benchmark or profile used for grouping.
type selectionFlags struct {
	benchmark *string
	profile   *string
}

func addSelectionFlags(fs *flag.FlagSet) selectionFlags {
	return selectionFlags{
		benchmark: fs.String("benchmark", "", "Benchmark name (counting_400, perspective_411)"),
		profile:   fs.String("profile", "", "Grouping profile (full, counting, perspective)"),
	}
}

// explicit reports whether the user chose a benchmark or profile.
func (s selectionFlags) explicit() bool {
	return strings.TrimSpace(*s.benchmark) != "" || strings.TrimSpace(*s.profile) != ""
}

// selection is the resolved grouping profile and optional benchmark.
type selection struct {
	profile   accuracy.Profile
	benchmark *benchmark.Benchmark
}

func (s selectionFlags) resolve() (selection, error) {
	benchmarkName := strings.TrimSpace(*s.benchmark)
	profileName := strings.TrimSpace(*s.profile)
	if benchmarkName != "" && profileName != "" {
		return selection{}, fmt.Errorf("use either --benchmark or --profile, not both")
	}
	if benchmarkName != "" {
		b, err := benchmark.Lookup(benchmarkName)
		if err != nil {
			return selection{}, err
		}
		return selection{profile: b.Profile, benchmark: &b}, nil
	}
	profile, err := accuracy.LookupProfile(profileName)
	if err != nil {
		return selection{}, err
	}
	return selection{profile: profile}, nil
}

func (s selection) title() string {
	if s.benchmark != nil {
		return s.benchmark.Title
	}
	return ""
}

func (s selection) benchmarkName() string {
	if s.benchmark != nil {
		return s.benchmark.Name
	}
	return ""
}

// parseArgs parses flags that may appear before or after positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positionals []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positionals, nil
		}
		positionals = append(positionals, args[0])
		args = args[1:]
	}
}
