package config

import (
	"fmt"
	"slices"
	"strings"

	"thorbench/internal/benchmark"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Formats lists the supported report formats.
var Formats = []string{"text", "json", "html", "table"}

// LogLevels lists the supported log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues issueCollector

	if cfg.Version == 0 {
		issues.add("version", "is required")
	} else if cfg.Version != 1 {
		issues.addf("version", "unsupported version %d", cfg.Version)
	}
	if places := cfg.DecimalPlaces(); places < 0 || places > MaxDecimals {
		issues.addf("decimals", "must be between 0 and %d", MaxDecimals)
	}
	if cfg.Shards < 0 {
		issues.add("shards", "must be >= 0")
	}
	if !oneOf(cfg.Format, Formats) {
		issues.addf("format", "unsupported format %q (expected %s)", cfg.Format, strings.Join(Formats, ", "))
	}
	if !oneOf(cfg.LogLevel, LogLevels) {
		issues.addf("log_level", "unsupported level %q", cfg.LogLevel)
	}

	seen := map[string]struct{}{}
	for i, b := range cfg.Benchmarks {
		field := fmt.Sprintf("benchmarks[%d].name", i)
		if b.Name == "" {
			issues.add(field, "is required")
			continue
		}
		resolved, err := benchmark.Lookup(b.Name)
		if err != nil {
			issues.add(field, err.Error())
			continue
		}
		if _, exists := seen[resolved.Name]; exists {
			issues.addf(field, "duplicate benchmark %q", resolved.Name)
		}
		seen[resolved.Name] = struct{}{}
		cfg.Benchmarks[i].Name = resolved.Name
	}

	return issues.result()
}

func oneOf(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}
