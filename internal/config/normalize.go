package config

import "strings"

// Default values applied by Normalize.
const (
	DefaultDecimals = 2
	DefaultFormat   = "text"
	DefaultLogLevel = "info"
	MaxDecimals     = 6
)

// Normalize trims fields and fills defaults.
func Normalize(cfg *Config) {
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Decimals == nil {
		decimals := DefaultDecimals
		cfg.Decimals = &decimals
	}
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	for i := range cfg.Benchmarks {
		cfg.Benchmarks[i].Name = strings.TrimSpace(cfg.Benchmarks[i].Name)
	}
}
