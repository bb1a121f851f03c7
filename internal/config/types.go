package config

// Config is the optional .thorbench/config.yml file.
type Config struct {
	Version    int               `yaml:"version"`
	Decimals   *int              `yaml:"decimals"`
	Format     string            `yaml:"format"`
	Shards     int               `yaml:"shards"`
	DBPath     string            `yaml:"db_path"`
	LogLevel   string            `yaml:"log_level"`
	Benchmarks []BenchmarkConfig `yaml:"benchmarks"`
}

// BenchmarkConfig carries per-benchmark prompt settings.
type BenchmarkConfig struct {
	Name       string `yaml:"name"`
	PostPrompt string `yaml:"post_prompt"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// PostPrompt returns the configured post prompt for a benchmark.
func (cfg Config) PostPrompt(benchmark string) string {
	for _, b := range cfg.Benchmarks {
		if b.Name == benchmark {
			return b.PostPrompt
		}
	}
	return ""
}

// DecimalPlaces returns the number of decimals used for display.
func (cfg Config) DecimalPlaces() int {
	if cfg.Decimals == nil {
		return DefaultDecimals
	}
	return *cfg.Decimals
}
