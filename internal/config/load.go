package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. A missing config yields the defaults.
// Environment overrides are applied last.
func Resolve(path string) (Config, string, error) {
	if path == "" {
		found, err := FindConfigPath("")
		if err != nil {
			if isNotFound(err) {
				cfg := Default()
				if err := ApplyEnv(&cfg, ""); err != nil {
					return Config{}, "", err
				}
				return cfg, "", nil
			}
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	if err := ApplyEnv(&cfg, RootFromConfigPath(path)); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
