package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config values.
const (
	EnvDBPath   = "THORBENCH_DB"
	EnvLogLevel = "THORBENCH_LOG_LEVEL"
	EnvFormat   = "THORBENCH_FORMAT"
)

// lookupEnv is a test seam for environment access.
var lookupEnv = os.LookupEnv

// ApplyEnv applies overrides from the process environment, falling back to a
// .env file in root when present. Process variables win over the file.
func ApplyEnv(cfg *Config, root string) error {
	fileValues := map[string]string{}
	envPath := filepath.Join(root, EnvFileName)
	if root == "" {
		envPath = EnvFileName
	}
	if _, err := os.Stat(envPath); err == nil {
		values, err := godotenv.Read(envPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", envPath, err)
		}
		fileValues = values
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", envPath, err)
	}

	get := func(key string) (string, bool) {
		if value, ok := lookupEnv(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	}
	if value, ok := get(EnvDBPath); ok {
		cfg.DBPath = strings.TrimSpace(value)
	}
	if value, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = value
	}
	if value, ok := get(EnvFormat); ok {
		cfg.Format = value
	}
	Normalize(cfg)
	return Validate(cfg)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
