package duckdb

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"thorbench/internal/accuracy"
)

// FingerprintItems returns a SHA-256 hex digest of the items in order.
// Identical item files ingested twice share a digest.
func FingerprintItems(items []accuracy.ScoredItem) (string, error) {
	hash := sha256.New()
	encoder := json.NewEncoder(hash)
	for _, item := range items {
		if err := encoder.Encode(item); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
