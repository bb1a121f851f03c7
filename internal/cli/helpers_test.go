package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"thorbench/internal/config"
)

const exampleItems = `[
  {"id": "q0", "is_correct": true, "question_type": "A", "difficulty": "easy", "movement_type": "rotate", "frame_count": 3},
  {"id": "q1", "is_correct": false, "question_type": "A", "difficulty": "hard", "movement_type": "forward", "frame_count": 5},
  {"id": "q2", "is_correct": true, "question_type": "B", "difficulty": "easy", "movement_type": "rotate", "frame_count": 3}
]`

// writeTestConfig writes a minimal config and clears environment overrides.
func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	for _, key := range []string{config.EnvDBPath, config.EnvLogLevel, config.EnvFormat} {
		t.Setenv(key, "")
	}
	path := config.ConfigPath(t.TempDir())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if body == "" {
		body = "version: 1\n"
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeTestFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}
