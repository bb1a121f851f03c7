package cli

import (
	"strings"
	"testing"
)

// TestValidateOK verifies a clean file passes.
func TestValidateOK(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.json", exampleItems)

	code, out, errOut := runCLI(t, "validate", "--config", cfgPath, items)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Items OK (3 items, profile full)") {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestValidateReportsEveryIssue lists all malformed items, not just the first.
func TestValidateReportsEveryIssue(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.yml", `- is_correct: true
  question_type: A
  difficulty: easy
  movement_type: rotate
  frame_count: 3
- is_correct: false
  question_type: A
  movement_type: rotate
  frame_count: 3
- is_correct: true
  question_type: B
  difficulty: easy
  movement_type: rotate
`)

	code, _, errOut := runCLI(t, "validate", "--config", cfgPath, "--benchmark", "counting", items)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{
		"2 invalid items",
		"- item 1: difficulty: is required",
		"- item 2: frame_count: is required",
	} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("expected %q in stderr, got %q", want, errOut)
		}
	}
}

// TestValidateMissingVerdict reports items without is_correct.
func TestValidateMissingVerdict(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.jsonl", `{"question_type": "A", "split": "s"}
`)

	code, _, errOut := runCLI(t, "validate", "--config", cfgPath, "--profile", "perspective", items)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "item 0: is_correct") {
		t.Fatalf("expected is_correct error, got %q", errOut)
	}
}

// TestValidateMissingArgument maps to a usage error.
func TestValidateMissingArgument(t *testing.T) {
	code, _, errOut := runCLI(t, "validate")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "Missing <items>") {
		t.Fatalf("expected missing items error, got %q", errOut)
	}
}
