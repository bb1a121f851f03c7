package cli

import (
	"io"
	"strings"
	"testing"

	"thorbench/internal/report"
	"thorbench/internal/ui/browse"
)

// TestResolveUIMode verifies ui mode decision logic.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		isTTY      bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, expectLive: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, expectLive: false},
		{name: "empty is auto", mode: "", isTTY: true, expectLive: true},
		{name: "plain", mode: "plain", isTTY: true, expectLive: false},
		{name: "live tty", mode: "live", isTTY: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", isTTY: false, expectLive: false, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			decision, err := resolveUIMode(tc.mode, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.interactive != tc.expectLive {
				t.Fatalf("expected interactive=%v, got %v", tc.expectLive, decision.interactive)
			}
			if tc.wantWarn && decision.warning == "" {
				t.Fatalf("expected warning")
			}
			if !tc.wantWarn && decision.warning != "" {
				t.Fatalf("did not expect warning")
			}
		})
	}
}

// TestBrowseFallsBackToTables prints static tables off a terminal.
func TestBrowseFallsBackToTables(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.json", exampleItems)

	originalBrowser := runBrowser
	t.Cleanup(func() { runBrowser = originalBrowser })
	runBrowser = func(report.Document, io.Writer, browse.Options) error {
		t.Fatalf("browser should not run without a terminal")
		return nil
	}

	code, out, errOut := runCLI(t, "browse", "--config", cfgPath, "--ui", "live", items)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(errOut, "not a TTY") {
		t.Fatalf("expected fallback warning, got %q", errOut)
	}
	for _, want := range []string{"Overall Accuracy: 66.67% (2/3)", "By Question Type", "By Number of Frames"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestBrowseRunsInteractiveBrowser hands the document to the browser on a terminal.
func TestBrowseRunsInteractiveBrowser(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.json", exampleItems)

	originalTerminal := isTerminal
	originalBrowser := runBrowser
	t.Cleanup(func() {
		isTerminal = originalTerminal
		runBrowser = originalBrowser
	})
	isTerminal = func(io.Writer) bool { return true }
	var got report.Document
	var gotOpts browse.Options
	runBrowser = func(doc report.Document, _ io.Writer, opts browse.Options) error {
		got = doc
		gotOpts = opts
		return nil
	}

	code, out, errOut := runCLI(t, "browse", "--config", cfgPath, "--no-color", items)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if out != "" {
		t.Fatalf("expected no static output, got %q", out)
	}
	if got.Overall.Total != 3 {
		t.Fatalf("expected document with 3 items, got %+v", got.Overall)
	}
	if !gotOpts.NoColor {
		t.Fatalf("expected no-color option")
	}
}
