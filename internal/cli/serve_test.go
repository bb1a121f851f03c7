package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"thorbench/internal/reportserver"
)

// TestServeUsesSeam verifies the server receives the built report.
func TestServeUsesSeam(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.json", exampleItems)

	originalServe := serveReport
	originalContext := serveContext
	t.Cleanup(func() {
		serveReport = originalServe
		serveContext = originalContext
	})
	serveContext = func() (context.Context, context.CancelFunc) {
		return context.WithCancel(context.Background())
	}
	var got reportserver.Config
	serveReport = func(ctx context.Context, cfg reportserver.Config) error {
		got = cfg
		return nil
	}

	code, out, errOut := runCLI(t, "serve", "--config", cfgPath, "--addr", "127.0.0.1:9999", "--benchmark", "counting", items)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if got.Addr != "127.0.0.1:9999" {
		t.Fatalf("expected addr to be passed, got %q", got.Addr)
	}
	if got.Document.Benchmark != "counting_400" || got.Document.Overall.Total != 3 {
		t.Fatalf("unexpected document: %+v", got.Document)
	}
	if got.Logger == nil {
		t.Fatalf("expected logger")
	}
	if !strings.Contains(out, "Serving report at http://127.0.0.1:9999") {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestServeReportsServerError maps server failures to exit 1.
func TestServeReportsServerError(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	items := writeTestFile(t, "items.json", exampleItems)

	originalServe := serveReport
	t.Cleanup(func() { serveReport = originalServe })
	serveReport = func(context.Context, reportserver.Config) error {
		return errors.New("address in use")
	}

	code, _, errOut := runCLI(t, "serve", "--config", cfgPath, items)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Server error: address in use") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}
