package reportserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"thorbench/internal/report"
)

// Config captures the settings for serving an accuracy report.
type Config struct {
	Addr     string
	Document report.Document
	// DBPath optionally exposes the DuckDB file the report was built from.
	DBPath string
	Logger *slog.Logger
}

// Serve starts an HTTP server that hosts the report until ctx is canceled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, listener, cfg)
}

// ServeListener serves on an existing listener until ctx is canceled.
func ServeListener(ctx context.Context, listener net.Listener, cfg Config) error {
	handler, err := NewHandler(cfg)
	if err != nil {
		_ = listener.Close()
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	logger.Info("serving report", "addr", listener.Addr().String(), "run", cfg.Document.RunID)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		logger.Info("report server stopped")
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
