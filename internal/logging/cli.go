package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// CLIHandler is a slog.Handler that writes "message: key=value" lines for humans.
type CLIHandler struct {
	mu      *sync.Mutex
	writer  io.Writer
	level   slog.Leveler
	noColor bool
	attrs   []string
	group   string
}

// NewCLIHandler builds a handler writing records at or above level.
func NewCLIHandler(w io.Writer, level slog.Leveler, noColor bool) *CLIHandler {
	return &CLIHandler{
		mu:      &sync.Mutex{},
		writer:  w,
		level:   level,
		noColor: noColor,
	}
}

// Enabled reports whether records at level are written.
func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes one record.
func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, h.formatAttr(attr))
		return true
	})
	msg := r.Message
	if len(parts) > 0 {
		msg += ": " + strings.Join(parts, " ")
	}
	msg = h.colorize(r.Level, msg)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

// WithAttrs returns a handler that always includes attrs.
func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, h.formatAttr(attr))
	}
	return &next
}

// WithGroup returns a handler that prefixes attribute keys with name.
func (h *CLIHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func (h *CLIHandler) formatAttr(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return fmt.Sprintf("%s=%v", key, attr.Value.Resolve())
}

func (h *CLIHandler) colorize(level slog.Level, msg string) string {
	if h.noColor {
		return msg
	}
	color := lipgloss.Color("244")
	switch {
	case level >= slog.LevelError:
		color = lipgloss.Color("196")
	case level >= slog.LevelWarn:
		color = lipgloss.Color("214")
	case level < slog.LevelInfo:
		color = lipgloss.Color("240")
	}
	return lipgloss.NewStyle().Foreground(color).Render(msg)
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// New builds a logger writing to w. Colors are used only on terminals.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(NewCLIHandler(w, level, noColor || !IsTerminal(w)))
}
