package reportserver

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"thorbench/internal/report"
)

// NewHandler builds the HTTP handler serving the report in each format.
func NewHandler(cfg Config) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.Handle("/{$}", getOnly(templ.Handler(report.Page(cfg.Document))))
	mux.Handle("/report.json", getOnly(serveJSON(cfg.Document)))
	mux.Handle("/report.txt", getOnly(serveText(cfg.Document)))
	if cfg.DBPath != "" {
		mux.Handle("/data/db.duckdb", getOnly(serveDatabase(cfg.DBPath)))
	}
	return mux, nil
}

// getOnly rejects every method except GET and HEAD.
func getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func serveJSON(doc report.Document) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var buf bytes.Buffer
		if err := report.WriteJSON(&buf, doc); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buf.Bytes())
	})
}

func serveText(doc report.Document) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var buf bytes.Buffer
		if err := report.WriteText(&buf, doc); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})
}

// serveDatabase serves the DuckDB file from disk.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
