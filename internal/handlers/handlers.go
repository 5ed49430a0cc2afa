package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/jredh-dev/bluegreen/internal/status"
	"github.com/jredh-dev/bluegreen/internal/web/templates"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	reporter *status.Reporter
	index    *template.Template
}

// New creates a new Handler with the landing page template parsed.
func New(reporter *status.Reporter) *Handler {
	return &Handler{
		reporter: reporter,
		index:    template.Must(template.ParseFS(templates.FS, "index.html")),
	}
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) error {
	jsonOK(w, http.StatusOK, h.reporter.Health())
	return nil
}

// Status handles GET /status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) error {
	s, err := h.reporter.Status()
	if err != nil {
		return err
	}
	jsonOK(w, http.StatusOK, s)
	return nil
}

type indexData struct {
	Environment string
	Class       string
	Version     string
	Hostname    string
	Timestamp   string
	Uptime      int64
}

// Index handles GET /, the human-facing landing page.
// The body class is the lower-cased environment; only "blue" and "green"
// have styles, anything else renders with the default look.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) error {
	host, err := h.reporter.Hostname()
	if err != nil {
		return err
	}
	cfg := h.reporter.Config()
	data := indexData{
		Environment: cfg.Environment,
		Class:       strings.ToLower(cfg.Environment),
		Version:     cfg.Version,
		Hostname:    host,
		Timestamp:   status.LocalTimestamp(h.reporter.Now()),
		Uptime:      int64(h.reporter.Uptime().Seconds()),
	}

	// Render into a buffer so a template failure can still become a 500.
	var buf bytes.Buffer
	if err := h.index.Execute(&buf, data); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}
