package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"godrift/internal"
	"godrift/internal/report"
)

// App is the read-only report browser: it lists persisted drift artifacts
// and renders each one as an HTML page. It never writes artifacts and never
// runs checks.
type App struct {
	router *chi.Mux
	writer *report.Writer
	logger *internal.Logger
}

// Config holds browser configuration
type Config struct {
	Port string
}

// NewApp creates the report browser over a report writer's directory.
func NewApp(writer *report.Writer, logger *internal.Logger) *App {
	a := &App{
		router: chi.NewRouter(),
		writer: writer,
		logger: logger,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/", a.handleIndex)
	a.router.Get("/reports/{name}", a.handleReport)

	return a
}

// Run starts the browser on the configured port.
func (a *App) Run(config Config) error {
	a.logger.Info("report browser listening on :%s", config.Port)
	return http.ListenAndServe(":"+config.Port, a.router)
}

// Handler exposes the router for httptest.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := a.writer.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	md := "# Drift reports\n\n"
	if len(names) == 0 {
		md += "No reports yet.\n"
	}
	for _, name := range names {
		md += fmt.Sprintf("- [%s](/reports/%s)\n", name, name)
	}

	a.renderMarkdown(w, md)
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	features, err := a.writer.Load(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	a.renderMarkdown(w, Narrative(name, features))
}

func (a *App) renderMarkdown(w http.ResponseWriter, md string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<!DOCTYPE html><html><body>"))
	w.Write(markdown.ToHTML([]byte(md), nil, nil))
	w.Write([]byte("</body></html>"))
}
