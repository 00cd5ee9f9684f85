// Package handlers exposes the render pipeline over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"archviz/internal/adapter/repo"
	"archviz/internal/domain"
	"archviz/internal/infra"
	"archviz/internal/pipeline"
	"archviz/internal/storage"
)

// Runner is the pipeline entry point as seen by HTTP handlers.
type Runner interface {
	Run(ctx context.Context, req domain.GenerationRequest) (pipeline.Result, error)
}

// ColorExtractor pulls a dominant color out of a chip image.
type ColorExtractor interface {
	Extract(ctx context.Context, chip domain.Image) (domain.SavedColor, error)
}

// App carries the handler dependencies. RenderLog and Store may be nil; the
// affected endpoints then answer 503 instead of failing at startup.
type App struct {
	Pipeline  Runner
	Colors    ColorExtractor
	Store     *storage.RenderStore
	RenderLog *repo.RenderLogRepo
	Logger    *infra.Logger
}

// NewApp builds the handler container.
func NewApp(p Runner, colors ColorExtractor, store *storage.RenderStore, renderLog *repo.RenderLogRepo, logger *infra.Logger) *App {
	return &App{Pipeline: p, Colors: colors, Store: store, RenderLog: renderLog, Logger: logger}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}
