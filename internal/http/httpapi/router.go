// Package httpapi assembles the chi router.
package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"archviz/internal/http/handlers"
	"archviz/internal/infra"
	"archviz/internal/middleware"
)

// NewRouter wires the middleware stack and routes.
func NewRouter(app *handlers.App, logger infra.Logger, allowedOrigins []string) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(logger))
	if len(allowedOrigins) > 0 {
		r.Use(middleware.CORS(allowedOrigins))
	}

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/styles", app.StylesList)

	r.Route("/v1/renders", func(r chi.Router) {
		r.Post("/", app.RenderCreate)
		r.Get("/{requestID}/archive", app.RenderArchive)
	})

	r.Post("/v1/colors/extract", app.ColorExtract)
	r.Get("/v1/metrics/compliance-24h", app.ComplianceStats)

	return r
}
