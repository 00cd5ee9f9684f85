package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"archviz/internal/adapter/repo"
	"archviz/internal/audit"
	"archviz/internal/http/handlers"
	"archviz/internal/http/httpapi"
	"archviz/internal/infra"
	"archviz/internal/palette"
	"archviz/internal/pipeline"
	"archviz/internal/providers/genai"
	"archviz/internal/storage"
	"archviz/internal/vision"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Render-log telemetry is optional; without DATABASE_URL the pipeline
	// runs with recording disabled.
	var renderLog *repo.RenderLogRepo
	var recorder pipeline.Recorder
	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		renderLog = repo.NewRenderLogRepo(dbpool)
		recorder = renderLog
	} else {
		logger.Info().Msg("DATABASE_URL not set; render-log telemetry disabled")
	}

	store, err := storage.NewRenderStore(cfg.StorageRoot)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize render storage")
	}

	// The key ring is the single owner of credential rotation state.
	keys := genai.NewKeyRing(cfg.GeminiAPIKeys)
	if keys.Size() == 0 {
		logger.Warn().Msg("no Gemini API keys configured; generation calls will fail")
	}
	client := genai.NewClient(genai.Options{
		Keys:    keys,
		BaseURL: cfg.GeminiBaseURL,
		Logger:  &logger,
	})

	auditor := audit.NewAuditor(client, audit.Options{Model: cfg.AuditModel, Logger: &logger})
	generator := vision.NewGenerator(client, vision.Options{
		Model:        cfg.RenderModel,
		ProModel:     cfg.RenderModelPro,
		ReferenceCap: cfg.ReferenceCap,
	})
	controller := pipeline.NewController(auditor, generator, recorder, &logger)
	colors := palette.NewExtractor(client, cfg.RenderModel)

	app := handlers.NewApp(controller, colors, store, renderLog, &logger)
	router := httpapi.NewRouter(app, logger, splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")))
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
