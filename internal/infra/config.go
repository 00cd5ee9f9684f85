package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	StorageRoot      string
	GeminiAPIKeys    []string
	GeminiBaseURL    string
	AuditModel       string
	RenderModel      string
	RenderModelPro   string
	ReferenceCap     int
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. DATABASE_URL is optional: without it the service
// runs with render-log telemetry disabled instead of refusing to start.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StorageRoot:      getEnv("STORAGE_ROOT", "./data/renders"),
		GeminiAPIKeys:    splitList(os.Getenv("GEMINI_API_KEYS")),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		AuditModel:       getEnv("AUDIT_MODEL", "gemini-2.0-flash"),
		RenderModel:      getEnv("RENDER_MODEL", "gemini-2.5-flash-image"),
		RenderModelPro:   getEnv("RENDER_MODEL_PRO", "gemini-3-pro-image-preview"),
		ReferenceCap:     getEnvInt("REFERENCE_IMAGE_CAP", 5),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 300)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	// Single-key deployments can keep using the singular variable name.
	if len(cfg.GeminiAPIKeys) == 0 {
		if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
			cfg.GeminiAPIKeys = []string{key}
		}
	}

	if cfg.ReferenceCap < 0 {
		return nil, fmt.Errorf("REFERENCE_IMAGE_CAP must not be negative")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
