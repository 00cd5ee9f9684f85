// Command render runs one structure-preserving generation from the terminal:
// read a photo, run the full pipeline against real credentials, write the
// delivered image next to the input.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"archviz/internal/audit"
	"archviz/internal/domain"
	"archviz/internal/infra"
	"archviz/internal/pipeline"
	"archviz/internal/providers/genai"
	"archviz/internal/vision"
)

func main() {
	_ = godotenv.Load()

	var (
		input       = flag.String("in", "", "path to the source photo (required)")
		output      = flag.String("out", "", "output path (default: <in>.render.png)")
		styleID     = flag.String("style", "modern", "style id from the catalog")
		roomType    = flag.String("room", "", "room type for interior renders, e.g. Kitchen")
		instruction = flag.String("instruction", "", "free-text custom instruction")
		quality     = flag.String("quality", "standard", "quality tier: standard or pro")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: render -in photo.jpg [-style modern] [-room Kitchen]")
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		fatal(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	style, ok := domain.StyleByID(*styleID)
	if !ok {
		fatal(fmt.Errorf("unknown style id %q", *styleID))
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fatal(err)
	}

	client := genai.NewClient(genai.Options{
		Keys:    genai.NewKeyRing(cfg.GeminiAPIKeys),
		BaseURL: cfg.GeminiBaseURL,
		Logger:  &logger,
	})
	auditor := audit.NewAuditor(client, audit.Options{Model: cfg.AuditModel, Logger: &logger})
	generator := vision.NewGenerator(client, vision.Options{
		Model:        cfg.RenderModel,
		ProModel:     cfg.RenderModelPro,
		ReferenceCap: cfg.ReferenceCap,
	})
	controller := pipeline.NewController(auditor, generator, nil, &logger)

	req := domain.GenerationRequest{
		RequestID:         uuid.NewString(),
		Source:            domain.Image{MIME: mimeFromPath(*input), Data: data},
		Style:             style,
		Mode:              style.Mode,
		RoomType:          domain.RoomType(*roomType),
		CustomInstruction: *instruction,
		Quality:           domain.QualityTier(*quality),
	}

	result, err := controller.Run(context.Background(), req)
	if err != nil {
		fmt.Fprintln(os.Stderr, domain.UserMessage(err))
		os.Exit(1)
	}

	dest := *output
	if dest == "" {
		dest = strings.TrimSuffix(*input, filepath.Ext(*input)) + ".render.png"
	}
	if err := os.WriteFile(dest, result.Image.Data, 0o644); err != nil {
		fatal(err)
	}

	logger.Info().
		Str("output", dest).
		Int("attempts", result.Attempts).
		Bool("compliant", result.Compliant).
		Msg("render complete")
}

func mimeFromPath(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "render:", err)
	os.Exit(1)
}
