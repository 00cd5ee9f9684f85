// Package palette extracts a dominant color from an uploaded chip or swatch
// photo so users can pin exact paint colors in their render requests.
package palette

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"archviz/internal/audit"
	"archviz/internal/domain"
)

const extractInstruction = `Analyze this color chip/swatch image. Extract the dominant color and return ONLY a JSON object in this exact format, no other text:
{"hex": "#XXXXXX", "r": 0, "g": 0, "b": 0, "name": "Color Name"}
The name should be a descriptive color name like "Warm Cream", "Slate Gray", "Sage Green", etc.`

// Describer matches the audit describer contract; the same genai client
// serves both.
type Describer interface {
	DescribeImage(ctx context.Context, model string, image domain.Image, instruction string) (string, error)
}

// Extractor pulls a SavedColor out of a chip image. Unlike the structure
// auditor it is NOT fail-open: a chip the model cannot read is a user-facing
// error, not something to silently default.
type Extractor struct {
	describer Describer
	model     string
}

// NewExtractor wires the extractor to a describer and vision model.
func NewExtractor(describer Describer, model string) *Extractor {
	if model == "" {
		model = "gemini-2.5-flash-image"
	}
	return &Extractor{describer: describer, model: model}
}

type chipPayload struct {
	Hex  string `json:"hex"`
	R    int    `json:"r"`
	G    int    `json:"g"`
	B    int    `json:"b"`
	Name string `json:"name"`
}

// Extract returns the dominant color of the chip image.
func (e *Extractor) Extract(ctx context.Context, chip domain.Image) (domain.SavedColor, error) {
	text, err := e.describer.DescribeImage(ctx, e.model, chip, extractInstruction)
	if err != nil {
		return domain.SavedColor{}, domain.ClassifyProviderError(err)
	}

	fragment := audit.ExtractJSONObject(text)
	if fragment == "" {
		return domain.SavedColor{}, fmt.Errorf("could not extract color from chip")
	}

	var payload chipPayload
	if err := json.Unmarshal([]byte(fragment), &payload); err != nil {
		return domain.SavedColor{}, fmt.Errorf("parse color payload: %w", err)
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		name = "Custom Color"
	}
	return domain.SavedColor{
		Name: name,
		Hex:  payload.Hex,
		RGB:  domain.RGB{R: payload.R, G: payload.G, B: payload.B},
	}, nil
}
