// Package vision wraps the render capability of the upstream model: source
// photo plus references plus instruction in, exactly one image out.
package vision

import (
	"context"

	"archviz/internal/domain"
)

// ImageGenerator is the upstream capability the generator needs. The genai
// client is the single production implementation; tests substitute stubs.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, model string, images []domain.Image, instruction string) (domain.Image, error)
}

// Options configures model selection and request shaping.
type Options struct {
	// Model services standard-quality requests.
	Model string
	// ProModel services the higher-fidelity tier. Empty falls back to Model.
	ProModel string
	// ReferenceCap bounds how many reference images ride along with the
	// source photo. Zero means no references are forwarded.
	ReferenceCap int
}

// Generator is stateless and side-effect-free beyond the upstream call. It
// performs no retries and no backoff; a failed call is the caller's problem.
type Generator struct {
	upstream ImageGenerator
	opts     Options
}

// NewGenerator builds a generator over the upstream image capability.
func NewGenerator(upstream ImageGenerator, opts Options) *Generator {
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash-image"
	}
	if opts.ProModel == "" {
		opts.ProModel = opts.Model
	}
	return &Generator{upstream: upstream, opts: opts}
}

// Generate runs one render call and returns the single output image. An
// upstream response without an image payload surfaces as
// domain.ErrEmptyGenerationResponse from the client, untouched here.
func (g *Generator) Generate(ctx context.Context, source domain.Image, references []domain.Image, instruction string, tier domain.QualityTier) (domain.Image, error) {
	images := make([]domain.Image, 0, 1+g.opts.ReferenceCap)
	images = append(images, source)
	for _, ref := range references {
		if len(images)-1 >= g.opts.ReferenceCap {
			break
		}
		if !ref.IsZero() {
			images = append(images, ref)
		}
	}

	model := g.opts.Model
	if tier == domain.QualityPro {
		model = g.opts.ProModel
	}

	return g.upstream.GenerateImage(ctx, model, images, instruction)
}
