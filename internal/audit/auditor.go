package audit

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rs/zerolog"

	"archviz/internal/domain"
	"archviz/internal/infra"
)

// Instruction is the fixed extraction prompt. The schema in the prompt must
// stay in lockstep with domain.StructuralInventory.
const Instruction = `Analyze this image and return ONLY a JSON object with this exact schema. No other text, no code fences.
{
  "windows": { "count": 0, "byWall": {"left":0,"right":0,"back":0,"front":0}, "notes":"" },
  "doors": { "count": 0, "positions": [] },
  "skylights": { "count": 0 },
  "sink": { "present": false, "count": 0, "position": "" },
  "faucets": { "count": 0 },
  "washerDryer": { "present": false, "position": "" },
  "range": { "present": false },
  "island": { "present": false },
  "fireplace": { "present": false },
  "builtInBench": { "present": false },
  "cameraAngle": "straight"
}
Fill in actual values from the image. Return ONLY valid JSON.`

// Describer is the single upstream capability the auditor needs: one image
// plus one instruction in, free-form text out.
type Describer interface {
	DescribeImage(ctx context.Context, model string, image domain.Image, instruction string) (string, error)
}

// Options configures the structure auditor.
type Options struct {
	Model  string
	Logger *infra.Logger
}

// Auditor extracts a StructuralInventory from a photo via a vision model.
//
// It is fail-open by contract: any network failure, model refusal, or
// unparseable payload yields the all-default inventory and a log line, never
// an error. Audit infrastructure trouble must not block generation, it only
// degrades the compliance check to "assume match".
type Auditor struct {
	describer Describer
	model     string
	logger    *infra.Logger
}

// NewAuditor wires an auditor to a describer and model identifier.
func NewAuditor(describer Describer, opts Options) *Auditor {
	model := opts.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Auditor{describer: describer, model: model, logger: logger}
}

// Audit returns the structural inventory perceived in the image. The second
// return value reports whether extraction actually succeeded; a false means
// the inventory is the all-default substitute and the compliance gate should
// treat comparisons against it as a match.
func (a *Auditor) Audit(ctx context.Context, image domain.Image) (domain.StructuralInventory, bool) {
	var inv domain.StructuralInventory

	text, err := a.describer.DescribeImage(ctx, a.model, image, Instruction)
	if err != nil {
		a.logger.Warn().Err(err).Str("model", a.model).Msg("audit: describe call failed; using default inventory")
		return inv, false
	}

	fragment := ExtractJSONObject(text)
	if fragment == "" {
		a.logger.Warn().Str("model", a.model).Msg("audit: no JSON object in model output; using default inventory")
		return inv, false
	}

	if err := json.Unmarshal([]byte(fragment), &inv); err != nil {
		a.logger.Warn().Err(err).Str("model", a.model).Msg("audit: unparseable inventory JSON; using default inventory")
		return domain.StructuralInventory{}, false
	}

	a.logger.Debug().
		Str("model", a.model).
		Int("windows", inv.Windows.Count).
		Int("doors", inv.Doors.Count).
		Int("sinks", inv.Sink.Count).
		Msg("audit: extracted structural inventory")
	return inv, true
}
