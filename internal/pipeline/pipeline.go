// Package pipeline orchestrates one structure-preserving generation: audit
// the source, compose, generate, audit the candidate, gate, and run at most
// one corrective regeneration.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"archviz/internal/compliance"
	"archviz/internal/domain"
	"archviz/internal/infra"
	"archviz/internal/prompt"
)

// Auditor extracts a structural inventory from an image. The second return
// reports whether extraction succeeded; false means the inventory is the
// all-default substitute and comparisons against it must fail open.
type Auditor interface {
	Audit(ctx context.Context, image domain.Image) (domain.StructuralInventory, bool)
}

// Generator produces exactly one render from a source photo, references, and
// an instruction.
type Generator interface {
	Generate(ctx context.Context, source domain.Image, references []domain.Image, instruction string, tier domain.QualityTier) (domain.Image, error)
}

// Recorder receives one telemetry record per completed run. Implementations
// must tolerate being called from concurrent pipelines.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// Record is the telemetry row for one pipeline run.
type Record struct {
	RequestID       string
	StyleID         string
	Mode            domain.RenderMode
	RoomType        domain.RoomType
	Attempts        int
	SourceAudited   bool
	FirstPassMatch  bool
	FinalCompliant  bool
	MismatchDeltas  []compliance.FieldDelta
	ResidualDeltas  []compliance.FieldDelta
	Duration        time.Duration
	SourceInventory domain.StructuralInventory
}

// Result is what a run hands back to the embedding caller. Compliant reports
// the outcome of the last audit of the delivered image; it is informational
// only and never turns a delivered image into an error.
type Result struct {
	Image     domain.Image
	Attempts  int
	Retried   bool
	Compliant bool
	Verdict   compliance.Verdict
}

// Controller is the pipeline entry point. All state is request-scoped; the
// controller itself is safe for concurrent use.
type Controller struct {
	auditor   Auditor
	generator Generator
	recorder  Recorder
	logger    *infra.Logger
}

// NewController wires the pipeline. recorder may be nil to disable telemetry.
func NewController(auditor Auditor, generator Generator, recorder Recorder, logger *infra.Logger) *Controller {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Controller{auditor: auditor, generator: generator, recorder: recorder, logger: logger}
}

// Run executes the generate/audit/compare loop with an at-most-one-retry cap.
//
// The steps are strictly sequential; every network call blocks the run. A
// compliance mismatch on the first candidate triggers exactly one corrective
// regeneration whose output is returned unconditionally. Generation failures
// (including an empty response on the first attempt) abort the run; audit
// failures never do.
func (c *Controller) Run(ctx context.Context, req domain.GenerationRequest) (Result, error) {
	req.Normalize()
	start := time.Now()
	log := c.logger.With().Str("request_id", req.RequestID).Str("style", req.Style.ID).Logger()

	sourceInv, sourceOK := c.auditor.Audit(ctx, req.Source)

	instruction := prompt.Compose(req, sourceInv, "")
	candidate, err := c.generator.Generate(ctx, req.Source, req.ReferenceImages, instruction, req.Quality)
	if err != nil {
		return Result{}, domain.ClassifyProviderError(err)
	}

	candidateInv, candidateOK := c.auditor.Audit(ctx, candidate)
	verdict := compliance.Compare(inventoryPtr(sourceInv, sourceOK), inventoryPtr(candidateInv, candidateOK))

	if verdict.Match {
		log.Info().
			Int("attempts", 1).
			Bool("source_audited", sourceOK).
			Dur("elapsed", time.Since(start)).
			Msg("pipeline: candidate accepted on first pass")
		res := Result{Image: candidate, Attempts: 1, Compliant: true, Verdict: verdict}
		c.record(ctx, req, res, sourceInv, sourceOK, verdict, nil, start)
		return res, nil
	}

	log.Warn().
		Interface("deltas", verdict.Deltas).
		Msg("pipeline: structure mismatch, regenerating once with fix note")

	instruction = prompt.Compose(req, sourceInv, verdict.FixNote())
	retryCandidate, err := c.generator.Generate(ctx, req.Source, req.ReferenceImages, instruction, req.Quality)
	if err != nil {
		return Result{}, domain.ClassifyProviderError(err)
	}

	// The corrective pass is returned as-is: bounded cost and latency win
	// over guaranteed compliance. The final audit below only measures the
	// residual non-compliance rate, it never triggers another retry.
	retryInv, retryOK := c.auditor.Audit(ctx, retryCandidate)
	residual := compliance.Compare(inventoryPtr(sourceInv, sourceOK), inventoryPtr(retryInv, retryOK))
	if !residual.Match {
		log.Warn().
			Interface("deltas", residual.Deltas).
			Msg("pipeline: retry output still non-compliant, delivering anyway")
	}

	res := Result{Image: retryCandidate, Attempts: 2, Retried: true, Compliant: residual.Match, Verdict: verdict}
	c.record(ctx, req, res, sourceInv, sourceOK, verdict, residual.Deltas, start)
	return res, nil
}

func (c *Controller) record(ctx context.Context, req domain.GenerationRequest, res Result, sourceInv domain.StructuralInventory, sourceOK bool, verdict compliance.Verdict, residual []compliance.FieldDelta, start time.Time) {
	if c.recorder == nil {
		return
	}
	rec := Record{
		RequestID:       req.RequestID,
		StyleID:         req.Style.ID,
		Mode:            req.Mode,
		RoomType:        req.RoomType,
		Attempts:        res.Attempts,
		SourceAudited:   sourceOK,
		FirstPassMatch:  verdict.Match,
		FinalCompliant:  res.Compliant,
		MismatchDeltas:  verdict.Deltas,
		ResidualDeltas:  residual,
		Duration:        time.Since(start),
		SourceInventory: sourceInv,
	}
	if err := c.recorder.Record(ctx, rec); err != nil {
		c.logger.Warn().Err(err).Str("request_id", req.RequestID).Msg("pipeline: render log write failed")
	}
}

func inventoryPtr(inv domain.StructuralInventory, ok bool) *domain.StructuralInventory {
	if !ok {
		return nil
	}
	return &inv
}
