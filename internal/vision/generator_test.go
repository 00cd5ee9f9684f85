package vision

import (
	"context"
	"testing"

	"archviz/internal/domain"
)

type recordingUpstream struct {
	model  string
	images []domain.Image
}

func (r *recordingUpstream) GenerateImage(_ context.Context, model string, images []domain.Image, _ string) (domain.Image, error) {
	r.model = model
	r.images = images
	return domain.Image{MIME: "image/png", Data: []byte("out")}, nil
}

func TestGenerateModelPerTier(t *testing.T) {
	up := &recordingUpstream{}
	g := NewGenerator(up, Options{Model: "std-model", ProModel: "pro-model", ReferenceCap: 5})
	source := domain.Image{MIME: "image/jpeg", Data: []byte("src")}

	if _, err := g.Generate(context.Background(), source, nil, "p", domain.QualityStandard); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if up.model != "std-model" {
		t.Fatalf("standard tier used model %q", up.model)
	}

	if _, err := g.Generate(context.Background(), source, nil, "p", domain.QualityPro); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if up.model != "pro-model" {
		t.Fatalf("pro tier used model %q", up.model)
	}
}

func TestGenerateProFallsBackToStandardModel(t *testing.T) {
	up := &recordingUpstream{}
	g := NewGenerator(up, Options{Model: "only-model"})
	if _, err := g.Generate(context.Background(), domain.Image{Data: []byte("s")}, nil, "p", domain.QualityPro); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if up.model != "only-model" {
		t.Fatalf("pro tier without pro model used %q", up.model)
	}
}

func TestGenerateCapsReferences(t *testing.T) {
	up := &recordingUpstream{}
	g := NewGenerator(up, Options{Model: "m", ReferenceCap: 2})
	source := domain.Image{Data: []byte("src")}
	refs := []domain.Image{
		{Data: []byte("r1")},
		{},
		{Data: []byte("r2")},
		{Data: []byte("r3")},
	}

	if _, err := g.Generate(context.Background(), source, refs, "p", domain.QualityStandard); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(up.images) != 3 {
		t.Fatalf("forwarded %d images, want source plus 2 references", len(up.images))
	}
	if string(up.images[0].Data) != "src" {
		t.Fatalf("source is not the first image")
	}
	if string(up.images[1].Data) != "r1" || string(up.images[2].Data) != "r2" {
		t.Fatalf("references = %q %q, want r1 r2 with empty skipped", up.images[1].Data, up.images[2].Data)
	}
}

func TestGenerateZeroCapDropsReferences(t *testing.T) {
	up := &recordingUpstream{}
	g := NewGenerator(up, Options{Model: "m"})
	refs := []domain.Image{{Data: []byte("r1")}}

	if _, err := g.Generate(context.Background(), domain.Image{Data: []byte("s")}, refs, "p", domain.QualityStandard); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(up.images) != 1 {
		t.Fatalf("forwarded %d images with zero cap, want source only", len(up.images))
	}
}
