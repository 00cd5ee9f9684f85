package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"archviz/internal/compliance"
	"archviz/internal/domain"
	"archviz/internal/infra"
	"archviz/internal/pipeline"
)

type stubRunner struct {
	result  pipeline.Result
	err     error
	lastReq domain.GenerationRequest
	calls   int
}

func (s *stubRunner) Run(_ context.Context, req domain.GenerationRequest) (pipeline.Result, error) {
	s.calls++
	s.lastReq = req
	return s.result, s.err
}

func discardLogger() *infra.Logger {
	l := infra.Logger(zerolog.New(io.Discard))
	return &l
}

func testApp(runner Runner) *App {
	return NewApp(runner, nil, nil, nil, discardLogger())
}

func renderBody(t *testing.T, overrides map[string]any) *bytes.Reader {
	t.Helper()
	body := map[string]any{
		"image":    base64.StdEncoding.EncodeToString([]byte("photo")),
		"style_id": "modern-farmhouse",
	}
	for k, v := range overrides {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(raw)
}

func TestRenderCreateSuccess(t *testing.T) {
	runner := &stubRunner{result: pipeline.Result{
		Image:     domain.Image{MIME: "image/png", Data: []byte("render")},
		Attempts:  2,
		Retried:   true,
		Compliant: true,
		Verdict:   compliance.Verdict{Deltas: []compliance.FieldDelta{{Field: "Windows", Expected: 3, Actual: 4}}},
	}}
	app := testApp(runner)

	req := httptest.NewRequest(http.MethodPost, "/v1/renders", renderBody(t, map[string]any{
		"room_type": "Kitchen",
		"quality":   "pro",
	}))
	rec := httptest.NewRecorder()
	app.RenderCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Image, "data:image/png;base64,") {
		t.Fatalf("image = %q, want data URL", resp.Image)
	}
	if resp.Attempts != 2 || !resp.Retried || !resp.Compliant {
		t.Fatalf("response = %+v, want retried compliant run", resp)
	}
	if len(resp.Deltas) != 1 || resp.Deltas[0].Field != "Windows" {
		t.Fatalf("deltas = %+v", resp.Deltas)
	}

	if runner.lastReq.Style.ID != "modern-farmhouse" {
		t.Fatalf("pipeline got style %q", runner.lastReq.Style.ID)
	}
	if runner.lastReq.Mode != domain.RenderModeExterior {
		t.Fatalf("mode = %q, want style default EXTERIOR", runner.lastReq.Mode)
	}
	if runner.lastReq.Quality != domain.QualityPro {
		t.Fatalf("quality = %q", runner.lastReq.Quality)
	}
	if string(runner.lastReq.Source.Data) != "photo" {
		t.Fatalf("source data = %q", runner.lastReq.Source.Data)
	}
}

func TestRenderCreateModeFromStyle(t *testing.T) {
	runner := &stubRunner{result: pipeline.Result{Image: domain.Image{Data: []byte("r")}}}
	app := testApp(runner)

	req := httptest.NewRequest(http.MethodPost, "/v1/renders", renderBody(t, map[string]any{
		"style_id": "int-modern",
	}))
	rec := httptest.NewRecorder()
	app.RenderCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if runner.lastReq.Mode != domain.RenderModeInterior {
		t.Fatalf("mode = %q, want interior from style", runner.lastReq.Mode)
	}
}

func TestRenderCreateBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body io.Reader
	}{
		{"malformed json", strings.NewReader("{nope")},
		{"unknown style", renderBody(t, map[string]any{"style_id": "brutalist-spaceship"})},
		{"invalid image", renderBody(t, map[string]any{"image": "!!not-base64!!"})},
		{"invalid reference", renderBody(t, map[string]any{"reference_images": []string{"!!"}})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &stubRunner{}
			app := testApp(runner)
			rec := httptest.NewRecorder()
			app.RenderCreate(rec, httptest.NewRequest(http.MethodPost, "/v1/renders", tc.body))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if runner.calls != 0 {
				t.Fatalf("pipeline was invoked for an invalid payload")
			}
		})
	}
}

func TestRenderCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"capacity", domain.ErrUpstreamCapacity, http.StatusServiceUnavailable, "Engine at maximum capacity. Please try again shortly."},
		{"missing credential", domain.ErrMissingCredential, http.StatusUnauthorized, "Please select a paid API key to continue."},
		{"stale credential", domain.ErrStaleCredential, http.StatusUnauthorized, "API Key reset required. Please re-authorize."},
		{"empty response", domain.ErrEmptyGenerationResponse, http.StatusBadGateway, "Generation Error: the engine returned no image. Please try again."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(&stubRunner{err: tc.err})
			rec := httptest.NewRecorder()
			app.RenderCreate(rec, httptest.NewRequest(http.MethodPost, "/v1/renders", renderBody(t, nil)))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body map[string]errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"].Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", body["error"].Message, tc.wantMsg)
			}
		})
	}
}
