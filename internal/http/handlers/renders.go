package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"archviz/internal/compliance"
	"archviz/internal/domain"
	"archviz/internal/middleware"
	"archviz/pkg/zip"
)

type renderRequest struct {
	Image             string                   `json:"image"`
	ReferenceImages   []string                 `json:"reference_images,omitempty"`
	StyleID           string                   `json:"style_id"`
	RenderMode        string                   `json:"render_mode,omitempty"`
	RoomType          string                   `json:"room_type,omitempty"`
	CustomInstruction string                   `json:"custom_instruction,omitempty"`
	Materials         domain.MaterialOverrides `json:"materials,omitempty"`
	CustomColors      []domain.SavedColor      `json:"custom_colors,omitempty"`
	AspectRatio       string                   `json:"aspect_ratio,omitempty"`
	Quality           string                   `json:"quality,omitempty"`
	Lighting          string                   `json:"lighting,omitempty"`
	Environment       string                   `json:"environment,omitempty"`
	CameraAngle       string                   `json:"camera_angle,omitempty"`
}

type renderResponse struct {
	RequestID  string                  `json:"request_id"`
	Image      string                  `json:"image"`
	Attempts   int                     `json:"attempts"`
	Retried    bool                    `json:"retried"`
	Compliant  bool                    `json:"compliant"`
	Deltas     []compliance.FieldDelta `json:"structure_deltas,omitempty"`
	StorageKey string                  `json:"storage_key,omitempty"`
}

// RenderCreate runs one structure-preserving generation synchronously. The
// connection is held for the duration of the pipeline (up to four upstream
// round-trips), which is why the server's write timeout is generous.
func (a *App) RenderCreate(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	style, ok := domain.StyleByID(req.StyleID)
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown style id")
		return
	}

	source, err := domain.ParseImage(req.Image)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid source image")
		return
	}

	references := make([]domain.Image, 0, len(req.ReferenceImages))
	for _, encoded := range req.ReferenceImages {
		ref, err := domain.ParseImage(encoded)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid reference image")
			return
		}
		references = append(references, ref)
	}

	gen := domain.GenerationRequest{
		RequestID:         middleware.RequestIDFromContext(r.Context()),
		Source:            source,
		ReferenceImages:   references,
		Style:             style,
		Mode:              domain.RenderMode(req.RenderMode),
		RoomType:          domain.RoomType(req.RoomType),
		CustomInstruction: req.CustomInstruction,
		Materials:         req.Materials,
		CustomColors:      req.CustomColors,
		AspectRatio:       req.AspectRatio,
		Quality:           domain.QualityTier(req.Quality),
		Lighting:          domain.LightingMode(req.Lighting),
		Environment:       domain.EnvironmentMode(req.Environment),
		Camera:            domain.CameraAngle(req.CameraAngle),
	}
	if gen.Mode == "" {
		gen.Mode = style.Mode
	}

	result, err := a.Pipeline.Run(r.Context(), gen)
	if err != nil {
		a.renderError(w, err)
		return
	}

	resp := renderResponse{
		RequestID: gen.RequestID,
		Image:     result.Image.DataURL(),
		Attempts:  result.Attempts,
		Retried:   result.Retried,
		Compliant: result.Compliant,
		Deltas:    result.Verdict.Deltas,
	}

	if a.Store != nil {
		key, err := a.Store.Save(r.Context(), gen.RequestID, result.Image)
		if err != nil {
			a.Logger.Warn().Err(err).Str("request_id", gen.RequestID).Msg("handlers: render save failed")
		} else {
			resp.StorageKey = key
		}
	}

	a.json(w, http.StatusOK, resp)
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	msg := domain.UserMessage(err)
	switch {
	case errors.Is(err, domain.ErrUpstreamCapacity):
		a.error(w, http.StatusServiceUnavailable, "capacity", msg)
	case errors.Is(err, domain.ErrMissingCredential):
		a.error(w, http.StatusUnauthorized, "credential_missing", msg)
	case errors.Is(err, domain.ErrStaleCredential):
		a.error(w, http.StatusUnauthorized, "credential_stale", msg)
	case errors.Is(err, domain.ErrEmptyGenerationResponse):
		a.error(w, http.StatusBadGateway, "empty_response", msg)
	default:
		a.error(w, http.StatusInternalServerError, "generation_failed", msg)
	}
}

// RenderArchive streams every render stored for a request as one zip bundle.
func (a *App) RenderArchive(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		a.error(w, http.StatusServiceUnavailable, "storage_disabled", "render storage is not configured")
		return
	}
	requestID := chi.URLParam(r, "requestID")
	keys, err := a.Store.ListForRequest(r.Context(), requestID)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid request id")
		return
	}
	if len(keys) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no renders for request")
		return
	}

	assets := make([]zip.Asset, 0, len(keys))
	for _, key := range keys {
		img, err := a.Store.Load(r.Context(), key)
		if err != nil {
			continue
		}
		assets = append(assets, zip.Asset{Filename: path.Base(key), MIME: img.MIME, Data: img.Data})
	}

	archive := zip.ArchiveAssets(assets)
	if len(archive) == 0 {
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", requestID+".zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
