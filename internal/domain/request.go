package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// QualityTier selects which upstream render model services a request.
type QualityTier string

const (
	QualityStandard QualityTier = "standard"
	QualityPro      QualityTier = "pro"
)

// Image is a raw raster image plus its MIME type. No validation is applied
// beyond what the upstream vision call enforces.
type Image struct {
	MIME string
	Data []byte
}

// IsZero reports whether the image carries no payload.
func (i Image) IsZero() bool { return len(i.Data) == 0 }

// DataURL renders the image as a base64 data URL for transport to callers.
func (i Image) DataURL() string {
	mime := i.MIME
	if mime == "" {
		mime = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(i.Data))
}

// ParseImage decodes either a data URL or a bare base64 string into an Image.
// A bare payload defaults to image/jpeg, matching what uploads produce.
func ParseImage(encoded string) (Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Image{}, fmt.Errorf("empty image payload")
	}
	mime := "image/jpeg"
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		header := encoded[:idx]
		if s := strings.Index(header, ":"); s >= 0 {
			if e := strings.Index(header, ";"); e > s {
				mime = header[s+1 : e]
			}
		}
		encoded = encoded[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Image{}, fmt.Errorf("decode image payload: %w", err)
	}
	return Image{MIME: mime, Data: data}, nil
}

// SavedColor is a user-supplied custom color applied during generation.
type SavedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
}

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// MaterialOverrides pins specific finish categories to user-chosen materials.
// Empty fields are omitted from the prompt.
type MaterialOverrides struct {
	Flooring    string `json:"flooring,omitempty"`
	Cabinets    string `json:"cabinets,omitempty"`
	Countertops string `json:"countertops,omitempty"`
	Backsplash  string `json:"backsplash,omitempty"`
}

// IsZero reports whether no override is set.
func (m MaterialOverrides) IsZero() bool {
	return m.Flooring == "" && m.Cabinets == "" && m.Countertops == "" && m.Backsplash == ""
}

// GenerationRequest is the input bundle for one structure-preserving render.
// It is assembled once per user-initiated apply action and lives only for the
// duration of the pipeline run.
type GenerationRequest struct {
	RequestID         string
	Source            Image
	ReferenceImages   []Image
	Style             StyleDirective
	Mode              RenderMode
	RoomType          RoomType
	CustomInstruction string
	Materials         MaterialOverrides
	CustomColors      []SavedColor
	AspectRatio       string
	Quality           QualityTier
	Lighting          LightingMode
	Environment       EnvironmentMode
	Camera            CameraAngle
}

// Normalize fills in the defaults the original apply action relies on.
func (r *GenerationRequest) Normalize() {
	if r.Mode == "" {
		r.Mode = RenderModeExterior
	}
	if r.AspectRatio == "" {
		r.AspectRatio = "16:9"
	}
	if r.Quality == "" {
		r.Quality = QualityStandard
	}
	if r.Lighting == "" {
		r.Lighting = LightingGolden
	}
	if r.Environment == "" {
		r.Environment = EnvironmentExisting
	}
	if r.Camera == "" {
		r.Camera = CameraFront
	}
}
