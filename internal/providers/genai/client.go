package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"archviz/internal/domain"
	"archviz/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	Keys       *KeyRing
	BaseURL    string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client is the single production implementation of the Gemini REST surface
// this service depends on: send N image parts plus one text part, get back a
// list of parts, pick the first part of the needed kind. Both the audit and
// render capabilities go through it; there are no parallel variants.
type Client struct {
	keys       *KeyRing
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
	CandidateCount     int      `json:"candidateCount,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Status  string `json:"status,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with a generous timeout is created since
// image generation calls routinely run for tens of seconds.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 180 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRing(nil)
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		keys:       keys,
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger,
	}
}

// GenerateImage sends the images and instruction to the given model and
// returns the first inline image part of the response. A transport-level
// success with no image payload is domain.ErrEmptyGenerationResponse.
func (c *Client) GenerateImage(ctx context.Context, model string, images []domain.Image, instruction string) (domain.Image, error) {
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: buildParts(images, instruction),
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	var response geminiGenerateContentResponse
	if err := c.invoke(ctx, model, payload, &response); err != nil {
		return domain.Image{}, err
	}

	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return domain.Image{}, fmt.Errorf("decode inline image: %w", err)
			}
			mime := part.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			c.logger.Debug().
				Str("model", model).
				Int("bytes", len(data)).
				Msg("genai: received inline image")
			return domain.Image{MIME: mime, Data: data}, nil
		}
	}

	return domain.Image{}, domain.ErrEmptyGenerationResponse
}

// DescribeImage sends one image plus an extraction instruction to the given
// model and returns the first text part of the response.
func (c *Client) DescribeImage(ctx context.Context, model string, image domain.Image, instruction string) (string, error) {
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: buildParts([]domain.Image{image}, instruction),
		}},
	}

	var response geminiGenerateContentResponse
	if err := c.invoke(ctx, model, payload, &response); err != nil {
		return "", err
	}

	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", nil
}

func buildParts(images []domain.Image, instruction string) []geminiPart {
	parts := make([]geminiPart, 0, len(images)+1)
	for _, img := range images {
		if img.IsZero() {
			continue
		}
		mime := img.MIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}
	return append(parts, geminiPart{Text: instruction})
}

func (c *Client) invoke(ctx context.Context, model string, payload any, out any) error {
	key, err := c.keys.Next()
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(model))
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return domain.ClassifyProviderError(c.statusError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return domain.ErrUpstreamCapacity
	}
	var apiErr geminiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}
	return fmt.Errorf("gemini status %d", resp.StatusCode)
}
