// Package storage persists delivered renders on the local filesystem so the
// API can serve downloads without holding images in memory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"archviz/internal/domain"
)

// RenderStore writes render outputs under a local root, keyed by request ID.
// It is intended for single-node deployments; an object store can replace it
// behind the same surface.
type RenderStore struct {
	basePath string
}

// NewRenderStore initializes a store rooted at basePath.
func NewRenderStore(basePath string) (*RenderStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &RenderStore{basePath: basePath}, nil
}

// Save persists a delivered render and returns its storage key.
func (s *RenderStore) Save(ctx context.Context, requestID string, img domain.Image) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := sanitizeSegment(requestID)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/render%s", id, extensionFor(img.MIME))
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write render: %w", err)
	}
	return key, nil
}

// Load reads a previously saved render back by its storage key.
func (s *RenderStore) Load(ctx context.Context, key string) (domain.Image, error) {
	if s == nil {
		return domain.Image{}, errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return domain.Image{}, err
	}
	clean, err := sanitizeKey(key)
	if err != nil {
		return domain.Image{}, err
	}
	data, err := os.ReadFile(filepath.Join(s.basePath, filepath.FromSlash(clean)))
	if err != nil {
		return domain.Image{}, fmt.Errorf("storage: read render: %w", err)
	}
	return domain.Image{MIME: mimeFor(clean), Data: data}, nil
}

// ListForRequest returns the storage keys saved for a request, sorted.
func (s *RenderStore) ListForRequest(ctx context.Context, requestID string) ([]string, error) {
	if s == nil {
		return nil, errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := sanitizeSegment(requestID)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.basePath, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: list renders: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			keys = append(keys, id+"/"+entry.Name())
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func extensionFor(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

func mimeFor(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// sanitizeSegment allows only a single path segment, no traversal.
func sanitizeSegment(segment string) (string, error) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "", errors.New("storage: request id is required")
	}
	if strings.ContainsAny(segment, "/\\") || segment == "." || segment == ".." {
		return "", errors.New("storage: invalid request id")
	}
	return segment, nil
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
