package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyGenerationResponse means the generation call succeeded at the
	// transport level but carried no image payload. Fatal for the attempt.
	ErrEmptyGenerationResponse = errors.New("empty generation response")
	// ErrUpstreamCapacity is the provider rate-limit/overload signal. The
	// pipeline never auto-retries it; callers may re-invoke.
	ErrUpstreamCapacity = errors.New("upstream capacity")
	// ErrMissingCredential means no API key was configured for the provider.
	ErrMissingCredential = errors.New("missing credential")
	// ErrStaleCredential means the configured key needs re-authorization.
	ErrStaleCredential = errors.New("stale credential")
)

// ClassifyProviderError maps a raw provider failure onto the error taxonomy.
// Errors already in the taxonomy pass through; anything unrecognized is
// returned as-is and treated as opaque.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrEmptyGenerationResponse),
		errors.Is(err, ErrUpstreamCapacity),
		errors.Is(err, ErrMissingCredential),
		errors.Is(err, ErrStaleCredential):
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "resource_exhausted"):
		return errors.Join(ErrUpstreamCapacity, err)
	case strings.Contains(msg, "entity was not found"):
		return errors.Join(ErrStaleCredential, err)
	}
	return err
}

// UserMessage converts a pipeline failure into the caller-facing wording for
// each error class. Unknown errors get a truncated generic message so raw
// provider text never leaks verbatim to end users.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUpstreamCapacity):
		return "Engine at maximum capacity. Please try again shortly."
	case errors.Is(err, ErrMissingCredential):
		return "Please select a paid API key to continue."
	case errors.Is(err, ErrStaleCredential):
		return "API Key reset required. Please re-authorize."
	case errors.Is(err, ErrEmptyGenerationResponse):
		return "Generation Error: the engine returned no image. Please try again."
	}
	msg := err.Error()
	if len(msg) > 100 {
		msg = msg[:100]
	}
	return "Generation Error: " + msg
}
