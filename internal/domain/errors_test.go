package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifyProviderError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"already capacity", ErrUpstreamCapacity, ErrUpstreamCapacity},
		{"wrapped capacity", fmt.Errorf("invoke gemini: %w", ErrUpstreamCapacity), ErrUpstreamCapacity},
		{"http 429 text", errors.New("gemini status 429"), ErrUpstreamCapacity},
		{"resource exhausted", errors.New("gemini status 503: RESOURCE_EXHAUSTED quota"), ErrUpstreamCapacity},
		{"entity not found", errors.New("gemini status 403: Requested entity was not found."), ErrStaleCredential},
		{"missing credential", ErrMissingCredential, ErrMissingCredential},
		{"empty response", ErrEmptyGenerationResponse, ErrEmptyGenerationResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyProviderError(tc.in)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("ClassifyProviderError(nil) = %v", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Fatalf("ClassifyProviderError(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestClassifyProviderErrorPassesThroughUnknown(t *testing.T) {
	raw := errors.New("connection reset by peer")
	if got := ClassifyProviderError(raw); got != raw {
		t.Fatalf("unknown error was rewritten: %v", got)
	}
}

func TestClassifyProviderErrorKeepsCause(t *testing.T) {
	raw := errors.New("gemini status 429: too many requests")
	got := ClassifyProviderError(raw)
	if !errors.Is(got, ErrUpstreamCapacity) || !errors.Is(got, raw) {
		t.Fatalf("classified error lost sentinel or cause: %v", got)
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		in   error
		want string
	}{
		{nil, ""},
		{ErrUpstreamCapacity, "Engine at maximum capacity. Please try again shortly."},
		{ErrMissingCredential, "Please select a paid API key to continue."},
		{ErrStaleCredential, "API Key reset required. Please re-authorize."},
		{ErrEmptyGenerationResponse, "Generation Error: the engine returned no image. Please try again."},
		{errors.New("boom"), "Generation Error: boom"},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.in); got != tc.want {
			t.Fatalf("UserMessage(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUserMessageTruncatesUnknownErrors(t *testing.T) {
	long := errors.New(strings.Repeat("x", 300))
	got := UserMessage(long)
	if len(got) != len("Generation Error: ")+100 {
		t.Fatalf("UserMessage length = %d, want prefix plus 100 chars", len(got))
	}
}
