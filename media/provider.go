// Package media acquires background videos and music tracks from stock-media
// providers, with a local grow-only cache and ordered fallbacks.
package media

import (
	"context"
	"net/http"
	"time"

	"reelforge/types"
)

// Provider is one stock-media source. Search returns candidates already
// resolved to direct download URLs; a provider that is not configured (no API
// key) returns an empty slice, never an error that stops the fallback chain.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]types.MediaCandidate, error)
}

// searchClient is the shared HTTP client for provider search calls.
// Downloads use their own longer timeout (see download.go).
func searchClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
