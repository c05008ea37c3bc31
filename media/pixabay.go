package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"reelforge/types"
)

// Pixabay searches the Pixabay Videos API.
type Pixabay struct {
	apiKey     string
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// NewPixabay creates a Pixabay provider. An empty apiKey disables it.
func NewPixabay(apiKey string, perPage int) *Pixabay {
	return &Pixabay{
		apiKey:     apiKey,
		baseURL:    "https://pixabay.com/api/videos/",
		perPage:    perPage,
		httpClient: searchClient(),
	}
}

func (p *Pixabay) Name() string { return "pixabay" }

type pixabayRendition struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type pixabayHit struct {
	ID       int                         `json:"id"`
	Duration float64                     `json:"duration"`
	Videos   map[string]pixabayRendition `json:"videos"`
}

type pixabaySearchResponse struct {
	Hits []pixabayHit `json:"hits"`
}

func (p *Pixabay) Search(ctx context.Context, query string) ([]types.MediaCandidate, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(p.perPage))

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from Pixabay", resp.StatusCode)
	}

	var result pixabaySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode pixabay response: %w", err)
	}

	var candidates []types.MediaCandidate
	for _, h := range result.Hits {
		rendition, ok := bestPixabayRendition(h)
		if !ok {
			continue
		}
		candidates = append(candidates, types.MediaCandidate{
			Provider: p.Name(),
			ID:       strconv.Itoa(h.ID),
			Title:    query,
			Duration: h.Duration,
			Width:    rendition.Width,
			Height:   rendition.Height,
			URL:      rendition.URL,
		})
	}
	return candidates, nil
}

// bestPixabayRendition prefers medium, then large, then small.
func bestPixabayRendition(h pixabayHit) (pixabayRendition, bool) {
	for _, key := range []string{"medium", "large", "small"} {
		if r, ok := h.Videos[key]; ok && r.URL != "" {
			return r, true
		}
	}
	return pixabayRendition{}, false
}
