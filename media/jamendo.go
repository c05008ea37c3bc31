package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"reelforge/types"
)

// Jamendo searches the Jamendo tracks API for downloadable music.
type Jamendo struct {
	clientID   string
	baseURL    string
	limit      int
	httpClient *http.Client
}

// NewJamendo creates a Jamendo provider. An empty clientID disables it.
func NewJamendo(clientID string, limit int) *Jamendo {
	return &Jamendo{
		clientID:   clientID,
		baseURL:    "https://api.jamendo.com/v3.0/tracks/",
		limit:      limit,
		httpClient: searchClient(),
	}
}

func (j *Jamendo) Name() string { return "jamendo" }

type jamendoTrack struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Duration             float64 `json:"duration"`
	AudioDownloadAllowed bool    `json:"audiodownload_allowed"`
}

type jamendoSearchResponse struct {
	Results []jamendoTrack `json:"results"`
}

// Search returns tracks whose download is permitted. The download URL goes
// through the API's file endpoint, which redirects to the actual MP3.
func (j *Jamendo) Search(ctx context.Context, query string) ([]types.MediaCandidate, error) {
	if j.clientID == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("client_id", j.clientID)
	params.Set("search", query)
	params.Set("limit", fmt.Sprintf("%d", j.limit))
	params.Set("format", "json")
	params.Set("audiodownload_allowed", "true")

	req, err := http.NewRequestWithContext(ctx, "GET", j.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := j.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from Jamendo", resp.StatusCode)
	}

	var result jamendoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode jamendo response: %w", err)
	}

	var candidates []types.MediaCandidate
	for _, t := range result.Results {
		if !t.AudioDownloadAllowed || t.ID == "" {
			continue
		}
		candidates = append(candidates, types.MediaCandidate{
			Provider: j.Name(),
			ID:       t.ID,
			Title:    t.Name,
			Duration: t.Duration,
			URL:      j.fileURL(t.ID),
		})
	}
	return candidates, nil
}

func (j *Jamendo) fileURL(trackID string) string {
	params := url.Values{}
	params.Set("client_id", j.clientID)
	params.Set("id", trackID)
	params.Set("audioformat", "mp32")
	return "https://api.jamendo.com/v3.0/tracks/file/?" + params.Encode()
}
