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

// Pexels searches the Pexels Videos API for portrait background clips.
type Pexels struct {
	apiKey     string
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// NewPexels creates a Pexels provider. An empty apiKey disables it.
func NewPexels(apiKey string, perPage int) *Pexels {
	return &Pexels{
		apiKey:     apiKey,
		baseURL:    "https://api.pexels.com/videos/search",
		perPage:    perPage,
		httpClient: searchClient(),
	}
}

func (p *Pexels) Name() string { return "pexels" }

type pexelsVideoFile struct {
	FileType string `json:"file_type"`
	Link     string `json:"link"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type pexelsVideo struct {
	ID         int               `json:"id"`
	Duration   float64           `json:"duration"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	VideoFiles []pexelsVideoFile `json:"video_files"`
}

type pexelsSearchResponse struct {
	Videos []pexelsVideo `json:"videos"`
}

// Search queries Pexels with portrait orientation and resolves each hit to
// its best MP4 rendition.
func (p *Pexels) Search(ctx context.Context, query string) ([]types.MediaCandidate, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "portrait")
	params.Set("per_page", strconv.Itoa(p.perPage))

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from Pexels", resp.StatusCode)
	}

	var result pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode pexels response: %w", err)
	}

	var candidates []types.MediaCandidate
	for _, v := range result.Videos {
		link := bestPexelsURL(v)
		if link == "" {
			continue
		}
		candidates = append(candidates, types.MediaCandidate{
			Provider: p.Name(),
			ID:       strconv.Itoa(v.ID),
			Title:    query,
			Duration: v.Duration,
			Width:    v.Width,
			Height:   v.Height,
			URL:      link,
		})
	}
	return candidates, nil
}

// bestPexelsURL picks the best MP4 rendition: largest portrait file if any,
// else the largest file overall.
func bestPexelsURL(v pexelsVideo) string {
	var portrait, any *pexelsVideoFile
	for i := range v.VideoFiles {
		f := &v.VideoFiles[i]
		if f.FileType != "video/mp4" || f.Link == "" {
			continue
		}
		if any == nil || f.Width+f.Height > any.Width+any.Height {
			any = f
		}
		if f.Height > f.Width {
			if portrait == nil || minInt(f.Width, f.Height) > minInt(portrait.Width, portrait.Height) {
				portrait = f
			}
		}
	}
	if portrait != nil {
		return portrait.Link
	}
	if any != nil {
		return any.Link
	}
	return ""
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
