package media

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/samber/lo"

	"reelforge/config"
	"reelforge/types"
)

// VideoFetcher returns a local path to one background video. Fallback order:
// probabilistic cache reuse, configured providers, the manual backgrounds
// directory, any cached file, error.
type VideoFetcher struct {
	cfg       *config.Config
	rng       *rand.Rand
	providers []Provider
	cache     *Cache
	manual    *Cache // manual assets dir, same listing semantics as the cache
}

// NewVideoFetcher wires the provider chain from environment keys. A missing
// key just leaves that provider inert.
func NewVideoFetcher(cfg *config.Config, rng *rand.Rand) *VideoFetcher {
	return &VideoFetcher{
		cfg: cfg,
		rng: rng,
		providers: []Provider{
			NewPexels(os.Getenv("PEXELS_API_KEY"), cfg.Download.PerPage),
			NewPixabay(os.Getenv("PIXABAY_API_KEY"), cfg.Download.PerPage),
		},
		cache:  NewCache(cfg.Path(cfg.Paths.CacheVideos), ".mp4", ".mov", ".webm"),
		manual: NewCache(cfg.Path(cfg.Paths.AssetsBackgrounds), ".mp4", ".mov", ".webm", ".jpg", ".jpeg", ".png"),
	}
}

// Fetch implements the acquisition policy for one run.
func (f *VideoFetcher) Fetch(ctx context.Context, category string) (string, error) {
	// Reuse the cache half the time once it holds enough variety, to avoid
	// hitting the APIs on every run.
	if len(f.cache.Files()) >= 5 && f.rng.Float64() < 0.5 {
		path := f.cache.Random(f.rng)
		log.Printf("[video] Reusing cached background: %s", path)
		return path, nil
	}

	query := f.pickKeyword(category)

	for _, provider := range f.providers {
		if path := f.tryProvider(ctx, provider, query); path != "" {
			return path, nil
		}
	}

	if path := f.manual.Random(f.rng); path != "" {
		log.Printf("[video] Using manual background asset: %s", path)
		return path, nil
	}

	if path := f.cache.Random(f.rng); path != "" {
		log.Printf("[video] All providers failed — using cached background: %s", path)
		return path, nil
	}

	return "", fmt.Errorf("no background video available: set PEXELS_API_KEY and/or PIXABAY_API_KEY, or add files to %s", f.manual.Dir())
}

// tryProvider searches one provider and downloads the first acceptable hit.
// First pass honors the configured duration range; if nothing downloads, a
// relaxed second pass takes the first candidates regardless of duration.
func (f *VideoFetcher) tryProvider(ctx context.Context, provider Provider, query string) string {
	candidates, err := provider.Search(ctx, query)
	if err != nil {
		log.Printf("[video] %s search warning: %v", provider.Name(), err)
		return ""
	}
	if len(candidates) == 0 {
		return ""
	}

	minDur := f.cfg.Download.VideoMinDuration
	maxDur := f.cfg.Download.VideoMaxDuration
	inRange := lo.Filter(candidates, func(c types.MediaCandidate, _ int) bool {
		return c.Duration == 0 || (c.Duration >= minDur && c.Duration <= maxDur)
	})
	f.rng.Shuffle(len(inRange), func(i, j int) { inRange[i], inRange[j] = inRange[j], inRange[i] })

	if path := f.downloadFirst(ctx, inRange); path != "" {
		return path
	}

	// Relaxed pass: no duration filter, first 10 hits in API order.
	relaxed := candidates
	if len(relaxed) > 10 {
		relaxed = relaxed[:10]
	}
	return f.downloadFirst(ctx, relaxed)
}

func (f *VideoFetcher) downloadFirst(ctx context.Context, candidates []types.MediaCandidate) string {
	for _, c := range candidates {
		dest := f.cache.PathFor(c.Provider, c.ID, c.Title, ".mp4")
		if err := downloadFile(ctx, c.URL, dest); err != nil {
			log.Printf("[video] Download failed (%s %s): %v", c.Provider, c.ID, err)
			continue
		}
		log.Printf("[video] Cached: %s", dest)
		return dest
	}
	return ""
}

func (f *VideoFetcher) pickKeyword(category string) string {
	keywords := f.cfg.Download.VideoKeywords[category]
	if len(keywords) == 0 {
		keywords = f.cfg.Download.GenericKeywords
	}
	if len(keywords) == 0 {
		return "cinematic"
	}
	return keywords[f.rng.Intn(len(keywords))]
}
