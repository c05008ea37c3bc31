package media

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"math/rand"
	"os"

	"reelforge/config"
)

// MusicFetcher returns a local path to one music track, or "" when nothing
// could be obtained — a silent reel is acceptable, so exhaustion here is not
// an error.
type MusicFetcher struct {
	cfg          *config.Config
	rng          *rand.Rand
	provider     Provider
	cache        *Cache
	manual       *Cache // manual assets dir, same listing semantics as the cache
	fallbackURLs []string
}

func NewMusicFetcher(cfg *config.Config, rng *rand.Rand) *MusicFetcher {
	return &MusicFetcher{
		cfg:          cfg,
		rng:          rng,
		provider:     NewJamendo(os.Getenv("JAMENDO_CLIENT_ID"), cfg.Download.PerPage),
		cache:        NewCache(cfg.Path(cfg.Paths.CacheMusic), ".mp3"),
		manual:       NewCache(cfg.Path(cfg.Paths.AssetsMusic), ".mp3", ".wav", ".m4a"),
		fallbackURLs: cfg.Download.FallbackMusicURLs,
	}
}

// Fetch tries, in order: probabilistic cache reuse, the music provider, the
// fixed fallback URLs, the manual music directory, any cached file. Returns
// "" if everything failed.
func (f *MusicFetcher) Fetch(ctx context.Context, category string) (string, error) {
	if len(f.cache.Files()) >= 3 && f.rng.Float64() < 0.5 {
		path := f.cache.Random(f.rng)
		log.Printf("[music] Reusing cached track: %s", path)
		return path, nil
	}

	query := f.pickKeyword(category)

	candidates, err := f.provider.Search(ctx, query)
	if err != nil {
		log.Printf("[music] %s search warning: %v", f.provider.Name(), err)
	}
	for _, c := range candidates {
		dest := f.cache.PathFor(c.Provider, c.ID, c.Title, ".mp3")
		if err := downloadFile(ctx, c.URL, dest); err != nil {
			log.Printf("[music] Download failed (%s %s): %v", c.Provider, c.ID, err)
			continue
		}
		log.Printf("[music] Cached: %s", dest)
		return dest, nil
	}

	// Fixed fallback URLs, sampled without replacement, capped at 5.
	for i, idx := range f.rng.Perm(len(f.fallbackURLs)) {
		if i >= 5 {
			break
		}
		url := f.fallbackURLs[idx]
		dest := f.cache.PathFor("fallback", urlHash(url), "track", ".mp3")
		if err := downloadFile(ctx, url, dest); err != nil {
			log.Printf("[music] Fallback download failed: %v", err)
			continue
		}
		log.Printf("[music] Cached: %s", dest)
		return dest, nil
	}

	if path := f.manual.Random(f.rng); path != "" {
		log.Printf("[music] Using manual music asset: %s", path)
		return path, nil
	}

	if path := f.cache.Random(f.rng); path != "" {
		log.Printf("[music] Using cached track: %s", path)
		return path, nil
	}

	log.Printf("[music] No track available — reel will be silent")
	return "", nil
}

func (f *MusicFetcher) pickKeyword(category string) string {
	keywords := f.cfg.Download.MusicKeywords[category]
	if len(keywords) == 0 {
		keywords = []string{"emotional", "cinematic", "sad"}
	}
	return keywords[f.rng.Intn(len(keywords))]
}

func urlHash(url string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(url))
	return fmt.Sprintf("%08d", h.Sum32()%100000000)
}
