// buildreel renders a one-off reel outside the daily schedule. Outputs are
// numbered (1.mp4/1.txt, 2.mp4/2.txt, ...) so repeated invocations pile up
// instead of tripping the daily guard.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"reelforge/compose"
	"reelforge/config"
	"reelforge/content"
	"reelforge/media"
)

func main() {
	_ = godotenv.Load()

	configPath := "config.yaml"
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		configPath = os.Args[2]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	reelsDir := cfg.Path(cfg.Paths.OutputReels)
	captionsDir := cfg.Path(cfg.Paths.CaptionsDir)
	for _, dir := range []string{reelsDir, captionsDir, cfg.Path(cfg.Paths.CacheVideos), cfg.Path(cfg.Paths.CacheMusic)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create dir %s: %v", dir, err)
		}
	}

	n := nextNumber(reelsDir, captionsDir)
	videoPath := filepath.Join(reelsDir, fmt.Sprintf("%d.mp4", n))
	captionPath := filepath.Join(captionsDir, fmt.Sprintf("%d.txt", n))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := content.NewSelector(cfg.Content.Distribution, rng)
	captions := content.NewCaptionWriter(rng)
	compositor := compose.New(cfg, rng, media.NewVideoFetcher(cfg, rng), media.NewMusicFetcher(cfg, rng))

	item := selector.Pick()
	log.Printf("🎬 Building reel #%d (%s): %s", n, item.Category, item.Sentence)

	ctx := context.Background()
	if err := compositor.Render(ctx, item.Sentence, item.Category, videoPath); err != nil {
		log.Fatalf("❌ Render failed: %v", err)
	}
	if err := os.WriteFile(captionPath, []byte(captions.Bundle().Text()+"\n"), 0644); err != nil {
		log.Fatalf("❌ Caption write failed: %v", err)
	}
	log.Printf("✅ Reel ready: %s (caption: %s)", videoPath, captionPath)
}

// nextNumber returns one past the highest numbered output across both
// directories, so a deleted early reel never gets its number reused.
func nextNumber(reelsDir, captionsDir string) int {
	max := 0
	for dir, ext := range map[string]string{reelsDir: ".mp4", captionsDir: ".txt"} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := strings.TrimSuffix(e.Name(), ext)
			if name == e.Name() {
				continue
			}
			if n, err := strconv.Atoi(name); err == nil && n > max {
				max = n
			}
		}
	}
	return max + 1
}
