package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"reelforge/compose"
	"reelforge/config"
	"reelforge/content"
	"reelforge/logging"
	"reelforge/media"
	"reelforge/pipeline"
	"reelforge/poster"
	"reelforge/scheduler"
)

func main() {
	// Load .env (local dev only — CI injects real secrets)
	_ = godotenv.Load()

	configPath := "config.yaml"
	schedule := false
	once := false
	post := false
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				log.Fatal("--config needs a path")
			}
			i++
			configPath = args[i]
		case "--schedule":
			schedule = true
		case "--once":
			once = true
		case "--post":
			post = true
		default:
			log.Fatalf("unknown flag %q (want --config <path>, --schedule, --once, --post)", args[i])
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputReels, cfg.Paths.CaptionsDir, cfg.Paths.LogsDir,
		cfg.Paths.CacheVideos, cfg.Paths.CacheMusic, cfg.Paths.AssetsBackgrounds, cfg.Paths.AssetsMusic} {
		if err := os.MkdirAll(cfg.Path(dir), 0755); err != nil {
			log.Fatalf("Failed to create dir %s: %v", dir, err)
		}
	}

	logger, err := logging.New(cfg.Path(cfg.Paths.LogsDir))
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logger.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	runner := pipeline.New(cfg, logger,
		content.NewSelector(cfg.Content.Distribution, rng),
		content.NewCaptionWriter(rng),
		compose.New(cfg, rng, media.NewVideoFetcher(cfg, rng), media.NewMusicFetcher(cfg, rng)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if schedule {
		log.Printf("🎬 %s scheduler starting — window %s-%s %s",
			cfg.Project.Name, cfg.Posting.TimeStart, cfg.Posting.TimeEnd, cfg.Project.Timezone)
		sched := scheduler.New(cfg, logger, runner)
		sched.Once = once
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("Scheduler stopped: %v", err)
		}
		return
	}

	log.Printf("🎬 %s single run starting", cfg.Project.Name)
	result := runner.Run(ctx)
	if result.Err != nil {
		log.Fatalf("❌ Run failed: %v", result.Err)
	}
	if result.Skipped {
		log.Printf("⏭  Already done today: %s", result.VideoPath)
		return
	}
	log.Printf("✅ Reel ready: %s", result.VideoPath)

	if post {
		caption := ""
		if result.CaptionPath != "" {
			if data, err := os.ReadFile(result.CaptionPath); err == nil {
				caption = string(data)
			}
		}
		ig := poster.NewInstagram(cfg, logger)
		if err := ig.Post(ctx, result.VideoPath, caption); err != nil {
			log.Fatalf("❌ Instagram post failed: %v", err)
		}
		log.Printf("✅ Posted to Instagram")
	}
}
