// Package pipeline runs the once-per-day reel production: pick a sentence,
// render the reel, write the caption. The run is idempotent per calendar day
// in the configured timezone.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"reelforge/config"
	"reelforge/logging"
	"reelforge/types"
)

// TextSource draws one sentence with its mood category.
type TextSource interface {
	Pick() types.ContentItem
}

// CaptionSource builds the caption-plus-hashtags bundle for one post.
type CaptionSource interface {
	Bundle() types.CaptionBundle
}

// Composer renders one finished reel at outputPath.
type Composer interface {
	Render(ctx context.Context, sentence, category, outputPath string) error
}

// Runner wires the daily production together. It never returns an error:
// everything that goes wrong lands in RunResult.Err and the log, so a
// scheduler loop can keep going regardless.
type Runner struct {
	cfg      *config.Config
	log      *logging.Logger
	text     TextSource
	captions CaptionSource
	composer Composer

	now func() time.Time // injectable clock
}

func New(cfg *config.Config, log *logging.Logger, text TextSource, captions CaptionSource, composer Composer) *Runner {
	return &Runner{
		cfg:      cfg,
		log:      log,
		text:     text,
		captions: captions,
		composer: composer,
		now:      time.Now,
	}
}

// VideoPath returns the dated output path for the given day.
func (r *Runner) VideoPath(day time.Time) string {
	name := fmt.Sprintf("reel_%s.mp4", day.Format("2006-01-02"))
	return r.cfg.Path(filepath.Join(r.cfg.Paths.OutputReels, name))
}

// CaptionPath returns the dated caption path for the given day.
func (r *Runner) CaptionPath(day time.Time) string {
	name := fmt.Sprintf("caption_%s.txt", day.Format("2006-01-02"))
	return r.cfg.Path(filepath.Join(r.cfg.Paths.CaptionsDir, name))
}

// Run produces today's reel unless it already exists. The existing-file check
// is the only idempotency guard, so a crashed render must not leave a file at
// the video path (the compositor removes partial output on failure).
func (r *Runner) Run(ctx context.Context) types.RunResult {
	today := r.now().In(r.cfg.Location())
	videoPath := r.VideoPath(today)
	captionPath := r.CaptionPath(today)

	if _, err := os.Stat(videoPath); err == nil {
		r.log.Skip(fmt.Sprintf("today's reel already exists: %s", videoPath))
		return types.RunResult{Skipped: true, VideoPath: videoPath}
	}

	runID := uuid.NewString()[:8]
	r.log.Start(runID)

	result := types.RunResult{RunID: runID}
	item := r.text.Pick()
	result.Sentence = item.Sentence
	result.Category = item.Category
	r.log.Info("Picked sentence (%s): %s", item.Category, item.Sentence)

	if err := r.composer.Render(ctx, item.Sentence, item.Category, videoPath); err != nil {
		r.log.Error("Render failed: %v", err)
		result.Err = fmt.Errorf("render: %w", err)
		return result
	}
	result.VideoPath = videoPath

	if err := r.writeCaption(captionPath); err != nil {
		r.log.Error("Caption write failed: %v", err)
		result.Err = fmt.Errorf("caption: %w", err)
		return result
	}
	result.Ran = true
	result.CaptionPath = captionPath

	r.log.Success(videoPath, captionPath)
	return result
}

func (r *Runner) writeCaption(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create captions dir: %w", err)
	}
	bundle := r.captions.Bundle()
	if err := os.WriteFile(path, []byte(bundle.Text()+"\n"), 0644); err != nil {
		return fmt.Errorf("write caption: %w", err)
	}
	return nil
}
