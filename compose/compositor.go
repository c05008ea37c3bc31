// Package compose turns one sentence, one background asset and one optional
// music track into a finished vertical reel via a single ffmpeg invocation.
package compose

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"reelforge/config"
)

// BackgroundSource supplies a local background file for a mood category.
type BackgroundSource interface {
	Fetch(ctx context.Context, category string) (string, error)
}

// MusicSource supplies a local music file, or "" for a silent reel.
type MusicSource interface {
	Fetch(ctx context.Context, category string) (string, error)
}

// Job is the ephemeral description of one composition.
type Job struct {
	Sentence   string
	Category   string
	Background string
	Music      string
	Duration   float64
	OutputPath string
}

// Compositor builds and encodes reels. Media acquisition happens inside
// Render so a caller only hands over the sentence and the output path.
type Compositor struct {
	cfg        *config.Config
	rng        *rand.Rand
	background BackgroundSource
	music      MusicSource
	effect     Effect

	// runFFmpeg and probe are seams over the ffmpeg binaries; replaced in tests.
	runFFmpeg func(ctx context.Context, args []string) error
	probe     func(path string) (float64, error)
}

func New(cfg *config.Config, rng *rand.Rand, background BackgroundSource, music MusicSource) *Compositor {
	return &Compositor{
		cfg:        cfg,
		rng:        rng,
		background: background,
		music:      music,
		effect:     NewSlowZoom(rng),
		runFFmpeg:  runFFmpegArgs,
		probe:      probeDuration,
	}
}

// Render acquires media, composes and encodes one reel at outputPath.
// A failed encode removes any partial output so the daily guard cannot
// mistake it for a completed run.
func (c *Compositor) Render(ctx context.Context, sentence, category, outputPath string) error {
	job := Job{
		Sentence:   sentence,
		Category:   category,
		Duration:   sampleDuration(c.rng, c.cfg.Video.DurationMin, c.cfg.Video.DurationMax),
		OutputPath: outputPath,
	}

	bg, err := c.background.Fetch(ctx, category)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	job.Background = bg

	music, err := c.music.Fetch(ctx, category)
	if err != nil {
		log.Printf("[compose] Music fetch warning: %v — rendering silent", err)
		music = ""
	}
	job.Music = music

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	args := c.buildArgs(job)
	log.Printf("[compose] Encoding %.1fs reel (%s, music=%v): %s",
		job.Duration, category, job.Music != "", outputPath)

	if err := c.runFFmpeg(ctx, args); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("ffmpeg encode: %w", err)
	}
	return nil
}

// buildArgs assembles the full ffmpeg argument list for one job.
func (c *Compositor) buildArgs(job Job) []string {
	video := c.cfg.Video

	stream := c.backgroundStream(job)
	stream = c.effect.Apply(stream, job.Duration, video)
	stream = stream.Filter("drawtext", ffmpeg.Args{}, c.textArgs(job.Sentence))

	outKw := ffmpeg.KwArgs{
		"c:v":      "libx264",
		"preset":   "fast",
		"crf":      "23",
		"pix_fmt":  "yuv420p",
		"r":        video.FPS,
		"t":        fmt.Sprintf("%.1f", job.Duration),
		"movflags": "+faststart",
	}

	var out *ffmpeg.Stream
	if job.Music != "" {
		outKw["c:a"] = "aac"
		outKw["b:a"] = "192k"
		out = ffmpeg.Output([]*ffmpeg.Stream{stream, c.audioStream(job)}, job.OutputPath, outKw)
	} else {
		out = stream.Output(job.OutputPath, outKw)
	}
	return out.OverWriteOutput().GetArgs()
}

// backgroundStream loads the asset, loops it up to the job duration when it
// is shorter, trims to the exact duration, center-crops to the target aspect
// ratio and scales to the target resolution.
func (c *Compositor) backgroundStream(job Job) *ffmpeg.Stream {
	video := c.cfg.Video
	inputKw := ffmpeg.KwArgs{}

	if isImage(job.Background) {
		inputKw["loop"] = 1
		inputKw["framerate"] = video.FPS
		inputKw["t"] = fmt.Sprintf("%.1f", job.Duration)
	} else if dur, err := c.probe(job.Background); err != nil {
		log.Printf("[compose] Probe warning for %s: %v — assuming long enough", job.Background, err)
	} else if dur < job.Duration {
		inputKw["stream_loop"] = int(job.Duration/dur) + 1
	}

	return ffmpeg.Input(job.Background, inputKw).
		Filter("trim", ffmpeg.Args{}, ffmpeg.KwArgs{"duration": fmt.Sprintf("%.1f", job.Duration)}).
		Filter("setpts", ffmpeg.Args{"PTS-STARTPTS"}).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", video.Width, video.Height)},
			ffmpeg.KwArgs{"force_original_aspect_ratio": "increase"}).
		Filter("crop", ffmpeg.Args{fmt.Sprintf("%d:%d", video.Width, video.Height)}).
		Filter("fps", ffmpeg.Args{}, ffmpeg.KwArgs{"fps": video.FPS})
}

// audioStream loops or trims the music to exactly the job duration and
// attenuates it under the configured volume.
func (c *Compositor) audioStream(job Job) *ffmpeg.Stream {
	inputKw := ffmpeg.KwArgs{}
	if dur, err := c.probe(job.Music); err != nil {
		log.Printf("[compose] Probe warning for %s: %v", job.Music, err)
	} else if dur < job.Duration {
		inputKw["stream_loop"] = int(job.Duration/dur) + 1
	}
	return ffmpeg.Input(job.Music, inputKw).
		Filter("atrim", ffmpeg.Args{}, ffmpeg.KwArgs{"duration": fmt.Sprintf("%.1f", job.Duration)}).
		Filter("asetpts", ffmpeg.Args{"PTS-STARTPTS"}).
		Filter("volume", ffmpeg.Args{fmt.Sprintf("%.2f", c.cfg.Video.MusicVolume)})
}

// textArgs builds the drawtext parameters: wrapped text, stroke under fill,
// fade-in alpha, centered with the configured vertical anchor, and the
// optional backdrop box.
func (c *Compositor) textArgs(sentence string) ffmpeg.KwArgs {
	video := c.cfg.Video
	text := strings.Join(wrapText(sentence, 18), "\n")

	kw := ffmpeg.KwArgs{
		"text":        escapeDrawtext(text),
		"fontsize":    video.Text.FontSize,
		"fontcolor":   video.Text.FontColor,
		"borderw":     video.Text.StrokeWidth,
		"bordercolor": video.Text.StrokeColor,
		"x":           "(w-text_w)/2",
		"y":           verticalAnchor(video.Text.Position),
	}
	if video.Text.FadeIn > 0 {
		kw["alpha"] = fmt.Sprintf(`min(t/%.2f\,1)`, video.Text.FadeIn)
	}
	if video.Backdrop.Enabled {
		kw["box"] = 1
		kw["boxcolor"] = fmt.Sprintf("%s@%.2f", video.Backdrop.Color, video.Backdrop.Opacity)
		kw["boxborderw"] = video.Backdrop.Padding
	}
	if font := c.fontFile(); font != "" {
		kw["fontfile"] = font
	}
	return kw
}

func verticalAnchor(position string) string {
	if position == "lower_third" {
		return "h*0.65-text_h/2"
	}
	return "(h-text_h)/2"
}

// fontFile returns the first font in the assets/fonts directory, or "" to let
// ffmpeg use its default.
func (c *Compositor) fontFile() string {
	dir := c.cfg.Path(c.cfg.Paths.AssetsFonts)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".ttf" || ext == ".otf" {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

// sampleDuration draws the job duration uniformly from [min, max], rounded to
// one decimal place.
func sampleDuration(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return math.Round(min*10) / 10
	}
	d := min + rng.Float64()*(max-min)
	return math.Round(d*10) / 10
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func runFFmpegArgs(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
