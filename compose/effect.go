package compose

import (
	"fmt"
	"math/rand"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"reelforge/config"
)

// Effect transforms the normalized background stream. Implementations must be
// safe to skip: a reel without the effect is always acceptable.
type Effect interface {
	Name() string
	Apply(stream *ffmpeg.Stream, duration float64, video config.VideoConfig) *ffmpeg.Stream
}

// NoEffect leaves the background as-is.
type NoEffect struct{}

func (NoEffect) Name() string { return "none" }

func (NoEffect) Apply(stream *ffmpeg.Stream, duration float64, video config.VideoConfig) *ffmpeg.Stream {
	return stream
}

// SlowZoom applies a linear ±6% zoom over the whole clip, direction drawn per
// job. The frame is upscaled before zoompan so the sub-pixel pan stays smooth.
type SlowZoom struct {
	rng *rand.Rand
}

func NewSlowZoom(rng *rand.Rand) *SlowZoom {
	return &SlowZoom{rng: rng}
}

func (z *SlowZoom) Name() string { return "slow_zoom" }

func (z *SlowZoom) Apply(stream *ffmpeg.Stream, duration float64, video config.VideoConfig) *ffmpeg.Stream {
	frames := int(duration * float64(video.FPS))
	if frames <= 0 {
		return stream
	}
	direction := "in"
	if z.rng.Intn(2) == 1 {
		direction = "out"
	}
	return stream.
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", video.Width*2, video.Height*2)}).
		Filter("zoompan", ffmpeg.Args{}, ffmpeg.KwArgs{
			"z":   zoomExpr(direction, frames),
			"x":   "iw/2-(iw/zoom/2)",
			"y":   "ih/2-(ih/zoom/2)",
			"d":   1,
			"s":   fmt.Sprintf("%dx%d", video.Width, video.Height),
			"fps": video.FPS,
		})
}

// zoomExpr builds the per-frame zoom factor expression: 1.00 to 1.06 for "in",
// 1.06 down to 1.00 for "out", linear over the clip's frame count.
func zoomExpr(direction string, frames int) string {
	if direction == "out" {
		return fmt.Sprintf("1.06-0.06*on/%d", frames)
	}
	return fmt.Sprintf("1+0.06*on/%d", frames)
}
