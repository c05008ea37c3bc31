package compose

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelforge/config"
)

type stubSource struct {
	path string
	err  error
}

func (s stubSource) Fetch(ctx context.Context, category string) (string, error) {
	return s.path, s.err
}

func newTestCompositor(t *testing.T, bg, music stubSource) (*Compositor, *[][]string) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Root = t.TempDir()
	cfg.Video.DurationMin = 8
	cfg.Video.DurationMax = 8

	var calls [][]string
	c := &Compositor{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(1)),
		background: bg,
		music:      music,
		effect:     NoEffect{},
		runFFmpeg: func(ctx context.Context, args []string) error {
			calls = append(calls, args)
			return nil
		},
		probe: func(path string) (float64, error) { return 30, nil },
	}
	return c, &calls
}

func TestRenderSilentArgs(t *testing.T) {
	c, calls := newTestCompositor(t, stubSource{path: "bg.mp4"}, stubSource{path: ""})
	out := filepath.Join(t.TempDir(), "reels", "reel_2026-08-28.mp4")

	require.NoError(t, c.Render(context.Background(), "sessizlik bazen en iyi cevaptır", "deep", out))
	require.Len(t, *calls, 1)

	joined := strings.Join((*calls)[0], " ")
	assert.Contains(t, joined, "bg.mp4")
	assert.Contains(t, joined, out)
	assert.Contains(t, joined, "libx264")
	assert.Contains(t, joined, "yuv420p")
	assert.Contains(t, joined, "+faststart")
	assert.Contains(t, joined, "-t 8.0")
	assert.Contains(t, joined, "drawtext")
	assert.Contains(t, joined, "scale=1080:1920")
	assert.Contains(t, joined, "crop=1080:1920")
	// Silent reels carry no audio encoder.
	assert.NotContains(t, joined, "aac")
	// Output dir was created for the encode.
	_, err := os.Stat(filepath.Dir(out))
	assert.NoError(t, err)
}

func TestRenderWithMusicArgs(t *testing.T) {
	c, calls := newTestCompositor(t, stubSource{path: "bg.mp4"}, stubSource{path: "track.mp3"})
	out := filepath.Join(t.TempDir(), "reel.mp4")

	require.NoError(t, c.Render(context.Background(), "kalp unutmaz", "emotional", out))
	require.Len(t, *calls, 1)

	joined := strings.Join((*calls)[0], " ")
	assert.Contains(t, joined, "track.mp3")
	assert.Contains(t, joined, "aac")
	assert.Contains(t, joined, "192k")
	assert.Contains(t, joined, "volume=0.35")
	assert.Contains(t, joined, "atrim")
}

func TestRenderLoopsShortBackground(t *testing.T) {
	c, calls := newTestCompositor(t, stubSource{path: "bg.mp4"}, stubSource{path: ""})
	c.probe = func(path string) (float64, error) { return 3, nil } // shorter than the 8s job
	out := filepath.Join(t.TempDir(), "reel.mp4")

	require.NoError(t, c.Render(context.Background(), "yine de güldük", "sarcastic", out))
	joined := strings.Join((*calls)[0], " ")
	assert.Contains(t, joined, "-stream_loop")
}

func TestRenderImageBackgroundSkipsProbe(t *testing.T) {
	c, calls := newTestCompositor(t, stubSource{path: "still.jpg"}, stubSource{path: ""})
	c.probe = func(path string) (float64, error) {
		t.Fatal("probe must not run for image backgrounds")
		return 0, nil
	}
	out := filepath.Join(t.TempDir(), "reel.mp4")

	require.NoError(t, c.Render(context.Background(), "gökyüzü şahit", "romantic", out))
	joined := strings.Join((*calls)[0], " ")
	assert.Contains(t, joined, "-loop")
	assert.Contains(t, joined, "still.jpg")
}

func TestRenderBackgroundErrorFails(t *testing.T) {
	c, _ := newTestCompositor(t, stubSource{err: errors.New("no providers")}, stubSource{path: ""})
	err := c.Render(context.Background(), "x", "deep", filepath.Join(t.TempDir(), "reel.mp4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background")
}

func TestRenderMusicErrorFallsBackToSilent(t *testing.T) {
	c, calls := newTestCompositor(t, stubSource{path: "bg.mp4"}, stubSource{err: errors.New("jamendo down")})
	require.NoError(t, c.Render(context.Background(), "x", "deep", filepath.Join(t.TempDir(), "reel.mp4")))
	joined := strings.Join((*calls)[0], " ")
	assert.NotContains(t, joined, "aac")
}

func TestRenderRemovesPartialOutputOnFailure(t *testing.T) {
	c, _ := newTestCompositor(t, stubSource{path: "bg.mp4"}, stubSource{path: ""})
	out := filepath.Join(t.TempDir(), "reel.mp4")
	c.runFFmpeg = func(ctx context.Context, args []string) error {
		require.NoError(t, os.WriteFile(out, []byte("truncated"), 0644))
		return errors.New("exit status 1")
	}

	require.Error(t, c.Render(context.Background(), "x", "deep", out))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestSampleDuration(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		d := sampleDuration(rng, 6, 9)
		assert.GreaterOrEqual(t, d, 6.0)
		assert.LessOrEqual(t, d, 9.0)
		// One decimal place.
		assert.InDelta(t, d, float64(int(d*10))/10, 1e-9)
	}
	assert.Equal(t, 7.5, sampleDuration(rng, 7.5, 7.5))
}

func TestZoomExpr(t *testing.T) {
	assert.Equal(t, "1+0.06*on/240", zoomExpr("in", 240))
	assert.Equal(t, "1.06-0.06*on/240", zoomExpr("out", 240))
}

func TestParseProbeDuration(t *testing.T) {
	d, err := parseProbeDuration(`{"format":{"duration":"12.48"}}`)
	require.NoError(t, err)
	assert.InDelta(t, 12.48, d, 1e-9)

	_, err = parseProbeDuration(`{"format":{}}`)
	assert.Error(t, err)

	_, err = parseProbeDuration(`not json`)
	assert.Error(t, err)
}

func TestVerticalAnchor(t *testing.T) {
	assert.Equal(t, "h*0.65-text_h/2", verticalAnchor("lower_third"))
	assert.Equal(t, "(h-text_h)/2", verticalAnchor("center"))
	assert.Equal(t, "(h-text_h)/2", verticalAnchor(""))
}
