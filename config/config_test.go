package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project:
  timezone: UTC
video:
  duration_min: 10
  duration_max: 12
content:
  distribution:
    - category: deep
      weight: 1.0
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden keys.
	assert.Equal(t, "UTC", cfg.Project.Timezone)
	assert.Equal(t, 10.0, cfg.Video.DurationMin)
	assert.Equal(t, 12.0, cfg.Video.DurationMax)
	require.Len(t, cfg.Content.Distribution, 1)
	assert.Equal(t, "deep", cfg.Content.Distribution[0].Category)

	// Untouched keys keep their defaults.
	assert.Equal(t, 1080, cfg.Video.Width)
	assert.Equal(t, "21:00", cfg.Posting.TimeStart)
	assert.Equal(t, 0.35, cfg.Video.MusicVolume)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("video: [not a map"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDistributionOrderPreserved(t *testing.T) {
	cfg := Default()
	var cats []string
	for _, cw := range cfg.Content.Distribution {
		cats = append(cats, cw.Category)
	}
	assert.Equal(t, []string{"emotional", "sarcastic", "deep", "romantic"}, cats)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := Default()
	cfg.Project.Timezone = "Mars/Olympus"
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Project.Timezone = "Europe/Istanbul"
	assert.Equal(t, "Europe/Istanbul", cfg.Location().String())
}

func TestPathJoinsRoot(t *testing.T) {
	cfg := Default()
	cfg.Paths.Root = "/srv/reels"
	assert.Equal(t, filepath.Join("/srv/reels", "output/reels"), cfg.Path("output/reels"))

	cfg.Paths.Root = ""
	assert.Equal(t, "logs", cfg.Path("logs"))
}
