package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Project   ProjectConfig   `yaml:"project"`
	Paths     PathsConfig     `yaml:"paths"`
	Content   ContentConfig   `yaml:"content"`
	Download  DownloadConfig  `yaml:"download"`
	Video     VideoConfig     `yaml:"video"`
	Posting   PostingConfig   `yaml:"posting"`
	Instagram InstagramConfig `yaml:"instagram"`
}

type ProjectConfig struct {
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

type PathsConfig struct {
	Root              string `yaml:"root"`
	CacheVideos       string `yaml:"cache_videos"`
	CacheMusic        string `yaml:"cache_music"`
	AssetsBackgrounds string `yaml:"assets_backgrounds"`
	AssetsMusic       string `yaml:"assets_music"`
	AssetsFonts       string `yaml:"assets_fonts"`
	OutputReels       string `yaml:"output_reels"`
	CaptionsDir       string `yaml:"captions_dir"`
	LogsDir           string `yaml:"logs_dir"`
}

// CategoryWeight is one entry of the content distribution. The distribution
// is an ordered list, not a map: the cumulative draw walks it in declared
// order and the last entry catches floating-point underflow.
type CategoryWeight struct {
	Category string  `yaml:"category"`
	Weight   float64 `yaml:"weight"`
}

type ContentConfig struct {
	Distribution []CategoryWeight `yaml:"distribution"`
}

type DownloadConfig struct {
	VideoKeywords     map[string][]string `yaml:"video_keywords"`   // per mood category
	GenericKeywords   []string            `yaml:"generic_keywords"` // used when no category given
	MusicKeywords     map[string][]string `yaml:"music_keywords"`
	VideoMinDuration  float64             `yaml:"video_min_duration"`
	VideoMaxDuration  float64             `yaml:"video_max_duration"`
	PerPage           int                 `yaml:"per_page"`
	FallbackMusicURLs []string            `yaml:"fallback_music_urls"`
}

type TextConfig struct {
	FontSize    int     `yaml:"font_size"`
	FontColor   string  `yaml:"font_color"`
	StrokeColor string  `yaml:"stroke_color"`
	StrokeWidth int     `yaml:"stroke_width"`
	Position    string  `yaml:"position"` // center | lower_third
	FadeIn      float64 `yaml:"fade_in_duration"`
}

type BackdropConfig struct {
	Enabled bool    `yaml:"enabled"`
	Color   string  `yaml:"color"`
	Opacity float64 `yaml:"opacity"`
	Padding int     `yaml:"padding"`
}

type VideoConfig struct {
	Width       int            `yaml:"width"`
	Height      int            `yaml:"height"`
	FPS         int            `yaml:"fps"`
	DurationMin float64        `yaml:"duration_min"`
	DurationMax float64        `yaml:"duration_max"`
	MusicVolume float64        `yaml:"music_volume"`
	Text        TextConfig     `yaml:"text"`
	Backdrop    BackdropConfig `yaml:"backdrop"`
}

type PostingConfig struct {
	TimeStart string `yaml:"time_start"` // "HH:MM"
	TimeEnd   string `yaml:"time_end"`
}

type InstagramConfig struct {
	Headless       bool `yaml:"headless"`
	SlowMoMS       int  `yaml:"slow_mo"`
	UploadTimeoutS int  `yaml:"upload_timeout"`
}

// Default returns a fully usable configuration. Load unmarshals on top of it,
// so a config file only needs the keys it wants to change.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:     "reelforge",
			Timezone: "Europe/Istanbul",
		},
		Paths: PathsConfig{
			Root:              ".",
			CacheVideos:       "assets/cache/videos",
			CacheMusic:        "assets/cache/music",
			AssetsBackgrounds: "assets/backgrounds",
			AssetsMusic:       "assets/music",
			AssetsFonts:       "assets/fonts",
			OutputReels:       "output/reels",
			CaptionsDir:       "output/captions",
			LogsDir:           "logs",
		},
		Content: ContentConfig{
			Distribution: []CategoryWeight{
				{Category: "emotional", Weight: 0.40},
				{Category: "sarcastic", Weight: 0.30},
				{Category: "deep", Weight: 0.20},
				{Category: "romantic", Weight: 0.10},
			},
		},
		Download: DownloadConfig{
			VideoKeywords: map[string][]string{
				"emotional": {"night city", "rain window", "lonely street"},
				"sarcastic": {"city traffic", "crowd timelapse", "neon street"},
				"deep":      {"stars timelapse", "ocean waves", "fog mountains"},
				"romantic":  {"sunset sky", "city lights bokeh", "slow waves"},
			},
			GenericKeywords:  []string{"night city", "rain", "cinematic"},
			MusicKeywords:    map[string][]string{"emotional": {"emotional piano", "sad cinematic"}, "sarcastic": {"lofi chill"}, "deep": {"ambient cinematic"}, "romantic": {"romantic piano"}},
			VideoMinDuration: 5,
			VideoMaxDuration: 30,
			PerPage:          20,
			FallbackMusicURLs: []string{
				"https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
				"https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
				"https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3",
			},
		},
		Video: VideoConfig{
			Width:       1080,
			Height:      1920,
			FPS:         30,
			DurationMin: 6,
			DurationMax: 9,
			MusicVolume: 0.35,
			Text: TextConfig{
				FontSize:    72,
				FontColor:   "#FFFFFF",
				StrokeColor: "#000000",
				StrokeWidth: 2,
				Position:    "center",
				FadeIn:      0.8,
			},
			Backdrop: BackdropConfig{
				Enabled: true,
				Color:   "#101010",
				Opacity: 0.85,
				Padding: 28,
			},
		},
		Posting: PostingConfig{
			TimeStart: "21:00",
			TimeEnd:   "23:00",
		},
		Instagram: InstagramConfig{
			Headless:       false,
			SlowMoMS:       100,
			UploadTimeoutS: 120,
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Project.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Path joins a configured relative path onto the project root.
func (c *Config) Path(rel string) string {
	root := c.Paths.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, rel)
}
