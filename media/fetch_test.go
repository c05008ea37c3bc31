package media

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelforge/config"
	"reelforge/types"
)

type stubProvider struct {
	name       string
	candidates []types.MediaCandidate
	err        error
}

func (s *stubProvider) Name() string { return s.name }
func (s *stubProvider) Search(ctx context.Context, query string) ([]types.MediaCandidate, error) {
	return s.candidates, s.err
}

func newTestVideoFetcher(t *testing.T, providers ...Provider) *VideoFetcher {
	t.Helper()
	cfg := config.Default()
	cacheDir := filepath.Join(t.TempDir(), "cache")
	manualDir := filepath.Join(t.TempDir(), "manual")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))
	require.NoError(t, os.MkdirAll(manualDir, 0755))
	return &VideoFetcher{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(1)),
		providers: providers,
		cache:     NewCache(cacheDir, ".mp4", ".mov", ".webm"),
		manual:    NewCache(manualDir, ".mp4", ".jpg"),
	}
}

func TestFetchExhaustionIsAnError(t *testing.T) {
	f := newTestVideoFetcher(t, &stubProvider{name: "pexels"})

	_, err := f.Fetch(context.Background(), "emotional")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no background video available")
}

func TestFetchDownloadsFirstAcceptableCandidate(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("fake video bytes"))
	}))
	defer srv.Close()

	f := newTestVideoFetcher(t, &stubProvider{
		name: "pexels",
		candidates: []types.MediaCandidate{
			{Provider: "pexels", ID: "123", Title: "night city", Duration: 12, URL: srv.URL + "/v.mp4"},
		},
	})

	path, err := f.Fetch(context.Background(), "emotional")
	require.NoError(t, err)
	assert.Equal(t, "pexels_123_night_city.mp4", filepath.Base(path))
	assert.FileExists(t, path)

	// Same remote id again: the existence check must skip the network.
	path2, err := f.Fetch(context.Background(), "emotional")
	require.NoError(t, err)
	assert.Equal(t, path, path2)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchRelaxedPassIgnoresDurationFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	// Only candidate is far above the acceptable duration range; the relaxed
	// second pass takes it anyway.
	f := newTestVideoFetcher(t, &stubProvider{
		name: "pexels",
		candidates: []types.MediaCandidate{
			{Provider: "pexels", ID: "9", Title: "long clip", Duration: 300, URL: srv.URL + "/long.mp4"},
		},
	})

	path, err := f.Fetch(context.Background(), "deep")
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "pexels_9_")
}

func TestFetchFallsBackToSecondProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	f := newTestVideoFetcher(t,
		&stubProvider{name: "pexels", err: fmt.Errorf("HTTP 500 from Pexels")},
		&stubProvider{
			name: "pixabay",
			candidates: []types.MediaCandidate{
				{Provider: "pixabay", ID: "42", Title: "rain", Duration: 10, URL: srv.URL + "/r.mp4"},
			},
		},
	)

	path, err := f.Fetch(context.Background(), "emotional")
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "pixabay_42_")
}

func TestFetchUsesManualAssetsWhenProvidersFail(t *testing.T) {
	f := newTestVideoFetcher(t, &stubProvider{name: "pexels"})
	manualFile := filepath.Join(f.manual.Dir(), "sunset.mp4")
	require.NoError(t, os.WriteFile(manualFile, []byte("x"), 0644))

	path, err := f.Fetch(context.Background(), "romantic")
	require.NoError(t, err)
	assert.Equal(t, manualFile, path)
}

func TestFetchReturnsCachedFileWhenCachePopulated(t *testing.T) {
	f := newTestVideoFetcher(t, &stubProvider{name: "pexels"})
	for i := 0; i < 5; i++ {
		name := filepath.Join(f.cache.Dir(), fmt.Sprintf("pexels_%d_old.mp4", i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0644))
	}

	// Whether the probabilistic reuse branch or the final cache fallback
	// fires, the result must come from the cache.
	path, err := f.Fetch(context.Background(), "emotional")
	require.NoError(t, err)
	assert.Equal(t, f.cache.Dir(), filepath.Dir(path))
}

func newTestMusicFetcher(t *testing.T) *MusicFetcher {
	t.Helper()
	cacheDir := filepath.Join(t.TempDir(), "music")
	manualDir := filepath.Join(t.TempDir(), "assets-music")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))
	require.NoError(t, os.MkdirAll(manualDir, 0755))
	return &MusicFetcher{
		cfg:      config.Default(),
		rng:      rand.New(rand.NewSource(1)),
		provider: &stubProvider{name: "jamendo"},
		cache:    NewCache(cacheDir, ".mp3"),
		manual:   NewCache(manualDir, ".mp3", ".wav", ".m4a"),
	}
}

func TestMusicFetchSilentOnTotalExhaustion(t *testing.T) {
	f := newTestMusicFetcher(t)

	path, err := f.Fetch(context.Background(), "emotional")
	assert.NoError(t, err, "missing music is not an error")
	assert.Empty(t, path)
}

func TestMusicFetchUsesFallbackURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3 bytes"))
	}))
	defer srv.Close()

	f := newTestMusicFetcher(t)
	f.fallbackURLs = []string{srv.URL + "/song.mp3"}

	path, err := f.Fetch(context.Background(), "deep")
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "fallback_"))
	assert.FileExists(t, path)
}

func TestMusicFetchUsesManualAssetsWhenProvidersFail(t *testing.T) {
	f := newTestMusicFetcher(t)
	manualFile := filepath.Join(f.manual.Dir(), "piano.mp3")
	require.NoError(t, os.WriteFile(manualFile, []byte("x"), 0644))

	path, err := f.Fetch(context.Background(), "emotional")
	require.NoError(t, err)
	assert.Equal(t, manualFile, path)
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "night_city", safeFilename("night city"))
	assert.Equal(t, "a_b_c.mp4", safeFilename("a/b:c.mp4"))
	assert.Equal(t, "media", safeFilename(""))
	long := strings.Repeat("x", 200)
	assert.Len(t, safeFilename(long), 80)
}

func TestDownloadFileWritesPartThenRenames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out.mp4")
	require.NoError(t, downloadFile(context.Background(), srv.URL, dest))
	assert.FileExists(t, dest)
	assert.NoFileExists(t, dest+".part")

	data, _ := os.ReadFile(dest)
	assert.Equal(t, "payload", string(data))
}

func TestDownloadFileRejectsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out.mp4")
	err := downloadFile(context.Background(), srv.URL, dest)
	require.Error(t, err)
	assert.NoFileExists(t, dest)
}
