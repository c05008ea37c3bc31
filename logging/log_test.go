package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAppendsLeveledLines(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir)
	require.NoError(t, err)
	defer l.Close()

	l.Start("abc12345")
	l.Error("boom: %s", "details")
	l.Skip("already run today: reel_2024-01-01.mp4")
	l.Success("output/reels/reel_2024-01-01.mp4", "output/captions/caption_2024-01-01.txt")

	data, err := os.ReadFile(filepath.Join(dir, "daily.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "[INFO] Pipeline started | run=abc12345")
	assert.Contains(t, lines[1], "[ERROR] boom: details")
	assert.Contains(t, lines[2], "[INFO] SKIP | already run today")
	assert.Contains(t, lines[3], "[INFO] SUCCESS | video=")
}

func TestNewReopensForAppend(t *testing.T) {
	dir := t.TempDir()

	l1, err := New(dir)
	require.NoError(t, err)
	l1.Info("first")
	require.NoError(t, l1.Close())

	l2, err := New(dir)
	require.NoError(t, err)
	l2.Info("second")
	require.NoError(t, l2.Close())

	data, err := os.ReadFile(filepath.Join(dir, "daily.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}
