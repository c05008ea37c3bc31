package media

import (
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Cache is a flat, grow-only directory of downloaded media files. Files are
// named deterministically per remote item so a re-download of the same id is
// skipped. Nothing here ever deletes.
type Cache struct {
	dir  string
	exts []string
}

func NewCache(dir string, exts ...string) *Cache {
	return &Cache{dir: dir, exts: exts}
}

func (c *Cache) Dir() string { return c.dir }

// Files returns the cached files matching the cache's extensions.
func (c *Cache) Files() []string {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range c.exts {
			if ext == want {
				files = append(files, filepath.Join(c.dir, e.Name()))
				break
			}
		}
	}
	return files
}

// Random picks one cached file uniformly, or "" when the cache is empty.
func (c *Cache) Random(rng *rand.Rand) string {
	files := c.Files()
	if len(files) == 0 {
		return ""
	}
	return files[rng.Intn(len(files))]
}

// PathFor builds the deterministic cache path for a remote item:
// <provider>_<id>_<sanitized-title><ext>.
func (c *Cache) PathFor(provider, id, title, ext string) string {
	name := provider + "_" + id + "_" + safeFilename(title) + ext
	return filepath.Join(c.dir, name)
}

var unsafeChars = regexp.MustCompile(`[^\w.-]`)

// safeFilename reduces a title to filesystem-safe characters, capped at 80.
func safeFilename(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	if len(name) > 80 {
		name = name[:80]
	}
	if name == "" {
		name = "media"
	}
	return name
}
