package content

import (
	"math/rand"

	"github.com/samber/lo"

	"reelforge/types"
)

// CaptionWriter produces the caption/hashtag bundle accompanying one reel.
type CaptionWriter struct {
	rng *rand.Rand
}

func NewCaptionWriter(rng *rand.Rand) *CaptionWriter {
	return &CaptionWriter{rng: rng}
}

// Bundle picks 1-2 caption lines and 10-15 unique hashtags. The caption pool
// is disjoint from the sentence pools, so the post text never duplicates the
// on-video sentence.
func (w *CaptionWriter) Bundle() types.CaptionBundle {
	lineCount := 1 + w.rng.Intn(2)
	lines := w.sample(captionLines, lineCount)

	tagCount := 10 + w.rng.Intn(6) // 10..15
	tags := lo.Map(w.sample(hashtagPool, tagCount), func(t string, _ int) string {
		return "#" + t
	})
	return types.CaptionBundle{Lines: lines, Hashtags: lo.Uniq(tags)}
}

// sample picks n distinct entries from pool, capped at the pool size.
func (w *CaptionWriter) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, idx := range w.rng.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}
