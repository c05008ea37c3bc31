package content

import (
	"math/rand"
	"strings"

	"reelforge/config"
	"reelforge/types"
)

// Selector draws one sentence per run from the static pools, weighted by the
// configured category distribution.
type Selector struct {
	dist []config.CategoryWeight
	rng  *rand.Rand
}

// NewSelector creates a Selector. The random source is passed explicitly so
// runs can be reproduced in tests.
func NewSelector(dist []config.CategoryWeight, rng *rand.Rand) *Selector {
	return &Selector{dist: dist, rng: rng}
}

// Pick draws a category by cumulative weight, then one line from that
// category's pool. Weights need not sum exactly to 1: if the draw falls past
// the accumulated total, the last declared category wins.
func (s *Selector) Pick() types.ContentItem {
	category := s.pickCategory()
	pool, ok := sentencePools[category]
	if !ok || len(pool) == 0 {
		pool = sentencePools[defaultCategory]
	}
	sentence := strings.TrimSpace(pool[s.rng.Intn(len(pool))])
	return types.ContentItem{Sentence: sentence, Category: category}
}

func (s *Selector) pickCategory() string {
	if len(s.dist) == 0 {
		return defaultCategory
	}
	r := s.rng.Float64()
	cumul := 0.0
	for _, cw := range s.dist {
		cumul += cw.Weight
		if r <= cumul {
			return cw.Category
		}
	}
	return s.dist[len(s.dist)-1].Category
}

// Categories returns the category names present in the pools.
func Categories() []string {
	names := make([]string, 0, len(sentencePools))
	for name := range sentencePools {
		names = append(names, name)
	}
	return names
}
