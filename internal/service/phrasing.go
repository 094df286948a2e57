package service

import (
	"math/rand"
	"sync"

	"github.com/epidemiccare-server/internal/domain"
)

// PhrasingSelector picks one phrasing for a prompt from its candidate
// list (canonical phrasing first). Selectors must return the same choice
// for repeated calls with the same step key within a session so that
// re-rendering a step never changes the pending prompt text.
type PhrasingSelector func(key domain.StepKey, candidates []string) string

// CanonicalPhrasing always selects the canonical phrasing. It is the
// default selector.
func CanonicalPhrasing(_ domain.StepKey, candidates []string) string {
	return candidates[0]
}

// SeededPhrasing returns a selector that picks a random phrasing per
// step from the given seed. Choices are memoized per step key, so the
// selector stays stable across re-renders of the same step.
func SeededPhrasing(seed int64) PhrasingSelector {
	rng := rand.New(rand.NewSource(seed))
	var mu sync.Mutex
	chosen := make(map[domain.StepKey]int)

	return func(key domain.StepKey, candidates []string) string {
		mu.Lock()
		defer mu.Unlock()
		idx, ok := chosen[key]
		if !ok || idx >= len(candidates) {
			idx = rng.Intn(len(candidates))
			chosen[key] = idx
		}
		return candidates[idx]
	}
}
