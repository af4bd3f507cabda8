package humanize

import (
	"math/rand"
	"strings"
	"sync"

	"text_humanizer/internal/register"
)

// Tier names the rule that chose a replacement.
type Tier string

const (
	TierNone       Tier = "none"
	TierRegister   Tier = "register"
	TierSimilarity Tier = "similarity"
	TierRandom     Tier = "random"
)

const (
	sourceWeight    = 0.7
	contextWeight   = 0.3
	acceptThreshold = 0.3
	contextSample   = 5
)

type Scorer interface {
	Similarity(a, b string) float64
}

type Selector struct {
	prefs *register.Preferences
	sim   Scorer

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector(prefs *register.Preferences, sim Scorer, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Selector{prefs: prefs, sim: sim, rng: rng}
}

// Select picks one of candidates to stand in for source. An empty reg is classified from
// fullText.
func (s *Selector) Select(source string, candidates, contextWords []string, fullText string, reg register.Register) (string, Tier) {
	if len(candidates) == 0 {
		return source, TierNone
	}
	if reg == "" {
		reg = register.Classify(fullText)
	}
	if pick, ok := s.prefs.Pick(reg, source, candidates); ok {
		return pick, TierRegister
	}

	if s.sim != nil {
		ctx := contextWords
		if len(ctx) > contextSample {
			ctx = ctx[:contextSample]
		}
		best, bestScore := "", -1.0
		for _, cand := range candidates {
			score := sourceWeight * s.sim.Similarity(strings.ToLower(source), strings.ToLower(cand))
			if len(ctx) > 0 {
				total := 0.0
				for _, w := range ctx {
					total += s.sim.Similarity(strings.ToLower(cand), w)
				}
				score += contextWeight * total / float64(len(ctx))
			}
			if score > bestScore {
				best, bestScore = cand, score
			}
		}
		if bestScore > acceptThreshold {
			return best, TierSimilarity
		}
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(candidates))
	s.mu.Unlock()
	return candidates[idx], TierRandom
}
