// Package similarity scores how close two words are in meaning.
//
// With a synset graph the score is the best path similarity between any pair of senses. Without
// one it degrades to the Jaccard overlap of the words' character sets. Scores are memoised per
// unordered pair for the life of the Oracle.
package similarity

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FloorScore is returned when either word is unknown to the graph.
const FloorScore = 0.1

type Graph interface {
	Synsets(word string) []string
	PathLength(a, b string) (int, bool)
}

type Oracle struct {
	graph Graph

	mu    sync.RWMutex
	cache map[string]float64
	group singleflight.Group
}

// New builds an oracle over g. A nil g selects the character-overlap mode.
func New(g Graph) *Oracle {
	if n, ok := g.(*Network); ok && n == nil {
		g = nil
	}
	return &Oracle{graph: g, cache: map[string]float64{}}
}

func (o *Oracle) HasGraph() bool {
	return o.graph != nil
}

func (o *Oracle) Mode() string {
	if o.graph == nil {
		return "jaccard"
	}
	return "graph"
}

func (o *Oracle) CacheSize() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.cache)
}

func (o *Oracle) Similarity(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)
	if a == b {
		return 1.0
	}
	key := pairKey(a, b)

	o.mu.RLock()
	v, ok := o.cache[key]
	o.mu.RUnlock()
	if ok {
		return v
	}

	res, _, _ := o.group.Do(key, func() (any, error) {
		var score float64
		if o.graph == nil {
			score = Jaccard(a, b)
		} else {
			score = o.pathScore(a, b)
		}
		o.mu.Lock()
		o.cache[key] = score
		o.mu.Unlock()
		return score, nil
	})
	return res.(float64)
}

func (o *Oracle) pathScore(a, b string) float64 {
	sa := o.graph.Synsets(a)
	sb := o.graph.Synsets(b)
	if len(sa) == 0 || len(sb) == 0 {
		return FloorScore
	}
	best := 0.0
	for _, x := range sa {
		for _, y := range sb {
			d, ok := o.graph.PathLength(x, y)
			if !ok {
				continue
			}
			if s := 1.0 / float64(1+d); s > best {
				best = s
			}
		}
	}
	return best
}

// Jaccard is |A∩B| / |A∪B| over the distinct non-space runes of the lowercased words.
func Jaccard(a, b string) float64 {
	sa := runeSet(strings.ToLower(a))
	sb := runeSet(strings.ToLower(b))
	union := len(sa)
	inter := 0
	for r := range sb {
		if _, ok := sa[r]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func runeSet(s string) map[rune]struct{} {
	out := make(map[rune]struct{}, len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		out[r] = struct{}{}
	}
	return out
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
