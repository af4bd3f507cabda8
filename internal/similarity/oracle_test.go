package similarity

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOracle(t *testing.T) *Oracle {
	t.Helper()
	g, err := DefaultGraph()
	require.NoError(t, err)
	return New(g)
}

func TestIdenticalWordsScoreOne(t *testing.T) {
	for _, o := range []*Oracle{New(nil), defaultOracle(t)} {
		assert.Equal(t, 1.0, o.Similarity("Purchase", "purchase"), o.Mode())
		assert.Equal(t, 1.0, o.Similarity("zzz", "ZZZ"), o.Mode())
	}
}

func TestSymmetricAndBounded(t *testing.T) {
	pairs := [][2]string{
		{"buy", "get"}, {"purchase", "acquire"}, {"problems", "issues"},
		{"banana", "start"}, {"give", "show"}, {"quickly", "xylophone"},
	}
	for _, o := range []*Oracle{New(nil), defaultOracle(t)} {
		for _, p := range pairs {
			ab := o.Similarity(p[0], p[1])
			ba := o.Similarity(p[1], p[0])
			assert.Equal(t, ab, ba, "%s %v", o.Mode(), p)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}

func TestGraphPathSimilarity(t *testing.T) {
	o := defaultOracle(t)
	assert.Equal(t, 1.0, o.Similarity("buy", "purchase"))
	assert.InDelta(t, 0.5, o.Similarity("buy", "get"), 1e-9)
	assert.InDelta(t, 1.0/3.0, o.Similarity("buy", "act"), 1e-9)
}

func TestGraphUnknownWordGetsFloor(t *testing.T) {
	o := defaultOracle(t)
	assert.Equal(t, FloorScore, o.Similarity("buy", "qwertyuiop"))
}

func TestGraphStemFallback(t *testing.T) {
	o := defaultOracle(t)
	assert.Equal(t, 1.0, o.Similarity("purchased", "buy"))
}

func TestDisconnectedSensesScoreZero(t *testing.T) {
	g, err := ParseGraphYAML([]byte("synsets:\n  - id: a\n    words: [alpha]\n  - id: b\n    words: [beta]\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, New(g).Similarity("alpha", "beta"))
}

func TestJaccardMode(t *testing.T) {
	o := New(nil)
	assert.False(t, o.HasGraph())
	assert.InDelta(t, 0.5, o.Similarity("abc", "abd"), 1e-9)
	assert.Equal(t, 0.0, o.Similarity("abc", "xyz"))
	assert.InDelta(t, 0.5, Jaccard("ABC", "abd"), 1e-9)
}

func TestNilNetworkSelectsJaccard(t *testing.T) {
	var n *Network
	assert.False(t, New(n).HasGraph())
}

func TestCacheSharedAcrossOrder(t *testing.T) {
	o := defaultOracle(t)
	o.Similarity("buy", "get")
	o.Similarity("get", "buy")
	o.Similarity("buy", "buy")
	assert.Equal(t, 1, o.CacheSize())
}

func TestConcurrentLookups(t *testing.T) {
	o := defaultOracle(t)
	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = o.Similarity("problems", "hurdles")
			} else {
				results[i] = o.Similarity("hurdles", "problems")
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	assert.Equal(t, 1, o.CacheSize())
}

func TestParseGraphRejectsUnknownHypernym(t *testing.T) {
	_, err := ParseGraphYAML([]byte("synsets:\n  - id: a\n    words: [alpha]\n    hypernym: missing\n"))
	assert.Error(t, err)
}

func TestLoadGraphYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	body := "synsets:\n  - id: root\n    words: [thing]\n  - id: leaf\n    words: [gadget, widget]\n    hypernym: root\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	g, err := LoadGraphYAML(path)
	require.NoError(t, err)
	o := New(g)
	assert.Equal(t, 1.0, o.Similarity("gadget", "widget"))
	assert.InDelta(t, 0.5, o.Similarity("gadget", "thing"), 1e-9)

	_, err = LoadGraphYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
