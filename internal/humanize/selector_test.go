package humanize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"text_humanizer/internal/register"
)

type tableScorer map[[2]string]float64

func (t tableScorer) Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if v, ok := t[[2]string{a, b}]; ok {
		return v
	}
	return t[[2]string{b, a}]
}

func TestSelectPrefersRegisterTable(t *testing.T) {
	sel := NewSelector(register.BuiltinPreferences(), tableScorer{}, nil)
	got, tier := sel.Select("purchase", []string{"acquire", "buy", "get"}, nil, "", register.Casual)
	assert.Equal(t, "buy", got)
	assert.Equal(t, TierRegister, tier)
}

func TestSelectClassifiesWhenRegisterEmpty(t *testing.T) {
	sel := NewSelector(register.BuiltinPreferences(), tableScorer{}, nil)
	got, tier := sel.Select("implement", []string{"set up", "deploy"}, nil, "the server api code", "")
	assert.Equal(t, "deploy", got)
	assert.Equal(t, TierRegister, tier)
}

func TestSelectScoresBySimilarity(t *testing.T) {
	scores := tableScorer{
		{"utilize", "use"}:    0.9,
		{"utilize", "employ"}: 0.6,
		{"use", "tools"}:      0.1,
		{"employ", "tools"}:   0.9,
	}
	sel := NewSelector(nil, scores, nil)

	got, tier := sel.Select("utilize", []string{"employ", "use"}, nil, "", register.Professional)
	assert.Equal(t, "use", got)
	assert.Equal(t, TierSimilarity, tier)

	// 0.7*0.6 + 0.3*0.9 = 0.69 beats 0.7*0.9 + 0.3*0.1 = 0.66
	got, _ = sel.Select("utilize", []string{"employ", "use"}, []string{"tools"}, "", register.Professional)
	assert.Equal(t, "employ", got)
}

func TestSelectTiesKeepInputOrder(t *testing.T) {
	scores := tableScorer{{"assist", "help"}: 0.8, {"assist", "aid"}: 0.8}
	sel := NewSelector(nil, scores, nil)
	got, _ := sel.Select("assist", []string{"aid", "help"}, nil, "", register.Professional)
	assert.Equal(t, "aid", got)
}

func TestSelectFallsBackToRandomBelowThreshold(t *testing.T) {
	scores := tableScorer{{"assist", "help"}: 0.4, {"assist", "aid"}: 0.2}
	sel := NewSelector(nil, scores, rand.New(rand.NewSource(42)))

	cands := []string{"help", "aid"}
	for range 20 {
		got, tier := sel.Select("assist", cands, nil, "", register.Professional)
		assert.Contains(t, cands, got)
		assert.Equal(t, TierRandom, tier)
	}
}

func TestSelectWithoutScorerIsRandom(t *testing.T) {
	sel := NewSelector(nil, nil, nil)
	got, tier := sel.Select("assist", []string{"help"}, nil, "", register.Professional)
	assert.Equal(t, "help", got)
	assert.Equal(t, TierRandom, tier)
}

func TestSelectNoCandidates(t *testing.T) {
	sel := NewSelector(nil, nil, nil)
	got, tier := sel.Select("assist", nil, nil, "", register.Professional)
	assert.Equal(t, "assist", got)
	assert.Equal(t, TierNone, tier)
}

func TestContextWords(t *testing.T) {
	s := "Finance quarterly budget purchase servers laptops monitors today"
	start := len("Finance quarterly budget ")
	end := start + len("purchase")
	assert.Equal(t, []string{"finance", "quarterly", "budget", "servers", "laptops", "monitors"}, ContextWords(s, start, end))

	s = "the ox purchase an antelope"
	start = len("the ox ")
	assert.Equal(t, []string{"antelope"}, ContextWords(s, start, start+len("purchase")))
}
