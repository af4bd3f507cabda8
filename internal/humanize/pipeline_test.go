package humanize

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text_humanizer/internal/lexicon"
	"text_humanizer/internal/register"
	"text_humanizer/internal/similarity"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	g, err := similarity.DefaultGraph()
	require.NoError(t, err)
	sel := NewSelector(register.BuiltinPreferences(), similarity.New(g), rand.New(rand.NewSource(7)))
	return NewPipeline(lexicon.Builtin(), sel, nil)
}

func TestHumanizeCasualGroceries(t *testing.T) {
	p := newTestPipeline(t)
	out := p.Humanize(context.Background(), "I am going to purchase some groceries. Furthermore, I will not be able to return until later.", "casual")

	require.False(t, out.Degraded, out.Reason)
	assert.Contains(t, out.Text, "I'm")
	assert.Contains(t, out.Text, "won't")
	assert.Contains(t, out.Text, "buy")
	assert.Contains(t, out.Text, "groceries")
	assert.NotContains(t, out.Text, "Furthermore")
	assert.Equal(t, 2, out.Sentences)
	assert.Equal(t, "I'm going to buy some groceries. Also, I won't be able to return until later.", out.Text)
}

func TestHumanizeRegisterOverridesTone(t *testing.T) {
	p := newTestPipeline(t)
	out := p.Humanize(context.Background(), "We need to implement the api on the server.", "casual")

	require.False(t, out.Degraded, out.Reason)
	assert.Equal(t, "We have to set up the api on the server.", out.Text)
}

func TestHumanizeOutputHasNoDictionaryKeys(t *testing.T) {
	p := newTestPipeline(t)
	input := "Furthermore, we must utilize the framework in order to facilitate a comprehensive evaluation."
	out := p.Humanize(context.Background(), input, "professional")

	require.False(t, out.Degraded, out.Reason)
	assert.Empty(t, lexicon.Builtin().Matcher().Find(out.Text), out.Text)
	assert.Greater(t, out.Changes, 0)
}

func TestHumanizeFallsBackToRegexSplit(t *testing.T) {
	g, err := similarity.DefaultGraph()
	require.NoError(t, err)
	sel := NewSelector(register.BuiltinPreferences(), similarity.New(g), rand.New(rand.NewSource(7)))
	var warns []string
	p := NewPipeline(lexicon.Builtin(), sel, logFunc(func(level, stage, message, detail string) {
		if level == "WARN" {
			warns = append(warns, message+" | "+detail)
		}
	}))

	out := p.Humanize(context.Background(), "\xff I will purchase it. Furthermore, ok", "casual")

	require.False(t, out.Degraded, out.Reason)
	assert.Equal(t, 2, out.Sentences)
	assert.Greater(t, out.Changes, 0)
	assert.NotContains(t, out.Text, "purchase")
	assert.NotContains(t, out.Text, "Furthermore")
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "sentence split failed, using regex split")
}

func TestHumanizeEmptyInput(t *testing.T) {
	p := newTestPipeline(t)
	out := p.Humanize(context.Background(), "   ", "casual")
	assert.False(t, out.Degraded)
	assert.Equal(t, "   ", out.Text)
}

func TestHumanizeCancelledReturnsOriginal(t *testing.T) {
	p := newTestPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "We will commence shortly."
	out := p.Humanize(ctx, in, "casual")
	assert.True(t, out.Degraded)
	assert.Equal(t, in, out.Text)
	assert.Contains(t, out.Reason, "interrupted")
}

func TestHumanizeFallbackRulesOnUntouchedSentence(t *testing.T) {
	store := lexicon.New(map[string][]string{"zebra": {"horse"}})
	p := NewPipeline(store, nil, nil)

	out := p.Humanize(context.Background(), "we plan to purchase a car", "casual")
	require.False(t, out.Degraded, out.Reason)
	assert.Equal(t, "We plan to buy a car.", out.Text)
	assert.Equal(t, 1, out.Changes)
}

type panicScorer struct{}

func (panicScorer) Similarity(string, string) float64 { panic("scorer exploded") }

func TestHumanizeRecoversFromPanic(t *testing.T) {
	store := lexicon.New(map[string][]string{"purchase": {"buy"}})
	p := NewPipeline(store, NewSelector(nil, panicScorer{}, nil), nil)

	in := "I purchase things."
	out := p.Humanize(context.Background(), in, "casual")
	assert.True(t, out.Degraded)
	assert.Equal(t, in, out.Text)
	assert.Contains(t, out.Reason, "scorer exploded")
}

func TestHumanizeLogsSubstitutions(t *testing.T) {
	var lines []string
	logger := logFunc(func(level, stage, message, detail string) {
		lines = append(lines, level+" "+stage+" "+message+" "+detail)
	})
	g, err := similarity.DefaultGraph()
	require.NoError(t, err)
	p := NewPipeline(lexicon.Builtin(), NewSelector(register.BuiltinPreferences(), similarity.New(g), nil), logger)

	p.Humanize(context.Background(), "Please purchase it.", "casual")
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "DEBUG HUMANIZE substitution purchase -> buy (register)")
}

func TestToneRegister(t *testing.T) {
	assert.Equal(t, register.Casual, toneRegister("Friendly", register.Professional))
	assert.Equal(t, register.Casual, toneRegister("enthusiastic", register.Professional))
	assert.Equal(t, register.Professional, toneRegister("neutral", register.Casual))
	assert.Equal(t, register.Technical, toneRegister("", register.Technical))
}

func TestMechanicalRulesOrdering(t *testing.T) {
	got, n := applyRules("I will not go. It is late and we do not care. I am writing to you.", mechanicalRules)
	assert.Equal(t, "I won't go. It's late and we don't care. I want to you.", got)
	assert.Equal(t, 5, n)
}

type logFunc func(level, stage, message, detail string)

func (f logFunc) Log(level, stage, message, detail string) { f(level, stage, message, detail) }
