package phrases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWholeWords(t *testing.T) {
	m, err := New([]string{"furthermore", "in conclusion", "like"})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Count("Furthermore, we agree. In conclusion... I like it."))
	assert.Equal(t, 0, m.Count("unlike the likely outcome"))
}

func TestContractionsAreWords(t *testing.T) {
	m := MustNew([]string{"it", "he's"})
	assert.Equal(t, 0, m.Count("it's what she's doing"))
	assert.Equal(t, 1, m.Count("he's here"))
}

func TestDeduplicates(t *testing.T) {
	m := MustNew([]string{"Moreover", "moreover", " ", "thus"})
	assert.Equal(t, []string{"moreover", "thus"}, m.Patterns())
	assert.Equal(t, map[string]int{"moreover": 2}, m.Hits("Moreover and moreover."))
}

func TestEmptyMatcher(t *testing.T) {
	m := MustNew(nil)
	assert.Equal(t, 0, m.Count("anything at all"))
}

func TestFindPrefersLongestAtEachStart(t *testing.T) {
	m := MustNew([]string{"prior", "prior to"})
	text := "Prior  to lunch, prior plans"
	spans := m.Find(text)
	require.Len(t, spans, 2)
	assert.Equal(t, "Prior  to", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "prior to", spans[0].Pattern)
	assert.Equal(t, "prior", text[spans[1].Start:spans[1].End])
}

func TestFindSkipsOverlapsAndPartialWords(t *testing.T) {
	m := MustNew([]string{"due to", "to the fact", "fact"})
	spans := m.Find("due to the fact, factual")
	require.Len(t, spans, 2)
	assert.Equal(t, "due to", spans[0].Pattern)
	assert.Equal(t, "fact", spans[1].Pattern)
	assert.False(t, m.Contains("factual"))
	assert.True(t, m.Contains("a FACT"))
}
