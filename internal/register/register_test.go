package register

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDefaultsToProfessional(t *testing.T) {
	r, matched := Vote("zzz qqq")
	assert.Equal(t, Professional, r)
	assert.False(t, matched)
	assert.Equal(t, Professional, Classify(""))
}

func TestClassifyPicksHighestCount(t *testing.T) {
	text := "Our research study reviews the literature, data and findings of the survey."
	assert.Equal(t, Academic, Classify(text))

	assert.Equal(t, Technical, Classify("The server exposes an api backed by a database and a module loader."))
	assert.Equal(t, Casual, Classify("Hey folks, thanks for the awesome chat!"))
}

func TestClassifyTieBreaksByPriority(t *testing.T) {
	// "client" is both a professional and a technical indicator.
	assert.Equal(t, Professional, Classify("client"))
	// one casual hit ("hello") against one technical hit ("code")
	assert.Equal(t, Casual, Classify("hello code"))
}

func TestCountsUseSubstrings(t *testing.T) {
	counts := Counts("this")
	assert.Equal(t, 1, counts[Casual], "hi matches inside this")
}

func TestPickReturnsFirstPreferencePresent(t *testing.T) {
	p := BuiltinPreferences()

	got, ok := p.Pick(Technical, "implement", []string{"put in place", "set up", "deploy"})
	require.True(t, ok)
	assert.Equal(t, "deploy", got)

	got, ok = p.Pick(Technical, "Implement", []string{"put in place", "set up"})
	require.True(t, ok)
	assert.Equal(t, "set up", got)

	_, ok = p.Pick(Casual, "implement", []string{"carry out"})
	assert.False(t, ok)

	_, ok = p.Pick(Casual, "unknownword", []string{"x"})
	assert.False(t, ok)
}

func TestLoadPreferencesYAMLOverlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("technical:\n  implement: [ship]\n  utilize: [use]\n"), 0o644))

	p, err := LoadPreferencesYAML(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ship"}, p.Preferred(Technical, "implement"))
	assert.Equal(t, []string{"use"}, p.Preferred(Technical, "utilize"))
	assert.Equal(t, []string{"buy", "get", "pick up"}, p.Preferred(Casual, "purchase"))
}

func TestLoadPreferencesYAMLRejectsUnknownRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("poetic:\n  implement: [weave]\n"), 0o644))

	_, err := LoadPreferencesYAML(path)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	r, err := Parse(" Technical ")
	require.NoError(t, err)
	assert.Equal(t, Technical, r)

	_, err = Parse("slang")
	assert.Error(t, err)
}
