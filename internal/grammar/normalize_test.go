package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgreement(t *testing.T) {
	cases := map[string]string{
		"I is ready":         "I am ready",
		"i has a plan":       "I have a plan",
		"Then you is late":   "Then you are late",
		"He are here":        "He is here",
		"and it have failed": "And it has failed",
		"They is gone":       "They are gone",
		"we has time":        "We have time",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestArticles(t *testing.T) {
	assert.Equal(t, "An apple and an orange", Normalize("A apple and a orange"))
	assert.Equal(t, "A pear and a banana", Normalize("An pear and an banana"))
	assert.Equal(t, "An 8 is fine", Normalize("An 8 is fine"))
}

func TestConfusables(t *testing.T) {
	assert.Equal(t, "There is a cat", Normalize("Their is a cat"))
	assert.Equal(t, "I think you are right", Normalize("I think your is right"))
	assert.Equal(t, "So it's the end", Normalize("So its the end"))
	assert.Equal(t, "You're going home", Normalize("Your going home"))
	assert.Equal(t, "Now they're not here", Normalize("Now their not here"))
	assert.Equal(t, "Ask who's coming", Normalize("Ask whose coming"))
	assert.Equal(t, "Their house is big", Normalize("Their house is big"))
}

func TestPunctuation(t *testing.T) {
	assert.Equal(t, "Wait. Really? Yes!", Normalize("Wait.... Really?? Yes!!!"))
	assert.Equal(t, "One, two; three: four.", Normalize("One ,, two ;three :four ."))
	assert.Equal(t, "(see this) - okay", Normalize("( see this ) -   okay"))
}

func TestCapitalization(t *testing.T) {
	assert.Equal(t, "First. Second! Third? Fourth", Normalize("first. second! third? fourth"))
	assert.Equal(t, "  Indented", Normalize("  indented"))
}

func TestKnownFalsePositives(t *testing.T) {
	assert.Equal(t, "It took a hour", Normalize("It took an hour"))
	assert.Equal(t, "Ask an user", Normalize("Ask a user"))
	assert.Equal(t, "We met e. G. At noon", Normalize("We met e.g. at noon"))
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "  ", Normalize("  "))
}
