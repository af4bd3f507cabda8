package humanize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text_humanizer/internal/llm"
)

func TestLLMHumanizerCleansOutput(t *testing.T) {
	var prompts []string
	gen := llm.Func(func(_ context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "Rewritten version: We will start the the meeting now.\nSecond line", nil
	})
	h := NewLLMHumanizer(gen, nil)

	out, err := h.Humanize(context.Background(), "The meeting shall commence presently.")
	require.NoError(t, err)
	assert.Equal(t, "We will start the meeting now.", out)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Text: The meeting shall commence presently.")
}

func TestLLMHumanizerChunksLongText(t *testing.T) {
	calls := 0
	gen := llm.Func(func(context.Context, string) (string, error) {
		calls++
		return "Short and plain.", nil
	})
	h := NewLLMHumanizer(gen, nil)

	text := strings.Repeat("This sentence is fairly long and keeps going for a while to fill space. ", 30)
	_, err := h.Humanize(context.Background(), text)
	require.NoError(t, err)
	assert.Greater(t, calls, 1)
}

func TestLLMHumanizerUnchangedIsError(t *testing.T) {
	gen := llm.Func(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	h := NewLLMHumanizer(gen, nil)

	_, err := h.Humanize(context.Background(), "Nothing changes here.")
	assert.ErrorIs(t, err, ErrUnchanged)
}

func TestLLMHumanizerWithoutGenerator(t *testing.T) {
	_, err := NewLLMHumanizer(nil, nil).Humanize(context.Background(), "text")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestCleanModelOutput(t *testing.T) {
	assert.Equal(t, "Sure sure the plan", CleanModelOutput("Sure sure: the the plan..."))
	assert.Equal(t, "Fine", CleanModelOutput("Text: Fine"))
}
