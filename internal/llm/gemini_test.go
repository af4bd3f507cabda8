package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiWithoutKeyIsUnavailable(t *testing.T) {
	g, err := NewGemini(context.Background(), "  ", "")
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFuncAdapter(t *testing.T) {
	var gen Generator = Func(func(_ context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})
	out, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
}
