package humanize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"text_humanizer/internal/chunk"
	"text_humanizer/internal/llm"
	"text_humanizer/internal/prompts"
)

const llmChunkChars = 1000

var ErrUnchanged = errors.New("humanize: model returned the text unchanged")

type LLMHumanizer struct {
	gen    llm.Generator
	logger Logger
}

func NewLLMHumanizer(gen llm.Generator, logger Logger) *LLMHumanizer {
	return &LLMHumanizer{gen: gen, logger: logger}
}

// Humanize rewrites text one sentence-aligned chunk at a time. A chunk whose rewrite fails or
// comes back too short keeps its original wording.
func (h *LLMHumanizer) Humanize(ctx context.Context, text string) (string, error) {
	if h == nil || h.gen == nil {
		return "", llm.ErrUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	segments := chunk.BySentence(text, llmChunkChars)
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		raw, err := h.gen.Generate(ctx, prompts.HumanizePrompt(seg.Text))
		if err != nil {
			h.log("WARN", "model rewrite failed, keeping chunk", fmt.Sprintf("chunk=%d err=%v", seg.Index, err))
			parts = append(parts, seg.Text)
			continue
		}
		cleaned := CleanModelOutput(raw)
		if len(cleaned) < 3 {
			h.log("WARN", "model rewrite too short, keeping chunk", fmt.Sprintf("chunk=%d", seg.Index))
			parts = append(parts, seg.Text)
			continue
		}
		parts = append(parts, cleaned)
	}

	out := strings.TrimSpace(spaceRun.ReplaceAllString(strings.Join(parts, " "), " "))
	if out == strings.TrimSpace(spaceRun.ReplaceAllString(text, " ")) {
		return "", ErrUnchanged
	}
	return out, nil
}

// CleanModelOutput strips echoed prompt fragments, keeps the first line, drops colon and dot
// runs and collapses immediately repeated words.
func CleanModelOutput(raw string) string {
	text := raw
	if i := strings.LastIndex(text, "Rewritten version:"); i >= 0 {
		text = text[i+len("Rewritten version:"):]
	}
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	for _, marker := range prompts.HumanizeMarkers {
		text = strings.ReplaceAll(text, marker, "")
	}
	text = strings.NewReplacer(":::", "", "::", "", ":", "", "...", "", "..", "").Replace(text)

	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 && w == words[i-1] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func (h *LLMHumanizer) log(level, message, detail string) {
	if h.logger != nil {
		h.logger.Log(level, "HUMANIZE", message, detail)
	}
}
