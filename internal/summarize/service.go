// Package summarize condenses documents through an LLM, with an extractive fallback when no
// model is configured.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"text_humanizer/internal/chunk"
	"text_humanizer/internal/llm"
	"text_humanizer/internal/pipeline"
	"text_humanizer/internal/prompts"
)

const (
	DefaultLanguage  = "English"
	DefaultMaxWords  = 500
	DefaultPoints    = 5
	DefaultQuestions = 5

	MethodModel      = "model"
	MethodExtractive = "extractive"
)

var (
	ErrEmptyText    = errors.New("summarize: text is empty")
	ErrUnknownStyle = errors.New("summarize: unknown style")
	ErrNoMessages   = errors.New("chat: no messages")
)

type Logger interface {
	Log(level, stage, message, detail string)
}

type Request struct {
	Text      string `json:"text"`
	Style     string `json:"style"`
	MaxLength int    `json:"max_length"`
	Language  string `json:"language"`
}

type Summary struct {
	Summary          string  `json:"summary"`
	Style            string  `json:"style"`
	Method           string  `json:"method"`
	Chunks           int     `json:"chunks"`
	OriginalLength   int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
}

type Service struct {
	gen        llm.Generator
	logger     Logger
	chunkChars int
	workers    int
}

// NewService accepts a nil gen; summaries then fall back to sentence extraction.
func NewService(gen llm.Generator, logger Logger) *Service {
	return &Service{gen: gen, logger: logger, chunkChars: 8000, workers: 4}
}

func (s *Service) HasModel() bool {
	return s.gen != nil
}

func (s *Service) Summarize(ctx context.Context, req Request) (Summary, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Summary{}, ErrEmptyText
	}
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = prompts.StyleConcise
	}
	if !prompts.ValidStyle(style) {
		return Summary{}, fmt.Errorf("%w %q", ErrUnknownStyle, style)
	}
	lang := strings.TrimSpace(req.Language)
	if lang == "" {
		lang = DefaultLanguage
	}
	maxWords := req.MaxLength
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	out := Summary{Style: style, OriginalLength: len([]rune(text))}
	if s.gen == nil {
		out.Summary = Extractive(text, maxWords)
		out.Method = MethodExtractive
		out.Chunks = 1
		return finish(out), nil
	}

	segments := chunk.BySentence(text, s.chunkChars)
	out.Chunks = len(segments)
	out.Method = MethodModel
	if len(segments) <= 1 {
		prompt, err := prompts.SummaryPrompt(style, text, lang, maxWords)
		if err != nil {
			return Summary{}, err
		}
		if out.Summary, err = s.gen.Generate(ctx, prompt); err != nil {
			return Summary{}, fmt.Errorf("summarize: %w", err)
		}
		return finish(out), nil
	}

	s.log("INFO", "chunked summary", fmt.Sprintf("%d chunks", len(segments)))
	results := pipeline.AnalyzeSegments(ctx, segments, s.workers, func(ctx context.Context, seg chunk.Segment) (string, error) {
		prompt, err := prompts.SummaryPrompt(style, seg.Text, lang, maxWords)
		if err != nil {
			return "", err
		}
		return s.gen.Generate(ctx, prompt)
	})
	if errs := pipeline.Errors(results); len(errs) > 0 {
		return Summary{}, fmt.Errorf("summarize chunk: %w", errs[0])
	}
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = strings.TrimSpace(r.Output)
	}
	merged, err := s.gen.Generate(ctx, prompts.MergeSummariesPrompt(style, lang, maxWords, parts))
	if err != nil {
		return Summary{}, fmt.Errorf("merge summaries: %w", err)
	}
	out.Summary = merged
	return finish(out), nil
}

// KeyPoints asks the model for a numbered list. Without a model it returns the top-ranked
// sentences instead.
func (s *Service) KeyPoints(ctx context.Context, text string, n int) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if n <= 0 {
		n = DefaultPoints
	}
	if s.gen == nil {
		return TopSentences(text, n), nil
	}
	raw, err := s.gen.Generate(ctx, prompts.KeyPointsPrompt(text, n))
	if err != nil {
		return nil, fmt.Errorf("key points: %w", err)
	}
	return limit(ParseList(raw), n), nil
}

func (s *Service) Questions(ctx context.Context, text string, n int) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if n <= 0 {
		n = DefaultQuestions
	}
	if s.gen == nil {
		return nil, llm.ErrUnavailable
	}
	raw, err := s.gen.Generate(ctx, prompts.QuestionsPrompt(text, n))
	if err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}
	var out []string
	for _, item := range ParseList(raw) {
		if strings.HasSuffix(item, "?") {
			out = append(out, item)
		}
	}
	return limit(out, n), nil
}

func (s *Service) Chat(ctx context.Context, pdfContext string, messages []prompts.Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}
	if s.gen == nil {
		return "", llm.ErrUnavailable
	}
	reply, err := s.gen.Generate(ctx, prompts.ChatPrompt(pdfContext, messages))
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// ParseList keeps lines that start with a digit or a bullet, with the marker stripped.
func ParseList(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !(line[0] >= '0' && line[0] <= '9') && !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") {
			continue
		}
		item := strings.TrimSpace(strings.TrimLeft(line, "0123456789.-•) "))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func finish(s Summary) Summary {
	s.Summary = strings.TrimSpace(s.Summary)
	s.SummaryLength = len([]rune(s.Summary))
	if s.OriginalLength > 0 {
		ratio := (1 - float64(s.SummaryLength)/float64(s.OriginalLength)) * 100
		s.CompressionRatio = math.Round(ratio*10) / 10
	}
	return s
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func (s *Service) log(level, message, detail string) {
	if s.logger != nil {
		s.logger.Log(level, "SUMMARIZE", message, detail)
	}
}
