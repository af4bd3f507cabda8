package offline

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"text_humanizer/internal/aidetect"
	"text_humanizer/internal/app"
	"text_humanizer/internal/chunk"
	"text_humanizer/internal/config"
	"text_humanizer/internal/slop"
	"text_humanizer/internal/summarize"
)

type failTransport struct{}

func (f failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled for offline test")
}

func TestOfflineMode(t *testing.T) {
	original := http.DefaultTransport
	http.DefaultTransport = failTransport{}
	t.Cleanup(func() { http.DefaultTransport = original })

	text := strings.Repeat("This is a sentence. ", 500)
	segments := chunk.SlidingWindow(text, 1500, 200)
	if len(segments) == 0 {
		t.Fatal("expected chunking to work offline")
	}

	report := slop.Analyze(text)
	if report.MeanSentenceLength == 0 {
		t.Fatal("expected semantic analysis to work offline")
	}

	if res := aidetect.Detect(text); len(res.Scores) != len(aidetect.ScoreNames) {
		t.Fatalf("expected every detector score offline, got %v", res.Scores)
	}

	cfg := config.Default(t.TempDir())
	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("expected app to start without network: %v", err)
	}
	out := a.HumanizeText(context.Background(), "I am going to purchase some groceries.", "casual")
	if !strings.Contains(out, "I'm") {
		t.Fatalf("expected humanizer to work offline, got %q", out)
	}

	sum, err := a.Summarize(context.Background(), "", summarize.Request{Text: text, MaxLength: 20})
	if err != nil || sum.Method != summarize.MethodExtractive {
		t.Fatalf("expected extractive summary offline, got %+v (%v)", sum, err)
	}
}
