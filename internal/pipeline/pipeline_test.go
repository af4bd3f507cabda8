package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"text_humanizer/internal/chunk"
)

func TestAnalyzeSegments(t *testing.T) {
	segs := []chunk.Segment{
		{Index: 0, Text: "a"},
		{Index: 1, Text: "b"},
		{Index: 2, Text: "c"},
	}

	var called int32
	results := AnalyzeSegments(context.Background(), segs, 2, func(_ context.Context, seg chunk.Segment) (string, error) {
		atomic.AddInt32(&called, 1)
		if seg.Index == 1 {
			return "", errors.New("test error")
		}
		return strings.ToUpper(seg.Text), nil
	})

	if called != int32(len(segs)) {
		t.Fatalf("expected %d calls, got %d", len(segs), called)
	}
	if errs := Errors(results); len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if results[0].Output != "A" || results[2].Output != "C" {
		t.Fatalf("expected ordered outputs, got %+v", results)
	}
}

func TestAnalyzeSegmentsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called int32
	results := AnalyzeSegments(ctx, []chunk.Segment{{Index: 0}, {Index: 1}}, 1, func(context.Context, chunk.Segment) (string, error) {
		atomic.AddInt32(&called, 1)
		return "x", nil
	})
	if called != 0 {
		t.Fatalf("expected no calls after cancel, got %d", called)
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", r.Err)
		}
	}
}

func TestAnalyzeSegmentsEmpty(t *testing.T) {
	if got := AnalyzeSegments(context.Background(), nil, 4, nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
