package slop

import (
	"strings"
	"testing"
)

const reportStyle = "Furthermore, the analysis shows that the implementation of a comprehensive framework improves operational efficiency. " +
	"Moreover, the results show that a systematic approach is essential. " +
	"In conclusion, the findings demonstrate a robust analysis."

func TestAnalyzeFlagsReportStyleProse(t *testing.T) {
	report := Analyze(reportStyle)
	if !report.IsAIGenerated {
		t.Fatalf("expected AI verdict, got %+v", report)
	}
	if report.AIHits["formal_phrases"] != 7 {
		t.Fatalf("expected 7 formal phrases, got %d", report.AIHits["formal_phrases"])
	}
	if report.AIHits["repetitive_patterns"] != 3 {
		t.Fatalf("expected 3 repetitive openers, got %d", report.AIHits["repetitive_patterns"])
	}
	if report.AIHits["ai_specific_words"] != 3 {
		t.Fatalf("expected 3 ai words, got %d", report.AIHits["ai_specific_words"])
	}
	if report.Confidence < 0.8 || report.Confidence > 0.85 {
		t.Fatalf("expected confidence near 0.82, got %.3f", report.Confidence)
	}
	if !strings.HasPrefix(report.Analysis, "High AI pattern density (") {
		t.Fatalf("unexpected analysis %q", report.Analysis)
	}
	if !strings.HasSuffix(report.Analysis, "Semantic analysis suggests AI generation.") {
		t.Fatalf("unexpected analysis %q", report.Analysis)
	}
	for _, key := range []string{ScoreAI, ScoreHuman, ScoreConfidence} {
		if _, ok := report.Scores[key]; !ok {
			t.Fatalf("missing score %s in %v", key, report.Scores)
		}
	}
}

func TestAnalyzeReadsConversationAsHuman(t *testing.T) {
	text := "Honestly, I think we should just grab pizza tonight. You know, I don't feel like cooking and my kitchen's a mess! Anyway, what do you want?"
	report := Analyze(text)
	if report.IsAIGenerated {
		t.Fatalf("expected human verdict, got %+v", report)
	}
	if report.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %.3f", report.Confidence)
	}
	if report.HumanHits["contractions"] != 1 {
		t.Fatalf("expected 1 contraction, got %d", report.HumanHits["contractions"])
	}
	if !strings.Contains(report.Analysis, "Human pattern indicators (") {
		t.Fatalf("unexpected analysis %q", report.Analysis)
	}
}

func TestAnalyzeDoesNotOverFlagNormalDraft(t *testing.T) {
	parts := []string{
		"Chapter 1: Morning",
		"He walked to the station, bought coffee, and missed his train by one minute.",
		"The delay made him call his sister, and they argued briefly about their father.",
		"By noon he had made up his mind to visit home.",
		"",
		"Chapter 2: Evening",
		"Rain started around dinner and the streets filled with umbrellas.",
		"He cooked soup, answered two emails, and read old notes before sleeping.",
	}
	report := Analyze(strings.Join(parts, "\n\n"))
	if report.IsAIGenerated {
		t.Fatalf("expected normal draft not to be flagged (confidence=%.3f flags=%v)", report.Confidence, report.Flags)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	report := Analyze("  ")
	if report.Analysis != "Empty text provided" {
		t.Fatalf("unexpected analysis %q", report.Analysis)
	}
	if v, ok := report.Scores[ScoreAI]; !ok || v != 0 {
		t.Fatalf("expected ai_probability 0, got %v", report.Scores)
	}
}

func TestMonotoneFlag(t *testing.T) {
	text := "We ship code every day now. We test code every day now. We fix code every day now."
	report := Analyze(text)
	if !report.Monotone {
		t.Fatalf("expected monotone, sd=%.2f", report.SentenceLengthSD)
	}
	if report.MeanSentenceLength != 6 {
		t.Fatalf("expected mean 6, got %.2f", report.MeanSentenceLength)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := Parse([]byte(`{"ai":{"x":["a"]}}`)); err == nil {
		t.Fatalf("expected error without human groups")
	}
	d, err := Parse([]byte(`{"ai":{"stock":["in summary"]},"human":{"casual":["lol"]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(d.Groups(), ","); got != "stock,casual" {
		t.Fatalf("unexpected groups %s", got)
	}
	if r := d.Analyze("In summary, lol."); r.AIHits["stock"] != 1 || r.HumanHits["casual"] != 1 {
		t.Fatalf("unexpected hits %+v %+v", r.AIHits, r.HumanHits)
	}
}

func TestEmbeddedGroups(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Groups()) != 9 {
		t.Fatalf("expected 9 groups, got %v", d.Groups())
	}
}
