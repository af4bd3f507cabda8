package prompts

import (
	"strings"
	"testing"
)

func TestSummaryPromptFillsPlaceholders(t *testing.T) {
	got, err := SummaryPrompt(StyleExecutive, "Quarterly revenue grew.", "en", 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"executive summary", "in en", "Maximum length: 120 words.", "Quarterly revenue grew."} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected prompt to contain %q, got %q", want, got)
		}
	}
}

func TestSummaryPromptRejectsUnknownStyle(t *testing.T) {
	if _, err := SummaryPrompt("haiku", "x", "en", 10); err == nil {
		t.Fatalf("expected error for unknown style")
	}
	if ValidStyle("haiku") {
		t.Fatalf("expected haiku to be invalid")
	}
}

func TestStylesListsAllFive(t *testing.T) {
	styles := Styles()
	if len(styles) != 5 {
		t.Fatalf("expected 5 styles, got %d", len(styles))
	}
	for _, s := range styles {
		if !ValidStyle(s.ID) || s.Description == "" {
			t.Fatalf("style %+v is not usable", s)
		}
	}
}

func TestChatPromptRendersConversation(t *testing.T) {
	got := ChatPrompt("The report covers Q3.", []Message{
		{Role: "user", Content: "What quarter?"},
		{Role: "ASSISTANT", Content: "Q3."},
		{Content: "Thanks"},
	})
	for _, want := range []string{"The report covers Q3.", "User: What quarter?\n", "Assistant: Q3.\n", "User: Thanks\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected chat prompt to contain %q, got %q", want, got)
		}
	}
	if !strings.HasSuffix(got, "\nAssistant:") {
		t.Fatalf("expected trailing assistant cue, got %q", got)
	}
}

func TestHumanizePrompt(t *testing.T) {
	got := HumanizePrompt("We shall commence.")
	if !strings.HasPrefix(got, "Task: Completely rewrite") || !strings.HasSuffix(got, "Rewritten version:") {
		t.Fatalf("unexpected humanize prompt %q", got)
	}
	if !strings.Contains(got, "Text: We shall commence.") {
		t.Fatalf("expected text in prompt, got %q", got)
	}
}
