package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"text_humanizer/internal/app"
)

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("from stdin"), "", nil)
	if err != nil || got != "from stdin" {
		t.Fatalf("expected stdin text, got %q (%v)", got, err)
	}

	got, err = readInput(strings.NewReader("ignored"), "", []string{"hello", "world"})
	if err != nil || got != "hello world" {
		t.Fatalf("expected joined args, got %q (%v)", got, err)
	}

	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("from file"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = readInput(strings.NewReader("ignored"), path, []string{"ignored"})
	if err != nil || got != "from file" {
		t.Fatalf("expected file text, got %q (%v)", got, err)
	}

	if _, err := readInput(strings.NewReader("  \n"), "", nil); !errors.Is(err, app.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short   text", 20); got != "short text" {
		t.Fatalf("expected collapsed text, got %q", got)
	}
	if got := preview("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("expected truncated preview, got %q", got)
	}
}

func TestHumanizeCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--data-dir", t.TempDir(), "humanize", "I am going to purchase some groceries."})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := Execute(); err != nil {
		t.Fatalf("humanize failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "I'm") {
		t.Fatalf("expected rewritten text, got %q", out.String())
	}
}
