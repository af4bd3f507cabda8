package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEnsureAtCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)
	root, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}
	for _, dir := range []string{"configs", "dictionaries", "logs", "history", "uploads"} {
		if info, err := os.Stat(filepath.Join(root, dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}

	raw, err := os.ReadFile(SettingsPath(root))
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if s.Text.MaxLength != 2048 || s.History.Driver != "sqlite" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.History.DSN != HistoryPath(root) {
		t.Fatalf("expected history under workspace, got %s", s.History.DSN)
	}
}

func TestEnsureAtKeepsExistingSettings(t *testing.T) {
	base := t.TempDir()
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}
	if err := os.WriteFile(SettingsPath(base), []byte("server:\n  addr: :9999\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("ensure workspace again: %v", err)
	}
	raw, _ := os.ReadFile(SettingsPath(base))
	if !strings.Contains(string(raw), ":9999") {
		t.Fatalf("expected settings to survive, got %s", raw)
	}
}

func TestStoreUpload(t *testing.T) {
	root, err := EnsureAt(t.TempDir())
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}

	upload, err := StoreUpload(root, "../../etc/Report.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("store upload: %v", err)
	}
	if filepath.Base(upload.SourcePath) != "Report.pdf" || filepath.Dir(upload.SourcePath) != upload.Root {
		t.Fatalf("expected sanitized name inside upload root, got %s", upload.SourcePath)
	}
	if err := upload.SaveText("hello"); err != nil {
		t.Fatalf("save text: %v", err)
	}
	if err := upload.SaveExtraction(Extraction{Filename: "Report.pdf", Pages: 2, TextLength: 5}); err != nil {
		t.Fatalf("save extraction: %v", err)
	}
	ex, err := LoadExtraction(upload.ReportPath)
	if err != nil {
		t.Fatalf("load extraction: %v", err)
	}
	if ex.Pages != 2 || ex.StoredAt.IsZero() {
		t.Fatalf("unexpected extraction %+v", ex)
	}

	again, err := StoreUpload(root, "copy.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("store upload again: %v", err)
	}
	if again.ID != upload.ID {
		t.Fatalf("expected same content to share an id, got %s and %s", upload.ID, again.ID)
	}
}

func TestSanitizeSourceName(t *testing.T) {
	for in, want := range map[string]string{"": "source.bin", " . ": "source.bin", "a..b.docx": "ab.docx"} {
		if got := sanitizeSourceName(in); got != want {
			t.Fatalf("sanitize %q: expected %q, got %q", in, want, got)
		}
	}
}
