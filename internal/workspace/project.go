package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Extraction is the sidecar written next to a stored upload.
type Extraction struct {
	Filename   string    `json:"filename"`
	Pages      int       `json:"pages"`
	SizeBytes  int       `json:"size_bytes"`
	Method     string    `json:"method"`
	TextLength int       `json:"text_length"`
	StoredAt   time.Time `json:"stored_at"`
}

type Upload struct {
	ID         string
	Root       string
	SourcePath string
	TextPath   string
	ReportPath string
}

// StoreUpload files source under uploads/<content hash>/. Uploading the same bytes twice
// reuses the directory.
func StoreUpload(workspaceRoot, filename string, source []byte) (*Upload, error) {
	id := contentHash(source)
	root := filepath.Join(workspaceRoot, "uploads", id)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	sourcePath := filepath.Join(root, sanitizeSourceName(filename))
	if err := os.WriteFile(sourcePath, source, 0o644); err != nil {
		return nil, fmt.Errorf("write source file: %w", err)
	}

	return &Upload{
		ID:         id,
		Root:       root,
		SourcePath: sourcePath,
		TextPath:   filepath.Join(root, "text.txt"),
		ReportPath: filepath.Join(root, "extraction.json"),
	}, nil
}

func (u *Upload) SaveText(text string) error {
	if err := os.WriteFile(u.TextPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

func (u *Upload) SaveExtraction(ex Extraction) error {
	if ex.StoredAt.IsZero() {
		ex.StoredAt = time.Now().UTC()
	}
	raw, err := json.MarshalIndent(ex, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extraction: %w", err)
	}
	if err := os.WriteFile(u.ReportPath, raw, 0o644); err != nil {
		return fmt.Errorf("write extraction: %w", err)
	}
	return nil
}

func LoadExtraction(path string) (Extraction, error) {
	var ex Extraction
	raw, err := os.ReadFile(path)
	if err != nil {
		return ex, fmt.Errorf("read extraction: %w", err)
	}
	if err := json.Unmarshal(raw, &ex); err != nil {
		return ex, fmt.Errorf("decode extraction: %w", err)
	}
	return ex, nil
}

func contentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:12]
}

func sanitizeSourceName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "source.bin"
	}
	return strings.ReplaceAll(base, "..", "")
}
