// Package ingest pulls plain text out of uploaded PDF and DOCX documents.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrInvalidPDF      = errors.New("file is not a valid pdf")
	ErrNoText          = errors.New("no extractable text found")
)

// Below this many characters the row-ordered PDF pass is tried as well.
const minPlainTextChars = 100

const (
	MethodPlainText = "plain_text"
	MethodByRow     = "text_by_row"
	MethodDOCX      = "docx_xml"
)

type Info struct {
	Filename       string  `json:"filename"`
	Pages          int     `json:"pages"`
	SizeBytes      int     `json:"size_bytes"`
	Method         string  `json:"method"`
	TextLength     int     `json:"text_length"`
	ExtractionTime float64 `json:"extraction_time"`
}

type Document struct {
	Text string `json:"text"`
	Info Info   `json:"info"`
}

func ExtractFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Extract(raw, filepath.Base(path))
}

// Extract dispatches on the filename extension.
func Extract(raw []byte, filename string) (*Document, error) {
	start := time.Now()
	ext := strings.ToLower(filepath.Ext(filename))
	info := Info{Filename: filename, SizeBytes: len(raw)}

	var text string
	var err error
	switch ext {
	case ".docx":
		text, err = parseDOCX(raw)
		info.Method = MethodDOCX
		info.Pages = 1
	case ".pdf":
		text, info.Pages, info.Method, err = parsePDF(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return nil, err
	}

	text = normalizeWhitespace(text)
	if text == "" {
		return nil, ErrNoText
	}
	info.TextLength = len([]rune(text))
	info.ExtractionTime = time.Since(start).Seconds()
	return &Document{Text: text, Info: info}, nil
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, openErr := f.Open()
		if openErr != nil {
			return "", fmt.Errorf("open document.xml: %w", openErr)
		}
		xmlData, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			case "tab":
				b.WriteString(" ")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(raw []byte) (text string, pages int, method string, err error) {
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		return "", 0, "", ErrInvalidPDF
	}
	// the pdf package panics on some malformed object streams
	defer func() {
		if rec := recover(); rec != nil {
			text, method = "", ""
			err = fmt.Errorf("read pdf: %v", rec)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", 0, "", fmt.Errorf("open pdf: %w", err)
	}
	pages = r.NumPage()

	text = plainText(r)
	method = MethodPlainText
	if len(strings.TrimSpace(text)) < minPlainTextChars {
		if rows := rowText(r); len(strings.TrimSpace(rows)) > len(strings.TrimSpace(text)) {
			text = rows
			method = MethodByRow
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", pages, method, ErrNoText
	}
	return text, pages, method, nil
}

// plainText joins the pages with a blank line, skipping pages that fail to decode.
func plainText(r *pdf.Reader) string {
	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil || strings.TrimSpace(content) == "" {
			continue
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n\n")
}

func rowText(r *pdf.Reader) string {
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			b.WriteString(strings.Join(words, " "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// normalizeWhitespace keeps paragraph breaks and collapses runs inside lines.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
