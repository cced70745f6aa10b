// Package kb implements knowledge-base ingestion and hybrid retrieval:
// document parsing, chunking, embedding, summarization, and fused
// dense+lexical search.
package kb

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadBytes caps an uploaded document.
const MaxUploadBytes = 10 << 20 // 10 MiB

var (
	// ErrUnsupportedFormat is returned for extensions outside the whitelist
	// or content that contradicts its extension.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrTooLarge is returned when the upload exceeds MaxUploadBytes.
	ErrTooLarge = errors.New("document too large")

	// ErrEmptyDocument is returned when no text could be extracted.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// DetectFormat maps a filename to a supported format, verifying magic bytes
// for binary formats so a mislabeled upload fails fast.
func DetectFormat(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			return "", fmt.Errorf("%w: file is not a PDF", ErrUnsupportedFormat)
		}
		return "pdf", nil
	case ".docx":
		// DOCX is a zip container.
		if !bytes.HasPrefix(data, []byte("PK")) {
			return "", fmt.Errorf("%w: file is not a DOCX", ErrUnsupportedFormat)
		}
		return "docx", nil
	case ".txt":
		return "txt", nil
	case ".md", ".markdown":
		return "md", nil
	case ".csv":
		return "csv", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ExtractText parses the raw upload into plain text.
func ExtractText(format string, data []byte) (string, error) {
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}

	var (
		text string
		err  error
	)
	switch format {
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDOCX(data)
	case "txt", "md", "csv":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: not valid UTF-8", ErrUnsupportedFormat)
		}
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var parts []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unextractable pages rather than failing the document.
			continue
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return stripXMLTags(content), nil
}

// stripXMLTags removes residual markup the docx extractor leaves behind.
func stripXMLTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte('\n')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
