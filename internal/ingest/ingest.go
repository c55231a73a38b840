// Package ingest extracts plain-text lines from evaluation-report files.
// Reports land on disk in whatever format the producing tool exported
// them in, so extraction dispatches on the file extension.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw report bytes into ordered plain-text lines.
type Extractor interface {
	Lines(r io.Reader, filename string) ([]string, error)
}

// Options tunes format-specific extraction behavior.
type Options struct {
	// PDFFallbackPdftotext shells out to pdftotext when the Go PDF
	// library cannot extract text.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists report formats this service can read.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a report filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
