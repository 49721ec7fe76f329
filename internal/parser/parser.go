// Package parser extracts plain text from supported document formats so the
// analyzers accept more than bare .txt input. Extractors preserve paragraph
// structure as blank lines, which is what the tokenizer segments on.
package parser

import (
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw document bytes into plain text.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions with a dedicated extractor.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the extractor for a filename. Unknown extensions fall back
// to the plain text extractor, matching the original tools' behavior of
// treating any input as text.
func ForFile(filename string) Extractor {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return &MarkdownExtractor{}
	case ".csv":
		return &CSVExtractor{}
	case ".html", ".htm":
		return &HTMLExtractor{}
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: true}
	case ".docx":
		return &DOCXExtractor{}
	default:
		return &TextExtractor{}
	}
}

// IsSupportedExtension checks if a file extension has a dedicated extractor.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText extracts plain text from r using the extractor for filename.
func ExtractText(r io.Reader, filename string) (string, error) {
	return ForFile(filename).Extract(r, filename)
}

// joinBlocks assembles extracted text blocks with blank-line separators,
// dropping empty blocks.
func joinBlocks(blocks []string) string {
	var kept []string
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
