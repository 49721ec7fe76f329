package parser

import (
	"fmt"
	"io"
)

// TextExtractor handles plain text. Paragraph boundaries are already blank
// lines, so the bytes pass through untouched.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	return string(data), nil
}
