// Package token converts raw text into an ordered word stream with
// positional metadata, detecting paragraph boundaries in the same pass.
package token

import (
	"bufio"
	"io"
)

// MaxWordLen caps stored token length. Longer runs are truncated but the
// run is still consumed as a single token.
const MaxWordLen = 63

// Token is one lowercase word from the input.
type Token struct {
	Word      string // lowercase, <= MaxWordLen bytes
	Paragraph int    // index into Stream.Paragraphs
	Offset    int64  // byte offset of the first character in the input
}

// Paragraph is a half-open token index range [Start, End).
type Paragraph struct {
	Start int
	End   int
}

// Stream is the tokenized form of one logical input.
type Stream struct {
	Tokens     []Token
	Paragraphs []Paragraph
}

// Len returns the number of tokens in the paragraph.
func (p Paragraph) Len() int { return p.End - p.Start }

func isWordChar(c byte) bool {
	return isAlpha(c) || c == '\'' || c == '-'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Scan tokenizes r in a single forward pass.
//
// A token is a maximal run of ASCII letters, apostrophes, and hyphens; it is
// lowercased and kept only if it is at least two characters long and starts
// with a letter. A paragraph closes when two or more consecutive newlines are
// seen and at least one token has accumulated since the previous boundary, so
// runs of blank lines never produce empty paragraphs. The final paragraph
// closes at end of input if it holds any tokens.
func Scan(r io.Reader) (*Stream, error) {
	br := bufio.NewReader(r)
	s := &Stream{}

	var (
		word       []byte
		wordStart  int64
		offset     int64
		newlines   int
		paraStart  int
		runLen     int  // full length of the current word-char run
		firstAlpha bool // first character of the run is a letter
	)

	flush := func() {
		if runLen >= 2 && firstAlpha {
			s.Tokens = append(s.Tokens, Token{
				Word:      string(word),
				Paragraph: len(s.Paragraphs),
				Offset:    wordStart,
			})
		}
		word = word[:0]
		runLen = 0
	}

	closeParagraph := func() {
		if len(s.Tokens) > paraStart {
			s.Paragraphs = append(s.Paragraphs, Paragraph{Start: paraStart, End: len(s.Tokens)})
			paraStart = len(s.Tokens)
		}
	}

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if isWordChar(c) {
			if runLen == 0 {
				wordStart = offset
				firstAlpha = isAlpha(c)
			}
			if len(word) < MaxWordLen {
				word = append(word, toLower(c))
			}
			runLen++
			newlines = 0
			offset++
			continue
		}

		if runLen > 0 {
			flush()
		}

		switch c {
		case '\n':
			newlines++
			if newlines >= 2 {
				closeParagraph()
				newlines = 0
			}
		case '\r':
			// Carriage returns neither count as blank lines nor break a run
			// of them, so CRLF input behaves like LF input.
		default:
			newlines = 0
		}
		offset++
	}

	if runLen > 0 {
		flush()
	}
	closeParagraph()

	return s, nil
}
