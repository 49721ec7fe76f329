// Package cluster provides named term sets with O(1) membership testing.
package cluster

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set is a case-folded word set.
type Set struct {
	words map[string]struct{}
}

// FromTerms builds a set from a term slice. Terms are lowercased on insert;
// duplicates are no-ops.
func FromTerms(terms []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		s.insert(t)
	}
	return s
}

// Load reads a wordlist file: one term per line, blank lines and lines
// starting with '#' ignored, terms case-folded.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	s := &Set{words: make(map[string]struct{})}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.insert(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return s, nil
}

// LoadOrDefault loads a wordlist file when path is non-empty, otherwise
// builds the set from the given default terms.
func LoadOrDefault(path string, defaults []string) (*Set, error) {
	if path == "" {
		return FromTerms(defaults), nil
	}
	return Load(path)
}

func (s *Set) insert(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether word, after the same case folding applied at
// insert time, is in the set.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct terms in the set.
func (s *Set) Len() int { return len(s.words) }
