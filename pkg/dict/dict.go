// Package dict loads word lists for dictionary-wide scoring runs.
//
// A word list is a plain text file with one word per line. Blank lines and
// lines starting with '#' are skipped; words are lowercased so scoring is
// case-insensitive.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// List is an ordered word list.
type List struct {
	words []string
}

// Load reads a word list from a file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()
	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return l, nil
}

// Read reads a word list from r.
func Read(r io.Reader) (*List, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return &List{words: words}, nil
}

// Words returns the words in file order.
// The returned slice is a copy; modifying it does not affect the list.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }
