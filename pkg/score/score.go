// Package score turns maximum-independent-set results into word
// similarity scores.
package score

import "unicode/utf8"

// Score is the outcome of scoring one word pair.
type Score struct {
	WordA      string  `json:"word_a"`
	WordB      string  `json:"word_b"`
	SetSize    int     `json:"set_size"`   // maximum independent set size
	Similarity float64 `json:"similarity"` // 0..1, higher is more anagram-like
}

// Similarity maps an MIS size to a score in [0, 1].
//
// A word of length n has n-1 bigram windows, so the longest possible
// alignment between the two words has max(len)-1 members; the MIS size is
// normalized against that. Words with fewer than two runes have no windows
// and score zero.
func Similarity(a, b string, setSize int) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := max(la, lb) - 1
	if longest < 1 || setSize < 0 {
		return 0
	}
	s := float64(setSize) / float64(longest)
	if s > 1 {
		return 1
	}
	return s
}

// New bundles a scored pair.
func New(a, b string, setSize int) Score {
	return Score{
		WordA:      a,
		WordB:      b,
		SetSize:    setSize,
		Similarity: Similarity(a, b, setSize),
	}
}
