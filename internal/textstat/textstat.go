// Package textstat counts word occurrences in text.
package textstat

import (
	"sort"
	"strings"
	"unicode"
)

// WordFrequency pairs a word with its occurrence count.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordCount returns case-insensitive occurrence counts for every word in s.
// A word is a maximal run of letters, digits, and interior apostrophes;
// everything else separates words. The result is never nil.
func WordCount(s string) map[string]int {
	counts := make(map[string]int)
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	for _, w := range words {
		w = strings.Trim(w, "'")
		if w == "" {
			continue
		}
		counts[w]++
	}
	return counts
}

// Top returns the n most frequent words in counts, count-descending with ties
// broken alphabetically. If n <= 0 or exceeds the number of distinct words,
// all words are returned.
func Top(counts map[string]int, n int) []WordFrequency {
	freqs := make([]WordFrequency, 0, len(counts))
	for w, c := range counts {
		freqs = append(freqs, WordFrequency{Word: w, Count: c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})
	if n > 0 && n < len(freqs) {
		freqs = freqs[:n]
	}
	return freqs
}
