package dictionary

import (
	"slices"
	"strings"

	"caesar/internal/domain"
)

// Set is an immutable set of words. The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from words. Duplicates collapse; empty strings are dropped.
func New(words []string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return &Set{words: m}
}

// Contains reports whether word is in the set. The match is exact.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int { return len(s.words) }

// Words returns the words in ascending order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

var _ domain.Dictionary = (*Set)(nil)

// punctuation is trimmed from both ends of a token before lookup.
const punctuation = " !@#$%^&*()-_+={}[]|\\:;'<>?,./\""

// Normalize lowercases token and trims surrounding punctuation.
// Interior characters are left alone, so "Don't!" becomes "don't".
func Normalize(token string) string {
	return strings.Trim(strings.ToLower(token), punctuation)
}

// IsWord reports whether token, once normalised, is in d.
func IsWord(d domain.Dictionary, token string) bool {
	return d.Contains(Normalize(token))
}
