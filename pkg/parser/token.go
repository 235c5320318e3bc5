package parser

import (
	"regexp"
	"sort"
	"strings"
)

var tokenRegexp = regexp.MustCompile(`[a-z]+`)

// Frequencies maps a lowercase word to the number of times it occurs.
type Frequencies map[string]int

// Words returns the distinct words in sorted order.
func (freqs Frequencies) Words() []string {
	words := make([]string, 0, len(freqs))
	for word := range freqs {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Total is the number of word occurrences.
func (freqs Frequencies) Total() int {
	total := 0
	for _, count := range freqs {
		total += count
	}
	return total
}

// Expand lists every word as many times as it occurs, in sorted order.
func (freqs Frequencies) Expand() []string {
	tokens := make([]string, 0, freqs.Total())
	for _, word := range freqs.Words() {
		for range freqs[word] {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Sanitize replaces every byte that is not an ASCII letter with a space and
// lowercases the rest.
func Sanitize(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z':
			b[i] = c + ('a' - 'A')
		case isLetter(c):
			b[i] = c
		default:
			b[i] = ' '
		}
	}
	return string(b)
}

func ParseTokens(s string) []string {
	return tokenRegexp.FindAllString(s, -1)
}

func CountTokens(tokens []string) Frequencies {
	freqs := Frequencies{}
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		freqs[token]++
	}
	return freqs
}

// ParseFreqs tokenizes raw text into case-insensitive word counts.
func ParseFreqs(s string) Frequencies {
	return CountTokens(ParseTokens(Sanitize(s)))
}

// LetterCount is the number of ASCII letters in s.
func LetterCount(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			count++
		}
	}
	return count
}
