package engine

import (
	"dirsearch/pkg/indexer"
	"dirsearch/pkg/parser"
)

// ScoreUnset marks a document that has not been scored yet.
const ScoreUnset = -1

type Query struct {
	Raw   string
	Freqs parser.Frequencies
	// Letters is the number of ASCII letters in Raw, not the number of words.
	Letters int
}

func ParseQuery(raw string) Query {
	return Query{
		Raw:     raw,
		Freqs:   parser.ParseFreqs(raw),
		Letters: parser.LetterCount(raw),
	}
}

// Degenerate reports whether the query has no letters at all.
func (q Query) Degenerate() bool {
	return q.Letters == 0
}

// MatchedLength sums, over the query's words, the word length times the
// smaller of the query and profile counts.
func MatchedLength(q Query, profile *indexer.Profile) int {
	matched := 0
	for word, queryCount := range q.Freqs {
		count := min(queryCount, profile.Freqs[word])
		matched += count * len(word)
	}
	return matched
}

// Score is the matched length as a percentage of the query's letters,
// rounded half up. A degenerate query scores 0. The result is not clamped.
func Score(q Query, profile *indexer.Profile) int {
	if q.Degenerate() {
		return 0
	}
	return roundPercent(MatchedLength(q, profile), q.Letters)
}

// roundPercent returns round(num/den*100) with halves rounded up, in exact
// integer arithmetic.
func roundPercent(num, den int) int {
	return (200*num + den) / (2 * den)
}
