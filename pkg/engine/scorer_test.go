package engine

import (
	"testing"

	"dirsearch/pkg/indexer"
	"dirsearch/pkg/parser"

	"github.com/stretchr/testify/require"
)

func profileOf(content string) *indexer.Profile {
	return &indexer.Profile{Name: "name", Freqs: parser.ParseFreqs(content)}
}

func TestScore(t *testing.T) {
	profile := profileOf("one")

	require.Equal(t, 100, Score(ParseQuery("one"), profile))
	require.Equal(t, 0, Score(ParseQuery("two"), profile))
	require.Equal(t, 33, Score(ParseQuery("one one one"), profile))
	require.Equal(t, 50, Score(ParseQuery("one two"), profile))
}

func TestScoreCaseAndPunctuation(t *testing.T) {
	profile := profileOf("Word")

	require.Equal(t, 100, Score(ParseQuery("WORD "), profile))
	require.Equal(t, 100, Score(ParseQuery("word!!! 42"), profile))
	require.Equal(t, 0, Score(ParseQuery("No matches found :)"), profile))
}

func TestScoreLetterWeighted(t *testing.T) {
	profile := profileOf("a b c")

	// three of ten letters
	require.Equal(t, 30, Score(ParseQuery("a b c d e f g h j k"), profile))
	require.Equal(t, 10, Score(ParseQuery("a b c d e f g h j k"), profileOf("k")))

	// long words weigh more than short ones
	require.Equal(t, 80, Score(ParseQuery("elephant ox"), profileOf("elephant")))
	require.Equal(t, 20, Score(ParseQuery("elephant ox"), profileOf("ox")))
}

func TestScoreCountCapped(t *testing.T) {
	query := ParseQuery("one one one one")

	require.Equal(t, 100, Score(query, profileOf("one one one one one one")))
	require.Equal(t, 100, Score(query, profileOf("one one one one")))
	require.Equal(t, 75, Score(query, profileOf("one one one")))
	require.Equal(t, 50, Score(query, profileOf("one one")))
	require.Equal(t, 25, Score(query, profileOf("one")))
}

func TestScoreExactWords(t *testing.T) {
	profile := profileOf("the quick brown fox jumps over the lazy dog")

	queries := []string{
		"the quick brown fox jumps over the lazy dog",
		"the the",
		"LAZY dog, quick fox.",
		"over",
	}
	for _, query := range queries {
		require.Equal(t, 100, Score(ParseQuery(query), profile), query)
	}
	require.Less(t, Score(ParseQuery("the the the"), profile), 100)
}

func TestScoreDegenerate(t *testing.T) {
	profile := profileOf("one")

	for _, raw := range []string{"", " ", "123", ":) -- !?", "\t\t"} {
		q := ParseQuery(raw)
		require.True(t, q.Degenerate(), raw)
		require.Equal(t, 0, Score(q, profile), raw)
	}
	require.False(t, ParseQuery("a").Degenerate())
}

func TestScoreEmptyProfile(t *testing.T) {
	require.Equal(t, 0, Score(ParseQuery("one"), profileOf("")))
}

func TestMatchedLength(t *testing.T) {
	q := ParseQuery("one one two three")
	require.Equal(t, 14, q.Letters)
	require.Equal(t, 6, MatchedLength(q, profileOf("one one one")))
	require.Equal(t, 11, MatchedLength(q, profileOf("one two three")))
	require.Equal(t, 14, MatchedLength(q, profileOf("three two one one")))
}

func TestRoundPercent(t *testing.T) {
	require.Equal(t, 33, roundPercent(1, 3))
	require.Equal(t, 67, roundPercent(2, 3))
	require.Equal(t, 13, roundPercent(1, 8))
	require.Equal(t, 15, roundPercent(29, 200))
	require.Equal(t, 3, roundPercent(1, 40))
	require.Equal(t, 0, roundPercent(0, 5))
	require.Equal(t, 100, roundPercent(5, 5))
}
