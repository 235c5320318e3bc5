package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScoredDocs(t *testing.T) {
	index := buildIndex(t, "1", "one", "2", "two")
	docs := NewScoredDocs(index.Profiles)

	require.Len(t, docs, 2)
	for _, doc := range docs {
		require.Equal(t, ScoreUnset, doc.Score)
	}
}

func TestRank(t *testing.T) {
	index := buildIndex(t, "1", "one", "2", "two")
	docs := NewScoredDocs(index.Profiles)

	ranked := Rank(docs, ParseQuery("one"))
	require.Equal(t, []string{"1", "2"}, names(ranked))
	require.Equal(t, 100, ranked[0].Score)
	require.Equal(t, 0, ranked[1].Score)

	ranked = Rank(ranked, ParseQuery("two"))
	require.Equal(t, []string{"2", "1"}, names(ranked))

	// the input is left alone
	require.Equal(t, ScoreUnset, docs[0].Score)
	require.Equal(t, ScoreUnset, docs[1].Score)
}

func TestRankStable(t *testing.T) {
	index := buildIndex(t,
		"a", "x",
		"b", "one",
		"c", "y",
		"d", "one",
		"e", "z",
	)
	docs := NewScoredDocs(index.Profiles)

	ranked := Rank(docs, ParseQuery("one"))
	require.Equal(t, []string{"b", "d", "a", "c", "e"}, names(ranked))

	// ties keep the order of the previous ranking, not the index order
	ranked = Rank(ranked, ParseQuery("nothing"))
	require.Equal(t, []string{"b", "d", "a", "c", "e"}, names(ranked))
	for _, doc := range ranked {
		require.Zero(t, doc.Score)
	}

	ranked = Rank(ranked, ParseQuery("z x"))
	require.Equal(t, []string{"a", "e", "b", "d", "c"}, names(ranked))
	require.Equal(t, []int{50, 50, 0, 0, 0}, scores(ranked))
}

func TestRankRescoresEverything(t *testing.T) {
	index := buildIndex(t, "1", "one", "2", "one one")
	ranked := Rank(NewScoredDocs(index.Profiles), ParseQuery("one one"))
	require.Equal(t, []int{100, 50}, scores(ranked))

	ranked = Rank(ranked, ParseQuery(""))
	require.Equal(t, []int{0, 0}, scores(ranked))
	require.Len(t, ranked, 2)
}

func TestRankDescending(t *testing.T) {
	index := buildIndex(t,
		"1", "one",
		"2", "one one",
		"3", "one one one",
		"4", "one one one one",
		"5", "two",
	)

	ranked := Rank(NewScoredDocs(index.Profiles), ParseQuery("one one one one"))
	require.Equal(t, []string{"4", "3", "2", "1", "5"}, names(ranked))
	require.Equal(t, []int{100, 75, 50, 25, 0}, scores(ranked))
}

func scores(docs []ScoredDoc) []int {
	list := []int{}
	for _, doc := range docs {
		list = append(list, doc.Score)
	}
	return list
}
