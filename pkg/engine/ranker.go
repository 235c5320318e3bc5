package engine

import (
	"cmp"
	"slices"

	"dirsearch/pkg/indexer"
)

type ScoredDoc struct {
	Profile *indexer.Profile
	Score   int
}

func NewScoredDocs(profiles []*indexer.Profile) []ScoredDoc {
	docs := make([]ScoredDoc, 0, len(profiles))
	for _, profile := range profiles {
		docs = append(docs, ScoredDoc{
			Profile: profile,
			Score:   ScoreUnset,
		})
	}
	return docs
}

func SortScoredDocsComparator() func(ScoredDoc, ScoredDoc) int {
	return func(d1, d2 ScoredDoc) int {
		return cmp.Compare(d2.Score, d1.Score)
	}
}

// Rank scores every doc against q and returns them ordered by descending
// score. Equal scores keep the order they had in docs. docs is not modified.
func Rank(docs []ScoredDoc, q Query) []ScoredDoc {
	ranked := make([]ScoredDoc, 0, len(docs))
	for _, doc := range docs {
		ranked = append(ranked, ScoredDoc{
			Profile: doc.Profile,
			Score:   Score(q, doc.Profile),
		})
	}

	slices.SortStableFunc(ranked, SortScoredDocsComparator())
	return ranked
}
