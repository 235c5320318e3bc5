package engine

import (
	"fmt"
)

const (
	DefaultLimit = 10
	NoMatches    = "no matches found"
)

func FormatLine(doc ScoredDoc) string {
	return fmt.Sprintf("%s : %d %%", doc.Profile.Name, doc.Score)
}

// Present renders at most limit ranked docs, and never more than
// DefaultLimit. When the best doc scores 0 the
// whole result is the single NoMatches line.
//
// It panics if a doc it renders was never scored.
func Present(ranked []ScoredDoc, limit int) []string {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	lines := make([]string, 0, min(limit, len(ranked)))
	for i, doc := range ranked {
		if i >= limit {
			break
		}
		if doc.Score == ScoreUnset {
			panic(fmt.Sprintf("the score for file %s was never initialised", doc.Profile.Name))
		}
		if i == 0 && doc.Score == 0 {
			return []string{NoMatches}
		}
		lines = append(lines, FormatLine(doc))
	}
	return lines
}
