package engine

import (
	"testing"

	"dirsearch/pkg/indexer"
	"dirsearch/pkg/parser"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger.WithField("test", "engine")
}

// buildIndex indexes (name, content) pairs in the given order.
func buildIndex(t *testing.T, pairs ...string) *indexer.Index {
	t.Helper()
	require.Zero(t, len(pairs)%2)

	rawDocs := []parser.RawDoc{}
	for i := 0; i < len(pairs); i += 2 {
		rawDocs = append(rawDocs, parser.RawDoc{Name: pairs[i], Content: pairs[i+1]})
	}
	profiles, err := indexer.BuildProfiles(rawDocs)
	require.NoError(t, err)

	stats := indexer.NewIndexStats()
	for _, profile := range profiles {
		stats.AddProfile(profile)
	}
	return &indexer.Index{Profiles: profiles, Stats: stats}
}

func names(docs []ScoredDoc) []string {
	list := []string{}
	for _, doc := range docs {
		list = append(list, doc.Profile.Name)
	}
	return list
}
