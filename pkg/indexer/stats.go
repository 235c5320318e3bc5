package indexer

import (
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

type IndexStats struct {
	DocCount  int
	TermCount int
	// word -> occurrences across all profiles, sorted by word
	Vocabulary *treemap.Map[string, int]
}

func NewIndexStats() *IndexStats {
	return &IndexStats{
		Vocabulary: treemap.New[string, int](),
	}
}

func (stats *IndexStats) AddProfile(profile *Profile) {
	stats.DocCount++
	for word, count := range profile.Freqs {
		stats.TermCount += count
		total, _ := stats.Vocabulary.Get(word)
		stats.Vocabulary.Put(word, total+count)
	}
}

func (stats *IndexStats) AvgTermPerDoc() float64 {
	if stats.DocCount == 0 {
		return 0
	}
	return float64(stats.TermCount) / float64(stats.DocCount)
}

type WordCount struct {
	Word  string
	Count int
}

// WordsWithPrefix returns the vocabulary entries starting with prefix in
// word order.
func (stats *IndexStats) WordsWithPrefix(prefix string) []WordCount {
	var words []WordCount
	it := stats.Vocabulary.Iterator()
	for it.Next() {
		word := it.Key()
		if word < prefix {
			continue
		}
		if !strings.HasPrefix(word, prefix) {
			break
		}
		words = append(words, WordCount{Word: word, Count: it.Value()})
	}
	return words
}
