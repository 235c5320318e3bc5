package engine

import (
	"cmp"
	"strconv"
	"strings"

	"dirsearch/pkg/indexer"
	"dirsearch/pkg/parser"

	"github.com/c-bata/go-prompt"
	pq "github.com/emirpasic/gods/v2/queues/priorityqueue"
)

const DefaultSuggestions = 8

// Completer suggests indexed words for the word being typed.
type Completer struct {
	stats *indexer.IndexStats
	limit int
}

func NewCompleter(stats *indexer.IndexStats, limit int) *Completer {
	if limit <= 0 {
		limit = DefaultSuggestions
	}
	return &Completer{
		stats: stats,
		limit: limit,
	}
}

// Suggestions returns up to limit vocabulary words starting with prefix, most
// frequent first and alphabetical among equals.
func (c *Completer) Suggestions(prefix string) []indexer.WordCount {
	prefix = strings.ToLower(prefix)
	if prefix == "" || parser.LetterCount(prefix) != len(prefix) {
		return nil
	}

	comparator := func(a, b indexer.WordCount) int {
		if r := cmp.Compare(b.Count, a.Count); r != 0 {
			return r
		}
		return cmp.Compare(a.Word, b.Word)
	}

	queue := pq.NewWith(comparator)
	for _, wc := range c.stats.WordsWithPrefix(prefix) {
		queue.Enqueue(wc)
	}

	words := []indexer.WordCount{}
	for len(words) < c.limit && !queue.Empty() {
		wc, ok := queue.Dequeue()
		if !ok {
			break
		}
		words = append(words, wc)
	}
	return words
}

func (c *Completer) Complete(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{}
	for _, wc := range c.Suggestions(d.GetWordBeforeCursor()) {
		suggests = append(suggests, prompt.Suggest{
			Text:        wc.Word,
			Description: strconv.Itoa(wc.Count),
		})
	}
	return suggests
}
