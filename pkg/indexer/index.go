package indexer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"dirsearch/pkg/parser"
	"dirsearch/pkg/utils/stream"
	"dirsearch/pkg/utils/sys"

	"github.com/sirupsen/logrus"
)

var ErrEmptyIndex = errors.New("no text files to index")

// Profile is the word-frequency profile of one indexed file. It is never
// modified after it is built.
type Profile struct {
	ID    int
	Name  string
	Freqs parser.Frequencies
}

func (p *Profile) String() string {
	return fmt.Sprintf("%d:%s", p.ID, p.Name)
}

func NewProfile(doc parser.Doc) *Profile {
	return &Profile{
		ID:    doc.ID,
		Name:  doc.Name,
		Freqs: doc.Freqs,
	}
}

// NewProfiles orders docs by ID and converts them.
func NewProfiles(docs []parser.Doc) []*Profile {
	slices.SortFunc(docs, func(a, b parser.Doc) int {
		return a.ID - b.ID
	})

	profiles := make([]*Profile, 0, len(docs))
	for _, doc := range docs {
		profiles = append(profiles, NewProfile(doc))
	}
	return profiles
}

// BuildProfiles tokenizes each entry in order. It fails with ErrEmptyIndex
// when there is nothing to index.
func BuildProfiles(rawDocs []parser.RawDoc) ([]*Profile, error) {
	profiles := NewProfiles(parser.ParseDocs(rawDocs))
	if len(profiles) == 0 {
		return nil, ErrEmptyIndex
	}
	return profiles, nil
}

type Options struct {
	Workers int
	// DuplicateDistance is the largest simhash distance reported as a near
	// duplicate. Negative disables the report, and so does a logger above
	// info level.
	DuplicateDistance int
	Logger            *logrus.Entry
}

type Index struct {
	Dir      string
	Profiles []*Profile
	Stats    *IndexStats
}

func (index *Index) Len() int {
	return len(index.Profiles)
}

// IndexDir reads every indexable file in dir and builds its profile. A read
// failure aborts the whole index.
func IndexDir(ctx context.Context, dir string, opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.WithField("component", "indexer")
	}

	start := time.Now()
	rawFiles, err := parser.ReadFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	logger.WithField("dir", dir).Debugf("Raw files count: %d", len(rawFiles))

	consumer := stream.NewArrayConsumer[parser.Doc]()
	if err := parser.ParseDirDocs(ctx, rawFiles, opts.Workers, consumer); err != nil {
		return nil, err
	}

	profiles := NewProfiles(consumer.Collect())
	if len(profiles) == 0 {
		return nil, ErrEmptyIndex
	}

	stats := NewIndexStats()
	for _, profile := range profiles {
		stats.AddProfile(profile)
	}

	logger.WithFields(logrus.Fields{
		"docs":  stats.DocCount,
		"terms": stats.TermCount,
		"words": stats.Vocabulary.Size(),
	}).Debugf("Index built. Time: %v", time.Since(start))
	sys.LogMemoryUsage(logger, "memory after indexing")

	if opts.DuplicateDistance >= 0 && logger.Logger.IsLevelEnabled(logrus.InfoLevel) {
		for _, dup := range FindNearDuplicates(profiles, uint8(min(opts.DuplicateDistance, 64))) {
			logger.WithFields(logrus.Fields{
				"first":    dup.First.Name,
				"second":   dup.Second.Name,
				"distance": dup.Distance,
			}).Info("near-duplicate documents")
		}
	}

	return &Index{
		Dir:      dir,
		Profiles: profiles,
		Stats:    stats,
	}, nil
}
