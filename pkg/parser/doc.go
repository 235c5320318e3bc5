package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"dirsearch/pkg/utils/stream"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNotExist     = errors.New("does not exist")
	ErrNotDirectory = errors.New("is not a directory")
)

const TextExt = ".txt"

type RawDoc struct {
	Name    string
	Content string
}

type Doc struct {
	ID    int
	Name  string
	Freqs Frequencies
}

// IsTextFile reports whether name has the ".txt" extension or none at all.
// The match is case-sensitive.
func IsTextFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == TextExt || ext == ""
}

func NameWithoutExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ValidateDir resolves dir to an absolute path and checks that it is an
// existing directory.
func ValidateDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, err
	}

	fi, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return abs, fmt.Errorf("%s %w", abs, ErrNotExist)
	}
	if err != nil {
		return abs, err
	}
	if !fi.IsDir() {
		return abs, fmt.Errorf("%s %w", abs, ErrNotDirectory)
	}

	return abs, nil
}

// ReadFiles lists the indexable files directly inside srcDir in directory
// order. Subdirectories and files with other extensions are skipped.
func ReadFiles(srcDir string) ([]string, error) {
	validFiles := []string{}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if !IsTextFile(entry.Name()) {
			continue
		}

		file := filepath.Join(srcDir, entry.Name())
		// Stat follows symlinks, entry.Type() does not. A dangling link is
		// not a regular file.
		fi, err := os.Stat(file)
		if errors.Is(err, fs.ErrNotExist) && entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		validFiles = append(validFiles, file)
	}

	return validFiles, nil
}

func ReadRawDoc(file string) (RawDoc, error) {
	var rawDoc RawDoc

	b, err := os.ReadFile(file)
	if err != nil {
		return rawDoc, fmt.Errorf("failed to read file %s: %w", file, err)
	}

	rawDoc.Name = filepath.Base(file)
	rawDoc.Content = string(b)
	return rawDoc, nil
}

func ParseDoc(id int, rawDoc RawDoc) Doc {
	return Doc{
		ID:    id,
		Name:  NameWithoutExt(rawDoc.Name),
		Freqs: ParseFreqs(rawDoc.Content),
	}
}

func ParseDocs(rawDocs []RawDoc) []Doc {
	docs := make([]Doc, 0, len(rawDocs))
	for i, rawDoc := range rawDocs {
		docs = append(docs, ParseDoc(i, rawDoc))
	}
	return docs
}

// ParseDirDocs reads and parses rawFiles with up to workerNum readers. Each
// doc's ID is the position of its file in rawFiles; docs reach the consumer
// in completion order. The first read error cancels the remaining reads and
// is returned.
func ParseDirDocs(ctx context.Context, rawFiles []string, workerNum int, consumer stream.Consumer[Doc]) error {
	if workerNum <= 0 {
		workerNum = runtime.NumCPU() * 2
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerNum)

	producer := stream.NewArrayProducer(rawFiles)
	docCh := make(chan Doc, workerNum)
	errCh := make(chan error, 1)

	go func() {
		defer close(docCh)
		docID := 0
		for {
			file, ok := producer.Produce()
			if !ok {
				break
			}
			id := docID
			docID++
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rawDoc, err := ReadRawDoc(file)
				if err != nil {
					return err
				}
				docCh <- ParseDoc(id, rawDoc)
				return nil
			})
		}
		errCh <- g.Wait()
	}()

	stream.Drain[Doc](stream.NewChannelProducer[Doc](docCh), consumer)

	return <-errCh
}
