package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"dirsearch/pkg/indexer"

	"github.com/c-bata/go-prompt"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQuitToken = ":quit"
	DefaultPrompt    = "search> "

	maxLineSize = 16 * 1024 * 1024
)

type Config struct {
	Limit       int
	QuitToken   string
	Prompt      string
	CacheSize   int
	Suggestions int
}

// Engine answers queries against a fixed index, one at a time.
type Engine struct {
	Index     *indexer.Index
	Cache     QueryCache
	Completer *Completer
	// docs holds the previous ranking so that ties keep their last order.
	docs      []ScoredDoc
	limit     int
	quitToken string
	prompt    string
	logger    *logrus.Entry
}

func NewEngine(index *indexer.Index, cfg Config, logger *logrus.Entry) *Engine {
	if logger == nil {
		logger = logrus.WithField("component", "engine")
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.QuitToken == "" {
		cfg.QuitToken = DefaultQuitToken
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}

	return &Engine{
		Index:     index,
		Cache:     NewQueryCache(cfg.CacheSize),
		Completer: NewCompleter(index.Stats, cfg.Suggestions),
		docs:      NewScoredDocs(index.Profiles),
		limit:     cfg.Limit,
		quitToken: cfg.QuitToken,
		prompt:    cfg.Prompt,
		logger:    logger,
	}
}

// Ranked is the ranking produced by the last query.
func (eg *Engine) Ranked() []ScoredDoc {
	return eg.docs
}

func (eg *Engine) Search(raw string) []ScoredDoc {
	q, err := eg.Cache.Get(raw)
	if err != nil {
		eg.logger.WithError(err).Debug("query cache miss")
		q = ParseQuery(raw)
	}
	if q.Degenerate() {
		eg.logger.WithField("query", raw).Debug("query has no letters")
	}

	eg.docs = Rank(eg.docs, q)
	return eg.docs
}

func (eg *Engine) Process(raw string) []string {
	return Present(eg.Search(raw), eg.limit)
}

// Handle treats one input line. quit is set when the line contains the quit
// token anywhere. An empty line produces nothing.
func (eg *Engine) Handle(line string) (lines []string, quit bool) {
	switch {
	case line == "":
		return nil, false
	case strings.Contains(line, eg.quitToken):
		return nil, true
	default:
		return eg.Process(line), false
	}
}

func writeLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// Run reads queries line by line from in until the quit token, the end of
// in or the cancellation of ctx. Cancellation is noticed while waiting for a
// line too.
func (eg *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lineCh := make(chan string)
	errCh := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lineCh)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lineCh <- strings.TrimSuffix(scanner.Text(), "\r"):
			case <-done:
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(out, eg.prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lineCh:
			if !ok {
				return <-errCh
			}
			line = l
		}

		lines, quit := eg.Handle(line)
		if quit {
			return nil
		}
		if err := writeLines(out, lines); err != nil {
			return err
		}
	}
}

// RunPrompt is Run for an interactive terminal, with completion of indexed
// words. The quit token is the only way out: the terminal is in raw mode, so
// Ctrl-C clears the line instead of raising SIGINT, Ctrl-D yields an empty
// line, and ctx is only checked between lines.
func (eg *Engine) RunPrompt(ctx context.Context, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := prompt.Input(eg.prompt, eg.Completer.Complete,
			prompt.OptionTitle("dirsearch"),
			prompt.OptionMaxSuggestion(uint16(eg.Completer.limit)),
		)

		lines, quit := eg.Handle(line)
		if quit {
			return nil
		}
		if err := writeLines(out, lines); err != nil {
			return err
		}
	}
}
