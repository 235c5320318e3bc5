package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"dirsearch/pkg/config"
	"dirsearch/pkg/engine"
	"dirsearch/pkg/indexer"
	"dirsearch/pkg/parser"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ErrNoDirectory = errors.New("no directory given")
	ErrTooManyArgs = errors.New("too many arguments")
)

// usageError carries the message shown to the operator for a bad
// invocation.
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) Unwrap() error {
	return e.err
}

func checkArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &usageError{"No directory given to index.", ErrNoDirectory}
	case len(args) > 1:
		return &usageError{
			fmt.Sprintf("Too many arguments were given. Expected: 1, received: %d.", len(args)),
			ErrTooManyArgs,
		}
	}
	return nil
}

func newRootCmd(cfg *config.Config, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dirsearch [flags] <directory>",
		Short:         "Rank the text files of a directory against free-text queries",
		Args:          checkArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, logger, args[0])
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Search.Limit, "limit", cfg.Search.Limit, "maximum number of matches printed per query, at most 10")
	flags.StringVar(&cfg.Search.QuitToken, "quit", cfg.Search.QuitToken, "a line containing this token ends the session")
	flags.IntVar(&cfg.Search.CacheSize, "cache-size", cfg.Search.CacheSize, "number of parsed queries kept in memory")
	flags.BoolVar(&cfg.Search.Interactive, "interactive", cfg.Search.Interactive, "use the completing prompt when stdin is a terminal")
	flags.IntVar(&cfg.Index.Workers, "workers", cfg.Index.Workers, "number of files read concurrently while indexing")
	flags.IntVar(&cfg.Index.DuplicateDistance, "duplicate-distance", cfg.Index.DuplicateDistance, "simhash distance reported as near duplicate, negative to disable")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level written to stderr")

	return cmd
}

func indexDir(ctx context.Context, cfg *config.Config, logger *logrus.Logger, dir string) (*indexer.Index, error) {
	abs, err := parser.ValidateDir(dir)
	switch {
	case errors.Is(err, parser.ErrNotExist):
		return nil, &usageError{fmt.Sprintf("Directory: %s does not exist.", abs), err}
	case errors.Is(err, parser.ErrNotDirectory):
		return nil, &usageError{fmt.Sprintf("%s is not a directory.", abs), err}
	case err != nil:
		return nil, err
	}

	index, err := indexer.IndexDir(ctx, abs, indexer.Options{
		Workers:           cfg.Index.Workers,
		DuplicateDistance: cfg.Index.DuplicateDistance,
		Logger:            logger.WithField("component", "indexer"),
	})
	if errors.Is(err, indexer.ErrEmptyIndex) {
		return nil, &usageError{
			fmt.Sprintf("Directory: %s does not contain any text files (extension txt or none)!", abs),
			err,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", abs, err)
	}
	return index, nil
}

func run(cmd *cobra.Command, cfg *config.Config, logger *logrus.Logger, dir string) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	index, err := indexDir(ctx, cfg, logger, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d files read in directory %s\n", index.Len(), index.Dir)

	eg := engine.NewEngine(index, engine.Config{
		Limit:       cfg.Search.Limit,
		QuitToken:   cfg.Search.QuitToken,
		Prompt:      cfg.Search.Prompt,
		CacheSize:   cfg.Search.CacheSize,
		Suggestions: cfg.Search.Suggestions,
	}, logger.WithField("component", "engine"))

	in := cmd.InOrStdin()
	if cfg.Search.Interactive && isTerminal(in) {
		return eg.RunPrompt(ctx, out)
	}
	return eg.Run(ctx, in, out)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(config.Load(), logger).ExecuteContext(ctx)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal(err)
	}
}
