package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webloom/spinneret/internal/freq"
	"github.com/webloom/spinneret/internal/hash/sha256"
	"github.com/webloom/spinneret/internal/spider"
	"github.com/webloom/spinneret/internal/textproc"
)

// Frequency analysis modes shared by the crawl and freq commands.
const (
	modeWord    = "word"
	modeTwoGram = "twogram"
)

var (
	crawlMode   string
	crawlOutput string
)

// newCrawlCmd creates and configures the 'crawl' subcommand, which runs the
// simulated crawl from the configured seeds and emits a frequency report
// over the accumulated text.
func newCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Runs a simulated crawl and prints a frequency report",
		Long: `Drains the URI frontier seeded from the configuration, crawling each local
HTML page in FIFO order. Document text accumulated across all pages is
tokenized, optionally stripped of stopwords, and counted as words or
adjacent two-grams.`,
		RunE: runCrawlCommand,
	}
	cmd.Flags().StringVar(&crawlMode, "mode", modeTwoGram, "frequency mode: word or twogram")
	cmd.Flags().StringVar(&crawlOutput, "output", "", "write the report to this file instead of stdout")
	return cmd
}

func runCrawlCommand(cmd *cobra.Command, _ []string) error {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return err
	}
	cfg := appInstance.Config()
	if cfg == nil {
		return errors.New("crawl requires --config")
	}
	if crawlMode != modeWord && crawlMode != modeTwoGram {
		return fmt.Errorf("mode must be %q or %q, got %q", modeWord, modeTwoGram, crawlMode)
	}
	logger := appInstance.Logger()

	factory := spider.NewFactory(sha256.New())
	seeds := make([]*spider.URI, 0, len(cfg.Seeds))
	for _, locator := range cfg.Seeds {
		seeds = append(seeds, factory.NewURI(locator, nil))
	}
	frontier, err := spider.NewFrontier(seeds)
	if err != nil {
		return fmt.Errorf("seed frontier: %w", err)
	}

	engine := spider.NewEngine(
		frontier,
		spider.NewDocumentStore(),
		spider.NewURIStore(),
		cfg.Agent,
		factory,
		logger,
	)
	text, err := engine.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("run crawl: %w", err)
	}

	tokens := textproc.TokenizeString(text)
	if cfg.Options.RemoveStopwords {
		tokens, err = textproc.RemoveStopwords(tokens, cfg.Options.StopwordsLang)
		if err != nil {
			return fmt.Errorf("remove stopwords: %w", err)
		}
	}

	freqs := computeFrequencies(crawlMode, tokens)
	logger.Info("Frequency analysis complete",
		zap.String("mode", crawlMode),
		zap.Int("tokens", len(tokens)),
		zap.Int("unique", len(freqs)),
	)

	return writeReport(freqs, crawlOutput, false)
}

func computeFrequencies(mode string, tokens []string) []freq.Frequency {
	if mode == modeWord {
		return freq.ComputeWordFreq(tokens)
	}
	return freq.ComputeTwoGramFreq(tokens)
}

// writeReport prints the report to path, or to stdout when path is empty.
// When mirror is set the report also goes to stdout.
func writeReport(freqs []freq.Frequency, path string, mirror bool) error {
	if path == "" {
		return freq.Print(freqs, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // checked via Sync below

	var w io.Writer = f
	if mirror {
		w = io.MultiWriter(f, os.Stdout)
	}
	if err := freq.Print(freqs, w); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("flush output %s: %w", path, err)
	}
	return nil
}
