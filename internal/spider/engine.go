package spider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webloom/spinneret/internal/config"
	"github.com/webloom/spinneret/internal/metrics"
)

// Engine runs the sequential crawl loop: while the frontier is non-empty it
// pops a URI, crawls it through a fresh agent, appends every yielded
// document's content to the accumulated text stream, and pushes every
// yielded URI back onto the frontier. The loop is strictly single-threaded;
// the stores and frontier are mutated only from Run.
type Engine struct {
	frontier *Frontier
	docs     *DocumentStore
	uris     *URIStore
	cfg      config.AgentConfig
	factory  *Factory
	logger   *zap.Logger
	session  string
}

// NewEngine wires a crawl session together. The frontier must already hold
// the seed URIs.
func NewEngine(
	frontier *Frontier,
	docs *DocumentStore,
	uris *URIStore,
	cfg config.AgentConfig,
	factory *Factory,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		frontier: frontier,
		docs:     docs,
		uris:     uris,
		cfg:      cfg,
		factory:  factory,
		logger:   logger,
		session:  uuid.NewString(),
	}
}

// Run drains the frontier and returns the accumulated document text, with a
// newline separator between documents. Individual page failures never abort
// the run; the only error is context cancellation between pages.
func (e *Engine) Run(ctx context.Context) (string, error) {
	e.logger.Info("Starting crawl",
		zap.String("session", e.session),
		zap.Int("seeds", e.frontier.Len()),
	)

	var text strings.Builder
	pages, docTotal, linkTotal := 0, 0, 0

	for e.frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return text.String(), fmt.Errorf("crawl canceled: %w", err)
		}

		uri, err := e.frontier.Pop()
		if err != nil {
			// Unreachable: Len was checked above and Run is the only mutator.
			return text.String(), fmt.Errorf("pop frontier: %w", err)
		}
		pages++

		agent := NewAgent(uri, e.docs, e.uris, e.cfg, e.factory, e.logger)
		contents, links := agent.Crawl()

		docCount := 0
		for doc, ok := contents.Next(); ok; doc, ok = contents.Next() {
			text.WriteString(doc.Content())
			text.WriteByte('\n')
			docCount++
			e.debugDocument(doc)
		}

		linkCount := 0
		for link, ok := links.Next(); ok; link, ok = links.Next() {
			e.frontier.Push(link)
			linkCount++
		}

		docTotal += docCount
		linkTotal += linkCount
		e.observePage(uri, docCount, linkCount)

		if e.cfg.Debug {
			e.logger.Debug("Crawled page",
				zap.String("session", e.session),
				zap.Int("page", pages),
				zap.Int("uri_iid", uri.IID()),
				zap.String("locator", uri.Locator()),
				zap.Int("documents", docCount),
				zap.Int("links", linkCount),
				zap.Int("pending", e.frontier.Len()),
			)
		}
	}

	e.logger.Info("Crawl finished",
		zap.String("session", e.session),
		zap.Int("pages", pages),
		zap.Int("documents", docTotal),
		zap.Int("links", linkTotal),
	)
	return text.String(), nil
}

func (e *Engine) observePage(uri *URI, docCount, linkCount int) {
	switch {
	case IsLinkExternal(e.cfg.External, uri.Locator()):
		metrics.ObservePage(metrics.PageExternal)
	case docCount == 0 && linkCount == 0:
		metrics.ObservePage(metrics.PageEmpty)
	default:
		metrics.ObservePage(metrics.PageCrawled)
	}
	metrics.AddDocuments(docCount)
	metrics.AddLinks(linkCount)
	metrics.SetFrontierPending(e.frontier.Len())
}

func (e *Engine) debugDocument(doc *Document) {
	if !e.cfg.Debug {
		return
	}
	preview := doc.Content()
	if runes := []rune(preview); len(runes) > 80 {
		preview = string(runes[:80])
	}
	e.logger.Debug("Yielded document",
		zap.String("session", e.session),
		zap.Int("doc_iid", doc.IID()),
		zap.String("fingerprint", doc.Fingerprint().String()),
		zap.String("content", strings.ReplaceAll(preview, "\n", " ")),
	)
}
