package spider

import (
	"fmt"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/webloom/spinneret/internal/config"
)

// Agent fetches and parses one page. The "fetch" is a local file open; the
// simulated network never leaves the filesystem. Agents share the crawl-wide
// dedup stores, so the processors they yield enforce at-most-once visibility
// of every document and URI across the whole crawl.
type Agent struct {
	iid     int
	uri     *URI
	docs    *DocumentStore
	uris    *URIStore
	cfg     config.AgentConfig
	factory *Factory
	logger  *zap.Logger
}

// NewAgent binds an agent to uri using the shared stores and session factory.
func NewAgent(
	uri *URI,
	docs *DocumentStore,
	uris *URIStore,
	cfg config.AgentConfig,
	factory *Factory,
	logger *zap.Logger,
) *Agent {
	return &Agent{
		iid:     factory.nextAgentID(),
		uri:     uri,
		docs:    docs,
		uris:    uris,
		cfg:     cfg,
		factory: factory,
		logger:  logger,
	}
}

// URI returns the URI this agent is bound to.
func (a *Agent) URI() *URI { return a.uri }

// DocStore returns the shared document fingerprint store.
func (a *Agent) DocStore() *DocumentStore { return a.docs }

// URIStore returns the shared URI store.
func (a *Agent) URIStore() *URIStore { return a.uris }

// Crawl resolves the agent's URI and parses it into a content processor and
// a link processor. Page-level failures never propagate: an external locator
// or a file that cannot be opened or decoded produces empty processors, with
// the failure reported only when debug is set.
func (a *Agent) Crawl() (*ContentProcessor, *LinkProcessor) {
	page := a.fetchPage()
	return newContentProcessor(a, page), newLinkProcessor(a, page)
}

// fetchPage opens and parses the bound URI, or returns nil if it is
// unreachable for any reason.
func (a *Agent) fetchPage() parsedPage {
	if IsLinkExternal(a.cfg.External, a.uri.locator) {
		a.debugf("external locator treated as unreachable", nil)
		return nil
	}

	f, err := os.Open(a.uri.locator)
	if err != nil {
		a.debugf("failed to open", err)
		return nil
	}
	defer f.Close() //nolint:errcheck // read-only handle

	enc, err := htmlindex.Get(a.cfg.Encoding)
	if err != nil {
		a.debugf("unknown encoding", err)
		return nil
	}

	page, err := parsePage(transform.NewReader(f, enc.NewDecoder()), a.cfg.Parser)
	if err != nil {
		a.debugf("failed to parse", err)
		return nil
	}
	return page
}

func (a *Agent) debugf(msg string, err error) {
	if !a.cfg.Debug {
		return
	}
	parent := a.uri.Parent()
	if parent == "" {
		parent = "unknown"
	}
	a.logger.Debug(msg,
		zap.String("locator", a.uri.locator),
		zap.String("parent", parent),
		zap.Error(err),
	)
}

func (a *Agent) String() string {
	locator := a.uri.locator
	ellipses := "    "
	if runes := []rune(locator); len(runes) >= truncationThreshold {
		locator = string(runes[:truncationThreshold])
		ellipses = " ..."
	}
	return fmt.Sprintf("[%09d]: %s%s", a.iid, locator, ellipses)
}

// resolveTarget turns a raw href into a locator. External targets are kept
// verbatim; local relative targets are resolved against the directory of the
// page they appeared on.
func (a *Agent) resolveTarget(target string) string {
	if IsLinkExternal(a.cfg.External, target) || path.IsAbs(target) {
		return target
	}
	return path.Join(path.Dir(a.uri.locator), target)
}

// IsLinkExternal reports whether link contains any of the configured external
// marker tokens. An empty token list means nothing is external.
func IsLinkExternal(external []string, link string) bool {
	for _, token := range external {
		if token != "" && strings.Contains(link, token) {
			return true
		}
	}
	return false
}
