package spider

import (
	"fmt"
	"io"

	"github.com/webloom/spinneret/internal/config"
)

// parsedPage is the view of one fetched page shared by a content processor
// and a link processor. Implementations hold the parsed tree and defer text
// and target extraction until each block or link is pulled.
type parsedPage interface {
	// Title returns the page <title> text, or the empty string.
	Title() string

	// ContentBlocks returns one block per element matching the configured
	// content tags, in document order. Block text is extracted lazily.
	ContentBlocks(tags map[string]config.TagOptions) []ContentBlock

	// Links returns one reference per hyperlink, in document order. The
	// target is extracted lazily.
	Links() []LinkRef
}

// ContentBlock is a single extractable text block of a page.
type ContentBlock interface {
	// Text returns the block's text. Text of nested anchors is excluded
	// unless the block's tag options include it.
	Text() string
}

// LinkRef is a single hyperlink of a page.
type LinkRef interface {
	// Target returns the raw href value.
	Target() string
}

// parsePage builds a parsedPage from r using the backend named in
// agent_config.parser.
func parsePage(r io.Reader, backend string) (parsedPage, error) {
	switch backend {
	case config.ParserGoquery:
		return newGoqueryPage(r)
	case config.ParserNetHTML:
		return newNetHTMLPage(r)
	default:
		return nil, fmt.Errorf("unknown parser backend %q", backend)
	}
}
