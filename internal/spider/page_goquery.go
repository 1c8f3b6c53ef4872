package spider

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/webloom/spinneret/internal/config"
)

// goqueryPage parses pages with goquery, the same parsing stack the rest of
// the crawl ecosystem builds on.
type goqueryPage struct {
	doc *goquery.Document
}

func newGoqueryPage(r io.Reader) (*goqueryPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &goqueryPage{doc: doc}, nil
}

func (p *goqueryPage) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

func (p *goqueryPage) ContentBlocks(tags map[string]config.TagOptions) []ContentBlock {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	var blocks []ContentBlock
	p.doc.Find(strings.Join(names, ", ")).Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, &goqueryBlock{
			sel:  sel,
			opts: tags[goquery.NodeName(sel)],
		})
	})
	return blocks
}

func (p *goqueryPage) Links() []LinkRef {
	var links []LinkRef
	p.doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		links = append(links, &goqueryLink{sel: sel})
	})
	return links
}

type goqueryBlock struct {
	sel  *goquery.Selection
	opts config.TagOptions
}

func (b *goqueryBlock) Text() string {
	if b.opts.IncludeAnchorText {
		return strings.TrimSpace(b.sel.Text())
	}
	// Clone so stripping anchors does not mutate the shared document, which
	// the link processor still reads from.
	stripped := b.sel.Clone()
	stripped.Find("a").Remove()
	return strings.TrimSpace(stripped.Text())
}

type goqueryLink struct {
	sel *goquery.Selection
}

func (l *goqueryLink) Target() string {
	href, _ := l.sel.Attr("href")
	return strings.TrimSpace(href)
}
