package spider

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/webloom/spinneret/internal/config"
)

// netHTMLPage parses pages directly with golang.org/x/net/html. It exists for
// configurations that want the low-level tokenizer's tolerance of badly
// malformed markup without goquery's selection layer.
type netHTMLPage struct {
	root *html.Node
}

func newNetHTMLPage(r io.Reader) (*netHTMLPage, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &netHTMLPage{root: root}, nil
}

func (p *netHTMLPage) Title() string {
	var title string
	walkElements(p.root, func(n *html.Node) {
		if title == "" && n.Data == "title" {
			title = strings.TrimSpace(nodeText(n, true))
		}
	})
	return title
}

func (p *netHTMLPage) ContentBlocks(tags map[string]config.TagOptions) []ContentBlock {
	var blocks []ContentBlock
	walkElements(p.root, func(n *html.Node) {
		if opts, ok := tags[n.Data]; ok {
			blocks = append(blocks, &netHTMLBlock{node: n, opts: opts})
		}
	})
	return blocks
}

func (p *netHTMLPage) Links() []LinkRef {
	var links []LinkRef
	walkElements(p.root, func(n *html.Node) {
		if n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, &netHTMLLink{node: n})
					break
				}
			}
		}
	})
	return links
}

type netHTMLBlock struct {
	node *html.Node
	opts config.TagOptions
}

func (b *netHTMLBlock) Text() string {
	return strings.TrimSpace(nodeText(b.node, b.opts.IncludeAnchorText))
}

type netHTMLLink struct {
	node *html.Node
}

func (l *netHTMLLink) Target() string {
	for _, attr := range l.node.Attr {
		if attr.Key == "href" {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

// walkElements visits every element node under root in document order.
func walkElements(root *html.Node, visit func(*html.Node)) {
	for n := range root.Descendants() {
		if n.Type == html.ElementNode {
			visit(n)
		}
	}
}

// nodeText concatenates the text nodes under n in document order, skipping
// anchor subtrees unless includeAnchors is set.
func nodeText(n *html.Node, includeAnchors bool) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		if node.Type == html.ElementNode && node.Data == "a" && !includeAnchors {
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return sb.String()
}
