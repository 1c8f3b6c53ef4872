package spider

// ContentProcessor is a single-pass, forward-only sequence of documents
// parsed from one agent's page. Each pull extracts the next text block,
// wraps it into a Document, and consults the crawl-wide document store:
// blocks whose fingerprint has been seen anywhere in the crawl are skipped,
// new fingerprints are recorded and the document yielded. Dedup is therefore
// global and irrevocable; a second processor over an already-consumed page
// yields nothing.
type ContentProcessor struct {
	agent  *Agent
	title  string
	blocks []ContentBlock
	pos    int
}

func newContentProcessor(agent *Agent, page parsedPage) *ContentProcessor {
	p := &ContentProcessor{agent: agent}
	if page != nil {
		p.title = page.Title()
		p.blocks = page.ContentBlocks(agent.cfg.Tags)
	}
	return p
}

// Agent returns the agent this processor is bound to.
func (p *ContentProcessor) Agent() *Agent { return p.agent }

// Next returns the next unseen document, or (nil, false) when the page is
// exhausted. Exhaustion is terminal.
func (p *ContentProcessor) Next() (*Document, bool) {
	for p.pos < len(p.blocks) {
		block := p.blocks[p.pos]
		p.pos++

		text := block.Text()
		if text == "" {
			continue
		}
		doc := p.agent.factory.NewDocument(text, p.title)
		if !p.agent.docs.Add(doc.Fingerprint()) {
			continue
		}
		return doc, true
	}
	return nil, false
}

// LinkProcessor is the hyperlink counterpart of ContentProcessor: a
// single-pass sequence of URIs extracted from one agent's page, filtered
// through the crawl-wide URI store. Yielded URIs carry the page they were
// found on as their "parent" property.
type LinkProcessor struct {
	agent *Agent
	links []LinkRef
	pos   int
}

func newLinkProcessor(agent *Agent, page parsedPage) *LinkProcessor {
	p := &LinkProcessor{agent: agent}
	if page != nil {
		p.links = page.Links()
	}
	return p
}

// Agent returns the agent this processor is bound to.
func (p *LinkProcessor) Agent() *Agent { return p.agent }

// Next returns the next unseen URI, or (nil, false) when the page is
// exhausted. Exhaustion is terminal.
func (p *LinkProcessor) Next() (*URI, bool) {
	for p.pos < len(p.links) {
		link := p.links[p.pos]
		p.pos++

		target := link.Target()
		if target == "" {
			continue
		}
		uri := p.agent.factory.NewURI(
			p.agent.resolveTarget(target),
			map[string]string{"parent": p.agent.uri.locator},
		)
		if !p.agent.uris.Add(uri) {
			continue
		}
		return uri, true
	}
	return nil, false
}
