// Package spider implements the crawl engine: the artifact model, the
// deduplication stores, the URI frontier, the crawl agent with its lazy
// content and link processors, and the sequential crawl loop.
package spider

import "fmt"

// truncationThreshold bounds artifact content shown in String outputs.
const truncationThreshold = 20

// Fingerprint is a content-derived identity for a document. Two fingerprints
// are equal iff they were derived from identical content. It is comparable
// and usable as a map key.
type Fingerprint string

func (fp Fingerprint) String() string {
	return string(fp)
}

// Hasher computes digests used for document fingerprinting.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// Document is a unit of text yielded by a content processor. Identity is
// carried entirely by the fingerprint: two documents with identical content
// are the same document regardless of title or instance ID.
type Document struct {
	iid     int
	title   string
	content string

	hasher Hasher
	fp     Fingerprint
	fpSet  bool
}

// IID returns the monotonic instance ID assigned by the factory.
func (d *Document) IID() int { return d.iid }

// Title returns the optional human-readable title. May be empty.
func (d *Document) Title() string { return d.title }

// Content returns the document text.
func (d *Document) Content() string { return d.content }

// Fingerprint returns the document fingerprint, computing and memoizing it on
// first access. This is the only mutation a Document undergoes after
// construction.
func (d *Document) Fingerprint() Fingerprint {
	if !d.fpSet {
		sum, err := d.hasher.Hash([]byte(d.content))
		if err != nil {
			// SHA-256 over in-memory bytes cannot fail; any other Hasher that
			// can is unusable for identity, so treat it as a programmer error.
			panic(fmt.Sprintf("spider: fingerprint hash failed: %v", err))
		}
		d.fp = Fingerprint(sum)
		d.fpSet = true
	}
	return d.fp
}

// Equal reports whether two documents carry the same fingerprint.
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	return d.Fingerprint() == other.Fingerprint()
}

func (d *Document) String() string {
	content := d.content
	ellipses := "    "
	if runes := []rune(content); len(runes) >= truncationThreshold {
		content = string(runes[:truncationThreshold])
		ellipses = "..."
	}
	return fmt.Sprintf("[%s]: %s%s", d.Fingerprint(), content, ellipses)
}

// URI identifies a page to crawl. Equality is based solely on the locator
// string; properties and instance IDs are excluded.
type URI struct {
	iid     int
	locator string
	props   map[string]string
}

// IID returns the monotonic instance ID assigned by the factory.
func (u *URI) IID() int { return u.iid }

// Locator returns the locator string (a local file path, or an external URL).
func (u *URI) Locator() string { return u.locator }

// Props returns the properties attached to this URI. May be nil.
func (u *URI) Props() map[string]string { return u.props }

// Parent returns the locator of the page this URI was extracted from, or the
// empty string for seeds.
func (u *URI) Parent() string {
	if u.props == nil {
		return ""
	}
	return u.props["parent"]
}

// Equal reports whether two URIs share the same locator.
func (u *URI) Equal(other *URI) bool {
	if other == nil {
		return false
	}
	return u.locator == other.locator
}

func (u *URI) String() string {
	locator := u.locator
	ellipses := "    "
	if runes := []rune(locator); len(runes) >= truncationThreshold {
		locator = string(runes[len(runes)-truncationThreshold:])
		ellipses = "..."
	}
	return fmt.Sprintf("[%09d]: %s%s", u.iid, ellipses, locator)
}

// Factory constructs documents and URIs, owning the monotonic instance
// counters and the fingerprint hasher for one crawl session.
type Factory struct {
	hasher   Hasher
	docSeq   int
	uriSeq   int
	agentSeq int
}

// NewFactory returns a Factory that fingerprints documents with hasher.
func NewFactory(hasher Hasher) *Factory {
	return &Factory{hasher: hasher}
}

// NewDocument wraps content into a Document with the next instance ID. The
// fingerprint is left uncomputed until first access.
func (f *Factory) NewDocument(content, title string) *Document {
	f.docSeq++
	return &Document{
		iid:     f.docSeq,
		title:   title,
		content: content,
		hasher:  f.hasher,
	}
}

// NewURI wraps a locator into a URI with the next instance ID.
func (f *Factory) NewURI(locator string, props map[string]string) *URI {
	f.uriSeq++
	return &URI{
		iid:     f.uriSeq,
		locator: locator,
		props:   props,
	}
}

func (f *Factory) nextAgentID() int {
	f.agentSeq++
	return f.agentSeq
}
