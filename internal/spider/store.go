package spider

// DocumentStore tracks the fingerprints of every document seen anywhere in a
// crawl. Only fingerprints are stored, not the documents themselves, to keep
// memory bounded by the number of distinct pages rather than their size.
type DocumentStore struct {
	fps map[Fingerprint]struct{}
}

// NewDocumentStore returns an empty document fingerprint store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{fps: make(map[Fingerprint]struct{})}
}

// Len returns the number of fingerprints stored.
func (s *DocumentStore) Len() int { return len(s.fps) }

// Contains reports whether fp has been seen.
func (s *DocumentStore) Contains(fp Fingerprint) bool {
	_, ok := s.fps[fp]
	return ok
}

// Add inserts fp and reports whether it was absent. A false return leaves the
// store unchanged.
func (s *DocumentStore) Add(fp Fingerprint) bool {
	if s.Contains(fp) {
		return false
	}
	s.fps[fp] = struct{}{}
	return true
}

// Remove deletes fp and reports whether it was present.
func (s *DocumentStore) Remove(fp Fingerprint) bool {
	if !s.Contains(fp) {
		return false
	}
	delete(s.fps, fp)
	return true
}

// URIStore tracks every URI seen anywhere in a crawl, keyed by locator.
// Unlike the document store it retains the full URI so that properties such
// as the parent page remain available for later reference.
type URIStore struct {
	uris map[string]*URI
}

// NewURIStore returns an empty URI store.
func NewURIStore() *URIStore {
	return &URIStore{uris: make(map[string]*URI)}
}

// Len returns the number of URIs stored.
func (s *URIStore) Len() int { return len(s.uris) }

// Contains reports whether a URI with the same locator has been seen.
func (s *URIStore) Contains(u *URI) bool {
	if u == nil {
		return false
	}
	_, ok := s.uris[u.locator]
	return ok
}

// Get returns the stored URI for locator, or nil.
func (s *URIStore) Get(locator string) *URI {
	return s.uris[locator]
}

// Add inserts u and reports whether its locator was absent. A false return
// leaves the store unchanged, including the originally stored URI's props.
func (s *URIStore) Add(u *URI) bool {
	if u == nil || s.Contains(u) {
		return false
	}
	s.uris[u.locator] = u
	return true
}

// Remove deletes the URI with u's locator and reports whether it was present.
func (s *URIStore) Remove(u *URI) bool {
	if !s.Contains(u) {
		return false
	}
	delete(s.uris, u.locator)
	return true
}

// AddAll adds every item in order, ignoring duplicates.
func AddAll[T any](store interface{ Add(T) bool }, items ...T) {
	for _, item := range items {
		store.Add(item)
	}
}
