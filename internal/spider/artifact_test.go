package spider

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom/spinneret/internal/hash/sha256"
)

func newTestFactory() *Factory {
	return NewFactory(sha256.New())
}

func TestDocumentFingerprintLazyAndMemoized(t *testing.T) {
	t.Parallel()

	counting := &countingHasher{}
	factory := NewFactory(counting)

	doc := factory.NewDocument("some content", "title")
	require.Equal(t, 0, counting.calls, "fingerprint must not be computed at construction")

	first := doc.Fingerprint()
	require.Equal(t, 1, counting.calls)

	second := doc.Fingerprint()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls, "fingerprint must be memoized after first access")
}

func TestDocumentEqualityDelegatesToFingerprint(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	a := factory.NewDocument("identical content", "first title")
	b := factory.NewDocument("identical content", "second title")
	c := factory.NewDocument("different content", "first title")

	assert.NotEqual(t, a.IID(), b.IID())
	assert.True(t, a.Equal(b), "same content must mean same document regardless of title and iid")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestURIEqualityUsesLocatorOnly(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	a := factory.NewURI("pages/one.html", map[string]string{"parent": "pages/index.html"})
	b := factory.NewURI("pages/one.html", nil)
	c := factory.NewURI("pages/two.html", nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "pages/index.html", a.Parent())
	assert.Equal(t, "", b.Parent())
}

func TestFactoryCountersAreMonotonicPerSession(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	d1 := factory.NewDocument("one", "")
	d2 := factory.NewDocument("two", "")
	u1 := factory.NewURI("one.html", nil)
	u2 := factory.NewURI("two.html", nil)

	assert.Equal(t, 1, d1.IID())
	assert.Equal(t, 2, d2.IID())
	assert.Equal(t, 1, u1.IID())
	assert.Equal(t, 2, u2.IID())

	other := newTestFactory()
	assert.Equal(t, 1, other.NewDocument("one", "").IID(),
		"counters must be scoped to a session, not shared globals")
}

func TestStringTruncatesOnRuneBoundaries(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()

	doc := factory.NewDocument(strings.Repeat("é", 25), "")
	wantDoc := fmt.Sprintf("[%s]: %s...", doc.Fingerprint(), strings.Repeat("é", 20))
	assert.Equal(t, wantDoc, doc.String())
	assert.True(t, utf8.ValidString(doc.String()))

	uri := factory.NewURI(strings.Repeat("é", 25), nil)
	wantURI := fmt.Sprintf("[%09d]: ...%s", uri.IID(), strings.Repeat("é", 20))
	assert.Equal(t, wantURI, uri.String())
	assert.True(t, utf8.ValidString(uri.String()))
}

// countingHasher wraps SHA-256 and records how often Hash is invoked.
type countingHasher struct {
	calls int
}

func (h *countingHasher) Hash(data []byte) (string, error) {
	h.calls++
	return sha256.New().Hash(data)
}

// failingHasher always errors; used to pin down the panic contract.
type failingHasher struct{}

func (failingHasher) Hash([]byte) (string, error) {
	return "", errors.New("boom")
}

func TestDocumentFingerprintPanicsOnHasherFailure(t *testing.T) {
	t.Parallel()

	factory := NewFactory(failingHasher{})
	doc := factory.NewDocument("content", "")
	assert.Panics(t, func() { doc.Fingerprint() })
}
