package spider

import "testing"

func TestDocumentStoreAddIsIdempotent(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	store := NewDocumentStore()
	fp := factory.NewDocument("same content", "a").Fingerprint()
	fpAgain := factory.NewDocument("same content", "b").Fingerprint()

	if !store.Add(fp) {
		t.Fatalf("first Add() = false, want true")
	}
	if store.Add(fpAgain) {
		t.Fatalf("second Add() of equal fingerprint = true, want false")
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	if !store.Contains(fp) {
		t.Fatalf("Contains() = false after Add")
	}
}

func TestDocumentStoreRemove(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	store := NewDocumentStore()
	fp := factory.NewDocument("content", "").Fingerprint()

	if store.Remove(fp) {
		t.Fatalf("Remove() of absent fingerprint = true, want false")
	}
	store.Add(fp)
	if !store.Remove(fp) {
		t.Fatalf("Remove() of present fingerprint = false, want true")
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d after remove, want 0", store.Len())
	}
}

func TestURIStoreMembershipByLocator(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	store := NewURIStore()
	a := factory.NewURI("pages/a.html", map[string]string{"parent": "seed"})
	aDup := factory.NewURI("pages/a.html", map[string]string{"parent": "elsewhere"})

	if !store.Add(a) {
		t.Fatalf("first Add() = false, want true")
	}
	if store.Add(aDup) {
		t.Fatalf("Add() of same locator = true, want false")
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}

	// The originally stored URI, with its original props, must survive the
	// rejected duplicate.
	if got := store.Get("pages/a.html").Parent(); got != "seed" {
		t.Fatalf("stored parent = %q, want %q", got, "seed")
	}

	if !store.Remove(aDup) {
		t.Fatalf("Remove() by equal locator = false, want true")
	}
	if store.Remove(a) {
		t.Fatalf("Remove() of absent URI = true, want false")
	}
	if store.Add(nil) {
		t.Fatalf("Add(nil) = true, want false")
	}
}

func TestAddAll(t *testing.T) {
	t.Parallel()

	factory := newTestFactory()
	store := NewURIStore()
	AddAll(store,
		factory.NewURI("a.html", nil),
		factory.NewURI("b.html", nil),
		factory.NewURI("a.html", nil),
	)
	if store.Len() != 2 {
		t.Fatalf("Len() = %d after AddAll with duplicate, want 2", store.Len())
	}
}
