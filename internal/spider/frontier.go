package spider

import (
	"container/list"
	"errors"
	"fmt"
)

var (
	// ErrNoSeeds is returned when a frontier is constructed without seeds.
	ErrNoSeeds = errors.New("seed list of URIs is required")

	// ErrEmptyFrontier is returned by Peek and Pop when nothing is pending.
	// Callers that drain the frontier check Len before popping, so hitting
	// this error indicates a logic bug rather than normal exhaustion.
	ErrEmptyFrontier = errors.New("frontier is empty")
)

// Frontier is the FIFO backlog of URIs awaiting crawl. It performs no
// deduplication and no prioritization; duplicate elimination happens at link
// extraction time via the URI store.
//
// The backing queue alone cannot support a non-destructive Peek, so the item
// at the very front is cached separately in next and refilled from the queue
// whenever a Peek or Pop finds the cache empty.
type Frontier struct {
	q    *list.List
	next *URI
}

// NewFrontier builds a frontier holding the seeds in order; the first seed is
// the first to pop. An empty or nil seed list is an ErrNoSeeds error.
func NewFrontier(seeds []*URI) (*Frontier, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	f := &Frontier{q: list.New()}
	PushAll(f, seeds...)
	return f, nil
}

// Len returns the exact number of URIs that repeated Pop calls would return,
// counting the cached lookahead slot.
func (f *Frontier) Len() int {
	if f.next == nil {
		return 0
	}
	return f.q.Len() + 1
}

// Push appends u to the back of the frontier. Never blocks.
func (f *Frontier) Push(u *URI) {
	if f.next == nil {
		f.next = u
		return
	}
	f.q.PushBack(u)
}

// Peek returns the front URI without removing it. Repeated calls with no
// intervening Push or Pop return the same URI.
func (f *Frontier) Peek() (*URI, error) {
	if f.next == nil {
		return nil, ErrEmptyFrontier
	}
	return f.next, nil
}

// Pop removes and returns the front URI, advancing the lookahead slot to the
// new front.
func (f *Frontier) Pop() (*URI, error) {
	if f.next == nil {
		return nil, ErrEmptyFrontier
	}
	popped := f.next
	f.next = nil
	if front := f.q.Front(); front != nil {
		f.next = f.q.Remove(front).(*URI)
	}
	return popped, nil
}

func (f *Frontier) String() string {
	return fmt.Sprintf("Size: %d\nNext: %v", f.Len(), f.next)
}

// PushAll pushes every URI in order; the first argument is pushed first.
func PushAll(f *Frontier, uris ...*URI) {
	for _, u := range uris {
		f.Push(u)
	}
}
