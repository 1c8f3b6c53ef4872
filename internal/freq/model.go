// Package freq implements exact frequency counting of words and adjacent
// two-grams with a deterministic total order over the results.
package freq

import (
	"fmt"
	"strings"
)

// Token is a countable unit: either a Word or a TwoGram. The crawl pipeline
// only ever counts one kind per run, but the report printer and the ordering
// are defined over both.
type Token interface {
	fmt.Stringer

	// Compare returns a negative value if the receiver sorts before other,
	// zero if they are equal, and a positive value otherwise. A nil Token
	// sorts before any concrete value; a Word sorts before any TwoGram.
	Compare(other Token) int
}

// Word is a single lowercase token.
type Word string

func (w Word) String() string { return string(w) }

// Compare orders words lexicographically.
func (w Word) Compare(other Token) int {
	if other == nil {
		return 1
	}
	o, ok := other.(Word)
	if !ok {
		return -1
	}
	return strings.Compare(string(w), string(o))
}

// slot is one position of a TwoGram; the zero slot is unset.
type slot struct {
	value string
	set   bool
}

// compareSlots orders an unset slot before any set slot, and set slots by
// their values.
func compareSlots(a, b slot) int {
	switch {
	case !a.set && !b.set:
		return 0
	case !a.set:
		return -1
	case !b.set:
		return 1
	default:
		return strings.Compare(a.value, b.value)
	}
}

// TwoGram is an ordered pair of adjacent tokens. It is a comparable value
// type, so equal pairs collapse to one map key during counting. Either slot
// may be unset, which renders as the literal "None" and sorts before any
// concrete value.
type TwoGram struct {
	first  slot
	second slot
}

// NewTwoGram pairs two tokens.
func NewTwoGram(first, second string) TwoGram {
	return TwoGram{
		first:  slot{value: first, set: true},
		second: slot{value: second, set: true},
	}
}

// NewTwoGramSlots pairs two optional tokens; a nil argument marks that slot
// as unset.
func NewTwoGramSlots(first, second *string) TwoGram {
	var g TwoGram
	if first != nil {
		g.first = slot{value: *first, set: true}
	}
	if second != nil {
		g.second = slot{value: *second, set: true}
	}
	return g
}

// First returns the first token and whether it is set.
func (g TwoGram) First() (string, bool) { return g.first.value, g.first.set }

// Second returns the second token and whether it is set.
func (g TwoGram) Second() (string, bool) { return g.second.value, g.second.set }

func (g TwoGram) String() string {
	return fmt.Sprintf("<%s:%s>", slotString(g.first), slotString(g.second))
}

func slotString(s slot) string {
	if !s.set {
		return "None"
	}
	return s.value
}

// Compare orders two-grams by first token, then second, with unset slots
// before any value.
func (g TwoGram) Compare(other Token) int {
	if other == nil {
		return 1
	}
	o, ok := other.(TwoGram)
	if !ok {
		return 1
	}
	if c := compareSlots(g.first, o.first); c != 0 {
		return c
	}
	return compareSlots(g.second, o.second)
}

// Frequency associates a token with its occurrence count.
type Frequency struct {
	Token Token
	Count int
}

func (f Frequency) String() string {
	return fmt.Sprintf("%s:%d", tokenString(f.Token), f.Count)
}

func tokenString(t Token) string {
	if t == nil {
		return "None"
	}
	return t.String()
}

// Less implements the Frequency total order: count descending, then token
// ascending, with nil tokens before any concrete value.
func Less(a, b Frequency) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return compareTokens(a.Token, b.Token) < 0
}

func compareTokens(a, b Token) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(b)
	}
}
