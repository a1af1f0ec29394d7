package ordering

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SequenceSeparator separates the pages of a sequence line ("75,47,61").
const SequenceSeparator = ","

// Sequence is an ordered list of pages. Functions in this package never
// modify a Sequence in place; reordering returns a new value.
type Sequence []int

// ParseSequence parses a comma-separated list of non-negative page numbers.
// Returns an error wrapping ErrMalformedSequence on the first bad token.
func ParseSequence(text string) (Sequence, error) {
	tokens := strings.Split(text, SequenceSeparator)
	seq := make(Sequence, 0, len(tokens))
	for i, tok := range tokens {
		n, err := parsePage(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d of %q: %v", ErrMalformedSequence, i+1, text, err)
		}
		seq = append(seq, n)
	}
	return seq, nil
}

// String formats the sequence in input syntax ("75,47,61").
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, SequenceSeparator)
}

// Ahead returns the set of pages at positions after i.
func (s Sequence) Ahead(i int) Set {
	if i+1 >= len(s) {
		return Set{}
	}
	return NewSet(s[i+1:]...)
}

// Others returns the set of pages at every position except i.
func (s Sequence) Others(i int) Set {
	others := make(Set, len(s))
	for j, p := range s {
		if j != i {
			others[p] = struct{}{}
		}
	}
	return others
}

// IsValid reports whether every page in s precedes only recorded successors.
// It stops at the first failing position; use Violations to see them all.
func IsValid(s Sequence, r *Rules) bool {
	valid := true
	walkAhead(s, func(i int, ahead Set) bool {
		if !r.IsConsistent(s[i], ahead) {
			valid = false
			return false
		}
		return true
	})
	return valid
}

// Violations returns, in ascending order, every position i whose ahead-set is
// not a subset of the successors of s[i]. A valid sequence yields nil.
func Violations(s Sequence, r *Rules) []int {
	var bad []int
	walkAhead(s, func(i int, ahead Set) bool {
		if !r.IsConsistent(s[i], ahead) {
			bad = append(bad, i)
		}
		return true
	})
	slices.Reverse(bad)
	return bad
}

// walkAhead calls fn for positions len(s)-2 down to 0 with the ahead-set of
// each position, growing one set instead of rebuilding it per position.
// The last position is skipped: its ahead-set is always empty.
func walkAhead(s Sequence, fn func(i int, ahead Set) bool) {
	if len(s) < 2 {
		return
	}
	ahead := make(Set, len(s))
	for i := len(s) - 2; i >= 0; i-- {
		ahead[s[i+1]] = struct{}{}
		if !fn(i, ahead) {
			return
		}
	}
}

type rankedPage struct {
	page  int
	count int
}

// Reorder returns a new sequence sorted by how many of the other pages in s
// are recorded successors of each page, highest first. Pages with equal
// counts keep their relative input order.
//
// The result satisfies the rules only when they induce a total order over
// the pages of s. This is not checked.
func Reorder(s Sequence, r *Rules) Sequence {
	ranked := make([]rankedPage, len(s))
	for i, p := range s {
		ranked[i] = rankedPage{page: p, count: r.CountOverlap(p, s.Others(i))}
	}
	slices.SortStableFunc(ranked, func(a, b rankedPage) int {
		return cmp.Compare(b.count, a.count)
	})

	out := make(Sequence, len(ranked))
	for i, rp := range ranked {
		out[i] = rp.page
	}
	return out
}

// Middle returns the page at index (len-1)/2, the lower middle for
// even-length sequences. Returns ErrEmptySequence for an empty sequence.
func Middle(s Sequence) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptySequence
	}
	return s[(len(s)-1)/2], nil
}
