package ordering

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// RuleSeparator separates the two pages of a precedence rule ("47|53").
const RuleSeparator = "|"

var (
	// ErrMalformedRule is returned by [Rules.AddRule] and [ParseRule] when the
	// rule text is missing the separator or either page is not a non-negative integer.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrMalformedSequence is returned by [ParseSequence] when a token is
	// empty or not a non-negative integer.
	ErrMalformedSequence = errors.New("malformed sequence")

	// ErrEmptySequence is returned by [Middle] for a zero-length sequence.
	ErrEmptySequence = errors.New("empty sequence has no middle element")
)

// Set is a set of page numbers.
// A nil Set is a valid empty set for every read operation.
type Set map[int]struct{}

// NewSet returns a set holding the given pages.
func NewSet(pages ...int) Set {
	s := make(Set, len(pages))
	for _, p := range pages {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s Set) Has(p int) bool {
	_, ok := s[p]
	return ok
}

// SubsetOf reports whether every page of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// IntersectCount returns the number of pages present in both sets.
func (s Set) IntersectCount(other Set) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for p := range small {
		if large.Has(p) {
			n++
		}
	}
	return n
}

// Sorted returns the pages in ascending order.
func (s Set) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}

// Pair is a single precedence rule: Before must appear before After.
type Pair struct {
	Before int `json:"before" yaml:"before"`
	After  int `json:"after" yaml:"after"`
}

// String formats the pair in rule syntax ("47|53").
func (p Pair) String() string {
	return strconv.Itoa(p.Before) + RuleSeparator + strconv.Itoa(p.After)
}

// Rules is the precedence relation: a mapping from a page to the set of pages
// that must come after it.
//
// The zero value is not usable - use NewRules.
type Rules struct {
	after map[int]Set
	count int
}

// NewRules creates an empty relation.
func NewRules() *Rules {
	return &Rules{after: make(map[int]Set)}
}

// Add records that before must precede after. Adding a rule twice is a no-op.
func (r *Rules) Add(before, after int) {
	succ, ok := r.after[before]
	if !ok {
		succ = make(Set)
		r.after[before] = succ
	}
	if succ.Has(after) {
		return
	}
	succ[after] = struct{}{}
	r.count++
}

// AddRule parses a rule of the form "A|B" and records it.
// Returns an error wrapping ErrMalformedRule if the text cannot be parsed;
// the relation is unchanged in that case.
func (r *Rules) AddRule(text string) error {
	p, err := ParseRule(text)
	if err != nil {
		return err
	}
	r.Add(p.Before, p.After)
	return nil
}

// ParseRule parses a rule of the form "A|B". Whitespace around either page
// is ignored.
func ParseRule(text string) (Pair, error) {
	left, right, ok := strings.Cut(text, RuleSeparator)
	if !ok {
		return Pair{}, fmt.Errorf("%w: missing %q in %q", ErrMalformedRule, RuleSeparator, text)
	}
	before, err := parsePage(left)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %q: %v", ErrMalformedRule, text, err)
	}
	after, err := parsePage(right)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %q: %v", ErrMalformedRule, text, err)
	}
	return Pair{Before: before, After: after}, nil
}

// Successors returns the pages recorded as coming after page.
// A page without rules yields an empty set, never an error.
// The returned set is a read-only view of the relation.
func (r *Rules) Successors(page int) Set {
	return r.after[page]
}

// IsConsistent reports whether every page in ahead is a recorded successor
// of page.
func (r *Rules) IsConsistent(page int, ahead Set) bool {
	return ahead.SubsetOf(r.Successors(page))
}

// CountOverlap returns how many pages of others are recorded successors of page.
func (r *Rules) CountOverlap(page int, others Set) int {
	return others.IntersectCount(r.Successors(page))
}

// Len returns the number of pages that have at least one recorded successor.
func (r *Rules) Len() int { return len(r.after) }

// RuleCount returns the number of distinct rules.
func (r *Rules) RuleCount() int { return r.count }

// Pairs returns every rule sorted by Before, then After.
func (r *Rules) Pairs() []Pair {
	pairs := make([]Pair, 0, r.count)
	for _, before := range slices.Sorted(maps.Keys(r.after)) {
		for _, after := range r.after[before].Sorted() {
			pairs = append(pairs, Pair{Before: before, After: after})
		}
	}
	return pairs
}

// Pages returns every page mentioned by any rule, in ascending order.
func (r *Rules) Pages() []int {
	all := make(Set)
	for before, succ := range r.after {
		all[before] = struct{}{}
		for after := range succ {
			all[after] = struct{}{}
		}
	}
	return all.Sorted()
}

// Restrict returns a new relation holding only the rules whose pages are
// both in pages.
func (r *Rules) Restrict(pages []int) *Rules {
	keep := NewSet(pages...)
	sub := NewRules()
	for before, succ := range r.after {
		if !keep.Has(before) {
			continue
		}
		for after := range succ {
			if keep.Has(after) {
				sub.Add(before, after)
			}
		}
	}
	return sub
}

func parsePage(token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("missing page number")
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", token)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative page number %d", n)
	}
	return n, nil
}
