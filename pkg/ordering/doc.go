// Package ordering validates page sequences against pairwise precedence rules
// and reorders the sequences that break them.
//
// # Overview
//
// A precedence rule "A|B" says that page A must appear before page B whenever
// both appear in the same sequence. [Rules] stores these rules as an adjacency
// mapping from a page to the set of pages that must come after it. The
// relation is not required to be total, transitive or acyclic; every check in
// this package looks at one pair (or one page and its ahead-set) at a time.
//
// # Basic Usage
//
// Build the relation with [NewRules] and [Rules.AddRule], parse sequences with
// [ParseSequence], then evaluate them:
//
//	rules := ordering.NewRules()
//	_ = rules.AddRule("47|53")
//	_ = rules.AddRule("97|47")
//
//	seq, _ := ordering.ParseSequence("97,47,53")
//	if !ordering.IsValid(seq, rules) {
//	    seq = ordering.Reorder(seq, rules)
//	}
//	mid, _ := ordering.Middle(seq)
//
// # Validity
//
// A sequence is valid when, for every position i, the set of pages after i
// (the ahead-set) is a subset of the successors recorded for the page at i.
// A page with no recorded rules has an empty successor set, so it is only
// valid in the last position. [Violations] reports every failing position
// instead of stopping at the first.
//
// # Reordering
//
// [Reorder] ranks each page by how many of the other pages in the same
// sequence are its recorded successors and stable-sorts by that count in
// descending order. Pages with equal counts keep their input order. The
// result is a correct order only when the rules restricted to the sequence's
// pages form a total order; [Incomparable] lists the pairs that break that
// assumption. Reorder never checks it.
//
// # Concurrency
//
// A [Rules] value is not safe for concurrent mutation. Once built it is only
// read, and any number of goroutines may evaluate sequences against it.
package ordering
