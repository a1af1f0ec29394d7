package ordering

// Cycles returns the back edges found by a depth-first search of the relation.
// An empty result means the relation is acyclic. Pages and successors are
// visited in ascending order, so the result is deterministic.
//
// Evaluation never calls Cycles; it only feeds diagnostics.
func Cycles(r *Rules) []Pair {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int)
	var back []Pair

	var dfs func(page int)
	dfs = func(page int) {
		color[page] = gray
		for _, next := range r.Successors(page).Sorted() {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				back = append(back, Pair{Before: page, After: next})
			}
		}
		color[page] = black
	}

	for _, page := range r.Pages() {
		if color[page] == white {
			dfs(page)
		}
	}
	return back
}

// Incomparable returns the pairs of distinct pages in s with no rule in
// either direction, in sequence order. When the result is empty and the
// relation has no two-page cycle over s, [Reorder] yields a valid order.
func Incomparable(s Sequence, r *Rules) []Pair {
	var out []Pair
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			a, b := s[i], s[j]
			if a == b {
				continue
			}
			if r.Successors(a).Has(b) || r.Successors(b).Has(a) {
				continue
			}
			out = append(out, Pair{Before: a, After: b})
		}
	}
	return out
}

// Contradictions returns the pairs of pages in s that the relation orders
// both ways, each reported once with the earlier sequence page first.
func Contradictions(s Sequence, r *Rules) []Pair {
	var out []Pair
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			a, b := s[i], s[j]
			if a != b && r.Successors(a).Has(b) && r.Successors(b).Has(a) {
				out = append(out, Pair{Before: a, After: b})
			}
		}
	}
	return out
}
